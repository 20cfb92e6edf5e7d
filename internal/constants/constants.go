package constants

// Folder Names
const (
	AppConfigFolderName = "apptasks"
	AppStateFolderName  = "apptasks"
	DefaultProjectDir   = "."
)

// File Names
const (
	EnvFileName        = ".env"
	EnvTemplateSuffix  = ".example"
	LockFileSuffix     = ".lock"
	BackupSuffix       = ".bak"
	AppConfigFileName  = "apptasks.toml"
	AppLogFileName     = "apptasks.log"
	TempFilePattern    = ".apptasks.*.tmp"
	DefaultVersionFile = "build/version"
	DefaultVersionOK   = "build/version.ok"
)

// Environment Variables
const (
	VersionEnvVarName = "GIT_BRANCH"
	ProjectDirEnvVar  = "APPTASKS_DIR"
	ConfigFileEnvVar  = "APPTASKS_CONFIG"
)

// Permissions
const (
	DefaultFileMode   = 0644
	DefaultFolderMode = 0755
)

// UnknownVersion is recorded when no project version can be resolved.
const UnknownVersion = "Unknown"
