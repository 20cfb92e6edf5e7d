package cmd

import (
	"AppTasks/internal/console"
	"AppTasks/internal/constants"
	"AppTasks/internal/version"
	"fmt"
	"strings"
)

// PrintHelp prints usage information.
// If target is empty, prints global usage.
// If target is specified, prints usage for that specific flag/command.
func PrintHelp(target string) {
	fmt.Print(console.Parse(GetUsage(target)))
}

// GetUsage returns usage information as a string.
// If target is empty, returns global usage.
// If target is specified, returns usage for that specific flag/command.
func GetUsage(target string) string {
	var sb strings.Builder
	printStr := func(s string) {
		sb.WriteString(s + "\n")
	}

	appName := version.ApplicationName
	appCmd := version.CommandName

	if target == "" {
		printStr(fmt.Sprintf("Usage: {{_UsageCommand_}}%s{{|-|}} [{{_UsageCommand_}}<Flags>{{|-|}}] [{{_UsageCommand_}}<Command>{{|-|}}] ...", appCmd))
		printStr("")
		printStr(fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}]", appName, version.Version))
		printStr("Maintenance tasks for a deployed project: builds the environment file from")
		printStr("its template and records the project version.")
		printStr("")
		printStr("You may include multiple commands on the command-line, and they will be executed in")
		printStr("the order given, only stopping on an error. Any flags included only apply to the")
		printStr("following command, and get reset before the next command.")
		printStr("")
		printStr("Flags:")
		printStr("")
	}

	showAll := target == ""
	want := canonical(target)

	match := func(opts ...string) bool {
		if showAll {
			return true
		}
		for _, o := range opts {
			if o == target || o == want {
				return true
			}
		}
		return false
	}

	// Flags
	if match("-v", "--verbose") {
		printStr("{{_UsageCommand_}}-v --verbose{{|-|}}")
		printStr("	Verbose")
	}
	if match("-x", "--debug") {
		printStr("{{_UsageCommand_}}-x --debug{{|-|}}")
		printStr("	Debug")
	}
	if match("-n", "--no-backup") {
		printStr("{{_UsageCommand_}}-n --no-backup{{|-|}}")
		printStr(fmt.Sprintf("	Do not keep a '{{_UsageFile_}}%s{{|-|}}' copy when recording the version", constants.BackupSuffix))
	}

	if showAll {
		printStr("")
		printStr("CLI Commands:")
		printStr("")
	}

	overrides := "[{{_UsageVar_}}KEY=VALUE{{|-|}} ...]"
	if match("--app-install") {
		printStr("{{_UsageCommand_}}--app-install app:install{{|-|}} " + overrides)
		printStr(fmt.Sprintf("	Create '{{_UsageFile_}}%s{{|-|}}', reload it and record the version", constants.EnvFileName))
	}
	if match("--app-update") {
		printStr("{{_UsageCommand_}}--app-update app:update{{|-|}} " + overrides)
		printStr(fmt.Sprintf("	Create '{{_UsageFile_}}%s{{|-|}}', reload it and record the version", constants.EnvFileName))
	}
	if match("--app-remove") {
		printStr("{{_UsageCommand_}}--app-remove app:remove{{|-|}} " + overrides)
		printStr(fmt.Sprintf("	Create and reload '{{_UsageFile_}}%s{{|-|}}' before removal", constants.EnvFileName))
	}
	if match("--dotenv-create") {
		printStr("{{_UsageCommand_}}--dotenv-create dotenv:create{{|-|}} " + overrides)
		printStr(fmt.Sprintf("	Create '{{_UsageFile_}}%s{{|-|}}' from '{{_UsageFile_}}%s%s{{|-|}}', replacing the given variables", constants.EnvFileName, constants.EnvFileName, constants.EnvTemplateSuffix))
		printStr("	Variables missing from the template are added at the end.")
		printStr("	Use '{{_UsageOption_}}--{{|-|}}' to pass every following argument as a variable.")
	}
	if match("--dotenv-reload") {
		printStr("{{_UsageCommand_}}--dotenv-reload dotenv:reload{{|-|}}")
		printStr(fmt.Sprintf("	Reload '{{_UsageFile_}}%s{{|-|}}'", constants.EnvFileName))
	}
	if match("--dotenv-delete") {
		printStr("{{_UsageCommand_}}--dotenv-delete dotenv:delete{{|-|}}")
		printStr(fmt.Sprintf("	Delete '{{_UsageFile_}}%s{{|-|}}'", constants.EnvFileName))
	}
	if match("--version-get") {
		printStr("{{_UsageCommand_}}--version-get version:get{{|-|}}")
		printStr(fmt.Sprintf("	Show the project version taken from '{{_UsageVar_}}%s{{|-|}}'", constants.VersionEnvVarName))
	}
	if match("--version-log") {
		printStr("{{_UsageCommand_}}--version-log version:log{{|-|}} {{_UsageFile_}}<file>{{|-|}} [{{_UsageVar_}}<version>{{|-|}}]")
		printStr("	Record the project version in a file")
	}
	if match("--config-show") {
		printStr("{{_UsageCommand_}}--config-show config:show{{|-|}}")
		printStr("	Shows the current configuration options")
	}
	if match("-h", "--help") {
		printStr("{{_UsageCommand_}}-h --help{{|-|}}")
		printStr("	Show this usage information")
		printStr("{{_UsageCommand_}}-h --help{{|-|}} {{_UsageOption_}}<option>{{|-|}}")
		printStr("	Show the usage of the specified option")
	}
	if match("-V", "--version") {
		printStr("{{_UsageCommand_}}-V --version{{|-|}}")
		printStr("	Show version information")
	}

	return sb.String()
}
