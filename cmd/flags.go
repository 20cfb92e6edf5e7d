package cmd

import (
	"sync"

	"github.com/spf13/pflag"
)

var (
	flagSet     *pflag.FlagSet
	flagSetOnce sync.Once
)

// aliases maps task-runner style command names to their flag form.
var aliases = map[string]string{
	"app:install":   "--app-install",
	"app:update":    "--app-update",
	"app:remove":    "--app-remove",
	"dotenv:create": "--dotenv-create",
	"dotenv:reload": "--dotenv-reload",
	"dotenv:delete": "--dotenv-delete",
	"version:get":   "--version-get",
	"version:log":   "--version-log",
	"config:show":   "--config-show",
}

// InitFlags defines the pflags used for argument validation and help.
func InitFlags() *pflag.FlagSet {
	flagSetOnce.Do(func() {
		fs := pflag.NewFlagSet("apptasks", pflag.ContinueOnError)

		// Modifiers
		fs.BoolP("verbose", "v", false, "Verbose output")
		fs.BoolP("debug", "x", false, "Debug output")
		fs.BoolP("no-backup", "n", false, "Do not keep a .bak copy of version files")
		fs.BoolP("help", "h", false, "Show help")

		// Tasks
		fs.String("app-install", "", "Install the application")
		fs.String("app-update", "", "Update the application")
		fs.String("app-remove", "", "Prepare the application for removal")

		// Environment
		fs.String("dotenv-create", "", "Create .env from its template")
		fs.Bool("dotenv-reload", false, "Reload .env")
		fs.Bool("dotenv-delete", false, "Delete .env")

		// Version
		fs.Bool("version-get", false, "Show the project version")
		fs.String("version-log", "", "Record the project version in a file")
		fs.BoolP("version", "V", false, "Show version")

		// Configuration
		fs.Bool("config-show", false, "Show configuration")

		flagSet = fs
	})
	return flagSet
}

// lookupFlag returns the flag for "--name" or "-n", or nil when unknown.
func lookupFlag(arg string) *pflag.Flag {
	fs := InitFlags()
	switch {
	case len(arg) > 2 && arg[:2] == "--":
		return fs.Lookup(arg[2:])
	case len(arg) == 2 && arg[0] == '-':
		return fs.ShorthandLookup(arg[1:])
	}
	return nil
}

// canonical returns the long form of a command, resolving aliases and shorthands.
func canonical(arg string) string {
	if long, ok := aliases[arg]; ok {
		return long
	}
	if f := lookupFlag(arg); f != nil {
		return "--" + f.Name
	}
	return arg
}
