package cmd

import (
	"AppTasks/internal/config"
	"AppTasks/internal/console"
	"AppTasks/internal/logger"
	"AppTasks/internal/paths"
	"AppTasks/internal/project"
	"AppTasks/internal/tasks"
	"AppTasks/internal/version"
	"context"
	"fmt"
	"os"
	"strings"
)

// CmdState holds the state of flags for a single command group.
type CmdState struct {
	NoBackup bool
}

// Execute runs the logic for a sequence of command groups and returns the exit code.
// It handles flag application, command switching, and state resetting.
func Execute(ctx context.Context, groups []CommandGroup) int {
	conf := config.LoadAppConfig(ctx)
	return ExecuteWith(ctx, conf, tasks.New(conf, os.Environ()), groups)
}

// ExecuteWith runs groups against an existing runner. The first failing
// command stops the run.
func ExecuteWith(ctx context.Context, conf config.AppConfig, runner *tasks.Runner, groups []CommandGroup) int {
	ranCommand := false

	for _, group := range groups {
		state := CmdState{}

		for _, flag := range group.Flags {
			switch flag {
			case "-v", "--verbose":
				logger.SetLevel(logger.LevelInfo)
			case "-x", "--debug":
				logger.SetLevel(logger.LevelDebug)
			case "-n", "--no-backup":
				state.NoBackup = true
			}
		}
		runner.Settings.Version.Backup = conf.Version.Backup && !state.NoBackup

		cmdStr := version.CommandName + " " + strings.Join(group.FullSlice(), " ")
		logger.Notice(ctx, "%s command: '{{_UserCommand_}}%s{{|-|}}'", version.ApplicationName, cmdStr)
		logger.Debug(ctx, "Execution Args -> State: %+v, Command: %s, Args: %v", state, group.Command, group.Args)

		var err error
		switch group.Command {
		case "--help":
			handleHelp(&group)
		case "--version":
			handleVersion()
		case "--config-show":
			err = handleConfigShow(ctx, conf)
		case "--app-install":
			err = runner.Install(ctx, group.Args)
		case "--app-update":
			err = runner.Update(ctx, group.Args)
		case "--app-remove":
			err = runner.Remove(ctx, group.Args)
		case "--dotenv-create":
			err = runner.DotenvCreate(ctx, group.Args)
		case "--dotenv-reload":
			err = runner.DotenvReload(ctx)
		case "--dotenv-delete":
			err = runner.DotenvDelete(ctx)
		case "--version-get":
			fmt.Println(project.ResolveVersion(ctx, runner.Config))
		case "--version-log":
			err = handleVersionLog(ctx, runner, &group)
		case "":
		default:
			logger.FatalNoTrace(ctx, "The '{{_UserCommand_}}%s{{|-|}}' command is not implemented.", group.Command)
		}
		if group.Command != "" {
			ranCommand = true
		}

		// Reset Flags
		logger.SetLevel(logger.LevelNotice)

		if err != nil {
			logger.Error(ctx, "%v", err)
			return 1
		}
	}

	if !ranCommand {
		PrintHelp("")
	}

	return 0
}

func handleHelp(group *CommandGroup) {
	target := ""
	if len(group.Args) > 0 {
		target = group.Args[0]
	}
	PrintHelp(target)
}

func handleVersion() {
	console.Println(fmt.Sprintf("{{_ApplicationName_}}%s{{|-|}} [{{_Version_}}%s{{|-|}}]", version.ApplicationName, version.Version))
	if version.Commit != "none" {
		console.Println(fmt.Sprintf("Commit {{_Version_}}%s{{|-|}} built {{_Version_}}%s{{|-|}}", version.Commit, version.BuildDate))
	}
}

func handleVersionLog(ctx context.Context, runner *tasks.Runner, group *CommandGroup) error {
	file := group.Args[0]
	ver := ""
	if len(group.Args) > 1 {
		ver = group.Args[1]
	}
	return runner.LogProjectVersion(ctx, file, ver)
}

func handleConfigShow(ctx context.Context, conf config.AppConfig) error {
	data, err := config.Marshal(conf)
	if err != nil {
		return fmt.Errorf("formatting configuration: %w", err)
	}

	logger.Info(ctx, "Configuration file: '{{_File_}}%s{{|-|}}'", paths.GetConfigFilePath())
	fmt.Print(string(data))
	console.Println(fmt.Sprintf("\n# Resolved\n# project     {{_Folder_}}%s{{|-|}}\n# env file    {{_File_}}%s{{|-|}}\n# template    {{_File_}}%s{{|-|}}\n# version     {{_File_}}%s{{|-|}}\n# version ok  {{_File_}}%s{{|-|}}\n# lock        {{_File_}}%s{{|-|}}",
		conf.ProjectDir, conf.EnvFile, conf.TemplateFile, conf.VersionFile, conf.VersionOKFile, conf.LockFile))
	return nil
}
