// Package tasks implements the project maintenance tasks: building .env from
// its template, reloading it and recording the project version.
package tasks

import (
	"AppTasks/internal/config"
	"AppTasks/internal/dotenv"
	"AppTasks/internal/logger"
	"AppTasks/internal/paths"
	"AppTasks/internal/project"
	"context"
)

// Runner runs tasks against one project.
type Runner struct {
	Settings config.AppConfig
	Config   *dotenv.Config
}

// New returns a Runner for settings. environ is the process environment
// snapshot used when reading configuration values.
func New(settings config.AppConfig, environ []string) *Runner {
	return &Runner{
		Settings: settings,
		Config:   dotenv.NewConfig(settings.EnvFile, environ),
	}
}

// DotenvCreate builds .env from its template with KEY=VALUE overrides from args.
func (r *Runner) DotenvCreate(ctx context.Context, args []string) error {
	overrides, err := dotenv.ParseOverrideArgs(args)
	if err != nil {
		return err
	}
	_, err = dotenv.Create(ctx, r.Settings.TemplateFile, r.Settings.EnvFile, overrides)
	return err
}

// DotenvReload re-reads .env, letting its values shadow the process environment.
// A failure is logged and does not stop the task.
func (r *Runner) DotenvReload(ctx context.Context) error {
	logger.Info(ctx, "Reloading '{{_File_}}%s{{|-|}}'.", r.Config.Path)
	if err := r.Config.Load(true); err != nil {
		logger.Warn(ctx, "Failed to load .env configuration file")
		logger.Debug(ctx, "%v", err)
		return nil
	}
	logger.Debug(ctx, "Loaded %d values.", len(r.Config.Values()))
	return nil
}

// DotenvDelete removes .env.
func (r *Runner) DotenvDelete(ctx context.Context) error {
	return dotenv.Delete(ctx, r.Settings.EnvFile)
}

// LogProjectVersion records version in file. An empty version is resolved
// from the configuration. A relative file is taken from the project folder.
func (r *Runner) LogProjectVersion(ctx context.Context, file, version string) error {
	if version == "" {
		version = project.ResolveVersion(ctx, r.Config)
	}
	path := paths.ResolveIn(r.Settings.ProjectDir, file)

	previous, err := project.WriteVersion(ctx, path, version, r.Settings.Version.Backup)
	if err != nil {
		return err
	}
	if previous != "" {
		logger.Info(ctx, "Version {{_Version_}}%s{{|-|}} (%s from {{_Version_}}%s{{|-|}}).", version, project.Direction(previous, version), previous)
	}
	return nil
}

// Install sets up a freshly deployed project.
func (r *Runner) Install(ctx context.Context, args []string) error {
	return r.run(ctx, "app:install", args, r.deploySteps)
}

// Update refreshes an already installed project.
func (r *Runner) Update(ctx context.Context, args []string) error {
	return r.run(ctx, "app:update", args, r.deploySteps)
}

// Remove prepares a project for removal.
func (r *Runner) Remove(ctx context.Context, args []string) error {
	return r.run(ctx, "app:remove", args, nil)
}

// run creates and reloads .env under the run lock, then runs the remaining steps.
func (r *Runner) run(ctx context.Context, name string, args []string, steps func(context.Context) error) error {
	logger.Notice(ctx, "Running '{{_RunningCommand_}}%s{{|-|}}'.", name)

	unlock, err := acquireLock(ctx, r.Settings.LockFile)
	if err != nil {
		return err
	}
	defer unlock()

	if err := r.DotenvCreate(ctx, args); err != nil {
		return err
	}
	if err := r.DotenvReload(ctx); err != nil {
		return err
	}
	if steps != nil {
		if err := steps(ctx); err != nil {
			return err
		}
	}

	logger.Notice(ctx, "Finished '{{_RunningCommand_}}%s{{|-|}}'.", name)
	return nil
}

func (r *Runner) deploySteps(ctx context.Context) error {
	if err := r.LogProjectVersion(ctx, r.Settings.VersionFile, ""); err != nil {
		return err
	}
	// Project specific deployment hooks run between the two version records.
	logger.Debug(ctx, "No deployment steps configured.")
	return r.LogProjectVersion(ctx, r.Settings.VersionOKFile, "")
}
