//go:build windows
// +build windows

// This file contains Windows-only logic that requires libraries with build constraints for Windows only.
// It must be separated out into its own file or `go build` will complain when building for non-Windows architectures.

package cmd

import (
	"os"

	"github.com/capnspacehook/taskmaster"
	"github.com/pkg/errors"
)

const bootstrapTaskPath = `\Buildprep\Bootstrap`

// registerBootstrapTask registers a Task Scheduler job that re-runs the
// bootstrap sequence at boot.
func registerBootstrapTask() error {
	taskService, err := taskmaster.Connect()
	if err != nil {
		return errors.Wrap(err, "connecting to Task Scheduler")
	}
	defer taskService.Disconnect()

	exePath, err := os.Executable()
	if err != nil {
		return errors.Wrap(err, "locating buildprep executable")
	}

	def := taskService.NewTaskDefinition()
	def.AddAction(taskmaster.ExecAction{
		Path: exePath,
		Args: "bootstrap --auto",
	})
	def.AddTrigger(taskmaster.BootTrigger{
		TaskTrigger: taskmaster.TaskTrigger{Enabled: true},
	})
	def.RegistrationInfo.Description = "Prepare this build agent before builds run"

	if _, _, err := taskService.CreateTask(bootstrapTaskPath, def, true); err != nil {
		return errors.Wrap(err, "registering bootstrap task")
	}

	return nil
}
