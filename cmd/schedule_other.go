//go:build !windows
// +build !windows

package cmd

import "github.com/pkg/errors"

func registerBootstrapTask() error {
	return errors.New("schedule requires the Windows Task Scheduler")
}
