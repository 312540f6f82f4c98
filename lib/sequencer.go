package lib

import (
	"errors"
	"fmt"
)

// Step is a single action in the agent preparation sequence.
type Step struct {
	Name string
	Run  func() error
}

// CommandError reports a subcommand that exited non-zero.
type CommandError struct {
	Command string
	Code    int
}

func (e CommandError) Error() string {
	return fmt.Sprintf("%s: exit code %d", e.Command, e.Code)
}

func (e CommandError) ExitCode() int {
	return e.Code
}

// StepError identifies which step halted the sequence and carries the exit
// code the process should terminate with.
type StepError struct {
	StepName string
	Code     int
	Err      error
}

func (e StepError) Error() string {
	return fmt.Sprintf("step %q failed: %s", e.StepName, e.Err)
}

func (e StepError) Unwrap() error {
	return e.Err
}

func (e StepError) ExitCode() int {
	return e.Code
}

type exitCoder interface {
	ExitCode() int
}

// NewStepError wraps a step failure, preserving the underlying exit code
// when the cause carries one.
func NewStepError(name string, err error) StepError {
	code := 1
	var coder exitCoder
	if errors.As(err, &coder) {
		code = coder.ExitCode()
	}

	return StepError{StepName: name, Code: code, Err: err}
}

// Sequencer runs steps strictly in order and stops at the first failure.
// There are no retries and no partial-failure recovery; the caller exits
// with the failing step's code.
type Sequencer struct {
	Steps  []Step
	Logger func(string)
}

func (s *Sequencer) Run() error {
	for i, step := range s.Steps {
		s.logf("Step %d/%d: %s", i+1, len(s.Steps), step.Name)

		if err := step.Run(); err != nil {
			return NewStepError(step.Name, err)
		}
	}

	return nil
}

func (s *Sequencer) logf(format string, args ...interface{}) {
	if s.Logger == nil {
		return
	}

	s.Logger(fmt.Sprintf(format, args...))
}
