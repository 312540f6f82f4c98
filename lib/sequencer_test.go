package lib

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestSequencerRunsStepsInOrder(t *testing.T) {
	var order []string

	sequencer := &Sequencer{
		Steps: []Step{
			{Name: "first", Run: func() error { order = append(order, "first"); return nil }},
			{Name: "second", Run: func() error { order = append(order, "second"); return nil }},
			{Name: "third", Run: func() error { order = append(order, "third"); return nil }},
		},
	}

	assert.NoError(t, sequencer.Run())
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestSequencerStopsAtFirstFailure(t *testing.T) {
	var order []string

	sequencer := &Sequencer{
		Steps: []Step{
			{Name: "first", Run: func() error { order = append(order, "first"); return nil }},
			{Name: "second", Run: func() error { return errors.New("boom") }},
			{Name: "third", Run: func() error { order = append(order, "third"); return nil }},
		},
	}

	err := sequencer.Run()
	assert.Error(t, err)
	assert.Equal(t, []string{"first"}, order)

	stepErr, ok := err.(StepError)
	assert.True(t, ok)
	assert.Equal(t, "second", stepErr.StepName)
	assert.Equal(t, 1, stepErr.Code)
}

func TestSequencerPreservesCommandExitCode(t *testing.T) {
	sequencer := &Sequencer{
		Steps: []Step{
			{Name: "build", Run: func() error {
				return CommandError{Command: "make", Code: 2}
			}},
		},
	}

	err := sequencer.Run()
	stepErr, ok := err.(StepError)
	assert.True(t, ok)
	assert.Equal(t, "build", stepErr.StepName)
	assert.Equal(t, 2, stepErr.Code)
}

func TestSequencerLogsEachStepBeforeRunning(t *testing.T) {
	var logged []string

	sequencer := &Sequencer{
		Steps: []Step{
			{Name: "only", Run: func() error {
				assert.Equal(t, []string{"Step 1/1: only"}, logged)
				return nil
			}},
		},
		Logger: func(msg string) { logged = append(logged, msg) },
	}

	assert.NoError(t, sequencer.Run())
}
