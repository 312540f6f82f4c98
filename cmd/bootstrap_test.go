package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opsfactor/buildprep-cli/lib"
)

func testBootstrapConfig(t *testing.T) bootstrapConfig {
	t.Helper()

	return bootstrapConfig{
		Platform:  lib.PlatformWindows,
		Checkout:  t.TempDir(),
		Installer: lib.DefaultInstallerPath,
		BuildCmd:  "make",
	}
}

func TestBuildBootstrapStepsOrder(t *testing.T) {
	t.Setenv("LOCALAPPDATA", `C:\Users\agent\AppData\Local`)

	steps, err := buildBootstrapSteps(testBootstrapConfig(t))
	assert.NoError(t, err)

	var names []string
	for _, step := range steps {
		names = append(names, step.Name)
	}

	assert.Equal(t, []string{
		"install make",
		"exclude temp directory from Defender scans",
		"disable Defender archive scanning",
		"disable Defender behavior monitoring",
		"disable Defender real-time monitoring",
		"relax execution policy",
		"enter installer directory",
		"check installer script",
		"run installer",
		"return to checkout root",
		"rewrite Makefile paths",
		"run build",
	}, names)
}

func TestBootstrapNonWindowsPlatformIsNoOp(t *testing.T) {
	// Would make step assembly fail if the windows path were taken
	t.Setenv("LOCALAPPDATA", "")

	for _, platform := range []string{"linux", "osx", ""} {
		t.Run("platform "+platform, func(t *testing.T) {
			cfg := testBootstrapConfig(t)
			cfg.Platform = platform

			steps, err := bootstrapStepsFor(cfg)
			assert.NoError(t, err)
			assert.Nil(t, steps)
		})
	}
}

func TestBootstrapPlatformFlagIsNormalized(t *testing.T) {
	t.Setenv("LOCALAPPDATA", `C:\Users\agent\AppData\Local`)

	cfg := testBootstrapConfig(t)
	cfg.Platform = "  Windows "

	steps, err := bootstrapStepsFor(cfg)
	assert.NoError(t, err)
	assert.NotEmpty(t, steps)
}

func TestBuildBootstrapStepsRequiresLocalAppData(t *testing.T) {
	t.Setenv("LOCALAPPDATA", "")

	_, err := buildBootstrapSteps(testBootstrapConfig(t))
	assert.Error(t, err)
}

func TestInstallerGuardFailsBeforeInvocation(t *testing.T) {
	t.Setenv("LOCALAPPDATA", `C:\Users\agent\AppData\Local`)

	cfg := testBootstrapConfig(t)
	steps, err := buildBootstrapSteps(cfg)
	assert.NoError(t, err)

	var guardIndex, installerIndex int
	for i, step := range steps {
		switch step.Name {
		case "check installer script":
			guardIndex = i
		case "run installer":
			installerIndex = i
		}
	}

	// The existence check runs before the installer is ever invoked
	assert.Less(t, guardIndex, installerIndex)

	err = steps[guardIndex].Run()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "installer script not found")

	// Once the script exists the guard passes
	installer := lib.InstallerPath(cfg.Checkout, cfg.Installer)
	if err := os.MkdirAll(filepath.Dir(installer), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(installer, []byte("@echo off\n"), 0755); err != nil {
		t.Fatal(err)
	}
	assert.NoError(t, steps[guardIndex].Run())
}
