package cmd

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/opsfactor/buildprep-cli/lib"
)

var runCmd = &cobra.Command{
	Use:   "run [command...]",
	Short: "Run a command through the agent shell",
	Long: `
The supplied command is executed through the same shell plumbing the bootstrap sequence uses: output is streamed, signals are relayed, and the exit code of the command becomes the exit code of buildprep.

Example:
  $ buildprep run -- make -j4
	`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		subcommand := shellquote.Join(args...)
		os.Exit(RunCommand(subcommand))
	},
}

// RunCommand executes subcommand through the platform shell, streams its
// combined output, and returns its exit code.
func RunCommand(subcommand string) int {
	startTime := makeStamp()

	log(fmt.Sprintf("Running subcommand: %s", subcommand))

	execCmd := makeSubcommandExec(subcommand)
	execCmd.SysProcAttr = getPlatformSysProcAttr()
	execCmd.Env = os.Environ()

	// Handle stdin to the subcommand
	execCmdStdin, _ := execCmd.StdinPipe()
	defer execCmdStdin.Close()
	if stdinStat, err := os.Stdin.Stat(); err == nil && stdinStat.Size() > 0 {
		execStdIn, _ := io.ReadAll(os.Stdin)
		execCmdStdin.Write(execStdIn)
	}

	// Combine stdout and stderr from the command into a single buffer which we'll stream as stdout
	var combinedOutput bytes.Buffer
	var maxBufferSize = 2000
	if stdoutPipe, err := execCmd.StdoutPipe(); err == nil {
		streamAndAggregateOutput(&stdoutPipe, &combinedOutput, maxBufferSize)
		execCmd.Stderr = execCmd.Stdout
	}

	// Invoke subcommand and send a message when it's done
	waitCh := make(chan error, 1)
	go func() {
		defer close(waitCh)
		if err := execCmd.Start(); err != nil {
			waitCh <- err
		} else {
			waitCh <- execCmd.Wait()
		}
	}()

	// Relay incoming signals to the subprocess
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan)

	for {
		select {
		case sig := <-sigChan:
			if err := execCmd.Process.Signal(sig); err != nil {
				// Ignoring because the only time I've seen an err is when child process has already exited after kill was sent to pgroup
			}
		case err := <-waitCh:
			signal.Stop(sigChan)

			duration := formatStamp(makeStamp() - startTime)
			if err == nil {
				log(fmt.Sprintf("Subcommand complete    Elapsed time %ss", duration))
				return 0
			}

			exitCode := 1
			// This works on both Unix and Windows (syscall.WaitStatus is cross platform).
			// Cribbed from aws-vault.
			if exiterr, ok := err.(*exec.ExitError); ok {
				if status, ok := exiterr.Sys().(syscall.WaitStatus); ok {
					exitCode = status.ExitStatus()
				}
			}

			output := bytes.TrimRight(combinedOutput.Bytes(), "\n")
			log(fmt.Sprintf("Subcommand failed    Elapsed time %ss    Exit code %d    [%s] %s", duration, exitCode, err.Error(), output))
			return exitCode
		}
	}
}

// runShellStep adapts RunCommand to the sequencer's error contract.
func runShellStep(subcommand string) error {
	if exitCode := RunCommand(subcommand); exitCode != 0 {
		return lib.CommandError{Command: subcommand, Code: exitCode}
	}

	return nil
}

func makeSubcommandExec(subcommand string) *exec.Cmd {
	var execCmd *exec.Cmd
	if runtime.GOOS == "windows" {
		execCmd = exec.Command("cmd", "/c", subcommand)
	} else {
		execCmd = exec.Command("sh", "-c", subcommand)
	}

	return execCmd
}

func streamAndAggregateOutput(pipe *io.ReadCloser, outputBuffer *bytes.Buffer, maxOutputBufferSize int) {
	scanner := bufio.NewScanner(*pipe)
	go func() {
		for scanner.Scan() {
			fmt.Println(scanner.Text())
			// Ideally we would keep the last n bytes of output but keeping first n bytes easier and acceptable trade off for now..
			if len(scanner.Bytes())+outputBuffer.Len() <= maxOutputBufferSize {
				outputBuffer.Write(append(scanner.Bytes(), "\n"...))
			}
		}
	}()
}

func init() {
	RootCmd.AddCommand(runCmd)
}
