package player

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"syscall"
)

// ErrPlayerNotFound means the player binary is missing or cannot run.
var ErrPlayerNotFound = errors.New("player binary not found")

// Process is a running player.
type Process interface {
	Pid() int
	Terminate() error
}

// Launcher starts player processes.
type Launcher interface {
	Launch(binary string, args []string) (Process, error)
}

// ExecLauncher starts the player as a detached child with its standard
// streams connected to the null device.
type ExecLauncher struct{}

func (ExecLauncher) Launch(binary string, args []string) (Process, error) {
	cmd := exec.Command(binary, args...)
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	// Reap the child whenever it exits; nothing waits on it otherwise.
	go func() {
		_ = cmd.Wait()
	}()

	return &execProcess{cmd: cmd}, nil
}

type execProcess struct {
	cmd *exec.Cmd
}

func (p *execProcess) Pid() int {
	return p.cmd.Process.Pid
}

func (p *execProcess) Terminate() error {
	return p.cmd.Process.Signal(syscall.SIGTERM)
}

// BuildArgs returns the player arguments for a new session. The stream
// URL is always last.
func BuildArgs(volume int, socketPath, url string) []string {
	return []string{
		"--volume=" + strconv.Itoa(volume),
		"--input-ipc-server=" + socketPath,
		"--no-video",
		"--quiet",
		url,
	}
}

// DefaultSocketPath returns a control socket path unique to this process.
func DefaultSocketPath() string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("radio-cli-%d.sock", os.Getpid()))
}

// CheckBinary verifies that binary can be found and run.
func CheckBinary(binary string) error {
	path, err := exec.LookPath(binary)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrPlayerNotFound, binary, err)
	}

	if err := exec.Command(path, "--version").Run(); err != nil {
		return fmt.Errorf("%w: %s --version: %w", ErrPlayerNotFound, path, err)
	}
	return nil
}
