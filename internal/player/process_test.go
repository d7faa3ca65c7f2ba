package player

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestBuildArgs(t *testing.T) {
	args := BuildArgs(70, "/tmp/mpv.sock", "http://stream.example/live")

	expected := []string{
		"--volume=70",
		"--input-ipc-server=/tmp/mpv.sock",
		"--no-video",
		"--quiet",
		"http://stream.example/live",
	}

	if len(args) != len(expected) {
		t.Fatalf("BuildArgs() returned %d args, want %d: %v", len(args), len(expected), args)
	}
	for i := range expected {
		if args[i] != expected[i] {
			t.Errorf("args[%d] = %q, want %q", i, args[i], expected[i])
		}
	}
}

func TestDefaultSocketPath(t *testing.T) {
	path := DefaultSocketPath()

	if !strings.HasPrefix(path, os.TempDir()) {
		t.Errorf("DefaultSocketPath() = %q, want it under %q", path, os.TempDir())
	}
	if !strings.HasSuffix(path, ".sock") {
		t.Errorf("DefaultSocketPath() = %q, want .sock suffix", path)
	}
	if path != DefaultSocketPath() {
		t.Error("DefaultSocketPath() should be stable within a process")
	}
}

func TestCheckBinaryMissing(t *testing.T) {
	err := CheckBinary("radio-cli-no-such-player")
	if !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("CheckBinary() error = %v, want ErrPlayerNotFound", err)
	}
}

func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	path := filepath.Join(t.TempDir(), "fake-mpv")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestCheckBinaryRuns(t *testing.T) {
	path := writeScript(t, "exit 0")

	if err := CheckBinary(path); err != nil {
		t.Errorf("CheckBinary() error = %v", err)
	}
}

func TestCheckBinaryFailingVersion(t *testing.T) {
	path := writeScript(t, "exit 3")

	if err := CheckBinary(path); !errors.Is(err, ErrPlayerNotFound) {
		t.Errorf("CheckBinary() error = %v, want ErrPlayerNotFound", err)
	}
}

func TestExecLauncherStartsAndTerminates(t *testing.T) {
	path := writeScript(t, "exec sleep 30")

	process, err := ExecLauncher{}.Launch(path, nil)
	if err != nil {
		t.Fatalf("Launch() error = %v", err)
	}
	if process.Pid() <= 0 {
		t.Errorf("Pid() = %d, want positive", process.Pid())
	}

	if err := process.Terminate(); err != nil {
		t.Errorf("Terminate() error = %v", err)
	}
}

func TestExecLauncherMissingBinary(t *testing.T) {
	_, err := ExecLauncher{}.Launch(filepath.Join(t.TempDir(), "missing"), nil)
	if err == nil {
		t.Error("Launch() expected error for missing binary")
	}
}
