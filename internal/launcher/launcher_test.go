package launcher

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTargetString(t *testing.T) {
	tests := []struct {
		target Target
		want   string
	}{
		{Target{Host: "web1", Login: "root"}, "root@web1"},
		{Target{Host: "web1"}, "web1"},
	}
	for _, tt := range tests {
		if got := tt.target.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestSSHArgs(t *testing.T) {
	tests := []struct {
		name   string
		extra  []string
		target Target
		want   []string
	}{
		{"with login", nil, Target{Host: "web1", Login: "root"}, []string{"-l", "root", "web1"}},
		{"without login", nil, Target{Host: "web1"}, []string{"web1"}},
		{"extra args first", []string{"-A"}, Target{Host: "web1", Login: "me"}, []string{"-A", "-l", "me", "web1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &SSH{ExtraArgs: tt.extra}
			if diff := cmp.Diff(tt.want, s.Args(tt.target)); diff != "" {
				t.Errorf("Args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// writeScript creates an executable shell script standing in for ssh.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on Windows")
	}
	path := filepath.Join(t.TempDir(), "fake-ssh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSSHLaunch_PassesArguments(t *testing.T) {
	script := writeScript(t, "echo \"$@\"\n")

	var stdout bytes.Buffer
	s := &SSH{Command: script, Stdin: strings.NewReader(""), Stdout: &stdout, Stderr: &bytes.Buffer{}}
	if err := s.Launch(context.Background(), Target{Host: "web1", Login: "root"}); err != nil {
		t.Fatalf("Launch failed: %v", err)
	}
	if got := strings.TrimSpace(stdout.String()); got != "-l root web1" {
		t.Errorf("ssh received %q, want %q", got, "-l root web1")
	}
}

func TestSSHLaunch_ExitCode(t *testing.T) {
	script := writeScript(t, "exit 255\n")

	s := &SSH{Command: script, Stdin: strings.NewReader(""), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	err := s.Launch(context.Background(), Target{Host: "web1"})

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *ExitError, got %v", err)
	}
	if exitErr.Code != 255 {
		t.Errorf("exit code = %d, want 255", exitErr.Code)
	}
}

func TestSSHLaunch_KilledBySignal(t *testing.T) {
	script := writeScript(t, "kill -9 $$\n")

	s := &SSH{Command: script, Stdin: strings.NewReader(""), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	err := s.Launch(context.Background(), Target{Host: "web1"})

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *ExitError, got %v", err)
	}
	if exitErr.Code != 128+9 {
		t.Errorf("exit code = %d, want %d", exitErr.Code, 128+9)
	}
}

func TestSSHLaunch_MissingClient(t *testing.T) {
	s := &SSH{Command: filepath.Join(t.TempDir(), "no-such-ssh")}
	if err := s.Launch(context.Background(), Target{Host: "web1"}); err == nil {
		t.Fatal("expected error for missing ssh client, got nil")
	}
}

func TestSSHLaunch_EmptyHost(t *testing.T) {
	s := &SSH{}
	if err := s.Launch(context.Background(), Target{}); err == nil {
		t.Fatal("expected error for empty host, got nil")
	}
}
