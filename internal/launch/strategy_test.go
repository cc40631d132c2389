package launch

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"testing"
)

type recordingStrategy struct {
	calls []Spec
	err   error
}

func (r *recordingStrategy) Launch(_ context.Context, spec Spec) error {
	r.calls = append(r.calls, spec)
	return r.err
}

func TestRunSkipsNoop(t *testing.T) {
	rec := &recordingStrategy{}
	if err := Run(context.Background(), rec, Spec{Argument: "x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rec.calls) != 0 {
		t.Fatalf("expected no launch for noop spec, got %d", len(rec.calls))
	}
}

func TestRunPassesSpecAndError(t *testing.T) {
	boom := errors.New("boom")
	rec := &recordingStrategy{err: boom}
	spec := Spec{Executable: "qqq", Argument: "yyy"}
	if err := Run(context.Background(), rec, spec); !errors.Is(err, boom) {
		t.Fatalf("expected strategy error, got %v", err)
	}
	if len(rec.calls) != 1 || rec.calls[0] != spec {
		t.Fatalf("expected single launch of %#v, got %#v", spec, rec.calls)
	}
}

func TestAutoRoutesOnTerminal(t *testing.T) {
	fg := &recordingStrategy{}
	bg := &recordingStrategy{}
	auto := Auto{Foreground: fg, Detached: bg}
	_ = auto.Launch(context.Background(), Spec{Executable: "vim", Terminal: true})
	_ = auto.Launch(context.Background(), Spec{Executable: "xdg-open"})
	if len(fg.calls) != 1 || fg.calls[0].Executable != "vim" {
		t.Fatalf("expected terminal spec in foreground, got %#v", fg.calls)
	}
	if len(bg.calls) != 1 || bg.calls[0].Executable != "xdg-open" {
		t.Fatalf("expected non-terminal spec detached, got %#v", bg.calls)
	}
}

func TestForPlatform(t *testing.T) {
	cases := []struct {
		goos, name string
		check      func(Strategy) bool
	}{
		{"linux", "", func(s Strategy) bool { _, ok := s.(Auto); return ok }},
		{"linux", "auto", func(s Strategy) bool { _, ok := s.(Auto); return ok }},
		{"darwin", "Foreground", func(s Strategy) bool { _, ok := s.(Foreground); return ok }},
		{"linux", "detached", func(s Strategy) bool { _, ok := s.(Detached); return ok }},
		{"linux", "tmux", func(s Strategy) bool { _, ok := s.(Tmux); return ok }},
		{"windows", "detached", func(s Strategy) bool { _, ok := s.(Foreground); return ok }},
	}
	for _, tc := range cases {
		s, err := ForPlatform(tc.goos, tc.name)
		if err != nil {
			t.Fatalf("%s/%s: unexpected error: %v", tc.goos, tc.name, err)
		}
		if !tc.check(s) {
			t.Fatalf("%s/%s: unexpected strategy %T", tc.goos, tc.name, s)
		}
	}
	if _, err := ForPlatform("linux", "rocket"); err == nil {
		t.Fatalf("expected error for unknown launcher")
	}
}

func TestForPlatformDefersTerminalInput(t *testing.T) {
	s, err := ForPlatform("linux", "foreground")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fg, ok := s.(Foreground)
	if !ok {
		t.Fatalf("expected Foreground, got %T", s)
	}
	if fg.Stdin != nil {
		t.Fatalf("expected terminal input to be opened at launch, got %T", fg.Stdin)
	}
}

func TestTerminalInputReturnsCloser(t *testing.T) {
	in, closeIn := terminalInput()
	if in == nil || closeIn == nil {
		t.Fatalf("expected reader and close func")
	}
	closeIn()
}

func TestForegroundRunsCommand(t *testing.T) {
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("echo not available")
	}
	var out bytes.Buffer
	fg := Foreground{Stdout: &out, Stderr: &out}
	if err := fg.Launch(context.Background(), Spec{Executable: "echo", Argument: "hello world"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "hello world\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestForegroundReportsFailure(t *testing.T) {
	if _, err := exec.LookPath("false"); err != nil {
		t.Skip("false not available")
	}
	fg := Foreground{}
	if err := fg.Launch(context.Background(), Spec{Executable: "false", Argument: ""}); err == nil {
		t.Fatalf("expected non-zero exit to be reported")
	}
}

func TestDetachedReportsMissingBinary(t *testing.T) {
	err := Detached{}.Launch(context.Background(), Spec{Executable: "justlist-definitely-missing-binary", Argument: "x"})
	if err == nil {
		t.Fatalf("expected start failure")
	}
}

func TestTmuxBaseArgs(t *testing.T) {
	if got := (Tmux{}).baseArgs(); len(got) != 0 {
		t.Fatalf("expected no socket args, got %v", got)
	}
	got := Tmux{SocketPath: "/tmp/sock"}.baseArgs()
	if len(got) != 2 || got[0] != "-S" || got[1] != "/tmp/sock" {
		t.Fatalf("unexpected socket args %v", got)
	}
}
