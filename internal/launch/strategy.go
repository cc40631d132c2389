package launch

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/atomicstack/justlist/internal/logging/events"
	"golang.org/x/term"
)

// Strategy starts the process described by a Spec.
type Strategy interface {
	Launch(ctx context.Context, spec Spec) error
}

// Strategy names accepted by ForPlatform.
const (
	NameAuto       = "auto"
	NameForeground = "foreground"
	NameDetached   = "detached"
	NameTmux       = "tmux"
)

// Names lists the accepted strategy names.
func Names() []string {
	return []string{NameAuto, NameForeground, NameDetached, NameTmux}
}

// Foreground runs the command synchronously on the supplied streams and
// reports a non-zero exit status as an error.
type Foreground struct {
	// Stdin defaults to the controlling terminal, opened for each launch.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (f Foreground) Launch(ctx context.Context, spec Spec) error {
	cmd, err := command(ctx, spec)
	if err != nil {
		return err
	}
	cmd.Stdin = f.Stdin
	if cmd.Stdin == nil {
		in, closeIn := terminalInput()
		defer closeIn()
		cmd.Stdin = in
	}
	cmd.Stdout = f.Stdout
	cmd.Stderr = f.Stderr
	events.Launch.Start(cmd.Args, "foreground")
	if err := cmd.Run(); err != nil {
		events.Launch.Error(err)
		return fmt.Errorf("run %s: %w", cmd.Path, err)
	}
	return nil
}

// Detached starts the command in its own session with no terminal attached
// and does not wait for it.
type Detached struct{}

func (Detached) Launch(ctx context.Context, spec Spec) error {
	argv, err := spec.Argv()
	if err != nil {
		return err
	}
	// The child must outlive the picker, so it is not bound to ctx.
	cmd := exec.Command(argv[0], argv[1:]...)
	detachProcess(cmd)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	events.Launch.Start(cmd.Args, "detached")
	if err := cmd.Start(); err != nil {
		events.Launch.Error(err)
		return fmt.Errorf("start %s: %w", argv[0], err)
	}
	return cmd.Process.Release()
}

// Tmux runs the command in a new tmux window, detached from the picker.
type Tmux struct {
	SocketPath string
	Binary     string
}

func (t Tmux) Launch(ctx context.Context, spec Spec) error {
	argv, err := spec.Argv()
	if err != nil {
		return err
	}
	bin := t.Binary
	if bin == "" {
		bin = "tmux"
	}
	args := append(t.baseArgs(), "new-window", "--")
	args = append(args, argv...)
	cmd := exec.CommandContext(ctx, bin, args...)
	events.Launch.Start(cmd.Args, "tmux")
	if out, err := cmd.CombinedOutput(); err != nil {
		events.Launch.Error(err)
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			return fmt.Errorf("tmux new-window: %w: %s", err, msg)
		}
		return fmt.Errorf("tmux new-window: %w", err)
	}
	return nil
}

func (t Tmux) baseArgs() []string {
	if strings.TrimSpace(t.SocketPath) == "" {
		return []string{}
	}
	return []string{"-S", t.SocketPath}
}

// Auto honours Spec.Terminal: terminal specs run in the foreground, all others
// are detached.
type Auto struct {
	Foreground Strategy
	Detached   Strategy
}

func (a Auto) Launch(ctx context.Context, spec Spec) error {
	if spec.Terminal {
		return a.Foreground.Launch(ctx, spec)
	}
	return a.Detached.Launch(ctx, spec)
}

// ForPlatform selects the strategy for name on the given GOOS. Platforms that
// cannot detach always launch in the foreground.
func ForPlatform(goos, name string) (Strategy, error) {
	fg := Foreground{Stdout: os.Stdout, Stderr: os.Stderr}
	if !canDetach(goos) {
		return fg, nil
	}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameAuto:
		return Auto{Foreground: fg, Detached: Detached{}}, nil
	case NameForeground:
		return fg, nil
	case NameDetached:
		return Detached{}, nil
	case NameTmux:
		return Tmux{SocketPath: tmuxSocket()}, nil
	default:
		return nil, fmt.Errorf("unknown launcher %q (want one of %s)", name, strings.Join(Names(), ", "))
	}
}

// terminalInput returns the controlling terminal for foreground commands. When
// the catalog was piped in, stdin is exhausted and /dev/tty is used instead.
// The returned func releases anything opened here.
func terminalInput() (io.Reader, func()) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return os.Stdin, func() {}
	}
	if tty, err := os.Open("/dev/tty"); err == nil {
		return tty, func() { tty.Close() }
	}
	return os.Stdin, func() {}
}

func canDetach(goos string) bool {
	return goos != "windows"
}

func tmuxSocket() string {
	if tmuxEnv := os.Getenv("TMUX"); tmuxEnv != "" {
		parts := strings.Split(tmuxEnv, ",")
		if len(parts) > 0 {
			return parts[0]
		}
	}
	return ""
}

func command(ctx context.Context, spec Spec) (*exec.Cmd, error) {
	argv, err := spec.Argv()
	if err != nil {
		return nil, err
	}
	return exec.CommandContext(ctx, argv[0], argv[1:]...), nil
}

// Run hands spec to strategy unless the spec carries no executable.
func Run(ctx context.Context, strategy Strategy, spec Spec) error {
	if spec.Noop() {
		events.Launch.Noop()
		return nil
	}
	events.Launch.Resolved(spec.Executable, spec.Argument, spec.Terminal)
	return strategy.Launch(ctx, spec)
}
