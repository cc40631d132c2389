//go:build !windows

package launch

import (
	"os/exec"
	"syscall"
)

// detachProcess starts cmd in a new session so it is not tied to the picker's terminal.
func detachProcess(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}
}
