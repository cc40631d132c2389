//go:build windows

package launch

import (
	"os/exec"
	"syscall"
)

// detachProcess configures cmd to run in its own process group on Windows.
func detachProcess(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP,
	}
}
