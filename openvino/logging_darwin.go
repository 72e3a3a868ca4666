package openvino

import "syscall"

func restoreStderr(fd int) error {
	return syscall.Dup2(fd, 2)
}
