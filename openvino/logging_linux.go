package openvino

import "syscall"

// restoreStderr duplicates fd back to 2. syscall.Dup2 is not available in all linux architectures.
func restoreStderr(fd int) error {
	return syscall.Dup3(fd, 2, 0)
}
