//go:build !windows

// Package fsdur forces durability of bytes a file backend has already
// written, the step between "the kernel has the bytes" and "the bytes
// survive a crash". On unix this is a raw fsync syscall via x/sys/unix.
package fsdur

import (
	"os"

	"golang.org/x/sys/unix"

	"logency/logerr"
)

// Sync calls fsync(2) on f's file descriptor.
func Sync(f *os.File) error {
	if err := unix.Fsync(int(f.Fd())); err != nil {
		return logerr.NewSystemError("fsync failed", err)
	}
	return nil
}
