//go:build windows

package fsdur

import "os"

// Sync calls File.Sync, which maps to FlushFileBuffers on windows. There is
// no separate low-level syscall worth reaching past os for on this
// platform, unlike the unix fsync(2) path.
func Sync(f *os.File) error {
	return f.Sync()
}
