// Package filehelper holds the filename utilities the file and rotatefile
// backends both need: splitting a path into stem and extension for
// building archive names, and making sure a path's parent directory
// exists before a backend opens it.
package filehelper

import (
	"os"
	"path/filepath"
	"strings"
)

// SplitExtension returns (stemWithDirs, extensionWithDot) for name. Only
// the last dot in the leaf component is considered; a leaf that is nothing
// but a leading dot (a dotfile like ".bashrc") has no extension.
func SplitExtension(name string) (stem string, extension string) {
	dir := filepath.Dir(name)
	leaf := filepath.Base(name)

	idx := strings.LastIndex(leaf, ".")
	if idx <= 0 {
		return name, ""
	}

	stemLeaf := leaf[:idx]
	ext := leaf[idx:]

	return filepath.Join(dir, stemLeaf), ext
}

// EnsureParentDir creates every missing intermediate directory in name's
// parent, the Go analogue of mkdir -p. It is a no-op when name has no
// parent component.
func EnsureParentDir(name string) error {
	dir := filepath.Dir(name)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
