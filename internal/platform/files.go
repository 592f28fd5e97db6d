package platform

import (
	"os"
	"path/filepath"
)

// File and directory modes used for everything the CLI writes.
const (
	DirMode  os.FileMode = 0o755
	FileMode os.FileMode = 0o644
)

// WriteFile writes data to path, creating missing parent directories.
func WriteFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirMode); err != nil {
		return Filesystem("creating directory", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, FileMode); err != nil {
		return Filesystem("writing", path, err)
	}
	return nil
}

// Exists reports whether anything (file, directory, symlink) lives at path.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsFile reports whether path exists and is a regular file.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
