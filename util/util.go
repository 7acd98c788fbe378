// Package util holds small filesystem helpers shared by the config
// loader and the command-line entry point.
package util

import (
	"os"
)

// FileExists reports whether filename exists and is a regular file.
func FileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists reports whether dirName exists and is a directory.
func DirExists(dirName string) bool {
	info, err := os.Stat(dirName)
	if err != nil {
		return false
	}
	return info.IsDir()
}
