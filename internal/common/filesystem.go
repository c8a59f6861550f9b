// Package common provides shared interfaces and utilities used across the
// phoneword packages.
//
//nolint:revive // var-naming: package name "common" is intentional for shared internal utilities
package common

import (
	"errors"
	"io/fs"
	"os"
)

// Error definitions for static error handling
var (
	ErrEmptyPath = errors.New("path cannot be empty")
)

// FileSystem defines the file system operations the phoneword tools perform.
// The interface allows tests to substitute an in-memory implementation.
type FileSystem interface {
	// ReadFile reads the named file and returns its contents
	ReadFile(path string) ([]byte, error)

	// FileExists checks if a file or directory exists
	FileExists(path string) (bool, error)

	// Lstat returns file information without following symlinks
	Lstat(path string) (fs.FileInfo, error)
}

// DefaultFileSystem implements FileSystem using standard os package functions
type DefaultFileSystem struct{}

// NewDefaultFileSystem creates a new DefaultFileSystem
func NewDefaultFileSystem() *DefaultFileSystem {
	return &DefaultFileSystem{}
}

// ReadFile reads the named file and returns its contents
func (f *DefaultFileSystem) ReadFile(path string) ([]byte, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	return os.ReadFile(path) // #nosec G304 - paths come from validated configuration
}

// FileExists checks if a file or directory exists
func (f *DefaultFileSystem) FileExists(path string) (bool, error) {
	if path == "" {
		return false, ErrEmptyPath
	}
	_, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Lstat returns file information without following symlinks
func (f *DefaultFileSystem) Lstat(path string) (fs.FileInfo, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	return os.Lstat(path)
}
