package common

import (
	"io/fs"
	"os"
	"time"
)

// MockFileSystem implements FileSystem for testing
type MockFileSystem struct {
	files map[string][]byte
}

// NewMockFileSystem creates an empty MockFileSystem
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files: make(map[string][]byte),
	}
}

// AddFile registers a file with the given contents
func (m *MockFileSystem) AddFile(path string, content []byte) {
	m.files[path] = content
}

// ReadFile reads a registered file's contents
func (m *MockFileSystem) ReadFile(path string) ([]byte, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	content, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(content))
	copy(out, content)
	return out, nil
}

// FileExists checks if a file was registered
func (m *MockFileSystem) FileExists(path string) (bool, error) {
	if path == "" {
		return false, ErrEmptyPath
	}
	_, ok := m.files[path]
	return ok, nil
}

// Lstat returns file information for a registered file
func (m *MockFileSystem) Lstat(path string) (fs.FileInfo, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	content, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "lstat", Path: path, Err: fs.ErrNotExist}
	}
	return &mockFileInfo{name: path, size: int64(len(content))}, nil
}

// mockFileInfo implements fs.FileInfo for registered files
type mockFileInfo struct {
	name string
	size int64
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return m.size }
func (m *mockFileInfo) Mode() os.FileMode  { return 0o644 }
func (m *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m *mockFileInfo) IsDir() bool        { return false }
func (m *mockFileInfo) Sys() any           { return nil }
