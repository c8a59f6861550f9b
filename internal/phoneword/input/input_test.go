package input

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isseis/go-phoneword/internal/common"
)

func TestFromReader(t *testing.T) {
	content := "6146795\n\n  059-4-5-3336  \r\n33548-7572\n"
	numbers, err := FromReader(strings.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, []string{"6146795", "059-4-5-3336", "33548-7572"}, numbers)
}

func TestFromReaderEmpty(t *testing.T) {
	numbers, err := FromReader(strings.NewReader("\n\n"))
	require.NoError(t, err)
	assert.Empty(t, numbers)
}

func TestFromFile(t *testing.T) {
	fs := common.NewMockFileSystem()
	fs.AddFile("/numbers.txt", []byte("112\n4824\n"))

	numbers, err := FromFile(fs, "/numbers.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"112", "4824"}, numbers)
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile(common.NewMockFileSystem(), "/missing.txt")
	assert.Error(t, err)
}
