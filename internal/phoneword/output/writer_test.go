package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isseis/go-phoneword/internal/phoneword/encoding"
)

func TestConsoleWriterPlain(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewConsoleWriter(&buf, false)
	require.NoError(t, err)

	require.NoError(t, w.WriteEncoding(encoding.Encoded{Number: "08-3-7-1823", Text: "aid 7 mild"}))
	require.NoError(t, w.WriteEncoding(encoding.Encoded{Number: "08-3-7-1823", Text: "aid 7 m ilk"}))
	require.NoError(t, w.Close())

	assert.Equal(t, "08-3-7-1823: aid 7 mild\n08-3-7-1823: aid 7 m ilk\n", buf.String())
}

func TestConsoleWriterColorized(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewConsoleWriter(&buf, true)
	require.NoError(t, err)

	require.NoError(t, w.WriteEncoding(encoding.Encoded{Number: "112", Text: "1 f 2"}))
	require.NoError(t, w.Close())

	out := buf.String()
	assert.Contains(t, out, "\033[36m112\033[0m: 1 f 2")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestConsoleWriterBuffersUntilClose(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewConsoleWriter(&buf, false)
	require.NoError(t, err)

	require.NoError(t, w.WriteEncoding(encoding.Encoded{Number: "7", Text: "7"}))
	assert.Empty(t, buf.String(), "output is buffered until Close")

	require.NoError(t, w.Close())
	assert.Equal(t, "7: 7\n", buf.String())
}

func TestNewConsoleWriterNil(t *testing.T) {
	_, err := NewConsoleWriter(nil, false)
	assert.ErrorIs(t, err, ErrNilWriter)
}

func TestCollectWriter(t *testing.T) {
	var w CollectWriter
	require.NoError(t, w.WriteEncoding(encoding.Encoded{Number: "7", Text: "7"}))
	require.NoError(t, w.WriteEncoding(encoding.Encoded{Number: "1", Text: "m"}))
	require.NoError(t, w.Close())

	assert.Equal(t, []encoding.Encoded{
		{Number: "7", Text: "7"},
		{Number: "1", Text: "m"},
	}, w.Encodings)
}
