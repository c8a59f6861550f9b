package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorWrapsText(t *testing.T) {
	assert.Equal(t, "\033[36mtext\033[0m", Cyan("text"))
	assert.Equal(t, "\033[32mok\033[0m", Green("ok"))
	assert.Equal(t, "\033[31mfail\033[0m", Red("fail"))
}

func TestNewColor(t *testing.T) {
	bold := NewColor("\033[1m")
	assert.Equal(t, "\033[1mx\033[0m", bold("x"))
}
