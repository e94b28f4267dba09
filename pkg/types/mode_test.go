package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	for _, spelling := range []string{"subdir", "flatten", "respect"} {
		mode, err := ParseMode(spelling)
		require.NoError(t, err)
		assert.Equal(t, spelling, mode.String())
	}
}

func TestParseModeUnknown(t *testing.T) {
	_, err := ParseMode("explode")
	assert.Error(t, err)
}
