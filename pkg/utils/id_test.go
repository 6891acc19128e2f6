package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9a-z]{12}$`)
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		id, err := GenerateID()
		require.NoError(t, err)
		assert.Regexp(t, pattern, id)
		seen[id] = struct{}{}
	}

	assert.Len(t, seen, 100)
}
