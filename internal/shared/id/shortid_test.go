package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Length(t *testing.T) {
	generated, err := Generate(DefaultLength)
	require.NoError(t, err)
	assert.Len(t, generated, DefaultLength)

	for _, c := range generated {
		assert.Contains(t, alphabet, string(c))
	}
}

func TestGenerate_NonPositiveLengthFallsBack(t *testing.T) {
	generated, err := Generate(0)
	require.NoError(t, err)
	assert.Len(t, generated, DefaultLength)
}

func TestGenerateWithPrefix(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
	}{
		{name: "client", prefix: PrefixClient},
		{name: "plan", prefix: PrefixPlan},
		{name: "subscription", prefix: PrefixSubscription},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generated, err := GenerateWithPrefix(tt.prefix, DefaultLength)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(generated, tt.prefix+"_"))
			assert.Len(t, generated, len(tt.prefix)+1+DefaultLength)
			assert.NoError(t, ValidatePrefix(generated, tt.prefix))
		})
	}
}

func TestGenerate_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		generated, err := Generate(DefaultLength)
		require.NoError(t, err)
		_, dup := seen[generated]
		assert.False(t, dup)
		seen[generated] = struct{}{}
	}
}
