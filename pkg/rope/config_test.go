package rope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseTraitsFillsDefaults(t *testing.T) {
	traits, err := ParseTraits([]byte("branch_factor: 8\n"))
	require.NoError(t, err)

	assert.Equal(t, 8, traits.BranchFactor)
	assert.Equal(t, DefaultTraits.BufSize, traits.BufSize)
	assert.False(t, traits.Debug)
}

func TestParseTraitsAllFields(t *testing.T) {
	traits, err := ParseTraits([]byte("branch_factor: 6\nbuf_size: 64\ndebug: true\n"))
	require.NoError(t, err)

	assert.Equal(t, 6, traits.BranchFactor)
	assert.Equal(t, 64, traits.BufSize)
	assert.True(t, traits.Debug)
}

func TestTraitsMarshalYAMLRoundTrips(t *testing.T) {
	traits := &Traits{BranchFactor: 4, BufSize: 512, Debug: true}

	out, err := yaml.Marshal(traits)
	require.NoError(t, err)

	parsed, err := ParseTraits(out)
	require.NoError(t, err)
	assert.Equal(t, traits.BranchFactor, parsed.BranchFactor)
	assert.Equal(t, traits.BufSize, parsed.BufSize)
	assert.Equal(t, traits.Debug, parsed.Debug)
}

func TestParseTraitsRejectsInvalidYAML(t *testing.T) {
	_, err := ParseTraits([]byte("not: [valid"))
	assert.Error(t, err)
}
