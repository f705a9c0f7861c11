package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValid(t *testing.T) {
	assert.True(t, Valid("65f2a7c9e4b0d83fa1c62b04"))
	assert.True(t, Valid("65F2A7C9E4B0D83FA1C62B04"))

	assert.False(t, Valid(""))
	assert.False(t, Valid("65f2a7c9"), "too short")
	assert.False(t, Valid("65f2a7c9e4b0d83fa1c62b04aa"), "too long")
	assert.False(t, Valid("65f2a7c9e4b0d83fa1c62bzz"), "non-hex characters")
}

func TestShort(t *testing.T) {
	assert.Equal(t, "c62b04", Short("65f2a7c9e4b0d83fa1c62b04"))
	assert.Equal(t, "abc", Short("abc"))
}

func TestParse(t *testing.T) {
	got, err := Parse("65f2a7c9e4b0d83fa1c62b04")
	require.NoError(t, err)
	assert.Equal(t, "65f2a7c9e4b0d83fa1c62b04", got)

	_, err = Parse("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid report ID")
}
