package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordMatches(t *testing.T) {
	hash, err := HashPassword("cardigan")
	require.NoError(t, err)
	assert.True(t, IsBcryptHash(hash))

	assert.True(t, PasswordMatches(hash, "cardigan"))
	assert.False(t, PasswordMatches(hash, "august"))

	assert.False(t, IsBcryptHash("cardigan"))
	assert.True(t, PasswordMatches("cardigan", "cardigan"))
	assert.False(t, PasswordMatches("cardigan", "Cardigan"))
}
