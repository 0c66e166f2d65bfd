package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("senha12345")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "senha12345", hash)

	assert.True(t, Verify("senha12345", hash))
	assert.False(t, Verify("errada", hash))
}

func TestValidate(t *testing.T) {
	assert.True(t, Validate("senha12345"))
	assert.True(t, Validate("12345678"))
	assert.False(t, Validate("curta"))
	assert.False(t, Validate(""))
}
