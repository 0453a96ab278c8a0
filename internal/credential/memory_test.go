package credential_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricehawk/internal/credential"
)

func TestMemory(t *testing.T) {
	m := &credential.Memory{}

	_, err := m.Get()
	assert.True(t, errors.Is(err, credential.ErrNotFound))

	require.NoError(t, m.Set("token-1"))
	token, err := m.Get()
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)

	require.NoError(t, m.Set("token-2"))
	token, err = m.Get()
	require.NoError(t, err)
	assert.Equal(t, "token-2", token)

	require.NoError(t, m.Clear())
	_, err = m.Get()
	assert.True(t, errors.Is(err, credential.ErrNotFound))
}

func TestMemoryStoresEmptyToken(t *testing.T) {
	m := &credential.Memory{}
	require.NoError(t, m.Set(""))

	token, err := m.Get()
	require.NoError(t, err)
	assert.Empty(t, token)
}
