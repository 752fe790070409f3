package session

import (
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
)

func TestResolve_ExistingToken(t *testing.T) {
	provider := NewProvider()
	existing := uuid.Must(uuid.NewV4())

	token, minted, err := provider.Resolve(uuid.NullUUID{UUID: existing, Valid: true})

	assert.NoError(t, err)
	assert.False(t, minted)
	assert.Equal(t, existing, token)
}

func TestResolve_MintsWhenAbsent(t *testing.T) {
	provider := NewProvider()

	token, minted, err := provider.Resolve(uuid.NullUUID{})

	assert.NoError(t, err)
	assert.True(t, minted)
	assert.NotEqual(t, uuid.Nil, token)
}

func TestResolve_MintedTokensAreUnique(t *testing.T) {
	provider := NewProvider()

	first, _, err := provider.Resolve(uuid.NullUUID{})
	assert.NoError(t, err)
	second, _, err := provider.Resolve(uuid.NullUUID{})
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestRequire_ExistingToken(t *testing.T) {
	provider := NewProvider()
	existing := uuid.Must(uuid.NewV4())

	token, err := provider.Require(uuid.NullUUID{UUID: existing, Valid: true})

	assert.NoError(t, err)
	assert.Equal(t, existing, token)
}

func TestRequire_AbsentToken(t *testing.T) {
	provider := NewProvider()

	_, err := provider.Require(uuid.NullUUID{})

	assert.ErrorIs(t, err, ErrNoSession)
}
