package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConsumeIsSingleUse(t *testing.T) {
	store := NewResetTokens()
	store.Set("tok", "user@example.com", time.Minute)

	assert.Equal(t, "user@example.com", store.Consume("tok"))
	assert.Equal(t, "", store.Consume("tok"))
}

func TestConsumeExpired(t *testing.T) {
	store := NewResetTokens()
	store.Set("tok", "user@example.com", -time.Second)

	assert.Equal(t, "", store.Consume("tok"))
}

func TestConsumeUnknownToken(t *testing.T) {
	store := NewResetTokens()
	assert.Equal(t, "", store.Consume("nope"))
}

func TestPeekDoesNotConsume(t *testing.T) {
	store := NewResetTokens()
	store.Set("tok", "user@example.com", time.Minute)

	email, ok := store.Peek("tok")
	assert.True(t, ok)
	assert.Equal(t, "user@example.com", email)

	// Still consumable afterwards.
	assert.Equal(t, "user@example.com", store.Consume("tok"))
}

func TestPeekExpired(t *testing.T) {
	store := NewResetTokens()
	store.Set("tok", "user@example.com", -time.Second)

	_, ok := store.Peek("tok")
	assert.False(t, ok)
}
