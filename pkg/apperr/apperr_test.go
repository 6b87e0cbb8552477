package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	errTaken := New(KindConflict, "TAKEN", "already taken")

	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{name: "direct", err: errTaken, expected: KindConflict},
		{name: "wrapped", err: fmt.Errorf("reserve: %w", errTaken), expected: KindConflict},
		{name: "plain error", err: errors.New("boom"), expected: KindInternal},
		{name: "nil", err: nil, expected: KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindOf(tt.err))
		})
	}
}

func TestSentinelIdentity(t *testing.T) {
	errA := New(KindNotFound, "A_NOT_FOUND", "a not found")
	errB := New(KindNotFound, "A_NOT_FOUND", "a not found")

	wrapped := fmt.Errorf("lookup: %w", errA)
	assert.ErrorIs(t, wrapped, errA)
	assert.NotErrorIs(t, wrapped, errB)
	assert.Equal(t, "A_NOT_FOUND", CodeOf(wrapped))
	assert.Equal(t, "a not found", errA.Error())
}

func TestIsKind(t *testing.T) {
	err := New(KindForbidden, "FORBIDDEN", "nope")
	assert.True(t, IsKind(err, KindForbidden))
	assert.False(t, IsKind(err, KindInvalid))
	assert.False(t, IsKind(nil, KindInternal))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "not_found", KindNotFound.String())
	assert.Equal(t, "forbidden", KindForbidden.String())
	assert.Equal(t, "conflict", KindConflict.String())
	assert.Equal(t, "invalid", KindInvalid.String())
	assert.Equal(t, "internal", KindInternal.String())
}
