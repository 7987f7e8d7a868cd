package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuotaError(t *testing.T) {
	err := NewQuotaError("matches/v1/live")
	assert.Equal(t, "quota exceeded for matches/v1/live", err.Error())
	assert.True(t, IsQuotaError(err))
}

func TestIsQuotaErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("fetch failed: %w", NewQuotaError("mcenter/v1/1"))
	assert.True(t, IsQuotaError(wrapped))
	assert.False(t, IsQuotaError(fmt.Errorf("plain failure")))
}
