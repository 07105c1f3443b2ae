package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("year %d out of range", 1800)))
	assert.Equal(t, KindConflict, KindOf(Conflict("duplicate")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("crop")))
	assert.Equal(t, KindStorage, KindOf(errors.New("disk on fire")))

	wrapped := fmt.Errorf("outer: %w", NotFound("season"))
	assert.True(t, Is(wrapped, KindNotFound))
	assert.False(t, Is(nil, KindStorage))
}

func TestNotFoundCarriesEntity(t *testing.T) {
	var e *Error
	assert.True(t, errors.As(NotFound("crop"), &e))
	assert.Equal(t, "crop", e.Entity)
	assert.Equal(t, "crop not found", e.Error())
}

func TestMessageHidesStorageCause(t *testing.T) {
	cause := errors.New("pq: connection reset")
	err := Storage(cause, "create producer")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to create producer", Message(err))
	assert.Equal(t, "internal error", Message(cause))
	assert.Equal(t, "tax id is invalid", Message(Validation("tax id is invalid")))
}
