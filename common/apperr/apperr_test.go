package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	err := NotFound("Organization not found: id=%d", 7)
	assert.Equal(t, "Organization not found: id=7", err.Error())
	assert.Equal(t, http.StatusNotFound, err.Status())

	err = Conflict("Work act fault already exists: workActId=%d, faultTypeId=%d", 5, 3)
	assert.Equal(t, http.StatusConflict, err.Status())

	err = Invalid("executorOrgId is required")
	assert.Equal(t, http.StatusBadRequest, err.Status())
}

func TestKindChecks(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("x")))
	assert.True(t, IsConflict(Conflict("x")))
	assert.True(t, IsInvalid(Invalid("x")))
	assert.False(t, IsNotFound(errors.New("plain")))
}

func TestWrapping(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal(cause)

	assert.Equal(t, "internal error", err.Error())
	assert.Equal(t, http.StatusInternalServerError, err.Status())
	assert.True(t, errors.Is(err, cause))

	// kind survives another layer of wrapping
	wrapped := fmt.Errorf("list work acts: %w", NotFound("Work act not found: id=9"))
	assert.True(t, IsNotFound(wrapped))
}
