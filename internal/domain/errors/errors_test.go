package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Constructors(t *testing.T) {
	err := NewAppError(http.StatusBadRequest, "ERR_BAD_REQUEST", "bad", ErrInvalidInput)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "ERR_BAD_REQUEST", err.Code)
	assert.Equal(t, "bad", err.Message)
	assert.Equal(t, ErrInvalidInput.Error(), err.Error())

	notFound := NotFound("missing")
	assert.Equal(t, http.StatusNotFound, notFound.Status)
	assert.Equal(t, "ERR_NOT_FOUND", notFound.Code)
	assert.ErrorIs(t, notFound, ErrNotFound)

	badReq := BadRequest("bad request")
	assert.Equal(t, http.StatusBadRequest, badReq.Status)
	assert.Equal(t, "ERR_BAD_REQUEST", badReq.Code)
	assert.ErrorIs(t, badReq, ErrInvalidInput)

	conflict := Conflict("exists")
	assert.Equal(t, http.StatusConflict, conflict.Status)
	assert.Equal(t, "ERR_CONFLICT", conflict.Code)

	cause := stderrors.New("db down")
	internal := InternalError(cause)
	assert.Equal(t, http.StatusInternalServerError, internal.Status)
	assert.Equal(t, "ERR_INTERNAL", internal.Code)
	assert.ErrorIs(t, internal, cause)
	assert.Equal(t, "db down", internal.Error())
}

func TestAppError_MessageWhenNoCause(t *testing.T) {
	err := &AppError{Status: http.StatusBadRequest, Code: "ERR_BAD_REQUEST", Message: "only message"}
	assert.Equal(t, "only message", err.Error())
	assert.Nil(t, err.Unwrap())
}
