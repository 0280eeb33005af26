package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{"validation", Validation("bad date"), http.StatusBadRequest},
		{"validation with fields", &Error{Kind: KindValidation, Fields: map[string][]string{"name": {"is required"}}}, http.StatusUnprocessableEntity},
		{"not found", NotFound("employee not found"), http.StatusNotFound},
		{"conflict", Conflict("emp_code already exists"), http.StatusConflict},
		{"unauthorized", Unauthorized("invalid credentials"), http.StatusUnauthorized},
		{"forbidden", Forbidden("inactive"), http.StatusForbidden},
		{"internal", Internal("db down", errors.New("boom")), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.HTTPStatus())
		})
	}
}

func TestErrorsIsMatchesKind(t *testing.T) {
	err := fmt.Errorf("load: %w", NotFound("employee not found"))

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrConflict))
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
}

func TestErrorMessageAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("failed to save", cause)

	assert.Equal(t, "failed to save: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "employee not found", NotFound("employee not found").Error())
}

func TestFromValidator(t *testing.T) {
	type payload struct {
		Name   string `validate:"required"`
		Salary int    `validate:"gte=0"`
	}
	v := validator.New()

	err := FromValidator(v.Struct(payload{Salary: -1}))

	require.Equal(t, KindValidation, err.Kind)
	assert.Equal(t, http.StatusUnprocessableEntity, err.HTTPStatus())
	assert.Equal(t, []string{"is required"}, err.Fields["Name"])
	assert.Equal(t, []string{"must be greater than or equal to 0"}, err.Fields["Salary"])
}

func TestFromValidatorPlainError(t *testing.T) {
	err := FromValidator(errors.New("bad payload"))
	assert.Equal(t, KindValidation, err.Kind)
	assert.Empty(t, err.Fields)
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus())
}
