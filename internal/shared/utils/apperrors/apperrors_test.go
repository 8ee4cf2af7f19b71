package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOfWalksWrapChain(t *testing.T) {
	base := Conflict("seat already taken")
	wrapped := fmt.Errorf("checkout failed: %w", base)

	assert.Equal(t, KindConflict, KindOf(wrapped))
	assert.True(t, Is(wrapped, KindConflict))
	assert.False(t, Is(wrapped, KindNotFound))
}

func TestKindOfPlainErrorIsInternal(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{NotFound("missing"), http.StatusNotFound},
		{BadRequest("bad"), http.StatusBadRequest},
		{Conflict("taken"), http.StatusConflict},
		{Unauthorized("nope"), http.StatusUnauthorized},
		{Internal("broke", errors.New("db down")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), "for %v", tc.err)
	}
}

func TestErrorMessageIncludesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("failed to load event", cause)

	assert.Equal(t, "failed to load event: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
}
