package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	e := NewNetwork("http://example.com/", "request failed", stderrors.New("connection refused"))
	assert.Equal(t, "[network] http://example.com/: request failed - connection refused", e.Error())

	s := NewStatus("http://example.com/", 503)
	assert.Equal(t, "[status] http://example.com/: unexpected status code: 503", s.Error())
	assert.Equal(t, 503, s.StatusCode)
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	e := NewStorage("upc-1", "insert failed", cause)
	assert.ErrorIs(t, e, cause)
}

func TestIsFatal(t *testing.T) {
	assert.True(t, NewStorage("x", "m", nil).IsFatal())
	assert.True(t, NewConfiguration("m", nil).IsFatal())
	assert.False(t, NewNetwork("x", "m", nil).IsFatal())
	assert.False(t, NewTimeout("x", nil).IsFatal())
	assert.False(t, NewNormalization("x", "m").IsFatal())
}

func TestTypeOf(t *testing.T) {
	assert.Equal(t, ErrorTypeTimeout, TypeOf(NewTimeout("x", nil)))
	assert.Equal(t, ErrorTypeParsing, TypeOf(fmt.Errorf("wrapped: %w", NewParsing("x", "m", nil))))
	assert.Equal(t, ErrorType(""), TypeOf(stderrors.New("plain")))
}
