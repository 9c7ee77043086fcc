package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codeError struct{ code int }

func (e *codeError) Error() string { return fmt.Sprintf("code %d", e.code) }

func TestAsType(t *testing.T) {
	wrapped := Wrap(&codeError{code: 7}, "outer")

	got, ok := AsType[*codeError](wrapped)
	assert.True(t, ok)
	assert.Equal(t, 7, got.code)

	_, ok = AsType[*codeError](New("plain"))
	assert.False(t, ok)
}

func TestIsThroughWrap(t *testing.T) {
	base := New("base")
	assert.True(t, Is(Wrapf(base, "ctx %d", 1), base))
	assert.True(t, Is(Join(New("other"), base), base))
}
