package errors

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errDirtySchema = New("dirty schema")

func TestIgnore(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected []error
		want     error
	}{
		{name: "nil stays nil", err: nil, expected: []error{io.EOF}, want: nil},
		{name: "expected outcome is dropped", err: io.EOF, expected: []error{io.EOF}, want: nil},
		{name: "wrapped expected outcome is dropped", err: Wrap(io.EOF, "read version"), expected: []error{errDirtySchema, io.EOF}, want: nil},
		{name: "other errors pass through", err: errDirtySchema, expected: []error{io.EOF}, want: errDirtySchema},
		{name: "no expectations passes through", err: errDirtySchema, want: errDirtySchema},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Ignore(tt.err, tt.expected...))
		})
	}
}

func TestWrap_KeepsCauseAndStack(t *testing.T) {
	err := Wrap(errDirtySchema, "migration up")

	assert.True(t, Is(err, errDirtySchema))
	assert.Equal(t, errDirtySchema, Cause(err))
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWrap_KeepsCauseAndStack")
	assert.NoError(t, Wrap(nil, "no-op"))
}
