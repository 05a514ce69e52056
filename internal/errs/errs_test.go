package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	assert.Equal(t, Internal, CodeOf(nil))
	assert.Equal(t, Internal, CodeOf(errors.New("plain")))
	assert.Equal(t, NotFound, CodeOf(New(NotFound, "no note matches 7")))

	wrapped := fmt.Errorf("rename: %w", New(InvalidArgument, "empty name"))
	assert.Equal(t, InvalidArgument, CodeOf(wrapped))
}

func TestErrorText(t *testing.T) {
	cause := errors.New("disk full")
	assert.Equal(t, "save notes: disk full", Wrap(Unavailable, "save notes", cause).Error())
	assert.Equal(t, "not_found", (&Error{Code: NotFound}).Error())
	assert.ErrorIs(t, Wrap(Unavailable, "save notes", cause), cause)
	assert.Equal(t, "", MessageOf(nil))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{New(InvalidArgument, "bad"), 2},
		{New(NotFound, "missing"), 2},
		{New(Unavailable, "down"), 1},
		{errors.New("boom"), 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExitCode(tt.err), "ExitCode(%v)", tt.err)
	}
}
