package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
		excludes []string
	}{
		{
			name:     "invalid handle",
			err:      InvalidHandle("buffer", 3, "handle was deleted"),
			contains: []string{"[resolve]", "invalid_handle", "buffer 3", "handle was deleted"},
		},
		{
			name:     "compile failure with log",
			err:      CompileFailure(0, "ERROR: 0:1: 'main' : function not defined\n"),
			contains: []string{"[compile]", "compile_failure", "shader 0", "error compiling shader", "'main' : function not defined"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase:  PhaseMarshal,
				Kind:   KindOutOfBounds,
				Handle: NoHandle,
			},
			contains: []string{"[marshal]", "out_of_bounds"},
			excludes: []string{"caused by"},
		},
		{
			name:     "error with cause",
			err:      ContextUnavailable("no current context", errors.New("glGetString returned NULL")),
			contains: []string{"[setup]", "context_unavailable", "no current context", "caused by", "glGetString returned NULL"},
		},
		{
			name:     "resource without handle",
			err:      New(PhaseDispatch, KindInvalidInput).Resource("texture").Detail("bad level").Build(),
			contains: []string{"texture: bad level"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				assert.Contains(t, msg, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, msg, s)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Load("instantiate guest", cause)

	assert.ErrorIs(t, err.Unwrap(), cause)
	assert.ErrorIs(t, err, cause)
}

func TestError_Is(t *testing.T) {
	err := InvalidHandle("texture", 7, "out of range")

	assert.True(t, err.Is(&Error{Phase: PhaseResolve, Kind: KindInvalidHandle}))
	assert.False(t, err.Is(&Error{Phase: PhaseMarshal, Kind: KindInvalidHandle}))
	assert.False(t, err.Is(&Error{Phase: PhaseResolve, Kind: KindOutOfBounds}))

	wrapped := fmt.Errorf("glBindTexture: %w", err)
	assert.ErrorIs(t, wrapped, ErrInvalidHandle)
	assert.NotErrorIs(t, wrapped, ErrCompileFailure)
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseLink, KindLinkFailure).
		Resource("program").
		Handle(2).
		Log("missing fragment shader").
		Cause(cause).
		Detail("link %s", "failed").
		Build()

	assert.Equal(t, PhaseLink, err.Phase)
	assert.Equal(t, KindLinkFailure, err.Kind)
	assert.Equal(t, "program", err.Resource)
	assert.Equal(t, uint64(2), err.Handle)
	assert.Equal(t, "missing fragment shader", err.Log)
	assert.Equal(t, "link failed", err.Detail)
	assert.ErrorIs(t, err, cause)
}

func TestBuilder_DefaultsToNoHandle(t *testing.T) {
	err := New(PhaseHost, KindRegistration).Resource("env").Build()
	assert.Equal(t, NoHandle, err.Handle)
	assert.NotContains(t, err.Error(), "18446744073709551615")
}

func TestKindOf(t *testing.T) {
	kind, ok := KindOf(fmt.Errorf("wrapped: %w", LinkFailure(1, "log")))
	require.True(t, ok)
	assert.Equal(t, KindLinkFailure, kind)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("OutOfBounds", func(t *testing.T) {
		err := OutOfBounds(PhaseMarshal, 100, 8, 64)
		assert.Equal(t, KindOutOfBounds, err.Kind)
		assert.Contains(t, err.Detail, "[100, 108)")
		assert.Contains(t, err.Detail, "64 bytes")
	})

	t.Run("NoMemory", func(t *testing.T) {
		err := NoMemory(PhaseMarshal)
		assert.Equal(t, KindOutOfBounds, err.Kind)
		assert.Equal(t, "no guest memory", err.Detail)
	})

	t.Run("Overflow", func(t *testing.T) {
		err := Overflow(PhaseMarshal, uint64(1<<40), "u32")
		assert.Equal(t, KindOverflow, err.Kind)
		assert.Contains(t, err.Detail, "overflows u32")
	})

	t.Run("LinkFailure", func(t *testing.T) {
		err := LinkFailure(4, "no vertex shader")
		assert.ErrorIs(t, err, ErrLinkFailure)
		assert.Equal(t, "no vertex shader", err.Log)
	})

	t.Run("Registration", func(t *testing.T) {
		err := Registration("env", "glClear", errors.New("duplicate"))
		assert.Equal(t, PhaseHost, err.Phase)
		assert.Contains(t, err.Error(), "env.glClear")
	})

	t.Run("Closed", func(t *testing.T) {
		err := Closed(PhaseResolve, "buffer table")
		assert.Equal(t, KindClosed, err.Kind)
		assert.Equal(t, "buffer table is closed", err.Detail)
	})

	t.Run("InvalidInput", func(t *testing.T) {
		err := InvalidInput(PhaseMarshal, "string too long")
		assert.Equal(t, KindInvalidInput, err.Kind)
	})
}
