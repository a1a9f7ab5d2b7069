//go:build !opengl

package opengl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wippyai/glbridge/errors"
)

func TestNew_WithoutTag(t *testing.T) {
	g, err := New()
	assert.Nil(t, g)
	assert.ErrorIs(t, err, errors.ErrContextUnavailable)
	assert.ErrorContains(t, err, "built without opengl support")
}
