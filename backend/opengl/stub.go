//go:build !opengl

package opengl

import (
	"github.com/wippyai/glbridge/errors"
	"github.com/wippyai/glbridge/glapi"
)

// GL is unavailable in builds without the opengl tag.
type GL struct {
	glapi.GL
}

// New reports that OpenGL support was not compiled in.
func New() (*GL, error) {
	return nil, errors.ContextUnavailable("built without opengl support", nil)
}

// Version returns an empty string.
func (g *GL) Version() string {
	return ""
}

// Close does nothing.
func (g *GL) Close() {}
