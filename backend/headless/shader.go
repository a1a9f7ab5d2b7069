package headless

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wippyai/glbridge/glapi"
)

var (
	mainFunc  = regexp.MustCompile(`\bvoid\s+main\s*\(`)
	errorLine = regexp.MustCompile(`^\s*#\s*error\b\s*(.*)$`)
	attribute = regexp.MustCompile(`(?m)^\s*attribute\s+(?:(?:lowp|mediump|highp)\s+)?\w+\s+(\w+)\s*;`)
	uniform   = regexp.MustCompile(`(?m)^\s*uniform\s+(?:(?:lowp|mediump|highp)\s+)?\w+\s+(\w+)\s*(?:\[\s*\d+\s*\])?\s*;`)
)

// compile returns the info log for source, empty on success.
func compile(source string) string {
	lines := strings.Split(source, "\n")
	var log strings.Builder
	for i, line := range lines {
		if m := errorLine.FindStringSubmatch(line); m != nil {
			fmt.Fprintf(&log, "ERROR: 0:%d: '#error' : %s\n", i+1, strings.TrimSpace(m[1]))
		}
	}
	if !mainFunc.MatchString(source) {
		fmt.Fprintf(&log, "ERROR: 0:%d: '' : missing main function\n", len(lines))
	}
	return log.String()
}

// link validates the attached shaders and assigns attribute and uniform
// locations in declaration order. Caller holds g.mu.
func (g *GL) link(p *programObject) {
	p.linked = false
	p.attribs = nil
	p.uniforms = nil
	p.values = nil

	var vertex, fragment *shaderObject
	for _, name := range p.shaders {
		s, ok := g.shaders.get(name)
		if !ok || !s.compiled {
			continue
		}
		switch s.kind {
		case glapi.VERTEX_SHADER:
			vertex = s
		case glapi.FRAGMENT_SHADER:
			fragment = s
		}
	}

	var log strings.Builder
	if vertex == nil {
		log.WriteString("ERROR: program is missing a compiled vertex shader\n")
	}
	if fragment == nil {
		log.WriteString("ERROR: program is missing a compiled fragment shader\n")
	}
	p.log = log.String()
	if p.log != "" {
		return
	}

	p.attribs = declared(attribute, vertex.source)
	p.uniforms = declared(uniform, vertex.source, fragment.source)
	p.values = make(map[int32][]float32)
	p.linked = true
}

// declared numbers the names captured by re across sources in first-seen order.
func declared(re *regexp.Regexp, sources ...string) map[string]int32 {
	out := make(map[string]int32)
	for _, src := range sources {
		for _, m := range re.FindAllStringSubmatch(src, -1) {
			if _, ok := out[m[1]]; !ok {
				out[m[1]] = int32(len(out))
			}
		}
	}
	return out
}
