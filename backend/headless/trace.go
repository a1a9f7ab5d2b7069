package headless

import (
	"fmt"
	"strings"
)

// Call is one recorded invocation.
type Call struct {
	Seq  uint64
	Name string
	Args []any
}

func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		switch v := a.(type) {
		case string:
			args[i] = fmt.Sprintf("%q", truncate(v, 32))
		case uint32:
			args[i] = fmt.Sprintf("0x%X", v)
		default:
			args[i] = fmt.Sprint(v)
		}
	}
	return fmt.Sprintf("%s(%s)", c.Name, strings.Join(args, ", "))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// record appends a call to the trace. Caller holds g.mu.
func (g *GL) record(name string, args ...any) {
	if !g.tracing {
		return
	}
	g.seq++
	g.trace = append(g.trace, Call{Seq: g.seq, Name: name, Args: args})
}

// Trace returns a copy of the recorded calls.
func (g *GL) Trace() []Call {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]Call, len(g.trace))
	copy(out, g.trace)
	return out
}

// Reset clears the recorded calls. Object state is kept.
func (g *GL) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.trace = nil
}
