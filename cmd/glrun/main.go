package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/sys"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/glbridge/backend/headless"
	"github.com/wippyai/glbridge/backend/opengl"
	"github.com/wippyai/glbridge/bridge"
	"github.com/wippyai/glbridge/glapi"
	"github.com/wippyai/glbridge/host"
)

type options struct {
	wasmFile    string
	entry       string
	module      string
	backend     string
	frames      int
	wasi        bool
	trace       bool
	list        bool
	verbose     bool
	interactive bool
}

func main() {
	var opts options
	flag.StringVar(&opts.wasmFile, "wasm", "", "Path to guest wasm module")
	flag.StringVar(&opts.entry, "entry", "", "Export to call first (default: _start, run or main)")
	flag.IntVar(&opts.frames, "frames", 0, "Call the frame export N times after the entry point")
	flag.BoolVar(&opts.wasi, "wasi", false, "Provide wasi_snapshot_preview1 to the guest")
	flag.StringVar(&opts.module, "module", host.DefaultModuleName, "Import module name for GL functions")
	flag.StringVar(&opts.backend, "backend", "headless", "GL backend: headless or opengl (needs a current context)")
	flag.BoolVar(&opts.trace, "trace", false, "Print the recorded GL call trace (headless only)")
	flag.BoolVar(&opts.list, "list", false, "List host GL functions and exit")
	flag.BoolVar(&opts.verbose, "v", false, "Debug logging")
	flag.BoolVar(&opts.interactive, "i", false, "Interactive trace viewer with TUI (headless only)")
	flag.Parse()

	if opts.list {
		listSignatures()
		return
	}

	if opts.wasmFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: glrun -wasm <guest.wasm> [-entry name] [-frames N] [-wasi] [-trace]")
		fmt.Fprintln(os.Stderr, "       glrun -list")
		fmt.Fprintln(os.Stderr, "       glrun -wasm <guest.wasm> -i  (interactive trace viewer)")
		os.Exit(1)
	}

	log, err := newLogger(opts.verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(opts, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)
	if verbose {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	bridge.SetLogger(log.Named("bridge"))
	host.SetLogger(log.Named("host"))
	opengl.SetLogger(log.Named("opengl"))
	return log, nil
}

func listSignatures() {
	for _, sig := range host.Signatures() {
		fmt.Println(formatSignature(sig))
	}
}

func formatSignature(sig host.Signature) string {
	params := make([]string, len(sig.Params))
	for i, p := range sig.Params {
		params[i] = sig.ParamNames[i] + ": " + api.ValueTypeName(p)
	}
	result := ""
	if len(sig.Results) > 0 {
		result = " -> " + api.ValueTypeName(sig.Results[0])
	}
	return sig.Name + "(" + strings.Join(params, ", ") + ")" + result
}

// session is one loaded guest bound to a GL backend.
type session struct {
	rt       wazero.Runtime
	env      *host.Env
	guest    *host.Guest
	recorder *headless.GL
	closeGL  func()
	entry    string
}

func open(ctx context.Context, opts options, log *zap.Logger) (*session, error) {
	data, err := os.ReadFile(opts.wasmFile)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	s := &session{closeGL: func() {}}
	var gl glapi.GL
	switch opts.backend {
	case "headless":
		s.recorder = headless.New()
		gl = s.recorder
	case "opengl":
		ogl, err := opengl.New()
		if err != nil {
			return nil, err
		}
		gl = ogl
		s.closeGL = ogl.Close
	default:
		return nil, fmt.Errorf("unknown backend %q", opts.backend)
	}

	env, err := host.New(gl,
		host.WithModuleName(opts.module),
		host.WithLogger(log.Named("gl")))
	if err != nil {
		s.closeGL()
		return nil, err
	}
	s.env = env

	s.rt = wazero.NewRuntime(ctx)
	if err := env.Register(ctx, s.rt); err != nil {
		s.close(ctx)
		return nil, err
	}

	s.guest, err = host.LoadGuest(ctx, s.rt, data, host.GuestConfig{
		Name:   "guest",
		WASI:   opts.wasi,
		Args:   []string{opts.wasmFile},
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
	if err != nil {
		s.close(ctx)
		return nil, err
	}

	s.entry = opts.entry
	if s.entry == "" {
		for _, name := range []string{"_start", "run", "main"} {
			if s.guest.Has(name) {
				s.entry = name
				break
			}
		}
	}
	return s, nil
}

func (s *session) close(ctx context.Context) {
	if s.env != nil {
		s.env.Close()
	}
	if s.rt != nil {
		_ = s.rt.Close(ctx)
	}
	s.closeGL()
}

// start calls the entry point. A WASI exit with code 0 is success.
func (s *session) start(ctx context.Context) error {
	if s.entry == "" {
		return nil
	}
	_, err := s.guest.Call(ctx, s.entry)
	var exitErr *sys.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 0 {
		return nil
	}
	if err != nil {
		return fmt.Errorf("call %s: %w", s.entry, err)
	}
	return nil
}

// frame calls the guest's frame export once. It reports false when the guest has none.
func (s *session) frame(ctx context.Context) (bool, error) {
	if !s.guest.Has("frame") {
		return false, nil
	}
	if _, err := s.guest.Call(ctx, "frame"); err != nil {
		return true, fmt.Errorf("call frame: %w", err)
	}
	return true, nil
}

func run(opts options, log *zap.Logger) error {
	ctx := context.Background()

	s, err := open(ctx, opts, log)
	if err != nil {
		return err
	}
	defer s.close(ctx)

	if opts.interactive {
		if s.recorder == nil {
			return fmt.Errorf("interactive viewer needs the headless backend")
		}
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("interactive viewer needs a terminal")
		}
		return runInteractive(ctx, s, opts.wasmFile)
	}

	if s.entry == "" {
		log.Warn("no entry point found", zap.String("file", opts.wasmFile))
	}
	if err := s.start(ctx); err != nil {
		return err
	}

	for i := 0; i < opts.frames; i++ {
		ok, err := s.frame(ctx)
		if err != nil {
			return err
		}
		if !ok {
			log.Warn("guest has no frame export")
			break
		}
	}

	if opts.trace && s.recorder != nil {
		fmt.Println("--- trace ---")
		for _, c := range s.recorder.Trace() {
			fmt.Printf("%6d %s\n", c.Seq, c)
		}
	}

	fmt.Println("--- handles ---")
	for _, st := range s.env.Bridge().Stats() {
		fmt.Printf("%-18s live %-6d issued %d\n", st.Kind, st.Live, st.Issued)
	}
	if s.recorder != nil {
		fmt.Printf("draw calls: %d, pending error: %s\n",
			s.recorder.Draws(), glapi.ErrorName(s.recorder.PendingError()))
	}
	return nil
}
