package host

import (
	"context"
	"io"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"go.uber.org/zap"

	"github.com/wippyai/glbridge/errors"
)

// GuestConfig controls how a guest module is instantiated.
type GuestConfig struct {
	Stdout io.Writer
	Stderr io.Writer
	// Name is the module name inside the runtime. Empty means anonymous.
	Name string
	Args []string
	// WASI instantiates wasi_snapshot_preview1 before the guest.
	WASI bool
}

// Guest is an instantiated guest module.
type Guest struct {
	mod api.Module
}

// LoadGuest compiles and instantiates wasm in rt. The host module must
// already be registered. A reactor-style guest exporting _initialize has it
// called once after instantiation.
func LoadGuest(ctx context.Context, rt wazero.Runtime, wasm []byte, cfg GuestConfig) (*Guest, error) {
	if cfg.WASI {
		if _, err := wasi_snapshot_preview1.Instantiate(ctx, rt); err != nil {
			return nil, errors.Load("instantiate wasi", err)
		}
	}

	compiled, err := rt.CompileModule(ctx, wasm)
	if err != nil {
		return nil, errors.Load("compile guest", err)
	}

	modCfg := wazero.NewModuleConfig().
		WithName(cfg.Name).
		WithStartFunctions()
	if cfg.Stdout != nil {
		modCfg = modCfg.WithStdout(cfg.Stdout)
	}
	if cfg.Stderr != nil {
		modCfg = modCfg.WithStderr(cfg.Stderr)
	}
	if len(cfg.Args) > 0 {
		modCfg = modCfg.WithArgs(cfg.Args...)
	}

	mod, err := rt.InstantiateModule(ctx, compiled, modCfg)
	if err != nil {
		return nil, errors.Load("instantiate guest", err)
	}

	if init := mod.ExportedFunction("_initialize"); init != nil {
		if _, err := init.Call(ctx); err != nil {
			_ = mod.Close(ctx)
			return nil, errors.Load("call _initialize", err)
		}
	}

	Logger().Debug("guest loaded",
		zap.String("name", cfg.Name),
		zap.Bool("wasi", cfg.WASI),
		zap.Int("exports", len(compiled.ExportedFunctions())))
	return &Guest{mod: mod}, nil
}

// Module returns the underlying wazero module.
func (g *Guest) Module() api.Module {
	return g.mod
}

// Has reports whether the guest exports a function called name.
func (g *Guest) Has(name string) bool {
	return g.mod.ExportedFunction(name) != nil
}

// Call invokes an exported function with raw wasm values.
// A trap raised by a host function is returned as the error.
func (g *Guest) Call(ctx context.Context, name string, args ...uint64) ([]uint64, error) {
	fn := g.mod.ExportedFunction(name)
	if fn == nil {
		return nil, errors.New(errors.PhaseDispatch, errors.KindInvalidInput).
			Detail("guest does not export %q", name).
			Build()
	}
	return fn.Call(ctx, args...)
}

// Close closes the guest module.
func (g *Guest) Close(ctx context.Context) error {
	return g.mod.Close(ctx)
}
