package host

import (
	"context"
	"fmt"
	"reflect"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/glbridge"
	"github.com/wippyai/glbridge/bridge"
	"github.com/wippyai/glbridge/errors"
	"github.com/wippyai/glbridge/glapi"
)

// Env is the host side of one guest's graphics context.
type Env struct {
	bridge *bridge.Context
	caller api.Module
	log    *zap.Logger
	cfg    Config
}

// New creates an Env dispatching to gl.
func New(gl glapi.GL, opts ...Option) (*Env, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Env{cfg: cfg, log: cfg.Logger}
	if e.log == nil {
		e.log = Logger()
	}

	bopts := []bridge.Option{bridge.WithMaxStringLength(cfg.MaxStringLength)}
	if cfg.SlotReuse {
		bopts = append(bopts, bridge.WithSlotReuse())
	}
	for _, o := range cfg.Observers {
		bopts = append(bopts, bridge.WithObserver(o))
	}

	bc, err := bridge.New(gl, e.memory, bopts...)
	if err != nil {
		return nil, err
	}
	e.bridge = bc
	return e, nil
}

// Bridge returns the dispatch surface behind the host functions.
func (e *Env) Bridge() *bridge.Context {
	return e.bridge
}

// ModuleName returns the import module name the host functions are registered under.
func (e *Env) ModuleName() string {
	return e.cfg.ModuleName
}

// Register instantiates the host module in rt. It must run before any
// guest importing the module is instantiated.
func (e *Env) Register(ctx context.Context, rt wazero.Runtime) error {
	builder := rt.NewHostModuleBuilder(e.cfg.ModuleName)
	for _, sig := range signatures {
		builder = builder.NewFunctionBuilder().
			WithGoModuleFunction(e.hostFunc(sig), sig.Params, sig.Results).
			WithParameterNames(sig.ParamNames...).
			Export(sig.Name)
	}

	if _, err := builder.Instantiate(ctx); err != nil {
		return errors.New(errors.PhaseHost, errors.KindRegistration).
			Detail("instantiate host module %q", e.cfg.ModuleName).
			Cause(err).
			Build()
	}

	e.log.Debug("gl host module registered",
		zap.String("module", e.cfg.ModuleName),
		zap.Int("functions", len(signatures)))
	return nil
}

// Close deletes every live host object.
func (e *Env) Close() {
	e.bridge.Close()
}

// memory returns the linear memory of the module currently calling in.
func (e *Env) memory() glbridge.Memory {
	if e.caller == nil {
		return nil
	}
	mem := e.caller.Memory()
	if !isValidMemory(mem) {
		return nil
	}
	return mem
}

// isValidMemory reports whether mem is non-nil, including a typed nil
// behind the interface when the guest declares no memory.
func isValidMemory(mem api.Memory) bool {
	if mem == nil {
		return false
	}
	return !reflect.ValueOf(mem).IsNil()
}

func (e *Env) hostFunc(sig Signature) api.GoModuleFunc {
	return func(_ context.Context, mod api.Module, stack []uint64) {
		e.caller = mod
		defer func() { e.caller = nil }()

		if ce := e.log.Check(zap.DebugLevel, "gl call"); ce != nil {
			ce.Write(zap.String("func", sig.Name), zap.Uint64s("args", stack[:len(sig.Params)]))
		}

		if err := sig.dispatch(e.bridge, stack); err != nil {
			e.log.Error("gl call failed", zap.String("func", sig.Name), zap.Error(err))
			panic(fmt.Errorf("%s: %w", sig.Name, err))
		}
	}
}
