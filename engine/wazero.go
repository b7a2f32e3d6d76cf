package engine

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/rjkit/jsonpad/errors"
)

// Guest ABI: the engine module exports
//
//	alloc(size: u32) -> ptr: u32
//	parse(ptr: u32, len: u32) -> out: u32
//	format(ptr: u32, len: u32) -> out: u32
//
// where out points at a region laid out as
//
//	[status u32][len u32][bytes ...]
//
// status 0 carries the transformed text, status 1 carries the
// transformation error message.
const (
	exportAlloc  = "alloc"
	exportParse  = "parse"
	exportFormat = "format"

	statusOK = 0
)

// Wazero hosts a wasm build of the transformation engine. Create one
// with LoadWazero; the zero value rejects every call. Not safe for
// concurrent use.
type Wazero struct {
	runtime wazero.Runtime
	module  api.Module
	alloc   api.Function
	parse   api.Function
	format  api.Function
}

// LoadWazero compiles and instantiates the engine module. This is the
// one-time initialization step: until it returns, no transform may be
// attempted, and the returned engine is the only handle that can issue
// calls.
func LoadWazero(ctx context.Context, wasmBytes []byte) (*Wazero, error) {
	r := wazero.NewRuntime(ctx)

	mod, err := r.Instantiate(ctx, wasmBytes)
	if err != nil {
		r.Close(ctx)
		return nil, errors.Load("instantiate engine module", err)
	}

	e := &Wazero{runtime: r, module: mod}
	exports := []struct {
		name string
		dst  *api.Function
	}{
		{exportAlloc, &e.alloc},
		{exportParse, &e.parse},
		{exportFormat, &e.format},
	}
	for _, exp := range exports {
		fn := mod.ExportedFunction(exp.name)
		if fn == nil {
			r.Close(ctx)
			return nil, errors.NotFound(errors.PhaseLoad, "export", exp.name)
		}
		*exp.dst = fn
	}

	Logger().Debug("engine module loaded",
		zap.Int("wasm_bytes", len(wasmBytes)),
		zap.String("module", mod.Name()))

	return e, nil
}

// Parse invokes the guest parse export.
func (e *Wazero) Parse(ctx context.Context, input string) (string, error) {
	return e.call(ctx, exportParse, e.parse, errors.PhaseParse, input)
}

// Format invokes the guest format export.
func (e *Wazero) Format(ctx context.Context, input string) (string, error) {
	return e.call(ctx, exportFormat, e.format, errors.PhaseFormat, input)
}

// Close releases the runtime. Further calls fail with not_initialized.
func (e *Wazero) Close(ctx context.Context) error {
	if e.runtime == nil {
		return nil
	}
	err := e.runtime.Close(ctx)
	e.runtime = nil
	e.module = nil
	e.alloc, e.parse, e.format = nil, nil, nil
	return err
}

func (e *Wazero) call(ctx context.Context, name string, fn api.Function, phase errors.Phase, input string) (string, error) {
	if e.module == nil || fn == nil {
		return "", errors.NotInitialized(errors.PhaseCall, "engine")
	}

	var ptr uint64
	if len(input) > 0 {
		results, err := e.alloc.Call(ctx, uint64(len(input)))
		if err != nil {
			return "", errors.Trap(exportAlloc, err)
		}
		if len(results) == 0 {
			return "", errors.InvalidInput(errors.PhaseCall, "alloc returned no value")
		}
		ptr = results[0]
		if !e.module.Memory().Write(uint32(ptr), []byte(input)) {
			return "", errors.InvalidInput(errors.PhaseCall, "input region out of bounds")
		}
	}

	results, err := fn.Call(ctx, ptr, uint64(len(input)))
	if err != nil {
		return "", errors.Trap(name, err)
	}
	if len(results) == 0 {
		return "", errors.InvalidInput(errors.PhaseCall, name+" returned no value")
	}

	out := uint32(results[0])
	mem := e.module.Memory()
	status, ok := mem.ReadUint32Le(out)
	if !ok {
		return "", errors.InvalidInput(errors.PhaseCall, "result header out of bounds")
	}
	size, ok := mem.ReadUint32Le(out + 4)
	if !ok {
		return "", errors.InvalidInput(errors.PhaseCall, "result header out of bounds")
	}
	data, ok := mem.Read(out+8, size)
	if !ok {
		return "", errors.InvalidInput(errors.PhaseCall, "result payload out of bounds")
	}

	if status != statusOK {
		return "", errors.InvalidInput(phase, string(data))
	}
	return string(data), nil
}
