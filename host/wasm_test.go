package host

import (
	"github.com/tetratelabs/wazero/api"
)

// forwardingGuest assembles a core wasm module that imports every host
// function from module and re-exports a same-named trampoline for each.
// With memory set it also exports one page of memory. With init set, an
// _initialize export calls glCreateBuffer once.
func forwardingGuest(module string, init, memory bool) []byte {
	sigs := Signatures()

	var typeSec, importSec, funcSec, exportSec, codeSec []byte
	nTypes := len(sigs)
	nFuncs := len(sigs)
	if init {
		nTypes++
		nFuncs++
	}

	typeSec = uleb(typeSec, uint32(nTypes))
	importSec = uleb(importSec, uint32(len(sigs)))
	funcSec = uleb(funcSec, uint32(nFuncs))
	nExports := nFuncs
	if memory {
		nExports++
	}
	exportSec = uleb(exportSec, uint32(nExports))
	codeSec = uleb(codeSec, uint32(nFuncs))

	createBuffer := -1
	for i, sig := range sigs {
		typeSec = append(typeSec, 0x60)
		typeSec = valTypes(typeSec, sig.Params)
		typeSec = valTypes(typeSec, sig.Results)

		importSec = name(importSec, module)
		importSec = name(importSec, sig.Name)
		importSec = append(importSec, 0x00)
		importSec = uleb(importSec, uint32(i))

		funcSec = uleb(funcSec, uint32(i))

		exportSec = name(exportSec, sig.Name)
		exportSec = append(exportSec, 0x00)
		exportSec = uleb(exportSec, uint32(len(sigs)+i))

		body := []byte{0x00}
		for p := range sig.Params {
			body = append(body, 0x20)
			body = uleb(body, uint32(p))
		}
		body = append(body, 0x10)
		body = uleb(body, uint32(i))
		body = append(body, 0x0B)
		codeSec = uleb(codeSec, uint32(len(body)))
		codeSec = append(codeSec, body...)

		if sig.Name == "glCreateBuffer" {
			createBuffer = i
		}
	}

	if init {
		typeSec = append(typeSec, 0x60, 0x00, 0x00)
		funcSec = uleb(funcSec, uint32(len(sigs)))

		exportSec = name(exportSec, "_initialize")
		exportSec = append(exportSec, 0x00)
		exportSec = uleb(exportSec, uint32(2*len(sigs)))

		body := []byte{0x00, 0x10}
		body = uleb(body, uint32(createBuffer))
		body = append(body, 0x1A, 0x0B)
		codeSec = uleb(codeSec, uint32(len(body)))
		codeSec = append(codeSec, body...)
	}

	if memory {
		exportSec = name(exportSec, "memory")
		exportSec = append(exportSec, 0x02, 0x00)
	}

	out := []byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00}
	out = section(out, 1, typeSec)
	out = section(out, 2, importSec)
	out = section(out, 3, funcSec)
	if memory {
		out = section(out, 5, []byte{0x01, 0x00, 0x01})
	}
	out = section(out, 7, exportSec)
	out = section(out, 10, codeSec)
	return out
}

func section(out []byte, id byte, content []byte) []byte {
	out = append(out, id)
	out = uleb(out, uint32(len(content)))
	return append(out, content...)
}

func name(out []byte, s string) []byte {
	out = uleb(out, uint32(len(s)))
	return append(out, s...)
}

func valTypes(out []byte, ts []api.ValueType) []byte {
	out = uleb(out, uint32(len(ts)))
	return append(out, ts...)
}

func uleb(out []byte, v uint32) []byte {
	for {
		b := byte(v & 0x7F)
		v >>= 7
		if v != 0 {
			out = append(out, b|0x80)
			continue
		}
		return append(out, b)
	}
}
