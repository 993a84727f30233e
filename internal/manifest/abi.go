package manifest

import "fmt"

// Abi identifies the binary-compatibility convention a module's wasm
// artifact expects at run time.
type Abi string

const (
	AbiNone       Abi = "none"
	AbiWasi       Abi = "wasi"
	AbiEmscripten Abi = "emscripten"
)

// WasiVersion is the last published version of the wasi interface. Modules
// targeting the wasi ABI pin their interface requirement to it.
const WasiVersion = "0.0.0-unstable"

// AbiChoices lists all ABIs in presentation order. The first entry is the
// default.
var AbiChoices = []Abi{AbiNone, AbiWasi, AbiEmscripten}

func (a Abi) String() string {
	return string(a)
}

// MarshalText implements encoding.TextMarshaler for TOML serialization.
func (a Abi) MarshalText() ([]byte, error) {
	return []byte(a), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown ABI names are
// rejected at parse time.
func (a *Abi) UnmarshalText(text []byte) error {
	switch Abi(text) {
	case AbiNone, AbiWasi, AbiEmscripten:
		*a = Abi(text)
		return nil
	default:
		return fmt.Errorf("unknown abi %q (expected one of none, wasi, emscripten)", string(text))
	}
}
