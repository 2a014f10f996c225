package ultralight

import (
	"errors"
	"fmt"
)

var (
	// ErrNotLoaded is returned by Load when a native library cannot be opened.
	ErrNotLoaded = errors.New("ultralight: native library not loaded")

	// ErrConfigConsumed is the panic value of a Config or ViewConfig setter
	// called after the object was used to build a Renderer or View.
	ErrConfigConsumed = errors.New("ultralight: config modified after use")

	// ErrPNGWrite is returned when the engine fails to encode a bitmap.
	ErrPNGWrite = errors.New("ultralight: failed to write PNG")
)

// SymbolError reports an entry point missing from a native library.
type SymbolError struct {
	Library string
	Symbol  string
	Err     error
}

func (e *SymbolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ultralight: failed to load symbol %s from %s: %v", e.Symbol, e.Library, e.Err)
	}
	return fmt.Sprintf("ultralight: failed to load symbol %s from %s", e.Symbol, e.Library)
}

func (e *SymbolError) Unwrap() error { return e.Err }

// ScriptError is returned by View.EvaluateScript when the script throws.
type ScriptError struct {
	Message string
}

func (e *ScriptError) Error() string {
	return "ultralight: script exception: " + e.Message
}
