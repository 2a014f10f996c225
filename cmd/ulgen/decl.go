package main

// Library names the native shared library exporting a symbol.
type Library string

const (
	LibWebCore    Library = "WebCore"
	LibUltralight Library = "Ultralight"
	LibAppCore    Library = "AppCore"
)

// Libraries lists the native libraries in load order.
var Libraries = []Library{LibWebCore, LibUltralight, LibAppCore}

// Param is a single function or callback parameter.
type Param struct {
	Name   string
	CType  string
	GoType string
}

// Func is an exported C entry point.
type Func struct {
	Name    string
	Library Library
	Params  []Param
	Result  string // Go type, empty for void
	ResultC string
	ByValue bool // at least one struct is passed by value
}

// EnumValue is a single enumerator.
type EnumValue struct {
	Name  string
	Value int64
}

// Enum is a typedef'd C enum.
type Enum struct {
	Name   string
	Values []EnumValue
}

// Field is a struct member.
type Field struct {
	Name   string
	CType  string
	GoType string
}

// Struct is a typedef'd C struct with a visible body.
type Struct struct {
	Name   string
	Fields []Field
}

// Alias is a typedef of another named or scalar type.
type Alias struct {
	Name    string
	Target  string // Go type
	TargetC string
	Handle  bool // aliases an opaque handle
}

// Callback is a function-pointer typedef. It is represented as uintptr in Go,
// the parameter list is kept to resolve type reachability.
type Callback struct {
	Name    string
	Params  []Param
	ResultC string
}

// Decls is everything collected from a header tree.
type Decls struct {
	Handles   []string
	Aliases   []Alias
	Enums     []Enum
	Structs   []Struct
	Callbacks []Callback
	Funcs     []Func
}
