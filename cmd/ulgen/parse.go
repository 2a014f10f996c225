package main

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineComment  = regexp.MustCompile(`//[^\n]*`)
	directive    = regexp.MustCompile(`(?m)^[ \t]*#[^\n]*$`)
	externC      = regexp.MustCompile(`extern\s+"C"\s*\{`)
	exportMacro  = regexp.MustCompile(`\b(?:ULExport|ACExport|JS_EXPORT)\s+`)

	opaqueRe   = regexp.MustCompile(`^typedef\s+(?:const\s+)?struct\s+\w+\s*\*\s*(\w+)$`)
	enumRe     = regexp.MustCompile(`(?s)^typedef\s+enum\s*\w*\s*\{(.*)\}\s*(\w+)$`)
	structRe   = regexp.MustCompile(`(?s)^typedef\s+struct\s*\w*\s*\{(.*)\}\s*(\w+)$`)
	callbackRe = regexp.MustCompile(`(?s)^typedef\s+(.+?)\s*\(\s*\*\s*(\w+)\s*\)\s*\((.*)\)$`)
	aliasRe    = regexp.MustCompile(`^typedef\s+(.+?)\s+(\w+)$`)
	funcRe     = regexp.MustCompile(`(?s)^(.+?)\s*\b(\w+)\s*\(([^()]*)\)`)
	identRe    = regexp.MustCompile(`^[A-Za-z_]\w*$`)
)

// cScalars maps C scalar spellings to their Go equivalents.
var cScalars = map[string]string{
	"bool":               "bool",
	"char":               "byte",
	"signed char":        "int8",
	"unsigned char":      "uint8",
	"short":              "int16",
	"unsigned short":     "uint16",
	"int":                "int32",
	"unsigned":           "uint32",
	"unsigned int":       "uint32",
	"long long":          "int64",
	"unsigned long long": "uint64",
	"float":              "float32",
	"double":             "float64",
	"size_t":             "uintptr",
	"int8_t":             "int8",
	"uint8_t":            "uint8",
	"int16_t":            "int16",
	"uint16_t":           "uint16",
	"int32_t":            "int32",
	"uint32_t":           "uint32",
	"int64_t":            "int64",
	"uint64_t":           "uint64",
}

// cKeywords are tokens that can end an unnamed parameter declaration.
var cKeywords = map[string]bool{
	"void": true, "bool": true, "char": true, "short": true, "int": true,
	"long": true, "unsigned": true, "signed": true, "float": true, "double": true,
}

var errUnsupported = errors.New("unsupported type")

type statement struct {
	file string
	text string
	lib  Library
}

// Parser collects declarations from C headers. Only names matching the
// allow-list are kept. Headers are added first and resolved together, so a
// type may be used before the header declaring it is added.
type Parser struct {
	allow     *regexp.Regexp
	stmts     []statement
	known     map[string]bool
	structs   map[string]bool
	callbacks map[string]bool
	handles   map[string]bool
	decls     Decls
	Warnings  []string
}

// NewParser returns a Parser restricted to names matching allow.
func NewParser(allow *regexp.Regexp) *Parser {
	return &Parser{
		allow:     allow,
		known:     make(map[string]bool),
		structs:   make(map[string]bool),
		callbacks: make(map[string]bool),
		handles:   make(map[string]bool),
	}
}

// Add queues a header. Entry points it declares are attributed to lib.
func (p *Parser) Add(name, src string, lib Library) error {
	stmts, err := statements(preprocess(src))
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	for _, s := range stmts {
		p.stmts = append(p.stmts, statement{file: name, text: s, lib: lib})
	}
	return nil
}

// Resolve parses every queued header.
func (p *Parser) Resolve() (Decls, error) {
	// Names first, so bodies can refer to types declared in any header.
	for _, s := range p.stmts {
		if err := p.declareName(s.text); err != nil {
			return Decls{}, fmt.Errorf("%s: %w", s.file, err)
		}
	}
	for _, s := range p.stmts {
		if m := aliasRe.FindStringSubmatch(s.text); m != nil && p.isPlainAlias(s.text) {
			p.alias(m[2], m[1])
		}
	}
	for _, s := range p.stmts {
		p.body(s.text)
	}
	for _, s := range p.stmts {
		p.function(s.text, s.lib)
	}
	return p.decls, nil
}

func (p *Parser) warnf(format string, args ...any) {
	p.Warnings = append(p.Warnings, fmt.Sprintf(format, args...))
}

func (p *Parser) isPlainAlias(s string) bool {
	return strings.HasPrefix(s, "typedef") &&
		!opaqueRe.MatchString(s) && !enumRe.MatchString(s) &&
		!structRe.MatchString(s) && !callbackRe.MatchString(s)
}

func (p *Parser) declareName(s string) error {
	if !strings.HasPrefix(s, "typedef") {
		return nil
	}
	if m := opaqueRe.FindStringSubmatch(s); m != nil {
		if p.allow.MatchString(m[1]) && !p.known[m[1]] {
			p.known[m[1]] = true
			p.handles[m[1]] = true
			p.decls.Handles = append(p.decls.Handles, m[1])
		}
		return nil
	}
	if m := enumRe.FindStringSubmatch(s); m != nil {
		if !p.allow.MatchString(m[2]) {
			return nil
		}
		values, err := enumValues(m[1])
		if err != nil {
			return fmt.Errorf("enum %s: %w", m[2], err)
		}
		p.known[m[2]] = true
		p.decls.Enums = append(p.decls.Enums, Enum{Name: m[2], Values: values})
		return nil
	}
	if m := structRe.FindStringSubmatch(s); m != nil {
		if p.allow.MatchString(m[2]) {
			p.known[m[2]] = true
			p.structs[m[2]] = true
		}
		return nil
	}
	if m := callbackRe.FindStringSubmatch(s); m != nil {
		if p.allow.MatchString(m[2]) {
			p.callbacks[m[2]] = true
		}
	}
	return nil
}

func (p *Parser) alias(name, target string) {
	if !p.allow.MatchString(name) || p.known[name] {
		return
	}
	target = normalizeCType(target)
	gt, err := p.goType(target, "")
	if err != nil {
		p.warnf("skipping alias %s: %v", name, err)
		return
	}
	p.known[name] = true
	p.handles[name] = p.handles[target]
	p.decls.Aliases = append(p.decls.Aliases, Alias{
		Name:    name,
		Target:  gt,
		TargetC: target,
		Handle:  p.handles[target],
	})
}

// body fills in struct fields and callback signatures.
func (p *Parser) body(s string) {
	if m := structRe.FindStringSubmatch(s); m != nil && p.structs[m[2]] {
		st := Struct{Name: m[2]}
		for _, f := range strings.Split(m[1], ";") {
			f = strings.TrimSpace(f)
			if f == "" {
				continue
			}
			ctype, name := splitDecl(f)
			gt, err := p.goType(ctype, name)
			if err != nil || gt == "" {
				p.warnf("skipping struct %s: field %q: %v", m[2], f, err)
				delete(p.known, m[2])
				delete(p.structs, m[2])
				return
			}
			st.Fields = append(st.Fields, Field{Name: name, CType: ctype, GoType: gt})
		}
		p.decls.Structs = append(p.decls.Structs, st)
		return
	}
	if m := callbackRe.FindStringSubmatch(s); m != nil && p.callbacks[m[2]] {
		params, err := p.params(m[3])
		if err != nil {
			p.warnf("callback %s: %v", m[2], err)
		}
		p.decls.Callbacks = append(p.decls.Callbacks, Callback{
			Name:    m[2],
			Params:  params,
			ResultC: normalizeCType(m[1]),
		})
	}
}

func (p *Parser) function(s string, lib Library) {
	loc := exportMacro.FindStringIndex(s)
	if loc == nil {
		return
	}
	m := funcRe.FindStringSubmatch(s[loc[1]:])
	if m == nil {
		return
	}
	name := m[2]
	if !p.allow.MatchString(name) {
		return
	}
	fn := Func{Name: name, Library: lib, ResultC: normalizeCType(m[1])}
	res, err := p.goType(fn.ResultC, "")
	if err != nil {
		p.warnf("skipping %s: result %q: %v", name, fn.ResultC, err)
		return
	}
	fn.Result = res
	params, err := p.params(m[3])
	if err != nil {
		p.warnf("skipping %s: %v", name, err)
		return
	}
	for _, prm := range params {
		if p.structs[prm.GoType] {
			fn.ByValue = true
		}
	}
	fn.Params = params
	p.decls.Funcs = append(p.decls.Funcs, fn)
}

func (p *Parser) params(list string) ([]Param, error) {
	list = strings.TrimSpace(list)
	if list == "" || list == "void" {
		return nil, nil
	}
	var out []Param
	for i, raw := range strings.Split(list, ",") {
		ctype, name := splitDecl(strings.TrimSpace(raw))
		if name == "" {
			name = "arg" + strconv.Itoa(i)
		}
		gt, err := p.goType(ctype, name)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", raw, err)
		}
		out = append(out, Param{Name: name, CType: ctype, GoType: gt})
	}
	return out, nil
}

// goType maps a normalised C type to Go. Opaque user_data slots become uintptr
// since they only ever carry side-table keys.
func (p *Parser) goType(ctype, name string) (string, error) {
	base := strings.TrimRight(ctype, "*")
	stars := len(ctype) - len(base)
	base = strings.TrimSpace(base)

	switch {
	case base == "void" && stars == 0:
		return "", nil
	case base == "void" && stars == 1:
		if name == "user_data" {
			return "uintptr", nil
		}
		return "unsafe.Pointer", nil
	case base == "void":
		return "", fmt.Errorf("%w: %s", errUnsupported, ctype)
	}
	if g, ok := cScalars[base]; ok {
		return strings.Repeat("*", stars) + g, nil
	}
	if p.callbacks[base] {
		if stars > 0 {
			return "", fmt.Errorf("%w: %s", errUnsupported, ctype)
		}
		return "uintptr", nil
	}
	if p.known[base] {
		return strings.Repeat("*", stars) + base, nil
	}
	return "", fmt.Errorf("%w: %s", errUnsupported, ctype)
}

// preprocess removes comments, directives and extern "C" wrappers.
func preprocess(src string) string {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	src = strings.ReplaceAll(src, "\\\n", " ")
	src = blockComment.ReplaceAllString(src, " ")
	src = lineComment.ReplaceAllString(src, "")
	src = directive.ReplaceAllString(src, "")
	return externC.ReplaceAllString(src, " ")
}

// statements splits src on top-level semicolons. Closing braces without an
// opener (left behind by extern "C") are dropped.
func statements(src string) ([]string, error) {
	var (
		out   []string
		cur   strings.Builder
		depth int
	)
	for _, r := range src {
		switch r {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				continue
			}
			depth--
		case ';':
			if depth == 0 {
				if s := collapse(cur.String()); s != "" {
					out = append(out, s)
				}
				cur.Reset()
				continue
			}
		}
		cur.WriteRune(r)
	}
	if depth != 0 {
		return nil, errors.New("unbalanced braces")
	}
	if s := collapse(cur.String()); s != "" && strings.HasPrefix(s, "typedef") {
		return nil, fmt.Errorf("unterminated declaration %q", s)
	}
	return out, nil
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// normalizeCType drops qualifiers and glues pointer stars to the base type.
func normalizeCType(s string) string {
	s = strings.ReplaceAll(s, "*", " * ")
	var parts []string
	for _, f := range strings.Fields(s) {
		switch f {
		case "const", "struct", "volatile", "restrict":
			continue
		}
		parts = append(parts, f)
	}
	return strings.ReplaceAll(strings.Join(parts, " "), " *", "*")
}

// splitDecl splits "const char* str" into ("char*", "str"). Unnamed
// declarations return an empty name.
func splitDecl(decl string) (ctype, name string) {
	fields := strings.Fields(strings.ReplaceAll(decl, "*", " * "))
	if len(fields) > 1 {
		last := fields[len(fields)-1]
		if identRe.MatchString(last) && !cKeywords[last] {
			return normalizeCType(strings.Join(fields[:len(fields)-1], " ")), last
		}
	}
	return normalizeCType(decl), ""
}

func enumValues(body string) ([]EnumValue, error) {
	var (
		out  []EnumValue
		next int64
	)
	seen := make(map[string]int64)
	for _, item := range strings.Split(body, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		name, expr, hasValue := strings.Cut(item, "=")
		name = strings.TrimSpace(name)
		if !identRe.MatchString(name) {
			return nil, fmt.Errorf("bad enumerator %q", item)
		}
		v := next
		if hasValue {
			var err error
			if v, err = evalEnumExpr(strings.TrimSpace(expr), seen); err != nil {
				return nil, fmt.Errorf("enumerator %s: %w", name, err)
			}
		}
		seen[name] = v
		out = append(out, EnumValue{Name: name, Value: v})
		next = v + 1
	}
	return out, nil
}

// evalEnumExpr handles literals, earlier enumerators and single shifts.
func evalEnumExpr(expr string, seen map[string]int64) (int64, error) {
	expr = strings.Trim(expr, "() ")
	if l, r, ok := strings.Cut(expr, "<<"); ok {
		a, err := evalEnumExpr(l, seen)
		if err != nil {
			return 0, err
		}
		b, err := evalEnumExpr(r, seen)
		if err != nil {
			return 0, err
		}
		return a << b, nil
	}
	if v, ok := seen[expr]; ok {
		return v, nil
	}
	return strconv.ParseInt(strings.TrimRight(expr, "uUlL"), 0, 64)
}
