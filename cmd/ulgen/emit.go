package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"go/format"
	"go/token"
	"sort"
	"strings"
	"text/template"
)

// Restrict keeps the listed entry points and every type reachable from them.
// Names in symbols that were not found are returned.
func (d Decls) Restrict(symbols []string) (Decls, []string) {
	want := make(map[string]bool, len(symbols))
	for _, s := range symbols {
		want[s] = true
	}

	var out Decls
	types := make(map[string]bool)
	mark := func(ctype string) {
		types[strings.TrimRight(ctype, "*")] = true
	}
	for _, fn := range d.Funcs {
		if !want[fn.Name] {
			continue
		}
		delete(want, fn.Name)
		out.Funcs = append(out.Funcs, fn)
		mark(fn.ResultC)
		for _, p := range fn.Params {
			mark(p.CType)
		}
	}

	// Walk aliases, structs and callbacks until nothing new is reached.
	for changed := true; changed; {
		changed = false
		n := len(types)
		for _, a := range d.Aliases {
			if types[a.Name] {
				mark(a.TargetC)
			}
		}
		for _, s := range d.Structs {
			if types[s.Name] {
				for _, f := range s.Fields {
					mark(f.CType)
				}
			}
		}
		for _, c := range d.Callbacks {
			if types[c.Name] {
				mark(c.ResultC)
				for _, p := range c.Params {
					mark(p.CType)
				}
			}
		}
		changed = len(types) != n
	}

	for _, h := range d.Handles {
		if types[h] {
			out.Handles = append(out.Handles, h)
		}
	}
	for _, a := range d.Aliases {
		if types[a.Name] {
			out.Aliases = append(out.Aliases, a)
		}
	}
	for _, e := range d.Enums {
		if types[e.Name] {
			out.Enums = append(out.Enums, e)
		}
	}
	for _, s := range d.Structs {
		if types[s.Name] {
			out.Structs = append(out.Structs, s)
		}
	}
	for _, c := range d.Callbacks {
		if types[c.Name] {
			out.Callbacks = append(out.Callbacks, c)
		}
	}

	missing := make([]string, 0, len(want))
	for s := range want {
		missing = append(missing, s)
	}
	sort.Strings(missing)
	return out, missing
}

// Digest hashes the generator inputs. Output is rewritten only when it changes.
func Digest(config string, headers []Header) string {
	h := sha256.New()
	fmt.Fprintf(h, "config %q\n", config)
	for _, hdr := range headers {
		fmt.Fprintf(h, "header %s %d\n", hdr.Name, len(hdr.Source))
		h.Write([]byte(hdr.Source))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// ExistingDigest extracts the digest line from previously generated source.
func ExistingDigest(src []byte) string {
	for _, line := range strings.SplitN(string(src), "\n", 4) {
		if d, ok := strings.CutPrefix(line, digestPrefix); ok {
			return strings.TrimSpace(d)
		}
	}
	return ""
}

const digestPrefix = "// Digest: "

type fileData struct {
	Package   string
	Digest    string
	LibDir    string
	Libraries []Library
	Decls
}

func (f fileData) NeedsUnsafe() bool {
	uses := func(t string) bool { return strings.Contains(t, "unsafe.") }
	for _, fn := range f.Funcs {
		if uses(fn.Result) {
			return true
		}
		for _, p := range fn.Params {
			if uses(p.GoType) {
				return true
			}
		}
	}
	for _, s := range f.Structs {
		for _, fl := range s.Fields {
			if uses(fl.GoType) {
				return true
			}
		}
	}
	return false
}

var funcs = template.FuncMap{
	"field":  exportedName,
	"params": goParams,
}

var fileTemplate = template.Must(template.New("capi").Funcs(funcs).Parse(`// Code generated by ulgen from the Ultralight SDK headers. DO NOT EDIT.
` + digestPrefix + `{{.Digest}}

package {{.Package}}
{{if .NeedsUnsafe}}
import "unsafe"
{{end}}
// Native libraries in load order.
const (
{{- range $i, $l := .Libraries}}
	lib{{$l}}{{if eq $i 0}} nativeLib = iota{{end}}
{{- end}}
)

var nativeLibNames = [...]string{
{{- range .Libraries}}
	lib{{.}}: "{{.}}",
{{- end}}
}

// defaultLibDir is searched when no SDK path is configured.
const defaultLibDir = "{{.LibDir}}"
{{if .Handles}}
// Opaque handles.
type (
{{- range .Handles}}
	{{.}} uintptr
{{- end}}
)
{{end}}
{{- range .Aliases}}
type {{.Name}} {{if .Handle}}= {{end}}{{.Target}}
{{end}}
{{- range .Enums}}
type {{.Name}} int32
{{$e := .Name}}
const (
{{- range .Values}}
	{{.Name}} {{$e}} = {{.Value}}
{{- end}}
)
{{end}}
{{- range .Structs}}
type {{.Name}} struct {
{{- range .Fields}}
	{{field .Name}} {{.GoType}}
{{- end}}
}
{{end}}
var (
{{- range .Funcs}}
	{{.Name}} func({{params .Params}}){{if .Result}} {{.Result}}{{end}}
{{- end}}
)

var capiSymbols = [...]capiSymbol{
{{- range .Funcs}}
	{&{{.Name}}, lib{{.Library}}, "{{.Name}}", {{.ByValue}}},
{{- end}}
}
`))

// Emit renders decls as gofmt'd Go source.
func Emit(pkg, digest, libDir string, decls Decls) ([]byte, error) {
	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, fileData{
		Package:   pkg,
		Digest:    digest,
		LibDir:    libDir,
		Libraries: Libraries,
		Decls:     decls,
	})
	if err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}

func goParams(params []Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = paramName(p.Name) + " " + p.GoType
	}
	return strings.Join(parts, ", ")
}

// paramName converts snake_case to lowerCamel and avoids Go keywords.
func paramName(s string) string {
	n := exportedName(s)
	n = strings.ToLower(n[:1]) + n[1:]
	if token.IsKeyword(n) {
		n += "_"
	}
	return n
}

// exportedName converts snake_case to UpperCamel.
func exportedName(s string) string {
	var b strings.Builder
	for _, part := range strings.Split(s, "_") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	if b.Len() == 0 {
		return "X"
	}
	return b.String()
}
