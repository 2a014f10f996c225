// Command ulgen generates the raw Ultralight C API declarations used by the
// ultralight package.
//
// It scans the SDK's C headers, keeps names matching the allow-list and writes
// typed function variables, opaque handle types, enum constants and the
// symbol table the loader binds against the native libraries.
//
//	go run ./cmd/ulgen -sdk $ULTRALIGHT_SDK_PATH -symbols symbols.txt -o capi_gen.go
package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"
)

const (
	sdkEnv         = "ULTRALIGHT_SDK_PATH"
	defaultAllow   = `^(UL|JS|ul|WK)`
	defaultInclude = "/usr/local/include"
	defaultLibDir  = "/usr/local/lib"
)

// headerGlobs lists the C headers of the SDK and the library exporting their symbols.
var headerGlobs = []struct {
	pattern string
	lib     Library
}{
	{"AppCore/CAPI.h", LibAppCore},
	{"Ultralight/CAPI.h", LibUltralight},
	{"Ultralight/CAPI/*.h", LibUltralight},
	{"JavaScriptCore/*.h", LibWebCore},
}

// Header is a single header file.
type Header struct {
	Name    string
	Source  string
	Library Library
}

type options struct {
	sdk     string
	out     string
	pkg     string
	allow   string
	symbols string
	libDir  string
	force   bool
}

func main() {
	log, err := zap.NewDevelopment()
	if err != nil {
		log = zap.NewNop()
	}
	defer func() { _ = log.Sync() }()

	if err := run(os.Args[1:], log); err != nil {
		log.Error("ulgen failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(args []string, log *zap.Logger) error {
	var opts options
	fs := flag.NewFlagSet("ulgen", flag.ContinueOnError)
	fs.StringVar(&opts.sdk, "sdk", os.Getenv(sdkEnv), "Ultralight SDK root containing include/, lib/ and bin/")
	fs.StringVar(&opts.out, "o", "capi_gen.go", "output file")
	fs.StringVar(&opts.pkg, "pkg", "ultralight", "package name of the generated file")
	fs.StringVar(&opts.allow, "allow", defaultAllow, "regexp of symbol prefixes to keep")
	fs.StringVar(&opts.symbols, "symbols", "", "file listing the entry points to keep, one per line")
	fs.StringVar(&opts.libDir, "libdir", defaultLibDir, "library directory searched when no SDK path is configured")
	fs.BoolVar(&opts.force, "force", false, "rewrite the output even if it is up to date")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return generate(opts, log)
}

func generate(opts options, log *zap.Logger) error {
	include := defaultInclude
	if opts.sdk == "" {
		log.Warn(sdkEnv+" not set, falling back to system paths",
			zap.String("include", defaultInclude),
			zap.String("lib", opts.libDir))
	} else {
		include = filepath.Join(opts.sdk, "include")
	}

	allow, err := regexp.Compile(opts.allow)
	if err != nil {
		return fmt.Errorf("bad allow-list: %w", err)
	}

	var symbols []string
	if opts.symbols != "" {
		if symbols, err = readSymbols(opts.symbols); err != nil {
			return err
		}
	}

	headers, err := collectHeaders(include)
	if err != nil {
		return err
	}

	config := strings.Join([]string{opts.pkg, opts.allow, opts.libDir, strings.Join(symbols, ",")}, "|")
	digest := Digest(config, headers)
	if !opts.force {
		if prev, err := os.ReadFile(opts.out); err == nil && ExistingDigest(prev) == digest {
			log.Info("output is up to date", zap.String("file", opts.out))
			return nil
		}
	}

	p := NewParser(allow)
	for _, h := range headers {
		if err := p.Add(h.Name, h.Source, h.Library); err != nil {
			return err
		}
	}
	decls, err := p.Resolve()
	if err != nil {
		return err
	}
	for _, w := range p.Warnings {
		log.Debug(w)
	}

	if symbols != nil {
		var missing []string
		decls, missing = decls.Restrict(symbols)
		if len(missing) > 0 {
			return fmt.Errorf("entry points not found in headers: %s", strings.Join(missing, ", "))
		}
	}
	sortDecls(&decls)

	src, err := Emit(opts.pkg, digest, opts.libDir, decls)
	if err != nil {
		return err
	}
	if err := os.WriteFile(opts.out, src, 0o644); err != nil {
		return err
	}
	log.Info("generated declarations",
		zap.String("file", opts.out),
		zap.Int("functions", len(decls.Funcs)),
		zap.Int("handles", len(decls.Handles)),
		zap.Int("enums", len(decls.Enums)))
	return nil
}

func collectHeaders(include string) ([]Header, error) {
	if _, err := os.Stat(include); err != nil {
		return nil, fmt.Errorf("header tree: %w", err)
	}
	var headers []Header
	for _, g := range headerGlobs {
		matches, err := filepath.Glob(filepath.Join(include, g.pattern))
		if err != nil {
			return nil, err
		}
		sort.Strings(matches)
		for _, m := range matches {
			src, err := os.ReadFile(m)
			if err != nil {
				return nil, err
			}
			rel, _ := filepath.Rel(include, m)
			headers = append(headers, Header{Name: filepath.ToSlash(rel), Source: string(src), Library: g.lib})
		}
	}
	if len(headers) == 0 {
		return nil, errors.New("no Ultralight headers found under " + include)
	}
	return headers, nil
}

func readSymbols(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out, sc.Err()
}

func sortDecls(d *Decls) {
	sort.Strings(d.Handles)
	sort.Slice(d.Aliases, func(i, j int) bool { return d.Aliases[i].Name < d.Aliases[j].Name })
	sort.Slice(d.Enums, func(i, j int) bool { return d.Enums[i].Name < d.Enums[j].Name })
	sort.Slice(d.Structs, func(i, j int) bool { return d.Structs[i].Name < d.Structs[j].Name })
	sort.Slice(d.Funcs, func(i, j int) bool { return d.Funcs[i].Name < d.Funcs[j].Name })
}
