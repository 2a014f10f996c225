package ultralight

import (
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
)

const defaultMimeType = "application/unknown"

// FSFileSystem is a FileSystem serving files from an fs.FS.
type FSFileSystem struct {
	fsys           fs.FS
	charsets       map[string]string
	defaultCharset string
}

// FSOption configures an FSFileSystem.
type FSOption func(*FSFileSystem) error

// WithCharset reports charset for files with the extension ext, such as
// ".txt". The name is canonicalized, so "latin1" becomes "windows-1252".
func WithCharset(ext, charset string) FSOption {
	return func(f *FSFileSystem) error {
		name, err := canonicalCharset(charset)
		if err != nil {
			return err
		}
		f.charsets[strings.ToLower(ext)] = name
		return nil
	}
}

// WithDefaultCharset sets the charset reported for other files. It defaults
// to utf-8.
func WithDefaultCharset(charset string) FSOption {
	return func(f *FSFileSystem) error {
		name, err := canonicalCharset(charset)
		if err != nil {
			return err
		}
		f.defaultCharset = name
		return nil
	}
}

// NewFSFileSystem serves files from fsys. URL paths are resolved relative to
// its root and cannot escape it.
func NewFSFileSystem(fsys fs.FS, opts ...FSOption) (*FSFileSystem, error) {
	f := &FSFileSystem{
		fsys:           fsys,
		charsets:       make(map[string]string),
		defaultCharset: "utf-8",
	}
	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// NewDirFileSystem serves files from the directory root.
func NewDirFileSystem(root string, opts ...FSOption) (*FSFileSystem, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("ultralight: %s is not a directory", root)
	}
	return NewFSFileSystem(os.DirFS(root), opts...)
}

func (f *FSFileSystem) FileExists(p string) bool {
	name, ok := cleanPath(p)
	if !ok {
		return false
	}
	info, err := fs.Stat(f.fsys, name)
	return err == nil && !info.IsDir()
}

func (f *FSFileSystem) FileMimeType(p string) string {
	t := mime.TypeByExtension(path.Ext(p))
	if t == "" {
		return defaultMimeType
	}
	if mt, _, err := mime.ParseMediaType(t); err == nil {
		return mt
	}
	return t
}

func (f *FSFileSystem) FileCharset(p string) string {
	if cs, ok := f.charsets[strings.ToLower(path.Ext(p))]; ok {
		return cs
	}
	return f.defaultCharset
}

func (f *FSFileSystem) OpenFile(p string) (*Buffer, error) {
	name, ok := cleanPath(p)
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: p, Err: fs.ErrInvalid}
	}
	data, err := fs.ReadFile(f.fsys, name)
	if err != nil {
		return nil, err
	}
	return NewOwnedBuffer(data), nil
}

// cleanPath maps a URL path to an fs.FS name.
func cleanPath(p string) (string, bool) {
	name := strings.TrimPrefix(path.Clean("/"+strings.ReplaceAll(p, "\\", "/")), "/")
	if name == "" {
		name = "."
	}
	return name, fs.ValidPath(name)
}

func canonicalCharset(charset string) (string, error) {
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return "", fmt.Errorf("ultralight: unknown charset %q: %w", charset, err)
	}
	return htmlindex.Name(enc)
}
