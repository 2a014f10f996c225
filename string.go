package ultralight

import (
	"strings"
	"unicode/utf8"
	"unsafe"
)

// String is a native UTF-8 string owned by the caller.
type String struct {
	h ULString
}

// NewString copies s into a new native string.
func NewString(s string) *String {
	mustLoad()
	return &String{h: createString(s)}
}

// StringFromRaw takes ownership of a native string handle.
func StringFromRaw(h ULString) *String {
	return &String{h: h}
}

// Raw returns the handle without giving up ownership.
func (s *String) Raw() ULString { return s.h }

// IntoRaw releases ownership of the handle to the caller, who becomes
// responsible for destroying it. s is empty afterwards.
func (s *String) IntoRaw() ULString {
	h := s.h
	s.h = 0
	return h
}

// View returns the contents without copying. The result aliases native
// memory and must not be used after Destroy. Invalid UTF-8 is replaced, in
// which case the result is a copy.
func (s *String) View() string {
	if s == nil || s.h == 0 {
		return ""
	}
	v := borrowString(s.h)
	if !utf8.ValidString(v) {
		return strings.ToValidUTF8(v, "\uFFFD")
	}
	return v
}

// String returns a Go-owned copy of the contents.
func (s *String) String() string {
	if s == nil {
		return ""
	}
	return copyString(s.h)
}

// Len returns the length in bytes.
func (s *String) Len() int {
	if s == nil || s.h == 0 {
		return 0
	}
	return int(ulStringGetLength(s.h))
}

func (s *String) IsEmpty() bool {
	if s == nil || s.h == 0 {
		return true
	}
	return ulStringIsEmpty(s.h)
}

// Destroy releases the native string.
func (s *String) Destroy() {
	if s.h == 0 {
		return
	}
	ulDestroyString(s.h)
	s.h = 0
}

var emptyString = [1]byte{}

func createString(s string) ULString {
	if len(s) == 0 {
		return ulCreateStringUTF8(&emptyString[0], 0)
	}
	return ulCreateStringUTF8(unsafe.StringData(s), uintptr(len(s)))
}

// withString passes a temporary native copy of s to fn.
func withString(s string, fn func(ULString)) {
	h := createString(s)
	defer ulDestroyString(h)
	fn(h)
}

func borrowString(h ULString) string {
	n := ulStringGetLength(h)
	if n == 0 {
		return ""
	}
	return unsafe.String(ulStringGetData(h), int(n))
}

// copyString copies a string the caller does not own, such as one returned
// by a view getter or passed to a callback.
func copyString(h ULString) string {
	if h == 0 {
		return ""
	}
	v := borrowString(h)
	if !utf8.ValidString(v) {
		return strings.ToValidUTF8(v, "\uFFFD")
	}
	return strings.Clone(v)
}
