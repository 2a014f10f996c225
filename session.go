package ultralight

import "go.uber.org/zap"

// Session isolates cookies, local storage and cache between views.
type Session struct {
	h        ULSession
	renderer *Renderer
}

func (s *Session) Raw() ULSession { return s.h }

func (s *Session) Renderer() *Renderer { return s.renderer }

func (s *Session) IsPersistent() bool { return ulSessionIsPersistent(s.h) }

// Name returns the name the session was created with.
func (s *Session) Name() string { return copyString(ulSessionGetName(s.h)) }

// ID returns the session's unique identifier.
func (s *Session) ID() uint64 { return ulSessionGetId(s.h) }

// DiskPath returns the directory holding the session's data, or "" for a
// non-persistent session.
func (s *Session) DiskPath() string { return copyString(ulSessionGetDiskPath(s.h)) }

// IsDefault reports whether s is the renderer's default session. It reports
// false once the renderer has been destroyed.
func (s *Session) IsDefault() bool {
	if s.h == 0 || s.renderer.h == 0 {
		return false
	}
	return s.h == ulDefaultSession(s.renderer.h)
}

// Destroy releases the session. The default session belongs to the renderer
// and is left alone. Sessions should be destroyed before their renderer;
// afterwards Destroy only forgets the handle.
func (s *Session) Destroy() {
	if s.h == 0 {
		return
	}
	if s.renderer.h == 0 {
		Logger().Debug("renderer already destroyed, dropping session handle")
		s.h = 0
		return
	}
	if s.IsDefault() {
		Logger().Debug("not destroying default session")
		return
	}
	name := s.Name()
	ulDestroySession(s.h)
	s.h = 0
	Logger().Debug("session destroyed", zap.String("name", name))
}
