package vlog

// Scope is a handle for a logical context entered via BeginScope. Close it
// when the context ends, typically with defer so the scope is released on
// every exit path.
type Scope struct {
	logger *Logger
	depth  int
	closed bool
}

// BeginScope pushes a named context onto the scope stack. Names are not
// required to be unique or non-empty. The returned handle must be closed
// exactly once; closing again is a no-op.
func (l *Logger) BeginScope(name string) *Scope {
	depth := len(l.scope)
	l.scope = append(l.scope, name)
	return &Scope{logger: l, depth: depth}
}

// Close ends the scope, truncating the stack back to the depth captured at
// BeginScope. Any nested scopes the caller failed to close are popped along
// with it. Subsequent calls do nothing.
func (s *Scope) Close() {
	if s.closed {
		return
	}
	s.closed = true
	if s.depth < len(s.logger.scope) {
		s.logger.scope = s.logger.scope[:s.depth]
	}
}
