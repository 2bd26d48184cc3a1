package vlog

// Message is a single recorded validation message.
type Message struct {
	// Scope is a snapshot of the logger's scope stack at the time the
	// message was logged, outermost first. It does not alias the live stack.
	Scope    []string
	Level    Level
	Property string
	Text     string
}
