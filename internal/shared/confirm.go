package shared

// Confirmer obtains a yes/no decision before a destructive action. The
// presentation (terminal prompt, dialog) is the caller's concern.
type Confirmer interface {
	Confirm(title, message string) bool
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(title, message string) bool

// Confirm calls f.
func (f ConfirmerFunc) Confirm(title, message string) bool {
	return f(title, message)
}

// AlwaysConfirm approves everything. Used by non-interactive commands and
// tests.
var AlwaysConfirm = ConfirmerFunc(func(string, string) bool { return true })
