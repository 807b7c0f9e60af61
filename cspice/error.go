package cspice

import (
	"errors"
	"strings"
)

var (
	// ErrUnsupported is returned by Open when the native bridge was not built.
	ErrUnsupported = errors.New("cspice: native library not available")

	// ErrInvalidKernelKind is returned for a kernel kind outside the fixed table.
	ErrInvalidKernelKind = errors.New("cspice: invalid kernel kind")

	// ErrKernelClosed is returned when operating on an unloaded Kernel.
	ErrKernelClosed = errors.New("cspice: kernel is unloaded")

	// ErrKernelNotLoaded is returned when an open Kernel is no longer in the pool.
	ErrKernelNotLoaded = errors.New("cspice: kernel not in pool")
)

// Sentinels for common CSPICE short messages. Match them with errors.Is.
var (
	ErrNoSuchFile        = &Error{Short: "SPICE(NOSUCHFILE)"}
	ErrMissingTimeInfo   = &Error{Short: "SPICE(MISSINGTIMEINFO)"}
	ErrNoLeapSeconds     = &Error{Short: "SPICE(NOLEAPSECONDS)"}
	ErrIDCodeNotFound    = &Error{Short: "SPICE(IDCODENOTFOUND)"}
	ErrNoLoadedFiles     = &Error{Short: "SPICE(NOLOADEDFILES)"}
	ErrKernelVarNotFound = &Error{Short: "SPICE(KERNELVARNOTFOUND)"}
)

// Error is a failure reported by CSPICE through its failed flag. It carries
// the four message categories CSPICE keeps for the last error.
type Error struct {
	// Op is the C routine that signalled the error, e.g. "furnsh_c".
	Op        string
	Short     string
	Long      string
	Traceback string
	Explain   string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("cspice: ")
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(e.Short)
	if e.Explain != "" {
		b.WriteString(" (")
		b.WriteString(e.Explain)
		b.WriteByte(')')
	}
	if e.Long != "" {
		b.WriteString(": ")
		b.WriteString(e.Long)
	}
	if e.Traceback != "" {
		b.WriteString("\ntrace: ")
		b.WriteString(e.Traceback)
	}
	return b.String()
}

// Code returns the bare error code, "NOSUCHFILE" for "SPICE(NOSUCHFILE)".
func (e *Error) Code() string {
	s := strings.TrimSpace(e.Short)
	if strings.HasPrefix(s, "SPICE(") && strings.HasSuffix(s, ")") {
		return s[len("SPICE(") : len(s)-1]
	}
	return s
}

// Is reports whether target is an *Error with the same short message. A
// target without a short message matches nothing.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	code := t.Code()
	return code != "" && e.Code() == code
}
