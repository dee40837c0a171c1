package kprintf

import (
	"errors"
	"io"
	"strings"
)

// Vprintf renders format through out and treats every fault as fatal: the
// offending byte is echoed when useful, then out.Panic is called with the
// fault's fixed diagnostic. Vprintf does not return after a fault. If Panic
// returns, Vprintf panics with the *Fault itself.
func Vprintf(out Output, format string, args ArgStream) {
	err := Interpret(out, format, args)
	if err == nil {
		return
	}
	var f *Fault
	if !errors.As(err, &f) {
		panic(err)
	}
	Fail(out, f)
	panic(f)
}

// Fail reports f through out the way Vprintf does: the offending byte is
// echoed for unimplemented flags and unknown types, then Panic receives the
// fixed diagnostic. Fail itself returns if out.Panic returns.
func Fail(out Output, f *Fault) {
	if f.Echo() {
		out.Char(f.Char)
	}
	out.Panic(f.Kind.Error())
}

// Printf is Vprintf over Go values.
func Printf(out Output, format string, args ...any) {
	Vprintf(out, format, Args(args...))
}

// Fprintf renders format to w and returns faults instead of aborting.
// The returned error is either a *Fault or the first write error.
func Fprintf(w io.Writer, format string, args ...any) error {
	out := NewWriter(w)
	if err := Interpret(out, format, Args(args...)); err != nil {
		return err
	}
	return out.Err()
}

// Sprintf renders format to a string and returns faults instead of aborting.
// On a fault the partial output is returned along with the error.
func Sprintf(format string, args ...any) (string, error) {
	var sb strings.Builder
	err := Fprintf(&sb, format, args...)
	return sb.String(), err
}
