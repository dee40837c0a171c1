package kprintf

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling. The messages double as
// the fixed diagnostics handed to [Output.Panic].
var (
	ErrMalformedSpecifier     = errors.New("malformed printf format specifier")
	ErrUnimplementedFlag      = errors.New("unimplemented flag (see above output)")
	ErrUnimplementedPrecision = errors.New("unimplemented precision specifier '*'")
	ErrUnknownType            = errors.New("unknown printf type specifier (see above output)")
	ErrMissingArgument        = errors.New("printf argument list exhausted")
	ErrArgumentType           = errors.New("printf argument has wrong type")
)

// Fault describes why interpretation stopped. Kind is one of the sentinel
// errors above; Err carries the underlying argument error, if any.
type Fault struct {
	Kind   error
	Char   byte // offending byte, 0 at end of format
	Offset int  // byte offset into the format string
	Err    error
}

func (f *Fault) Error() string {
	msg := fmt.Sprintf("%v at offset %d", f.Kind, f.Offset)
	if f.Char != 0 {
		msg = fmt.Sprintf("%v: %q at offset %d", f.Kind, f.Char, f.Offset)
	}
	if f.Err != nil {
		return msg + ": " + f.Err.Error()
	}
	return msg
}

// Is reports whether target is the fault's kind.
func (f *Fault) Is(target error) bool {
	return f.Kind == target
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// Echo reports whether the offending byte is printed before aborting.
func (f *Fault) Echo() bool {
	return f.Char != 0 && (f.Kind == ErrUnimplementedFlag || f.Kind == ErrUnknownType)
}

func fault(kind error, c byte, offset int) *Fault {
	return &Fault{Kind: kind, Char: c, Offset: offset}
}
