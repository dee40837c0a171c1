// Package kprintf interprets printf-style format strings for environments
// without a formatting library, such as a kernel's firmware-table
// interpreter.
//
// A format is scanned once, left to right, by a small state machine. Each
// literal run and each completed directive is handed immediately to an
// [Output], which owns the actual rendering. Nothing is buffered and the
// interpreter keeps only a handful of scalar fields.
//
// # Directives
//
// The supported grammar is a subset of C's:
//
//	%[flags][width][.precision]conversion
//
// Flags are '-' (left-justify) and '0' (zero fill). Width and precision are
// decimal. Conversions are %c, %s, %d, %i, %u, %o, %x, %X and the %% escape.
// For %s the precision caps the number of bytes taken from the argument.
//
// Everything else is a fault: the '+', ' ' and '#' flags, '*' precision,
// floating-point and pointer conversions, %n, and any stray byte inside a
// directive. Directives left open at the end of the format are faults too.
//
// # Entry Points
//
// [Interpret] returns a *[Fault] and leaves the decision to the caller.
// [Vprintf] and [Printf] treat faults as fatal and call [Output.Panic], the
// contract expected inside a kernel:
//
//	kprintf.Printf(console, "irq %d on cpu %u\n", irq, cpu)
//
// [Fprintf] and [Sprintf] are hosted conveniences that return the fault as
// an error.
//
// # Outputs
//
// [Writer] renders to an [io.Writer], padding by display columns.
// [Recorder] captures the primitive calls themselves; [WriteTrace] prints
// them as a table, YAML, JSON or CSV.
//
// # Arguments
//
// Arguments come from an [ArgStream]. [Args] wraps Go values and [Words]
// wraps command-line words the way printf(1) reads them. Running out of
// arguments is a fault.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling; a *Fault
// matches its kind with [errors.Is]:
//
//   - [ErrMalformedSpecifier]: unexpected byte inside a directive
//   - [ErrUnimplementedFlag]: '+', ' ' or '#'
//   - [ErrUnimplementedPrecision]: '*' precision
//   - [ErrUnknownType]: recognized but unsupported conversion
//   - [ErrMissingArgument]: argument stream exhausted
//   - [ErrArgumentType]: argument not readable as the conversion's type
package kprintf
