package kprintf

import "errors"

type state uint8

const (
	stateRawText state = iota
	stateFormatStart
	stateFlags
	stateWidth
	statePrecision
	stateType
)

// step is the outcome of a single transition.
type step uint8

const (
	consume step = iota // advance to the next byte
	reread              // hand the same byte to the new state
)

// specifier holds the directive being parsed.
type specifier struct {
	align     Alignment
	fill      byte
	width     uint
	precision Precision
}

var defaultSpecifier = specifier{align: AlignRight, fill: ' '}

type interpreter struct {
	out    Output
	args   ArgStream
	format string
	pos    int
	start  int // first byte of the pending literal run
	state  state
	spec   specifier
}

// Interpret renders format through out, pulling one value from args per
// conversion. The format ends at its length or at the first NUL byte.
//
// A non-nil result is always a *Fault. Interpret does not call out.Panic;
// that is the job of [Vprintf].
func Interpret(out Output, format string, args ArgStream) error {
	in := interpreter{
		out:    out,
		args:   args,
		format: format,
		spec:   defaultSpecifier,
	}
	return in.run()
}

func (in *interpreter) run() error {
	for in.pos < len(in.format) && in.format[in.pos] != 0 {
		s, err := in.transition(in.format[in.pos])
		if err != nil {
			return err
		}
		if s == consume {
			in.pos++
		}
	}
	if in.state != stateRawText {
		return fault(ErrMalformedSpecifier, 0, in.pos)
	}
	in.flush()
	return nil
}

func (in *interpreter) transition(c byte) (step, error) {
	switch in.state {
	case stateRawText:
		return in.rawText(c), nil
	case stateFormatStart:
		return in.formatStart(c)
	case stateFlags:
		return in.flags(c)
	case stateWidth:
		return in.width(c)
	case statePrecision:
		return in.precision(c)
	default:
		return consume, in.conversion(c)
	}
}

func (in *interpreter) flush() {
	if in.pos > in.start {
		in.out.Bytes(in.format[in.start:in.pos])
	}
}

// restart returns to raw text with an empty run starting after the
// current byte, and resets the specifier.
func (in *interpreter) restart() {
	in.state = stateRawText
	in.start = in.pos + 1
	in.spec = defaultSpecifier
}

func (in *interpreter) rawText(c byte) step {
	if c == '%' {
		in.flush()
		in.state = stateFormatStart
	}
	return consume
}

func (in *interpreter) formatStart(c byte) (step, error) {
	if c == '%' {
		in.out.Char('%')
		in.restart()
		return consume, nil
	}
	return in.flags(c)
}

// flags handles the byte after '%' and any further flag bytes. A repeated
// flag is legal and simply sets its field again.
func (in *interpreter) flags(c byte) (step, error) {
	switch {
	case c == '-':
		in.spec.align = AlignLeft
		in.state = stateFlags
	case c == '0':
		in.spec.fill = '0'
		in.state = stateFlags
	case c == '+' || c == ' ' || c == '#':
		return consume, in.fail(ErrUnimplementedFlag, c)
	case c >= '1' && c <= '9':
		in.spec.width = in.spec.width*10 + uint(c-'0')
		in.state = stateWidth
	case c == '.':
		in.startPrecision()
	case isConversion(c):
		in.state = stateType
		return reread, nil
	default:
		return consume, in.fail(ErrMalformedSpecifier, c)
	}
	return consume, nil
}

func (in *interpreter) width(c byte) (step, error) {
	switch {
	case isDigit(c):
		in.spec.width = in.spec.width*10 + uint(c-'0')
	case c == '.':
		in.startPrecision()
	case isConversion(c):
		in.state = stateType
		return reread, nil
	default:
		return consume, in.fail(ErrMalformedSpecifier, c)
	}
	return consume, nil
}

func (in *interpreter) startPrecision() {
	in.spec.precision = PrecisionOf(0)
	in.state = statePrecision
}

func (in *interpreter) precision(c byte) (step, error) {
	switch {
	case isDigit(c):
		in.spec.precision.Value = in.spec.precision.Value*10 + uint(c-'0')
	case c == '*':
		return consume, in.fail(ErrUnimplementedPrecision, c)
	case isConversion(c):
		in.state = stateType
		return reread, nil
	default:
		return consume, in.fail(ErrMalformedSpecifier, c)
	}
	return consume, nil
}

// conversion resolves the directive, consuming exactly one argument.
func (in *interpreter) conversion(c byte) error {
	sp := in.spec
	switch c {
	case 'c':
		v, err := in.args.NextChar()
		if err != nil {
			return in.argFault(err, c)
		}
		in.out.Char(v)
	case 's':
		v, err := in.args.NextString()
		if err != nil {
			return in.argFault(err, c)
		}
		in.out.PaddedString(terminated(v, sp.precision), sp.precision, sp.width, sp.align, sp.fill)
	case 'd', 'i':
		v, err := in.args.NextInt()
		if err != nil {
			return in.argFault(err, c)
		}
		in.out.SignedInt(v, sp.precision, sp.width, sp.align.Mirror(), sp.fill)
	case 'u', 'o', 'x', 'X':
		v, err := in.args.NextUint()
		if err != nil {
			return in.argFault(err, c)
		}
		in.out.UnsignedInt(v, base(c), c == 'X', sp.precision, sp.width, sp.align.Mirror(), sp.fill)
	default:
		return in.fail(ErrUnknownType, c)
	}
	in.restart()
	return nil
}

func (in *interpreter) fail(kind error, c byte) *Fault {
	in.spec = defaultSpecifier
	return fault(kind, c, in.pos)
}

func (in *interpreter) argFault(err error, c byte) error {
	kind := ErrArgumentType
	if errors.Is(err, ErrMissingArgument) {
		kind = ErrMissingArgument
	}
	f := in.fail(kind, c)
	f.Err = err
	return f
}

// terminated returns s up to its first NUL, capped at p when set.
func terminated(s string, p Precision) string {
	n := 0
	for n < len(s) && s[n] != 0 {
		if p.Set && uint(n) >= p.Value {
			break
		}
		n++
	}
	return s[:n]
}

func base(c byte) uint8 {
	switch c {
	case 'o':
		return 8
	case 'x', 'X':
		return 16
	default:
		return 10
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isConversion reports whether c ends a directive. Only c, s, d, i, u, o,
// x and X are rendered; the rest are recognized so they fail as unknown
// types rather than as malformed specifiers.
func isConversion(c byte) bool {
	switch c {
	case 'c', 'C', 'd', 'i', 'o', 'u', 'x', 'X', 'e', 'E', 'f', 'F',
		'g', 'G', 'a', 'A', 'n', 'p', 's', 'S', 'Z':
		return true
	default:
		return false
	}
}
