package kprintf

import "strconv"

// Alignment controls where content sits inside a padded field.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// String returns the alignment name.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "invalid"
	}
}

// MarshalText encodes the alignment by name.
func (a Alignment) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Mirror converts a justification into the padding side expected by the
// numeric primitives, and back. A right-justified number is padded on the
// left, so Mirror(AlignRight) == AlignLeft. AlignCenter maps to itself.
func (a Alignment) Mirror() Alignment {
	return AlignRight - a
}

// Precision is an optional precision value. The zero value means no
// precision was given, which is distinct from an explicit ".0".
type Precision struct {
	Value uint
	Set   bool
}

func (p Precision) String() string {
	if !p.Set {
		return "none"
	}
	return strconv.FormatUint(uint64(p.Value), 10)
}

// MarshalText encodes an unset precision as "none".
func (p Precision) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// NoPrecision is the unset precision.
var NoPrecision = Precision{}

// PrecisionOf returns an explicit precision of n.
func PrecisionOf(n uint) Precision {
	return Precision{Value: n, Set: true}
}

// Output is the set of primitive operations the interpreter renders through.
// Implementations receive fully decoded content: string lengths are already
// capped by precision and every call carries exact bounds.
//
// The numeric primitives take the padding side, not the justification:
// pad == AlignLeft means fill characters go before the digits (a
// right-justified field). Use [Alignment.Mirror] to convert.
type Output interface {
	// Bytes writes s verbatim.
	Bytes(s string)
	// Char writes a single byte.
	Char(c byte)
	// PaddedString writes s padded to at least width display columns.
	PaddedString(s string, p Precision, width uint, align Alignment, fill byte)
	// SignedInt renders v in decimal.
	SignedInt(v int64, p Precision, width uint, pad Alignment, fill byte)
	// UnsignedInt renders v in base 8, 10 or 16.
	UnsignedInt(v uint64, base uint8, upper bool, p Precision, width uint, pad Alignment, fill byte)
	// Panic aborts the current execution context. It is not expected to
	// return; see [Vprintf] for what happens when it does.
	Panic(msg string)
}
