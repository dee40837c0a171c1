package kprintf

import (
	"io"
	"strconv"

	"github.com/mattn/go-runewidth"
)

// Abort is the panic value raised by [Writer.Panic] when no OnPanic hook
// is installed.
type Abort string

func (a Abort) Error() string { return string(a) }

// Writer renders primitives to an io.Writer. Field widths are measured in
// display columns, so wide runes in %s arguments count double.
//
// Writes are sticky: after the first failed write every later primitive is
// a no-op and [Writer.Err] reports the failure.
type Writer struct {
	// EastAsianWidth counts ambiguous-width runes as two columns.
	EastAsianWidth bool
	// OnPanic, when set, is called instead of panicking with [Abort].
	OnPanic func(msg string)

	w    io.Writer
	cond *runewidth.Condition
	n    int64
	err  error
}

// NewWriter returns a Writer rendering to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Err returns the first write error, if any.
func (w *Writer) Err() error { return w.err }

// Written returns the number of bytes written so far.
func (w *Writer) Written() int64 { return w.n }

func (w *Writer) condition() *runewidth.Condition {
	if w.cond == nil || w.cond.EastAsianWidth != w.EastAsianWidth {
		w.cond = runewidth.NewCondition()
		w.cond.EastAsianWidth = w.EastAsianWidth
	}
	return w.cond
}

func (w *Writer) write(s string) {
	if w.err != nil || s == "" {
		return
	}
	n, err := io.WriteString(w.w, s)
	w.n += int64(n)
	w.err = err
}

const (
	spaceBlock = "                                "
	zeroBlock  = "00000000000000000000000000000000"
)

// pad writes n copies of fill.
func (w *Writer) pad(n uint, fill byte) {
	var block string
	switch fill {
	case ' ':
		block = spaceBlock
	case '0':
		block = zeroBlock
	default:
		for ; n > 0 && w.err == nil; n-- {
			w.Char(fill)
		}
		return
	}
	for n > 0 && w.err == nil {
		k := min(n, uint(len(block)))
		w.write(block[:k])
		n -= k
	}
}

// Bytes writes s verbatim.
func (w *Writer) Bytes(s string) { w.write(s) }

// Char writes a single byte.
func (w *Writer) Char(c byte) {
	if w.err != nil {
		return
	}
	b := [1]byte{c}
	n, err := w.w.Write(b[:])
	w.n += int64(n)
	w.err = err
}

// PaddedString writes s aligned within width columns. The precision has
// already been applied to s.
func (w *Writer) PaddedString(s string, _ Precision, width uint, align Alignment, fill byte) {
	cols := uint(w.condition().StringWidth(s))
	if cols >= width {
		w.write(s)
		return
	}
	w.aligned(width-cols, align, fill, func() { w.write(s) })
}

// aligned surrounds body with n fill bytes placed per align.
func (w *Writer) aligned(n uint, align Alignment, fill byte, body func()) {
	switch align {
	case AlignRight:
		w.pad(n, fill)
		body()
	case AlignCenter:
		left := n / 2
		w.pad(left, fill)
		body()
		w.pad(n-left, fill)
	default:
		body()
		w.pad(n, fill)
	}
}

// SignedInt renders v in decimal. pad is the side the fill goes on.
func (w *Writer) SignedInt(v int64, p Precision, width uint, pad Alignment, fill byte) {
	mag := uint64(v)
	if v < 0 {
		mag = -mag
	}
	w.integer(v < 0, mag, 10, false, p, width, pad, fill)
}

// UnsignedInt renders v in the given base. pad is the side the fill goes on.
func (w *Writer) UnsignedInt(v uint64, base uint8, upper bool, p Precision, width uint, pad Alignment, fill byte) {
	w.integer(false, v, base, upper, p, width, pad, fill)
}

// integer follows C99: an explicit precision is the minimum digit count
// and disables zero fill, zero fill sits between the sign and the digits,
// and zero fill is ignored for left-justified fields.
func (w *Writer) integer(neg bool, mag uint64, base uint8, upper bool, p Precision, width uint, pad Alignment, fill byte) {
	if base < 2 || base > 36 {
		base = 10
	}
	var buf [64]byte
	digits := strconv.AppendUint(buf[:0], mag, int(base))
	if p.Set && p.Value == 0 && mag == 0 {
		digits = digits[:0]
	}
	if upper {
		for i, d := range digits {
			if d >= 'a' && d <= 'z' {
				digits[i] = d - 'a' + 'A'
			}
		}
	}

	var zeros uint
	if p.Set && uint(len(digits)) < p.Value {
		zeros = p.Value - uint(len(digits))
	}
	body := uint(len(digits)) + zeros
	if neg {
		body++
	}
	var padding uint
	if width > body {
		padding = width - body
	}
	if fill == '0' {
		if !p.Set && pad == AlignLeft {
			zeros += padding
			padding = 0
		}
		fill = ' '
	}

	// pad names the fill side, so it is the mirror of the content alignment.
	w.aligned(padding, pad.Mirror(), fill, func() {
		if neg {
			w.Char('-')
		}
		w.pad(zeros, '0')
		w.write(string(digits))
	})
}

// Panic calls OnPanic when set and otherwise panics with Abort(msg).
func (w *Writer) Panic(msg string) {
	if w.OnPanic != nil {
		w.OnPanic(msg)
		return
	}
	panic(Abort(msg))
}
