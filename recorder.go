package kprintf

// Op names a primitive operation.
type Op string

const (
	OpBytes        Op = "bytes"
	OpChar         Op = "char"
	OpPaddedString Op = "padded_string"
	OpSignedInt    Op = "signed_int"
	OpUnsignedInt  Op = "unsigned_int"
	OpPanic        Op = "panic"
)

// Call is one recorded primitive invocation. Fields that do not apply to
// the operation are left zero.
type Call struct {
	Op        Op        `json:"op" yaml:"op"`
	Text      string    `json:"text,omitempty" yaml:"text,omitempty"`
	Int       int64     `json:"int,omitempty" yaml:"int,omitempty"`
	Uint      uint64    `json:"uint,omitempty" yaml:"uint,omitempty"`
	Base      uint8     `json:"base,omitempty" yaml:"base,omitempty"`
	Upper     bool      `json:"upper,omitempty" yaml:"upper,omitempty"`
	Precision *Precision `json:"precision,omitempty" yaml:"precision,omitempty"`
	Width     uint      `json:"width,omitempty" yaml:"width,omitempty"`
	Align     *Alignment `json:"align,omitempty" yaml:"align,omitempty"`
	Fill      string    `json:"fill,omitempty" yaml:"fill,omitempty"`
}

// field returns the padding parameters of c with defaults for absent ones.
func (c Call) field() (Precision, uint, Alignment, byte) {
	p, align, fill := NoPrecision, AlignRight, byte(' ')
	if c.Precision != nil {
		p = *c.Precision
	}
	if c.Align != nil {
		align = *c.Align
	}
	if c.Fill != "" {
		fill = c.Fill[0]
	}
	return p, c.Width, align, fill
}

// Recorder is an Output that records every call instead of rendering it.
// Its Panic records the message and returns.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) add(c Call) { r.Calls = append(r.Calls, c) }

func (r *Recorder) Bytes(s string) {
	r.add(Call{Op: OpBytes, Text: s})
}

func (r *Recorder) Char(c byte) {
	r.add(Call{Op: OpChar, Text: string([]byte{c})})
}

func (r *Recorder) PaddedString(s string, p Precision, width uint, align Alignment, fill byte) {
	r.add(Call{Op: OpPaddedString, Text: s, Precision: &p, Width: width, Align: &align, Fill: string([]byte{fill})})
}

func (r *Recorder) SignedInt(v int64, p Precision, width uint, pad Alignment, fill byte) {
	r.add(Call{Op: OpSignedInt, Int: v, Base: 10, Precision: &p, Width: width, Align: &pad, Fill: string([]byte{fill})})
}

func (r *Recorder) UnsignedInt(v uint64, base uint8, upper bool, p Precision, width uint, pad Alignment, fill byte) {
	r.add(Call{Op: OpUnsignedInt, Uint: v, Base: base, Upper: upper, Precision: &p, Width: width, Align: &pad, Fill: string([]byte{fill})})
}

func (r *Recorder) Panic(msg string) {
	r.add(Call{Op: OpPanic, Text: msg})
}

// Replay sends the recorded calls to out in order.
func (r *Recorder) Replay(out Output) {
	for _, c := range r.Calls {
		p, width, align, fill := c.field()
		switch c.Op {
		case OpBytes:
			out.Bytes(c.Text)
		case OpChar:
			out.Char(c.Text[0])
		case OpPaddedString:
			out.PaddedString(c.Text, p, width, align, fill)
		case OpSignedInt:
			out.SignedInt(c.Int, p, width, align, fill)
		case OpUnsignedInt:
			out.UnsignedInt(c.Uint, c.Base, c.Upper, p, width, align, fill)
		case OpPanic:
			out.Panic(c.Text)
		}
	}
}
