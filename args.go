package kprintf

import (
	"fmt"
	"strconv"
)

// ArgStream yields the values consumed by conversions, strictly in order.
// Each Next method consumes exactly one value. An exhausted stream returns
// an error wrapping [ErrMissingArgument]; a value that cannot be read as the
// requested type returns an error wrapping [ErrArgumentType].
type ArgStream interface {
	NextChar() (byte, error)
	NextString() (string, error)
	NextInt() (int64, error)
	NextUint() (uint64, error)
}

// Values is an ArgStream over Go values.
type Values struct {
	vals []any
	next int
}

// Args returns a stream over vals.
func Args(vals ...any) *Values {
	return &Values{vals: vals}
}

// Remaining returns the number of values not yet consumed.
func (v *Values) Remaining() int {
	return len(v.vals) - v.next
}

func (v *Values) pop(want string) (any, error) {
	if v.next >= len(v.vals) {
		return nil, fmt.Errorf("%w: %s argument %d", ErrMissingArgument, want, v.next+1)
	}
	val := v.vals[v.next]
	v.next++
	return val, nil
}

func (v *Values) mismatch(want string, val any) error {
	return fmt.Errorf("%w: argument %d is %T, want %s", ErrArgumentType, v.next, val, want)
}

// NextChar accepts bytes, runes and other integers, truncated to one byte.
func (v *Values) NextChar() (byte, error) {
	val, err := v.pop("char")
	if err != nil {
		return 0, err
	}
	if n, ok := signed(val); ok {
		return byte(n), nil
	}
	if n, ok := unsigned(val); ok {
		return byte(n), nil
	}
	return 0, v.mismatch("char", val)
}

// NextString accepts strings, byte slices and fmt.Stringer values.
func (v *Values) NextString() (string, error) {
	val, err := v.pop("string")
	if err != nil {
		return "", err
	}
	switch s := val.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	case fmt.Stringer:
		return s.String(), nil
	default:
		return "", v.mismatch("string", val)
	}
}

// NextInt accepts any integer. Unsigned values are reinterpreted as int64.
func (v *Values) NextInt() (int64, error) {
	val, err := v.pop("int")
	if err != nil {
		return 0, err
	}
	if n, ok := signed(val); ok {
		return n, nil
	}
	if n, ok := unsigned(val); ok {
		return int64(n), nil
	}
	return 0, v.mismatch("int", val)
}

// NextUint accepts any integer. Negative signed values are reinterpreted at
// their own width, so int32(-1) yields 0xffffffff.
func (v *Values) NextUint() (uint64, error) {
	val, err := v.pop("uint")
	if err != nil {
		return 0, err
	}
	if n, ok := unsigned(val); ok {
		return n, nil
	}
	switch n := val.(type) {
	case int:
		return uint64(uint(n)), nil
	case int8:
		return uint64(uint8(n)), nil
	case int16:
		return uint64(uint16(n)), nil
	case int32:
		return uint64(uint32(n)), nil
	case int64:
		return uint64(n), nil
	}
	return 0, v.mismatch("uint", val)
}

func signed(val any) (int64, bool) {
	switch n := val.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	default:
		return 0, false
	}
}

func unsigned(val any) (uint64, bool) {
	switch n := val.(type) {
	case uint:
		return uint64(n), true
	case uint8:
		return uint64(n), true
	case uint16:
		return uint64(n), true
	case uint32:
		return uint64(n), true
	case uint64:
		return n, true
	case uintptr:
		return uint64(n), true
	default:
		return 0, false
	}
}

// Strings is an ArgStream over command-line words, converted on demand in
// the manner of printf(1): integers accept 0x, 0o and 0b prefixes, and a
// word starting with a quote yields the code of the following byte.
type Strings struct {
	words []string
	next  int
}

// Words returns a stream over words.
func Words(words ...string) *Strings {
	return &Strings{words: words}
}

// Remaining returns the number of words not yet consumed.
func (s *Strings) Remaining() int {
	return len(s.words) - s.next
}

func (s *Strings) pop(want string) (string, error) {
	if s.next >= len(s.words) {
		return "", fmt.Errorf("%w: %s argument %d", ErrMissingArgument, want, s.next+1)
	}
	w := s.words[s.next]
	s.next++
	return w, nil
}

// NextChar returns the first byte of the word, or NUL for an empty word.
func (s *Strings) NextChar() (byte, error) {
	w, err := s.pop("char")
	if err != nil || w == "" {
		return 0, err
	}
	return w[0], nil
}

func (s *Strings) NextString() (string, error) {
	return s.pop("string")
}

func (s *Strings) NextInt() (int64, error) {
	w, err := s.pop("int")
	if err != nil {
		return 0, err
	}
	if c, ok := quoted(w); ok {
		return int64(c), nil
	}
	n, err := strconv.ParseInt(w, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: argument %d: %w", ErrArgumentType, s.next, err)
	}
	return n, nil
}

// NextUint also accepts negative words, reinterpreted as two's complement.
func (s *Strings) NextUint() (uint64, error) {
	w, err := s.pop("uint")
	if err != nil {
		return 0, err
	}
	if c, ok := quoted(w); ok {
		return uint64(c), nil
	}
	if n, perr := strconv.ParseUint(w, 0, 64); perr == nil {
		return n, nil
	}
	n, err := strconv.ParseInt(w, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: argument %d: %w", ErrArgumentType, s.next, err)
	}
	return uint64(n), nil
}

func quoted(w string) (byte, bool) {
	if len(w) >= 2 && (w[0] == '\'' || w[0] == '"') {
		return w[1], true
	}
	return 0, false
}
