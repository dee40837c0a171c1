package kprintf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// feed runs the interpreter over format without the end-of-format check
// so intermediate states can be inspected.
func feed(t *testing.T, format string, args ArgStream) *interpreter {
	t.Helper()
	in := &interpreter{out: &Recorder{}, args: args, format: format, spec: defaultSpecifier}
	for in.pos < len(in.format) {
		s, err := in.transition(in.format[in.pos])
		require.NoError(t, err)
		if s == consume {
			in.pos++
		}
	}
	return in
}

func TestTransitionStates(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format string
		want   state
	}{
		"raw":          {format: "abc", want: stateRawText},
		"after escape": {format: "%%", want: stateRawText},
		"format start": {format: "x%", want: stateFormatStart},
		"flags":        {format: "%-0", want: stateFlags},
		"width":        {format: "%12", want: stateWidth},
		"precision":    {format: "%3.", want: statePrecision},
		"resolved":     {format: "%d", want: stateRawText},
	}
	for name, tt := range tests {
		name, tt := name, tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			in := feed(t, tt.format, Args(1))
			assert.Equal(t, tt.want, in.state)
		})
	}
}

func TestSpecifierAccumulates(t *testing.T) {
	t.Parallel()
	in := feed(t, "%-012.34", Args())
	assert.Equal(t, specifier{align: AlignLeft, fill: '0', width: 12, precision: PrecisionOf(34)}, in.spec)
}

func TestSpecifierResetsAfterConversion(t *testing.T) {
	t.Parallel()
	in := feed(t, "%-012.3dab", Args(1))
	assert.Equal(t, defaultSpecifier, in.spec)
	assert.Equal(t, 8, in.start)
}

func TestConversionRereadsByte(t *testing.T) {
	t.Parallel()
	in := &interpreter{out: &Recorder{}, args: Args(1), format: "%d", spec: defaultSpecifier, state: stateFormatStart, pos: 1}
	s, err := in.transition('d')
	require.NoError(t, err)
	assert.Equal(t, reread, s)
	assert.Equal(t, stateType, in.state)

	s, err = in.transition('d')
	require.NoError(t, err)
	assert.Equal(t, consume, s)
	assert.Equal(t, stateRawText, in.state)
}

func TestWidthWrapsWithoutCheck(t *testing.T) {
	t.Parallel()
	in := feed(t, "%18446744073709551617", Args())
	assert.Equal(t, uint(1), in.spec.width)
}

func TestFailResetsSpecifier(t *testing.T) {
	t.Parallel()
	in := &interpreter{out: &Recorder{}, args: Args(), format: "%-0+", spec: defaultSpecifier}
	err := in.run()
	require.ErrorIs(t, err, ErrUnimplementedFlag)
	assert.Equal(t, defaultSpecifier, in.spec)
}

func TestTerminated(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		s    string
		p    Precision
		want string
	}{
		"whole":        {s: "hello", p: NoPrecision, want: "hello"},
		"nul":          {s: "he\x00llo", p: NoPrecision, want: "he"},
		"capped":       {s: "hello", p: PrecisionOf(2), want: "he"},
		"cap past end": {s: "hi", p: PrecisionOf(9), want: "hi"},
		"zero cap":     {s: "hi", p: PrecisionOf(0), want: ""},
		"nul in cap":   {s: "a\x00bc", p: PrecisionOf(3), want: "a"},
	}
	for name, tt := range tests {
		name, tt := name, tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, terminated(tt.s, tt.p))
		})
	}
}

func TestIsConversion(t *testing.T) {
	t.Parallel()
	for _, c := range []byte("cCdioxXeEfFgGaAnpsSZ") {
		assert.True(t, isConversion(c), "%q", c)
	}
	for _, c := range []byte("%-0.*lhjzqy1") {
		assert.False(t, isConversion(c), "%q", c)
	}
	assert.True(t, isConversion('u'))
}

func TestBase(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint8(8), base('o'))
	assert.Equal(t, uint8(16), base('x'))
	assert.Equal(t, uint8(16), base('X'))
	assert.Equal(t, uint8(10), base('u'))
}
