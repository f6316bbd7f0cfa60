package emulator

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeCommandHeader(t *testing.T) {
	// method 0x2f4, subchannel 3, 2 arguments, increasing
	word := uint32(0x2f4) | 3<<13 | 2<<16 | 1<<29
	header := DecodeCommandHeader(word)

	want := CommandHeader{
		Method:     0x2f4,
		Subchannel: 3,
		ArgCount:   2,
		Mode:       MODE_INCREASING,
		InlineData: 2,
	}
	if diff := cmp.Diff(want, header); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeInlineHeader(t *testing.T) {
	word := BuildCommandHeader(0x6c, 1, 0x1abc, MODE_INLINE)
	header := DecodeCommandHeader(word)

	if header.Mode != MODE_INLINE {
		t.Errorf("expected inline mode, got %s", header.Mode)
	}
	if header.InlineData != 0x1abc {
		t.Errorf("expected inline data 0x1abc, got 0x%x", header.InlineData)
	}
	if header.Method != 0x6c || header.Subchannel != 1 {
		t.Errorf("method/subchannel mismatch: 0x%x/%d", header.Method, header.Subchannel)
	}
}

func TestDecodeIsTotal(t *testing.T) {
	// every bit pattern must decode to some header; modes 6 and 7 are
	// flagged invalid but still extracted
	header := DecodeCommandHeader(0xffffffff)
	if header.Mode.Valid() {
		t.Errorf("mode %d should be invalid", header.Mode)
	}
	if header.Method != 0x1fff || header.Subchannel != 7 || header.ArgCount != 0x1fff {
		t.Errorf("field extraction mismatch: %+v", header)
	}
}

func TestBuildCommandHeaderRoundTrip(t *testing.T) {
	word := BuildCommandHeader(0x1234, 5, 0x321, MODE_INCREASE_ONCE)
	header := DecodeCommandHeader(word)

	want := CommandHeader{
		Method:     0x1234,
		Subchannel: 5,
		ArgCount:   0x321,
		Mode:       MODE_INCREASE_ONCE,
		InlineData: 0x321,
	}
	if diff := cmp.Diff(want, header); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestClassifyMethod(t *testing.T) {
	cases := []struct {
		method uint32
		want   MethodClass
	}{
		{0x00, CLASS_BIND},
		{0x45, CLASS_OTHER_CONTROL},
		{0x46, CLASS_MACRO_ARG},
		{0x47, CLASS_MACRO_ENTRY},
		{0x01, CLASS_OTHER_CONTROL},
		{0xff, CLASS_OTHER_CONTROL},
		{0x100, CLASS_ENGINE},
		{0x1fff, CLASS_ENGINE},
	}
	for _, c := range cases {
		if got := ClassifyMethod(c.method); got != c.want {
			t.Errorf("method 0x%x: expected class %d, got %d", c.method, c.want, got)
		}
	}
}

func TestSubmissionModeValid(t *testing.T) {
	for mode := SubmissionMode(0); mode <= MODE_INLINE; mode++ {
		if !mode.Valid() {
			t.Errorf("mode %d should be valid", mode)
		}
	}
	if SubmissionMode(6).Valid() || SubmissionMode(7).Valid() {
		t.Error("modes 6 and 7 should be invalid")
	}
}
