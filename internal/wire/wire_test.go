package wire

import "testing"

func TestWriterReaderRoundTrip(t *testing.T) {
	buf := NewWriter().
		U8(7).
		U16(0xBEEF).
		U32(0xDEADBEEF).
		I32(-42).
		F32(1.5).
		String8("abc").
		String16("defg").
		String32("hij").
		Bytes()

	r := NewReader(buf)
	if v := r.U8(); v != 7 {
		t.Errorf("U8 = %d", v)
	}
	if v := r.U16(); v != 0xBEEF {
		t.Errorf("U16 = %#x", v)
	}
	if v := r.U32(); v != 0xDEADBEEF {
		t.Errorf("U32 = %#x", v)
	}
	if v := r.I32(); v != -42 {
		t.Errorf("I32 = %d", v)
	}
	if v := r.F32(); v != 1.5 {
		t.Errorf("F32 = %v", v)
	}
	if v := r.String8(); v != "abc" {
		t.Errorf("String8 = %q", v)
	}
	if v := r.String16(); v != "defg" {
		t.Errorf("String16 = %q", v)
	}
	if v := r.String32(); v != "hij" {
		t.Errorf("String32 = %q", v)
	}
	if !r.OK() || r.Remaining() != 0 {
		t.Errorf("reader state: ok=%v remaining=%d", r.OK(), r.Remaining())
	}
}

func TestReaderSticksOnOverrun(t *testing.T) {
	r := NewReader([]byte{1, 2})
	r.U32() // overruns
	if r.OK() {
		t.Fatal("reader still OK after overrun")
	}
	if v := r.U8(); v != 0 {
		t.Errorf("read after failure = %d, want 0", v)
	}
}

func TestString32BoundsCheck(t *testing.T) {
	// Length prefix claims more bytes than remain.
	buf := NewWriter().U32(100).Raw([]byte("short")).Bytes()
	r := NewReader(buf)
	if s := r.String32(); s != "" || r.OK() {
		t.Errorf("oversized String32 = %q ok=%v", s, r.OK())
	}
}
