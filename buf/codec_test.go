package buf_test

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/momentics/hioload-buf/buf"
)

func orders() map[string]binary.ByteOrder {
	return map[string]binary.ByteOrder{
		"big":    binary.BigEndian,
		"little": binary.LittleEndian,
	}
}

func TestRoundTripAllWidths(t *testing.T) {
	for name, bo := range orders() {
		t.Run(name, func(t *testing.T) {
			b, _ := buf.Alloc(64)
			b.SetOrder(bo)

			b.PutUint16(0xBEEF)
			b.PutInt16(-12345)
			b.PutUint32(0xDEADBEEF)
			b.PutInt32(-2000000000)
			b.PutUint64(0xFEEDFACECAFEBEEF)
			b.PutInt64(-9000000000000000000)
			b.PutFloat32(-1.5)
			b.PutFloat64(3.14159)
			b.Flip()

			if v, _ := b.GetUint16(); v != 0xBEEF {
				t.Errorf("uint16 = %#x", v)
			}
			if v, _ := b.GetInt16(); v != -12345 {
				t.Errorf("int16 = %d", v)
			}
			if v, _ := b.GetUint32(); v != 0xDEADBEEF {
				t.Errorf("uint32 = %#x", v)
			}
			if v, _ := b.GetInt32(); v != -2000000000 {
				t.Errorf("int32 = %d", v)
			}
			if v, _ := b.GetUint64(); v != 0xFEEDFACECAFEBEEF {
				t.Errorf("uint64 = %#x", v)
			}
			if v, _ := b.GetInt64(); v != -9000000000000000000 {
				t.Errorf("int64 = %d", v)
			}
			if v, _ := b.GetFloat32(); v != -1.5 {
				t.Errorf("float32 = %v", v)
			}
			if v, _ := b.GetFloat64(); v != 3.14159 {
				t.Errorf("float64 = %v", v)
			}
		})
	}
}

func TestByteLayoutBigEndian(t *testing.T) {
	b, _ := buf.Alloc(4)
	b.PutInt32(1)
	want := []byte{0, 0, 0, 1} // network byte order: MSB first
	for i, w := range want {
		if v, _ := b.GetAt(i); v != w {
			t.Errorf("byte %d = %#x, want %#x", i, v, w)
		}
	}
}

func TestByteLayoutLittleEndian(t *testing.T) {
	b, _ := buf.Alloc(4)
	b.SetOrder(binary.LittleEndian)
	b.PutInt32(1)
	want := []byte{1, 0, 0, 0}
	for i, w := range want {
		if v, _ := b.GetAt(i); v != w {
			t.Errorf("byte %d = %#x, want %#x", i, v, w)
		}
	}
}

func TestFloatBitPatterns(t *testing.T) {
	b, _ := buf.Alloc(16)
	negZero := math.Copysign(0, -1)
	b.PutFloat64(negZero)
	b.PutFloat32(float32(math.Inf(-1)))
	b.Flip()
	if v, _ := b.GetFloat64(); math.Float64bits(v) != math.Float64bits(negZero) {
		t.Errorf("negative zero bits lost: %#x", math.Float64bits(v))
	}
	if v, _ := b.GetFloat32(); !math.IsInf(float64(v), -1) {
		t.Errorf("float32 = %v, want -Inf", v)
	}

	// NaN payload must survive the integer path untouched.
	b.Clear()
	nanBits := uint64(0x7FF800000000BEEF)
	b.PutUint64(nanBits)
	b.Flip()
	if v, _ := b.GetFloat64(); math.Float64bits(v) != nanBits {
		t.Errorf("nan bits = %#x, want %#x", math.Float64bits(v), nanBits)
	}
}

func TestTypedUnderflowOverflowUpFront(t *testing.T) {
	b, _ := buf.Alloc(10)
	b.SetPosition(7) // 3 bytes remaining
	if err := b.PutInt32(1); !errors.Is(err, buf.ErrOverflow) {
		t.Fatalf("err = %v, want ErrOverflow", err)
	}
	if b.Position() != 7 {
		t.Errorf("failed typed put moved cursor to %d", b.Position())
	}
	b.Flip()
	b.SetPosition(4) // 3 bytes remaining before limit 7
	if _, err := b.GetInt32(); !errors.Is(err, buf.ErrUnderflow) {
		t.Fatalf("err = %v, want ErrUnderflow", err)
	}
	if b.Position() != 4 {
		t.Errorf("failed typed get moved cursor to %d", b.Position())
	}
}

func TestTypedAbsolute(t *testing.T) {
	b, _ := buf.Alloc(16)
	if err := b.PutInt64At(8, -42); err != nil {
		t.Fatalf("PutInt64At: %v", err)
	}
	if b.Position() != 0 {
		t.Errorf("absolute put moved cursor")
	}
	if v, err := b.GetInt64At(8); err != nil || v != -42 {
		t.Errorf("GetInt64At = %d, %v", v, err)
	}
	if _, err := b.GetInt64At(9); !errors.Is(err, buf.ErrOutOfRange) {
		t.Errorf("err = %v, want ErrOutOfRange", err)
	}
	b.SetLimit(8)
	if _, err := b.GetInt32At(5); !errors.Is(err, buf.ErrOutOfRange) {
		t.Errorf("absolute typed access beyond limit: %v", err)
	}
}

func TestEndToEndStaging(t *testing.T) {
	for name, bo := range orders() {
		t.Run(name, func(t *testing.T) {
			b, _ := buf.Alloc(1024)
			b.SetOrder(bo)

			b.PutInt32(42)
			b.PutFloat64(3.14159)
			b.PutBytes([]byte("Hello"))
			b.Flip()

			if v, err := b.GetInt32(); err != nil || v != 42 {
				t.Fatalf("int = %d, %v", v, err)
			}
			if v, err := b.GetFloat64(); err != nil || v != 3.14159 {
				t.Fatalf("double = %v, %v", v, err)
			}
			tail := make([]byte, b.Remaining())
			if err := b.GetBytes(tail); err != nil {
				t.Fatalf("GetBytes: %v", err)
			}
			if string(tail) != "Hello" {
				t.Fatalf("tail = %q", tail)
			}
			if b.HasRemaining() {
				t.Error("buffer should be drained")
			}
		})
	}
}
