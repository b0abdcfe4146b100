package buf_test

import (
	"strings"
	"testing"

	"github.com/momentics/hioload-buf/buf"
)

func TestEqualRegionOnly(t *testing.T) {
	a, _ := buf.Alloc(10)
	a.PutBytes([]byte{0xFF, 1, 2, 3})
	a.Flip()
	a.SetPosition(1) // remaining: 1 2 3

	b := buf.Wrap([]byte{9, 9, 1, 2, 3, 9})
	b.SetPosition(2)
	b.SetLimit(5) // remaining: 1 2 3

	if !a.Equal(b) {
		t.Error("buffers with identical remaining content must be equal")
	}
	if a.Hash() != b.Hash() {
		t.Error("equal buffers must hash alike")
	}

	b.SetPosition(1)
	if a.Equal(b) {
		t.Error("different remaining content must not be equal")
	}
	if a.Equal(nil) {
		t.Error("nil is never equal")
	}
}

func TestEqualAcrossBackings(t *testing.T) {
	h, _ := buf.Alloc(8)
	d, err := buf.AllocDirect(16)
	if err != nil {
		t.Fatalf("AllocDirect: %v", err)
	}
	defer d.Release()

	h.PutBytes([]byte("abcd"))
	d.PutBytes([]byte("abcd"))
	h.Flip()
	d.Flip()
	if !h.Equal(d) || h.Hash() != d.Hash() {
		t.Error("backing kind must not affect identity")
	}
}

func TestString(t *testing.T) {
	b, _ := buf.Alloc(5)
	b.SetPosition(2)
	s := b.AsReadOnly().String()
	if !strings.Contains(s, "pos=2") || !strings.Contains(s, "cap=5") ||
		!strings.Contains(s, "heap") || !strings.Contains(s, "ro") {
		t.Errorf("String() = %q", s)
	}
}
