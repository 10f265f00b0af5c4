package nesrom

import (
	"bytes"
	"testing"
)

func testImage(prgBlocks, chrBlocks int) []byte {
	var buf bytes.Buffer
	buf.Write([]byte{0x4E, 0x45, 0x53, 0x1A, byte(prgBlocks), byte(chrBlocks), 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	buf.Write(make([]byte, prgBlockSize*prgBlocks))
	buf.Write(make([]byte, chrBlockSize*chrBlocks))
	return buf.Bytes()
}

func TestNewParsesSizes(t *testing.T) {
	r, err := New("test.nes", bytes.NewReader(testImage(2, 1)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := r.NumPrgBlocks(); got != 2 {
		t.Errorf("NumPrgBlocks() = %d, want 2", got)
	}
	if got := r.NumChrBlocks(); got != 1 {
		t.Errorf("NumChrBlocks() = %d, want 1", got)
	}
	if r.PrgSize() != 2*prgBlockSize {
		t.Errorf("PrgSize() = %d, want %d", r.PrgSize(), 2*prgBlockSize)
	}
}

func TestNewCHRRAMWhenZero(t *testing.T) {
	r, err := New("test.nes", bytes.NewReader(testImage(1, 0)))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if !r.HasChrRAM() {
		t.Errorf("HasChrRAM() = false, want true")
	}
}

func TestNewBadMagic(t *testing.T) {
	bad := testImage(1, 1)
	bad[0] = 'X'
	if _, err := New("test.nes", bytes.NewReader(bad)); err == nil {
		t.Fatalf("New() error = nil, want ErrInvalidFile")
	}
}

func TestNewTruncatedPRG(t *testing.T) {
	img := testImage(2, 1)
	truncated := img[:len(img)-prgBlockSize]
	if _, err := New("test.nes", bytes.NewReader(truncated)); err == nil {
		t.Fatalf("New() error = nil, want ErrInvalidFile")
	}
}
