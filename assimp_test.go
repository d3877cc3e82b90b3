package assimp

import (
	"io"
	"testing"
)

func TestOpenMode_Families(t *testing.T) {
	tests := []struct {
		mode    OpenMode
		isRead  bool
		isWrite bool
	}{
		{OpenRead, true, false},
		{OpenReadBinary, true, false},
		{OpenReadText, true, false},
		{OpenWrite, false, true},
		{OpenWriteBinary, false, true},
		{OpenWriteText, false, true},
		{OpenMode(42), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			if got := tt.mode.IsRead(); got != tt.isRead {
				t.Errorf("IsRead() = %v, want %v", got, tt.isRead)
			}
			if got := tt.mode.IsWrite(); got != tt.isWrite {
				t.Errorf("IsWrite() = %v, want %v", got, tt.isWrite)
			}
		})
	}
}

func TestOpenMode_String(t *testing.T) {
	if OpenReadBinary.String() != "read-binary" {
		t.Errorf("unexpected string: %q", OpenReadBinary.String())
	}
	if OpenMode(99).String() != "unknown" {
		t.Errorf("unexpected string for out-of-range mode: %q", OpenMode(99).String())
	}
}

func TestSeekOrigin_Whence(t *testing.T) {
	tests := []struct {
		origin SeekOrigin
		whence int
		ok     bool
	}{
		{OriginSet, io.SeekStart, true},
		{OriginCurrent, io.SeekCurrent, true},
		{OriginEnd, io.SeekEnd, true},
		{SeekOrigin(3), 0, false},
		{SeekOrigin(255), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.origin.String(), func(t *testing.T) {
			whence, ok := tt.origin.Whence()
			if ok != tt.ok {
				t.Fatalf("Whence() ok = %v, want %v", ok, tt.ok)
			}
			if ok && whence != tt.whence {
				t.Errorf("Whence() = %d, want %d", whence, tt.whence)
			}
		})
	}
}

func TestSeekOrigin_String(t *testing.T) {
	if OriginEnd.String() != "end" {
		t.Errorf("unexpected string: %q", OriginEnd.String())
	}
	if SeekOrigin(7).String() != "unknown" {
		t.Errorf("unexpected string for out-of-range origin: %q", SeekOrigin(7).String())
	}
}
