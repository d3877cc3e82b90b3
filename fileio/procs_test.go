package fileio

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	assimp "github.com/jvbsl/assimp-go"
	aerrors "github.com/jvbsl/assimp-go/errors"
	"github.com/jvbsl/assimp-go/iosys"
	"github.com/jvbsl/assimp-go/resource"
)

func memSystem(t *testing.T) *iosys.FileSystem {
	t.Helper()
	sys := iosys.NewMemory("assets")
	if err := afero.WriteFile(sys.Fs(), "assets/cube.obj", []byte("v 0 0 0"), 0o644); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return sys
}

func TestProcs_OpenReadClose(t *testing.T) {
	procs := New(memSystem(t))
	defer procs.Close()

	h := procs.Open("cube.obj", assimp.OpenRead)
	if h == 0 {
		t.Fatal("expected non-zero handle")
	}
	if procs.OpenCount() != 1 {
		t.Fatalf("expected 1 open stream, got %d", procs.OpenCount())
	}

	size := procs.FileSize(h)
	if size != 7 {
		t.Errorf("FileSize = %d, want 7", size)
	}

	buf := make([]byte, size)
	n, err := procs.Read(h, buf, size)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if n != size || string(buf) != "v 0 0 0" {
		t.Errorf("read %d bytes %q", n, buf[:n])
	}
	if procs.Tell(h) != size {
		t.Errorf("Tell = %d, want %d", procs.Tell(h), size)
	}

	procs.CloseStream(h)
	if procs.OpenCount() != 0 {
		t.Error("CloseStream should release the handle")
	}
}

func TestProcs_OpenMissingReturnsZeroHandle(t *testing.T) {
	procs := New(memSystem(t))
	defer procs.Close()

	if h := procs.Open("missing.obj", assimp.OpenRead); h != 0 {
		t.Errorf("expected handle 0 for failed open, got %d", h)
	}
	if procs.OpenCount() != 0 {
		t.Error("failed open must not leave a registered stream")
	}
}

func TestProcs_WriteSeekFlush(t *testing.T) {
	sys := memSystem(t)
	procs := New(sys)
	defer procs.Close()

	h := procs.Open("assets/out.bin", assimp.OpenWrite)
	if h == 0 {
		t.Fatal("expected valid write handle")
	}

	if _, err := procs.Write(h, []byte("hello"), 5); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := procs.Flush(h); err != nil {
		t.Fatalf("flush failed: %v", err)
	}
	if err := procs.Seek(h, 0, assimp.OriginSet); err != nil {
		t.Fatalf("seek failed: %v", err)
	}
	if procs.Tell(h) != 0 {
		t.Errorf("Tell after rewind = %d, want 0", procs.Tell(h))
	}
	procs.CloseStream(h)

	content, err := afero.ReadFile(sys.Fs(), "assets/out.bin")
	if err != nil || string(content) != "hello" {
		t.Errorf("expected persisted write, got %q (%v)", content, err)
	}
}

func TestProcs_UnknownHandle(t *testing.T) {
	procs := New(memSystem(t))
	defer procs.Close()

	var h resource.Handle = 42
	buf := make([]byte, 1)

	if _, err := procs.Read(h, buf, 1); !errors.Is(err, &aerrors.Error{Phase: aerrors.PhaseRead, Kind: aerrors.KindInvalidHandle}) {
		t.Errorf("Read: expected invalid_handle, got %v", err)
	}
	if _, err := procs.Write(h, buf, 1); !errors.Is(err, &aerrors.Error{Phase: aerrors.PhaseWrite, Kind: aerrors.KindInvalidHandle}) {
		t.Errorf("Write: expected invalid_handle, got %v", err)
	}
	if err := procs.Seek(h, 0, assimp.OriginSet); !errors.Is(err, &aerrors.Error{Phase: aerrors.PhaseSeek, Kind: aerrors.KindInvalidHandle}) {
		t.Errorf("Seek: expected invalid_handle, got %v", err)
	}
	if err := procs.Flush(h); !errors.Is(err, &aerrors.Error{Phase: aerrors.PhaseFlush, Kind: aerrors.KindInvalidHandle}) {
		t.Errorf("Flush: expected invalid_handle, got %v", err)
	}
	if procs.Tell(h) != -1 {
		t.Errorf("Tell = %d, want -1", procs.Tell(h))
	}
	if procs.FileSize(h) != 0 {
		t.Errorf("FileSize = %d, want 0", procs.FileSize(h))
	}

	// Releasing an unknown handle is a no-op.
	procs.CloseStream(h)
}

func TestProcs_DoubleCloseStream(t *testing.T) {
	procs := New(memSystem(t))
	defer procs.Close()

	h := procs.Open("cube.obj", assimp.OpenRead)
	procs.CloseStream(h)
	procs.CloseStream(h)

	buf := make([]byte, 1)
	if _, err := procs.Read(h, buf, 1); err == nil {
		t.Error("read after release should fail")
	}
}

func TestProcs_CloseDropsLeakedStreams(t *testing.T) {
	procs := New(memSystem(t))

	procs.Open("cube.obj", assimp.OpenRead)
	procs.Open("cube.obj", assimp.OpenReadBinary)
	if procs.OpenCount() != 2 {
		t.Fatalf("expected 2 open streams, got %d", procs.OpenCount())
	}

	if err := procs.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if procs.OpenCount() != 0 {
		t.Error("teardown should drop every leaked stream")
	}

	if h := procs.Open("cube.obj", assimp.OpenRead); h != 0 {
		t.Error("closed procedure table should reject opens")
	}
}

type countingObserver struct {
	opened int
	closed int
}

func (o *countingObserver) OnStreamEvent(ev resource.Event) {
	switch ev.Type {
	case resource.EventOpened:
		o.opened++
	case resource.EventClosed:
		o.closed++
	}
}

func TestProcs_LifecycleObservable(t *testing.T) {
	procs := NewWithLogger(memSystem(t), zap.NewNop())
	defer procs.Close()

	obs := &countingObserver{}
	procs.Subscribe(obs)

	h := procs.Open("cube.obj", assimp.OpenRead)
	procs.CloseStream(h)

	if obs.opened != 1 || obs.closed != 1 {
		t.Errorf("expected 1 open and 1 close event, got %d/%d", obs.opened, obs.closed)
	}
}
