package fileio

import (
	"go.uber.org/zap"

	assimp "github.com/jvbsl/assimp-go"
	"github.com/jvbsl/assimp-go/errors"
	"github.com/jvbsl/assimp-go/resource"
)

// Procs adapts an IOSystem into the handle-based procedure table the
// engine consumes. One Procs instance serves one engine configuration.
type Procs struct {
	sys     assimp.IOSystem
	streams *resource.Table
}

// New creates a procedure table over sys.
func New(sys assimp.IOSystem) *Procs {
	return &Procs{
		sys:     sys,
		streams: resource.NewTable(),
	}
}

// NewWithLogger creates a procedure table that logs stream lifecycle
// events at debug level.
func NewWithLogger(sys assimp.IOSystem, log *zap.Logger) *Procs {
	p := New(sys)
	if log != nil {
		p.streams.Subscribe(&logObserver{log: log})
	}
	return p
}

type logObserver struct {
	log *zap.Logger
}

func (o *logObserver) OnStreamEvent(ev resource.Event) {
	switch ev.Type {
	case resource.EventOpened:
		o.log.Debug("stream opened", zap.Uint32("handle", uint32(ev.Handle)))
	case resource.EventClosed:
		o.log.Debug("stream closed", zap.Uint32("handle", uint32(ev.Handle)))
	}
}

// Open opens path through the IOSystem and registers the stream.
// Returns 0 when the open produced an invalid stream; there is nothing to
// release in that case.
func (p *Procs) Open(path string, mode assimp.OpenMode) resource.Handle {
	stream := p.sys.OpenFile(path, mode)
	if stream == nil {
		return 0
	}
	if !stream.IsValid() {
		stream.Close()
		return 0
	}
	return p.streams.Insert(stream)
}

// CloseStream closes the stream and frees its handle. Unknown handles are
// ignored, matching the idempotent release contract.
func (p *Procs) CloseStream(h resource.Handle) {
	p.streams.Remove(h)
}

// Read fills buf[:count] from the stream behind h.
func (p *Procs) Read(h resource.Handle, buf []byte, count int64) (int64, error) {
	s, ok := p.streams.Get(h)
	if !ok {
		return 0, errors.InvalidHandle(errors.PhaseRead, "")
	}
	return s.Read(buf, count)
}

// Write stores buf[:count] into the stream behind h.
func (p *Procs) Write(h resource.Handle, buf []byte, count int64) (int64, error) {
	s, ok := p.streams.Get(h)
	if !ok {
		return 0, errors.InvalidHandle(errors.PhaseWrite, "")
	}
	return s.Write(buf, count)
}

// Seek repositions the stream behind h.
func (p *Procs) Seek(h resource.Handle, offset int64, origin assimp.SeekOrigin) error {
	s, ok := p.streams.Get(h)
	if !ok {
		return errors.InvalidHandle(errors.PhaseSeek, "")
	}
	return s.Seek(offset, origin)
}

// Tell returns the current offset of the stream behind h, or -1 for an
// unknown handle. The engine surface has no error channel here.
func (p *Procs) Tell(h resource.Handle) int64 {
	s, ok := p.streams.Get(h)
	if !ok {
		return -1
	}
	return s.Position()
}

// FileSize returns the byte length of the stream behind h, or 0 for an
// unknown handle.
func (p *Procs) FileSize(h resource.Handle) int64 {
	s, ok := p.streams.Get(h)
	if !ok {
		return 0
	}
	return s.Size()
}

// Flush forces buffered writes of the stream behind h to storage.
func (p *Procs) Flush(h resource.Handle) error {
	s, ok := p.streams.Get(h)
	if !ok {
		return errors.InvalidHandle(errors.PhaseFlush, "")
	}
	return s.Flush()
}

// OpenCount returns the number of streams the engine currently holds.
func (p *Procs) OpenCount() int {
	return p.streams.Len()
}

// Subscribe adds an observer for stream lifecycle events.
func (p *Procs) Subscribe(o resource.Observer) {
	p.streams.Subscribe(o)
}

// Close drops every stream still open, including handles the engine
// leaked, and stops accepting operations.
func (p *Procs) Close() error {
	return p.streams.Close()
}
