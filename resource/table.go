package resource

import (
	"errors"
	"sync"

	assimp "github.com/jvbsl/assimp-go"
)

var ErrClosed = errors.New("resource table closed")

// Table maps handles to open streams with lifecycle notifications.
// Slots freed by Remove are reused by later inserts.
type Table struct {
	entries   []entry
	freeList  []Handle
	observers []Observer
	mu        sync.RWMutex
	closed    bool
}

type entry struct {
	stream assimp.IOStream
	valid  bool
}

// NewTable creates an empty stream table.
func NewTable() *Table {
	return &Table{
		entries:  make([]entry, 0, 16),
		freeList: make([]Handle, 0, 4),
	}
}

// Insert stores a stream and returns its handle.
// Returns 0 if the table is closed.
func (t *Table) Insert(s assimp.IOStream) Handle {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return 0
	}

	e := entry{stream: s, valid: true}

	var handle Handle
	if len(t.freeList) > 0 {
		handle = t.freeList[len(t.freeList)-1]
		t.freeList = t.freeList[:len(t.freeList)-1]
		t.entries[handle-1] = e
	} else {
		t.entries = append(t.entries, e)
		handle = Handle(len(t.entries))
	}
	t.mu.Unlock()

	t.notify(Event{Type: EventOpened, Handle: handle, Stream: s})
	return handle
}

// Get retrieves a stream by handle.
func (t *Table) Get(handle Handle) (assimp.IOStream, bool) {
	if handle == 0 {
		return nil, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	idx := handle - 1
	if int(idx) >= len(t.entries) {
		return nil, false
	}

	e := t.entries[idx]
	if !e.valid {
		return nil, false
	}
	return e.stream, true
}

// Remove closes the stream and frees its handle.
// Returns (stream, true) if the handle was live.
func (t *Table) Remove(handle Handle) (assimp.IOStream, bool) {
	if handle == 0 {
		return nil, false
	}

	t.mu.Lock()

	idx := handle - 1
	if int(idx) >= len(t.entries) {
		t.mu.Unlock()
		return nil, false
	}

	e := &t.entries[idx]
	if !e.valid {
		t.mu.Unlock()
		return nil, false
	}

	s := e.stream
	e.valid = false
	e.stream = nil
	t.freeList = append(t.freeList, handle)
	t.mu.Unlock()

	s.Close()
	t.notify(Event{Type: EventClosed, Handle: handle, Stream: s})
	return s, true
}

// Len returns the number of live streams.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	count := 0
	for _, e := range t.entries {
		if e.valid {
			count++
		}
	}
	return count
}

// Each iterates over all live streams.
func (t *Table) Each(fn func(Handle, assimp.IOStream) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for i, e := range t.entries {
		if e.valid {
			if !fn(Handle(i+1), e.stream) {
				break
			}
		}
	}
}

// Subscribe adds an observer for lifecycle events.
func (t *Table) Subscribe(o Observer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *Table) Unsubscribe(o Observer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

// Clear closes every live stream but keeps the table usable.
func (t *Table) Clear() {
	t.mu.Lock()
	dropped := t.takeLive()
	t.entries = t.entries[:0]
	t.freeList = t.freeList[:0]
	t.mu.Unlock()

	for _, d := range dropped {
		d.stream.Close()
		t.notify(Event{Type: EventClosed, Handle: d.handle, Stream: d.stream})
	}
}

// Close releases all streams and stops accepting operations.
func (t *Table) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true
	dropped := t.takeLive()
	t.entries = nil
	t.freeList = nil
	t.mu.Unlock()

	for _, d := range dropped {
		d.stream.Close()
		t.notify(Event{Type: EventClosed, Handle: d.handle, Stream: d.stream})
	}
	return nil
}

type droppedEntry struct {
	stream assimp.IOStream
	handle Handle
}

// takeLive invalidates all live entries and returns them. Caller holds mu.
func (t *Table) takeLive() []droppedEntry {
	var dropped []droppedEntry
	for i := range t.entries {
		if t.entries[i].valid {
			dropped = append(dropped, droppedEntry{
				stream: t.entries[i].stream,
				handle: Handle(i + 1),
			})
			t.entries[i].valid = false
			t.entries[i].stream = nil
		}
	}
	return dropped
}

// notify delivers an event to all observers outside the table lock.
func (t *Table) notify(ev Event) {
	t.mu.RLock()
	obs := make([]Observer, len(t.observers))
	copy(obs, t.observers)
	t.mu.RUnlock()

	for _, o := range obs {
		o.OnStreamEvent(ev)
	}
}
