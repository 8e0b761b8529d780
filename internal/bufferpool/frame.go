package bufferpool

import "github.com/tuannm99/bufpool/internal/pagestore"

// InvalidPageID is the sentinel page id meaning "no page", re-exported from
// pagestore so callers of this package don't need to import both.
const InvalidPageID = pagestore.InvalidPageID

// Frame is one in-memory slot of the buffer pool: a page-sized byte buffer
// plus the metadata (page id, pin count, dirty flag) that the buffer
// manager and replacement policy need to track it.
//
// A Frame never calls into the BufferManager or the Policy; it is a pure
// state machine driven entirely by its owner.
type Frame struct {
	pid      pagestore.PageID
	data     []byte
	pinCount int
	dirty    bool
}

// newFrame allocates an empty frame with a page-sized buffer that is never
// reallocated for the lifetime of the frame.
func newFrame(pageSize int) *Frame {
	return &Frame{
		pid:  InvalidPageID,
		data: make([]byte, pageSize),
	}
}

// Pin increments the pin count. Callers must have set a valid page id
// first; pinning an empty frame is a caller error the type does not guard
// against.
func (f *Frame) Pin() {
	f.pinCount++
}

// Unpin decrements the pin count. Precondition: PinCount() > 0, enforced by
// the caller (BufferManager.UnpinPage).
func (f *Frame) Unpin() {
	f.pinCount--
}

// MarkDirty sets the dirty flag. Dirty is sticky until a successful Write.
func (f *Frame) MarkDirty() {
	f.dirty = true
}

// SetPageID binds the frame to a new page identifier.
func (f *Frame) SetPageID(pid pagestore.PageID) {
	f.pid = pid
}

// Reset empties the frame: pid becomes InvalidPageID, pin count and dirty
// flag are cleared. The buffer's contents are left untouched; they are
// logically undefined until the next successful Read.
func (f *Frame) Reset() {
	f.pid = InvalidPageID
	f.pinCount = 0
	f.dirty = false
}

// Read asks store to fill the frame's buffer from pid. On success the
// frame's page id is updated to pid and the frame is clean (a freshly
// loaded page is never dirty, regardless of what older buffer managers
// did). On failure the frame's page id is left unchanged.
func (f *Frame) Read(store pagestore.Store, pid pagestore.PageID) error {
	if err := store.ReadPage(pid, f.data); err != nil {
		return err
	}
	f.pid = pid
	f.dirty = false
	return nil
}

// Write asks store to persist the frame's buffer under its current page
// id. On success the dirty flag is cleared. Precondition: the frame is
// valid.
func (f *Frame) Write(store pagestore.Store) error {
	if err := store.WritePage(f.pid, f.data); err != nil {
		return err
	}
	f.dirty = false
	return nil
}

// IsValid reports whether the frame currently holds a page.
func (f *Frame) IsValid() bool {
	return f.pid != InvalidPageID
}

// IsDirty reports whether the frame's buffer has been modified since the
// last load from or write to the store.
func (f *Frame) IsDirty() bool {
	return f.dirty
}

// NotPinned reports whether the frame has no outstanding pins.
func (f *Frame) NotPinned() bool {
	return f.pinCount == 0
}

// PinCount returns the current number of outstanding pins.
func (f *Frame) PinCount() int {
	return f.pinCount
}

// PageID returns the page id currently held, or InvalidPageID if empty.
func (f *Frame) PageID() pagestore.PageID {
	return f.pid
}

// Page borrows the frame's underlying buffer. Callers must not retain it
// past the matching UnpinPage call.
func (f *Frame) Page() []byte {
	return f.data
}
