// Package bufferpool implements a fixed-capacity buffer pool: a cache of
// in-memory page frames sitting between logical page identifiers and a
// persistent pagestore.Store. It owns the pin/unpin protocol, dirty
// tracking, eviction-policy dispatch, and flush semantics that page-
// oriented storage engines rely on.
//
// The manager is single-threaded: it presumes exclusive access and does
// not synchronize its own operations. A host embedding it in a
// multithreaded program must wrap calls in mutual exclusion.
package bufferpool

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"go.uber.org/multierr"

	"github.com/tuannm99/bufpool/internal/pagestore"
)

// InvalidFrameIndex is returned by FindFrame when no frame holds the
// requested page.
const InvalidFrameIndex = -1

// BufferManager is the orchestrator: it owns a fixed array of frames and
// exactly one replacement policy instance, and mediates all reads/writes
// through a pagestore.Store.
type BufferManager struct {
	frames []*Frame
	policy Policy
	store  pagestore.Store
	out    io.Writer

	totalCall          int
	totalHit           int
	numDirtyPageWrites int
}

// NewBufferManager constructs a manager with capacity frames (capacity must
// be > 0) and a replacement policy selected case-insensitively against
// "LRU"; any other string (including the empty string) selects MRU. This
// matches the case-insensitive string-match contract of the system this
// module is modeled on.
func NewBufferManager(capacity int, policyName string, store pagestore.Store) (*BufferManager, error) {
	kind := PolicyMRU
	if strings.EqualFold(policyName, "LRU") {
		kind = PolicyLRU
	}
	return NewBufferManagerWithPolicy(capacity, kind, store)
}

// NewBufferManagerWithPolicy is the enumerated-selector counterpart to
// NewBufferManager, for callers who want to avoid the stringly-typed path.
func NewBufferManagerWithPolicy(capacity int, kind PolicyKind, store pagestore.Store) (*BufferManager, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("bufferpool: capacity must be positive, got %d", capacity)
	}

	frames := make([]*Frame, capacity)
	for i := range frames {
		frames[i] = newFrame(pagestore.PageSize)
	}

	return &BufferManager{
		frames: frames,
		policy: NewPolicy(kind),
		store:  store,
		out:    os.Stdout,
	}, nil
}

// Close flushes all pages on a best-effort basis; any flush failure is
// swallowed rather than returned, so callers can always close cleanly.
func (m *BufferManager) Close() error {
	_ = m.FlushAllPages()
	return nil
}

// PinPage pins the page identified by pid into the buffer pool, loading it
// from the store unless isEmpty is true, and returns the frame's buffer.
func (m *BufferManager) PinPage(pid pagestore.PageID, isEmpty bool) ([]byte, error) {
	if pid == InvalidPageID {
		return nil, ErrInvalidPageID
	}

	m.totalCall++

	if idx := m.FindFrame(pid); idx != InvalidFrameIndex {
		m.totalHit++
		frame := m.frames[idx]
		frame.Pin()
		m.policy.RemoveFrame(idx)
		return frame.Page(), nil
	}

	idx, err := m.reserveFrame()
	if err != nil {
		return nil, err
	}
	frame := m.frames[idx]

	frame.SetPageID(pid)
	frame.Pin()

	if !isEmpty {
		if err := frame.Read(m.store, pid); err != nil {
			frame.Reset()
			return nil, fmt.Errorf("bufferpool: read page %d: %w", pid, err)
		}
	}

	m.policy.RemoveFrame(idx)
	return frame.Page(), nil
}

// reserveFrame returns the index of an empty frame if one exists, or the
// index of an evicted (and, if necessary, flushed) frame otherwise.
func (m *BufferManager) reserveFrame() (int, error) {
	for i, f := range m.frames {
		if !f.IsValid() {
			return i, nil
		}
	}

	victim, ok := m.policy.PickVictim()
	if !ok {
		return 0, ErrNoFreeFrame
	}

	slog.Debug("bufferpool: evicting frame", "frame", victim, "pid", m.frames[victim].PageID())
	if err := m.flushFrame(victim); err != nil {
		// The victim is still valid and unpinned, so it stays a candidate.
		m.policy.AddFrame(victim)
		return 0, err
	}
	return victim, nil
}

// UnpinPage decrements the pin count of the resident frame holding pid. If
// dirty is true the frame's dirty flag is set (sticky until a successful
// flush). When the pin count reaches zero the frame becomes an eviction
// candidate again.
func (m *BufferManager) UnpinPage(pid pagestore.PageID, dirty bool) error {
	idx := m.FindFrame(pid)
	if idx == InvalidFrameIndex {
		return ErrPageNotFound
	}

	frame := m.frames[idx]
	if frame.NotPinned() {
		return ErrPageNotPinned
	}

	if dirty {
		frame.MarkDirty()
	}
	frame.Unpin()

	if frame.NotPinned() {
		m.policy.AddFrame(idx)
	}
	return nil
}

// NewPage allocates howMany contiguous pages from the store and pins the
// first one, returning its id and buffer.
func (m *BufferManager) NewPage(howMany int) (pagestore.PageID, []byte, error) {
	if howMany <= 0 {
		return InvalidPageID, nil, ErrInvalidCount
	}

	if !m.hasEmptyOrEvictableFrame() {
		return InvalidPageID, nil, ErrNoFreeFrame
	}

	firstPid, err := m.store.AllocatePage(howMany)
	if err != nil {
		return InvalidPageID, nil, fmt.Errorf("bufferpool: allocate %d pages: %w", howMany, err)
	}

	buf, err := m.PinPage(firstPid, true)
	if err != nil {
		if dErr := m.store.DeallocatePage(firstPid); dErr != nil {
			slog.Warn("bufferpool: rollback deallocate failed", "pid", firstPid, "err", dErr)
		}
		return InvalidPageID, nil, err
	}

	return firstPid, buf, nil
}

func (m *BufferManager) hasEmptyOrEvictableFrame() bool {
	for _, f := range m.frames {
		if !f.IsValid() || f.NotPinned() {
			return true
		}
	}
	return false
}

// FreePage removes pid from the buffer pool (if resident) and deallocates
// it from the store. If pid is resident with more than one outstanding
// pin, FreePage fails and leaves the page untouched.
func (m *BufferManager) FreePage(pid pagestore.PageID) error {
	if idx := m.FindFrame(pid); idx != InvalidFrameIndex {
		frame := m.frames[idx]

		switch {
		case frame.PinCount() > 1:
			return ErrPageStillPinned
		case frame.PinCount() == 1:
			if err := m.UnpinPage(pid, true); err != nil {
				return err
			}
			if err := m.FlushPage(pid); err != nil {
				return err
			}
		default:
			if err := m.FlushPage(pid); err != nil {
				return err
			}
		}
	}

	if err := m.store.DeallocatePage(pid); err != nil {
		return fmt.Errorf("bufferpool: deallocate page %d: %w", pid, err)
	}
	return nil
}

// FlushPage writes the resident frame holding pid to the store if dirty,
// then empties the frame. The frame must be valid and unpinned.
func (m *BufferManager) FlushPage(pid pagestore.PageID) error {
	if pid == InvalidPageID {
		return ErrInvalidPageID
	}

	idx := m.FindFrame(pid)
	if idx == InvalidFrameIndex {
		return ErrPageNotFound
	}
	return m.flushFrame(idx)
}

// flushFrame is the shared implementation behind FlushPage and the
// reserve-a-victim path of PinPage/reserveFrame: it does not itself check
// FindFrame, only frame validity/pin state.
func (m *BufferManager) flushFrame(idx int) error {
	frame := m.frames[idx]
	if !frame.IsValid() {
		return ErrFrameInvalid
	}
	if !frame.NotPinned() {
		return ErrFramePinned
	}

	if frame.IsDirty() {
		if err := frame.Write(m.store); err != nil {
			return fmt.Errorf("bufferpool: write page %d: %w", frame.PageID(), err)
		}
		m.numDirtyPageWrites++
	}

	m.policy.RemoveFrame(idx)
	frame.Reset()
	return nil
}

// FlushAllPages walks every valid frame, writing it if dirty and then
// emptying it — including pinned frames. A pinned frame is still flushed
// and emptied, but its presence is recorded as a failure in the returned
// error. This is a deliberate fidelity choice: it mirrors the original
// buffer manager's FlushAllPages exactly rather than the "safer" behavior
// of skipping pinned frames.
func (m *BufferManager) FlushAllPages() error {
	var errs error

	for idx, frame := range m.frames {
		if !frame.IsValid() {
			continue
		}

		if !frame.NotPinned() {
			errs = multierr.Append(errs, fmt.Errorf("%w: page %d", ErrFramePinned, frame.PageID()))
		}

		if frame.IsDirty() {
			if err := frame.Write(m.store); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("bufferpool: write page %d: %w", frame.PageID(), err))
			} else {
				m.numDirtyPageWrites++
			}
		}

		m.policy.RemoveFrame(idx)
		frame.Reset()
	}

	return errs
}

// GetNumUnpinnedFrames returns the number of frames (valid or not) whose
// pin count is currently zero.
func (m *BufferManager) GetNumUnpinnedFrames() int {
	count := 0
	for _, f := range m.frames {
		if f.NotPinned() {
			count++
		}
	}
	return count
}

// FindFrame returns the index of the frame holding pid, or
// InvalidFrameIndex if pid is not resident.
func (m *BufferManager) FindFrame(pid pagestore.PageID) int {
	for i, f := range m.frames {
		if f.PageID() == pid {
			return i
		}
	}
	return InvalidFrameIndex
}

// ResetStat zeroes all counters.
func (m *BufferManager) ResetStat() {
	m.totalHit = 0
	m.totalCall = 0
	m.numDirtyPageWrites = 0
}

// PrintStat renders a fixed three-line statistics report to the manager's
// configured writer (os.Stdout by default).
func (m *BufferManager) PrintStat() {
	fmt.Fprintln(m.out, "**Buffer Manager Statistics**")
	fmt.Fprintf(m.out, "Number of Dirty Pages Written to Disk: %d\n", m.numDirtyPageWrites)
	fmt.Fprintf(m.out, "Number of Pin Page Requests: %d\n", m.totalCall)
	fmt.Fprintf(m.out, "Number of Pin Page Request Misses: %d\n", m.totalCall-m.totalHit)
}

// SetStatWriter overrides the destination PrintStat writes to (os.Stdout
// unless changed here).
func (m *BufferManager) SetStatWriter(w io.Writer) {
	m.out = w
}

// Stats returns the current counter values, for callers that want the raw
// numbers rather than a rendered report.
func (m *BufferManager) Stats() (totalCall, totalHit, numDirtyPageWrites int) {
	return m.totalCall, m.totalHit, m.numDirtyPageWrites
}
