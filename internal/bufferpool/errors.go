package bufferpool

import "errors"

// Sentinel errors returned by BufferManager operations. Wrap with
// fmt.Errorf("...: %w", err) when a downstream pagestore error needs to be
// attached.
var (
	// ErrInvalidPageID is returned when a caller passes INVALID_PAGE where a
	// real page id is required.
	ErrInvalidPageID = errors.New("bufferpool: invalid page id")

	// ErrInvalidCount is returned by NewPage when howMany <= 0.
	ErrInvalidCount = errors.New("bufferpool: page count must be positive")

	// ErrNoFreeFrame is returned when PinPage or NewPage cannot find an
	// empty frame and the replacement policy has no eviction candidate.
	ErrNoFreeFrame = errors.New("bufferpool: no free frame available")

	// ErrPageNotFound is returned by UnpinPage/FlushPage when the
	// requested page id is not currently resident in any frame.
	ErrPageNotFound = errors.New("bufferpool: page not resident in buffer pool")

	// ErrPageNotPinned is returned by UnpinPage when the resident frame's
	// pin count is already zero.
	ErrPageNotPinned = errors.New("bufferpool: page is not pinned")

	// ErrFrameInvalid is returned by FlushPage when the resident frame is
	// not valid (should not happen if FindFrame located it; kept as a
	// defensive check since FindFrame should never return an invalid frame).
	ErrFrameInvalid = errors.New("bufferpool: frame is not valid")

	// ErrFramePinned is returned by FlushPage when the frame is currently
	// pinned.
	ErrFramePinned = errors.New("bufferpool: frame is pinned")

	// ErrPageStillPinned is returned by FreePage when the page's pin
	// count exceeds one (another holder besides the caller remains).
	ErrPageStillPinned = errors.New("bufferpool: page is pinned by another caller")
)
