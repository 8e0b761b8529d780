package bufferpool

// Policy is the eviction-victim picker the BufferManager delegates to. It
// owns an ordered collection of frame indices representing current
// eviction candidates: a frame index appears in a Policy iff the
// BufferManager currently considers that frame evictable (valid and
// unpinned).
//
// A Policy never looks at Frame contents or talks to the pagestore; it
// only ever sees frame indices.
type Policy interface {
	// AddFrame declares frame index i a current eviction candidate. If i
	// is already a candidate it is removed first and re-inserted at the
	// recency-newest position — this is how "touching" a frame refreshes
	// its position.
	AddFrame(i int)

	// RemoveFrame declares i no longer a candidate. No-op if i is not
	// currently a candidate.
	RemoveFrame(i int)

	// PickVictim chooses and removes one candidate, returning its index.
	// Returns ok == false when there are no candidates.
	PickVictim() (i int, ok bool)
}

// PolicyKind names the two supported Policy variants.
type PolicyKind int

const (
	PolicyLRU PolicyKind = iota
	PolicyMRU
)

// NewPolicy constructs a fresh, empty Policy of the given kind.
func NewPolicy(kind PolicyKind) Policy {
	switch kind {
	case PolicyLRU:
		return newLRUPolicy()
	default:
		return newMRUPolicy()
	}
}
