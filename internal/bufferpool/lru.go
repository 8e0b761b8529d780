package bufferpool

import "container/list"

// LRUPolicy evicts the least-recently added or refreshed candidate: new
// candidates are appended at the tail, victims are taken from the head.
//
// Backed by a container/list.List plus an index map for O(1) RemoveFrame,
// so refreshing or removing an arbitrary candidate never requires scanning
// the list.
type LRUPolicy struct {
	order *list.List
	elems map[int]*list.Element
}

func newLRUPolicy() *LRUPolicy {
	return &LRUPolicy{
		order: list.New(),
		elems: make(map[int]*list.Element),
	}
}

func (p *LRUPolicy) AddFrame(i int) {
	if e, ok := p.elems[i]; ok {
		p.order.Remove(e)
	}
	p.elems[i] = p.order.PushBack(i)
}

func (p *LRUPolicy) RemoveFrame(i int) {
	if e, ok := p.elems[i]; ok {
		p.order.Remove(e)
		delete(p.elems, i)
	}
}

func (p *LRUPolicy) PickVictim() (int, bool) {
	front := p.order.Front()
	if front == nil {
		return 0, false
	}
	victim := front.Value.(int)
	p.order.Remove(front)
	delete(p.elems, victim)
	return victim, true
}

var _ Policy = (*LRUPolicy)(nil)
