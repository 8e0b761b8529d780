package bufferpool

import "container/list"

// MRUPolicy evicts the most-recently added or refreshed candidate: new
// candidates are appended at the tail, and victims are also taken from the
// tail. It differs from LRUPolicy only in which end PickVictim consumes.
type MRUPolicy struct {
	order *list.List
	elems map[int]*list.Element
}

func newMRUPolicy() *MRUPolicy {
	return &MRUPolicy{
		order: list.New(),
		elems: make(map[int]*list.Element),
	}
}

func (p *MRUPolicy) AddFrame(i int) {
	if e, ok := p.elems[i]; ok {
		p.order.Remove(e)
	}
	p.elems[i] = p.order.PushBack(i)
}

func (p *MRUPolicy) RemoveFrame(i int) {
	if e, ok := p.elems[i]; ok {
		p.order.Remove(e)
		delete(p.elems, i)
	}
}

func (p *MRUPolicy) PickVictim() (int, bool) {
	back := p.order.Back()
	if back == nil {
		return 0, false
	}
	victim := back.Value.(int)
	p.order.Remove(back)
	delete(p.elems, victim)
	return victim, true
}

var _ Policy = (*MRUPolicy)(nil)
