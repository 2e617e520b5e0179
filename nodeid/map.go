package nodeid

import "slices"

type mapEntry[V any] struct {
	key   NodeID
	value V
}

// Map is a hash map keyed by NodeID that can be searched with any Key,
// including a borrowed NodeIDRef, without building an owned identifier.
// Like a built-in map it is not safe for concurrent use.
type Map[V any] struct {
	buckets map[uint64][]mapEntry[V]
	size    int
}

// NewMap creates an empty Map.
func NewMap[V any]() *Map[V] {
	return &Map[V]{buckets: make(map[uint64][]mapEntry[V])}
}

func (m *Map[V]) find(r NodeIDRef, h uint64) int {
	for i, e := range m.buckets[h] {
		if e.key.Ref().Equal(r) {
			return i
		}
	}
	return -1
}

// Get returns the value stored under k.
func (m *Map[V]) Get(k Key) (V, bool) {
	r := k.Ref()
	h := r.Hash()
	if i := m.find(r, h); i >= 0 {
		return m.buckets[h][i].value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether k is present.
func (m *Map[V]) Contains(k Key) bool {
	r := k.Ref()
	return m.find(r, r.Hash()) >= 0
}

// Set stores v under k and reports whether a new entry was created.
func (m *Map[V]) Set(k NodeID, v V) bool {
	if m.buckets == nil {
		m.buckets = make(map[uint64][]mapEntry[V])
	}
	r := k.Ref()
	h := r.Hash()
	if i := m.find(r, h); i >= 0 {
		m.buckets[h][i].value = v
		return false
	}
	m.buckets[h] = append(m.buckets[h], mapEntry[V]{key: k, value: v})
	m.size++
	return true
}

// Delete removes k and returns the removed value.
func (m *Map[V]) Delete(k Key) (V, bool) {
	r := k.Ref()
	h := r.Hash()
	i := m.find(r, h)
	if i < 0 {
		var zero V
		return zero, false
	}
	bucket := m.buckets[h]
	v := bucket[i].value
	if len(bucket) == 1 {
		delete(m.buckets, h)
	} else {
		m.buckets[h] = slices.Delete(bucket, i, i+1)
	}
	m.size--
	return v, true
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	return m.size
}

// Clear removes every entry.
func (m *Map[V]) Clear() {
	clear(m.buckets)
	m.size = 0
}

// Keys returns the stored keys in ascending order.
func (m *Map[V]) Keys() []NodeID {
	keys := make([]NodeID, 0, m.size)
	for _, bucket := range m.buckets {
		for _, e := range bucket {
			keys = append(keys, e.key)
		}
	}
	SortNodeIDs(keys)
	return keys
}

// Range calls fn for each entry in unspecified order until fn returns false.
func (m *Map[V]) Range(fn func(NodeID, V) bool) {
	for _, bucket := range m.buckets {
		for _, e := range bucket {
			if !fn(e.key, e.value) {
				return
			}
		}
	}
}

// SortNodeIDs sorts s in ascending node identifier order.
func SortNodeIDs(s []NodeID) {
	slices.SortFunc(s, func(a, b NodeID) int { return a.Compare(b) })
}
