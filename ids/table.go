package ids

import "fmt"

// WellKnown is implemented by every catalogue member.
type WellKnown interface {
	Uint32() uint32
	String() string
}

type member[E ~uint32] struct {
	value E
	name  string
}

// table is a static bidirectional mapping between catalogue values and names.
type table[E ~uint32] struct {
	kind    string
	byValue map[E]string
	byName  map[string]E
}

func newTable[E ~uint32](kind string, members []member[E]) *table[E] {
	t := &table[E]{
		kind:    kind,
		byValue: make(map[E]string, len(members)),
		byName:  make(map[string]E, len(members)),
	}
	for _, m := range members {
		if _, dup := t.byValue[m.value]; dup {
			panic(fmt.Sprintf("ids: duplicate %s value %d", kind, m.value))
		}
		t.byValue[m.value] = m.name
		t.byName[m.name] = m.value
	}
	return t
}

func (t *table[E]) lookup(v uint32) (E, bool) {
	e := E(v)
	_, ok := t.byValue[e]
	return e, ok
}

func (t *table[E]) parse(name string) (E, bool) {
	e, ok := t.byName[name]
	return e, ok
}

func (t *table[E]) name(e E) string {
	if n, ok := t.byValue[e]; ok {
		return n
	}
	return fmt.Sprintf("%s(%d)", t.kind, uint32(e))
}

func (t *table[E]) len() int {
	return len(t.byValue)
}
