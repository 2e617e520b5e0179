package nodeid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRef_CrossRepresentation(t *testing.T) {
	payload := []byte("Temperature")
	owned := NewText(2, "Temperature")

	views := map[string]NodeIDRef{
		"from bytes":  NewRef(2, TextRefBytes(payload)),
		"from string": NewRef(2, TextRef("Temperature")),
		"owned ref":   owned.Ref(),
	}

	for name, view := range views {
		t.Run(name, func(t *testing.T) {
			assert.True(t, owned.Equal(view))
			assert.True(t, view.Equal(owned))
			assert.Equal(t, 0, owned.Compare(view))
			assert.Equal(t, 0, view.Compare(owned))
			assert.Equal(t, owned.Hash(), view.Hash())
			assert.Equal(t, owned, view.NodeID())
		})
	}
}

func TestRef_AllVariants(t *testing.T) {
	tests := []struct {
		name  string
		owned NodeID
		view  NodeIDRef
	}{
		{"numeric", NewNumeric(1, 42), NewRef(1, NumericRef(42))},
		{"guid", NewGUID(1, testGUID), NewRef(1, GUIDRef(testGUID))},
		{"opaque", NewOpaque(1, []byte{1, 2}), NewRef(1, OpaqueRef([]byte{1, 2}))},
		{"empty opaque", NewOpaque(1, []byte{}), NewRef(1, OpaqueRef([]byte{}))},
		{"absent opaque", NewOpaque(1, nil), NewRef(1, OpaqueRef(nil))},
		{"empty text", NewText(1, ""), NewRef(1, TextRefBytes([]byte{}))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.owned.Equal(tt.view))
			assert.Equal(t, tt.owned.Hash(), tt.view.Hash())
			assert.Equal(t, tt.owned, tt.view.NodeID())
		})
	}
}

func TestRef_Distinct(t *testing.T) {
	base := NewText(2, "abc")
	others := []Key{
		NewRef(3, TextRef("abc")),
		NewRef(2, TextRef("abd")),
		NewRef(2, TextRef("ab")),
		NewRef(2, OpaqueRef([]byte("abc"))),
		New(2, NullTextID()),
	}
	for _, o := range others {
		assert.False(t, base.Equal(o))
		assert.NotEqual(t, base.Hash(), o.Ref().Hash())
		assert.NotEqual(t, 0, base.Compare(o))
	}

	assert.NotEqual(t, NewText(0, "").Hash(), New(0, NullTextID()).Hash())
	assert.NotEqual(t, NewOpaque(0, []byte{}).Hash(), NewOpaque(0, nil).Hash())
}

func TestRef_CompareMixedBacking(t *testing.T) {
	a := NewRef(0, TextRefBytes([]byte("apple")))
	b := NewRef(0, TextRef("banana"))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, a.Compare(b), NewText(0, "apple").Compare(NewText(0, "banana")))
}

func TestRef_IsNull(t *testing.T) {
	assert.True(t, Null().Ref().IsNull())
	assert.True(t, NewRef(0, NumericRef(0)).IsNull())
	assert.False(t, NewRef(1, NumericRef(0)).IsNull())
	assert.False(t, NewRef(0, TextRef("")).IsNull())
}

func BenchmarkHash_Text(b *testing.B) {
	ref := NewRef(2, TextRefBytes([]byte("Temperature")))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = ref.Hash()
	}
}
