package nodeid

import (
	stderrors "errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/semstreams-opcua/errors"
	"github.com/c360/semstreams-opcua/ids"
)

var testGUID = uuid.MustParse("72962b91-fa75-4ae6-8d28-b404dc7daf63")

// sampleNodeIDs covers every variant and the layout boundaries.
func sampleNodeIDs() []NodeID {
	return []NodeID{
		Null(),
		NewNumeric(0, 255),
		NewNumeric(0, 256),
		NewNumeric(255, 65535),
		NewNumeric(256, 0),
		NewNumeric(0, 65536),
		NewNumeric(65535, 4294967295),
		NewText(0, "Temperature"),
		NewText(2, ""),
		New(3, NullTextID()),
		NewText(1, "Grüße\nzeile"),
		NewGUID(1, testGUID),
		NewGUID(0, uuid.Nil),
		NewOpaque(4, []byte{0xDE, 0xAD, 0xBE, 0xEF}),
		NewOpaque(4, []byte{}),
		NewOpaque(4, nil),
	}
}

func TestIdentifier_Variants(t *testing.T) {
	num := NumericID(42)
	v, ok := num.Numeric()
	assert.True(t, ok)
	assert.Equal(t, uint32(42), v)
	assert.True(t, num.IsNumeric())
	assert.False(t, num.IsText())
	_, ok = num.Text()
	assert.False(t, ok)
	_, ok = num.GUID()
	assert.False(t, ok)
	_, ok = num.Opaque()
	assert.False(t, ok)

	text := TextID("abc")
	s, ok := text.Text()
	assert.True(t, ok)
	assert.Equal(t, "abc", s)
	_, ok = text.Numeric()
	assert.False(t, ok)

	g, ok := GUIDID(testGUID).GUID()
	assert.True(t, ok)
	assert.Equal(t, testGUID, g)

	raw := []byte{1, 2, 3}
	op := OpaqueID(raw)
	raw[0] = 9
	b, ok := op.Opaque()
	assert.True(t, ok)
	assert.Equal(t, []byte{1, 2, 3}, b, "constructor must copy its input")
	b[1] = 9
	b2, _ := op.Opaque()
	assert.Equal(t, []byte{1, 2, 3}, b2, "accessor must return a copy")
}

func TestIdentifier_Equality(t *testing.T) {
	assert.Equal(t, TextID("a"), TextID("a"))
	assert.NotEqual(t, TextID(""), NullTextID(), "empty text differs from absent text")
	assert.Equal(t, NullTextID(), NullTextID())
	assert.NotEqual(t, OpaqueID([]byte{}), OpaqueID(nil), "empty blob differs from absent blob")
	assert.Equal(t, NullOpaqueID(), OpaqueID(nil))
	assert.NotEqual(t, TextID("abc"), OpaqueID([]byte("abc")), "variants never compare equal")
	assert.NotEqual(t, NullTextID(), NullOpaqueID())
	assert.True(t, NumericID(0) == Identifier{})
	assert.True(t, NullOpaqueID().IsAbsent())
	assert.False(t, NumericID(0).IsAbsent())
}

func TestNull(t *testing.T) {
	assert.True(t, Null().IsNull())
	assert.Equal(t, NodeID{Namespace: 0, Identifier: NumericID(0)}, Null())
	assert.True(t, NewNumeric(0, 0).IsNull())

	notNull := []NodeID{
		NewNumeric(1, 0),
		NewNumeric(0, 1),
		NewText(0, ""),
		New(0, NullTextID()),
		NewGUID(0, uuid.Nil),
		NewOpaque(0, nil),
	}
	for _, n := range notNull {
		assert.False(t, n.IsNull(), "%s must not be null", n)
	}
}

func TestNodeID_MapKey(t *testing.T) {
	m := map[NodeID]int{
		NewText(2, "Temperature"): 1,
		NewNumeric(0, 2253):       2,
	}
	assert.Equal(t, 1, m[MustParse("ns=2;s=Temperature")])
	assert.Equal(t, 2, m[MustParse("i=2253")])
}

func TestNodeID_Predicates(t *testing.T) {
	n := NewNumeric(3, 7)
	v, ok := n.AsUint32()
	assert.True(t, ok)
	assert.Equal(t, uint32(7), v)
	assert.True(t, n.IsNumeric())

	_, ok = NewText(3, "7").AsUint32()
	assert.False(t, ok)
	assert.True(t, NewText(3, "7").IsText())
	assert.True(t, NewGUID(3, testGUID).IsGUID())
	assert.True(t, NewOpaque(3, []byte{1}).IsOpaque())
}

func TestWellKnownFolders(t *testing.T) {
	assert.Equal(t, NewNumeric(0, 84), RootFolderID())
	assert.Equal(t, NewNumeric(0, 85), ObjectsFolderID())
	assert.Equal(t, NewNumeric(0, 86), TypesFolderID())
	assert.Equal(t, NewNumeric(0, 87), ViewsFolderID())
}

func TestConversions(t *testing.T) {
	obj, err := NewNumeric(0, 85).AsObjectID()
	require.NoError(t, err)
	assert.Equal(t, ids.ObjectsFolder, obj)

	// the same value outside namespace 0 never resolves
	_, err = NewNumeric(1, 85).AsObjectID()
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrNotConvertible))
	assert.True(t, errors.IsInvalid(err))

	tests := []struct {
		name string
		conv func() error
		want error
	}{
		{"unmapped object", func() error { _, err := NewNumeric(0, 1).AsObjectID(); return err }, errors.ErrNotConvertible},
		{"text object", func() error { _, err := NewText(0, "85").AsObjectID(); return err }, errors.ErrNotConvertible},
		{"variable", func() error { _, err := NewNumeric(0, 2256).AsVariableID(); return err }, nil},
		{"variable wrong ns", func() error { _, err := NewNumeric(2, 2256).AsVariableID(); return err }, errors.ErrNotConvertible},
		{"method", func() error { _, err := NewNumeric(0, 11492).AsMethodID(); return err }, nil},
		{"data type", func() error { _, err := NewNumeric(0, 11).AsDataTypeID(); return err }, nil},
		{"data type guid", func() error { _, err := NewGUID(0, testGUID).AsDataTypeID(); return err }, errors.ErrNotConvertible},
		{"reference type", func() error { _, err := NewNumeric(0, 35).AsReferenceTypeID(); return err }, nil},
		{"reference type null", func() error { _, err := Null().AsReferenceTypeID(); return err }, errors.ErrNullNodeID},
		{"reference type unmapped", func() error { _, err := NewNumeric(0, 85).AsReferenceTypeID(); return err }, errors.ErrNotConvertible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.conv()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, stderrors.Is(err, tt.want), "got %v", err)
		})
	}

	// null is distinguishable from other failures
	_, err = Null().AsReferenceTypeID()
	assert.False(t, stderrors.Is(err, errors.ErrNotConvertible))
}

func TestFromWellKnown(t *testing.T) {
	members := []ids.WellKnown{ids.Server, ids.ServerServerStatus, ids.ServerResendData, ids.HasComponent, ids.Double}
	for _, e := range members {
		n := FromWellKnown(e)
		assert.Equal(t, uint16(0), n.Namespace)
		v, ok := n.AsUint32()
		assert.True(t, ok)
		assert.Equal(t, e.Uint32(), v)
	}

	ref, err := FromWellKnown(ids.HasSubtype).AsReferenceTypeID()
	require.NoError(t, err)
	assert.Equal(t, ids.HasSubtype, ref)
}

func TestOrdering(t *testing.T) {
	ordered := []NodeID{
		NewNumeric(0, 0),
		NewNumeric(0, 1),
		NewNumeric(0, 4294967295),
		New(0, NullTextID()),
		NewText(0, ""),
		NewText(0, "a"),
		NewText(0, "ab"),
		NewText(0, "b"),
		NewGUID(0, uuid.Nil),
		NewGUID(0, testGUID),
		NewOpaque(0, nil),
		NewOpaque(0, []byte{}),
		NewOpaque(0, []byte{0}),
		NewNumeric(1, 0),
	}

	for i := range ordered {
		for j := range ordered {
			got := ordered[i].Compare(ordered[j])
			switch {
			case i < j:
				assert.Equal(t, -1, got, "%s < %s", ordered[i], ordered[j])
			case i > j:
				assert.Equal(t, 1, got, "%s > %s", ordered[i], ordered[j])
			default:
				assert.Equal(t, 0, got)
			}
		}
	}

	shuffled := []NodeID{ordered[5], ordered[13], ordered[0], ordered[10], ordered[8], ordered[3]}
	SortNodeIDs(shuffled)
	assert.Equal(t, []NodeID{ordered[0], ordered[3], ordered[5], ordered[8], ordered[10], ordered[13]}, shuffled)
}
