package nodeid

import (
	"github.com/google/uuid"

	"github.com/c360/semstreams-opcua/ids"
)

// NodeID names an entity exposed by a server: a namespace index paired with
// an Identifier.
//
// NodeID is a comparable value type and can be used directly as a Go map
// key. The zero value is the null node identifier {0, NumericID(0)}.
type NodeID struct {
	Namespace  uint16
	Identifier Identifier
}

// New creates a node identifier from a namespace and identifier.
func New(namespace uint16, id Identifier) NodeID {
	return NodeID{Namespace: namespace, Identifier: id}
}

// NewNumeric creates a numeric node identifier.
func NewNumeric(namespace uint16, v uint32) NodeID {
	return New(namespace, NumericID(v))
}

// NewText creates a text node identifier.
func NewText(namespace uint16, s string) NodeID {
	return New(namespace, TextID(s))
}

// NewGUID creates a GUID node identifier.
func NewGUID(namespace uint16, g uuid.UUID) NodeID {
	return New(namespace, GUIDID(g))
}

// NewOpaque creates an opaque node identifier holding a copy of b.
func NewOpaque(namespace uint16, b []byte) NodeID {
	return New(namespace, OpaqueID(b))
}

// Null returns the null node identifier.
func Null() NodeID {
	return NodeID{}
}

// IsNull reports whether n is exactly {0, NumericID(0)}.
func (n NodeID) IsNull() bool {
	return n == NodeID{}
}

// IsNumeric reports whether n has a numeric identifier.
func (n NodeID) IsNumeric() bool { return n.Identifier.IsNumeric() }

// IsText reports whether n has a text identifier.
func (n NodeID) IsText() bool { return n.Identifier.IsText() }

// IsGUID reports whether n has a GUID identifier.
func (n NodeID) IsGUID() bool { return n.Identifier.IsGUID() }

// IsOpaque reports whether n has an opaque identifier.
func (n NodeID) IsOpaque() bool { return n.Identifier.IsOpaque() }

// AsUint32 returns the numeric value when the identifier is numeric.
func (n NodeID) AsUint32() (uint32, bool) {
	return n.Identifier.Numeric()
}

// Ref returns a view of n that borrows its payload.
func (n NodeID) Ref() NodeIDRef {
	return NodeIDRef{Namespace: n.Namespace, Identifier: n.Identifier.Ref()}
}

// Equal reports whether n and k denote the same node identifier.
func (n NodeID) Equal(k Key) bool {
	return n.Ref().Equal(k)
}

// Compare orders by namespace, then identifier. See IdentifierRef.Compare.
func (n NodeID) Compare(k Key) int {
	return n.Ref().Compare(k)
}

// Hash returns the 64-bit hash shared with the borrowed form.
func (n NodeID) Hash() uint64 {
	return n.Ref().Hash()
}

// RootFolderID returns the node identifier of the root folder.
func RootFolderID() NodeID { return FromWellKnown(ids.RootFolder) }

// ObjectsFolderID returns the node identifier of the objects folder.
func ObjectsFolderID() NodeID { return FromWellKnown(ids.ObjectsFolder) }

// TypesFolderID returns the node identifier of the types folder.
func TypesFolderID() NodeID { return FromWellKnown(ids.TypesFolder) }

// ViewsFolderID returns the node identifier of the views folder.
func ViewsFolderID() NodeID { return FromWellKnown(ids.ViewsFolder) }
