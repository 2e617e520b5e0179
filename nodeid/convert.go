package nodeid

import (
	"fmt"

	"github.com/c360/semstreams-opcua/errors"
	"github.com/c360/semstreams-opcua/ids"
)

// FromWellKnown returns the namespace 0 node identifier of a catalogue member.
func FromWellKnown(e ids.WellKnown) NodeID {
	return NewNumeric(0, e.Uint32())
}

// wellKnown resolves n against a catalogue lookup. Only numeric identifiers
// in namespace 0 are looked up.
func wellKnown[E any](n NodeID, method string, lookup func(uint32) (E, bool)) (E, error) {
	var zero E
	v, ok := n.Identifier.Numeric()
	if n.Namespace != 0 || !ok {
		return zero, errors.WrapInvalid(errors.ErrNotConvertible, "NodeID", method,
			fmt.Sprintf("resolve %s outside namespace 0 numeric", n))
	}
	e, ok := lookup(v)
	if !ok {
		return zero, errors.WrapInvalid(errors.ErrNotConvertible, "NodeID", method,
			fmt.Sprintf("resolve unmapped value %d", v))
	}
	return e, nil
}

// AsObjectID converts n to a well-known object.
func (n NodeID) AsObjectID() (ids.ObjectID, error) {
	return wellKnown(n, "AsObjectID", ids.ObjectIDFromUint32)
}

// AsVariableID converts n to a well-known variable.
func (n NodeID) AsVariableID() (ids.VariableID, error) {
	return wellKnown(n, "AsVariableID", ids.VariableIDFromUint32)
}

// AsMethodID converts n to a well-known method.
func (n NodeID) AsMethodID() (ids.MethodID, error) {
	return wellKnown(n, "AsMethodID", ids.MethodIDFromUint32)
}

// AsDataTypeID converts n to a well-known data type.
func (n NodeID) AsDataTypeID() (ids.DataTypeID, error) {
	return wellKnown(n, "AsDataTypeID", ids.DataTypeIDFromUint32)
}

// AsReferenceTypeID converts n to a well-known reference type. The null node
// identifier fails with errors.ErrNullNodeID rather than ErrNotConvertible.
func (n NodeID) AsReferenceTypeID() (ids.ReferenceTypeID, error) {
	if n.IsNull() {
		return 0, errors.WrapInvalid(errors.ErrNullNodeID, "NodeID", "AsReferenceTypeID", "check null")
	}
	return wellKnown(n, "AsReferenceTypeID", ids.ReferenceTypeIDFromUint32)
}
