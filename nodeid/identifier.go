package nodeid

import (
	"github.com/google/uuid"
)

// IdentifierType is the payload kind of an Identifier.
// The declaration order is also the cross-variant sort order.
type IdentifierType uint8

const (
	TypeNumeric IdentifierType = iota
	TypeText
	TypeGUID
	TypeOpaque
)

// String returns the type name
func (t IdentifierType) String() string {
	switch t {
	case TypeNumeric:
		return "numeric"
	case TypeText:
		return "text"
	case TypeGUID:
		return "guid"
	case TypeOpaque:
		return "opaque"
	default:
		return "unknown"
	}
}

// Identifier is the payload of a node identifier: exactly one of a numeric
// value, a text, a GUID or an opaque byte blob.
//
// Identifier is comparable, so == is structural equality. Text and opaque
// payloads may be absent, which is distinct from empty. The zero value is
// NumericID(0).
type Identifier struct {
	typ     IdentifierType
	numeric uint32
	guid    uuid.UUID
	// text or opaque bytes; strings keep the struct comparable
	payload string
	absent  bool
}

// NumericID creates a numeric identifier.
func NumericID(v uint32) Identifier {
	return Identifier{typ: TypeNumeric, numeric: v}
}

// TextID creates a text identifier. s must be valid UTF-8 for the
// identifier to encode.
func TextID(s string) Identifier {
	return Identifier{typ: TypeText, payload: s}
}

// NullTextID creates a text identifier whose text is absent.
func NullTextID() Identifier {
	return Identifier{typ: TypeText, absent: true}
}

// GUIDID creates a GUID identifier.
func GUIDID(g uuid.UUID) Identifier {
	return Identifier{typ: TypeGUID, guid: g}
}

// OpaqueID creates an opaque identifier holding a copy of b.
// A nil slice yields an absent payload, an empty non-nil slice an empty one.
func OpaqueID(b []byte) Identifier {
	if b == nil {
		return NullOpaqueID()
	}
	return Identifier{typ: TypeOpaque, payload: string(b)}
}

// NullOpaqueID creates an opaque identifier whose payload is absent.
func NullOpaqueID() Identifier {
	return Identifier{typ: TypeOpaque, absent: true}
}

// Type returns the payload kind.
func (id Identifier) Type() IdentifierType { return id.typ }

// IsNumeric reports whether id holds a numeric value.
func (id Identifier) IsNumeric() bool { return id.typ == TypeNumeric }

// IsText reports whether id holds text.
func (id Identifier) IsText() bool { return id.typ == TypeText }

// IsGUID reports whether id holds a GUID.
func (id Identifier) IsGUID() bool { return id.typ == TypeGUID }

// IsOpaque reports whether id holds an opaque byte string.
func (id Identifier) IsOpaque() bool { return id.typ == TypeOpaque }

// IsAbsent reports whether a text or opaque payload is absent.
// Numeric and GUID identifiers are never absent.
func (id Identifier) IsAbsent() bool { return id.absent }

// Numeric returns the numeric payload.
func (id Identifier) Numeric() (uint32, bool) {
	if id.typ != TypeNumeric {
		return 0, false
	}
	return id.numeric, true
}

// Text returns the text payload. An absent text returns "" and true;
// use IsAbsent to tell it from an empty one.
func (id Identifier) Text() (string, bool) {
	if id.typ != TypeText {
		return "", false
	}
	return id.payload, true
}

// GUID returns the GUID payload.
func (id Identifier) GUID() (uuid.UUID, bool) {
	if id.typ != TypeGUID {
		return uuid.Nil, false
	}
	return id.guid, true
}

// Opaque returns a copy of the opaque payload, nil when absent.
func (id Identifier) Opaque() ([]byte, bool) {
	if id.typ != TypeOpaque {
		return nil, false
	}
	if id.absent {
		return nil, true
	}
	return []byte(id.payload), true
}

// Ref returns the borrowed view of the identifier.
func (id Identifier) Ref() IdentifierRef {
	return IdentifierRef{
		typ:     id.typ,
		numeric: id.numeric,
		guid:    id.guid,
		str:     id.payload,
		absent:  id.absent,
	}
}

// Compare orders identifiers by type, then payload. See IdentifierRef.Compare.
func (id Identifier) Compare(other Identifier) int {
	return id.Ref().Compare(other.Ref())
}
