package nodeid

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Key is satisfied by both owned and borrowed node identifiers. Collections
// keyed by NodeID accept any Key for lookups.
type Key interface {
	Ref() NodeIDRef
}

// IdentifierRef is a borrowed Identifier. Text and opaque payloads point at
// a caller-owned string or byte slice that must outlive the view.
type IdentifierRef struct {
	typ     IdentifierType
	numeric uint32
	guid    uuid.UUID
	str     string
	buf     []byte
	// payload lives in buf rather than str
	fromBytes bool
	absent    bool
}

// NumericRef creates a numeric view.
func NumericRef(v uint32) IdentifierRef {
	return IdentifierRef{typ: TypeNumeric, numeric: v}
}

// TextRef creates a text view over s.
func TextRef(s string) IdentifierRef {
	return IdentifierRef{typ: TypeText, str: s}
}

// TextRefBytes creates a text view over b without copying it.
func TextRefBytes(b []byte) IdentifierRef {
	return IdentifierRef{typ: TypeText, buf: b, fromBytes: true}
}

// GUIDRef creates a GUID view.
func GUIDRef(g uuid.UUID) IdentifierRef {
	return IdentifierRef{typ: TypeGUID, guid: g}
}

// OpaqueRef creates an opaque view over b without copying it.
// A nil slice is an absent payload.
func OpaqueRef(b []byte) IdentifierRef {
	return IdentifierRef{typ: TypeOpaque, buf: b, fromBytes: true, absent: b == nil}
}

// Type returns the payload kind.
func (r IdentifierRef) Type() IdentifierType { return r.typ }

// IsAbsent reports whether a text or opaque payload is absent.
func (r IdentifierRef) IsAbsent() bool { return r.absent }

func (r IdentifierRef) payloadLen() int {
	if r.fromBytes {
		return len(r.buf)
	}
	return len(r.str)
}

// Identifier copies the view into an owned Identifier.
func (r IdentifierRef) Identifier() Identifier {
	id := Identifier{typ: r.typ, numeric: r.numeric, guid: r.guid, absent: r.absent}
	if r.fromBytes {
		id.payload = string(r.buf)
	} else {
		id.payload = r.str
	}
	return id
}

// Equal reports whether both views denote the same identifier.
func (r IdentifierRef) Equal(o IdentifierRef) bool {
	if r.typ != o.typ {
		return false
	}
	switch r.typ {
	case TypeNumeric:
		return r.numeric == o.numeric
	case TypeGUID:
		return r.guid == o.guid
	}
	return r.absent == o.absent && r.payloadLen() == o.payloadLen() && r.comparePayload(o) == 0
}

// Compare orders identifiers by type (numeric < text < guid < opaque), then
// by payload: numbers by value, GUIDs bytewise, text and opaque payloads
// with absent first and then bytewise.
func (r IdentifierRef) Compare(o IdentifierRef) int {
	if r.typ != o.typ {
		return cmp3(r.typ, o.typ)
	}
	switch r.typ {
	case TypeNumeric:
		return cmp3(r.numeric, o.numeric)
	case TypeGUID:
		return compareSeq(r.guid[:], o.guid[:])
	}
	if r.absent != o.absent {
		if r.absent {
			return -1
		}
		return 1
	}
	return r.comparePayload(o)
}

func (r IdentifierRef) comparePayload(o IdentifierRef) int {
	switch {
	case r.fromBytes && o.fromBytes:
		return compareSeq(r.buf, o.buf)
	case r.fromBytes:
		return compareSeq(r.buf, o.str)
	case o.fromBytes:
		return compareSeq(r.str, o.buf)
	default:
		return compareSeq(r.str, o.str)
	}
}

// NodeIDRef is a borrowed NodeID.
type NodeIDRef struct {
	Namespace  uint16
	Identifier IdentifierRef
}

// NewRef creates a view from a namespace and identifier view.
func NewRef(namespace uint16, id IdentifierRef) NodeIDRef {
	return NodeIDRef{Namespace: namespace, Identifier: id}
}

// Ref returns r itself.
func (r NodeIDRef) Ref() NodeIDRef { return r }

// NodeID copies the view into an owned NodeID.
func (r NodeIDRef) NodeID() NodeID {
	return NodeID{Namespace: r.Namespace, Identifier: r.Identifier.Identifier()}
}

// IsNull reports whether the view denotes the null node identifier.
func (r NodeIDRef) IsNull() bool {
	return r.Namespace == 0 && r.Identifier.typ == TypeNumeric && r.Identifier.numeric == 0
}

// Equal reports whether r and k denote the same node identifier.
func (r NodeIDRef) Equal(k Key) bool {
	o := k.Ref()
	return r.Namespace == o.Namespace && r.Identifier.Equal(o.Identifier)
}

// Compare orders by namespace, then identifier.
func (r NodeIDRef) Compare(k Key) int {
	o := k.Ref()
	if r.Namespace != o.Namespace {
		return cmp3(r.Namespace, o.Namespace)
	}
	return r.Identifier.Compare(o.Identifier)
}

// Hash returns a 64-bit xxhash of the logical value. Owned and borrowed
// forms of the same value hash identically.
func (r NodeIDRef) Hash() uint64 {
	var hdr [7]byte
	binary.LittleEndian.PutUint16(hdr[0:2], r.Namespace)
	hdr[2] = byte(r.Identifier.typ)

	var d xxhash.Digest
	d.Reset()
	switch r.Identifier.typ {
	case TypeNumeric:
		binary.LittleEndian.PutUint32(hdr[3:7], r.Identifier.numeric)
		_, _ = d.Write(hdr[:7])
	case TypeGUID:
		_, _ = d.Write(hdr[:3])
		_, _ = d.Write(r.Identifier.guid[:])
	default:
		if !r.Identifier.absent {
			hdr[3] = 1
		}
		_, _ = d.Write(hdr[:4])
		if r.Identifier.fromBytes {
			_, _ = d.Write(r.Identifier.buf)
		} else {
			_, _ = d.WriteString(r.Identifier.str)
		}
	}
	return d.Sum64()
}

type ordered interface {
	~uint8 | ~uint16 | ~uint32 | ~int
}

func cmp3[T ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// compareSeq compares strings and byte slices bytewise without converting either.
func compareSeq[A, B ~string | ~[]byte](a A, b B) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return cmp3(len(a), len(b))
}
