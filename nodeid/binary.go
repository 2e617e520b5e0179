package nodeid

import (
	"bytes"
	"encoding/binary"
	stderrors "errors"
	"fmt"
	"io"
	"math"
	"unicode/utf8"

	"github.com/c360/semstreams-opcua/codec"
	"github.com/c360/semstreams-opcua/errors"
)

// Encoding is the wire layout tag of a binary node identifier.
type Encoding byte

const (
	EncodingTwoByte    Encoding = 0x00
	EncodingFourByte   Encoding = 0x01
	EncodingNumeric    Encoding = 0x02
	EncodingString     Encoding = 0x03
	EncodingGUID       Encoding = 0x04
	EncodingByteString Encoding = 0x05
)

// String returns the layout name
func (e Encoding) String() string {
	switch e {
	case EncodingTwoByte:
		return "two_byte"
	case EncodingFourByte:
		return "four_byte"
	case EncodingNumeric:
		return "numeric"
	case EncodingString:
		return "string"
	case EncodingGUID:
		return "guid"
	case EncodingByteString:
		return "byte_string"
	default:
		return fmt.Sprintf("unknown(0x%02x)", byte(e))
	}
}

// TagError reports a binary node identifier whose first byte is not a known layout tag.
type TagError struct {
	Tag byte
}

func (e *TagError) Error() string {
	return fmt.Sprintf("malformed node id encoding tag 0x%02x", e.Tag)
}

// Is matches errors.ErrMalformedTag.
func (e *TagError) Is(target error) bool {
	return target == errors.ErrMalformedTag
}

// Encoding returns the most compact layout for n.
func (n NodeID) Encoding() Encoding {
	switch n.Identifier.typ {
	case TypeText:
		return EncodingString
	case TypeGUID:
		return EncodingGUID
	case TypeOpaque:
		return EncodingByteString
	}
	v := n.Identifier.numeric
	switch {
	case n.Namespace == 0 && v <= math.MaxUint8:
		return EncodingTwoByte
	case n.Namespace <= math.MaxUint8 && v <= math.MaxUint16:
		return EncodingFourByte
	default:
		return EncodingNumeric
	}
}

// ByteLen returns the number of bytes Encode writes for n.
func (n NodeID) ByteLen(_ *codec.Context) int {
	switch n.Encoding() {
	case EncodingTwoByte:
		return 2
	case EncodingFourByte:
		return 4
	case EncodingNumeric:
		return 7
	case EncodingGUID:
		return 3 + codec.GUIDLen
	default:
		if n.Identifier.absent {
			return 3 + codec.StringByteLen(0)
		}
		return 3 + codec.StringByteLen(len(n.Identifier.payload))
	}
}

// Encode writes n in its most compact layout. Text that is not valid UTF-8
// fails with errors.ErrInvalidData before anything is written.
func (n NodeID) Encode(w io.Writer, ctx *codec.Context) error {
	if n.Identifier.typ == TypeText && !utf8.ValidString(n.Identifier.payload) {
		return errors.WrapInvalid(errors.ErrInvalidData, "NodeID", "Encode", "validate utf-8")
	}
	if err := n.encode(w); err != nil {
		return errors.Wrap(err, "NodeID", "Encode", fmt.Sprintf("write %s layout", n.Encoding()))
	}
	return nil
}

func (n NodeID) encode(w io.Writer) error {
	enc := n.Encoding()
	if err := codec.WriteU8(w, byte(enc)); err != nil {
		return err
	}
	id := n.Identifier
	switch enc {
	case EncodingTwoByte:
		return codec.WriteU8(w, uint8(id.numeric))
	case EncodingFourByte:
		if err := codec.WriteU8(w, uint8(n.Namespace)); err != nil {
			return err
		}
		return codec.WriteU16(w, uint16(id.numeric))
	}

	if err := codec.WriteU16(w, n.Namespace); err != nil {
		return err
	}
	switch enc {
	case EncodingNumeric:
		return codec.WriteU32(w, id.numeric)
	case EncodingGUID:
		return codec.WriteGUID(w, id.guid)
	default:
		return codec.WriteString(w, id.payload, !id.absent)
	}
}

// AppendBinary appends the encoding of n to b.
func (n NodeID) AppendBinary(b []byte) ([]byte, error) {
	buf := bytes.NewBuffer(b)
	if err := n.Encode(buf, nil); err != nil {
		return b, err
	}
	return buf.Bytes(), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (n NodeID) MarshalBinary() ([]byte, error) {
	return n.AppendBinary(make([]byte, 0, n.ByteLen(nil)))
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. data must hold
// exactly one encoded node identifier.
func (n *NodeID) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)
	v, err := Decode(r, nil)
	if err != nil {
		return err
	}
	if r.Len() != 0 {
		return errors.WrapInvalid(errors.ErrInvalidData, "NodeID", "UnmarshalBinary",
			fmt.Sprintf("check %d trailing bytes", r.Len()))
	}
	*n = v
	return nil
}

// Decode reads one node identifier. The layout tag is read first; an unknown
// tag fails with a *TagError and nothing beyond it is consumed.
func Decode(r io.Reader, ctx *codec.Context) (NodeID, error) {
	tag, err := codec.ReadU8(r)
	if err != nil {
		return NodeID{}, decodeError(err, "read encoding tag")
	}

	n, err := decodeBody(r, ctx, Encoding(tag))
	if err != nil {
		return NodeID{}, decodeError(err, fmt.Sprintf("read %s layout", Encoding(tag)))
	}
	return n, nil
}

// decodeError keeps the class the codec assigned, so reader failures stay
// transient; anything unclassified is invalid input.
func decodeError(err error, action string) error {
	var ce *errors.ClassifiedError
	if stderrors.As(err, &ce) {
		return errors.Wrap(err, "NodeID", "Decode", action)
	}
	return errors.WrapInvalid(err, "NodeID", "Decode", action)
}

func decodeBody(r io.Reader, ctx *codec.Context, enc Encoding) (NodeID, error) {
	switch enc {
	case EncodingTwoByte:
		v, err := codec.ReadU8(r)
		return NewNumeric(0, uint32(v)), err
	case EncodingFourByte:
		ns, err := codec.ReadU8(r)
		if err != nil {
			return NodeID{}, err
		}
		v, err := codec.ReadU16(r)
		return NewNumeric(uint16(ns), uint32(v)), err
	case EncodingNumeric, EncodingString, EncodingGUID, EncodingByteString:
	default:
		return NodeID{}, &TagError{Tag: byte(enc)}
	}

	ns, err := codec.ReadU16(r)
	if err != nil {
		return NodeID{}, err
	}
	switch enc {
	case EncodingNumeric:
		v, err := codec.ReadU32(r)
		return NewNumeric(ns, v), err
	case EncodingString:
		s, present, err := codec.ReadString(r, ctx)
		if err != nil {
			return NodeID{}, err
		}
		if !present {
			return New(ns, NullTextID()), nil
		}
		return NewText(ns, s), nil
	case EncodingGUID:
		g, err := codec.ReadGUID(r)
		return NewGUID(ns, g), err
	default:
		b, err := codec.ReadByteString(r, ctx)
		if err != nil {
			return NodeID{}, err
		}
		return NewOpaque(ns, b), nil
	}
}

// DecodeRef decodes one node identifier from the front of data without
// copying text or opaque payloads; the returned view borrows data. It also
// returns the number of bytes consumed.
func DecodeRef(data []byte, ctx *codec.Context) (NodeIDRef, int, error) {
	ref, n, err := decodeRef(data, ctx)
	if err != nil {
		return NodeIDRef{}, n, errors.WrapInvalid(err, "NodeID", "DecodeRef", "decode view")
	}
	return ref, n, nil
}

func decodeRef(data []byte, ctx *codec.Context) (NodeIDRef, int, error) {
	if len(data) < 1 {
		return NodeIDRef{}, 0, errors.ErrTruncated
	}
	enc := Encoding(data[0])
	need := func(n int) error {
		if len(data) < n {
			return errors.ErrTruncated
		}
		return nil
	}

	switch enc {
	case EncodingTwoByte:
		if err := need(2); err != nil {
			return NodeIDRef{}, 1, err
		}
		return NewRef(0, NumericRef(uint32(data[1]))), 2, nil
	case EncodingFourByte:
		if err := need(4); err != nil {
			return NodeIDRef{}, 1, err
		}
		return NewRef(uint16(data[1]), NumericRef(uint32(binary.LittleEndian.Uint16(data[2:4])))), 4, nil
	case EncodingNumeric, EncodingString, EncodingGUID, EncodingByteString:
	default:
		return NodeIDRef{}, 1, &TagError{Tag: data[0]}
	}

	if err := need(3); err != nil {
		return NodeIDRef{}, 1, err
	}
	ns := binary.LittleEndian.Uint16(data[1:3])

	switch enc {
	case EncodingNumeric:
		if err := need(7); err != nil {
			return NodeIDRef{}, 3, err
		}
		return NewRef(ns, NumericRef(binary.LittleEndian.Uint32(data[3:7]))), 7, nil
	case EncodingGUID:
		if err := need(3 + codec.GUIDLen); err != nil {
			return NodeIDRef{}, 3, err
		}
		return NewRef(ns, GUIDRef(codec.GUIDFromWire(data[3:]))), 3 + codec.GUIDLen, nil
	}

	if err := need(7); err != nil {
		return NodeIDRef{}, 3, err
	}
	opts := ctx.Options()
	limit := opts.MaxByteStringLength
	if enc == EncodingString {
		limit = opts.MaxStringLength
	}
	size, present, err := codec.CheckLength(int32(binary.LittleEndian.Uint32(data[3:7])), limit, "DecodeRef")
	if err != nil {
		return NodeIDRef{}, 7, err
	}
	if err := need(7 + size); err != nil {
		return NodeIDRef{}, 7, err
	}
	end := 7 + size

	if enc == EncodingString {
		if !present {
			return NewRef(ns, IdentifierRef{typ: TypeText, absent: true}), end, nil
		}
		payload := data[7:end:end]
		if !utf8.Valid(payload) {
			return NodeIDRef{}, 7, errors.ErrInvalidData
		}
		return NewRef(ns, TextRefBytes(payload)), end, nil
	}
	if !present {
		return NewRef(ns, OpaqueRef(nil)), end, nil
	}
	return NewRef(ns, OpaqueRef(data[7:end:end])), end, nil
}
