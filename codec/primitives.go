package codec

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/c360/semstreams-opcua/errors"
)

// GUIDLen is the encoded size of a GUID.
const GUIDLen = 16

// readChunk caps the up-front allocation for a length-prefixed payload.
const readChunk = 64 << 10

// readFull reads len(buf) bytes and maps short input to ErrTruncated.
func readFull(r io.Reader, buf []byte, method string) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return errors.WrapInvalid(errors.ErrTruncated, "codec", method, "read bytes")
		}
		return errors.WrapTransient(err, "codec", method, "read bytes")
	}
	return nil
}

func write(w io.Writer, buf []byte, method string) error {
	if _, err := w.Write(buf); err != nil {
		return errors.WrapTransient(err, "codec", method, "write bytes")
	}
	return nil
}

// ReadU8 reads a single byte.
func ReadU8(r io.Reader) (uint8, error) {
	var buf [1]byte
	if err := readFull(r, buf[:], "ReadU8"); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadU16 reads a little-endian uint16.
func ReadU16(r io.Reader) (uint16, error) {
	var buf [2]byte
	if err := readFull(r, buf[:], "ReadU16"); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

// ReadU32 reads a little-endian uint32.
func ReadU32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if err := readFull(r, buf[:], "ReadU32"); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// ReadI32 reads a little-endian int32.
func ReadI32(r io.Reader) (int32, error) {
	v, err := ReadU32(r)
	return int32(v), err
}

// WriteU8 writes a single byte.
func WriteU8(w io.Writer, v uint8) error {
	return write(w, []byte{v}, "WriteU8")
}

// WriteU16 writes a little-endian uint16.
func WriteU16(w io.Writer, v uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	return write(w, buf[:], "WriteU16")
}

// WriteU32 writes a little-endian uint32.
func WriteU32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return write(w, buf[:], "WriteU32")
}

// WriteI32 writes a little-endian int32.
func WriteI32(w io.Writer, v int32) error {
	return WriteU32(w, uint32(v))
}

// CheckLength validates a declared Int32 length against limit.
// It returns present=false for the absent marker -1.
func CheckLength(n int32, limit int, method string) (int, bool, error) {
	switch {
	case n == -1:
		return 0, false, nil
	case n < 0:
		return 0, false, errors.WrapInvalid(errors.ErrInvalidData, "codec", method, "check negative length")
	case limit > 0 && int(n) > limit:
		return 0, false, errors.WrapInvalid(errors.ErrLimitExceeded, "codec", method, "check declared length")
	}
	return int(n), true, nil
}

// StringByteLen returns the encoded size of a String or ByteString payload of n bytes.
func StringByteLen(n int) int {
	return 4 + n
}

// ReadString reads a length-prefixed UTF-8 string. present is false for a null string.
func ReadString(r io.Reader, ctx *Context) (s string, present bool, err error) {
	buf, present, err := readPrefixed(r, ctx.Options().MaxStringLength, "ReadString")
	if err != nil || !present {
		return "", present, err
	}
	if !utf8.Valid(buf) {
		return "", false, errors.WrapInvalid(errors.ErrInvalidData, "codec", "ReadString", "validate utf-8")
	}
	return string(buf), true, nil
}

// ReadByteString reads a length-prefixed byte string. A null byte string is returned as nil.
func ReadByteString(r io.Reader, ctx *Context) ([]byte, error) {
	buf, present, err := readPrefixed(r, ctx.Options().MaxByteStringLength, "ReadByteString")
	if err != nil || !present {
		return nil, err
	}
	return buf, nil
}

func readPrefixed(r io.Reader, limit int, method string) ([]byte, bool, error) {
	declared, err := ReadI32(r)
	if err != nil {
		return nil, false, err
	}
	n, present, err := CheckLength(declared, limit, method)
	if err != nil || !present {
		return nil, present, err
	}
	// grow with the bytes actually read, not the declared length
	var buf bytes.Buffer
	buf.Grow(min(n, readChunk))
	if _, err := io.CopyN(&buf, r, int64(n)); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, false, errors.WrapInvalid(errors.ErrTruncated, "codec", method, "read bytes")
		}
		return nil, false, errors.WrapTransient(err, "codec", method, "read bytes")
	}
	return buf.Bytes(), true, nil
}

// WriteString writes s with its Int32 length prefix, or -1 when present is false.
func WriteString(w io.Writer, s string, present bool) error {
	if !present {
		return WriteI32(w, -1)
	}
	if len(s) > math.MaxInt32 {
		return errors.WrapInvalid(errors.ErrLimitExceeded, "codec", "WriteString", "check length")
	}
	if err := WriteI32(w, int32(len(s))); err != nil {
		return err
	}
	if _, err := io.WriteString(w, s); err != nil {
		return errors.WrapTransient(err, "codec", "WriteString", "write payload")
	}
	return nil
}

// WriteByteString writes b with its Int32 length prefix. A nil slice is written as null.
func WriteByteString(w io.Writer, b []byte) error {
	if b == nil {
		return WriteI32(w, -1)
	}
	return WriteString(w, string(b), true)
}

// ReadGUID reads a GUID in its mixed-endian wire layout.
func ReadGUID(r io.Reader) (uuid.UUID, error) {
	var buf [GUIDLen]byte
	if err := readFull(r, buf[:], "ReadGUID"); err != nil {
		return uuid.Nil, err
	}
	return GUIDFromWire(buf[:]), nil
}

// WriteGUID writes a GUID in its mixed-endian wire layout.
func WriteGUID(w io.Writer, g uuid.UUID) error {
	var buf [GUIDLen]byte
	PutGUID(buf[:], g)
	return write(w, buf[:], "WriteGUID")
}

// GUIDFromWire converts 16 wire bytes into a UUID in RFC 4122 byte order.
func GUIDFromWire(b []byte) uuid.UUID {
	var g uuid.UUID
	binary.BigEndian.PutUint32(g[0:4], binary.LittleEndian.Uint32(b[0:4]))
	binary.BigEndian.PutUint16(g[4:6], binary.LittleEndian.Uint16(b[4:6]))
	binary.BigEndian.PutUint16(g[6:8], binary.LittleEndian.Uint16(b[6:8]))
	copy(g[8:], b[8:16])
	return g
}

// PutGUID stores g into dst (at least 16 bytes) in wire layout.
func PutGUID(dst []byte, g uuid.UUID) {
	binary.LittleEndian.PutUint32(dst[0:4], binary.BigEndian.Uint32(g[0:4]))
	binary.LittleEndian.PutUint16(dst[4:6], binary.BigEndian.Uint16(g[4:6]))
	binary.LittleEndian.PutUint16(dst[6:8], binary.BigEndian.Uint16(g[6:8]))
	copy(dst[8:16], g[8:])
}
