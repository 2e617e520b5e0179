package nodeid

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/c360/semstreams-opcua/errors"
)

const namespacePrefix = "ns="

// String formats the identifier part as i=, s=, g= or b= followed by its
// payload. Absent text and opaque payloads format like empty ones.
func (id Identifier) String() string {
	switch id.typ {
	case TypeText:
		return "s=" + id.payload
	case TypeGUID:
		return "g=" + id.guid.String()
	case TypeOpaque:
		return "b=" + base64.StdEncoding.EncodeToString([]byte(id.payload))
	default:
		return "i=" + strconv.FormatUint(uint64(id.numeric), 10)
	}
}

// String formats n in the canonical textual form, for example "i=2253" or
// "ns=2;s=Temperature". The namespace is only written when non-zero.
func (n NodeID) String() string {
	if n.Namespace == 0 {
		return n.Identifier.String()
	}
	return namespacePrefix + strconv.FormatUint(uint64(n.Namespace), 10) + ";" + n.Identifier.String()
}

// Parse reads the canonical textual form:
//
//	nodeid := ("ns=" <uint16> ";")? typed
//	typed  := "i=" <uint32> | "s=" <text> | "g=" <guid> | "b=" <base64-or-raw>
//
// The payload after the type tag must not be empty. Text is taken verbatim
// and must be valid UTF-8.
// A b= payload that is not valid standard base64 is used as raw bytes.
// Every failure is errors.ErrNodeIDInvalid.
func Parse(s string) (NodeID, error) {
	var ns uint16
	typed := s
	if rest, ok := strings.CutPrefix(s, namespacePrefix); ok {
		digits, tail, found := strings.Cut(rest, ";")
		if !found || !isDigits(digits) {
			return NodeID{}, syntaxError("Parse", s, "namespace prefix")
		}
		v, err := strconv.ParseUint(digits, 10, 16)
		if err != nil {
			return NodeID{}, syntaxError("Parse", s, "namespace range")
		}
		ns = uint16(v)
		typed = tail
	}

	id, err := parseTyped(typed)
	if err != nil {
		return NodeID{}, syntaxError("Parse", s, err.Error())
	}
	return New(ns, id), nil
}

// MustParse is like Parse but panics on error. It is meant for literals.
func MustParse(s string) NodeID {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// ParseIdentifier reads the typed part of the grammar without a namespace prefix.
func ParseIdentifier(s string) (Identifier, error) {
	id, err := parseTyped(s)
	if err != nil {
		return Identifier{}, syntaxError("ParseIdentifier", s, err.Error())
	}
	return id, nil
}

func parseTyped(s string) (Identifier, error) {
	if len(s) < 2 || s[1] != '=' {
		return Identifier{}, fmt.Errorf("type tag")
	}
	payload := s[2:]
	if payload == "" {
		return Identifier{}, fmt.Errorf("empty payload")
	}

	switch s[0] {
	case 'i':
		if !isDigits(payload) {
			return Identifier{}, fmt.Errorf("numeric payload")
		}
		v, err := strconv.ParseUint(payload, 10, 32)
		if err != nil {
			return Identifier{}, fmt.Errorf("numeric range")
		}
		return NumericID(uint32(v)), nil
	case 's':
		if !utf8.ValidString(payload) {
			return Identifier{}, fmt.Errorf("text payload")
		}
		return TextID(payload), nil
	case 'g':
		g, err := uuid.Parse(payload)
		if err != nil {
			return Identifier{}, fmt.Errorf("guid payload")
		}
		return GUIDID(g), nil
	case 'b':
		b, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			b = []byte(payload)
		}
		return OpaqueID(b), nil
	default:
		return Identifier{}, fmt.Errorf("type tag %q", s[0])
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func syntaxError(method, input, part string) error {
	return errors.WrapInvalid(errors.ErrNodeIDInvalid, "NodeID", method, fmt.Sprintf("parse %s of %q", part, input))
}

// MarshalText implements encoding.TextMarshaler.
func (n NodeID) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *NodeID) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = v
	return nil
}
