// Package nodeid implements the node identifier: the value that names every
// entity a server exposes, pairing a 16-bit namespace index with an
// Identifier that is numeric, text, GUID or opaque.
//
// # Values
//
// NodeID and Identifier are comparable value types. The zero NodeID is the
// null node identifier {0, i=0}; no other value is null.
//
//	temp := nodeid.NewText(2, "Temperature")
//	server := nodeid.NewNumeric(0, 2253)
//	seen := map[nodeid.NodeID]bool{temp: true}
//
// Identifiers order by namespace, then identifier type (numeric, text, guid,
// opaque), then payload. Absent text and opaque payloads sort before present
// ones.
//
// # Binary form
//
// Encode picks the most compact of the protocol layouts:
//
//	0x00  2 bytes    namespace 0, numeric value <= 255
//	0x01  4 bytes    namespace <= 255, numeric value <= 65535
//	0x02  7 bytes    any other numeric value
//	0x03  3+4+n      text
//	0x04  3+16       guid
//	0x05  3+4+n      opaque
//
// ByteLen reports the size without encoding. Decode reads the tag byte first
// and rejects unknown tags with a *TagError matching errors.ErrMalformedTag.
// Length-prefixed payloads honour the limits of the codec.Context.
//
// # Textual form
//
//	i=2253
//	ns=2;s=Temperature
//	ns=1;g=72962b91-fa75-4ae6-8d28-b404dc7daf63
//	ns=1;b=M/RbKBsRVkePCePcx24oRA==
//
// Parse and String are inverses for every accepted input. NodeID implements
// encoding.TextMarshaler so it can be used directly in YAML and JSON
// documents.
//
// # Borrowed views
//
// NodeIDRef and IdentifierRef mirror the owned types but borrow text and
// opaque payloads, for example straight out of a receive buffer via
// DecodeRef. Owned and borrowed forms of the same value are Equal, Compare
// as 0 and share a Hash, so a Map of owned identifiers can be searched with a
// view:
//
//	m := nodeid.NewMap[string]()
//	m.Set(nodeid.NewText(2, "Temperature"), "sensor")
//	v, ok := m.Get(nodeid.NewRef(2, nodeid.TextRefBytes(buf)))
//
// # Well-known identifiers and allocation
//
// The As*ID conversions resolve namespace 0 numeric identifiers against the
// catalogues in package ids, and FromWellKnown goes the other way. The
// Allocator hands out fresh numeric values from one monotonic sequence;
// NextNumeric uses the process-wide instance seeded at 1.
package nodeid
