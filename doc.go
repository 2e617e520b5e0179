// Package opcua is the root of the semstreams-opcua module, which models
// OPC UA node identifiers and the plumbing around them.
//
// # Layout
//
// The module is split into small packages that build on each other:
//
//   - errors: error classification (transient, invalid, fatal) and sentinels
//   - codec: the binary encoding context, decoding limits and primitives
//   - ids: closed catalogues of well-known namespace 0 identifiers
//   - nodeid: the node identifier, its binary and textual forms, the
//     borrowed view, conversions, the allocator and a keyed map
//   - pkg/cache: Simple, LRU and TTL caches keyed by node identifiers
//   - metric: Prometheus registry and codec metrics
//   - config: YAML settings with environment expansion and schema checks
//   - cmd/nodeidctl: command-line access to all of the above
//
// # Quick Start
//
//	id, err := nodeid.Parse("ns=2;s=Boiler.Temperature")
//	if err != nil {
//		return err
//	}
//
//	data, err := id.MarshalBinary()
//	if err != nil {
//		return err
//	}
//
//	ref, n, err := nodeid.DecodeRef(data, codec.DefaultContext())
//	if err != nil {
//		return err
//	}
//	fmt.Println(ref.NodeID(), n) // ns=2;s=Boiler.Temperature 25
//
// # Binary Layouts
//
// Numeric identifiers use the smallest layout that fits:
//
//	0x00  two-byte   namespace 0, value <= 255
//	0x01  four-byte  namespace <= 255, value <= 65535
//	0x02  numeric    any other numeric identifier
//	0x03  string     namespace uint16, Int32 length, UTF-8 bytes
//	0x04  guid       namespace uint16, 16 GUID bytes
//	0x05  bytestring namespace uint16, Int32 length, raw bytes
//
// All integers are little-endian. A length of -1 encodes an absent payload.
package opcua
