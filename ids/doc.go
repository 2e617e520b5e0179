// Package ids holds the closed catalogues of well-known numeric identifiers
// defined in namespace 0: objects, variables, methods, reference types and
// data types.
//
// Each catalogue is a distinct integer type backed by a static bidirectional
// table that is built once at package initialization. Lookups in either
// direction never allocate:
//
//	id, ok := ids.ObjectIDFromUint32(85) // ids.ObjectsFolder, true
//	name := id.String()                  // "ObjectsFolder"
//	v := id.Uint32()                     // 85
//
// Values outside a catalogue report ok=false. The nodeid package uses these
// lookups for its As<Kind>ID conversions and the reverse mapping through
// WellKnown.
package ids
