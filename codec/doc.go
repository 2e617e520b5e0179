// Package codec provides the primitive binary reader and writer functions
// that node identifiers and other protocol values are built from.
//
// All multi-byte integers are little-endian. String and ByteString values are
// prefixed with an Int32 length where -1 marks an absent value. A GUID is
// written as Data1 (uint32 LE), Data2 (uint16 LE), Data3 (uint16 LE) followed
// by the eight bytes of Data4 in order.
//
// # Decoding limits
//
// Every decode function takes a *Context whose DecodingOptions bound the
// declared length of String and ByteString payloads. A declared length above
// the limit is rejected before any buffer is allocated. A nil *Context uses
// DefaultDecodingOptions.
//
//	ctx := codec.NewContext(codec.DecodingOptions{MaxStringLength: 1024})
//	s, present, err := codec.ReadString(r, ctx)
//
// # Errors
//
// Short input reports errors.ErrTruncated, an oversized declared length
// reports errors.ErrLimitExceeded and a negative length other than -1 or a
// text payload that is not UTF-8 reports errors.ErrInvalidData. All are
// classified as invalid input.
package codec
