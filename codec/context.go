package codec

import "io"

// DefaultMaxLength is the default bound for declared String and ByteString lengths.
const DefaultMaxLength = 65535

// DecodingOptions bounds the memory a decoder may allocate for length-prefixed payloads.
// A zero limit means unlimited.
type DecodingOptions struct {
	MaxStringLength     int `json:"max_string_length" yaml:"max_string_length"`
	MaxByteStringLength int `json:"max_byte_string_length" yaml:"max_byte_string_length"`
}

// DefaultDecodingOptions returns the limits used when no Context is supplied.
func DefaultDecodingOptions() DecodingOptions {
	return DecodingOptions{
		MaxStringLength:     DefaultMaxLength,
		MaxByteStringLength: DefaultMaxLength,
	}
}

// Context carries options shared by every encode and decode call of one message.
type Context struct {
	opts DecodingOptions
}

// NewContext creates a Context with the given decoding options.
func NewContext(opts DecodingOptions) *Context {
	return &Context{opts: opts}
}

// DefaultContext creates a Context with DefaultDecodingOptions.
func DefaultContext() *Context {
	return NewContext(DefaultDecodingOptions())
}

// Options returns the decoding options, falling back to the defaults for a nil Context.
func (c *Context) Options() DecodingOptions {
	if c == nil {
		return DefaultDecodingOptions()
	}
	return c.opts
}

// Encodable is implemented by values that can write themselves in binary form.
// ByteLen must return exactly the number of bytes Encode writes.
type Encodable interface {
	ByteLen(ctx *Context) int
	Encode(w io.Writer, ctx *Context) error
}

// DecodeFunc reads one value of type T from r.
type DecodeFunc[T any] func(r io.Reader, ctx *Context) (T, error)
