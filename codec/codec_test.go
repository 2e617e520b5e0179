package codec

import (
	"bytes"
	stderrors "errors"
	"runtime"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/semstreams-opcua/errors"
)

func TestContext_Options(t *testing.T) {
	var nilCtx *Context
	assert.Equal(t, DefaultDecodingOptions(), nilCtx.Options())
	assert.Equal(t, DefaultMaxLength, DefaultContext().Options().MaxStringLength)

	ctx := NewContext(DecodingOptions{MaxStringLength: 8})
	assert.Equal(t, 8, ctx.Options().MaxStringLength)
	assert.Equal(t, 0, ctx.Options().MaxByteStringLength)
}

func TestIntegers_LittleEndian(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteU8(&buf, 0xAB))
	require.NoError(t, WriteU16(&buf, 0x0102))
	require.NoError(t, WriteU32(&buf, 0x03040506))
	require.NoError(t, WriteI32(&buf, -1))

	assert.Equal(t, []byte{0xAB, 0x02, 0x01, 0x06, 0x05, 0x04, 0x03, 0xFF, 0xFF, 0xFF, 0xFF}, buf.Bytes())

	r := bytes.NewReader(buf.Bytes())
	u8, err := ReadU8(r)
	require.NoError(t, err)
	assert.Equal(t, uint8(0xAB), u8)
	u16, err := ReadU16(r)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0102), u16)
	u32, err := ReadU32(r)
	require.NoError(t, err)
	assert.Equal(t, uint32(0x03040506), u32)
	i32, err := ReadI32(r)
	require.NoError(t, err)
	assert.Equal(t, int32(-1), i32)
}

func TestReadU32_Truncated(t *testing.T) {
	_, err := ReadU32(bytes.NewReader([]byte{1, 2}))
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrTruncated))
	assert.True(t, errors.IsInvalid(err))

	_, err = ReadU8(bytes.NewReader(nil))
	assert.True(t, stderrors.Is(err, errors.ErrTruncated))
}

func TestString_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		present bool
		wire    []byte
	}{
		{"null", "", false, []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{"empty", "", true, []byte{0, 0, 0, 0}},
		{"ascii", "abc", true, []byte{3, 0, 0, 0, 'a', 'b', 'c'}},
		{"utf8", "Grüße", true, append([]byte{7, 0, 0, 0}, []byte("Grüße")...)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteString(&buf, tt.value, tt.present))
			assert.Equal(t, tt.wire, buf.Bytes())
			if tt.present {
				assert.Equal(t, len(tt.wire), StringByteLen(len(tt.value)))
			}

			got, present, err := ReadString(bytes.NewReader(buf.Bytes()), nil)
			require.NoError(t, err)
			assert.Equal(t, tt.present, present)
			assert.Equal(t, tt.value, got)
		})
	}
}

func TestReadString_Errors(t *testing.T) {
	tests := []struct {
		name string
		wire []byte
		ctx  *Context
		want error
	}{
		{"negative length", []byte{0xFE, 0xFF, 0xFF, 0xFF}, nil, errors.ErrInvalidData},
		{"over limit", []byte{9, 0, 0, 0}, NewContext(DecodingOptions{MaxStringLength: 8}), errors.ErrLimitExceeded},
		{"short payload", []byte{4, 0, 0, 0, 'a'}, nil, errors.ErrTruncated},
		{"short prefix", []byte{4, 0}, nil, errors.ErrTruncated},
		{"invalid utf8", []byte{2, 0, 0, 0, 0xC3, 0x28}, nil, errors.ErrInvalidData},
		{"default limit", []byte{0x00, 0x00, 0x01, 0x00}, nil, errors.ErrLimitExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ReadString(bytes.NewReader(tt.wire), tt.ctx)
			require.Error(t, err)
			assert.True(t, stderrors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestReadString_Unlimited(t *testing.T) {
	payload := bytes.Repeat([]byte("x"), DefaultMaxLength+1)
	var buf bytes.Buffer
	require.NoError(t, WriteString(&buf, string(payload), true))

	ctx := NewContext(DecodingOptions{})
	got, present, err := ReadString(bytes.NewReader(buf.Bytes()), ctx)
	require.NoError(t, err)
	assert.True(t, present)
	assert.Len(t, got, DefaultMaxLength+1)
}

func TestReadByteString_HostileLengthUnlimited(t *testing.T) {
	ctx := NewContext(DecodingOptions{})
	wire := []byte{0x00, 0x00, 0x00, 0x40, 1, 2, 3}

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	_, err := ReadByteString(bytes.NewReader(wire), ctx)
	runtime.ReadMemStats(&after)

	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrTruncated), "got %v", err)
	assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(4<<20),
		"allocation must follow the bytes present, not the declared length")
}

func TestByteString(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteByteString(&buf, nil))
	require.NoError(t, WriteByteString(&buf, []byte{}))
	require.NoError(t, WriteByteString(&buf, []byte{0xDE, 0xAD}))

	r := bytes.NewReader(buf.Bytes())
	b, err := ReadByteString(r, nil)
	require.NoError(t, err)
	assert.Nil(t, b)

	b, err = ReadByteString(r, nil)
	require.NoError(t, err)
	assert.NotNil(t, b)
	assert.Empty(t, b)

	b, err = ReadByteString(r, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xDE, 0xAD}, b)

	// byte strings are not UTF-8 checked but honour their own limit
	ctx := NewContext(DecodingOptions{MaxStringLength: 100, MaxByteStringLength: 1})
	_, err = ReadByteString(bytes.NewReader([]byte{2, 0, 0, 0, 0xC3, 0x28}), ctx)
	assert.True(t, stderrors.Is(err, errors.ErrLimitExceeded))
}

func TestGUID_WireLayout(t *testing.T) {
	g := uuid.MustParse("72962b91-fa75-4ae6-8d28-b404dc7daf63")
	wire := []byte{
		0x91, 0x2b, 0x96, 0x72,
		0x75, 0xfa,
		0xe6, 0x4a,
		0x8d, 0x28, 0xb4, 0x04, 0xdc, 0x7d, 0xaf, 0x63,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteGUID(&buf, g))
	assert.Equal(t, wire, buf.Bytes())

	got, err := ReadGUID(bytes.NewReader(wire))
	require.NoError(t, err)
	assert.Equal(t, g, got)

	_, err = ReadGUID(bytes.NewReader(wire[:15]))
	assert.True(t, stderrors.Is(err, errors.ErrTruncated))
}

func TestCheckLength(t *testing.T) {
	n, present, err := CheckLength(-1, 10, "test")
	require.NoError(t, err)
	assert.False(t, present)
	assert.Zero(t, n)

	n, present, err = CheckLength(10, 10, "test")
	require.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, 10, n)

	_, _, err = CheckLength(11, 10, "test")
	assert.True(t, stderrors.Is(err, errors.ErrLimitExceeded))

	_, _, err = CheckLength(-2, 0, "test")
	assert.True(t, stderrors.Is(err, errors.ErrInvalidData))
}
