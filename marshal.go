// This file implements encoding/decoding of Ints.

package bigint

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Gob codec version. Permits backward-compatible changes to the encoding.
const intGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface.
func (x *Int) GobEncode() ([]byte, error) {
	if x == nil {
		return nil, nil
	}
	buf := make([]byte, 1+len(x.abs)*_S) // extra byte at bottom to hold version and sign bit
	i := x.abs.bytes(buf) - 1            // i >= 0
	b := intGobVersion << 1              // make space for sign bit
	if x.neg {
		b |= 1
	}
	buf[i] = b
	return buf[i:], nil
}

// GobDecode implements the gob.GobDecoder interface.
func (z *Int) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		// Other side sent a nil or default value.
		*z = Int{}
		return nil
	}
	b := buf[0]
	if b>>1 != intGobVersion {
		return fmt.Errorf("Int.GobDecode: encoding version %d not supported", b>>1)
	}
	z.abs = z.abs.setBytes(buf[1:])
	z.neg = b&1 != 0 && len(z.abs) > 0
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (x *Int) MarshalText() (text []byte, err error) {
	if x == nil {
		return []byte("<nil>"), nil
	}
	return x.abs.itoa(x.neg, 10, nil, ConvAuto), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (z *Int) UnmarshalText(text []byte) error {
	if _, err := z.SetString(string(text), 10); err != nil {
		return fmt.Errorf("bigint: cannot unmarshal %q into a *bigint.Int: %w", text, err)
	}
	return nil
}

// The JSON marshalers are only here for API backward compatibility with
// encoding/json conventions: the value is its decimal text.

// MarshalJSON implements the json.Marshaler interface.
func (x *Int) MarshalJSON() ([]byte, error) {
	if x == nil {
		return []byte("null"), nil
	}
	return x.abs.itoa(x.neg, 10, nil, ConvAuto), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (z *Int) UnmarshalJSON(text []byte) error {
	// Ignore null, like in the main JSON package.
	if string(text) == "null" {
		return nil
	}
	return z.UnmarshalText(text)
}

var (
	_ msgpack.CustomEncoder = (*Int)(nil)
	_ msgpack.CustomDecoder = (*Int)(nil)
)

// EncodeMsgpack implements the msgpack.CustomEncoder interface. The
// value is encoded as the sign followed by the big-endian magnitude
// bytes, which is compact and independent of the limb size.
func (x *Int) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeBool(x.neg); err != nil {
		return err
	}
	return enc.EncodeBytes(x.Bytes())
}

// DecodeMsgpack implements the msgpack.CustomDecoder interface.
func (z *Int) DecodeMsgpack(dec *msgpack.Decoder) error {
	neg, err := dec.DecodeBool()
	if err != nil {
		return err
	}
	buf, err := dec.DecodeBytes()
	if err != nil {
		return err
	}
	z.abs = z.abs.setBytes(buf)
	z.neg = neg && len(z.abs) > 0
	return nil
}
