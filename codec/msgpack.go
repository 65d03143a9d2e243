package codec

import (
	"bytes"
	"fmt"
	"math"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"

	dataapi "github.com/mschae23/data-api"
)

// ToMsgpack serializes an Element to MessagePack using the streaming
// encoder, so map entries are written in object insertion order. Int and
// Long are written with fixed 32/64-bit codes to keep the kind distinction
// observable on the wire.
func ToMsgpack(el dataapi.Element) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := writeMsgpack(enc, el); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeMsgpack(enc *msgpack.Encoder, el dataapi.Element) error {
	switch el.Kind() {
	case dataapi.KindNull:
		return wrapMsgpackErr(enc.EncodeNil())
	case dataapi.KindBoolean:
		v, _ := el.BoolValue()
		return wrapMsgpackErr(enc.EncodeBool(v))
	case dataapi.KindInt:
		v, _ := el.IntValue()
		return wrapMsgpackErr(enc.EncodeInt32(v))
	case dataapi.KindLong:
		v, _ := el.LongValue()
		return wrapMsgpackErr(enc.EncodeInt64(v))
	case dataapi.KindFloat:
		v, _ := el.FloatValue()
		return wrapMsgpackErr(enc.EncodeFloat32(v))
	case dataapi.KindDouble:
		v, _ := el.DoubleValue()
		return wrapMsgpackErr(enc.EncodeFloat64(v))
	case dataapi.KindString:
		v, _ := el.StringValue()
		return wrapMsgpackErr(enc.EncodeString(v))
	case dataapi.KindArray:
		items, _ := el.Items()
		if err := enc.EncodeArrayLen(len(items)); err != nil {
			return wrapMsgpackErr(err)
		}
		for _, it := range items {
			if err := writeMsgpack(enc, it); err != nil {
				return err
			}
		}
		return nil
	case dataapi.KindObject:
		obj, _ := el.Object()
		if err := enc.EncodeMapLen(obj.Len()); err != nil {
			return wrapMsgpackErr(err)
		}
		var rangeErr error
		obj.Range(func(k string, v dataapi.Element) bool {
			if err := enc.EncodeString(k); err != nil {
				rangeErr = wrapMsgpackErr(err)
				return false
			}
			if err := writeMsgpack(enc, v); err != nil {
				rangeErr = err
				return false
			}
			return true
		})
		return rangeErr
	default:
		return msgpackError(fmt.Errorf("cannot serialize %s element", el.Kind()))
	}
}

// FromMsgpack parses one MessagePack value into an Element. The 32-bit
// float code maps to Float and the 64-bit one to Double; integers written
// with a 64-bit code map to Long, everything else that fits maps to Int.
func FromMsgpack(data []byte) (dataapi.Element, error) {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	return readMsgpack(dec)
}

func readMsgpack(dec *msgpack.Decoder) (dataapi.Element, error) {
	code, err := dec.PeekCode()
	if err != nil {
		return dataapi.Absent(), msgpackError(err)
	}
	switch {
	case code == msgpcode.Nil:
		if err := dec.DecodeNil(); err != nil {
			return dataapi.Absent(), msgpackError(err)
		}
		return dataapi.Null(), nil
	case code == msgpcode.True || code == msgpcode.False:
		v, err := dec.DecodeBool()
		if err != nil {
			return dataapi.Absent(), msgpackError(err)
		}
		return dataapi.Boolean(v), nil
	case code == msgpcode.Float:
		v, err := dec.DecodeFloat32()
		if err != nil {
			return dataapi.Absent(), msgpackError(err)
		}
		return dataapi.Float(v), nil
	case code == msgpcode.Double:
		v, err := dec.DecodeFloat64()
		if err != nil {
			return dataapi.Absent(), msgpackError(err)
		}
		return dataapi.Double(v), nil
	case msgpcode.IsFixedNum(code) ||
		code == msgpcode.Int8 || code == msgpcode.Int16 || code == msgpcode.Int32 ||
		code == msgpcode.Int64 || code == msgpcode.Uint8 || code == msgpcode.Uint16 ||
		code == msgpcode.Uint32 || code == msgpcode.Uint64:
		v, err := dec.DecodeInt64()
		if err != nil {
			return dataapi.Absent(), msgpackError(err)
		}
		if code == msgpcode.Int64 || code == msgpcode.Uint64 || v < math.MinInt32 || v > math.MaxInt32 {
			return dataapi.Long(v), nil
		}
		return dataapi.Int(int32(v)), nil
	case msgpcode.IsString(code):
		v, err := dec.DecodeString()
		if err != nil {
			return dataapi.Absent(), msgpackError(err)
		}
		return dataapi.String(v), nil
	case msgpcode.IsFixedArray(code) || code == msgpcode.Array16 || code == msgpcode.Array32:
		n, err := dec.DecodeArrayLen()
		if err != nil {
			return dataapi.Absent(), msgpackError(err)
		}
		items := make([]dataapi.Element, 0, n)
		for i := 0; i < n; i++ {
			el, err := readMsgpack(dec)
			if err != nil {
				return dataapi.Absent(), err
			}
			items = append(items, el)
		}
		return dataapi.Array(items...), nil
	case msgpcode.IsFixedMap(code) || code == msgpcode.Map16 || code == msgpcode.Map32:
		n, err := dec.DecodeMapLen()
		if err != nil {
			return dataapi.Absent(), msgpackError(err)
		}
		obj := dataapi.NewObject()
		for i := 0; i < n; i++ {
			key, err := dec.DecodeString()
			if err != nil {
				return dataapi.Absent(), msgpackError(err)
			}
			val, err := readMsgpack(dec)
			if err != nil {
				return dataapi.Absent(), err
			}
			obj.Set(key, val)
		}
		return dataapi.ObjectOf(obj), nil
	default:
		return dataapi.Absent(), msgpackError(fmt.Errorf("unsupported code 0x%02x", code))
	}
}

func wrapMsgpackErr(err error) error {
	if err == nil {
		return nil
	}
	return msgpackError(err)
}

func msgpackError(err error) error {
	msg := err.Error()
	return dataapi.Errors{dataapi.NewValidationError(func(path string) string {
		return fmt.Sprintf("msgpack: %s at %s", msg, path)
	}, dataapi.Absent())}
}
