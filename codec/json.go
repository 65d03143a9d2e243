package codec

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	dataapi "github.com/mschae23/data-api"
)

// FromJSON parses one JSON document into an Element. Integer literals become
// Int when they fit 32 bits and Long otherwise; fractional or exponent
// literals become Double. Object key order is preserved. Syntax errors are
// reported as dataapi.Errors carrying the generic validation kind.
func FromJSON(data []byte) (dataapi.Element, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	el, err := readJSONValue(dec)
	if err != nil {
		return dataapi.Absent(), syntaxError(err)
	}
	if dec.More() {
		return dataapi.Absent(), syntaxError(fmt.Errorf("trailing data after top-level value"))
	}
	return el, nil
}

func readJSONValue(dec *json.Decoder) (dataapi.Element, error) {
	tok, err := dec.Token()
	if err != nil {
		return dataapi.Absent(), err
	}
	return elementFromToken(dec, tok)
}

func elementFromToken(dec *json.Decoder, tok json.Token) (dataapi.Element, error) {
	switch t := tok.(type) {
	case nil:
		return dataapi.Null(), nil
	case bool:
		return dataapi.Boolean(t), nil
	case string:
		return dataapi.String(t), nil
	case json.Number:
		return elementFromNumber(t)
	case json.Delim:
		switch t {
		case '[':
			return readJSONArray(dec)
		case '{':
			return readJSONObject(dec)
		}
	}
	return dataapi.Absent(), fmt.Errorf("unexpected token %v", tok)
}

func readJSONArray(dec *json.Decoder) (dataapi.Element, error) {
	items := []dataapi.Element{}
	for dec.More() {
		el, err := readJSONValue(dec)
		if err != nil {
			return dataapi.Absent(), err
		}
		items = append(items, el)
	}
	if _, err := dec.Token(); err != nil { // consume ']'
		return dataapi.Absent(), err
	}
	return dataapi.Array(items...), nil
}

func readJSONObject(dec *json.Decoder) (dataapi.Element, error) {
	obj := dataapi.NewObject()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return dataapi.Absent(), err
		}
		key, ok := keyTok.(string)
		if !ok {
			return dataapi.Absent(), fmt.Errorf("object key is not a string: %v", keyTok)
		}
		val, err := readJSONValue(dec)
		if err != nil {
			return dataapi.Absent(), err
		}
		obj.Set(key, val)
	}
	if _, err := dec.Token(); err != nil { // consume '}'
		return dataapi.Absent(), err
	}
	return dataapi.ObjectOf(obj), nil
}

func elementFromNumber(n json.Number) (dataapi.Element, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		i, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			if i >= math.MinInt32 && i <= math.MaxInt32 {
				return dataapi.Int(int32(i)), nil
			}
			return dataapi.Long(i), nil
		}
	}
	f, err := n.Float64()
	if err != nil {
		return dataapi.Absent(), err
	}
	return dataapi.Double(f), nil
}

// ToJSON serializes an Element, keeping object insertion order. Absent
// anywhere in the tree is a caller error reported through the core taxonomy.
func ToJSON(el dataapi.Element) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, el); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, el dataapi.Element) error {
	switch el.Kind() {
	case dataapi.KindNull:
		buf.WriteString("null")
	case dataapi.KindBoolean:
		v, _ := el.BoolValue()
		buf.WriteString(strconv.FormatBool(v))
	case dataapi.KindInt:
		v, _ := el.IntValue()
		buf.WriteString(strconv.FormatInt(int64(v), 10))
	case dataapi.KindLong:
		v, _ := el.LongValue()
		buf.WriteString(strconv.FormatInt(v, 10))
	case dataapi.KindFloat:
		v, _ := el.FloatValue()
		buf.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32))
	case dataapi.KindDouble:
		v, _ := el.DoubleValue()
		buf.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	case dataapi.KindString:
		v, _ := el.StringValue()
		quoted, err := json.Marshal(v)
		if err != nil {
			return syntaxError(err)
		}
		buf.Write(quoted)
	case dataapi.KindArray:
		items, _ := el.Items()
		buf.WriteByte('[')
		for i, it := range items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, it); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case dataapi.KindObject:
		obj, _ := el.Object()
		buf.WriteByte('{')
		first := true
		var rangeErr error
		obj.Range(func(k string, v dataapi.Element) bool {
			if !first {
				buf.WriteByte(',')
			}
			first = false
			quoted, err := json.Marshal(k)
			if err != nil {
				rangeErr = syntaxError(err)
				return false
			}
			buf.Write(quoted)
			buf.WriteByte(':')
			if err := writeJSON(buf, v); err != nil {
				rangeErr = err
				return false
			}
			return true
		})
		if rangeErr != nil {
			return rangeErr
		}
		buf.WriteByte('}')
	default:
		return syntaxError(fmt.Errorf("cannot serialize %s element", el.Kind()))
	}
	return nil
}

func syntaxError(err error) error {
	msg := err.Error()
	return dataapi.Errors{dataapi.NewValidationError(func(path string) string {
		return fmt.Sprintf("json: %s at %s", msg, path)
	}, dataapi.Absent())}
}
