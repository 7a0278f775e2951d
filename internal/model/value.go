package model

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/bytedance/sonic"
)

// ValueType identifies which variant a Value holds.
type ValueType uint8

const (
	TypeNumber ValueType = iota + 1
	TypeString
	TypeBool
	TypeColor
	TypePoint
	TypeChoice
)

var valueTypeNames = [...]string{
	TypeNumber: "number",
	TypeString: "string",
	TypeBool:   "boolean",
	TypeColor:  "color",
	TypePoint:  "point",
	TypeChoice: "choice",
}

// String returns the wire name of the type, e.g. "number".
func (t ValueType) String() string {
	if int(t) < 1 || int(t) >= len(valueTypeNames) {
		return "invalid"
	}
	return valueTypeNames[t]
}

// ParseValueType resolves a wire name back to its ValueType.
func ParseValueType(s string) (ValueType, error) {
	for t := TypeNumber; int(t) < len(valueTypeNames); t++ {
		if valueTypeNames[t] == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown value type %q", s)
}

// Point is a 2D coordinate in composition space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Value is a tagged parameter value. The zero Value is invalid; construct
// values with NumberVal, StringVal, BoolVal, ColorVal, PointVal or
// ChoiceVal. Values are immutable and comparable with ==.
type Value struct {
	typ ValueType
	num float64
	str string
	b   bool
	col Color
	pt  Point
}

// NumberVal returns a number value.
func NumberVal(f float64) Value { return Value{typ: TypeNumber, num: f} }

// StringVal returns a free-form string value.
func StringVal(s string) Value { return Value{typ: TypeString, str: s} }

// BoolVal returns a boolean value.
func BoolVal(b bool) Value { return Value{typ: TypeBool, b: b} }

// ColorVal returns a color value.
func ColorVal(c Color) Value { return Value{typ: TypeColor, col: c} }

// PointVal returns a 2D point value.
func PointVal(x, y float64) Value { return Value{typ: TypePoint, pt: Point{X: x, Y: y}} }

// ChoiceVal returns an enumerated choice value. Membership in the declared
// choice set is checked where the value meets its parameter declaration.
func ChoiceVal(s string) Value { return Value{typ: TypeChoice, str: s} }

// Type returns the variant tag. The zero Value reports an invalid type.
func (v Value) Type() ValueType { return v.typ }

// Valid reports whether the value holds one of the known variants.
func (v Value) Valid() bool { return v.typ >= TypeNumber && v.typ <= TypeChoice }

// Number returns the numeric payload, or 0 for other variants.
func (v Value) Number() float64 { return v.num }

// Text returns the payload of string and choice values, or "" otherwise.
func (v Value) Text() string { return v.str }

// Bool returns the boolean payload, or false for other variants.
func (v Value) Bool() bool { return v.b }

// Color returns the color payload, or the zero Color for other variants.
func (v Value) Color() Color { return v.col }

// Point returns the point payload, or the origin for other variants.
func (v Value) Point() Point { return v.pt }

// String renders the payload for logs and error messages.
func (v Value) String() string {
	switch v.typ {
	case TypeNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case TypeString, TypeChoice:
		return v.str
	case TypeBool:
		return strconv.FormatBool(v.b)
	case TypeColor:
		return v.col.Hex()
	case TypePoint:
		return fmt.Sprintf("(%v, %v)", v.pt.X, v.pt.Y)
	default:
		return "invalid"
	}
}

// MarshalJSON encodes the value as a {"type": ..., "value": ...} envelope so
// the variant survives a round trip through the exchange format.
func (v Value) MarshalJSON() ([]byte, error) {
	var payload any
	switch v.typ {
	case TypeNumber:
		payload = v.num
	case TypeString, TypeChoice:
		payload = v.str
	case TypeBool:
		payload = v.b
	case TypeColor:
		payload = v.col.Hex()
	case TypePoint:
		payload = v.pt
	default:
		return nil, fmt.Errorf("marshal param value: invalid type %d", v.typ)
	}
	return sonic.Marshal(struct {
		Type  string `json:"type"`
		Value any    `json:"value"`
	}{v.typ.String(), payload})
}

// UnmarshalJSON decodes the tagged envelope, rejecting unknown type tags and
// payloads that do not match the tag.
func (v *Value) UnmarshalJSON(data []byte) error {
	var env struct {
		Type  string          `json:"type"`
		Value json.RawMessage `json:"value"`
	}
	if err := sonic.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("unmarshal param value: %w", err)
	}
	t, err := ParseValueType(env.Type)
	if err != nil {
		return fmt.Errorf("unmarshal param value: %w", err)
	}
	switch t {
	case TypeNumber:
		var f float64
		if err := sonic.Unmarshal(env.Value, &f); err != nil {
			return fmt.Errorf("number payload: %w", err)
		}
		*v = NumberVal(f)
	case TypeString, TypeChoice:
		var s string
		if err := sonic.Unmarshal(env.Value, &s); err != nil {
			return fmt.Errorf("%s payload: %w", t, err)
		}
		if t == TypeChoice {
			*v = ChoiceVal(s)
		} else {
			*v = StringVal(s)
		}
	case TypeBool:
		var b bool
		if err := sonic.Unmarshal(env.Value, &b); err != nil {
			return fmt.Errorf("boolean payload: %w", err)
		}
		*v = BoolVal(b)
	case TypeColor:
		var s string
		if err := sonic.Unmarshal(env.Value, &s); err != nil {
			return fmt.Errorf("color payload: %w", err)
		}
		c, err := ParseColor(s)
		if err != nil {
			return fmt.Errorf("color payload: %w", err)
		}
		*v = ColorVal(c)
	case TypePoint:
		var p Point
		if err := sonic.Unmarshal(env.Value, &p); err != nil {
			return fmt.Errorf("point payload: %w", err)
		}
		*v = PointVal(p.X, p.Y)
	}
	return nil
}
