// Package attribute implements the RP66 V1 Attribute: the
// value-carrying element of an EFLR template. It serializes both the
// template form (emitted once per Set) and the occurrence form
// (emitted once per Item), including the characteristics byte that
// records which fields are present for a given occurrence
// (RP66 §3.2.2.1).
package attribute

import (
	"fmt"
	"time"

	"github.com/dlis-toolkit/dlis-writer/pkg/consts"
	"github.com/dlis-toolkit/dlis-writer/pkg/dliserr"
	"github.com/dlis-toolkit/dlis-writer/pkg/reprcode"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	KindInt Kind = iota
	KindFloat
	KindText
	KindIdent
	KindUnits
	KindDateTime
	KindObjectRef
	KindBool
)

// ObjectRef is the payload of an OBNAME- or OBJREF-typed Value.
type ObjectRef struct {
	// SetType is only meaningful when the owning Attribute's
	// representation code is OBJREF; OBNAME values ignore it.
	SetType         string
	OriginReference uint32
	CopyNumber      uint8
	Name            string
}

// Value is a small tagged variant covering every primitive an
// Attribute can carry.
type Value struct {
	Kind  Kind
	Int   int64
	Float float64
	Text  string
	Time  time.Time
	Ref   ObjectRef
	Bool  bool
}

func IntValue(v int64) Value           { return Value{Kind: KindInt, Int: v} }
func FloatValue(v float64) Value       { return Value{Kind: KindFloat, Float: v} }
func TextValue(v string) Value         { return Value{Kind: KindText, Text: v} }
func IdentValue(v string) Value        { return Value{Kind: KindIdent, Text: v} }
func UnitsValue(v string) Value        { return Value{Kind: KindUnits, Text: v} }
func DateTimeValue(v time.Time) Value  { return Value{Kind: KindDateTime, Time: v} }
func ObjectRefValue(v ObjectRef) Value { return Value{Kind: KindObjectRef, Ref: v} }
func BoolValue(v bool) Value           { return Value{Kind: KindBool, Bool: v} }

// Template declares one column of a Set's schema: the attribute's
// label, default element count, representation code, and optional
// units. Templates are emitted once per Set, in schema order, before
// any Item (RP66 §3.2.2).
type Template struct {
	Label              string
	Count              int // 0 and 1 are both treated as "single-valued"
	RepresentationCode consts.RepresentationCode
	Units              string
}

func (t Template) effectiveCount() int {
	if t.Count == 0 {
		return 1
	}
	return t.Count
}

// EncodeBytes returns the template-form bytes for this attribute:
// characteristics byte, IDENT(label), optional UVARI(count), USHORT
// (representation code), optional UNITS(units).
func (t Template) EncodeBytes() ([]byte, error) {
	labelBytes, err := reprcode.EncodeIdent(t.Label)
	if err != nil {
		return nil, err
	}
	if t.Label == "" {
		return nil, fmt.Errorf("%w: template attribute requires a non-empty label", dliserr.ErrSchemaViolation)
	}

	var body []byte
	countPresent := t.effectiveCount() != 1
	if countPresent {
		countBytes, err := reprcode.EncodeUvari(uint32(t.effectiveCount()))
		if err != nil {
			return nil, err
		}
		body = append(body, countBytes...)
	}
	body = append(body, reprcode.EncodeUshort(uint8(t.RepresentationCode))...)

	unitsPresent := t.Units != ""
	if unitsPresent {
		unitsBytes, err := reprcode.EncodeUnits(t.Units)
		if err != nil {
			return nil, err
		}
		body = append(body, unitsBytes...)
	}

	characteristics := charByte(roleAttribute, true, countPresent, true, unitsPresent, false)
	out := make([]byte, 0, 1+len(labelBytes)+len(body))
	out = append(out, characteristics)
	out = append(out, labelBytes...)
	out = append(out, body...)
	return out, nil
}

// Occurrence is one Item's value(s) for a single Attribute in its
// Set's schema. A nil or empty Values means the attribute is absent
// for this Item; Items may omit values the template declares.
type Occurrence struct {
	// Count, when non-nil, overrides the implicit element count;
	// otherwise the count is derived from len(Values).
	Count *int
	// RepresentationCode, when non-nil, overrides the template's code
	// for this occurrence only.
	RepresentationCode *consts.RepresentationCode
	// Units, when non-nil, overrides the template's units.
	Units  *string
	Values []Value
}

// Absent reports whether this occurrence carries no override and no
// values, meaning it encodes as the single 0x00 absent-attribute byte.
func (o Occurrence) Absent() bool {
	return o.Count == nil && o.RepresentationCode == nil && o.Units == nil && len(o.Values) == 0
}

// EncodeBytes returns the occurrence-form bytes for this Attribute
// value against the given template (RP66 §3.2.2.1).
func (o Occurrence) EncodeBytes(tmpl Template) ([]byte, error) {
	if o.Absent() {
		return []byte{0x00}, nil
	}

	rc := tmpl.RepresentationCode
	rcPresent := false
	if o.RepresentationCode != nil && *o.RepresentationCode != tmpl.RepresentationCode {
		rc = *o.RepresentationCode
		rcPresent = true
	}

	units := tmpl.Units
	unitsPresent := false
	if o.Units != nil && *o.Units != tmpl.Units {
		units = *o.Units
		unitsPresent = true
	}

	count := len(o.Values)
	countPresent := o.Count != nil || count != 1
	if o.Count != nil {
		count = *o.Count
	}

	var body []byte
	if countPresent {
		countBytes, err := reprcode.EncodeUvari(uint32(count))
		if err != nil {
			return nil, err
		}
		body = append(body, countBytes...)
	}
	if rcPresent {
		body = append(body, reprcode.EncodeUshort(uint8(rc))...)
	}
	if unitsPresent {
		unitsBytes, err := reprcode.EncodeUnits(units)
		if err != nil {
			return nil, err
		}
		body = append(body, unitsBytes...)
	}

	valuePresent := len(o.Values) > 0
	if valuePresent {
		for _, v := range o.Values {
			vb, err := encodeValue(rc, v)
			if err != nil {
				return nil, err
			}
			body = append(body, vb...)
		}
	}

	characteristics := charByte(roleAttribute, false, countPresent, rcPresent, unitsPresent, valuePresent)
	out := make([]byte, 0, 1+len(body))
	out = append(out, characteristics)
	out = append(out, body...)
	return out, nil
}

// role bits for the characteristics byte (RP66 Figure 3-2).
const roleAttribute = 0b001

func charByte(role uint8, label, count, repcode, units, value bool) byte {
	b := role << 5
	if label {
		b |= 0x10
	}
	if count {
		b |= 0x08
	}
	if repcode {
		b |= 0x04
	}
	if units {
		b |= 0x02
	}
	if value {
		b |= 0x01
	}
	return b
}

// EncodeScalar encodes a single Value using the wire encoder for rc. It
// is exported for callers outside this package that need to encode one
// element at a time against a known representation code, such as the
// IFLR FrameData row encoder.
func EncodeScalar(rc consts.RepresentationCode, v Value) ([]byte, error) {
	return encodeValue(rc, v)
}

// encodeValue dispatches to the reprcode encoder matching rc. Codes
// outside the core numeric/text/time/reference family (complex
// numbers, IBM/VAX legacy floats) are not part of this writer's
// supported surface and are a programmer bug check: they panic rather
// than return an error.
func encodeValue(rc consts.RepresentationCode, v Value) ([]byte, error) {
	switch rc {
	case consts.FSHORT:
		return reprcode.EncodeFshort(mustFloat(v)), nil
	case consts.FSINGL:
		return reprcode.EncodeFsingl(float32(mustFloat(v))), nil
	case consts.FDOUBL:
		return reprcode.EncodeFdoubl(mustFloat(v)), nil
	case consts.SSHORT:
		return reprcode.EncodeSshort(int8(mustInt(v))), nil
	case consts.SNORM:
		return reprcode.EncodeSnorm(int16(mustInt(v))), nil
	case consts.SLONG:
		return reprcode.EncodeSlong(int32(mustInt(v))), nil
	case consts.USHORT:
		return reprcode.EncodeUshort(uint8(mustInt(v))), nil
	case consts.UNORM:
		return reprcode.EncodeUnorm(uint16(mustInt(v))), nil
	case consts.ULONG:
		return reprcode.EncodeUlong(uint32(mustInt(v))), nil
	case consts.UVARI:
		return reprcode.EncodeUvari(uint32(mustInt(v)))
	case consts.IDENT:
		return reprcode.EncodeIdent(mustText(v))
	case consts.ASCII:
		return reprcode.EncodeAscii(mustText(v))
	case consts.UNITS:
		return reprcode.EncodeUnits(mustText(v))
	case consts.DTIME:
		return reprcode.EncodeDtime(mustTime(v))
	case consts.STATUS:
		return reprcode.EncodeStatus(mustBool(v)), nil
	case consts.OBNAME:
		ref := mustRef(v)
		return reprcode.EncodeObname(ref.OriginReference, ref.CopyNumber, ref.Name)
	case consts.OBJREF:
		ref := mustRef(v)
		return reprcode.EncodeObjref(ref.SetType, ref.OriginReference, ref.CopyNumber, ref.Name)
	default:
		panic(fmt.Sprintf("attribute: unsupported representation code %s", rc))
	}
}

func mustFloat(v Value) float64 {
	switch v.Kind {
	case KindFloat:
		return v.Float
	case KindInt:
		return float64(v.Int)
	default:
		panic(fmt.Sprintf("attribute: value kind %d is not numeric", v.Kind))
	}
}

func mustInt(v Value) int64 {
	switch v.Kind {
	case KindInt:
		return v.Int
	case KindFloat:
		return int64(v.Float)
	default:
		panic(fmt.Sprintf("attribute: value kind %d is not an integer", v.Kind))
	}
}

func mustText(v Value) string {
	if v.Kind != KindText && v.Kind != KindIdent && v.Kind != KindUnits {
		panic(fmt.Sprintf("attribute: value kind %d is not textual", v.Kind))
	}
	return v.Text
}

func mustTime(v Value) time.Time {
	if v.Kind != KindDateTime {
		panic(fmt.Sprintf("attribute: value kind %d is not a datetime", v.Kind))
	}
	return v.Time
}

func mustBool(v Value) bool {
	if v.Kind != KindBool {
		panic(fmt.Sprintf("attribute: value kind %d is not a bool", v.Kind))
	}
	return v.Bool
}

func mustRef(v Value) ObjectRef {
	if v.Kind != KindObjectRef {
		panic(fmt.Sprintf("attribute: value kind %d is not an object reference", v.Kind))
	}
	return v.Ref
}
