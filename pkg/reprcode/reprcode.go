// Package reprcode implements the RP66 V1 Appendix B representation
// codes: encoding of primitive values to their big-endian wire form.
// This layer is pure: no state, no I/O.
package reprcode

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dlis-toolkit/dlis-writer/pkg/consts"
	"github.com/dlis-toolkit/dlis-writer/pkg/dliserr"
)

// EncodeUshort writes an unsigned 8-bit integer.
func EncodeUshort(v uint8) []byte {
	return []byte{v}
}

// EncodeSshort writes a signed 8-bit integer.
func EncodeSshort(v int8) []byte {
	return []byte{byte(v)}
}

// EncodeUnorm writes a big-endian unsigned 16-bit integer.
func EncodeUnorm(v uint16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, v)
	return b
}

// EncodeSnorm writes a big-endian signed 16-bit integer.
func EncodeSnorm(v int16) []byte {
	return EncodeUnorm(uint16(v))
}

// EncodeUlong writes a big-endian unsigned 32-bit integer.
func EncodeUlong(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

// EncodeSlong writes a big-endian signed 32-bit integer.
func EncodeSlong(v int32) []byte {
	return EncodeUlong(uint32(v))
}

// EncodeFshort writes a big-endian IEEE-754 16-bit float. The mantissa
// is truncated; out-of-range magnitudes saturate to infinity and
// subnormal results collapse to signed zero.
func EncodeFshort(v float64) []byte {
	bits := math.Float32bits(float32(v))
	sign := uint16((bits >> 16) & 0x8000)
	exp := int32((bits>>23)&0xFF) - 127 + 15
	mant := bits & 0x7FFFFF
	var half uint16
	switch {
	case exp <= 0:
		half = sign
	case exp >= 0x1F:
		half = sign | 0x7C00
	default:
		half = sign | uint16(exp)<<10 | uint16(mant>>13)
	}
	return EncodeUnorm(half)
}

// EncodeFsingl writes a big-endian IEEE-754 32-bit float.
func EncodeFsingl(v float32) []byte {
	return EncodeUlong(math.Float32bits(v))
}

// EncodeFdoubl writes a big-endian IEEE-754 64-bit float.
func EncodeFdoubl(v float64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, math.Float64bits(v))
	return b
}

// EncodeStatus writes a STATUS boolean as a single USHORT byte, 0 or 1.
func EncodeStatus(v bool) []byte {
	if v {
		return []byte{1}
	}
	return []byte{0}
}

// EncodeUvari encodes an unsigned integer as 1, 2, or 4 bytes depending
// on magnitude (RP66 Appendix B, code 18).
func EncodeUvari(v uint32) ([]byte, error) {
	switch {
	case v < consts.MaxUVARI1:
		return []byte{byte(v)}, nil
	case v < consts.MaxUVARI2:
		return EncodeUnorm(uint16(v) | 0x8000), nil
	case v < consts.MaxUVARI4:
		return EncodeUlong(v | 0xC0000000), nil
	default:
		return nil, fmt.Errorf("%w: UVARI value %d exceeds 2^30-1", dliserr.ErrValueOutOfRange, v)
	}
}

// UvariSize returns the number of bytes EncodeUvari would emit for v,
// without allocating.
func UvariSize(v uint32) int {
	switch {
	case v < consts.MaxUVARI1:
		return 1
	case v < consts.MaxUVARI2:
		return 2
	default:
		return 4
	}
}

// EncodeIdent encodes a length-prefixed ASCII identifier: a USHORT
// length followed by the raw bytes. Values over 255 bytes or containing
// non-ASCII bytes are rejected.
func EncodeIdent(v string) ([]byte, error) {
	if err := requireASCII(v); err != nil {
		return nil, err
	}
	if len(v) > consts.MaxIdentLength {
		return nil, fmt.Errorf("%w: IDENT %q exceeds %d bytes", dliserr.ErrValueOutOfRange, v, consts.MaxIdentLength)
	}
	out := make([]byte, 0, 1+len(v))
	out = append(out, byte(len(v)))
	out = append(out, v...)
	return out, nil
}

// EncodeAscii encodes an arbitrary-length ASCII string as a UVARI
// length followed by the raw bytes.
func EncodeAscii(v string) ([]byte, error) {
	lenBytes, err := EncodeUvari(uint32(len(v)))
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(lenBytes)+len(v))
	out = append(out, lenBytes...)
	out = append(out, v...)
	return out, nil
}

// EncodeUnits encodes a measurement unit string like IDENT, but the
// characters must come from the restricted, case-sensitive UNITS set.
func EncodeUnits(v string) ([]byte, error) {
	for i, r := range v {
		if r > 127 || !strings.ContainsRune(consts.UnitsCharacters, r) {
			return nil, fmt.Errorf("%w: UNITS %q has disallowed character %q at index %d", dliserr.ErrCharsetViolation, v, r, i)
		}
	}
	if len(v) > 255 {
		return nil, fmt.Errorf("%w: UNITS %q exceeds 255 bytes", dliserr.ErrValueOutOfRange, v)
	}
	out := make([]byte, 0, 1+len(v))
	out = append(out, byte(len(v)))
	out = append(out, v...)
	return out, nil
}

// EncodeDtime encodes a calendar date/time with millisecond resolution
// into the fixed 8-byte DTIME layout (RP66 Appendix B, code 21).
func EncodeDtime(t time.Time) ([]byte, error) {
	year := t.Year()
	if year < consts.MinDtimeYear || year >= consts.MaxDtimeYear {
		return nil, fmt.Errorf("%w: DTIME year %d outside [%d,%d)", dliserr.ErrValueOutOfRange, year, consts.MinDtimeYear, consts.MaxDtimeYear)
	}
	const tzLST = 0
	out := make([]byte, 0, 8)
	out = append(out, EncodeUshort(uint8(year-1900))...)
	out = append(out, EncodeUshort(uint8(tzLST<<4|int(t.Month())))...)
	out = append(out, EncodeUshort(uint8(t.Day()))...)
	out = append(out, EncodeUshort(uint8(t.Hour()))...)
	out = append(out, EncodeUshort(uint8(t.Minute()))...)
	out = append(out, EncodeUshort(uint8(t.Second()))...)
	out = append(out, EncodeUnorm(uint16(t.Nanosecond()/1_000_000))...)
	return out, nil
}

// EncodeObname encodes an object reference: origin_reference (UVARI),
// copy_number (USHORT), and name (IDENT).
func EncodeObname(originReference uint32, copyNumber uint8, name string) ([]byte, error) {
	originBytes, err := EncodeUvari(originReference)
	if err != nil {
		return nil, err
	}
	nameBytes, err := EncodeIdent(name)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(originBytes)+1+len(nameBytes))
	out = append(out, originBytes...)
	out = append(out, EncodeUshort(copyNumber)...)
	out = append(out, nameBytes...)
	return out, nil
}

// EncodeObjref encodes a typed object reference: set_type (IDENT)
// followed by an OBNAME.
func EncodeObjref(setType string, originReference uint32, copyNumber uint8, name string) ([]byte, error) {
	setTypeBytes, err := EncodeIdent(setType)
	if err != nil {
		return nil, err
	}
	obnameBytes, err := EncodeObname(originReference, copyNumber, name)
	if err != nil {
		return nil, err
	}
	return append(setTypeBytes, obnameBytes...), nil
}

func requireASCII(v string) error {
	for i := 0; i < len(v); i++ {
		if v[i] > 127 {
			return fmt.Errorf("%w: %q contains non-ASCII byte at index %d", dliserr.ErrCharsetViolation, v, i)
		}
	}
	return nil
}
