package attribute

import (
	"testing"

	"github.com/dlis-toolkit/dlis-writer/pkg/consts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplate_EncodeBytes_NoUnits(t *testing.T) {
	tmpl := Template{Label: "LONG-NAME", RepresentationCode: consts.IDENT}
	b, err := tmpl.EncodeBytes()
	require.NoError(t, err)
	assert.Equal(t, byte(0x34), b[0])
	assert.Equal(t, byte(9), b[1]) // IDENT length of "LONG-NAME"
}

func TestTemplate_EncodeBytes_WithUnits(t *testing.T) {
	tmpl := Template{Label: "DEPTH", RepresentationCode: consts.FDOUBL, Units: "m"}
	b, err := tmpl.EncodeBytes()
	require.NoError(t, err)
	// label present, repcode present, units present -> 0x20|0x10|0x04|0x02 = 0x36
	assert.Equal(t, byte(0x36), b[0])
}

func TestTemplate_EncodeBytes_MultivaluedCount(t *testing.T) {
	tmpl := Template{Label: "SAMPLES", Count: 200, RepresentationCode: consts.FSINGL}
	b, err := tmpl.EncodeBytes()
	require.NoError(t, err)
	// label + count + repcode present -> 0x20|0x10|0x08|0x04 = 0x3C
	assert.Equal(t, byte(0x3C), b[0])
}

func TestOccurrence_Absent(t *testing.T) {
	o := Occurrence{}
	assert.True(t, o.Absent())
	b, err := o.EncodeBytes(Template{RepresentationCode: consts.FDOUBL})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, b)
}

func TestOccurrence_SingleValueMatchesTemplate(t *testing.T) {
	tmpl := Template{Label: "DEPTH", RepresentationCode: consts.FDOUBL}
	o := Occurrence{Values: []Value{FloatValue(100.5)}}
	b, err := o.EncodeBytes(tmpl)
	require.NoError(t, err)
	// only value present -> characteristics = 0x20 | 0x01 = 0x21
	assert.Equal(t, byte(0x21), b[0])
	assert.Len(t, b[1:], 8) // FDOUBL is 8 bytes
}

func TestOccurrence_MultivaluedCountPresent(t *testing.T) {
	tmpl := Template{Label: "SAMPLES", RepresentationCode: consts.FSINGL}
	values := make([]Value, 200)
	for i := range values {
		values[i] = FloatValue(float64(i))
	}
	o := Occurrence{Values: values}
	b, err := o.EncodeBytes(tmpl)
	require.NoError(t, err)
	// count + value present -> 0x20 | 0x08 | 0x01 = 0x29
	assert.Equal(t, byte(0x29), b[0])
	// UVARI(200) is 2 bytes (200 >= 128), then 200 FSINGL elements.
	assert.Equal(t, []byte{0x80, 0xC8}, b[1:3])
	assert.Len(t, b[3:], 200*4)
}

func TestOccurrence_UnitsOverride(t *testing.T) {
	tmpl := Template{Label: "DEPTH", RepresentationCode: consts.FDOUBL, Units: "m"}
	ft := "ft"
	o := Occurrence{Units: &ft, Values: []Value{FloatValue(10)}}
	b, err := o.EncodeBytes(tmpl)
	require.NoError(t, err)
	// units + value present -> 0x20 | 0x02 | 0x01 = 0x23
	assert.Equal(t, byte(0x23), b[0])
}

func TestCharByte_PresenceBits(t *testing.T) {
	assert.Equal(t, byte(0x34), charByte(roleAttribute, true, false, true, false, false))
	assert.Equal(t, byte(0x3C), charByte(roleAttribute, true, true, true, false, false))
	assert.Equal(t, byte(0x21), charByte(roleAttribute, false, false, false, false, true))
	assert.Equal(t, byte(0x20), charByte(roleAttribute, false, false, false, false, false))
}

func TestOccurrence_RepcodeOverride(t *testing.T) {
	tmpl := Template{Label: "VAL", RepresentationCode: consts.FDOUBL}
	rc := consts.FSINGL
	o := Occurrence{RepresentationCode: &rc, Values: []Value{FloatValue(1.5)}}
	b, err := o.EncodeBytes(tmpl)
	require.NoError(t, err)
	// repcode + value present -> 0x20 | 0x04 | 0x01 = 0x25
	assert.Equal(t, byte(0x25), b[0])
	assert.Equal(t, byte(consts.FSINGL), b[1])
	assert.Len(t, b[2:], 4) // value encoded as FSINGL, not the template's FDOUBL
}
