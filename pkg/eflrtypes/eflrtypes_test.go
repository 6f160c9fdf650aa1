package eflrtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAxis_EncodesIntoSetBody(t *testing.T) {
	set := NewAxisSet()
	require.NoError(t, AddAxis(set, "AXIS-1", "X", []float64{1, 2, 3}, 0.5))

	body, err := set.EncodeBody()
	require.NoError(t, err)
	assert.NotEmpty(t, body)
	require.Len(t, set.Items(), 1)
	assert.Equal(t, "AXIS-1", set.Items()[0].Name)
}

func TestAddAxis_EmptyCoordinatesIsAbsentOccurrence(t *testing.T) {
	set := NewAxisSet()
	require.NoError(t, AddAxis(set, "AXIS-1", "X", nil, 0.5))
	assert.True(t, set.Items()[0].Attributes[1].Absent())
}

func TestAddEquipment_RejectsDuplicateName(t *testing.T) {
	set := NewEquipmentSet()
	eq := Equipment{Name: "GAMMA-TOOL", TrademarkName: "Acme", Status: true, SerialNumber: "SN1", Location: "SURFACE"}
	require.NoError(t, AddEquipment(set, eq))
	err := AddEquipment(set, eq)
	assert.ErrorContains(t, err, "duplicate item")
}

func TestAddLongName_SchemaOrder(t *testing.T) {
	set := NewLongNameSet()
	require.NoError(t, AddLongName(set, "LN1", "DEPTH", "BOREHOLE", "LOGGING-TOOL"))
	require.Len(t, set.Items()[0].Attributes, 3)
}

func TestAddZone_PermittedDomains(t *testing.T) {
	set := NewZoneSet()
	for _, domain := range ZoneDomains {
		require.NoError(t, AddZone(set, "ZONE-"+domain, "zone desc", domain, 100.0, 200.0))
	}
	assert.Len(t, set.Items(), len(ZoneDomains))
}

func TestAddParameter_MultivaluedValues(t *testing.T) {
	set := NewParameterSet()
	require.NoError(t, AddParameter(set, "PARAM-1", "Mud weight", []float64{1.1, 1.2, 1.3}))
	assert.Len(t, set.Items()[0].Attributes[1].Values, 3)
}

func TestAddCalibrationCoefficient_EncodesAllFields(t *testing.T) {
	set := NewCalibrationCoefficientSet()
	c := CalibrationCoefficient{
		Name:            "CAL-1",
		Label:           "GAIN",
		Coefficients:    []float64{1.0, 2.0},
		References:      []float64{0.0, 0.0},
		PlusTolerances:  []float64{0.1, 0.1},
		MinusTolerances: []float64{0.1, 0.1},
	}
	require.NoError(t, AddCalibrationCoefficient(set, c))

	body, err := set.EncodeBody()
	require.NoError(t, err)
	assert.NotEmpty(t, body)
}
