// Package eflrtypes provides thin typed constructors for the
// broadly-used metadata EFLR Sets beyond Channel/Frame/Origin: Axis,
// Equipment, LongName, Parameter, Zone, and CalibrationCoefficient.
// Each is an ordinary eflr.Set/eflr.Item under the hood; this package
// only fixes the schema and logical_record_type per RP66 Appendix A.
package eflrtypes

import (
	"github.com/dlis-toolkit/dlis-writer/pkg/attribute"
	"github.com/dlis-toolkit/dlis-writer/pkg/consts"
	"github.com/dlis-toolkit/dlis-writer/pkg/eflr"
)

// NewAxisSet builds an empty AXIS Set.
func NewAxisSet() *eflr.Set {
	return eflr.NewSet("AXIS", consts.LRTypeStatic, []attribute.Template{
		{Label: "AXIS-ID", RepresentationCode: consts.IDENT},
		{Label: "COORDINATES", RepresentationCode: consts.FDOUBL},
		{Label: "SPACING", RepresentationCode: consts.FDOUBL},
	})
}

// AddAxis adds one AXIS Item. A zero-length coordinates slice omits
// the attribute's values (absent occurrence).
func AddAxis(set *eflr.Set, name, axisID string, coordinates []float64, spacing float64) error {
	var coordValues []attribute.Value
	for _, c := range coordinates {
		coordValues = append(coordValues, attribute.FloatValue(c))
	}
	return set.AddItem(&eflr.Item{
		Name: name,
		Attributes: []attribute.Occurrence{
			{Values: []attribute.Value{attribute.IdentValue(axisID)}},
			{Values: coordValues},
			{Values: []attribute.Value{attribute.FloatValue(spacing)}},
		},
	})
}

// NewEquipmentSet builds an empty EQUIPMENT Set.
func NewEquipmentSet() *eflr.Set {
	return eflr.NewSet("EQUIPMENT", consts.LRTypeStatic, []attribute.Template{
		{Label: "TRADEMARK-NAME", RepresentationCode: consts.ASCII},
		{Label: "STATUS", RepresentationCode: consts.STATUS},
		{Label: "SERIAL-NUMBER", RepresentationCode: consts.IDENT},
		{Label: "LOCATION", RepresentationCode: consts.IDENT},
	})
}

// Equipment is the field set for one EQUIPMENT Item.
type Equipment struct {
	Name          string
	TrademarkName string
	Status        bool
	SerialNumber  string
	Location      string
}

// AddEquipment adds one EQUIPMENT Item.
func AddEquipment(set *eflr.Set, e Equipment) error {
	return set.AddItem(&eflr.Item{
		Name: e.Name,
		Attributes: []attribute.Occurrence{
			{Values: []attribute.Value{attribute.TextValue(e.TrademarkName)}},
			{Values: []attribute.Value{attribute.BoolValue(e.Status)}},
			{Values: []attribute.Value{attribute.IdentValue(e.SerialNumber)}},
			{Values: []attribute.Value{attribute.IdentValue(e.Location)}},
		},
	})
}

// NewLongNameSet builds an empty LONG-NAME Set.
func NewLongNameSet() *eflr.Set {
	return eflr.NewSet("LONG-NAME", consts.LRTypeLongName, []attribute.Template{
		{Label: "QUANTITY", RepresentationCode: consts.ASCII},
		{Label: "ENTITY", RepresentationCode: consts.ASCII},
		{Label: "GENERIC-SOURCE", RepresentationCode: consts.ASCII},
	})
}

// AddLongName adds one LONG-NAME Item.
func AddLongName(set *eflr.Set, name, quantity, entity, genericSource string) error {
	return set.AddItem(&eflr.Item{
		Name: name,
		Attributes: []attribute.Occurrence{
			{Values: []attribute.Value{attribute.TextValue(quantity)}},
			{Values: []attribute.Value{attribute.TextValue(entity)}},
			{Values: []attribute.Value{attribute.TextValue(genericSource)}},
		},
	})
}

// NewZoneSet builds an empty ZONE Set.
func NewZoneSet() *eflr.Set {
	return eflr.NewSet("ZONE", consts.LRTypeStatic, []attribute.Template{
		{Label: "DESCRIPTION", RepresentationCode: consts.ASCII},
		{Label: "DOMAIN", RepresentationCode: consts.IDENT},
		{Label: "MAXIMUM", RepresentationCode: consts.FDOUBL},
		{Label: "MINIMUM", RepresentationCode: consts.FDOUBL},
	})
}

// ZoneDomains are the three permitted ZONE DOMAIN values: borehole
// depth, time, or vertical depth indexed intervals.
var ZoneDomains = []string{"BOREHOLE-DEPTH", "TIME", "VERTICAL-DEPTH"}

// AddZone adds one ZONE Item.
func AddZone(set *eflr.Set, name, description, domain string, minimum, maximum float64) error {
	return set.AddItem(&eflr.Item{
		Name: name,
		Attributes: []attribute.Occurrence{
			{Values: []attribute.Value{attribute.TextValue(description)}},
			{Values: []attribute.Value{attribute.IdentValue(domain)}},
			{Values: []attribute.Value{attribute.FloatValue(maximum)}},
			{Values: []attribute.Value{attribute.FloatValue(minimum)}},
		},
	})
}

// NewParameterSet builds an empty PARAMETER Set.
func NewParameterSet() *eflr.Set {
	return eflr.NewSet("PARAMETER", consts.LRTypeStatic, []attribute.Template{
		{Label: "LONG-NAME", RepresentationCode: consts.ASCII},
		{Label: "VALUES", RepresentationCode: consts.FDOUBL},
	})
}

// AddParameter adds one PARAMETER Item with numeric values.
func AddParameter(set *eflr.Set, name, longName string, values []float64) error {
	var vv []attribute.Value
	for _, v := range values {
		vv = append(vv, attribute.FloatValue(v))
	}
	return set.AddItem(&eflr.Item{
		Name: name,
		Attributes: []attribute.Occurrence{
			{Values: []attribute.Value{attribute.TextValue(longName)}},
			{Values: vv},
		},
	})
}

// NewCalibrationCoefficientSet builds an empty CALIBRATION-COEFFICIENT Set.
func NewCalibrationCoefficientSet() *eflr.Set {
	return eflr.NewSet("CALIBRATION-COEFFICIENT", consts.LRTypeStatic, []attribute.Template{
		{Label: "LABEL", RepresentationCode: consts.IDENT},
		{Label: "COEFFICIENTS", RepresentationCode: consts.FDOUBL},
		{Label: "REFERENCES", RepresentationCode: consts.FDOUBL},
		{Label: "PLUS-TOLERANCES", RepresentationCode: consts.FDOUBL},
		{Label: "MINUS-TOLERANCES", RepresentationCode: consts.FDOUBL},
	})
}

// CalibrationCoefficient is the field set for one
// CALIBRATION-COEFFICIENT Item.
type CalibrationCoefficient struct {
	Name            string
	Label           string
	Coefficients    []float64
	References      []float64
	PlusTolerances  []float64
	MinusTolerances []float64
}

// AddCalibrationCoefficient adds one CALIBRATION-COEFFICIENT Item.
func AddCalibrationCoefficient(set *eflr.Set, c CalibrationCoefficient) error {
	return set.AddItem(&eflr.Item{
		Name: c.Name,
		Attributes: []attribute.Occurrence{
			{Values: []attribute.Value{attribute.IdentValue(c.Label)}},
			{Values: floatValues(c.Coefficients)},
			{Values: floatValues(c.References)},
			{Values: floatValues(c.PlusTolerances)},
			{Values: floatValues(c.MinusTolerances)},
		},
	})
}

func floatValues(fs []float64) []attribute.Value {
	var out []attribute.Value
	for _, f := range fs {
		out = append(out, attribute.FloatValue(f))
	}
	return out
}
