// Package eflr implements the Explicitly Formatted Logical Record
// object model: Sets (tables), Items (rows), and their encoding to the
// RP66 V1 set-component/template/object/attribute byte layout (spec
// §3 EFLR Set/Item, §4.3 EFLR Set encoding).
package eflr

import (
	"fmt"

	"github.com/dlis-toolkit/dlis-writer/pkg/attribute"
	"github.com/dlis-toolkit/dlis-writer/pkg/dliserr"
	"github.com/dlis-toolkit/dlis-writer/pkg/reprcode"
)

// Item is one row of a Set: a name, its assigned origin reference and
// copy number, and one Occurrence per Attribute in the owning Set's
// template, in schema order.
type Item struct {
	Name            string
	OriginReference uint32
	CopyNumber      uint8
	Attributes      []attribute.Occurrence
}

// Set is an EFLR table: a set_type, optional set_name, a
// logical-record-type code, an ordered Attribute schema (the
// template), and an ordered list of Items.
type Set struct {
	SetType           string
	SetName           string
	LogicalRecordType uint8
	Template          []attribute.Template

	items     []*Item
	itemIndex map[itemKey]bool
}

type itemKey struct {
	originReference uint32
	copyNumber      uint8
	name            string
}

// NewSet constructs an empty Set with the given immutable set_type and
// attribute schema.
func NewSet(setType string, logicalRecordType uint8, template []attribute.Template) *Set {
	return &Set{
		SetType:           setType,
		LogicalRecordType: logicalRecordType,
		Template:          template,
		itemIndex:         make(map[itemKey]bool),
	}
}

// WithSetName sets the optional set_name and returns the Set for chaining.
func (s *Set) WithSetName(name string) *Set {
	s.SetName = name
	return s
}

// AddItem appends an Item to the Set, enforcing the schema and
// uniqueness invariants: the Item's attribute list must
// match the template length, and (origin_reference, copy_number, name)
// must be unique within the Set.
func (s *Set) AddItem(item *Item) error {
	if item.Name == "" {
		return fmt.Errorf("%w: item name must not be empty", dliserr.ErrSchemaViolation)
	}
	if len(item.Attributes) != len(s.Template) {
		return fmt.Errorf("%w: item %q has %d attributes, template declares %d",
			dliserr.ErrSchemaViolation, item.Name, len(item.Attributes), len(s.Template))
	}
	key := itemKey{item.OriginReference, item.CopyNumber, item.Name}
	if s.itemIndex[key] {
		return fmt.Errorf("%w: duplicate item (origin=%d, copy=%d, name=%q) in set %q",
			dliserr.ErrSchemaViolation, item.OriginReference, item.CopyNumber, item.Name, s.SetType)
	}
	s.itemIndex[key] = true
	s.items = append(s.items, item)
	return nil
}

// Items returns the Set's rows in insertion order.
func (s *Set) Items() []*Item {
	return s.items
}

// EncodeBody returns the concatenated body bytes for this Set: the set
// component, the template, and every Item's object component plus
// attribute occurrences, in insertion order (RP66 §3.2.2).
func (s *Set) EncodeBody() ([]byte, error) {
	var out []byte

	setTypeBytes, err := reprcode.EncodeIdent(s.SetType)
	if err != nil {
		return nil, err
	}
	if s.SetName != "" {
		setNameBytes, err := reprcode.EncodeIdent(s.SetName)
		if err != nil {
			return nil, err
		}
		out = append(out, 0xF8)
		out = append(out, setTypeBytes...)
		out = append(out, setNameBytes...)
	} else {
		out = append(out, 0xF0)
		out = append(out, setTypeBytes...)
	}

	for _, tmpl := range s.Template {
		tb, err := tmpl.EncodeBytes()
		if err != nil {
			return nil, err
		}
		out = append(out, tb...)
	}

	for _, item := range s.items {
		obnameBytes, err := reprcode.EncodeObname(item.OriginReference, item.CopyNumber, item.Name)
		if err != nil {
			return nil, err
		}
		out = append(out, 0x70)
		out = append(out, obnameBytes...)

		for i, occ := range item.Attributes {
			ob, err := occ.EncodeBytes(s.Template[i])
			if err != nil {
				return nil, err
			}
			out = append(out, ob...)
		}
	}

	return out, nil
}

// Size returns the byte length of EncodeBody's output.
func (s *Set) Size() (int, error) {
	b, err := s.EncodeBody()
	if err != nil {
		return 0, err
	}
	return len(b), nil
}
