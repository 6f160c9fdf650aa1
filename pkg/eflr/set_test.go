package eflr

import (
	"testing"

	"github.com/dlis-toolkit/dlis-writer/pkg/attribute"
	"github.com/dlis-toolkit/dlis-writer/pkg/consts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func channelTemplate() []attribute.Template {
	return []attribute.Template{
		{Label: "LONG-NAME", RepresentationCode: consts.IDENT},
		{Label: "REPRESENTATION-CODE", RepresentationCode: consts.USHORT},
		{Label: "UNITS", RepresentationCode: consts.UNITS},
		{Label: "DIMENSION", RepresentationCode: consts.UVARI},
	}
}

func TestSet_EncodeBody_SetComponentWithName(t *testing.T) {
	s := NewSet("CHANNEL", consts.LRTypeChannel, channelTemplate()).WithSetName("MAIN")
	body, err := s.EncodeBody()
	require.NoError(t, err)
	assert.Equal(t, byte(0xF8), body[0])
	assert.Equal(t, byte(7), body[1]) // len("CHANNEL")
}

func TestSet_EncodeBody_SetComponentNoName(t *testing.T) {
	s := NewSet("CHANNEL", consts.LRTypeChannel, channelTemplate())
	body, err := s.EncodeBody()
	require.NoError(t, err)
	assert.Equal(t, byte(0xF0), body[0])
}

func TestSet_AddItem_SchemaMismatch(t *testing.T) {
	s := NewSet("CHANNEL", consts.LRTypeChannel, channelTemplate())
	err := s.AddItem(&Item{Name: "DEPTH", Attributes: []attribute.Occurrence{}})
	assert.ErrorContains(t, err, "attributes")
}

func TestSet_AddItem_DuplicateName(t *testing.T) {
	s := NewSet("CHANNEL", consts.LRTypeChannel, channelTemplate())
	item := func() *Item {
		return &Item{
			Name:       "DEPTH",
			Attributes: make([]attribute.Occurrence, len(channelTemplate())),
		}
	}
	require.NoError(t, s.AddItem(item()))
	err := s.AddItem(item())
	assert.ErrorContains(t, err, "duplicate item")
}

func TestSet_EncodeBody_ItemObjectComponent(t *testing.T) {
	s := NewSet("CHANNEL", consts.LRTypeChannel, channelTemplate())
	item := &Item{
		Name:            "DEPTH",
		OriginReference: 1,
		CopyNumber:      0,
		Attributes: []attribute.Occurrence{
			{Values: []attribute.Value{attribute.IdentValue("Depth")}},
			{Values: []attribute.Value{attribute.IntValue(int64(consts.FDOUBL))}},
			{Values: []attribute.Value{attribute.UnitsValue("m")}},
			{}, // absent dimension
		},
	}
	require.NoError(t, s.AddItem(item))

	body, err := s.EncodeBody()
	require.NoError(t, err)

	// Find the 0x70 object component marker after the set+template bytes.
	idx := -1
	for i, b := range body {
		if b == 0x70 {
			idx = i
			break
		}
	}
	require.NotEqual(t, -1, idx)
	assert.Equal(t, byte(0x70), body[idx])
}

func TestSet_Size_MatchesEncodeBodyLength(t *testing.T) {
	s := NewSet("CHANNEL", consts.LRTypeChannel, channelTemplate())
	size, err := s.Size()
	require.NoError(t, err)
	body, err := s.EncodeBody()
	require.NoError(t, err)
	assert.Equal(t, len(body), size)
}
