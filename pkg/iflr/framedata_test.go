package iflr

import (
	"testing"

	"github.com/dlis-toolkit/dlis-writer/pkg/attribute"
	"github.com/dlis-toolkit/dlis-writer/pkg/consts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelSpec_ElementCount(t *testing.T) {
	assert.Equal(t, 1, ChannelSpec{}.ElementCount())
	assert.Equal(t, 3, ChannelSpec{Dimension: []int{3}}.ElementCount())
	assert.Equal(t, 6, ChannelSpec{Dimension: []int{2, 3}}.ElementCount())
}

func TestFrameData_EncodeBody_SingleScalarChannel(t *testing.T) {
	fd := FrameData{
		FrameOriginReference: 1,
		FrameName:            "FRAME1",
		FrameNumber:          1,
		Channels: []ChannelSpec{
			{RepresentationCode: consts.FDOUBL},
		},
		Values: [][]attribute.Value{
			{attribute.FloatValue(42.5)},
		},
	}
	body, err := fd.EncodeBody()
	require.NoError(t, err)
	// OBNAME(1 byte origin + 1 byte copy + 1 len + 6 "FRAME1") + UVARI(1)=1 + FDOUBL=8
	assert.Equal(t, 1+1+1+6+1+8, len(body))
}

func TestFrameData_EncodeBody_MultipleChannels(t *testing.T) {
	fd := FrameData{
		FrameOriginReference: 1,
		FrameName:            "F",
		FrameNumber:          7,
		Channels: []ChannelSpec{
			{RepresentationCode: consts.FDOUBL},
			{RepresentationCode: consts.FSINGL, Dimension: []int{2}},
		},
		Values: [][]attribute.Value{
			{attribute.FloatValue(1)},
			{attribute.FloatValue(2), attribute.FloatValue(3)},
		},
	}
	body, err := fd.EncodeBody()
	require.NoError(t, err)
	assert.Greater(t, len(body), 0)
}

func TestFrameData_EncodeBody_ShapeMismatch(t *testing.T) {
	fd := FrameData{
		FrameName:   "F",
		FrameNumber: 1,
		Channels: []ChannelSpec{
			{RepresentationCode: consts.FDOUBL, Dimension: []int{3}},
		},
		Values: [][]attribute.Value{
			{attribute.FloatValue(1)}, // only 1 value, expected 3
		},
	}
	_, err := fd.EncodeBody()
	assert.Error(t, err)
}

func TestFrameData_EncodeBody_MonotonicFrameNumbers(t *testing.T) {
	var prev []byte
	for n := uint32(1); n <= 5; n++ {
		fd := FrameData{
			FrameName:   "F",
			FrameNumber: n,
			Channels:    []ChannelSpec{{RepresentationCode: consts.FSINGL}},
			Values:      [][]attribute.Value{{attribute.FloatValue(float64(n))}},
		}
		body, err := fd.EncodeBody()
		require.NoError(t, err)
		assert.NotEqual(t, prev, body)
		prev = body
	}
}
