// Package iflr implements the Implicitly Formatted Logical Record: a
// single FrameData row of sample values belonging to a Frame
// (RP66 §5.7.1).
package iflr

import (
	"fmt"

	"github.com/dlis-toolkit/dlis-writer/pkg/attribute"
	"github.com/dlis-toolkit/dlis-writer/pkg/consts"
	"github.com/dlis-toolkit/dlis-writer/pkg/dliserr"
	"github.com/dlis-toolkit/dlis-writer/pkg/reprcode"
)

// ChannelSpec describes how one channel's values are laid out within a
// FrameData row: its wire representation code and its declared
// dimension (row-major element shape; an empty dimension means a
// single scalar element).
type ChannelSpec struct {
	RepresentationCode consts.RepresentationCode
	Dimension          []int
}

// ElementCount returns the total number of scalar elements this
// channel contributes to a row (the product of Dimension, or 1 for a
// scalar channel).
func (c ChannelSpec) ElementCount() int {
	if len(c.Dimension) == 0 {
		return 1
	}
	n := 1
	for _, d := range c.Dimension {
		n *= d
	}
	return n
}

// FrameData is one IFLR row: a reference to the owning Frame, a
// 1-based monotonically increasing frame number, and one value slice
// per channel in the Frame's schema.
type FrameData struct {
	FrameOriginReference uint32
	FrameCopyNumber      uint8
	FrameName            string
	FrameNumber          uint32
	Channels             []ChannelSpec
	Values               [][]attribute.Value // one slice per channel, row-major within
}

// EncodeBody returns OBNAME(frame) + UVARI(frame_number) + the
// concatenated, row-major channel values (RP66 §5.7.1).
func (f FrameData) EncodeBody() ([]byte, error) {
	if len(f.Values) != len(f.Channels) {
		return nil, fmt.Errorf("%w: frame %q row has %d channel value slices, frame declares %d channels",
			dliserr.ErrFrameShape, f.FrameName, len(f.Values), len(f.Channels))
	}

	buf := getRowBuffer()
	defer putRowBuffer(buf)

	obnameBytes, err := reprcode.EncodeObname(f.FrameOriginReference, f.FrameCopyNumber, f.FrameName)
	if err != nil {
		return nil, err
	}
	buf.B = append(buf.B, obnameBytes...)

	frameNumBytes, err := reprcode.EncodeUvari(f.FrameNumber)
	if err != nil {
		return nil, err
	}
	buf.B = append(buf.B, frameNumBytes...)

	for i, ch := range f.Channels {
		values := f.Values[i]
		if len(values) != ch.ElementCount() {
			return nil, fmt.Errorf("%w: channel %d expects %d elements, row supplies %d",
				dliserr.ErrFrameShape, i, ch.ElementCount(), len(values))
		}
		for _, v := range values {
			vb, err := attribute.EncodeScalar(ch.RepresentationCode, v)
			if err != nil {
				return nil, err
			}
			buf.B = append(buf.B, vb...)
		}
	}

	out := make([]byte, len(buf.B))
	copy(out, buf.B)
	return out, nil
}

// Size returns the byte length of EncodeBody's output.
func (f FrameData) Size() (int, error) {
	b, err := f.EncodeBody()
	if err != nil {
		return 0, err
	}
	return len(b), nil
}
