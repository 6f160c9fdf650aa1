// Package dlis is the top-level entry point for the DLIS writer: the
// typed object graph (Origin, Channel, Frame) plus the three producer
// operations that turn a graph into a byte-exact RP66 V1 file:
// AttachOriginReference, LogicalRecordIter, and WriteDlis.
package dlis

import (
	"fmt"
	"os"
	"time"

	"github.com/dlis-toolkit/dlis-writer/pkg/attribute"
	"github.com/dlis-toolkit/dlis-writer/pkg/consts"
	"github.com/dlis-toolkit/dlis-writer/pkg/dliserr"
	"github.com/dlis-toolkit/dlis-writer/pkg/eflr"
	"github.com/dlis-toolkit/dlis-writer/pkg/iflr"
	"github.com/dlis-toolkit/dlis-writer/pkg/lrb"
	"github.com/dlis-toolkit/dlis-writer/pkg/option"
	"github.com/dlis-toolkit/dlis-writer/pkg/segment"
	"github.com/dlis-toolkit/dlis-writer/pkg/sul"
)

// Origin describes the single ORIGIN Item every file must carry. Its
// FileSetNumber is unset (zero) until AttachOriginReference runs.
type Origin struct {
	Name          string
	FileSetNumber uint32
	FileID        string
	WellName      string
	FieldName     string
	Company       string
	ProducerName  string
	Product       string
	CreationTime  time.Time
}

// Channel describes one column of a Frame's rows.
type Channel struct {
	Name               string
	LongName           string
	RepresentationCode consts.RepresentationCode
	Units              string
	// Dimension is the element shape per row; nil or empty means scalar.
	Dimension []int
}

func (c *Channel) dimension() []int {
	if len(c.Dimension) == 0 {
		return []int{1}
	}
	return c.Dimension
}

// RowSource is a pull-based source of FrameData row values, one slice
// of attribute.Value per row, row-major across a Frame's Channels. It
// lets rows be produced on demand instead of materialized up front.
type RowSource interface {
	Next() ([]attribute.Value, bool, error)
}

// rowSourceFunc adapts a plain function to RowSource.
type rowSourceFunc func() ([]attribute.Value, bool, error)

func (f rowSourceFunc) Next() ([]attribute.Value, bool, error) { return f() }

// SliceRows wraps an already-materialized set of rows as a RowSource,
// useful for small frames and tests.
func SliceRows(rows [][]attribute.Value) RowSource {
	i := 0
	return rowSourceFunc(func() ([]attribute.Value, bool, error) {
		if i >= len(rows) {
			return nil, false, nil
		}
		v := rows[i]
		i++
		return v, true, nil
	})
}

// Frame describes one FRAME Set and the row source backing its
// FrameData.
type Frame struct {
	Name      string
	IndexType string
	Channels  []*Channel
	Rows      RowSource
}

// Graph is the typed object graph a producer assembles before calling
// WriteDlis: one Origin, any number of supplemental metadata Sets, and
// any number of Frames.
type Graph struct {
	Origin       *Origin
	Channels     []*Channel
	Frames       []*Frame
	MetadataSets []*eflr.Set

	originReference uint32
}

// AddMetadataSet appends a supplemental EFLR Set (e.g. from
// pkg/eflrtypes) to be emitted after the Channel set and before the
// Frame set.
func (g *Graph) AddMetadataSet(s *eflr.Set) {
	g.MetadataSets = append(g.MetadataSets, s)
}

// AttachOriginReference assigns fileSetNumber as the origin_reference
// of every EFLR Item built so far and every FrameData row the graph
// will later produce. Precondition: fileSetNumber > 0. This must run
// before LogicalRecordIter or WriteDlis.
func AttachOriginReference(graph *Graph, fileSetNumber uint32) error {
	if fileSetNumber == 0 {
		return fmt.Errorf("%w: file_set_number must be greater than zero", dliserr.ErrValueOutOfRange)
	}
	if graph.Origin == nil {
		return fmt.Errorf("%w: graph has no Origin", dliserr.ErrOriginMissing)
	}
	graph.Origin.FileSetNumber = fileSetNumber
	graph.originReference = fileSetNumber
	for _, set := range graph.MetadataSets {
		for _, item := range set.Items() {
			item.OriginReference = fileSetNumber
		}
	}
	return nil
}

func buildOriginSet(o *Origin) (*eflr.Set, error) {
	set := eflr.NewSet("ORIGIN", consts.LRTypeOrigin, []attribute.Template{
		{Label: "FILE-ID", RepresentationCode: consts.ASCII},
		{Label: "FILE-SET-NUMBER", RepresentationCode: consts.UVARI},
		{Label: "PRODUCT", RepresentationCode: consts.ASCII},
		{Label: "CREATION-TIME", RepresentationCode: consts.DTIME},
		{Label: "WELL-NAME", RepresentationCode: consts.ASCII},
		{Label: "FIELD-NAME", RepresentationCode: consts.ASCII},
		{Label: "COMPANY", RepresentationCode: consts.ASCII},
		{Label: "PRODUCER-NAME", RepresentationCode: consts.ASCII},
	})

	creationTime := o.CreationTime
	if creationTime.IsZero() {
		creationTime = time.Now().UTC()
	}

	err := set.AddItem(&eflr.Item{
		Name: o.Name,
		Attributes: []attribute.Occurrence{
			{Values: []attribute.Value{attribute.TextValue(o.FileID)}},
			{Values: []attribute.Value{attribute.IntValue(int64(o.FileSetNumber))}},
			{Values: []attribute.Value{attribute.TextValue(o.Product)}},
			{Values: []attribute.Value{attribute.DateTimeValue(creationTime)}},
			{Values: []attribute.Value{attribute.TextValue(o.WellName)}},
			{Values: []attribute.Value{attribute.TextValue(o.FieldName)}},
			{Values: []attribute.Value{attribute.TextValue(o.Company)}},
			{Values: []attribute.Value{attribute.TextValue(o.ProducerName)}},
		},
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

func buildChannelSet(channels []*Channel) (*eflr.Set, error) {
	set := eflr.NewSet("CHANNEL", consts.LRTypeChannel, []attribute.Template{
		{Label: "LONG-NAME", RepresentationCode: consts.ASCII},
		{Label: "REPRESENTATION-CODE", RepresentationCode: consts.USHORT},
		{Label: "UNITS", RepresentationCode: consts.UNITS},
		{Label: "DIMENSION", RepresentationCode: consts.UVARI},
	})

	for _, ch := range channels {
		var dimValues []attribute.Value
		for _, d := range ch.dimension() {
			dimValues = append(dimValues, attribute.IntValue(int64(d)))
		}
		err := set.AddItem(&eflr.Item{
			Name: ch.Name,
			Attributes: []attribute.Occurrence{
				{Values: []attribute.Value{attribute.TextValue(ch.LongName)}},
				{Values: []attribute.Value{attribute.IntValue(int64(ch.RepresentationCode))}},
				{Values: []attribute.Value{attribute.UnitsValue(ch.Units)}},
				{Values: dimValues},
			},
		})
		if err != nil {
			return nil, err
		}
	}
	return set, nil
}

func buildFrameSet(frames []*Frame, originReference uint32) (*eflr.Set, error) {
	set := eflr.NewSet("FRAME", consts.LRTypeFrame, []attribute.Template{
		{Label: "CHANNELS", RepresentationCode: consts.OBJREF},
		{Label: "INDEX-TYPE", RepresentationCode: consts.IDENT},
	})

	for _, fr := range frames {
		var channelValues []attribute.Value
		for _, ch := range fr.Channels {
			channelValues = append(channelValues, attribute.ObjectRefValue(attribute.ObjectRef{
				SetType:         "CHANNEL",
				OriginReference: originReference,
				Name:            ch.Name,
			}))
		}
		err := set.AddItem(&eflr.Item{
			Name: fr.Name,
			Attributes: []attribute.Occurrence{
				{Values: channelValues},
				{Values: []attribute.Value{attribute.IdentValue(fr.IndexType)}},
			},
		})
		if err != nil {
			return nil, err
		}
	}
	return set, nil
}

// frameDataIterator lazily produces LRBs for one Frame's rows,
// assigning monotonically increasing frame numbers starting at 1.
func frameDataIterator(fr *Frame, originReference uint32) *lrb.Iterator {
	frameNumber := uint32(0)
	channelSpecs := make([]iflr.ChannelSpec, len(fr.Channels))
	for i, ch := range fr.Channels {
		channelSpecs[i] = iflr.ChannelSpec{RepresentationCode: ch.RepresentationCode, Dimension: ch.Dimension}
	}

	return lrb.NewIterator(func() (lrb.LRB, bool, error) {
		if fr.Rows == nil {
			return lrb.LRB{}, false, nil
		}
		row, ok, err := fr.Rows.Next()
		if err != nil {
			return lrb.LRB{}, false, err
		}
		if !ok {
			return lrb.LRB{}, false, nil
		}
		frameNumber++

		values := make([][]attribute.Value, len(fr.Channels))
		offset := 0
		for i, ch := range channelSpecs {
			n := ch.ElementCount()
			if offset+n > len(row) {
				return lrb.LRB{}, false, fmt.Errorf("%w: frame %q row %d has %d values, channel %d needs %d more",
					dliserr.ErrFrameShape, fr.Name, frameNumber, len(row), i, n)
			}
			values[i] = row[offset : offset+n]
			offset += n
		}

		fd := iflr.FrameData{
			FrameOriginReference: originReference,
			FrameName:            fr.Name,
			FrameNumber:          frameNumber,
			Channels:             channelSpecs,
			Values:               values,
		}
		body, err := fd.EncodeBody()
		if err != nil {
			return lrb.LRB{}, false, err
		}
		return lrb.LRB{IsEFLR: false, LogicalRecordType: consts.LRTypeFrameData, Body: body}, true, nil
	})
}

// LogicalRecordIter builds the lazy LRB sequence for graph: FileHeader,
// Origin, Channel set (when any channels exist), any supplemental
// metadata Sets, the Frame set (when any frames exist), then each
// Frame's FrameData rows in order. The Storage Unit Label is not part
// of this sequence; it is written separately and first, ahead of any
// Visible Record framing.
func LogicalRecordIter(graph *Graph, opts *option.WriteOptions) (*lrb.Iterator, error) {
	if graph.Origin == nil || graph.Origin.FileSetNumber == 0 {
		return nil, fmt.Errorf("%w: origin reference not attached; call AttachOriginReference first", dliserr.ErrOriginMissing)
	}

	fileHeaderLRB, err := sul.FileHeaderLRB(opts.SequenceNumber, graph.Origin.FileID, graph.originReference)
	if err != nil {
		return nil, err
	}

	originSet, err := buildOriginSet(graph.Origin)
	if err != nil {
		return nil, err
	}
	for _, item := range originSet.Items() {
		item.OriginReference = graph.originReference
	}

	sets := []*eflr.Set{originSet}
	if len(graph.Channels) > 0 {
		channelSet, err := buildChannelSet(graph.Channels)
		if err != nil {
			return nil, err
		}
		for _, item := range channelSet.Items() {
			item.OriginReference = graph.originReference
		}
		sets = append(sets, channelSet)
	}
	sets = append(sets, graph.MetadataSets...)
	if len(graph.Frames) > 0 {
		frameSet, err := buildFrameSet(graph.Frames, graph.originReference)
		if err != nil {
			return nil, err
		}
		for _, item := range frameSet.Items() {
			item.OriginReference = graph.originReference
		}
		sets = append(sets, frameSet)
	}

	iterators := []*lrb.Iterator{lrb.Slice([]lrb.LRB{fileHeaderLRB})}
	for _, s := range sets {
		body, err := s.EncodeBody()
		if err != nil {
			return nil, err
		}
		iterators = append(iterators, lrb.Slice([]lrb.LRB{{IsEFLR: true, LogicalRecordType: s.LogicalRecordType, Body: body}}))
	}
	for _, fr := range graph.Frames {
		iterators = append(iterators, frameDataIterator(fr, graph.originReference))
	}

	return lrb.Chain(iterators...), nil
}

// WriteDlis validates opts, produces the LRB stream for graph, and
// writes the Storage Unit Label followed by the segmented Visible
// Record stream to path.
func WriteDlis(graph *Graph, path string, opts ...option.WriteOption) error {
	o := option.Defaults(opts...)
	if err := segment.ValidateVisibleRecordLength(o.VisibleRecordLength); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", dliserr.ErrIo, err)
	}
	defer f.Close()

	label := sul.Label{
		SequenceNumber:       o.SequenceNumber,
		MaxRecordLength:      o.VisibleRecordLength,
		StorageSetIdentifier: o.StorageSetIdentifier,
	}
	if err := label.Write(f); err != nil {
		return err
	}

	it, err := LogicalRecordIter(graph, o)
	if err != nil {
		return err
	}

	segWriter, err := segment.NewWriter(f, o.VisibleRecordLength)
	if err != nil {
		return err
	}

	o.Logger.Info("writing DLIS file", "path", path, "visible_record_length", o.VisibleRecordLength)
	return segWriter.WriteAll(it)
}
