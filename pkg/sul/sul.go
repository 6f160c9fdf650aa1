// Package sul builds the two fixed-layout records that open every
// DLIS file: the 80-byte Storage Unit Label, written to the stream
// ahead of any Visible Record framing, and the FILE-HEADER EFLR, the
// first logical record a producer yields.
package sul

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dlis-toolkit/dlis-writer/pkg/attribute"
	"github.com/dlis-toolkit/dlis-writer/pkg/consts"
	"github.com/dlis-toolkit/dlis-writer/pkg/dliserr"
	"github.com/dlis-toolkit/dlis-writer/pkg/eflr"
	"github.com/dlis-toolkit/dlis-writer/pkg/helpers"
	"github.com/dlis-toolkit/dlis-writer/pkg/lrb"
	"github.com/dlis-toolkit/dlis-writer/pkg/reprcode"
)

// fileHeaderSequenceNumberWidth and fileHeaderIdentifierWidth are the
// fixed ASCII field widths baked into the FILE-HEADER record so that
// its body is exactly 120 bytes for any origin reference below 128.
const (
	fileHeaderSequenceNumberWidth = 10
	fileHeaderIdentifierWidth     = 65
)

// Label holds the five fields of the Storage Unit Label.
type Label struct {
	// SequenceNumber defaults to 1 when zero.
	SequenceNumber int
	// MaxRecordLength is the Visible Record length the producer will
	// use for the rest of the file.
	MaxRecordLength int
	// StorageSetIdentifier is free-form user text, space-padded to 60 bytes.
	StorageSetIdentifier string
}

// Encode returns the exact 80-byte Storage Unit Label (RP66 §2.3.2).
func (l Label) Encode() ([]byte, error) {
	seq := l.SequenceNumber
	if seq == 0 {
		seq = 1
	}
	if seq < 0 || seq > 9999 {
		return nil, fmt.Errorf("%w: SUL sequence number %d does not fit in 4 digits", dliserr.ErrValueOutOfRange, seq)
	}
	if l.MaxRecordLength < 0 || l.MaxRecordLength > 99999 {
		return nil, fmt.Errorf("%w: SUL maximum record length %d does not fit in 5 digits", dliserr.ErrValueOutOfRange, l.MaxRecordLength)
	}

	out := make([]byte, 0, consts.StorageUnitLabelSize)
	out = append(out, helpers.RightJustify(strconv.Itoa(seq), 4, '0')...)
	out = append(out, helpers.PadString(consts.DlisVersion, 5)...)
	out = append(out, helpers.PadString(consts.DlisStructure, 6)...)
	out = append(out, helpers.RightJustify(strconv.Itoa(l.MaxRecordLength), 5, ' ')...)
	out = append(out, helpers.PadString(l.StorageSetIdentifier, 60)...)

	if len(out) != consts.StorageUnitLabelSize {
		panic(fmt.Sprintf("sul: encoded label is %d bytes, want %d", len(out), consts.StorageUnitLabelSize))
	}
	return out, nil
}

// Write encodes the label and writes it directly to w, ahead of any
// Visible Record framing.
func (l Label) Write(w io.Writer) error {
	b, err := l.Encode()
	if err != nil {
		return err
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("%w: %v", dliserr.ErrIo, err)
	}
	return nil
}

// FileHeader builds the single-Item FILE-HEADER EFLR. sequenceNumber
// is right-justified decimal; identifier is left-justified text, padded
// to its fixed field width so the record body has its fixed size.
// originReference is the file set number assigned to every EFLR Item.
func FileHeader(sequenceNumber int, identifier string, originReference uint32) (*eflr.Set, error) {
	if identifier == "" {
		return nil, fmt.Errorf("%w: file header identifier must not be empty", dliserr.ErrSchemaViolation)
	}
	if len(identifier) > fileHeaderIdentifierWidth {
		return nil, fmt.Errorf("%w: file header identifier %q exceeds %d characters",
			dliserr.ErrSchemaViolation, identifier, fileHeaderIdentifierWidth)
	}

	set := eflr.NewSet("FILE-HEADER", consts.LRTypeFileHeader, []attribute.Template{
		{Label: "SEQUENCE-NUMBER", Count: 1, RepresentationCode: consts.ASCII},
		{Label: "ID", Count: 1, RepresentationCode: consts.ASCII},
	})

	seqText := string(helpers.RightJustify(strconv.Itoa(sequenceNumber), fileHeaderSequenceNumberWidth, ' '))
	idText := string(helpers.PadString(identifier, fileHeaderIdentifierWidth))

	err := set.AddItem(&eflr.Item{
		Name:            "0",
		OriginReference: originReference,
		Attributes: []attribute.Occurrence{
			{Values: []attribute.Value{attribute.TextValue(seqText)}},
			{Values: []attribute.Value{attribute.TextValue(idText)}},
		},
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

// FileHeaderLRB encodes the FILE-HEADER Set into the LRB that must be
// the first record after the Storage Unit Label (RP66 §5.1). The body
// is 120 bytes whenever originReference fits a 1-byte UVARI, giving
// the fixed 124-byte record the format requires.
func FileHeaderLRB(sequenceNumber int, identifier string, originReference uint32) (lrb.LRB, error) {
	set, err := FileHeader(sequenceNumber, identifier, originReference)
	if err != nil {
		return lrb.LRB{}, err
	}
	body, err := set.EncodeBody()
	if err != nil {
		return lrb.LRB{}, err
	}
	if want := 119 + reprcode.UvariSize(originReference); len(body) != want {
		panic(fmt.Sprintf("sul: file header body is %d bytes, want %d", len(body), want))
	}
	return lrb.LRB{IsEFLR: true, LogicalRecordType: consts.LRTypeFileHeader, Body: body}, nil
}
