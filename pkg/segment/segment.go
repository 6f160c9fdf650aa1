// Package segment implements stage 4 of the pipeline:
// the Visible Record segmenter. It consumes a lazy sequence of Logical
// Record Bytes and writes fixed-maximum-size Visible Records, splitting
// a LRB's body across Logical Record Segments whenever it would not
// otherwise fit.
package segment

import (
	"bufio"
	"fmt"
	"io"

	"github.com/dlis-toolkit/dlis-writer/pkg/consts"
	"github.com/dlis-toolkit/dlis-writer/pkg/dliserr"
	"github.com/dlis-toolkit/dlis-writer/pkg/lrb"
	"github.com/dlis-toolkit/dlis-writer/pkg/reprcode"
)

// Writer segments an incoming LRB stream into Visible Records and
// writes them to an underlying io.Writer. It holds only the current
// visible-record body plus O(1) bookkeeping, regardless of how large
// the overall LRB stream is.
type Writer struct {
	w       *bufio.Writer
	maxBody int

	currentBody []byte
	currentSize int
	space       int
}

// ValidateVisibleRecordLength checks that a Visible Record length is
// even and within [20, 16384].
func ValidateVisibleRecordLength(visibleRecordLength int) error {
	if visibleRecordLength < consts.MinVisibleRecordLength ||
		visibleRecordLength > consts.MaxVisibleRecordLength ||
		visibleRecordLength%2 != 0 {
		return fmt.Errorf("%w: visible record length %d must be even and within [%d,%d]",
			dliserr.ErrValueOutOfRange, visibleRecordLength, consts.MinVisibleRecordLength, consts.MaxVisibleRecordLength)
	}
	return nil
}

// NewWriter constructs a segmenter writing to w with the given Visible
// Record length.
func NewWriter(w io.Writer, visibleRecordLength int) (*Writer, error) {
	if err := ValidateVisibleRecordLength(visibleRecordLength); err != nil {
		return nil, err
	}
	maxBody := visibleRecordLength - consts.HeaderSize
	return &Writer{
		w:       bufio.NewWriter(w),
		maxBody: maxBody,
		space:   maxBody - consts.HeaderSize,
	}, nil
}

// WriteAll drains it, segmenting every LRB into Visible Records, then
// flushes the final partial Visible Record and the underlying writer.
func (wtr *Writer) WriteAll(it *lrb.Iterator) error {
	for {
		rec, ok, err := it.Next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if err := wtr.writeLRB(rec); err != nil {
			return err
		}
	}
	if err := wtr.flush(); err != nil {
		return err
	}
	return wtr.w.Flush()
}

func (wtr *Writer) writeLRB(rec lrb.LRB) error {
	total := len(rec.Body)
	position := 0
	for {
		remaining := total - position
		if remaining <= wtr.space {
			wtr.appendSegment(rec, position, remaining, total)
			return nil
		}

		segSize := wtr.space
		if segSize > remaining {
			segSize = remaining
		}
		future := remaining - segSize

		tookSplit := false
		if segSize >= consts.MinSegmentBody && future >= consts.MinSegmentBody {
			wtr.appendSegment(rec, position, segSize, total)
			position += segSize
			tookSplit = true
		}

		wasEmptyVR := wtr.currentSize == 0
		if err := wtr.flush(); err != nil {
			return err
		}
		if !tookSplit && wasEmptyVR {
			// Flushing an already-empty visible record changed nothing:
			// the MIN_BODY constraint can never be satisfied for this
			// record at this VRL. The algorithm guarantees this cannot
			// happen when followed correctly.
			panic(fmt.Sprintf("segment: cannot place %d remaining bytes under MIN_BODY constraints at VRL capacity %d", remaining, wtr.maxBody))
		}
	}
}

// appendSegment builds one Logical Record Segment covering
// rec.Body[position:position+segLen] and appends it to the current
// visible-record body, updating size/space bookkeeping.
func (wtr *Writer) appendSegment(rec lrb.LRB, position, segLen, total int) {
	hasPredecessor := position > 0
	hasSuccessor := position+segLen < total

	body := rec.Body[position : position+segLen]
	pad := segLen % 2
	segTotalLen := consts.HeaderSize + segLen + pad

	attrs := byte(0)
	if rec.IsEFLR {
		attrs |= 0x80
	}
	if hasPredecessor {
		attrs |= 0x40
	}
	if hasSuccessor {
		attrs |= 0x20
	}
	if pad != 0 {
		attrs |= 0x01
	}

	segment := make([]byte, 0, segTotalLen)
	segment = append(segment, reprcode.EncodeUnorm(uint16(segTotalLen))...)
	segment = append(segment, attrs)
	segment = append(segment, rec.LogicalRecordType)
	segment = append(segment, body...)
	if pad != 0 {
		segment = append(segment, consts.PadByte)
	}

	wtr.currentBody = append(wtr.currentBody, segment...)
	wtr.currentSize += segTotalLen
	wtr.space = wtr.maxBody - wtr.currentSize - consts.HeaderSize

	if wtr.currentSize > wtr.maxBody {
		panic(fmt.Sprintf("segment: visible record body %d exceeds maximum %d", wtr.currentSize, wtr.maxBody))
	}
}

// flush writes the current visible record (header + accumulated
// segments) to the underlying writer and resets state for the next
// one. A no-op when nothing has been appended since the last flush.
func (wtr *Writer) flush() error {
	if wtr.currentSize == 0 {
		return nil
	}

	vrLen := wtr.currentSize + consts.HeaderSize
	if _, err := wtr.w.Write(reprcode.EncodeUnorm(uint16(vrLen))); err != nil {
		return fmt.Errorf("%w: %v", dliserr.ErrIo, err)
	}
	if _, err := wtr.w.Write(reprcode.EncodeUnorm(consts.VisibleRecordFormatVersion)); err != nil {
		return fmt.Errorf("%w: %v", dliserr.ErrIo, err)
	}
	if _, err := wtr.w.Write(wtr.currentBody); err != nil {
		return fmt.Errorf("%w: %v", dliserr.ErrIo, err)
	}

	wtr.currentBody = wtr.currentBody[:0]
	wtr.currentSize = 0
	wtr.space = wtr.maxBody - consts.HeaderSize
	return nil
}
