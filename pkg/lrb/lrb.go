// Package lrb implements stage 3 of the pipeline: turning an
// ordered collection of EFLR Sets and IFLR frame-data rows into a lazy
// sequence of Logical Record Bytes, one header+body pair per complete
// logical record.
package lrb

// LRB is one complete, unsegmented logical record: its header fields
// (is_eflr and logical_record_type) and its full body bytes. The
// Visible Record segmenter (pkg/segment) is the only consumer that
// splits a LRB's body across Logical Record Segments.
type LRB struct {
	IsEFLR            bool
	LogicalRecordType uint8
	Body              []byte
}

// Size returns the length of the LRB's body.
func (l LRB) Size() int {
	return len(l.Body)
}

// NextFunc produces the next LRB in the stream. It returns ok=false
// once the stream is exhausted, with no error.
type NextFunc func() (LRB, bool, error)

// Iterator is a pull-based, single-pass sequence of LRBs. It mirrors
// the producer interface's lazy-sequence contract: each
// call to Next yields one LRB, FrameData rows included, without
// materializing the whole record set in memory.
type Iterator struct {
	next NextFunc
}

// NewIterator wraps a NextFunc as an Iterator.
func NewIterator(next NextFunc) *Iterator {
	return &Iterator{next: next}
}

// Next returns the next LRB, or ok=false when the sequence is
// exhausted. An error aborts the sequence; the caller must not call
// Next again after an error.
func (it *Iterator) Next() (LRB, bool, error) {
	return it.next()
}

// Slice builds an Iterator over an already-materialized slice of LRBs,
// useful for small, fully in-memory EFLR streams (tests, small files).
func Slice(lrbs []LRB) *Iterator {
	i := 0
	return NewIterator(func() (LRB, bool, error) {
		if i >= len(lrbs) {
			return LRB{}, false, nil
		}
		v := lrbs[i]
		i++
		return v, true, nil
	})
}

// Chain concatenates several iterators into one, consuming each fully
// before advancing to the next, the shape LogicalRecordIter uses to
// sequence FileHeader, Origin, metadata Sets, and per-Frame FrameData
// iterators into a single stream.
func Chain(iterators ...*Iterator) *Iterator {
	idx := 0
	return NewIterator(func() (LRB, bool, error) {
		for idx < len(iterators) {
			v, ok, err := iterators[idx].Next()
			if err != nil {
				return LRB{}, false, err
			}
			if ok {
				return v, true, nil
			}
			idx++
		}
		return LRB{}, false, nil
	})
}
