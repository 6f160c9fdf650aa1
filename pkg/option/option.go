// Package option provides the functional-options surface used to
// configure a DLIS write session.
package option

import (
	"github.com/dlis-toolkit/dlis-writer/pkg/consts"
	"github.com/dlis-toolkit/dlis-writer/pkg/logging"
)

// WriteOptions controls how a file is framed and logged.
type WriteOptions struct {
	// VisibleRecordLength is the fixed Visible Record length used to
	// segment the file. Defaults to consts.DefaultVisibleRecordLength.
	VisibleRecordLength int
	// SequenceNumber is written into the Storage Unit Label and the
	// FILE-HEADER record. Defaults to 1.
	SequenceNumber int
	// StorageSetIdentifier is free-form text carried in the Storage
	// Unit Label.
	StorageSetIdentifier string
	Logger               *logging.Logger
}

// WriteOption mutates a WriteOptions.
type WriteOption func(*WriteOptions)

// Defaults returns a WriteOptions populated with library defaults,
// then applies opts in order.
func Defaults(opts ...WriteOption) *WriteOptions {
	o := &WriteOptions{
		VisibleRecordLength: consts.DefaultVisibleRecordLength,
		SequenceNumber:      1,
		Logger:              logging.DefaultLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithVisibleRecordLength overrides the Visible Record length used to
// segment the file.
func WithVisibleRecordLength(length int) WriteOption {
	return func(o *WriteOptions) {
		o.VisibleRecordLength = length
	}
}

// WithSequenceNumber overrides the storage-unit sequence number.
func WithSequenceNumber(sequenceNumber int) WriteOption {
	return func(o *WriteOptions) {
		o.SequenceNumber = sequenceNumber
	}
}

// WithStorageSetIdentifier overrides the Storage Unit Label's free-form
// storage set identifier text.
func WithStorageSetIdentifier(identifier string) WriteOption {
	return func(o *WriteOptions) {
		o.StorageSetIdentifier = identifier
	}
}

// WithLogger sets the Logger used during the write.
func WithLogger(logger *logging.Logger) WriteOption {
	return func(o *WriteOptions) {
		o.Logger = logger
	}
}
