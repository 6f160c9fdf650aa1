// Package dliserr defines the closed set of error kinds the writer can
// return. Each is a sentinel error; callers classify failures with
// errors.Is and get detail from the wrapped message.
package dliserr

import "errors"

// ErrValueOutOfRange is returned when a numeric value does not fit its
// representation code, a configuration value is out of its allowed
// range, or a required non-zero field was left zero.
var ErrValueOutOfRange = errors.New("value out of range")

// ErrCharsetViolation is returned when an IDENT contains non-ASCII
// bytes or a UNITS value contains a character outside the allowed set.
var ErrCharsetViolation = errors.New("charset violation")

// ErrSchemaViolation is returned when an Item carries an attribute not
// declared in its Set's schema, or a required field is missing or
// exceeds a fixed width.
var ErrSchemaViolation = errors.New("schema violation")

// ErrOriginMissing is returned when no Origin Item is present in the
// graph, or the Origin's file set number is unset at encoding time.
var ErrOriginMissing = errors.New("origin missing")

// ErrFrameShape is returned when a FrameData row's channel values do
// not match the Frame's declared channel dimensions or representation
// codes.
var ErrFrameShape = errors.New("frame shape mismatch")

// ErrIo is returned when the underlying byte sink fails.
var ErrIo = errors.New("io failure")
