// Package consts holds the numeric and textual constants defined by
// RP66 V1 ("DLIS"): representation codes, logical record type codes,
// structural sizes, and the restricted character sets used by a
// handful of representation codes.
package consts

const (
	// DlisVersion is the fixed DLIS version field of the Storage Unit Label.
	DlisVersion = "V1.00"

	// DlisStructure is the fixed structure field of the Storage Unit Label.
	DlisStructure = "RECORD"

	// StorageUnitLabelSize is the exact, fixed size of the Storage Unit
	// Label in bytes.
	StorageUnitLabelSize = 80

	// VisibleRecordFormatVersion is the fixed 2-byte format-version field
	// that follows the length field of every Visible Record.
	VisibleRecordFormatVersion = 0xFF01

	// HeaderSize is the size, in bytes, of both the Visible Record header
	// and the Logical Record Segment header.
	HeaderSize = 4

	// MinSegmentBody is the minimum allowed body size of a Logical Record
	// Segment (excluding its 4-byte header).
	MinSegmentBody = 12

	// MinVisibleRecordLength and MaxVisibleRecordLength bound the
	// configurable Visible Record length.
	MinVisibleRecordLength = 20
	MaxVisibleRecordLength = 16384

	// DefaultVisibleRecordLength is used when the caller does not specify one.
	DefaultVisibleRecordLength = 8192

	// PadByte is the value written whenever a segment needs an extra byte
	// to reach an even total length.
	PadByte = 0x01

	// MaxUVARI1 and MaxUVARI2 are the exclusive upper bounds of the 1-byte
	// and 2-byte UVARI encodings (RP66 Appendix B, code 18).
	MaxUVARI1 = 128
	MaxUVARI2 = 16384
	MaxUVARI4 = 1 << 30

	// MaxIdentLength is the maximum byte length of an IDENT value.
	MaxIdentLength = 255

	// MinDtimeYear and MaxDtimeYear bound the year field accepted by DTIME.
	MinDtimeYear = 1900
	MaxDtimeYear = 2155
)

// Logical record type codes, RP66 V1 Appendix A.
const (
	LRTypeFileHeader = 0
	LRTypeOrigin     = 1
	LRTypeDictionary = 2
	LRTypeChannel    = 3
	LRTypeFrame      = 4
	LRTypeStatic     = 5
	LRTypeScript     = 6
	LRTypeUpdate     = 7
	LRTypeUDI        = 8
	LRTypeLongName   = 9
	LRTypeSpecific   = 10

	// LRTypeFrameData is the logical-record-type USHORT written for every
	// IFLR frame-data record. It numerically overlaps LRTypeFileHeader;
	// the is_eflr attribute bit is what disambiguates the two on the wire.
	LRTypeFrameData = 0
)

// Representation codes, RP66 V1 Appendix B. The numeric value is the
// USHORT written on the wire wherever a representation code itself is
// serialized (e.g. in an Attribute template).
type RepresentationCode uint8

const (
	FSHORT RepresentationCode = 1
	FSINGL RepresentationCode = 2
	FSING1 RepresentationCode = 3
	FSING2 RepresentationCode = 4
	ISINGL RepresentationCode = 5
	VSINGL RepresentationCode = 6
	FDOUBL RepresentationCode = 7
	FDOUB1 RepresentationCode = 8
	FDOUB2 RepresentationCode = 9
	CSINGL RepresentationCode = 10
	CDOUBL RepresentationCode = 11
	SSHORT RepresentationCode = 12
	SNORM  RepresentationCode = 13
	SLONG  RepresentationCode = 14
	USHORT RepresentationCode = 15
	UNORM  RepresentationCode = 16
	ULONG  RepresentationCode = 17
	UVARI  RepresentationCode = 18
	IDENT  RepresentationCode = 19
	ASCII  RepresentationCode = 20
	DTIME  RepresentationCode = 21
	ORIGIN RepresentationCode = 22
	OBNAME RepresentationCode = 23
	OBJREF RepresentationCode = 24
	ATTREF RepresentationCode = 25
	STATUS RepresentationCode = 26
	UNITS  RepresentationCode = 27
)

// String returns the RP66 mnemonic for the representation code, matching
// what appears in Appendix B (useful in error messages and logs).
func (r RepresentationCode) String() string {
	switch r {
	case FSHORT:
		return "FSHORT"
	case FSINGL:
		return "FSINGL"
	case FSING1:
		return "FSING1"
	case FSING2:
		return "FSING2"
	case ISINGL:
		return "ISINGL"
	case VSINGL:
		return "VSINGL"
	case FDOUBL:
		return "FDOUBL"
	case FDOUB1:
		return "FDOUB1"
	case FDOUB2:
		return "FDOUB2"
	case CSINGL:
		return "CSINGL"
	case CDOUBL:
		return "CDOUBL"
	case SSHORT:
		return "SSHORT"
	case SNORM:
		return "SNORM"
	case SLONG:
		return "SLONG"
	case USHORT:
		return "USHORT"
	case UNORM:
		return "UNORM"
	case ULONG:
		return "ULONG"
	case UVARI:
		return "UVARI"
	case IDENT:
		return "IDENT"
	case ASCII:
		return "ASCII"
	case DTIME:
		return "DTIME"
	case ORIGIN:
		return "ORIGIN"
	case OBNAME:
		return "OBNAME"
	case OBJREF:
		return "OBJREF"
	case ATTREF:
		return "ATTREF"
	case STATUS:
		return "STATUS"
	case UNITS:
		return "UNITS"
	default:
		return "UNKNOWN"
	}
}

// UnitsCharacters is the restricted, case-sensitive character set allowed
// in UNITS values (RP66 Appendix B, code 27): letters, digits,
// space, and a handful of punctuation marks.
const UnitsCharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789 -./(),"
