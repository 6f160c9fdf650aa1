package sul

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/dlis-toolkit/dlis-writer/pkg/consts"
	"github.com/dlis-toolkit/dlis-writer/pkg/dliserr"
	"github.com/dlis-toolkit/dlis-writer/pkg/lrb"
	"github.com/dlis-toolkit/dlis-writer/pkg/segment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabel_EncodeIsExactly80Bytes(t *testing.T) {
	l := Label{SequenceNumber: 1, MaxRecordLength: 8192, StorageSetIdentifier: "Default Storage Set"}
	b, err := l.Encode()
	require.NoError(t, err)
	assert.Len(t, b, consts.StorageUnitLabelSize)
	assert.Equal(t, []byte("0001"), b[0:4])
	assert.Equal(t, []byte("V1.00"), b[4:9])
	assert.Equal(t, []byte("RECORD"), b[9:15])
	assert.Equal(t, []byte(" 8192"), b[15:20])
	assert.Equal(t, []byte("Default Storage Set"), bytes.TrimRight(b[20:80], " "))
}

func TestLabel_DefaultsSequenceNumberToOne(t *testing.T) {
	l := Label{MaxRecordLength: 20, StorageSetIdentifier: "x"}
	b, err := l.Encode()
	require.NoError(t, err)
	assert.Equal(t, []byte("0001"), b[0:4])
}

func TestLabel_RejectsOutOfRangeFields(t *testing.T) {
	_, err := Label{SequenceNumber: 10000, MaxRecordLength: 20}.Encode()
	assert.Error(t, err)

	_, err = Label{MaxRecordLength: 100000}.Encode()
	assert.Error(t, err)
}

func TestFileHeaderLRB_BodyIsExactly120Bytes(t *testing.T) {
	rec, err := FileHeaderLRB(1, "WELL-42", 1)
	require.NoError(t, err)
	assert.True(t, rec.IsEFLR)
	assert.Equal(t, uint8(consts.LRTypeFileHeader), rec.LogicalRecordType)
	assert.Len(t, rec.Body, 120)
}

func TestFileHeaderLRB_TotalRecordIsExactly124BytesOnceSegmented(t *testing.T) {
	rec, err := FileHeaderLRB(1, "WELL-42", 1)
	require.NoError(t, err)
	// LRS header (4) + body (120) = 124, the record's fixed size.
	assert.Equal(t, 124, 4+len(rec.Body))

	var buf bytes.Buffer
	w, err := segment.NewWriter(&buf, consts.DefaultVisibleRecordLength)
	require.NoError(t, err)
	require.NoError(t, w.WriteAll(lrb.Slice([]lrb.LRB{rec})))
	out := buf.Bytes()
	// The single segment's length field follows the 4-byte VR header.
	assert.Equal(t, uint16(124), binary.BigEndian.Uint16(out[4:6]))
}

func TestFileHeader_RejectsEmptyIdentifier(t *testing.T) {
	_, err := FileHeader(1, "", 1)
	assert.ErrorIs(t, err, dliserr.ErrSchemaViolation)
}

func TestFileHeader_RejectsOverlongIdentifier(t *testing.T) {
	long := make([]byte, 66)
	for i := range long {
		long[i] = 'X'
	}
	_, err := FileHeader(1, string(long), 1)
	assert.ErrorIs(t, err, dliserr.ErrSchemaViolation)
}
