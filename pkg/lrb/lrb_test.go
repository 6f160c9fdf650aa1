package lrb

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlice_YieldsInOrderThenExhausts(t *testing.T) {
	want := []LRB{
		{LogicalRecordType: 0, Body: []byte{1}},
		{LogicalRecordType: 1, Body: []byte{2, 3}},
	}
	it := Slice(want)

	got, ok, err := it.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want[0], got)

	got, ok, err = it.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, want[1], got)

	_, ok, err = it.Next()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestChain_ConsumesEachFullyBeforeAdvancing(t *testing.T) {
	first := Slice([]LRB{{LogicalRecordType: 0, Body: []byte{1}}})
	second := Slice([]LRB{{LogicalRecordType: 1, Body: []byte{2}}, {LogicalRecordType: 1, Body: []byte{3}}})
	chained := Chain(first, second)

	var order []byte
	for {
		v, ok, err := chained.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		order = append(order, v.Body[0])
	}
	assert.Equal(t, []byte{1, 2, 3}, order)
}

func TestChain_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	failing := NewIterator(func() (LRB, bool, error) {
		return LRB{}, false, boom
	})
	chained := Chain(Slice(nil), failing)

	_, _, err := chained.Next()
	assert.ErrorIs(t, err, boom)
}

func TestChain_EmptyIteratorsSkipped(t *testing.T) {
	chained := Chain(Slice(nil), Slice(nil), Slice([]LRB{{Body: []byte{9}}}))
	v, ok, err := chained.Next()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, byte(9), v.Body[0])

	_, ok, err = chained.Next()
	require.NoError(t, err)
	assert.False(t, ok)
}
