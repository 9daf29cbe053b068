package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveRoomIDSymmetry(t *testing.T) {
	pairs := [][2]int64{
		{1, 2},
		{2, 10},
		{1710000000000, 1710000000001},
		{42, 7},
	}
	for _, pair := range pairs {
		ab, err := DeriveRoomID(pair[0], pair[1])
		require.NoError(t, err)
		ba, err := DeriveRoomID(pair[1], pair[0])
		require.NoError(t, err)
		assert.Equal(t, ab, ba)
	}
}

func TestDeriveRoomIDNumericOrder(t *testing.T) {
	// numeric order, not lexical: 2 sorts before 10
	id, err := DeriveRoomID(10, 2)
	require.NoError(t, err)
	assert.Equal(t, "2_10", id)
}

func TestDeriveRoomIDDeterministic(t *testing.T) {
	first, err := DeriveRoomID(5, 9)
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		again, err := DeriveRoomID(5, 9)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestDeriveRoomIDRejectsMissingAndSelf(t *testing.T) {
	_, err := DeriveRoomID(0, 2)
	assert.Error(t, err)

	_, err = DeriveRoomID(1, 0)
	assert.Error(t, err)

	_, err = DeriveRoomID(3, 3)
	assert.Error(t, err)
}
