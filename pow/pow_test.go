package pow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidDigest(t *testing.T) {
	tests := []struct {
		digest     uint64
		difficulty int
		valid      bool
	}{
		{1000000, 6, true},
		{51000000, 6, true},
		{1230000, 6, false},
		{1000001, 6, false},
		{10, 1, true},
		{11, 1, false},
		// Renderings shorter than the difficulty only pass when they
		// are all zeros, so only digest 0 gets a free ride.
		{0, 6, true},
		{10, 6, false},
		{999, 6, false},
		// Difficulty zero accepts everything.
		{123456789, 0, true},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.valid, IsValidDigest(tc.digest, tc.difficulty),
			"digest %d, difficulty %d", tc.digest, tc.difficulty)
	}
}

func TestDigestIsDeterministic(t *testing.T) {
	assert.Equal(t, Digest(0, 42), Digest(0, 42))
	assert.NotEqual(t, Digest(0, 42), Digest(0, 43))
	assert.NotEqual(t, Digest(0, 42), Digest(1, 42))
}

func TestSearchFindsSmallestNonce(t *testing.T) {
	const difficulty = 2
	p, err := Search(context.Background(), 0, difficulty)
	require.NoError(t, err)

	assert.Equal(t, Digest(0, p.Nonce), p.Digest)
	assert.True(t, IsValidDigest(p.Digest, difficulty))
	for nonce := uint64(0); nonce < p.Nonce; nonce++ {
		assert.False(t, IsValidDigest(Digest(0, nonce), difficulty),
			"nonce %d should not be valid before %d", nonce, p.Nonce)
	}
}

func TestSearchDifficultyZeroIsImmediate(t *testing.T) {
	p, err := Search(context.Background(), 17, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), p.Nonce)
}

func TestSearchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A difficulty this high is unsolvable in any reasonable time.
	_, err := Search(ctx, 0, 15)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearchAsyncDeliversResult(t *testing.T) {
	res := <-SearchAsync(context.Background(), 0, 2)
	require.NoError(t, res.Err)
	assert.True(t, IsValidDigest(res.Proof.Digest, 2))
}

func TestSearchAsyncCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	out := SearchAsync(ctx, 0, 15)
	cancel()

	res := <-out
	require.Error(t, res.Err)
	assert.ErrorIs(t, res.Err, context.Canceled)
}
