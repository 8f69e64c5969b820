package session

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mvickers/rowtally/internal/dataset"
)

// Sample draws n distinct row keys from src without replacement, in
// random order. Use the result as a pagination sequence to label a
// subset of a large table.
func Sample(src dataset.Source, n int) ([]int, error) {
	return sample(src, n, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// SampleSeed is Sample with a fixed seed: the same seed and source
// yield the same keys in the same order on every run.
func SampleSeed(src dataset.Source, n int, seed int64) ([]int, error) {
	return sample(src, n, rand.New(rand.NewSource(seed)))
}

func sample(src dataset.Source, n int, rng *rand.Rand) ([]int, error) {
	keys := src.Keys()
	if n > len(keys) {
		return nil, fmt.Errorf("%w: %d > %d rows", ErrInvalidSampleSize, n, len(keys))
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleSize, n)
	}
	rng.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
	return keys[:n], nil
}
