// Package sampler selects the frame indices captured into the grid: a
// sorted, duplicate-free uniform sample that avoids the head and tail of
// the video (intros, credits, fade-outs).
package sampler

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

// EdgeMargin is the number of frames excluded at each end of the video.
// Indices are drawn from [EdgeMargin, total-EdgeMargin).
const EdgeMargin = 723

// fixedSeed makes repeat runs pick the identical frame set when shuffle is
// disabled.
const fixedSeed = 23

// ErrInsufficientFrames is returned when the video is too short to yield
// the requested number of distinct indices outside the edge margins.
var ErrInsufficientFrames = errors.New("not enough frames outside the edge margins")

// New returns the random source used for sampling: seeded with a fixed
// constant when shuffle is false (deterministic runs), or with fresh
// entropy when shuffle is true.
func New(shuffle bool) *rand.Rand {
	if shuffle {
		return rand.New(rand.NewSource(rand.Int63()))
	}
	return rand.New(rand.NewSource(fixedSeed))
}

// Sample draws n distinct frame indices from [EdgeMargin, total-EdgeMargin)
// using r, and returns them sorted ascending. Fails when the usable range
// holds fewer than n frames.
func Sample(r *rand.Rand, total int64, n int) ([]int64, error) {
	usable := total - 2*EdgeMargin
	if int64(n) > usable {
		return nil, fmt.Errorf("%w: need %d of %d usable (total %d)", ErrInsufficientFrames, n, max64(usable, 0), total)
	}

	// Floyd's sampling: each iteration adds exactly one new element, so the
	// result is a uniform n-subset without materializing the whole range.
	picked := make(map[int64]struct{}, n)
	for v := usable - int64(n); v < usable; v++ {
		j := r.Int63n(v + 1)
		if _, taken := picked[j]; taken {
			picked[v] = struct{}{}
		} else {
			picked[j] = struct{}{}
		}
	}

	out := make([]int64, 0, n)
	for v := range picked {
		out = append(out, EdgeMargin+v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
