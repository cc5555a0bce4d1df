package graphics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoopStopsWhenWindowCloses(t *testing.T) {
	frames := 0
	loop(context.Background(), func() bool { return frames == 3 }, func() { frames++ })
	assert.Equal(t, 3, frames)
}

func TestLoopStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	frames := 0
	loop(ctx, func() bool { return false }, func() {
		frames++
		if frames == 2 {
			cancel()
		}
	})
	assert.Equal(t, 2, frames, "no frame runs after cancellation")
}

func TestLoopCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	frames := 0
	loop(ctx, func() bool { return false }, func() { frames++ })
	assert.Zero(t, frames)
}
