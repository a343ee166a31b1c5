package preview

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"time"

	"vista/internal/core"
	"vista/internal/scene"
)

// EncodeFrame returns f as PNG bytes.
func EncodeFrame(f *core.Frame) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, f.RGBA()); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Streamer renders frames at a fixed rate and broadcasts them on a hub.
type Streamer struct {
	Hub       *Hub
	Control   *scene.Controller
	Evaluator *scene.Evaluator
	Size      core.Size
	Rate      int
}

// Run streams until ctx is cancelled. Frames are only rendered while at
// least one client is connected; the clock keeps running regardless.
func (s *Streamer) Run(ctx context.Context) error {
	rate := s.Rate
	if rate <= 0 {
		rate = 10
	}
	frame := core.NewFrame(s.Size.W, s.Size.H)
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		s.Control.Advance(1 / float64(rate))
		if s.Hub.Clients() == 0 {
			continue
		}
		if err := s.Step(ctx, frame); err != nil {
			return err
		}
	}
}

// Step renders one frame at the controller's current state and broadcasts
// it.
func (s *Streamer) Step(ctx context.Context, frame *core.Frame) error {
	if err := s.Evaluator.Render(ctx, s.Control.Params(frame.Size()), frame); err != nil {
		return fmt.Errorf("render frame: %w", err)
	}
	data, err := EncodeFrame(frame)
	if err != nil {
		return err
	}
	s.Hub.Broadcast(data)
	return nil
}
