// Package loop runs the game: the per-tick system pipeline, the phase
// hooks, and the terminal frontend.
package loop

import (
	"bufio"
	"errors"
	"io"
	"time"

	"github.com/tomz197/asteroids-ufo/internal/draw"
	"github.com/tomz197/asteroids-ufo/internal/input"
	"github.com/tomz197/asteroids-ufo/internal/loop/config"
)

// ErrIdle is returned by Run when no key was pressed for RunOptions.IdleTimeout.
var ErrIdle = errors.New("player idle")

// RunOptions configures the terminal frontend.
type RunOptions struct {
	TermSize    draw.TermSizeFunc // defaults to the size of os.Stdout
	IdleTimeout time.Duration     // zero disables the idle check
	Done        <-chan struct{}   // closing it ends the loop
}

// Run drives g with the standard Input → Update → Draw cycle until the
// player quits, the input ends, or opts.Done is closed. The high score is
// saved on the way out.
func Run(r *bufio.Reader, w io.Writer, g *Game, opts RunOptions) error {
	termSize := opts.TermSize
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}
	stream := input.StartStream(r)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)
	defer g.Close()

	termWidth, termHeight, _ := termSize()
	canvas := draw.NewScaledCanvas(termWidth, termHeight, g.cfg.WorldWidth, g.cfg.WorldHeight)
	cw := draw.NewChunkWriter(w)

	lastTime := time.Now()
	lastInput := lastTime

	for {
		frameStart := time.Now()
		delta := frameStart.Sub(lastTime)
		lastTime = frameStart

		// ===== INPUT PHASE =====
		in := input.ReadInput(stream)
		if in.Quit || stream.Closed() {
			break
		}
		if in != (input.Input{}) {
			lastInput = frameStart
		}
		if opts.IdleTimeout > 0 && frameStart.Sub(lastInput) > opts.IdleTimeout {
			draw.ClearScreen(w)
			return ErrIdle
		}
		select {
		case <-opts.Done:
			draw.ClearScreen(w)
			return nil
		default:
		}

		// ===== UPDATE PHASE =====
		if tw, th, err := termSize(); err == nil {
			canvas.Resize(tw, th)
		}
		g.Tick(delta, in)

		// ===== DRAW PHASE =====
		if err := drawFrame(g, canvas, cw); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < config.TargetFrameTime {
			time.Sleep(config.TargetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}
