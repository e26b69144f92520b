// Package tuitest drives the wordtiles binary inside a pseudo terminal and
// records what it paints.
package tuitest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/creack/pty"
)

const (
	defaultCols    = 80
	defaultRows    = 24
	defaultTimeout = 5 * time.Second
)

// Step is one scripted input, written after Delay has elapsed.
type Step struct {
	Delay time.Duration
	Input []byte
}

// Config describes the program to spawn and the script to replay against it.
type Config struct {
	Command []string
	Dir     string
	Env     []string
	Width   int
	Height  int
	Steps   []Step
	Timeout time.Duration
}

// Run starts cfg.Command in a PTY, replays the steps and waits for the
// program to exit cleanly. The returned recording holds every byte painted.
func Run(ctx context.Context, cfg Config) (*Recording, error) {
	if len(cfg.Command) == 0 {
		return nil, errors.New("tuitest: command is required")
	}
	cols, rows := orDefault(cfg.Width, defaultCols), orDefault(cfg.Height, defaultRows)
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, cfg.Command[0], cfg.Command[1:]...)
	cmd.Dir = cfg.Dir
	cmd.Env = withTerm(append(os.Environ(), cfg.Env...))

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
	if err != nil {
		return nil, fmt.Errorf("tuitest: start program: %w", err)
	}
	defer func() { _ = ptmx.Close() }()

	var painted bytes.Buffer
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		responder := newTerminalResponder(ptmx)
		buf := make([]byte, 4096)
		for {
			n, readErr := ptmx.Read(buf)
			if n > 0 {
				responder.Process(buf[:n])
				painted.Write(buf[:n])
			}
			if readErr != nil {
				return
			}
		}
	}()

	for i, step := range cfg.Steps {
		if step.Delay > 0 {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("tuitest: step %d: %w", i, ctx.Err())
			case <-time.After(step.Delay):
			}
		}
		if len(step.Input) == 0 {
			continue
		}
		if _, err := ptmx.Write(step.Input); err != nil {
			return nil, fmt.Errorf("tuitest: step %d: write input: %w", i, err)
		}
	}

	exited := make(chan error, 1)
	go func() { exited <- cmd.Wait() }()
	select {
	case err := <-exited:
		if err != nil {
			return nil, fmt.Errorf("tuitest: program exited with error: %w", err)
		}
	case <-ctx.Done():
		return nil, fmt.Errorf("tuitest: timeout waiting for program exit: %w", ctx.Err())
	}

	// Closing the PTY unblocks the reader so it can finish draining.
	_ = ptmx.Close()
	<-drained
	return &Recording{Raw: painted.Bytes()}, nil
}

func orDefault(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}

func withTerm(env []string) []string {
	for _, entry := range env {
		if strings.HasPrefix(entry, "TERM=") {
			return env
		}
	}
	return append(env, "TERM=xterm-256color")
}

// KeyQuit asks wordtiles to exit.
var KeyQuit = []byte("q")

// X10 mouse button codes. Motion with the left button held sets bit 5.
const (
	mouseLeft    = 0
	mouseRelease = 3
	mouseMotion  = 32
)

// MousePress encodes a left-button press at the zero-based cell (x, y).
func MousePress(x, y int) []byte { return encodeMouse(mouseLeft, x, y) }

// MouseDrag encodes pointer motion with the left button held.
func MouseDrag(x, y int) []byte { return encodeMouse(mouseLeft|mouseMotion, x, y) }

// MouseRelease encodes a button release at (x, y).
func MouseRelease(x, y int) []byte { return encodeMouse(mouseRelease, x, y) }

// DragSteps returns the press, intermediate motion and release steps for a
// drag from one cell to another.
func DragSteps(fromX, fromY, toX, toY int, pause time.Duration) []Step {
	return []Step{
		{Input: MousePress(fromX, fromY)},
		{Delay: pause, Input: MouseDrag(toX, toY)},
		{Delay: pause, Input: MouseRelease(toX, toY)},
	}
}

func encodeMouse(button, x, y int) []byte {
	// X10 coordinates are one-based and offset by 32; clamp to one byte.
	enc := func(v int) byte {
		v += 33
		if v > 255 {
			v = 255
		}
		return byte(v)
	}
	return []byte{0x1b, '[', 'M', byte(32 + button), enc(x), enc(y)}
}
