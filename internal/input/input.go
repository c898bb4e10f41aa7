// Package input turns a raw terminal byte stream into per-frame key state.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key counts as held after its last byte.
// Terminals only send key repeats, never key-up events.
const keyHoldDuration = 30 * time.Millisecond

// Input is the key state for one frame.
type Input struct {
	Quit    bool
	Left    bool
	Right   bool
	Fire    bool
	Enter   bool
	Debug   bool
	Pressed []byte // raw bytes received this frame
}

// keyState tracks the last time each key was seen.
type keyState struct {
	quit  time.Time
	left  time.Time
	right time.Time
	fire  time.Time
	enter time.Time
	debug time.Time
}

// Stream delivers input bytes from a reader goroutine and keeps key state
// between frames.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads r until it fails and feeds
// the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

func newStream() *Stream {
	return &Stream{ch: make(chan byte, 128)}
}

// ReadInput drains the bytes received since the last frame without blocking
// and returns the resulting key state. Closed reports whether the reader
// has ended (e.g. the SSH session went away).
func ReadInput(s *Stream) (in Input, closed bool) {
	now := time.Now()
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	s.apply(buf, now)
	in = s.snapshot(now)
	in.Pressed = buf
	return in, closed
}

// ResetKeyInput forgets all held keys, so a key that ended one screen does
// not immediately trigger the next.
func ResetKeyInput(s *Stream) {
	if s == nil {
		return
	}
	s.state = keyState{}
}

// apply updates key timestamps from raw bytes, decoding arrow key
// escape sequences (ESC [ A..D).
func (s *Stream) apply(buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A': // Up
				s.state.fire = now
				i += 2
				continue
			case 'C': // Right
				s.state.right = now
				i += 2
				continue
			case 'D': // Left
				s.state.left = now
				i += 2
				continue
			case 'B': // Down, unused
				i += 2
				continue
			}
		}

		switch b {
		case 'q', 'Q', '\x03': // q or Ctrl+C
			s.state.quit = now
		case 'a', 'A', 'h', 'H':
			s.state.left = now
		case 'd', 'D', 'l', 'L':
			s.state.right = now
		case ' ', 'w', 'W', 'k', 'K':
			s.state.fire = now
		case '\n', '\r':
			s.state.enter = now
		case '`':
			s.state.debug = now
		}
	}
}

func (s *Stream) snapshot(now time.Time) Input {
	held := func(t time.Time) bool {
		return now.Sub(t) < keyHoldDuration
	}
	return Input{
		Quit:  held(s.state.quit),
		Left:  held(s.state.left),
		Right: held(s.state.right),
		Fire:  held(s.state.fire),
		Enter: held(s.state.enter),
		Debug: held(s.state.debug),
	}
}
