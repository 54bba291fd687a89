// Package input decodes raw terminal bytes into arcade controls.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report key repeats, so holds are inferred from recent presses.
const keyHoldDuration = 60 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit   bool
	Left   bool
	Right  bool
	Up     bool
	Down   bool
	Fire   bool
	Enter  bool
	Escape bool
	Number int // Digit pressed this frame, -1 if none
	Any    bool
}

// Direction returns the held movement as a unit step on each axis.
func (in Input) Direction() (dx, dy float64) {
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	return dx, dy
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit      time.Time
	left      time.Time
	right     time.Time
	up        time.Time
	down      time.Time
	fire      time.Time
	enter     time.Time
	escape    time.Time
	number    time.Time
	numberVal int
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch     chan byte
	state  keyState
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:    make(chan byte, 128),
		state: keyState{numberVal: -1},
	}
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

// Closed reports whether the underlying reader has hit EOF or an error.
func (s *Stream) Closed() bool {
	return s.closed
}

// ReadInput drains all available bytes from the stream (non-blocking) and
// returns the keys held as of now.
func ReadInput(s *Stream) Input {
	return readInputAt(s, time.Now())
}

func readInputAt(s *Stream, now time.Time) Input {
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b == '\x1b' && i+1 < len(buf) && buf[i+1] != '\x1b' {
			i = applyEscapeSequence(&s.state, buf, i, now)
			continue
		}
		applyByteToState(&s.state, b, now)
	}

	input := Input{
		Quit:   now.Sub(s.state.quit) < keyHoldDuration,
		Left:   now.Sub(s.state.left) < keyHoldDuration,
		Right:  now.Sub(s.state.right) < keyHoldDuration,
		Up:     now.Sub(s.state.up) < keyHoldDuration,
		Down:   now.Sub(s.state.down) < keyHoldDuration,
		Fire:   now.Sub(s.state.fire) < keyHoldDuration,
		Enter:  now.Sub(s.state.enter) < keyHoldDuration,
		Escape: now.Sub(s.state.escape) < keyHoldDuration,
		Number: -1,
		Any:    len(buf) > 0,
	}

	if now.Sub(s.state.number) < keyHoldDuration {
		input.Number = s.state.numberVal
	}

	return input
}

// ResetKeyInput forgets all held keys, so a key that started a game does not
// also act inside it.
func ResetKeyInput(s *Stream) {
	s.state = keyState{numberVal: -1}
}

// applyEscapeSequence consumes the escape sequence starting at buf[i] and
// returns the index of its last byte. Plain and application-mode arrows move;
// every other CSI or SS3 sequence is ignored. An ESC followed by an ordinary
// byte is an Alt chord: the ESC is dropped and the byte is handled as a key.
func applyEscapeSequence(state *keyState, buf []byte, i int, now time.Time) int {
	switch buf[i+1] {
	case '[':
		// CSI: parameter bytes 0x30-0x3F, intermediates 0x20-0x2F, final 0x40-0x7E.
		j := i + 2
		for j < len(buf) && buf[j] >= 0x20 && buf[j] <= 0x3F {
			j++
		}
		if j >= len(buf) {
			return len(buf) - 1 // Truncated sequence
		}
		if buf[j] < 0x40 || buf[j] > 0x7E {
			return j - 1 // Malformed; resume at the offending byte
		}
		if j == i+2 {
			applyArrow(state, buf[j], now)
		}
		return j
	case 'O':
		// SS3: a single final byte.
		if i+2 >= len(buf) {
			return len(buf) - 1
		}
		applyArrow(state, buf[i+2], now)
		return i + 2
	default:
		applyByteToState(state, buf[i+1], now)
		return i + 1
	}
}

// applyArrow records an arrow key from a sequence's final byte.
func applyArrow(state *keyState, final byte, now time.Time) {
	switch final {
	case 'A':
		state.up = now
	case 'B':
		state.down = now
	case 'C':
		state.right = now
	case 'D':
		state.left = now
	}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q':
		state.quit = now
	case 'a', 'A', 'h', 'H':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'k', 'K':
		state.up = now
	case 's', 'S', 'j', 'J':
		state.down = now
	case ' ', 'f', 'F':
		state.fire = now
	case '\n', '\r':
		state.enter = now
	case '\x1b':
		state.escape = now
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		state.number = now
		state.numberVal = int(b - '0')
	}
}
