// Package input drains the SDL2 event queue into records the frame
// loop consumes, and tracks held keys and mouse buttons across frames.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Kind discriminates Event records.
type Kind int

const (
	None Kind = iota
	Quit
	WindowResize
	KeyDown
	KeyUp
	MouseMove
	MouseDown
	MouseUp
	Wheel
)

// Event is one processed SDL event.
type Event struct {
	Kind   Kind
	Key    sdl.Scancode
	Width  int
	Height int
	MouseX int
	MouseY int
	DeltaX int // relative mouse motion
	DeltaY int
	WheelY float32
	Button uint8
}

// Input polls SDL once per frame and keeps the held state of keys and
// mouse buttons between frames.
type Input struct {
	events  []Event
	held    map[sdl.Scancode]bool
	buttons map[uint8]bool
}

// New returns an empty input tracker.
func New() *Input {
	return &Input{
		held:    make(map[sdl.Scancode]bool),
		buttons: make(map[uint8]bool),
	}
}

// Update drains the SDL event queue. It returns true when the window
// was asked to close.
func (in *Input) Update() bool {
	in.events = in.events[:0]

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch e := ev.(type) {
		case *sdl.QuitEvent:
			in.events = append(in.events, Event{Kind: Quit})
			return true
		case *sdl.WindowEvent:
			in.window(e)
		case *sdl.KeyboardEvent:
			in.keyboard(e)
		case *sdl.MouseMotionEvent:
			in.motion(e)
		case *sdl.MouseButtonEvent:
			in.button(e)
		case *sdl.MouseWheelEvent:
			in.wheel(e)
		}
	}
	return false
}

func (in *Input) window(e *sdl.WindowEvent) {
	if e.Event != sdl.WINDOWEVENT_RESIZED {
		return
	}
	in.events = append(in.events, Event{
		Kind:   WindowResize,
		Width:  int(e.Data1),
		Height: int(e.Data2),
	})
}

func (in *Input) keyboard(e *sdl.KeyboardEvent) {
	key := e.Keysym.Scancode
	switch e.Type {
	case sdl.KEYDOWN:
		in.held[key] = true
		// Repeats only matter for held-state movement, which the map
		// already covers.
		if e.Repeat == 0 {
			in.events = append(in.events, Event{Kind: KeyDown, Key: key})
		}
	case sdl.KEYUP:
		delete(in.held, key)
		in.events = append(in.events, Event{Kind: KeyUp, Key: key})
	}
}

func (in *Input) motion(e *sdl.MouseMotionEvent) {
	in.events = append(in.events, Event{
		Kind:   MouseMove,
		MouseX: int(e.X),
		MouseY: int(e.Y),
		DeltaX: int(e.XRel),
		DeltaY: int(e.YRel),
	})
}

func (in *Input) button(e *sdl.MouseButtonEvent) {
	kind := MouseUp
	if e.Type == sdl.MOUSEBUTTONDOWN {
		kind = MouseDown
		in.buttons[e.Button] = true
	} else {
		delete(in.buttons, e.Button)
	}
	in.events = append(in.events, Event{
		Kind:   kind,
		MouseX: int(e.X),
		MouseY: int(e.Y),
		Button: e.Button,
	})
}

func (in *Input) wheel(e *sdl.MouseWheelEvent) {
	in.events = append(in.events, Event{Kind: Wheel, WheelY: float32(e.Y)})
}

// Events returns the records drained by the last Update. The slice is
// reused on the next call.
func (in *Input) Events() []Event {
	return in.events
}

// IsKeyHeld reports whether the key is currently down.
func (in *Input) IsKeyHeld(scancode sdl.Scancode) bool {
	return in.held[scancode]
}

// IsButtonHeld reports whether the mouse button is currently down.
func (in *Input) IsButtonHeld(button uint8) bool {
	return in.buttons[button]
}
