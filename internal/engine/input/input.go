// Package input turns SDL2 events into control actions and camera drags
// for the keyboard front-end.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/meshease/internal/app"
)

// EventType classifies a processed event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventAction
	EventDragStart
	EventDrag
	EventDragEnd
)

// Event is one processed input event.
type Event struct {
	Type   EventType
	Action app.Action
	Width  int
	Height int
	DX, DY float32
}

// Bindings maps keys to actions.
type Bindings map[sdl.Scancode]app.Action

// DefaultBindings returns the standard keyboard layout.
func DefaultBindings() Bindings {
	return Bindings{
		sdl.SCANCODE_G:            app.ActionGo,
		sdl.SCANCODE_SPACE:        app.ActionGo,
		sdl.SCANCODE_M:            app.ActionToggleMesh,
		sdl.SCANCODE_1:            app.ActionElastic,
		sdl.SCANCODE_2:            app.ActionCircular,
		sdl.SCANCODE_3:            app.ActionExponential,
		sdl.SCANCODE_4:            app.ActionBack,
		sdl.SCANCODE_C:            app.ActionToggleCrazy,
		sdl.SCANCODE_UP:           app.ActionMagnitudeUp,
		sdl.SCANCODE_DOWN:         app.ActionMagnitudeDown,
		sdl.SCANCODE_RIGHT:        app.ActionOffsetUp,
		sdl.SCANCODE_LEFT:         app.ActionOffsetDown,
		sdl.SCANCODE_RIGHTBRACKET: app.ActionDurationUp,
		sdl.SCANCODE_LEFTBRACKET:  app.ActionDurationDown,
		sdl.SCANCODE_P:            app.ActionCapture,
		sdl.SCANCODE_ESCAPE:       app.ActionQuit,
	}
}

// Input polls SDL events.
type Input struct {
	bindings Bindings
	events   []Event
	dragging bool
}

// New creates an input handler using bindings.
func New(bindings Bindings) *Input {
	return &Input{
		bindings: bindings,
		events:   make([]Event, 0, 16),
	}
}

// Update polls pending SDL events. It returns true when the window was
// closed.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
				continue
			}
			if act, ok := i.bindings[e.Keysym.Scancode]; ok {
				i.events = append(i.events, Event{Type: EventAction, Action: act})
			}

		case *sdl.MouseButtonEvent:
			if e.Button != sdl.BUTTON_LEFT {
				continue
			}
			if e.Type == sdl.MOUSEBUTTONDOWN {
				i.dragging = true
				i.events = append(i.events, Event{Type: EventDragStart})
			} else if e.Type == sdl.MOUSEBUTTONUP {
				i.dragging = false
				i.events = append(i.events, Event{Type: EventDragEnd})
			}

		case *sdl.MouseMotionEvent:
			if i.dragging {
				i.events = append(i.events, Event{
					Type: EventDrag,
					DX:   float32(e.XRel),
					DY:   float32(e.YRel),
				})
			}
		}
	}
	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}
