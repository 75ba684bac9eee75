package app

import (
	"fmt"

	"github.com/Faultbox/meshease/internal/animation"
	"github.com/Faultbox/meshease/internal/easing"
)

// Action is a discrete control-surface command, used by front-ends that
// have no sliders.
type Action int

const (
	ActionNone Action = iota
	ActionGo
	ActionToggleMesh
	ActionElastic
	ActionCircular
	ActionExponential
	ActionBack
	ActionToggleCrazy
	ActionMagnitudeUp
	ActionMagnitudeDown
	ActionOffsetUp
	ActionOffsetDown
	ActionDurationUp
	ActionDurationDown
	// ActionCapture saves the scene view; the front-end performs it.
	ActionCapture
	ActionQuit
)

// Step sizes for the incremental actions.
const (
	MagnitudeStep = 10
	OffsetStep    = 0.5
	DurationStep  = 0.1
)

var actionNames = map[Action]string{
	ActionNone:          "none",
	ActionGo:            "go",
	ActionToggleMesh:    "toggle-mesh",
	ActionElastic:       "elastic",
	ActionCircular:      "circular",
	ActionExponential:   "exponential",
	ActionBack:          "back",
	ActionToggleCrazy:   "toggle-crazy",
	ActionMagnitudeUp:   "magnitude-up",
	ActionMagnitudeDown: "magnitude-down",
	ActionOffsetUp:      "offset-up",
	ActionOffsetDown:    "offset-down",
	ActionDurationUp:    "duration-up",
	ActionDurationDown:  "duration-down",
	ActionCapture:       "capture",
	ActionQuit:          "quit",
}

func (a Action) String() string {
	if s, ok := actionNames[a]; ok {
		return s
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Do applies one action. Adjusted values are clamped to the control ranges.
// It reports false for ActionQuit so the caller can stop its loop.
func (a *App) Do(act Action) bool {
	c := a.controls
	switch act {
	case ActionGo:
		a.Go()
		return true
	case ActionQuit:
		return false
	case ActionToggleMesh:
		if c.Mesh == animation.Monkey {
			c.Mesh = animation.Helix
		} else {
			c.Mesh = animation.Monkey
		}
	case ActionElastic:
		c.Easing = easing.Elastic
	case ActionCircular:
		c.Easing = easing.Circular
	case ActionExponential:
		c.Easing = easing.Exponential
	case ActionBack:
		c.Easing = easing.Back
	case ActionToggleCrazy:
		c.Crazy = !c.Crazy
	case ActionMagnitudeUp:
		c.Magnitude += MagnitudeStep
	case ActionMagnitudeDown:
		c.Magnitude -= MagnitudeStep
	case ActionOffsetUp:
		c.Offset += OffsetStep
	case ActionOffsetDown:
		c.Offset -= OffsetStep
	case ActionDurationUp:
		c.Duration += DurationStep
	case ActionDurationDown:
		c.Duration -= DurationStep
	default:
		return true
	}
	a.SetControls(c.Clamp())
	return true
}
