// Package scene holds the two animated targets, gates their loading and
// switches between them.
package scene

import (
	"fmt"

	"github.com/Faultbox/meshease/internal/animation"
)

// LoadState tracks which targets have finished loading. It only moves
// forward.
type LoadState int

const (
	Loading LoadState = iota
	ReadyMonkey
	ReadyHelix
	ReadyBoth
)

func (s LoadState) String() string {
	switch s {
	case Loading:
		return "Loading"
	case ReadyMonkey:
		return "ReadyMonkey"
	case ReadyHelix:
		return "ReadyHelix"
	case ReadyBoth:
		return "ReadyBoth"
	}
	return fmt.Sprintf("LoadState(%d)", int(s))
}

// Has reports whether kind has loaded.
func (s LoadState) Has(kind animation.MeshKind) bool {
	switch kind {
	case animation.Monkey:
		return s == ReadyMonkey || s == ReadyBoth
	case animation.Helix:
		return s == ReadyHelix || s == ReadyBoth
	}
	return false
}

// Any reports whether at least one target has loaded.
func (s LoadState) Any() bool {
	return s != Loading
}

// Loaded returns the state after kind finishes loading, and whether that
// transition entered ReadyBoth. Reporting a kind twice changes nothing.
func (s LoadState) Loaded(kind animation.MeshKind) (next LoadState, enteredBoth bool) {
	if s.Has(kind) {
		return s, false
	}
	switch {
	case s == Loading && kind == animation.Monkey:
		return ReadyMonkey, false
	case s == Loading && kind == animation.Helix:
		return ReadyHelix, false
	case s == ReadyMonkey && kind == animation.Helix,
		s == ReadyHelix && kind == animation.Monkey:
		return ReadyBoth, true
	}
	return s, false
}
