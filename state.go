package main

import "github.com/katistix/feedback/internal/flow"

// --- SCREEN CONTROLS ---

// control is a focusable element on a screen.
type control int

const (
	controlNext control = iota
	controlGood
	controlBad
	controlInput
	controlSubmit
	controlClose
)

func (c control) String() string {
	return [...]string{
		"Next", "Good", "Bad", "", "Submit", "×",
	}[c]
}

// isButton reports whether enter activates c.
func (c control) isButton() bool { return c != controlInput }

// controlsFor returns the focus order for the screen shown in s.
// Welcome has no close control: the user must proceed.
func controlsFor(s flow.State) []control {
	switch s {
	case flow.Welcome:
		return []control{controlNext}
	case flow.Question:
		return []control{controlGood, controlBad, controlClose}
	case flow.Form:
		return []control{controlInput, controlSubmit, controlClose}
	case flow.Thanks:
		return []control{controlClose}
	default:
		return nil
	}
}

// eventFor translates activating c into an event. text is the form value
// and only matters for Submit.
func eventFor(c control, text string) (flow.Event, bool) {
	switch c {
	case controlNext:
		return flow.NextEvent(), true
	case controlGood:
		return flow.GoodEvent(), true
	case controlBad:
		return flow.BadEvent(), true
	case controlSubmit:
		return flow.SubmitEvent(text), true
	case controlClose:
		return flow.CloseEvent(), true
	default:
		return flow.Event{}, false
	}
}
