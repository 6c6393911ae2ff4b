package flow

// transitions lists every pair that changes state. Anything missing,
// including every pair starting from Closed, maps to itself.
var transitions = map[State]map[EventKind]State{
	Welcome: {
		Next: Question,
	},
	Question: {
		Good:  Thanks,
		Bad:   Form,
		Close: Closed,
	},
	Form: {
		Submit: Thanks,
		Close:  Closed,
	},
	Thanks: {
		Close: Closed,
	},
}

// Transition returns the state that follows s when e is applied.
func Transition(s State, e Event) State {
	if next, ok := transitions[s][e.Kind]; ok {
		return next
	}
	return s
}
