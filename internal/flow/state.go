package flow

// State is the phase of the feedback conversation currently on screen.
type State int

const (
	Welcome State = iota
	Question
	Form
	Thanks
	Closed
)

// Initial is the state every new conversation starts in.
const Initial = Welcome

func (s State) String() string {
	if s < Welcome || s > Closed {
		return "unknown"
	}
	return [...]string{"welcome", "question", "form", "thanks", "closed"}[s]
}

// Terminal reports whether no event can move the conversation out of s.
func (s State) Terminal() bool { return s == Closed }

// Accepts reports whether k changes the state when sent in s.
func (s State) Accepts(k EventKind) bool {
	_, ok := transitions[s][k]
	return ok
}

// EventKind identifies a user intent.
type EventKind int

const (
	Next EventKind = iota
	Good
	Bad
	Submit
	Close
)

func (k EventKind) String() string {
	if k < Next || k > Close {
		return "unknown"
	}
	return [...]string{"next", "good", "bad", "submit", "close"}[k]
}

// Event is a user intent. Text is only set for Submit and never inspected here.
type Event struct {
	Kind EventKind
	Text string
}

func NextEvent() Event { return Event{Kind: Next} }
func GoodEvent() Event { return Event{Kind: Good} }
func BadEvent() Event { return Event{Kind: Bad} }
func CloseEvent() Event { return Event{Kind: Close} }
func SubmitEvent(text string) Event { return Event{Kind: Submit, Text: text} }
