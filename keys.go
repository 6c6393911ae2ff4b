package main

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/katistix/feedback/internal/flow"
)

// --- KEY BINDINGS ---

type keyMap struct {
	Select  key.Binding
	NextCtl key.Binding
	PrevCtl key.Binding
	Good    key.Binding
	Bad     key.Binding
	Submit  key.Binding
	Close   key.Binding
	Copy    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Select:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		NextCtl: key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab/→", "next")),
		PrevCtl: key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("shift+tab/←", "prev")),
		Good:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "good")),
		Bad:     key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bad")),
		Submit:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
		Close:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Copy:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy response")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// screenKeys is the help.KeyMap for a single screen.
type screenKeys []key.Binding

func (k screenKeys) ShortHelp() []key.Binding  { return k }
func (k screenKeys) FullHelp() [][]key.Binding { return [][]key.Binding{k} }

// forScreen lists the bindings that do something in s.
func (k keyMap) forScreen(s flow.State, canCopy bool) help.KeyMap {
	switch s {
	case flow.Welcome:
		return screenKeys{k.Select, k.Quit}
	case flow.Question:
		return screenKeys{k.Good, k.Bad, k.NextCtl, k.Select, k.Close}
	case flow.Form:
		return screenKeys{k.Submit, k.NextCtl, k.Close}
	case flow.Thanks:
		if canCopy {
			return screenKeys{k.Copy, k.Close}
		}
		return screenKeys{k.Close}
	default:
		return screenKeys{}
	}
}
