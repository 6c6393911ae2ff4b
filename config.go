package main

import (
	"github.com/katistix/feedback/internal/config"
	"github.com/katistix/feedback/internal/flow"
)

// --- SCREEN COPY ---

// headerFor returns the heading of the screen shown in s.
func headerFor(s flow.State, c config.CopyConfig) string {
	switch s {
	case flow.Welcome:
		return c.Welcome
	case flow.Question:
		return c.Question
	case flow.Form:
		return c.Form
	case flow.Thanks:
		return c.Thanks
	default:
		return ""
	}
}
