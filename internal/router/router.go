// Package router keeps the TUI's screen stack. The bottom screen is the
// root (home); it is never popped.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/tizhi/internal/screen"
)

// Navigation messages. Screens return them from commands; the router
// handles them in Update before anything reaches the active screen.
type (
	// PushScreenMsg opens Screen on top of the current one.
	PushScreenMsg struct{ Screen screen.Screen }

	// PopScreenMsg closes the active screen.
	PopScreenMsg struct{}

	// ReplaceScreenMsg swaps the active screen for Screen without
	// changing the depth.
	ReplaceScreenMsg struct{ Screen screen.Screen }

	// PopToRootMsg closes everything above the root.
	PopToRootMsg struct{}
)

// Router manages a stack of screens.
type Router struct {
	stack []screen.Screen
}

// New creates a Router whose root is initial.
func New(initial screen.Screen) *Router {
	return &Router{stack: []screen.Screen{initial}}
}

func (r *Router) top() int {
	return len(r.stack) - 1
}

// Push opens s and returns its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop closes the active screen unless it is the root.
func (r *Router) Pop() tea.Cmd {
	if r.top() > 0 {
		r.stack = r.stack[:r.top()]
	}
	return nil
}

// Replace swaps the active screen for s and returns its Init command.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if r.top() < 0 {
		r.stack = append(r.stack, s)
	} else {
		r.stack[r.top()] = s
	}
	return s.Init()
}

// PopToRoot closes every screen above the root.
func (r *Router) PopToRoot() tea.Cmd {
	if r.top() > 0 {
		r.stack = r.stack[:1]
	}
	return nil
}

// Active returns the screen on top, or nil for an empty stack.
func (r *Router) Active() screen.Screen {
	if r.top() < 0 {
		return nil
	}
	return r.stack[r.top()]
}

// Depth returns the number of open screens.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update applies navigation messages and forwards everything else to the
// active screen, keeping whatever screen it returns.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	case PopToRootMsg:
		return r.PopToRoot()
	}

	active := r.Active()
	if active == nil {
		return nil
	}
	next, cmd := active.Update(msg)
	r.stack[r.top()] = next
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	if active := r.Active(); active != nil {
		return active.View(width, height)
	}
	return ""
}
