// Package ui provides a small declarative component toolkit on top of Bubble Tea.
//
// Core abstractions:
//   - Node: a renderable element drawn with lipgloss; tappable nodes become bubblezone zones
//   - Component: a Node with validated, string-typed style accessors and a single tap handler
//   - Page: a screen with a content region, optional navigation bar and toolbar, and lifecycle hooks
//   - Navigator: a page stack with push, pop and switch, animated by Bubble Tea commands
//   - Modal, Dialog, Popover, AlertDialog: overlays presented outside the stack
//   - App: the composition root that adapts everything into a tea.Model
//
// Errors are *Error values carrying a Kind (validation, color, structure). Calls that
// skip invalid input return the error and also send it to a Reporter.
package ui
