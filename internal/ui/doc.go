// Package ui contains the Bubble Tea program that powers the picker.
// The Model type focuses on message orchestration, while dedicated helpers own
// navigation, input and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Key presses either edit the filter (internal/ui/input.go) or move between
//     groups and items (internal/ui/navigation.go).
//   - Enter resolves the highlighted item through the command bus. The
//     resolved launch spec comes back as a message, is stored on the model and
//     the program quits. Nothing is launched while the UI owns the terminal.
//
// State ownership:
//   - The active group, per-group cursors, viewport offsets and the shared
//     filter live in internal/ui/state.Selection. The catalog itself is never
//     modified.
package ui
