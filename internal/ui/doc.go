// Package ui contains the Bubble Tea program that lets a user walk a menu
// tree from the keyboard.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry.
//   - Key presses are classified by keyMap into state.Command values; the
//     model never interprets raw keys beyond that. The command is applied to
//     the state.Navigator, and a selection or quit ends the program.
//   - Window size messages only affect layout.
//
// Rendering:
//   - Model.View windows the current children with state.VisibleWindow and
//     hands a Frame to a Renderer. The inline renderer draws compact rows
//     below the prompt; the full-screen renderer adds a breadcrumb header and
//     is meant for the alternate screen.
package ui
