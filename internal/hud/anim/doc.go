// Package anim runs the HUD's animated transitions on the bubbletea update loop.
//
// A Transition mutates panel state through a Scope, which turns assignments into
// time-based Property interpolations. The Sequencer hands back a tea.Cmd that
// delivers TransitionDoneMsg once the transition has settled; routing that message
// through Sequencer.Update runs the continuation, so completions are always
// asynchronous and always on the same loop that started them.
//
// Blocking transitions hold the Gate, which mirrors the single "interaction
// blocked" flag onto the host. The hold is released after the continuation runs,
// even if the continuation panics.
package anim
