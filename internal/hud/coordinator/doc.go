// Package coordinator arbitrates the top banner of the navigation HUD.
//
// A Coordinator owns the panel registry, the step list overlay and the preview
// controller, and turns navigation events and user gestures into panel state
// changes and animations. It never returns errors: requests that do not apply in
// the current state are dropped and logged.
//
// All methods must be called from the bubbletea update loop. Animations finish
// asynchronously; the tea.Cmd values returned by the operations deliver their
// completions back through Update.
//
// Usage:
//
//	c := coordinator.New(coordinator.DefaultOptions())
//	c.SetDelegate(&coordinator.Delegate{
//		DidSelect: func(leg, step int, cell steplist.Cell) tea.Cmd { ... },
//	})
//	c.Attach(host)
//	cmd := c.OnProgressUpdate(progress)
package coordinator
