// Package panels holds the top banner's visual regions: the primary instructions
// slot and the lanes, next-maneuver and status panels.
//
// Every panel separates its own opt-in visibility from the transient hidden flag
// that transitions toggle, so fading the auxiliary panels back in restores only
// the ones that wanted to be shown.
package panels
