// Package core contains app-wide contracts and state orchestration.
//
// Allowed here:
// - the screen router state machine and the conversation descriptor
// - the Bubble Tea model that hosts pages, overlays and the navigation bar
// - message contracts, command and key registries
//
// Not allowed here:
// - concrete page/modal rendering implementations
// - low-level widget rendering primitives
package core
