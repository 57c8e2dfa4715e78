// Package screens contains the concrete pages hosted by core.Model and the
// overlays drawn above them.
//
// Allowed here:
// - page implementations that satisfy core.Page (welcome, setup, chat, progress, premium)
// - overlay implementations that satisfy core.Screen (command palette)
// - page-specific presentation and interaction wiring
//
// Not allowed here:
// - the screen router and key registry ownership
// - storage access other than through the small interfaces pages declare
package screens
