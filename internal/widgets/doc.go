// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (cards, stacks, gauges, charts, popup overlay compositor)
//
// Not allowed here:
// - key handling, navigation, or screen state
package widgets
