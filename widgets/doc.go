// Package widgets contains dumb terminal render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (pane chrome, stacks, grids, filled blocks)
//
// Not allowed here:
// - knowledge of views, records or the page tree (see internal/render)
package widgets
