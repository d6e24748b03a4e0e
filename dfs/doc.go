// Package dfs walks a core.Graph depth-first to expose its structure:
// connected groups of notes and the independent cycles of definitions.
//
// What:
//
//   - Components: partitions the notes into groups linked by definitions in
//     either direction. Notes outside the reference note's group can never
//     receive an offset.
//   - Cycles: one cycle per definition that closes a loop in the
//     depth-first spanning forest. Every loop in the graph is a combination
//     of these, so the definitions are consistent exactly when each one
//     sums to a whole number of octaves. A note carries at most one
//     definition, so each component holds at most one cycle.
//
// Each Cycle carries the signed sum of cents accumulated around it and its
// comma: the sum reduced by IEEE remainder into [-600, 600]. A comma of 0
// means the loop closes on an exact octave; resolve.Resolve rejects a
// graph with any comma larger than its tolerance.
//
// Determinism:
//
//   - Roots are taken in ascending name order and neighbors in core.Steps
//     order, so results are stable for a given graph.
//
// Errors:
//
//   - ErrGraphNil   graph pointer is nil
//   - context errors when the walk is canceled
//   - hook errors   propagated from OnVisit
//
// Complexity:
//
//   - Components: Time O(V+E), Memory O(V)
//   - Cycles:     Time O(V+E+C·L), Memory O(V+L_max)
//     (C = number of cycles, L = cycle length)
package dfs
