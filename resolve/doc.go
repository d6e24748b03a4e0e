// Package resolve computes the offset table of a temperament: for every note
// named in a core.Graph, its distance in cents from the reference pitch.
//
// What
//
//   - Seed the table with {reference: 0} and a queue holding the reference.
//   - Dequeue notes in FIFO order and apply two deduction rules to each
//     incident definition (see core.Graph.Steps):
//   - Forward:  current = base + c  ⇒  base = current - c
//   - Backward: other = current + c ⇒  other = current + c
//   - A note reached for the first time is queued for further propagation.
//   - Every deduction is committed through a congruence check: a note that
//     already has an offset only accepts values differing from it by a whole
//     number of octaves (within DefaultTolerance, or WithTolerance).
//   - The definition a note was reached over is not walked back to its parent.
//   - After the queue drains, every defined note must have an offset, and so
//     must the octave base.
//   - Re-anchor: the octave base offset is reduced into (-1200, 0].
//   - Normalize: every offset is folded into [base, base+1200).
//
// Determinism
//
//	core.Graph.Steps lists incident definitions in insertion order, and
//	core.FromDefinitions inserts them in lexicographic order, so the deduction
//	order, the offending note named in errors, and Result.Order are
//	reproducible for a given document.
//
// Complexity (N = |Notes|, E = |Definitions|)
//
//   - Time:   O(N + E·log E)
//   - Memory: O(N)
//
// Usage
//
//	res, err := resolve.Resolve(g, "A", "C")
//	if err != nil {
//	    // one of ErrGraphNil, ErrOptionViolation, ErrConflictingDefinition,
//	    // ErrIndeterminatePitch, ErrUndefinedOctaveBase, ctx errors or hook errors
//	}
//
//	res, err = resolve.Resolve(
//	    g, "A", "C",
//	    resolve.WithContext(ctx),
//	    resolve.WithTolerance(0.01),
//	    resolve.WithOnEnqueue(func(name string, offset float64, depth int) { /* ... */ }),
//	    resolve.WithOnDefine(func(name string, offset float64) error { /* ... */ return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil               if the graph pointer is nil.
//   - ErrOptionViolation        if an Option is invalid (e.g. negative tolerance).
//   - ErrConflictingDefinition  if two deductions disagree modulo one octave.
//   - ErrIndeterminatePitch     if a defined note is disconnected from the reference.
//   - ErrUndefinedOctaveBase    if the octave base received no offset.
//   - Wrapped user-supplied hook errors from OnDefine.
package resolve
