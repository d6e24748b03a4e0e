// SPDX-License-Identifier: MIT
// Package: temperament/builder
//
// impl_chain.go - Chain, EqualDivision and Define constructors.
//
// Contract:
//   - Names come from cfg.idFn in index order 0..n-1.
//   - The reference note is defined against itself at 0 cents; every other
//     note is defined against its neighbor one step closer to it, so each
//     definition spans exactly one step.
//
// Complexity:
//   - Time: O(n). Space: O(n) for the name list.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/temperament/schema"
)

const (
	methodChain  = "Chain"
	methodDefine = "Define"
	minChainLen  = 1
)

// Chain returns a Constructor laying n notes along a chain of step cents:
// note i+1 lies step cents above note i.
func Chain(n int, step float64) Constructor {
	return func(d *schema.Descriptor, cfg builderConfig) error {
		if n < minChainLen {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainLen, ErrTooFewNotes)
		}
		if math.IsNaN(step) || math.IsInf(step, 0) {
			return fmt.Errorf("%s: step=%v: %w", methodChain, step, ErrInvalidStep)
		}

		names := make([]string, n)
		anchor := -1
		for i := range names {
			name, err := cfg.idFn(i)
			if err != nil {
				return fmt.Errorf("%s: n=%d: %w", methodChain, n, err)
			}
			names[i] = name
			if names[i] == cfg.referenceName && anchor < 0 {
				anchor = i
			}
		}
		if anchor < 0 {
			return fmt.Errorf("%s: %q: %w", methodChain, cfg.referenceName, ErrAnchorMissing)
		}

		for i, name := range names {
			var def schema.NoteDefinition
			switch {
			case i < anchor:
				def = schema.NoteDefinition{Base: names[i+1], Cents: -step}
			case i > anchor:
				def = schema.NoteDefinition{Base: names[i-1], Cents: step}
			default:
				def = schema.NoteDefinition{Base: name, Cents: 0}
			}
			if err := add(d, name, def); err != nil {
				return fmt.Errorf("%s: %w", methodChain, err)
			}
		}
		return nil
	}
}

// EqualDivision returns a Constructor dividing the octave into n equal
// steps.
func EqualDivision(n int) Constructor {
	if n < minChainLen {
		return func(*schema.Descriptor, builderConfig) error {
			return fmt.Errorf("EqualDivision: n=%d < min=%d: %w", n, minChainLen, ErrTooFewNotes)
		}
	}
	return Chain(n, 1200/float64(n))
}

// Define returns a Constructor adding the single definition name → base.
func Define(name, base string, cents float64) Constructor {
	return func(d *schema.Descriptor, _ builderConfig) error {
		if math.IsNaN(cents) || math.IsInf(cents, 0) {
			return fmt.Errorf("%s(%q): cents=%v: %w", methodDefine, name, cents, ErrInvalidStep)
		}
		if err := add(d, name, schema.NoteDefinition{Base: base, Cents: cents}); err != nil {
			return fmt.Errorf("%s: %w", methodDefine, err)
		}
		return nil
	}
}

func add(d *schema.Descriptor, name string, def schema.NoteDefinition) error {
	if _, exists := d.Notes[name]; exists {
		return fmt.Errorf("%q: %w", name, ErrDuplicateNote)
	}
	d.Notes[name] = def
	return nil
}
