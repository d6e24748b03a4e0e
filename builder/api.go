// SPDX-License-Identifier: MIT
// Package: temperament/builder
//
// api.go - Build orchestrator and the Constructor type.

package builder

import (
	"fmt"

	"github.com/katalvlaran/temperament/schema"
)

// Constructor adds note definitions to d using the resolved configuration.
// Constructors validate their parameters and return sentinel errors.
type Constructor func(d *schema.Descriptor, cfg builderConfig) error

// Build creates a descriptor from bopts, applies all constructors in order
// and validates the result. Constructor errors are wrapped with
// "builder: Build: %w".
//
// Build does not resolve the definitions; pass the result to
// temperament.New for that.
func Build(bopts []BuilderOption, cons ...Constructor) (*schema.Descriptor, error) {
	cfg := newBuilderConfig(bopts...)
	d := &schema.Descriptor{
		Name:            cfg.name,
		Description:     cfg.description,
		Source:          cfg.source,
		OctaveBaseName:  cfg.octaveBaseName,
		ReferenceName:   cfg.referenceName,
		ReferencePitch:  cfg.referencePitch,
		ReferenceOctave: cfg.referenceOctave,
		Notes:           make(map[string]schema.NoteDefinition),
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("builder: Build: nil constructor at index %d", i)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("builder: Build: %w", err)
		}
	}

	if err := schema.Validate(d); err != nil {
		return nil, err
	}
	return d, nil
}
