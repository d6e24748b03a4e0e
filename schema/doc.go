// Package schema is the boundary between temperament documents and the Go
// types the rest of the module works with.
//
// A document looks like this (JSON; YAML uses the same field names):
//
//	{
//	  "name": "Equal temperament",
//	  "octaveBaseName": "C",
//	  "referenceName": "A",
//	  "referencePitch": 440,
//	  "referenceOctave": 4,
//	  "notes": {
//	    "C": ["A", -900],
//	    "E": ["C", 400]
//	  }
//	}
//
// Decode, DecodeJSON and DecodeYAML validate the document against the
// embedded JSON Schema (see JSONSchema), so missing properties, wrongly
// typed values and a non-integer referenceOctave are rejected in either
// format. Note names are then normalized to Unicode NFC. Validate applies
// the same schema to a Descriptor built in Go. Every failure wraps
// ErrInvalidDescriptor. Encode renders a Descriptor back, with note
// definitions as [base, cents] pairs.
//
// Note names are otherwise opaque: display markers such as "{sharp}" are
// kept verbatim (see package notation).
package schema
