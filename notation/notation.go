// Package notation converts between the plain-text note spellings used in
// temperament documents and their display forms.
//
// Documents may spell accidentals with tags such as "{sharp}" so they can be
// typed on any keyboard. Note names stay opaque to the rest of the module;
// this package only rewrites them for display and for matching user input.
package notation

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Accidental tags and their display symbols.
var tags = []string{
	"{sharp}", "♯",
	"{flat}", "♭",
	"{natural}", "♮",
	"{double-sharp}", "𝄪",
	"{double-flat}", "𝄫",
	"{up}", "↑",
	"{down}", "↓",
}

var prettifier = strings.NewReplacer(tags...)

// Prettify replaces every known accidental tag in name with its symbol.
// Unknown tags are left as they are.
func Prettify(name string) string {
	return prettifier.Replace(name)
}

// Normalize returns name in Unicode NFC form, the form note names are
// stored in after decoding, so a name typed with combining marks matches.
func Normalize(name string) string {
	return norm.NFC.String(name)
}

// Tags returns the recognized accidental tags in declaration order.
func Tags() []string {
	out := make([]string, 0, len(tags)/2)
	for i := 0; i < len(tags); i += 2 {
		out = append(out, tags[i])
	}
	return out
}
