package temperament_test

import (
	"fmt"

	"github.com/katalvlaran/temperament/schema"
	"github.com/katalvlaran/temperament/temperament"
)

func ExampleTemperament_NoteNameFromPitch() {
	tm, err := temperament.New(schema.Descriptor{
		Name:            "Just major triad",
		ReferenceName:   "A",
		ReferencePitch:  440,
		ReferenceOctave: 4,
		OctaveBaseName:  "C",
		Notes: map[string]schema.NoteDefinition{
			"C": {Base: "A", Cents: -900},
			"E": {Base: "C", Cents: 386.3},
			"G": {Base: "C", Cents: 702},
		},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	pitch, _ := tm.Pitch("C", 5)
	fmt.Printf("C5 = %.3f Hz\n", pitch)

	note, cents, _ := tm.NoteNameFromPitch(330)
	fmt.Printf("330 Hz = %s %+.1f cents\n", note, cents)
	fmt.Println(tm.NoteNames())
	// Output:
	// C5 = 523.251 Hz
	// 330 Hz = E +15.7 cents
	// [C E G A]
}
