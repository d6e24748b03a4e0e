package temperaments_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/temperament/schema"
	"github.com/katalvlaran/temperament/temperaments"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"equal", "pythagoreanD", "quarterCommaMeantone"}, temperaments.Names())
}

func TestDescriptor(t *testing.T) {
	for _, name := range temperaments.Names() {
		d, err := temperaments.Descriptor(name)
		require.NoError(t, err, name)
		assert.NoError(t, schema.Validate(d), name)
		assert.Len(t, d.Notes, 12, name)
		assert.Equal(t, "A", d.ReferenceName, name)
		assert.Equal(t, "C", d.OctaveBaseName, name)
	}

	// descriptors are independent copies
	a, err := temperaments.Descriptor("equal")
	require.NoError(t, err)
	a.Notes["X"] = schema.NoteDefinition{Base: "A"}
	b, err := temperaments.Descriptor("equal")
	require.NoError(t, err)
	assert.NotContains(t, b.Notes, "X")
}

func TestUnknown(t *testing.T) {
	_, err := temperaments.Raw("werckmeister")
	assert.ErrorIs(t, err, temperaments.ErrUnknownTemperament)
	_, err = temperaments.Descriptor("werckmeister")
	assert.ErrorIs(t, err, temperaments.ErrUnknownTemperament)
	_, err = temperaments.Load("../equal")
	assert.ErrorIs(t, err, temperaments.ErrUnknownTemperament)
}

func TestLoad_Pythagorean(t *testing.T) {
	tm, err := temperaments.Load("pythagoreanD")
	require.NoError(t, err)

	want := map[string]float64{
		"C": -905.865, "C♯": -792.18, "D": -701.955, "E♭": -611.73,
		"E": -498.045, "F": -407.82, "F♯": -294.135, "G": -203.91,
		"G♯": -90.225, "A": 0, "B♭": 90.225, "B": 203.91,
	}
	for note, off := range want {
		got, err := tm.Offset(note, 4)
		require.NoError(t, err)
		assert.InDelta(t, off, got, 1e-6, note)
	}
}
