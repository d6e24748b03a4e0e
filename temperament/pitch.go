package temperament

import (
	"fmt"
	"math"

	"github.com/katalvlaran/temperament/resolve"
)

// ReferencePitch returns the current reference pitch in Hz.
func (t *Temperament) ReferencePitch() float64 {
	return math.Float64frombits(t.referencePitch.Load())
}

// SetReferencePitch changes the pitch of the reference note. Offsets are
// unaffected; every pitch derived afterwards scales proportionally.
func (t *Temperament) SetReferencePitch(pitch float64) error {
	if err := checkPitch(pitch); err != nil {
		return err
	}
	t.referencePitch.Store(math.Float64bits(pitch))
	return nil
}

// Offset returns the offset in cents of note in the given octave, relative
// to the reference note in the reference octave.
func (t *Temperament) Offset(note string, octave int) (float64, error) {
	off, ok := t.offsets[note]
	if !ok {
		return 0, unknownNote(note)
	}
	return off + float64(octave-t.referenceOctave)*OctaveSize, nil
}

// Pitch returns the frequency in Hz of note in the given octave.
func (t *Temperament) Pitch(note string, octave int) (float64, error) {
	off, err := t.Offset(note, octave)
	if err != nil {
		return 0, err
	}
	return t.ReferencePitch() * math.Exp2(off/OctaveSize), nil
}

// OctaveRange returns the octave numbers within radius of the reference
// octave, in ascending order.
func (t *Temperament) OctaveRange(radius int) ([]int, error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: octave radius must not be negative, got %d", ErrInvalidArgument, radius)
	}
	out := make([]int, 0, 2*radius+1)
	for o := t.referenceOctave - radius; o <= t.referenceOctave+radius; o++ {
		out = append(out, o)
	}
	return out, nil
}

// NoteNameFromPitch returns the note closest to pitch, ignoring octave, and
// the signed distance in cents from that note to pitch.
//
// The pitch is folded into the octave starting at the octave base and
// located among the sorted note offsets by binary search. When it lies
// exactly halfway between two notes the higher one is returned.
func (t *Temperament) NoteNameFromPitch(pitch float64) (string, float64, error) {
	if err := checkPitch(pitch); err != nil {
		return "", 0, err
	}
	raw := math.Log2(pitch/t.ReferencePitch()) * OctaveSize
	offset := resolve.Fold(raw, t.offsets[t.octaveBaseName])

	start, end := 0, len(t.noteNames)
	for end-start > 1 {
		mid := (start + end) / 2
		midOffset := t.offsets[t.noteNames[mid]]
		switch {
		case offset > midOffset:
			start = mid
		case offset < midOffset:
			end = mid
		default:
			return t.noteNames[mid], 0, nil
		}
	}

	startNote := t.noteNames[start]
	startDiff := offset - t.offsets[startNote]

	// Past the last note, the nearest candidate above is the first note one
	// octave up.
	var endNote string
	var endDiff float64
	if end == len(t.noteNames) {
		endNote = t.noteNames[0]
		endDiff = offset - (t.offsets[endNote] + OctaveSize)
	} else {
		endNote = t.noteNames[end]
		endDiff = offset - t.offsets[endNote]
	}

	if math.Abs(startDiff) < math.Abs(endDiff) {
		return startNote, startDiff, nil
	}
	return endNote, endDiff, nil
}

func checkPitch(pitch float64) error {
	if math.IsNaN(pitch) || math.IsInf(pitch, 0) || pitch <= 0 {
		return fmt.Errorf("%w: pitch must be a positive number, got %v", ErrInvalidArgument, pitch)
	}
	return nil
}
