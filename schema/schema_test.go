package schema_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/temperament/schema"
)

const equalJSON = `{
  "name": "Equal temperament",
  "description": "Standard twelve-tone equal temperament.",
  "octaveBaseName": "C",
  "referenceName": "A",
  "referencePitch": 440,
  "referenceOctave": 4,
  "notes": {
    "C": ["A", -900],
    "E": ["C", 400],
    "A": ["A", 0]
  }
}`

const equalYAML = `
name: Equal temperament
description: Standard twelve-tone equal temperament.
octaveBaseName: C
referenceName: A
referencePitch: 440
referenceOctave: 4
notes:
  C: [A, -900]
  E: [C, 400]
  A: [A, 0]
`

func TestDecodeJSON(t *testing.T) {
	d, err := schema.DecodeJSON([]byte(equalJSON))
	require.NoError(t, err)
	assert.Equal(t, "Equal temperament", d.Name)
	assert.Equal(t, "Standard twelve-tone equal temperament.", d.Description)
	assert.Empty(t, d.Source)
	assert.Equal(t, "C", d.OctaveBaseName)
	assert.Equal(t, "A", d.ReferenceName)
	assert.Equal(t, 440.0, d.ReferencePitch)
	assert.Equal(t, 4, d.ReferenceOctave)
	assert.Equal(t, map[string]schema.NoteDefinition{
		"C": {Base: "A", Cents: -900},
		"E": {Base: "C", Cents: 400},
		"A": {Base: "A", Cents: 0},
	}, d.Notes)
}

func TestDecodeYAMLMatchesJSON(t *testing.T) {
	fromJSON, err := schema.Decode([]byte(equalJSON), schema.JSON)
	require.NoError(t, err)
	fromYAML, err := schema.Decode([]byte(equalYAML), schema.YAML)
	require.NoError(t, err)
	assert.Equal(t, fromJSON, fromYAML)
}

func TestDecodeRejectsInvalidDocuments(t *testing.T) {
	cases := map[string]string{
		"missing everything":  `{"name": "No notes"}`,
		"notes not pairs":     `{"name":"x","octaveBaseName":"C","referenceName":"A","referencePitch":440,"referenceOctave":4,"notes":{"A":"A","C":"C"}}`,
		"pair too long":       `{"name":"x","octaveBaseName":"C","referenceName":"A","referencePitch":440,"referenceOctave":4,"notes":{"A":["A",0,1]}}`,
		"base not string":     `{"name":"x","octaveBaseName":"C","referenceName":"A","referencePitch":440,"referenceOctave":4,"notes":{"A":[1,0]}}`,
		"cents not number":    `{"name":"x","octaveBaseName":"C","referenceName":"A","referencePitch":440,"referenceOctave":4,"notes":{"A":["A","0"]}}`,
		"empty notes":         `{"name":"x","octaveBaseName":"C","referenceName":"A","referencePitch":440,"referenceOctave":4,"notes":{}}`,
		"zero pitch":          `{"name":"x","octaveBaseName":"C","referenceName":"A","referencePitch":0,"referenceOctave":4,"notes":{"A":["A",0]}}`,
		"negative pitch":      `{"name":"x","octaveBaseName":"C","referenceName":"A","referencePitch":-440,"referenceOctave":4,"notes":{"A":["A",0]}}`,
		"fractional octave":   `{"name":"x","octaveBaseName":"C","referenceName":"A","referencePitch":440,"referenceOctave":4.5,"notes":{"A":["A",0]}}`,
		"pitch wrong type":    `{"name":"x","octaveBaseName":"C","referenceName":"A","referencePitch":"440","referenceOctave":4,"notes":{"A":["A",0]}}`,
		"syntax error":        `{"name":`,
		"empty reference":     `{"name":"x","octaveBaseName":"C","referenceName":"","referencePitch":440,"referenceOctave":4,"notes":{"A":["A",0]}}`,
		"missing octave base": `{"name":"x","referenceName":"A","referencePitch":440,"referenceOctave":4,"notes":{"A":["A",0]}}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := schema.DecodeJSON([]byte(doc))
			assert.ErrorIs(t, err, schema.ErrInvalidDescriptor)
		})
	}
}

func TestDecodeYAMLRejectsInvalidDocuments(t *testing.T) {
	cases := map[string]string{
		"scalar definition": "name: x\noctaveBaseName: C\nreferenceName: A\nreferencePitch: 440\nreferenceOctave: 4\nnotes:\n  A: A\n",
		"numeric base":      "name: x\noctaveBaseName: C\nreferenceName: A\nreferencePitch: 440\nreferenceOctave: 4\nnotes:\n  A: [1, 0]\n",
		"text cents":        "name: x\noctaveBaseName: C\nreferenceName: A\nreferencePitch: 440\nreferenceOctave: 4\nnotes:\n  A: [A, zero]\n",
		"missing notes":     "name: x\noctaveBaseName: C\nreferenceName: A\nreferencePitch: 440\nreferenceOctave: 4\n",
		"fractional octave": "name: x\noctaveBaseName: C\nreferenceName: A\nreferencePitch: 440\nreferenceOctave: 4.5\nnotes:\n  A: [A, 0]\n",
		"nan cents":         "name: x\noctaveBaseName: C\nreferenceName: A\nreferencePitch: 440\nreferenceOctave: 4\nnotes:\n  A: [A, .nan]\n",
		"infinite pitch":    "name: x\noctaveBaseName: C\nreferenceName: A\nreferencePitch: .inf\nreferenceOctave: 4\nnotes:\n  A: [A, 0]\n",
		"empty base":        "name: x\noctaveBaseName: C\nreferenceName: A\nreferencePitch: 440\nreferenceOctave: 4\nnotes:\n  A: ['', 0]\n",
		"not a mapping":     "- A\n- C\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := schema.DecodeYAML([]byte(doc))
			assert.ErrorIs(t, err, schema.ErrInvalidDescriptor)
		})
	}
}

func TestDecodeIntegralOctaveAsFloat(t *testing.T) {
	d, err := schema.DecodeJSON([]byte(`{"name":"x","octaveBaseName":"C","referenceName":"A","referencePitch":440,"referenceOctave":4.0,"notes":{"A":["A",0]}}`))
	require.NoError(t, err)
	assert.Equal(t, 4, d.ReferenceOctave)

	d, err = schema.DecodeYAML([]byte("name: x\noctaveBaseName: C\nreferenceName: A\nreferencePitch: 440\nreferenceOctave: -1.0\nnotes:\n  A: [A, 0]\n"))
	require.NoError(t, err)
	assert.Equal(t, -1, d.ReferenceOctave)
}

func TestDecodeReportsFailingLocation(t *testing.T) {
	_, err := schema.DecodeYAML([]byte("name: x\noctaveBaseName: C\nreferenceName: A\nreferencePitch: 440\nreferenceOctave: 4.5\nnotes:\n  A: [A, 0]\n"))
	require.ErrorIs(t, err, schema.ErrInvalidDescriptor)
	assert.ErrorContains(t, err, "/referenceOctave")
}

func TestMissingPropertiesAreNamed(t *testing.T) {
	_, err := schema.DecodeJSON([]byte(`{"name": "No notes"}`))
	require.Error(t, err)
	assert.ErrorContains(t, err, "octaveBaseName")
	assert.ErrorContains(t, err, "notes")
	assert.NotContains(t, err.Error(), "[name")
}

func TestDecodeNormalizesNoteNames(t *testing.T) {
	// "Ré" spelled with a combining acute accent.
	decomposed := "Re\u0301"
	doc := `{"name":"Solfège","octaveBaseName":"Do","referenceName":"La","referencePitch":440,"referenceOctave":4,
	  "notes":{"Do":["La",-900],"` + decomposed + `":["Do",200]}}`
	d, err := schema.DecodeJSON([]byte(doc))
	require.NoError(t, err)
	_, ok := d.Notes["R\u00e9"]
	assert.True(t, ok, "note names are stored in NFC form")

	dup := `{"name":"x","octaveBaseName":"Do","referenceName":"La","referencePitch":440,"referenceOctave":4,
	  "notes":{"R\u00e9":["La",0],"` + decomposed + `":["La",0]}}`
	_, err = schema.DecodeJSON([]byte(dup))
	assert.ErrorIs(t, err, schema.ErrInvalidDescriptor)
}

func TestValidate(t *testing.T) {
	valid := &schema.Descriptor{
		Name: "x", OctaveBaseName: "C", ReferenceName: "A", ReferencePitch: 440, ReferenceOctave: 4,
		Notes: map[string]schema.NoteDefinition{"A": {Base: "A", Cents: 0}},
	}
	require.NoError(t, schema.Validate(valid))

	assert.ErrorIs(t, schema.Validate(nil), schema.ErrInvalidDescriptor)

	bad := valid.Clone()
	bad.ReferencePitch = math.Inf(1)
	assert.ErrorIs(t, schema.Validate(bad), schema.ErrInvalidDescriptor)

	bad = valid.Clone()
	bad.Notes["B"] = schema.NoteDefinition{Base: "A", Cents: math.NaN()}
	bad.ReferencePitch = math.Inf(-1)
	err := schema.Validate(bad)
	require.ErrorIs(t, err, schema.ErrInvalidDescriptor)
	assert.ErrorContains(t, err, `notes["B"] offset must be finite`)
	assert.ErrorContains(t, err, "referencePitch must be finite")

	bad = valid.Clone()
	bad.Notes["B"] = schema.NoteDefinition{Base: "", Cents: 100}
	err = schema.Validate(bad)
	require.ErrorIs(t, err, schema.ErrInvalidDescriptor)
	assert.ErrorContains(t, err, "/notes/B/0")

	for name, mutate := range map[string]func(d *schema.Descriptor){
		"empty name":      func(d *schema.Descriptor) { d.Name = "" },
		"empty reference": func(d *schema.Descriptor) { d.ReferenceName = "" },
		"empty note name": func(d *schema.Descriptor) { d.Notes[""] = schema.NoteDefinition{Base: "A", Cents: 0} },
		"zero pitch":      func(d *schema.Descriptor) { d.ReferencePitch = 0 },
		"no notes":        func(d *schema.Descriptor) { d.Notes = nil },
	} {
		bad = valid.Clone()
		mutate(bad)
		assert.ErrorIs(t, schema.Validate(bad), schema.ErrInvalidDescriptor, name)
	}

	// Clone is deep.
	assert.Len(t, valid.Notes, 1)
}

func TestEncodeRoundTrip(t *testing.T) {
	d, err := schema.DecodeJSON([]byte(equalJSON))
	require.NoError(t, err)

	for _, format := range []schema.Format{schema.JSON, schema.YAML} {
		t.Run(format.String(), func(t *testing.T) {
			out, err := schema.Encode(d, format)
			require.NoError(t, err)
			back, err := schema.Decode(out, format)
			require.NoError(t, err)
			assert.Equal(t, d, back)
		})
	}
}

func TestEncodeShapes(t *testing.T) {
	d := &schema.Descriptor{
		Name: "x", OctaveBaseName: "C", ReferenceName: "A", ReferencePitch: 440, ReferenceOctave: 4,
		Notes: map[string]schema.NoteDefinition{"C": {Base: "A", Cents: -889.8}},
	}
	out, err := schema.EncodeJSON(d)
	require.NoError(t, err)
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &raw))
	assert.Equal(t, []interface{}{"A", -889.8}, raw["notes"].(map[string]interface{})["C"])
	assert.NotContains(t, raw, "description", "empty metadata is omitted")

	y, err := schema.EncodeYAML(d)
	require.NoError(t, err)
	assert.Contains(t, string(y), "C: [A, -889.8]")
}

func TestFormats(t *testing.T) {
	f, err := schema.FormatFromPath("temperaments/equal.json")
	require.NoError(t, err)
	assert.Equal(t, schema.JSON, f)
	f, err = schema.FormatFromPath("meantone.YML")
	require.NoError(t, err)
	assert.Equal(t, schema.YAML, f)
	_, err = schema.FormatFromPath("README")
	assert.ErrorIs(t, err, schema.ErrUnknownFormat)
	_, err = schema.ParseFormat("toml")
	assert.ErrorIs(t, err, schema.ErrUnknownFormat)
	_, err = schema.Decode([]byte(equalJSON), schema.Format(7))
	assert.ErrorIs(t, err, schema.ErrUnknownFormat)
	assert.Equal(t, "Format(7)", schema.Format(7).String())
}

func TestJSONSchema(t *testing.T) {
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(schema.JSONSchema(), &doc))
	assert.Equal(t, "Temperament", doc["title"])
	assert.ElementsMatch(t,
		[]interface{}{"name", "octaveBaseName", "referencePitch", "referenceName", "referenceOctave", "notes"},
		doc["required"])

	a := schema.JSONSchema()
	a[0] = 'x'
	assert.Equal(t, byte('{'), schema.JSONSchema()[0], "JSONSchema returns a copy")
}
