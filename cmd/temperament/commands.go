package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/temperament/builder"
	"github.com/katalvlaran/temperament/core"
	"github.com/katalvlaran/temperament/dfs"
	"github.com/katalvlaran/temperament/notation"
	"github.com/katalvlaran/temperament/resolve"
	"github.com/katalvlaran/temperament/schema"
	"github.com/katalvlaran/temperament/temperament"
	"github.com/katalvlaran/temperament/temperaments"
)

type command func(cfg *config, args []string, stdout, stderr io.Writer) error

var commands = map[string]command{
	"list":     listCmd,
	"notes":    notesCmd,
	"pitch":    pitchCmd,
	"identify": identifyCmd,
	"export":   exportCmd,
	"schema":   schemaCmd,
	"check":    checkCmd,
	"generate": generateCmd,
}

func errUnknownCommand(name string) error {
	return fmt.Errorf("unknown command %q", name)
}

// descriptor decodes the document selected by the global flags.
func (cfg *config) descriptor() (*schema.Descriptor, error) {
	if cfg.file == "" {
		return temperaments.Descriptor(cfg.builtin)
	}
	format, err := schema.FormatFromPath(cfg.file)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(cfg.file)
	if err != nil {
		return nil, err
	}
	d, err := schema.Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.file, err)
	}
	return d, nil
}

func (cfg *config) resolveOptions() []resolve.Option {
	return []resolve.Option{resolve.WithTolerance(cfg.tolerance)}
}

// load builds the temperament selected by the global flags.
func (cfg *config) load() (*temperament.Temperament, error) {
	d, err := cfg.descriptor()
	if err != nil {
		return nil, err
	}
	tm, err := temperament.New(*d, temperament.WithResolveOptions(cfg.resolveOptions()...))
	if err != nil {
		if cfg.file != "" {
			return nil, fmt.Errorf("%s: %w", cfg.file, err)
		}
		return nil, err
	}

	if cfg.pitch != 0 {
		if err := tm.SetReferencePitch(cfg.pitch); err != nil {
			return nil, err
		}
	}
	return tm, nil
}

// noteName maps user input to a note of tm. Input is NFC-normalized, and
// accidental tags are expanded when the literal spelling is not a note.
func noteName(tm *temperament.Temperament, input string) string {
	offsets := tm.Offsets()
	name := notation.Normalize(input)
	if _, ok := offsets[name]; ok {
		return name
	}
	if pretty := notation.Normalize(notation.Prettify(input)); pretty != name {
		if _, ok := offsets[pretty]; ok {
			return pretty
		}
	}
	return name
}

func hz(pitch float64) string {
	return humanize.SIWithDigits(pitch, 3, "Hz")
}

func subFlags(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

func listCmd(_ *config, args []string, stdout, stderr io.Writer) error {
	if len(args) != 0 {
		return fmt.Errorf("list: unexpected arguments %q", args)
	}
	w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	for _, name := range temperaments.Names() {
		d, err := temperaments.Descriptor(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\n", name, d.Name)
	}
	return w.Flush()
}

func notesCmd(cfg *config, args []string, stdout, stderr io.Writer) error {
	fs := subFlags("notes", stderr)
	radius := fs.Int("radius", 0, "octaves to show on each side of the reference octave")
	if err := fs.Parse(args); err != nil {
		return err
	}
	tm, err := cfg.load()
	if err != nil {
		return err
	}
	octaves, err := tm.OctaveRange(*radius)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s (%s%d = %s)\n", tm.Name(), notation.Prettify(tm.ReferenceName()), tm.ReferenceOctave(), hz(tm.ReferencePitch()))
	fmt.Fprint(w, "NOTE\tCENTS")
	for _, o := range octaves {
		fmt.Fprintf(w, "\t%d", o)
	}
	fmt.Fprintln(w)

	for _, note := range tm.NoteNames() {
		off, err := tm.Offset(note, tm.ReferenceOctave())
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%+.3f", notation.Prettify(note), off)
		for _, o := range octaves {
			p, err := tm.Pitch(note, o)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "\t%s", hz(p))
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

func pitchCmd(cfg *config, args []string, stdout, stderr io.Writer) error {
	if len(args) != 2 {
		return fmt.Errorf("pitch: want NOTE OCTAVE, got %d arguments", len(args))
	}
	octave, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("pitch: bad octave %q: %w", args[1], err)
	}
	tm, err := cfg.load()
	if err != nil {
		return err
	}
	note := noteName(tm, args[0])
	p, err := tm.Pitch(note, octave)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "%s%d\t%.4f Hz\t%s\n", notation.Prettify(note), octave, p, hz(p))
	return err
}

func identifyCmd(cfg *config, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errors.New("identify: want at least one frequency")
	}
	pitches := make([]float64, 0, len(args))
	for _, a := range args {
		p, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Errorf("identify: bad frequency %q: %w", a, err)
		}
		pitches = append(pitches, p)
	}
	tm, err := cfg.load()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	for _, p := range pitches {
		note, cents, err := tm.NoteNameFromPitch(p)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%+.2f cents\n", hz(p), notation.Prettify(note), cents)
	}
	return w.Flush()
}

func exportCmd(cfg *config, args []string, stdout, stderr io.Writer) error {
	fs := subFlags("export", stderr)
	formatName := fs.String("format", "json", "output format: json or yaml")
	if err := fs.Parse(args); err != nil {
		return err
	}
	format, err := schema.ParseFormat(*formatName)
	if err != nil {
		return err
	}
	tm, err := cfg.load()
	if err != nil {
		return err
	}
	d := tm.Descriptor()
	out, err := schema.Encode(&d, format)
	if err != nil {
		return err
	}
	_, err = stdout.Write(out)
	return err
}

func schemaCmd(_ *config, args []string, stdout, stderr io.Writer) error {
	if len(args) != 0 {
		return fmt.Errorf("schema: unexpected arguments %q", args)
	}
	_, err := stdout.Write(schema.JSONSchema())
	return err
}

// checkCmd reports the structure of the definitions: connected groups of
// notes and the comma of every definition cycle. It fails when the
// definitions do not resolve.
func checkCmd(cfg *config, args []string, stdout, stderr io.Writer) error {
	if len(args) != 0 {
		return fmt.Errorf("check: unexpected arguments %q", args)
	}
	d, err := cfg.descriptor()
	if err != nil {
		return err
	}
	if err := schema.Validate(d); err != nil {
		return err
	}
	defs := make(map[string]core.Definition, len(d.Notes))
	for name, def := range d.Notes {
		defs[name] = core.Definition{Base: def.Base, Cents: def.Cents}
	}
	g, err := core.FromDefinitions(defs)
	if err != nil {
		return err
	}

	comps, err := dfs.Components(g)
	if err != nil {
		return err
	}
	cycles, err := dfs.Cycles(g)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	stats := g.Stats()
	fmt.Fprintf(w, "%s: %d notes, %d definitions, %d groups\n", d.Name, stats.NoteCount, stats.EdgeCount, len(comps))
	for _, comp := range comps {
		pretty := make([]string, len(comp))
		for i, n := range comp {
			pretty[i] = notation.Prettify(n)
		}
		fmt.Fprintf(w, "group\t%s\n", strings.Join(pretty, " "))
	}
	for _, c := range cycles {
		status := "ok"
		if !c.Consistent(cfg.tolerance) {
			status = "conflict"
		}
		pretty := make([]string, len(c.Notes))
		for i, n := range c.Notes {
			pretty[i] = notation.Prettify(n)
		}
		fmt.Fprintf(w, "cycle\t%s\t%+.3f cents\t%s\n", strings.Join(pretty, " -> "), c.Comma, status)
	}

	_, resErr := temperament.New(*d, temperament.WithResolveOptions(cfg.resolveOptions()...))
	if resErr == nil {
		fmt.Fprintln(w, "resolves\tok")
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return resErr
}

// middleC is the default reference pitch for numbered equal divisions,
// whose reference note "0" sits at C4.
const middleC = 261.6256

// generateCmd writes the document of a regular temperament: a twelve-note
// chain of fifths or an equal division of the octave.
func generateCmd(cfg *config, args []string, stdout, stderr io.Writer) error {
	fs := subFlags("generate", stderr)
	fifth := fs.Float64("fifth", 0, "fifth size in cents for a chain of fifths from E♭ to G♯")
	edo := fs.Int("edo", 0, "number of equal divisions of the octave")
	name := fs.String("name", "", "temperament name")
	formatName := fs.String("format", "json", "output format: json or yaml")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if (*fifth != 0) == (*edo != 0) {
		return errors.New("generate: give exactly one of -fifth and -edo")
	}
	format, err := schema.ParseFormat(*formatName)
	if err != nil {
		return err
	}

	var (
		opts []builder.BuilderOption
		con  builder.Constructor
	)
	switch {
	case *fifth != 0:
		opts = []builder.BuilderOption{
			builder.WithFifthsIDs(),
			builder.WithName(fmt.Sprintf("Chain of %g-cent fifths", *fifth)),
			builder.WithReference("A", pitchOr(cfg.pitch, 440), 4),
		}
		con = builder.Chain(len(builder.Fifths), *fifth)
	case *edo == len(builder.Chromatic):
		opts = []builder.BuilderOption{
			builder.WithChromaticIDs(),
			builder.WithName("12-EDO"),
			builder.WithReference("A", pitchOr(cfg.pitch, 440), 4),
		}
		con = builder.EqualDivision(*edo)
	default:
		opts = []builder.BuilderOption{
			builder.WithName(fmt.Sprintf("%d-EDO", *edo)),
			builder.WithReference("0", pitchOr(cfg.pitch, middleC), 4),
			builder.WithOctaveBase("0"),
		}
		con = builder.EqualDivision(*edo)
	}
	if *name != "" {
		opts = append(opts, builder.WithName(*name))
	}

	d, err := builder.Build(opts, con)
	if err != nil {
		return err
	}
	if _, err := temperament.New(*d, temperament.WithResolveOptions(cfg.resolveOptions()...)); err != nil {
		return err
	}
	out, err := schema.Encode(d, format)
	if err != nil {
		return err
	}
	_, err = stdout.Write(out)
	return err
}

func pitchOr(pitch, fallback float64) float64 {
	if pitch != 0 {
		return pitch
	}
	return fallback
}
