// Command temperament inspects musical temperaments: it lists their notes,
// converts notes to frequencies, identifies the nearest note to a frequency,
// and exports temperament documents.
//
// Usage:
//
//	temperament [-file path | -builtin name] [-pitch hz] [-tolerance cents] <command> [args]
//
// Commands:
//
//	list                    bundled temperaments
//	notes [-radius n]       notes with offsets and pitches around the reference octave
//	pitch NOTE OCTAVE       frequency of a note
//	identify HZ...          nearest note to each frequency
//	export [-format f]      temperament document (json or yaml)
//	schema                  JSON Schema for temperament documents
//	check                   definition groups and cycle commas
//	generate [-fifth c | -edo n] [-name s] [-format f]
//	                        document of a regular temperament
package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/temperament/resolve"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("temperament: ")

	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}
}

// config holds the global flags shared by every command.
type config struct {
	file      string
	builtin   string
	pitch     float64
	tolerance float64
}

func run(args []string, stdout, stderr io.Writer) error {
	var cfg config
	fs := flag.NewFlagSet("temperament", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.file, "file", "", "temperament document to load (.json, .yaml or .yml)")
	fs.StringVar(&cfg.builtin, "builtin", "equal", "bundled temperament to load when -file is not set")
	fs.Float64Var(&cfg.pitch, "pitch", 0, "reference pitch in Hz (0 keeps the document's)")
	fs.Float64Var(&cfg.tolerance, "tolerance", resolve.DefaultTolerance, "congruence tolerance in cents for redundant definitions")
	fs.Usage = func() {
		io.WriteString(fs.Output(), "usage: temperament [flags] <list|notes|pitch|identify|export|schema|check|generate> [args]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("no command given")
	}

	cmd, ok := commands[fs.Arg(0)]
	if !ok {
		fs.Usage()
		return errUnknownCommand(fs.Arg(0))
	}
	return cmd(&cfg, fs.Args()[1:], stdout, stderr)
}
