// compile.go
//
// Build a 5-letter word-list CSV out of raw dictionary dumps.

package main

import (
	"flag"

	"github.com/rs/zerolog/log"

	"github.com/nrg63/wordle-solver/internal/config"
	"github.com/nrg63/wordle-solver/internal/words"
)

func runCompile(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("compile", flag.ContinueOnError)
	dir := fs.String("dir", ".", "directory holding raw dictionary files")
	match := fs.String("match", "english-words", "substring a file name must contain")
	out := fs.String("out", "wordlist_5.csv", "output word-list CSV")
	if err := fs.Parse(args); err != nil {
		return err
	}

	n, err := words.Compile(*dir, *match, *out)
	if err != nil {
		return err
	}
	log.Info().Int("words", n).Str("dir", *dir).Str("out", *out).Msg("word list compiled")
	return nil
}
