// play.go
//
// Interactive solving: the solver suggests a guess, the user types the
// feedback the real game showed (e.g. "BYGBB"), and the candidate list is
// narrowed until the puzzle is solved or the guess budget runs out.
//
// Input per round:
//   GGGGG        solved, done
//   five of GYB  feedback for the suggested guess
//   N            reject the suggestion (word not accepted by the game); it is
//                dropped from the dictionary and still costs a guess slot
//   q            quit

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/nrg63/wordle-solver/internal/config"
	"github.com/nrg63/wordle-solver/internal/entropy"
	"github.com/nrg63/wordle-solver/internal/game"
	"github.com/nrg63/wordle-solver/internal/solver"
	"github.com/nrg63/wordle-solver/internal/words"
)

func runPlay(cfg config.Config, args []string) error {
	ctx := context.Background()

	dict, err := loadDictionary(cfg)
	if err != nil {
		return err
	}
	freq, err := words.LoadFrequencies(cfg.FrequenciesFile)
	if err != nil {
		log.Warn().Err(err).Msg("word frequencies unavailable")
		freq = map[string]int{}
	}
	weights := loadWeights(cfg)

	scorer := entropy.NewScorer()
	table, err := loadOrComputeTable(ctx, cfg, scorer, scoreStore(cfg), dict)
	if err != nil {
		return err
	}

	sess := game.New("")
	remaining := dict
	in := bufio.NewReader(os.Stdin)

	for !sess.Finished {
		guess, err := solver.BestGuess(remaining, table, weights)
		if err != nil {
			return err
		}
		log.Debug().Str("guess", guess).Int("frequency", freq[guess]).
			Int("candidates", len(remaining)).Msg("suggesting")
		fmt.Printf("Try guessing: %s\n", guess)
		fmt.Print("Enter result (G/Y/B per letter), N to skip, q to quit: ")

		line, err := in.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		input := strings.ToUpper(strings.TrimSpace(line))

		switch {
		case input == "Q":
			return nil

		case input == "N":
			remaining = remove(remaining, guess)
			if len(remaining) == 0 {
				fmt.Println("No words left to suggest.")
				return nil
			}
			if err := sess.RecordExternal(guess, ""); err != nil {
				return err
			}

		case input == "GGGGG":
			fmt.Printf("Wordle solved! The word was %s.\n", guess)
			return nil

		default:
			fb, ok := parseFeedback(input)
			if !ok {
				fmt.Println("Please enter exactly 5 letters from G, Y, B.")
				continue
			}
			if err := sess.RecordExternal(guess, fb); err != nil {
				return err
			}
			remaining = solver.Filter(remaining, guess, fb)
			if len(remaining) == 0 {
				fmt.Println("No words left. Check the feedback you entered.")
				return nil
			}
			table, err = scorer.Scores(ctx, remaining, remaining, cfg.Parallelism)
			if err != nil {
				return err
			}
		}
	}

	fmt.Println("Out of guesses.")
	return nil
}

// parseFeedback validates a 5-letter G/Y/B string.
func parseFeedback(s string) (entropy.Pattern, bool) {
	if len(s) != entropy.WordLen {
		return "", false
	}
	for i := 0; i < len(s); i++ {
		if c := s[i]; c != entropy.Green && c != entropy.Yellow && c != entropy.Black {
			return "", false
		}
	}
	return entropy.Pattern(s), true
}

func remove(list []string, word string) []string {
	out := make([]string, 0, len(list))
	for _, w := range list {
		if w != word {
			out = append(out, w)
		}
	}
	return out
}
