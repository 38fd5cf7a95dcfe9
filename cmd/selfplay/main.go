package main

import (
	"flag"
	"log"

	"github.com/softfish"
)

var (
	seed     = flag.Int64("seed", 0, "random seed, 0 seeds from the clock")
	maxMoves = flag.Int("max_moves", 0, "move cap for the game, 0 means no cap")
	workers  = flag.Int("workers", 1, "goroutines scoring candidate moves")
	startFEN = flag.String("fen", "", "starting position in FEN, empty for the standard setup")
)

func main() {
	flag.Parse()

	conf := softfish.DefaultConfig()
	conf.Seed = *seed
	conf.MaxMoves = *maxMoves
	conf.Selector.Workers = *workers
	conf.StartFEN = *startFEN

	arena, err := softfish.MakeArena(conf, nil)
	if err != nil {
		log.Fatalf("error setting up self play: %s", err)
	}

	if _, err := arena.Play(); err != nil {
		log.Fatalf("error during self play: %s", err)
	}
}
