package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime/pprof"
	"time"

	xwfill "crosswarped.com/xwfill"
	"crosswarped.com/xwfill/internal/wordlist"
	"crosswarped.com/xwfill/pkg/puzzle"
)

func main() {
	structureFile := flag.String("structure", "", "The file describing the grid structure ('_' marks open cells)")
	wordsFile := flag.String("words", "", "The file to load words from")
	excludedFile := flag.String("excluded", "", "The file to load excluded words from")
	output := flag.String("output", "", "Optional PNG file to save the solved grid to")
	seed := flag.Uint64("seed", 0, "Seed for tie-break shuffling; 0 solves deterministically")

	timeout := flag.Duration("timeout", 1*time.Minute, "The timeout for the solver")

	profile := flag.Bool("profile", false, "Profile the solver")
	profileFile := flag.String("profile-file", "cpu.pprof", "The file to write the CPU profile to")
	memoryProfileFile := flag.String("memory-profile-file", "mem.pprof", "The file to write the memory profile to")

	flag.Parse()

	if *structureFile == "" || *wordsFile == "" {
		fmt.Println("Both -structure and -words are required")
		os.Exit(1)
	}

	ctx := context.Background()

	structure, err := puzzle.LoadStructure(*structureFile)
	if err != nil {
		fmt.Println("Error loading structure:", err)
		os.Exit(1)
	}

	words, err := wordlist.Load(ctx, *wordsFile)
	if err != nil {
		fmt.Println("Error loading words from file:", err)
		os.Exit(1)
	}

	var excludedWords []string
	if *excludedFile != "" {
		if excludedWords, err = wordlist.Load(ctx, *excludedFile); err != nil {
			fmt.Println("Error loading excluded words from file:", err)
			os.Exit(1)
		}
	}

	if words, err = wordlist.Normalize(words, excludedWords); err != nil {
		fmt.Println("Error normalizing words:", err)
		os.Exit(1)
	}
	fmt.Println("Words:", len(words))

	var mf *os.File
	if *profile {
		f, err := os.Create(*profileFile)
		if err != nil {
			fmt.Println("Error creating profile file:", err)
			os.Exit(1)
		}
		defer f.Close()

		mf, err = os.Create(*memoryProfileFile)
		if err != nil {
			fmt.Println("Error creating memory profile file:", err)
			os.Exit(1)
		}
		defer mf.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Println("Error starting CPU profile:", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewPCG(*seed, *seed))
	}

	crossword := puzzle.New(structure, words)
	solver := xwfill.NewSolver(crossword, rng)

	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	assignment, err := solver.Solve(ctx)
	if errors.Is(err, xwfill.ErrNoSolution) {
		fmt.Println("No solution.")
		os.Exit(1)
	}
	if err != nil {
		fmt.Println("Error solving:", err)
		os.Exit(1)
	}

	fmt.Println(xwfill.Render(crossword, assignment))

	if *output != "" {
		if err := xwfill.SaveImage(crossword, assignment, *output); err != nil {
			fmt.Println("Error saving image:", err)
			os.Exit(1)
		}
	}

	if mf != nil {
		pprof.WriteHeapProfile(mf)
	}
}
