// Package main provides a one-shot CLI that loads a deck definition
// file and prints the computed probabilities and tournament figures.
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"

	"github.com/tcgtools/topdeck/internal/engine/analysis"
	"github.com/tcgtools/topdeck/internal/engine/deck"
	"github.com/tcgtools/topdeck/internal/engine/prob"
)

func main() {
	deckPath := flag.String("deck", "", "path to a deck definition YAML file")
	goingFirst := flag.Bool("first", true, "compute the timeline for the going-first seat")
	flag.Parse()

	if *deckPath == "" {
		log.Fatal("missing required flag: -deck")
	}

	def, err := deck.LoadFile(*deckPath)
	if err != nil {
		log.Fatalf("loading deck definition: %v", err)
	}

	format, known := deck.FormatFor(def.Format)
	if !known {
		fmt.Printf("format %q not recognized, using custom preset\n", def.Format)
	}

	name := def.Name
	if name == "" {
		name = *deckPath
	}
	fmt.Printf("%s: %d cards, %d categories (%d filler), format %s\n",
		name, def.Deck.Size, len(def.Deck.Categories), def.Deck.FillerCount(), format.Tag)

	baseline := format.OpeningDraws(*goingFirst)
	fmt.Printf("\nTimeline (opening hand %d cards):\n", baseline)
	points := prob.Timeline(def.Deck, def.Conditions, def.Mulligan, baseline)

	names := make([]string, 0, len(def.Conditions))
	for _, c := range def.Conditions {
		names = append(names, c.Name)
	}
	sort.Strings(names)

	for _, pt := range points {
		fmt.Printf("  +%2d (%2d cards)  EV %6.4f", pt.Step, pt.Draws, pt.ExpectedValue)
		for _, n := range names {
			fmt.Printf("  %s %6.2f%%", n, pt.Probabilities[n]*100)
		}
		fmt.Println()
	}

	result := analysis.Run(def)
	a := result.Analysis

	fmt.Printf("\nMatch:\n")
	fmt.Printf("  game 1            %6.2f%%\n", a.GameOne*100)
	fmt.Printf("  game 2 after win  %6.2f%%\n", a.GameTwoAfterWin*100)
	fmt.Printf("  game 2 after loss %6.2f%%\n", a.GameTwoAfterLoss*100)
	fmt.Printf("  game 3            %6.2f%%\n", a.GameThree*100)
	fmt.Printf("  match win         %6.2f%%\n", a.MatchWin*100)
	fmt.Printf("  consistency       %6.2f%% (post-side %6.2f%%)\n",
		a.MatchConsistency*100, a.PostSideConsistency*100)
	fmt.Printf("  velocity drop     %6.2f%% (alert: %s)\n", a.VelocityDrop*100, a.BrickAlert)

	fmt.Printf("\nTournament (%d rounds, cut at %d wins):\n",
		def.Tournament.Rounds, def.Tournament.TopCutWins)
	for w, p := range a.RoundsDist {
		fmt.Printf("  %d-%d  %6.2f%%\n", w, def.Tournament.Rounds-w, p*100)
	}
	fmt.Printf("  top cut      %6.2f%%\n", a.TopCut*100)
	fmt.Printf("  expected     %.2f wins / %.2f losses\n", a.ExpectedWins, a.ExpectedLosses)
}
