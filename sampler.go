/*
sampler.go implements the demo sampler: a bounded random legal game played
from the default position, kept around because it exercises the legality
engine exhaustively rather than for any gameplay value of its own.
*/

package chego

import (
	"math/rand/v2"

	"github.com/schollz/progressbar/v3"
)

// SampleResult summarizes one played-out random game.
type SampleResult struct {
	Plies     int
	Final     Position
	Checkmate bool
	Stalled   bool // stopped because legal_moves() was empty without check
}

// PlaySample plays a bounded random legal game from the default position.
// Each ply picks a uniformly random entry from legal_moves() with a
// Rand seeded from cfg.Seed, and the game stops at cfg.MaxPlies, on
// checkmate, or when no legal move remains.
func PlaySample(cfg Config) SampleResult {
	pos := NewPosition()
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9E3779B97F4A7C15))

	for ply := range cfg.MaxPlies {
		moves := pos.LegalMoves()
		if len(moves) == 0 {
			mover := pos.SideToMove()
			return SampleResult{
				Plies:     ply,
				Final:     pos,
				Checkmate: pos.InCheck(mover),
				Stalled:   !pos.InCheck(mover),
			}
		}

		choice := moves[rng.IntN(len(moves))]
		pos.MakeMove(choice.I, choice.J, choice.K, choice.L)
	}

	return SampleResult{Plies: cfg.MaxPlies, Final: pos}
}

// PlaySampleWithProgress is the same as PlaySample but reports progress to
// stderr via a progress bar, one tick per ply, for use from the chego CLI's
// -sample flag.
func PlaySampleWithProgress(cfg Config) SampleResult {
	pos := NewPosition()
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9E3779B97F4A7C15))

	bar := progressbar.Default(int64(cfg.MaxPlies), "playing sample game")
	defer bar.Close()

	for ply := range cfg.MaxPlies {
		moves := pos.LegalMoves()
		if len(moves) == 0 {
			mover := pos.SideToMove()
			bar.Finish()
			return SampleResult{
				Plies:     ply,
				Final:     pos,
				Checkmate: pos.InCheck(mover),
				Stalled:   !pos.InCheck(mover),
			}
		}

		choice := moves[rng.IntN(len(moves))]
		pos.MakeMove(choice.I, choice.J, choice.K, choice.L)
		bar.Add(1)
	}

	return SampleResult{Plies: cfg.MaxPlies, Final: pos}
}
