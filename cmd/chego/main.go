// Command chego is the reference text front-end for the engine: it reads
// four whitespace-separated integers per line from standard input, applies
// them as a move, and re-renders the board. It is a thin driver over the
// chego package, not part of the engine itself.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Aj0SK/chego"
)

func main() {
	configPath := flag.String("config", "", "path to an optional YAML config file")
	sample := flag.Bool("sample", false, "play a bounded random legal game instead of reading stdin")
	ascii := flag.Bool("ascii", false, "render with ASCII letters instead of Unicode glyphs")
	flag.Parse()

	cfg, err := chego.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("chego: loading config: %v", err)
	}

	useASCII := *ascii || cfg.Glyphs == chego.GlyphsASCII

	if *sample {
		runSample(cfg, useASCII)
		return
	}

	runInteractive(cfg, useASCII)
}

func runSample(cfg chego.Config, ascii bool) {
	result := chego.PlaySampleWithProgress(cfg)
	fmt.Println(render(result.Final, ascii))

	switch {
	case result.Checkmate:
		fmt.Printf("stopped after %d plies: checkmate\n", result.Plies)
	case result.Stalled:
		fmt.Printf("stopped after %d plies: no legal move\n", result.Plies)
	default:
		fmt.Printf("stopped after %d plies: ply limit reached\n", result.Plies)
	}
}

func runInteractive(cfg chego.Config, ascii bool) {
	pos := chego.NewPosition()
	fmt.Println(render(pos, ascii))

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		var i, j, k, l int
		if _, err := fmt.Sscanf(scanner.Text(), "%d %d %d %d", &i, &j, &k, &l); err != nil {
			log.Printf("chego: could not parse move %q: %v", scanner.Text(), err)
			continue
		}

		if !isLegal(pos, i, j, k, l) {
			log.Printf("chego: move (%d,%d)->(%d,%d) is illegal", i, j, k, l)
			continue
		}

		// make_move asserts its preconditions rather than reporting them, and
		// does not roll back on a self-check rejection, so it is only ever
		// applied to a throwaway copy here and committed on success.
		next := pos
		if !next.MakeMove(i, j, k, l) {
			log.Printf("chego: move (%d,%d)->(%d,%d) is illegal", i, j, k, l)
			continue
		}
		pos = next

		fmt.Println(render(pos, ascii))
	}

	if err := scanner.Err(); err != nil {
		log.Fatalf("chego: reading stdin: %v", err)
	}
}

// isLegal reports whether (i,j)->(k,l) appears among pos's legal moves,
// the validation front-ends are required to perform before ever calling
// make_move with input that hasn't already been vetted.
func isLegal(pos chego.Position, i, j, k, l int) bool {
	for _, m := range pos.LegalMoves() {
		if m.I == i && m.J == j && m.K == k && m.L == l {
			return true
		}
	}
	return false
}

func render(pos chego.Position, ascii bool) string {
	if ascii {
		return pos.FormatASCII()
	}
	return pos.FormatColor()
}
