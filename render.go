/*
render.go implements the textual rendering surface consumed by any
front-end: the plain-text grid required by the core spec, plus a colorized
variant and check/checkmate banners.
*/

package chego

import (
	"strings"

	"github.com/fatih/color"
)

// unicodeSymbols maps (piece, player) to the glyph used by Format/FormatColor.
var unicodeSymbols = [2][6]rune{
	White: {Pawn: '♙', Rook: '♖', Knight: '♘', Bishop: '♗', Queen: '♕', King: '♔'},
	Black: {Pawn: '♟', Rook: '♜', Knight: '♞', Bishop: '♝', Queen: '♛', King: '♚'},
}

// asciiSymbols is the plain-letter fallback, upper case for White, lower
// case for Black — used when a front-end prefers not to assume a Unicode
// terminal.
var asciiSymbols = [2][6]byte{
	White: {Pawn: 'P', Rook: 'R', Knight: 'N', Bishop: 'B', Queen: 'Q', King: 'K'},
	Black: {Pawn: 'p', Rook: 'r', Knight: 'n', Bishop: 'b', Queen: 'q', King: 'k'},
}

// Format renders the board as eight ranks of Unicode piece glyphs, rank 8
// first, file a first, plus a rank/file-labeled border and a
// "White/Black on move" line.
func (p Position) Format() string {
	var sb strings.Builder
	sb.WriteString(p.SideToMove().String())
	sb.WriteString(" on move\n")

	for i := 7; i >= 0; i-- {
		sb.WriteByte('0' + byte(i))
		sb.WriteString(" ")
		for j := range 8 {
			sb.WriteString(p.squareGlyph(i, j))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")

	p.writeBanner(&sb)
	return sb.String()
}

// FormatColor is the same grid as Format, with White pieces and Black
// pieces rendered in distinguishable terminal colors via fatih/color.
func (p Position) FormatColor() string {
	var sb strings.Builder
	sb.WriteString(p.SideToMove().String())
	sb.WriteString(" on move\n")

	whiteSGR := color.New(color.FgWhite, color.Bold)
	blackSGR := color.New(color.FgCyan, color.Bold)

	for i := 7; i >= 0; i-- {
		sb.WriteByte('0' + byte(i))
		sb.WriteString(" ")
		for j := range 8 {
			glyph := p.squareGlyph(i, j)
			if player, ok := p.PlayerAt(i, j); ok {
				if player == White {
					glyph = whiteSGR.Sprint(glyph)
				} else {
					glyph = blackSGR.Sprint(glyph)
				}
			}
			sb.WriteString(glyph)
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")

	p.writeBanner(&sb)
	return sb.String()
}

// FormatASCII is the same grid as Format but using plain letters instead
// of Unicode glyphs, for terminals or pipes that mangle Unicode.
func (p Position) FormatASCII() string {
	var sb strings.Builder
	sb.WriteString(p.SideToMove().String())
	sb.WriteString(" on move\n")

	for i := 7; i >= 0; i-- {
		sb.WriteByte('0' + byte(i))
		sb.WriteString(" ")
		for j := range 8 {
			piece, ok := p.PieceAt(i, j)
			if !ok {
				sb.WriteByte('.')
			} else {
				player, _ := p.PlayerAt(i, j)
				sb.WriteByte(asciiSymbols[player][piece])
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")

	p.writeBanner(&sb)
	return sb.String()
}

func (p Position) squareGlyph(i, j int) string {
	piece, ok := p.PieceAt(i, j)
	if !ok {
		return "."
	}
	player, _ := p.PlayerAt(i, j)
	return string(unicodeSymbols[player][piece])
}

func (p Position) writeBanner(sb *strings.Builder) {
	for _, player := range []Player{White, Black} {
		switch {
		case p.InCheckmate(player):
			sb.WriteString(player.String())
			sb.WriteString(" is checkmated\n")
		case p.InCheck(player):
			sb.WriteString(player.String())
			sb.WriteString(" is in check\n")
		}
	}
}
