package chego

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDefaultPositionInvariants(t *testing.T) {
	p := NewPosition()
	p.checkInvariants() // must not panic

	if p.White&^p.Taken() != 0 {
		t.Fatalf("white is not a subset of taken")
	}
	if (p.King & p.White).PopCount() != 1 {
		t.Fatalf("expected exactly one white king")
	}
	if (p.King & p.Black()).PopCount() != 1 {
		t.Fatalf("expected exactly one black king")
	}
}

func TestPiecesOfPartitionTaken(t *testing.T) {
	p := NewPosition()
	got := p.PiecesOf(White).PopCount() + p.PiecesOf(Black).PopCount()
	want := p.Taken().PopCount()
	require.Equal(t, want, got)
}

// Scenario 1: default position has exactly 20 legal moves.
func TestDefaultPositionHas20LegalMoves(t *testing.T) {
	p := NewPosition()
	moves := p.LegalMoves()
	if len(moves) != 20 {
		t.Fatalf("got %d legal moves from the default position, want 20", len(moves))
	}
}

// Scenario 2: an e2-e4-equivalent push.
func TestPawnDoublePushFlipsSideToMove(t *testing.T) {
	p := NewPosition()

	ok := p.MakeMove(1, 4, 3, 4)
	require.True(t, ok)

	require.Equal(t, Black, p.SideToMove())

	piece, has := p.PieceAt(3, 4)
	require.True(t, has)
	require.Equal(t, Pawn, piece)

	_, has = p.PieceAt(1, 4)
	require.False(t, has)
}

// Scenario 3: Fool's mate.
func TestFoolsMateCheckmate(t *testing.T) {
	p := NewPosition()

	moves := []Move{
		{1, 5, 2, 5}, // White f2-f3
		{6, 4, 4, 4}, // Black e7-e5
		{1, 6, 3, 6}, // White g2-g4
		{7, 3, 3, 7}, // Black queen d8-h4
	}

	for _, m := range moves {
		if !p.MakeMove(m.I, m.J, m.K, m.L) {
			t.Fatalf("move %v rejected as illegal", m)
		}
	}

	if !p.InCheck(White) {
		t.Fatalf("expected White to be in check")
	}
	if !p.InCheckmate(White) {
		t.Fatalf("expected White to be checkmated")
	}
	if len(p.LegalMoves()) != 0 {
		t.Fatalf("expected no legal moves, got %d", len(p.LegalMoves()))
	}
}

// Scenario 4: a pawn reaching the last rank promotes to a queen.
func TestPawnPromotesToQueen(t *testing.T) {
	p := Position{
		White: Bitboard(0).Set(0, 0).Set(6, 0),
		Pawn:  Bitboard(0).Set(6, 0),
		King:  Bitboard(0).Set(0, 0).Set(0, 7),
	}

	ok := p.MakeMove(6, 0, 7, 0)
	require.True(t, ok)

	piece, has := p.PieceAt(7, 0)
	require.True(t, has)
	require.Equal(t, Queen, piece)

	if p.Pawn&p.White != 0 {
		t.Fatalf("expected no white pawns remaining, got %v", p.Pawn&p.White)
	}
}

// Scenario 5: a king has no legal move into a square attacked by the
// opponent.
func TestKingCannotMoveIntoAttackedSquare(t *testing.T) {
	// Otherwise-empty board per the scenario, plus a Black king tucked out
	// of the way so the position still satisfies the one-king-per-color
	// invariant checked inside make_move.
	base := Position{
		White: Bitboard(0).Set(3, 7),
		King:  Bitboard(0).Set(3, 7).Set(7, 7),
		Rook:  Bitboard(0).Set(3, 3),
	}

	// White to move: the king at (3,7) must not be able to step to (3,6),
	// since that square is still attacked along rank 3 by the Black rook.
	white := base
	white.Other = 0
	for _, m := range white.LegalMoves() {
		if m.K == 3 && m.L == 6 {
			t.Fatalf("king move to the attacked square (3,6) should not be legal")
		}
	}
	if white.MakeMove(3, 7, 3, 6) {
		t.Fatalf("make_move should have rejected a self-check king move")
	}
}

// Scenario 6: subsets of a three-bit mask.
func TestSubsetsOfThreeBitMask(t *testing.T) {
	bb := Bitboard(0).Set(1, 1).Set(2, 2).Set(3, 3)
	subsets := bb.Subsets()
	if len(subsets) != 8 {
		t.Fatalf("got %d subsets, want 8", len(subsets))
	}
}

func TestLegalMoveResultsAreNotInCheck(t *testing.T) {
	p := NewPosition()
	for _, m := range p.LegalMoves() {
		next := p
		ok := next.MakeMove(m.I, m.J, m.K, m.L)
		require.True(t, ok, "legal move %v should apply cleanly", m)
		if next.InCheck(White) {
			t.Fatalf("move %v leaves White in check", m)
		}
	}
}

func TestSideToMoveParityAfterMoves(t *testing.T) {
	p := NewPosition()
	for n := range 4 {
		want := White
		if n%2 != 0 {
			want = Black
		}
		if p.SideToMove() != want {
			t.Fatalf("after %d moves, side to move = %v, want %v", n, p.SideToMove(), want)
		}

		moves := p.LegalMoves()
		require.NotEmpty(t, moves)
		m := moves[0]
		require.True(t, p.MakeMove(m.I, m.J, m.K, m.L))
	}
}

func TestPositionDiffDetectsMutation(t *testing.T) {
	before := NewPosition()
	after := before
	after.MakeMove(1, 4, 3, 4)

	if diff := cmp.Diff(before, after); diff == "" {
		t.Fatalf("expected make_move to mutate the position")
	}
}
