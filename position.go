/*
position.go defines the Position structure: the full game state plus the
query and mutation logic built on top of the attack tables — pseudo-legal
move masks, attacked-squares queries, check/checkmate predicates, legal-move
enumeration, and make_move.
*/

package chego

import "fmt"

// Position is the entire game state: occupancy decomposition by piece type,
// White occupancy, and the side-to-move flag. It is a small, trivially
// copyable value — legal-move enumeration relies on that to cheaply take
// speculative copies.
type Position struct {
	White  Bitboard
	Pawn   Bitboard
	Rook   Bitboard
	Knight Bitboard
	Bishop Bitboard
	Queen  Bitboard
	King   Bitboard
	// Other is an auxiliary word; bit 0 is the side-to-move flag
	// (0 = White, 1 = Black). The remaining bits are reserved.
	Other Bitboard
}

// NewPosition returns the standard chess starting position.
func NewPosition() Position {
	return Position{
		White:  0xFFFF,
		Pawn:   0x00FF00000000FF00,
		Rook:   0x8100000000000081,
		Knight: 0x4200000000000042,
		Bishop: 0x2400000000000024,
		Queen:  0x0800000000000008,
		King:   0x1000000000000010,
		Other:  0,
	}
}

// Move is a legal or pseudo-legal move expressed as a (from, to) pair of
// board coordinates, with no encoding beyond the four integers themselves.
type Move struct {
	I, J, K, L int
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)->(%d,%d)", m.I, m.J, m.K, m.L)
}

// Taken returns the bitboard of every occupied square.
func (p Position) Taken() Bitboard {
	return p.Pawn | p.Rook | p.Knight | p.Bishop | p.Queen | p.King
}

// Free returns the bitboard of every empty square.
func (p Position) Free() Bitboard {
	return p.Taken().Not()
}

// Black returns the bitboard of Black-occupied squares. Computed as
// taken - white, the arithmetic identity spec'd for this engine: it
// assumes white is a subset of taken, which the invariants guarantee.
func (p Position) Black() Bitboard {
	return p.Taken().Sub(p.White)
}

// SideToMove reports which player is to move.
func (p Position) SideToMove() Player {
	if p.Other&1 == 1 {
		return Black
	}
	return White
}

// PiecesOf returns the occupancy bitboard belonging to player.
func (p Position) PiecesOf(player Player) Bitboard {
	if player == White {
		return p.White
	}
	return p.Black()
}

// PieceAt scans the six piece bitboards in fixed order (Pawn, Rook, Knight,
// Bishop, Queen, King) and returns the first match, or ok == false if the
// square is empty.
func (p Position) PieceAt(i, j int) (piece Piece, ok bool) {
	switch {
	case p.Pawn.IsSet(i, j):
		return Pawn, true
	case p.Rook.IsSet(i, j):
		return Rook, true
	case p.Knight.IsSet(i, j):
		return Knight, true
	case p.Bishop.IsSet(i, j):
		return Bishop, true
	case p.Queen.IsSet(i, j):
		return Queen, true
	case p.King.IsSet(i, j):
		return King, true
	default:
		return 0, false
	}
}

// PlayerAt returns the player occupying (i,j), or ok == false if empty.
func (p Position) PlayerAt(i, j int) (player Player, ok bool) {
	if !p.Taken().IsSet(i, j) {
		return White, false
	}
	if p.White.IsSet(i, j) {
		return White, true
	}
	return Black, true
}

// pieceBitboard returns the occupancy bitboard for a single piece type.
func (p Position) pieceBitboard(piece Piece) Bitboard {
	switch piece {
	case Pawn:
		return p.Pawn
	case Rook:
		return p.Rook
	case Knight:
		return p.Knight
	case Bishop:
		return p.Bishop
	case Queen:
		return p.Queen
	case King:
		return p.King
	default:
		panic(fmt.Sprintf("chego: invalid piece %v", piece))
	}
}

// clearPiece removes (i,j) from the bitboard belonging to piece.
func (p *Position) clearPiece(piece Piece, i, j int) {
	switch piece {
	case Pawn:
		p.Pawn = p.Pawn.Clear(i, j)
	case Rook:
		p.Rook = p.Rook.Clear(i, j)
	case Knight:
		p.Knight = p.Knight.Clear(i, j)
	case Bishop:
		p.Bishop = p.Bishop.Clear(i, j)
	case Queen:
		p.Queen = p.Queen.Clear(i, j)
	case King:
		p.King = p.King.Clear(i, j)
	default:
		panic(fmt.Sprintf("chego: invalid piece %v", piece))
	}
}

// setPiece adds (i,j) to the bitboard belonging to piece.
func (p *Position) setPiece(piece Piece, i, j int) {
	switch piece {
	case Pawn:
		p.Pawn = p.Pawn.Set(i, j)
	case Rook:
		p.Rook = p.Rook.Set(i, j)
	case Knight:
		p.Knight = p.Knight.Set(i, j)
	case Bishop:
		p.Bishop = p.Bishop.Set(i, j)
	case Queen:
		p.Queen = p.Queen.Set(i, j)
	case King:
		p.King = p.King.Set(i, j)
	default:
		panic(fmt.Sprintf("chego: invalid piece %v", piece))
	}
}

// pawnMoves returns the pseudo-legal pawn destination mask from (i,j) for
// player. The double-step is enabled whenever the single step is free; there
// is no starting-rank guard, so a pawn anywhere on an open file can double-step.
func (p Position) pawnMoves(i, j int, player Player) Bitboard {
	pawn := Bitboard(1 << square(i, j))
	free := p.Free()

	var push, captures, double Bitboard
	if player == White {
		push = pawn.Shl(8) & free
		captures = (pawn.Shl(7) | pawn.Shl(9)) & p.Black()
		double = (pawn.Shl(8) & free).Shl(8) & free
	} else {
		push = pawn.Shr(8) & free
		captures = (pawn.Shr(7) | pawn.Shr(9)) & p.White
		double = (pawn.Shr(8) & free).Shr(8) & free
	}

	all := push | captures | double
	own := p.PiecesOf(player)
	return all &^ own
}

// knightMoves returns the pseudo-legal knight destination mask from (i,j)
// for player, using the table built in tables.go (only the ±15/±17 jump
// offsets are modeled; ±6/±10 are not).
func (p Position) knightMoves(i, j int, player Player) Bitboard {
	ensureTables()
	sq := square(i, j)
	return Bitboard(knightMoves[sq]) &^ p.PiecesOf(player)
}

// rookMoves returns the pseudo-legal rook destination mask from (i,j).
func (p Position) rookMoves(i, j int, player Player) Bitboard {
	sq := square(i, j)
	return Bitboard(lookupRookAttacks(sq, uint64(p.Taken()))) &^ p.PiecesOf(player)
}

// bishopMoves returns the pseudo-legal bishop destination mask from (i,j).
func (p Position) bishopMoves(i, j int, player Player) Bitboard {
	sq := square(i, j)
	return Bitboard(lookupBishopAttacks(sq, uint64(p.Taken()))) &^ p.PiecesOf(player)
}

// queenMoves is the union of rook and bishop reachability from (i,j).
func (p Position) queenMoves(i, j int, player Player) Bitboard {
	return p.rookMoves(i, j, player) | p.bishopMoves(i, j, player)
}

// kingMoves returns the pseudo-legal king destination mask from (i,j). No
// castling.
func (p Position) kingMoves(i, j int, player Player) Bitboard {
	ensureTables()
	sq := square(i, j)
	return Bitboard(kingMoves[sq]) &^ p.PiecesOf(player)
}

// pseudoLegalMoves returns the destination mask for whatever piece stands
// on (i,j), and the piece it identified. It panics if the square is empty.
func (p Position) pseudoLegalMoves(i, j int) (Bitboard, Piece) {
	piece, ok := p.PieceAt(i, j)
	if !ok {
		panic(fmt.Sprintf("chego: no piece at (%d,%d)", i, j))
	}

	player, _ := p.PlayerAt(i, j)

	switch piece {
	case Pawn:
		return p.pawnMoves(i, j, player), piece
	case Knight:
		return p.knightMoves(i, j, player), piece
	case Rook:
		return p.rookMoves(i, j, player), piece
	case Bishop:
		return p.bishopMoves(i, j, player), piece
	case Queen:
		return p.queenMoves(i, j, player), piece
	case King:
		return p.kingMoves(i, j, player), piece
	default:
		panic(fmt.Sprintf("chego: invalid piece %v", piece))
	}
}

// AttackedBy returns the union of pseudo-legal destinations of every piece
// belonging to player, own-color squares masked out.
//
// NOTE: for pawns this reuses the same three-term move mask as move
// generation, including the forward push squares, which are not attacks.
// This overapproximates the attacked set for pawns specifically.
func (p Position) AttackedBy(player Player) Bitboard {
	var attacked Bitboard
	for _, sq := range p.PiecesOf(player).SetIndices() {
		i, j := sq/8, sq%8
		mask, _ := p.pseudoLegalMoves(i, j)
		attacked |= mask
	}
	return attacked
}

// kingOf returns the single-bit bitboard of player's king.
func (p Position) kingOf(player Player) Bitboard {
	return p.King & p.PiecesOf(player)
}

// InCheck reports whether player's king is attacked by the opponent.
func (p Position) InCheck(player Player) bool {
	return p.AttackedBy(player.Opponent())&p.kingOf(player) != 0
}

// InCheckmate reports whether player is to move, in check, and has no
// legal move.
func (p Position) InCheckmate(player Player) bool {
	return p.SideToMove() == player && p.InCheck(player) && len(p.LegalMoves()) == 0
}

// LegalMoves enumerates every legal move for the side to move, by copying
// the position and attempting make_move on the copy for each pseudo-legal
// destination; make_move's own self-check filter is the legality test.
func (p Position) LegalMoves() []Move {
	player := p.SideToMove()
	var moves []Move

	for _, sq := range p.PiecesOf(player).SetIndices() {
		i, j := sq/8, sq%8
		mask, _ := p.pseudoLegalMoves(i, j)

		for _, dest := range mask.SetIndices() {
			k, l := dest/8, dest%8

			candidate := p
			if candidate.MakeMove(i, j, k, l) {
				moves = append(moves, Move{i, j, k, l})
			}
		}
	}

	return moves
}

// checkInvariants panics if p violates any of the data-model invariants
// that must hold after every completed operation.
func (p Position) checkInvariants() {
	pieces := []Bitboard{p.Pawn, p.Rook, p.Knight, p.Bishop, p.Queen, p.King}
	var seen Bitboard
	for _, bb := range pieces {
		if seen&bb != 0 {
			panic("chego: piece bitboards are not pairwise disjoint")
		}
		seen |= bb
	}

	if p.White&^p.Taken() != 0 {
		panic("chego: white is not a subset of taken")
	}

	if (p.King & p.White).PopCount() != 1 {
		panic("chego: white does not have exactly one king")
	}
	if (p.King & p.Black()).PopCount() != 1 {
		panic("chego: black does not have exactly one king")
	}

	const rank0, rank7 = 0xFF, 0xFF00000000000000
	if p.Pawn&(rank0|rank7) != 0 {
		panic("chego: a pawn stands on rank 0 or rank 7")
	}
}

// MakeMove attempts to move the piece on (i,j) to (k,l). It returns false,
// leaving the position otherwise mutated, if doing so would leave the
// mover in check — the caller is expected to discard the position on a
// false result (legal_moves operates on a throwaway copy for exactly this
// reason). Violated preconditions panic: a coordinate outside 0..7, source
// square empty, the move absent from every pseudo-legal mask, or the
// destination holding the opponent's king.
func (p *Position) MakeMove(i, j, k, l int) bool {
	for _, c := range [4]int{i, j, k, l} {
		if c < 0 || c > 7 {
			panic(fmt.Sprintf("chego: make_move coordinate %d out of range in %v", c, Move{i, j, k, l}))
		}
	}

	if !p.Taken().IsSet(i, j) {
		panic(fmt.Sprintf("chego: make_move source (%d,%d) is empty", i, j))
	}

	mover, _ := p.PieceAt(i, j)
	player := p.SideToMove()

	if owner, _ := p.PlayerAt(i, j); owner != player {
		panic(fmt.Sprintf("chego: (%d,%d) does not hold a piece belonging to %v", i, j, player))
	}

	mask, _ := p.pseudoLegalMoves(i, j)
	if !mask.IsSet(k, l) {
		panic(fmt.Sprintf("chego: %v is not a pseudo-legal move for the piece at (%d,%d)", Move{i, j, k, l}, i, j))
	}

	victim, hasVictim := p.PieceAt(k, l)
	if hasVictim && victim == King {
		panic("chego: make_move destination holds the opponent's king")
	}

	if player == White {
		p.White = p.White.Clear(i, j).Set(k, l)
	} else if p.White.IsSet(k, l) {
		p.White = p.White.Clear(k, l)
	}

	if hasVictim {
		p.clearPiece(victim, k, l)
	}

	p.clearPiece(mover, i, j)
	p.setPiece(mover, k, l)

	if mover == Pawn && ((player == White && k == 7) || (player == Black && k == 0)) {
		p.Pawn = p.Pawn.Clear(k, l)
		p.Queen = p.Queen.Set(k, l)
	}

	p.checkInvariants()

	if p.InCheck(player) {
		return false
	}

	p.Other = p.Other.Xor(1)
	return true
}
