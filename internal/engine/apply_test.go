package engine

import (
	"testing"

	"github.com/lgbarn/rchess-go/internal/chess"
)

func TestApplyToBoard(t *testing.T) {
	tests := []struct {
		name         string
		fen          string
		move         string
		wantPlace    string
		wantCaptured chess.Kind
	}{
		{
			name:      "1.e4",
			fen:       InitialFEN,
			move:      "e2e4",
			wantPlace: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR",
		},
		{
			name:      "1.Nf3",
			fen:       InitialFEN,
			move:      "g1f3",
			wantPlace: "rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R",
		},
		{
			name:      "kingside castle",
			fen:       "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
			move:      "e1g1",
			wantPlace: "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R4RK1",
		},
		{
			name:      "queenside castle",
			fen:       "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b KQkq - 0 1",
			move:      "e8c8",
			wantPlace: "2kr3r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R",
		},
		{
			name:         "en passant",
			fen:          "rnbqkbnr/1pp1pppp/p7/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
			move:         "e5d6",
			wantPlace:    "rnbqkbnr/1pp1pppp/p2P4/8/8/8/PPPP1PPP/RNBQKBNR",
			wantCaptured: chess.Pawn,
		},
		{
			name:         "capturing promotion",
			fen:          "1r2k3/P7/8/8/8/8/8/4K3 w - - 0 1",
			move:         "a7b8",
			wantPlace:    "1Q2k3/8/8/8/8/8/8/4K3",
			wantCaptured: chess.Rook,
		},
		{
			name:         "plain capture",
			fen:          "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1",
			move:         "e4d5",
			wantPlace:    "4k3/8/8/3P4/8/8/8/4K3",
			wantCaptured: chess.Pawn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustParse(t, tt.fen)
			move, ok := findMove(LegalMoves(pos.Board, pos.ToMove, pos.LastMove), tt.move)
			if !ok {
				t.Fatalf("%s is not a legal move in %q", tt.move, tt.fen)
			}

			captured, wasCapture := ApplyToBoard(pos.Board, move)

			if got := PlacementFEN(pos.Board); got != tt.wantPlace {
				t.Errorf("PlacementFEN() after %s = %q, want %q", tt.move, got, tt.wantPlace)
			}
			if tt.wantCaptured == chess.NoKind {
				if wasCapture {
					t.Errorf("ApplyToBoard() captured %v, want nothing", captured)
				}
				return
			}
			if !wasCapture || captured.Kind != tt.wantCaptured {
				t.Errorf("ApplyToBoard() captured = %v (%v), want %v", captured.Kind, wasCapture, tt.wantCaptured)
			}
		})
	}
}

func TestApplyToBoard_MarksMoved(t *testing.T) {
	pos := mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	move, ok := findMove(LegalMoves(pos.Board, chess.White, nil), "e1g1")
	if !ok {
		t.Fatal("e1g1 not legal")
	}
	ApplyToBoard(pos.Board, move)

	for _, sq := range []chess.Square{chess.Sq('g', '1'), chess.Sq('f', '1')} {
		p, ok := pos.Board.PieceAt(sq)
		if !ok || !p.Moved {
			t.Errorf("PieceAt(%v) = %v (moved=%v), want moved piece", sq, p, p.Moved)
		}
	}
	if got := CastlingRightsOf(pos.Board).String(); got != "kq" {
		t.Errorf("CastlingRightsOf() = %q, want %q", got, "kq")
	}
}
