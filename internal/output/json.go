package output

import (
	"strings"

	"github.com/lgbarn/rchess-go/internal/chess"
	"github.com/lgbarn/rchess-go/internal/game"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	ID          string     `json:"id"`
	Round       int        `json:"round"`
	White       string     `json:"white"`
	Black       string     `json:"black"`
	Result      string     `json:"result"`
	Termination string     `json:"termination"`
	PlyCount    int        `json:"plyCount"`
	InitialFEN  string     `json:"initialFEN"`
	FinalFEN    string     `json:"finalFEN"`
	Duplicate   bool       `json:"duplicate,omitempty"`
	Moves       []JSONMove `json:"moves,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Kind       string `json:"kind"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	FEN        string `json:"fen,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// RecordToJSON converts a record to JSON format. With includeFEN each move
// carries the position reached after it.
func RecordToJSON(rec *Record, includeFEN bool) *JSONGame {
	g := rec.Game
	white, black := rec.Players()
	jg := &JSONGame{
		ID:          g.ID().String(),
		Round:       rec.Round,
		White:       white,
		Black:       black,
		Result:      g.Result().String(),
		Termination: rec.Termination(),
		PlyCount:    g.Ply(),
		InitialFEN:  g.InitialFEN(),
		FinalFEN:    g.FEN(),
		Duplicate:   rec.Duplicate,
	}
	jg.Moves = convertMoveList(g, includeFEN)
	return jg
}

// convertMoveList converts the game history, replaying it when positions
// are requested.
func convertMoveList(g *game.Game, includeFEN bool) []JSONMove {
	history := g.History()
	if len(history) == 0 {
		return nil
	}

	var replay *game.Game
	if includeFEN {
		var err error
		if replay, err = game.NewFromFEN(g.InitialFEN(), g.RuleOptions()...); err != nil {
			replay = nil
		}
	}

	number := startNumber(g)
	moves := make([]JSONMove, 0, len(history))
	for _, m := range history {
		jm := convertSingleMove(m, number)
		if replay != nil && replay.Apply(m) == nil {
			jm.FEN = replay.FEN()
		}
		moves = append(moves, jm)
		if m.Piece.Colour == chess.Black {
			number++
		}
	}
	return moves
}

func convertSingleMove(m chess.Move, number int) JSONMove {
	jm := JSONMove{
		MoveNumber: number,
		Color:      strings.ToLower(m.Piece.Colour.String()),
		UCI:        m.String(),
		From:       m.From.String(),
		To:         m.To.String(),
		Piece:      m.Piece.Kind.String(),
		Kind:       m.Kind.String(),
	}
	if m.IsCapture() {
		jm.Captured = chess.Pawn.String()
		if m.Captured != chess.NoKind {
			jm.Captured = m.Captured.String()
		}
	}
	if m.IsPromotion() {
		jm.Promotion = chess.Queen.String()
	}
	return jm
}
