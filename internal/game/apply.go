package game

import (
	"go.uber.org/zap"

	"github.com/lgbarn/rchess-go/internal/chess"
	"github.com/lgbarn/rchess-go/internal/engine"
	"github.com/lgbarn/rchess-go/internal/errors"
)

// Apply plays a move for the side to move. The move is matched against the
// legal moves by its from and to squares, so callers may pass a bare
// coordinate move. A rejected move leaves the game unchanged and returns a
// *errors.GameError wrapping ErrGameOver or ErrIllegalMove.
func (g *Game) Apply(move chess.Move) error {
	if g.IsOver() {
		return g.reject(move.String(), errors.ErrGameOver)
	}
	legal, ok := g.match(move.From, move.To)
	if !ok {
		return g.reject(move.String(), errors.ErrIllegalMove)
	}
	g.play(legal)
	return nil
}

// ApplyCoordinates plays a move written as "e2e4". A trailing promotion
// letter is accepted and ignored since pawns always promote to a queen.
func (g *Game) ApplyCoordinates(text string) error {
	if g.IsOver() {
		return g.reject(text, errors.ErrGameOver)
	}
	from, to, ok := chess.ParseCoordinates(text)
	if !ok {
		return g.reject(text, errors.ErrIllegalMove)
	}
	legal, ok := g.match(from, to)
	if !ok {
		return g.reject(text, errors.ErrIllegalMove)
	}
	g.play(legal)
	return nil
}

// Adjudicate concludes a game whose side to move has no legal moves, as
// checkmate or stalemate. It reports whether the game is over afterwards.
// Use it for positions loaded with no moves available.
func (g *Game) Adjudicate() bool {
	if g.IsOver() {
		return true
	}
	st := &g.status
	if engine.HasLegalMoves(st.Board, st.ToMove, st.LastMove) {
		return false
	}
	st.InCheck = engine.IsInCheck(st.Board, st.ToMove)
	if st.InCheck {
		g.conclude(WinFor(st.ToMove.Opposite()), Checkmate)
	} else {
		g.conclude(Draw, Stalemate)
	}
	return true
}

func (g *Game) match(from, to chess.Square) (chess.Move, bool) {
	for _, m := range g.LegalMoves() {
		if m.From == from && m.To == to {
			return m, true
		}
	}
	return chess.Move{}, false
}

// play applies a legal move and evaluates the end conditions in order:
// fifty-move rule and insufficient material end the game before the turn
// passes, then repetition, then checkmate or stalemate of the new side.
func (g *Game) play(move chess.Move) {
	st := &g.status

	engine.ApplyToBoard(st.Board, move)
	g.history = append(g.history, move)
	last := move
	st.LastMove = &last

	if move.Piece.Kind == chess.Pawn || move.IsCapture() {
		st.HalfmoveClock = 0
	} else {
		st.HalfmoveClock++
	}
	if move.Piece.Colour == chess.Black {
		st.FullmoveNumber++
	}

	g.logger.Debug("move applied",
		zap.Int("ply", len(g.history)),
		zap.Stringer("move", move),
		zap.Stringer("kind", move.Kind))

	if st.HalfmoveClock >= engine.FiftyMoveHalfmoves {
		g.conclude(Draw, FiftyMoveRule)
		return
	}
	if g.insufficientMaterial() {
		g.conclude(Draw, InsufficientMaterial)
		return
	}

	st.ToMove = st.ToMove.Opposite()
	if g.recordPosition() >= engine.RepetitionLimit {
		g.conclude(Draw, ThreefoldRepetition)
		return
	}

	st.InCheck = engine.IsInCheck(st.Board, st.ToMove)
	if engine.HasLegalMoves(st.Board, st.ToMove, st.LastMove) {
		return
	}
	if st.InCheck {
		g.conclude(WinFor(move.Piece.Colour), Checkmate)
	} else {
		g.conclude(Draw, Stalemate)
	}
}

func (g *Game) insufficientMaterial() bool {
	if g.extendedMaterial {
		return engine.HasInsufficientMaterial(g.status.Board)
	}
	return engine.IsInsufficientMaterial(g.status.Board)
}

func (g *Game) conclude(result Result, why Termination) {
	g.status.Result = result
	g.status.Termination = why
	g.logger.Info("game concluded",
		zap.Stringer("result", result),
		zap.Stringer("termination", why),
		zap.Int("plies", len(g.history)))
}

func (g *Game) reject(text string, err error) error {
	g.logger.Warn("move rejected",
		zap.String("move", text),
		zap.Error(err))
	return &errors.GameError{
		Err:      err,
		GameID:   g.id.String(),
		PlyNum:   len(g.history) + 1,
		MoveText: text,
	}
}
