package selfplay

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/rchess-go/internal/chess"
	"github.com/lgbarn/rchess-go/internal/config"
	"github.com/lgbarn/rchess-go/internal/errors"
	"github.com/lgbarn/rchess-go/internal/game"
	"github.com/lgbarn/rchess-go/internal/search"
)

// GameOptions translates the configuration into game options. Mode and
// computer side are expected to be validated already; unknown values fall
// back to the defaults.
func GameOptions(cfg *config.Config, logger *zap.Logger) []game.Option {
	opts := []game.Option{
		game.WithExtendedMaterialDraw(cfg.Rules.ExtendedMaterialDraw),
		game.WithLogger(logger),
	}
	if mode, err := game.ParseMode(cfg.SelfPlay.Mode); err == nil {
		opts = append(opts, game.WithMode(mode))
	}
	if side, err := game.ParseColour(cfg.SelfPlay.ComputerSide); err == nil {
		opts = append(opts, game.WithComputerSide(side))
	}
	return opts
}

// ComputerMove asks the selector for a move and plays it. When the selector
// has nothing to offer and ctx is still live the game is adjudicated. It
// reports whether a move was played.
func ComputerMove(ctx context.Context, g *game.Game, selector search.Selector) bool {
	pos := g.Position()
	move, ok := selector.SelectMove(ctx, pos.Board, pos.ToMove, pos.LastMove)
	if !ok {
		if ctx.Err() == nil {
			g.Adjudicate()
		}
		return false
	}
	return g.Apply(move) == nil
}

// Session plays one game over a line-oriented text stream. Humans enter
// moves in coordinate notation such as e2e4; the computer answers through
// its selector.
type Session struct {
	game     *game.Game
	selector search.Selector
	in       io.Reader
	out      io.Writer
}

// NewSession creates a session for g reading moves from in and writing
// prompts to out.
func NewSession(g *game.Game, selector search.Selector, in io.Reader, out io.Writer) *Session {
	return &Session{
		game:     g,
		selector: selector,
		in:       in,
		out:      out,
	}
}

// Game returns the game being played.
func (s *Session) Game() *game.Game {
	return s.game
}

// Play runs the game until it concludes, the input ends, the player types
// quit or ctx is cancelled. Input ending early is not an error. A human
// left without legal moves is adjudicated before being prompted.
//
// Lines are read on a separate goroutine so cancellation is seen promptly.
// That goroutine exits at the next line or EOF, so with an interactive
// terminal it may outlive Play by one pending read.
func (s *Session) Play(ctx context.Context) error {
	lines := make(chan string)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
	}()

	g := s.game
	for !g.IsOver() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if g.IsComputerTurn() {
			if !ComputerMove(ctx, g, s.selector) {
				break
			}
			fmt.Fprintf(s.out, "computer plays %s\n", g.LastMove())
			continue
		}

		if g.Adjudicate() {
			break
		}
		s.prompt()
		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				return nil
			}
			line = strings.TrimSpace(l)
		}

		fields := strings.Fields(strings.ToLower(line))
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "quit", "exit":
			return nil
		case "moves":
			s.listMoves(fields[1:])
			continue
		case "fen":
			fmt.Fprintln(s.out, g.FEN())
			continue
		}

		if err := g.ApplyCoordinates(line); err != nil {
			if stderrors.Is(err, errors.ErrIllegalMove) {
				fmt.Fprintf(s.out, "illegal move %q, type moves for the list\n", line)
				continue
			}
			return err
		}
	}

	if g.IsOver() {
		fmt.Fprintf(s.out, "result %s (%s)\n", g.Result(), g.Termination())
	}
	return nil
}

func (s *Session) prompt() {
	g := s.game
	check := ""
	if g.InCheck() {
		check = ", in check"
	}
	fmt.Fprintf(s.out, "%s to move%s> ", g.ToMove(), check)
}

// listMoves prints the legal moves, or only those of the piece on the square
// given as the first argument.
func (s *Session) listMoves(args []string) {
	moves := s.game.LegalMoves()
	if len(args) > 0 {
		sq, ok := chess.ParseSquare(args[0])
		if !ok {
			fmt.Fprintf(s.out, "bad square %q\n", args[0])
			return
		}
		moves = s.game.LegalMovesFrom(sq)
	}
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	fmt.Fprintln(s.out, strings.Join(parts, " "))
}
