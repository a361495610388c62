// Package output writes finished games as text records or JSON.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/rchess-go/internal/chess"
	"github.com/lgbarn/rchess-go/internal/engine"
	"github.com/lgbarn/rchess-go/internal/game"
)

// Record is a finished or abandoned game ready to be written.
type Record struct {
	Round     int
	Game      *game.Game
	Truncated bool // stopped by the ply limit before a result
	Duplicate bool
}

// Termination returns the reason to print for the record.
func (r *Record) Termination() string {
	if r.Truncated && !r.Game.IsOver() {
		return "ply limit"
	}
	return r.Game.Termination().String()
}

// Players returns the labels of the white and black players.
func (r *Record) Players() (white, black string) {
	label := func(c chess.Colour) string {
		switch r.Game.Mode() {
		case game.ComputerVsComputer:
			return "computer"
		case game.ComputerVsHuman:
			if c == r.Game.ComputerSide() {
				return "computer"
			}
		}
		return "human"
	}
	return label(chess.White), label(chess.Black)
}

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// WriteText writes a record as tag pairs followed by the numbered move list.
func WriteText(w io.Writer, rec *Record, maxLineLength int) {
	writeTags(w, rec)
	fmt.Fprintln(w)
	writeMoves(w, rec, maxLineLength)
	fmt.Fprintln(w)
}

// writeTags outputs the record's tag pairs.
func writeTags(w io.Writer, rec *Record) {
	g := rec.Game
	white, black := rec.Players()

	tag := func(name, value string) {
		fmt.Fprintf(w, "[%s \"%s\"]\n", name, escapeTagValue(value))
	}
	tag("Event", "rchess self-play")
	tag("Round", strconv.Itoa(rec.Round))
	tag("White", white)
	tag("Black", black)
	tag("Result", g.Result().String())
	tag("Termination", rec.Termination())
	tag("GameId", g.ID().String())
	if g.InitialFEN() != engine.InitialFEN {
		tag("FEN", g.InitialFEN())
	}
	tag("PlyCount", strconv.Itoa(g.Ply()))
	if rec.Duplicate {
		tag("Duplicate", "true")
	}
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// writeMoves outputs the numbered move list and the result token.
func writeMoves(w io.Writer, rec *Record, maxLineLength int) {
	ow := NewOutputWriter(w, maxLineLength)
	number := startNumber(rec.Game)

	for i, m := range rec.Game.History() {
		switch {
		case m.Piece.Colour == chess.White:
			ow.Write(fmt.Sprintf("%d.", number))
		case i == 0:
			ow.Write(fmt.Sprintf("%d...", number))
		}
		ow.Write(m.String())
		if m.Piece.Colour == chess.Black {
			number++
		}
	}
	ow.Write(rec.Game.Result().String())
	ow.NewLine()
}

// startNumber returns the fullmove number of the game's starting position.
func startNumber(g *game.Game) int {
	pos, err := engine.ParseFEN(g.InitialFEN())
	if err != nil {
		return 1
	}
	return pos.FullmoveNumber
}
