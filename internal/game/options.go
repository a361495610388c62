package game

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lgbarn/rchess-go/internal/chess"
)

// Option configures a Game.
type Option func(*Game)

// WithMode sets which sides the computer plays.
func WithMode(mode Mode) Option {
	return func(g *Game) {
		g.mode = mode
	}
}

// WithComputerSide sets the computer's colour in ComputerVsHuman mode.
func WithComputerSide(colour chess.Colour) Option {
	return func(g *Game) {
		g.computerSide = colour
	}
}

// WithLogger sets the logger for move and outcome events.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithID sets the game identifier instead of a random one.
func WithID(id uuid.UUID) Option {
	return func(g *Game) {
		g.id = id
	}
}

// WithExtendedMaterialDraw also draws on K+minor vs K and on bishops of the
// same square colour, not only on bare kings.
func WithExtendedMaterialDraw(enabled bool) Option {
	return func(g *Game) {
		g.extendedMaterial = enabled
	}
}

// RuleOptions returns the options that change how g is adjudicated, so a
// replay of its history reaches the same outcome.
func (g *Game) RuleOptions() []Option {
	return []Option{WithExtendedMaterialDraw(g.extendedMaterial)}
}
