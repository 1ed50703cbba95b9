package engine

import (
	"errors"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/tatianab/cluedo-solver/internal/models"
)

// Engine owns the knowledge state of one game. It is not safe for
// concurrent use: commands are applied one at a time, to completion.
type Engine struct {
	deck    *models.Deck
	players []models.Player
	grid    *models.Grid
	history []models.HistoryEntry
	logger  *slog.Logger
}

func NewEngine(deck *models.Deck, players []models.Player, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{
		deck:    deck,
		players: players,
		grid:    models.NewGrid(deck, players),
		logger:  logger.With(slog.String("session_id", uuid.NewString())),
	}
}

// ApplyCommand runs one tokenized command and propagates its consequences.
// On error nothing changes.
func (e *Engine) ApplyCommand(name string, args []string) (models.GridDelta, error) {
	kind, err := ParseKind(name)
	if err != nil {
		return models.GridDelta{}, e.reject(name, args, err)
	}

	switch kind {
	case KindHelp:
		return models.GridDelta{}, e.reject(name, args, models.Invalid("help is not a game fact"))
	case KindReset:
		if len(args) > 0 {
			return models.GridDelta{}, e.reject(name, args, models.Invalid("reset takes no arguments"))
		}
		before := e.grid
		e.Reset()
		return e.grid.Diff(before), nil
	}

	scratch := e.grid.Clone()
	if err := factRules[kind](e, scratch, args); err != nil {
		return models.GridDelta{}, e.reject(name, args, err)
	}
	if err := propagate(scratch); err != nil {
		return models.GridDelta{}, e.reject(name, args, err)
	}

	delta := scratch.Diff(e.grid)
	e.grid = scratch
	e.history = append(e.history, models.HistoryEntry{
		Command: kind.String(),
		Args:    slices.Clone(args),
		Delta:   delta,
	})
	e.logger.Debug("command applied",
		slog.String("command", kind.String()),
		slog.Any("args", args),
		slog.Int("cells_changed", len(delta.Cells)),
		slog.Int("slots_resolved", len(delta.Slots)),
	)
	return delta, nil
}

func (e *Engine) reject(name string, args []string, err error) error {
	attrs := []any{
		slog.String("command", name),
		slog.Any("args", args),
		slog.String("error", err.Error()),
	}
	if errors.Is(err, models.ErrInvariant) {
		e.logger.Error("command rolled back", attrs...)
	} else {
		e.logger.Info("command rejected", attrs...)
	}
	return err
}

// Reset starts over with a blank grid.
func (e *Engine) Reset() {
	e.grid = models.NewGrid(e.deck, e.players)
	e.history = nil
	e.logger.Info("grid reset")
}

func (e *Engine) Players() []models.Player { return e.players }
