package gamemode

import (
	"log/slog"

	"tiles2048/internal/board"
)

type State int

const (
	Playing  State = iota // Accepting moves
	GameOver              // No move can change the grid
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Session drives one game: every accepted move spawns a tile and
// re-checks whether the game can continue.
type Session struct {
	log   *slog.Logger
	board *board.Board
	state State
	moves int
}

func NewSession(logger *slog.Logger, b *board.Board) *Session {
	s := &Session{
		log:   logger.With("component", "session"),
		board: b,
		state: Playing,
	}
	if !b.CanMove() {
		s.state = GameOver
	}
	return s
}

func (s *Session) Board() *board.Board { return s.board }
func (s *Session) State() State        { return s.state }
func (s *Session) Moves() int          { return s.moves }

// Apply moves the board toward dir. It returns false when the session is
// over or the move did not change the grid; nothing is spawned in that case.
func (s *Session) Apply(dir board.Direction) bool {
	if s.state == GameOver {
		return false
	}

	before := s.board.Score()
	if !s.board.Move(dir) {
		s.log.Debug("move rejected", "direction", dir)
		return false
	}

	s.moves++
	s.board.SpawnTile()
	s.log.Debug("move applied",
		"direction", dir,
		"gained", s.board.Score()-before,
		"score", s.board.Score(),
		"moves", s.moves,
	)

	if !s.board.CanMove() {
		s.state = GameOver
		s.log.Info("game over",
			"score", s.board.Score(),
			"max_tile", s.board.MaxTile(),
			"moves", s.moves,
		)
	}
	return true
}
