package play

import (
	"github.com/abhisek/swipemath/internal/game"
	"github.com/abhisek/swipemath/internal/questions"
)

// tickMsg drives the session clock. It carries the game it was scheduled
// for so a chain left over from an earlier game dies out.
type tickMsg struct {
	SessionID  string
	Generation uint64
}

// refillMsg delivers a fetched batch for req.
type refillMsg struct {
	SessionID string
	Req       game.RefillRequest
	Questions []questions.Question
}
