package loop

// GameState represents the current game phase for a player.
type GameState int

const (
	GameStateStart    GameState = iota // Title screen
	GameStatePlaying                   // Level in progress
	GameStateOver                      // Won or lost, show restart prompt
	GameStateShutdown                  // Server is shutting down
)

// Outcome is how a level ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

// String returns "won", "lost" or "none".
func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "none"
	}
}

// Session carries the results of one player's games between scenes.
// The level writes Score and Outcome; the game over screen reads them.
type Session struct {
	Score   int
	Outcome Outcome
	Best    int  // best score known when the last game ended
	NewBest bool // the last game set Best
}

// Reset clears the per-game fields before a new level.
func (s *Session) Reset() {
	s.Score = 0
	s.Outcome = OutcomeNone
	s.NewBest = false
}
