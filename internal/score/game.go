// Package score keeps the cornhole score and the round timer.
package score

import "fmt"

// WinningScore is the default score that ends a game.
const WinningScore = 21

// Team identifies one side of the board.
type Team int

const (
	Team1 Team = iota
	Team2
)

func (t Team) String() string {
	switch t {
	case Team1:
		return "team-1"
	case Team2:
		return "team-2"
	default:
		return fmt.Sprintf("team(%d)", int(t))
	}
}

// Game holds both scores. Reaching the winning score ends the game and
// resets both scores.
type Game struct {
	scores  [2]int
	winning int
}

// NewGame creates a game won at winning points. Zero or less means WinningScore.
func NewGame(winning int) *Game {
	if winning <= 0 {
		winning = WinningScore
	}
	return &Game{winning: winning}
}

// WinningScore returns the score that ends the game.
func (g *Game) WinningScore() int { return g.winning }

// Score returns a team's score.
func (g *Game) Score(t Team) int {
	if !valid(t) {
		return 0
	}
	return g.scores[t]
}

// Increment adds a point. When the team reaches the winning score it is
// returned as the winner and the game restarts.
func (g *Game) Increment(t Team) (winner Team, won bool) {
	if !valid(t) {
		return 0, false
	}
	g.scores[t]++
	if g.scores[t] >= g.winning {
		g.Restart()
		return t, true
	}
	return 0, false
}

// Decrement removes a point. Scores never go below zero.
func (g *Game) Decrement(t Team) {
	if valid(t) && g.scores[t] > 0 {
		g.scores[t]--
	}
}

// Restart sets both scores to zero.
func (g *Game) Restart() {
	g.scores = [2]int{}
}

// HasScores reports whether either team has points.
func (g *Game) HasScores() bool {
	return g.scores[Team1] > 0 || g.scores[Team2] > 0
}

func valid(t Team) bool {
	return t == Team1 || t == Team2
}
