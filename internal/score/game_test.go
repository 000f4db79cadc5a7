package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGame_IncrementDecrement(t *testing.T) {
	g := NewGame(0)
	assert.Equal(t, WinningScore, g.WinningScore())

	g.Increment(Team1)
	g.Increment(Team1)
	g.Increment(Team2)
	assert.Equal(t, 2, g.Score(Team1))
	assert.Equal(t, 1, g.Score(Team2))

	g.Decrement(Team2)
	g.Decrement(Team2)
	assert.Equal(t, 0, g.Score(Team2), "score must not go below zero")
	assert.True(t, g.HasScores())
}

func TestGame_WinRestarts(t *testing.T) {
	g := NewGame(3)
	g.Increment(Team2)
	for i := 0; i < 2; i++ {
		_, won := g.Increment(Team1)
		assert.False(t, won)
	}
	winner, won := g.Increment(Team1)
	assert.True(t, won)
	assert.Equal(t, Team1, winner)
	assert.Equal(t, 0, g.Score(Team1))
	assert.Equal(t, 0, g.Score(Team2))
	assert.False(t, g.HasScores())
}

func TestGame_InvalidTeam(t *testing.T) {
	g := NewGame(0)
	_, won := g.Increment(Team(7))
	assert.False(t, won)
	g.Decrement(Team(-1))
	assert.Equal(t, 0, g.Score(Team(7)))
	assert.Equal(t, "team(7)", Team(7).String())
}

func TestGame_Restart(t *testing.T) {
	g := NewGame(0)
	g.Increment(Team1)
	g.Restart()
	assert.False(t, g.HasScores())
}
