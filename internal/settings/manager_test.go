package settings

import (
	"errors"
	"path/filepath"
	"testing"

	"cornscore/internal/score"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Defaults(t *testing.T) {
	m := NewManager(NewMemStore())
	assert.Equal(t, "Team 1", m.TeamName(score.Team1))
	assert.Equal(t, "Team 2", m.TeamName(score.Team2))
	assert.Equal(t, "#FF0000", m.TeamColor(score.Team1))
	assert.Equal(t, "#0000FF", m.TeamColor(score.Team2))
	assert.Equal(t, "#FFFFFF", m.TextColor())
	assert.Equal(t, "Medium", m.TextSize().Name)
	assert.False(t, m.ShowTimer())
}

func TestManager_FirstLaunch(t *testing.T) {
	st := NewMemStore()
	m := NewManager(st)

	first, err := m.FirstLaunch()
	require.NoError(t, err)
	assert.True(t, first)
	v, ok, _ := st.Get(KeyTeam1Name)
	assert.True(t, ok, "first launch writes defaults")
	assert.Equal(t, "Team 1", v)
	_, ok, _ = st.Get("first-launch")
	assert.True(t, ok, "first launch records its marker")

	first, err = m.FirstLaunch()
	require.NoError(t, err)
	assert.False(t, first)
}

func TestManager_SetTeamName(t *testing.T) {
	m := NewManager(NewMemStore())
	require.NoError(t, m.SetTeamName(score.Team2, "  Bags  "))
	assert.Equal(t, "Bags", m.TeamName(score.Team2))

	err := m.SetTeamName(score.Team1, "   ")
	assert.ErrorIs(t, err, ErrEmptyName)
	err = m.SetTeamName(score.Team1, "abcdefghijklmnopqrstu")
	assert.ErrorIs(t, err, ErrNameTooLong)
	assert.Equal(t, "Team 1", m.TeamName(score.Team1))
}

func TestManager_Colors(t *testing.T) {
	m := NewManager(NewMemStore())
	require.NoError(t, m.SetTeamColor(score.Team1, "#00ff00"))
	assert.Equal(t, "#00FF00", m.TeamColor(score.Team1))

	for _, bad := range []string{"red", "#fff", "#12345G", ""} {
		assert.ErrorIs(t, m.SetTextColor(bad), ErrBadColor, bad)
	}
	assert.Equal(t, "#FFFFFF", m.TextColor())
}

func TestManager_TextSize(t *testing.T) {
	m := NewManager(NewMemStore())
	require.NoError(t, m.SetTextSize("large"))
	assert.Equal(t, TextSize{Name: "Large", NamePx: 40, ScorePx: 130, Scale: 3}, m.TextSize())
	assert.Equal(t, "Small", m.NextTextSize().Name)
	assert.ErrorIs(t, m.SetTextSize("Huge"), ErrBadTextSize)
}

func TestManager_SetDefaultsRestores(t *testing.T) {
	m := NewManager(NewMemStore())
	require.NoError(t, m.SetTeamName(score.Team1, "Aces"))
	require.NoError(t, m.SetShowTimer(true))
	require.NoError(t, m.SetDefaults())
	assert.Equal(t, "Team 1", m.TeamName(score.Team1))
	assert.False(t, m.ShowTimer())
}

func TestNextColor(t *testing.T) {
	assert.Equal(t, "#0000FF", NextColor("#ff0000"))
	assert.Equal(t, Palette[0], NextColor(Palette[len(Palette)-1]))
	assert.Equal(t, Palette[0], NextColor("#123456"))
}

type failingStore struct{}

func (failingStore) Get(string) (string, bool, error) { return "", false, errors.New("disk gone") }
func (failingStore) Set(string, string) error        { return errors.New("disk gone") }

func TestManager_StoreErrors(t *testing.T) {
	m := NewManager(failingStore{})
	assert.Equal(t, "Team 1", m.TeamName(score.Team1), "read errors fall back to defaults")
	assert.Error(t, m.SetTeamName(score.Team1, "X"))
	_, err := m.FirstLaunch()
	assert.Error(t, err)
}

func TestBoltStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cornscore.db")
	st, err := OpenBolt(path)
	require.NoError(t, err)

	_, ok, err := st.Get(KeyTextSize)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, st.Set(KeyTextSize, "Large"))
	require.NoError(t, st.Close())

	st, err = OpenBolt(path)
	require.NoError(t, err)
	defer st.Close()
	v, ok, err := st.Get(KeyTextSize)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Large", v)

	require.NoError(t, st.Delete(KeyTextSize))
	_, ok, _ = st.Get(KeyTextSize)
	assert.False(t, ok)
}
