package const_data

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-splendor/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestDefaultCatalog(t *testing.T) {
	records, err := Default()
	require.NoError(t, err)

	perTier := map[int]int{}
	for _, rec := range records {
		perTier[rec.Tier]++
		if rec.IsNoble() {
			assert.Equal(t, entities.NoblePoints, rec.Points)
			continue
		}
		bonus, err := rec.Bonus()
		require.NoError(t, err)
		assert.False(t, bonus.IsGold())
	}
	assert.Equal(t, map[int]int{0: 10, 1: 40, 2: 30, 3: 20}, perTier)
}

func TestLoadCSVColumnOrder(t *testing.T) {
	data := "tier,diamond,sapphire,emerald,ruby,onyx,points,type\n" +
		"1,2,1,0,3,4,1,RUBY\n" +
		"0,4,0,0,0,4,3,\n"
	records, err := LoadCSV(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, records, 2)

	card := records[0]
	assert.Equal(t, 1, card.Tier)
	assert.Equal(t, 1, card.Points)
	cost := card.Cost()
	assert.Equal(t, 2, cost.Get(entities.Diamond))
	assert.Equal(t, 1, cost.Get(entities.Sapphire))
	assert.Equal(t, 3, cost.Get(entities.Ruby))
	assert.Equal(t, 4, cost.Get(entities.Onyx))
	assert.Equal(t, 0, cost.Get(entities.Gold))
	bonus, err := card.Bonus()
	require.NoError(t, err)
	assert.Equal(t, entities.Ruby, bonus)

	assert.True(t, records[1].IsNoble())
}

func TestLoadCSVRejectsMalformedRows(t *testing.T) {
	data := "tier,diamond,sapphire,emerald,ruby,onyx,points,type\n" +
		"4,0,0,0,0,0,0,RUBY\n" +
		"1,0,0,0,0,0,0,GOLD\n" +
		"2,0,-1,0,0,0,0,TOPAZ\n"
	_, err := LoadCSV(strings.NewReader(data))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.Len(t, multierr.Errors(err), 4)
}

func TestNoblePointsAreFixed(t *testing.T) {
	data := "tier,diamond,sapphire,emerald,ruby,onyx,points,type\n" +
		"0,4,0,0,0,4,0,\n" +
		"0,0,3,3,3,0,9,\n"
	_, err := LoadCSV(strings.NewReader(data))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.Len(t, multierr.Errors(err), 2)

	_, err = LoadYAML(strings.NewReader("- tier: 0\n  ruby: 4\n  onyx: 4\n  points: 2\n"))
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestLoadCSVBadNumber(t *testing.T) {
	data := "tier,diamond,sapphire,emerald,ruby,onyx,points,type\n" +
		"1,x,0,0,0,0,0,RUBY\n"
	_, err := LoadCSV(strings.NewReader(data))
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestLoadCSVMissingColumn(t *testing.T) {
	_, err := LoadCSV(strings.NewReader("tier,diamond,points\n1,1,1\n"))
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = LoadCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestLoadYAML(t *testing.T) {
	data := `
- tier: 2
  emerald: 5
  points: 2
  type: emerald
- tier: 0
  ruby: 4
  onyx: 4
  points: 3
`
	records, err := LoadYAML(strings.NewReader(data))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 5, records[0].Emerald)
	assert.True(t, records[1].IsNoble())

	_, err = LoadYAML(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "cards.csv")
	require.NoError(t, os.WriteFile(csvPath, statsCSV, 0o644))
	records, err := LoadFile(csvPath)
	require.NoError(t, err)
	assert.Len(t, records, 100)

	txtPath := filepath.Join(dir, "cards.txt")
	require.NoError(t, os.WriteFile(txtPath, statsCSV, 0o644))
	_, err = LoadFile(txtPath)
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = LoadFile(filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, ErrConfiguration)
}
