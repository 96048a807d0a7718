package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HerbRun_Go/internal/config"
	"github.com/osse101/HerbRun_Go/internal/domain"
	"github.com/osse101/HerbRun_Go/internal/testing/leaktest"
)

func TestMain(m *testing.M) {
	leaktest.VerifyTestMain(m)
}

const latestBody = `{"data":{
	"207":{"high":7100,"highTime":1700000000,"low":6900,"lowTime":1700000100},
	"5295":{"high":45001,"highTime":1700000000,"low":null,"lowTime":null},
	"21483":{"high":null,"highTime":null,"low":1200,"lowTime":1700000000}
}}`

const mappingBody = `[
	{"id":5295,"name":"Ranarr seed","examine":"A ranarr seed.","members":true,"limit":200,"value":5},
	{"id":207,"name":"Grimy ranarr weed","examine":"I need to clean this herb.","members":true,"limit":13000,"value":25},
	{"id":561,"name":"Nature rune","examine":"Used for alchemy spells.","members":false,"limit":18000,"value":180}
]`

func hiscoreCSV() string {
	var b strings.Builder
	for _, skill := range domain.Skills() {
		switch skill {
		case domain.SkillFarming:
			b.WriteString("120345,85,3258594\n")
		case domain.SkillMagic:
			b.WriteString("-1,-1,-1\n")
		default:
			b.WriteString("250000,70,737627\n")
		}
	}
	b.WriteString("-1,-1\n-1,-1\n-1,-1\n52000,1310\n")
	return b.String()
}

// testEnv points the CLI at a temporary config file and a fake upstream
// serving both the price and hiscore APIs. It returns the config path.
func testEnv(t *testing.T) string {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/prices/latest":
			_, _ = io.WriteString(w, latestBody)
		case "/prices/mapping":
			_, _ = io.WriteString(w, mappingBody)
		case "/hiscore":
			if strings.EqualFold(r.URL.Query().Get("player"), "zezima") {
				_, _ = io.WriteString(w, hiscoreCSV())
				return
			}
			http.NotFound(w, r)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	path := filepath.Join(t.TempDir(), "herbrun.json")
	t.Setenv(config.EnvUserConfigPath, path)
	t.Setenv("PRICES_BASE_URL", srv.URL+"/prices")
	t.Setenv("HISCORE_URL", srv.URL+"/hiscore")
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCalcDrop(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr error
	}{
		{
			name: "fraction",
			args: []string{"1/50", "-n", "50"},
			want: "63.5830% chance of ≥1 successes in 50 attempts, with 1 roll(s)/attempt",
		},
		{
			name: "percentage",
			args: []string{"2%", "--attempts", "50"},
			want: "63.5830% chance of ≥1 successes in 50 attempts",
		},
		{
			name: "at most with rolls",
			args: []string{"0.1", "-n", "8", "--rolls", "2.5", "--target", "3-"},
			want: "≤3 successes in 8 attempts, with 2.5 roll(s)/attempt",
		},
		{
			name: "large kill count",
			args: []string{"1/5000", "-n", "5000"},
			want: "63.2157% chance of ≥1 successes in 5000 attempts",
		},
		{
			name: "high target over 100 attempts",
			args: []string{"2%", "-n", "100", "--target", "3+"},
			want: "32.3314% chance of ≥3 successes in 100 attempts",
		},
		{
			name:    "bad probability",
			args:    []string{"lots", "-n", "10"},
			wantErr: domain.ErrInvalidProbability,
		},
		{
			name:    "bad target",
			args:    []string{"0.5", "-n", "10", "--target", "three"},
			wantErr: domain.ErrInvalidTargetRange,
		},
		{
			name:    "negative rolls",
			args:    []string{"0.5", "-n", "10", "--rolls", "-1"},
			wantErr: domain.ErrInvalidRolls,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"calc", "drop"}, tt.args...)...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestCalcDrop_RequiresAttempts(t *testing.T) {
	_, err := execute(t, "calc", "drop", "0.5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "attempts")
}

func TestConfigSetGet(t *testing.T) {
	testEnv(t)

	out, err := execute(t, "config", "set", "default_player", "zezima")
	require.NoError(t, err)
	assert.Equal(t, "default_player = zezima\n", out)

	out, err = execute(t, "config", "get", "default_player")
	require.NoError(t, err)
	assert.Equal(t, "zezima\n", out)

	out, err = execute(t, "config", "set", "default_player", "zezima")
	require.NoError(t, err)
	assert.Equal(t, "default_player unchanged\n", out)

	out, err = execute(t, "config", "get")
	require.NoError(t, err)
	assert.Contains(t, out, `"default_player": "zezima"`)

	_, err = execute(t, "config", "set", "farming.herbs.colour", "green")
	assert.ErrorIs(t, err, domain.ErrUnknownConfigKey)
}

func TestConfigPath(t *testing.T) {
	path := testEnv(t)

	out, err := execute(t, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)

	other := filepath.Join(t.TempDir(), "other.yaml")
	out, err = execute(t, "--config", other, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, other+"\n", out)
}

func TestConfigSetHerb(t *testing.T) {
	path := testEnv(t)

	out, err := execute(t, "config", "set-herb",
		"--patches", "catherby,ardougne", "--patches", "guild",
		"--compost", "ultra", "--secateurs", "--kandarin", "hard")
	require.NoError(t, err)
	assert.Contains(t, out, "Compost: Ultracompost")
	assert.Contains(t, out, "Magic secateurs: Yes")

	cfg, err := config.NewUserConfigStore(path).Load()
	require.NoError(t, err)
	herbs := cfg.Farming.Herbs
	assert.Equal(t, []domain.HerbPatch{domain.PatchCatherby, domain.PatchArdougne, domain.PatchFarmingGuild}, herbs.Patches)
	assert.Equal(t, domain.CompostUltra, herbs.Compost)
	assert.True(t, herbs.MagicSecateurs)
	assert.Equal(t, domain.DiaryHard, herbs.KandarinDiary)
	assert.False(t, herbs.FarmingCape)

	// Flags not given keep their saved values.
	_, err = execute(t, "config", "set-herb", "--secateurs=false", "--anima", "iasor")
	require.NoError(t, err)
	cfg, err = config.NewUserConfigStore(path).Load()
	require.NoError(t, err)
	assert.False(t, cfg.Farming.Herbs.MagicSecateurs)
	assert.Equal(t, domain.AnimaIasor, cfg.Farming.Herbs.AnimaPlant)
	assert.Equal(t, domain.CompostUltra, cfg.Farming.Herbs.Compost)
	assert.Len(t, cfg.Farming.Herbs.Patches, 3)
}

func TestConfigSetHerb_Errors(t *testing.T) {
	testEnv(t)

	_, err := execute(t, "config", "set-herb")
	assert.ErrorIs(t, err, errNoSettings)

	_, err = execute(t, "config", "set-herb", "--compost", "bottomless")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--compost")

	_, err = execute(t, "config", "set-herb", "--patches", "lumbridge")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--patches")
}

func TestCalcFarmHerb(t *testing.T) {
	testEnv(t)

	_, err := execute(t, "calc", "farm", "herb", "--lvl", "85")
	assert.ErrorIs(t, err, domain.ErrNoPatches)

	_, err = execute(t, "config", "set-herb", "--patches", "catherby,ardougne")
	require.NoError(t, err)

	out, err := execute(t, "calc", "farm", "herb", "--lvl", "99", "--herb", "ranarr")
	require.NoError(t, err)
	assert.Contains(t, out, "Farming level: 99")
	assert.Contains(t, out, "Ranarr")
	assert.NotContains(t, out, "Torstol")

	_, err = execute(t, "calc", "farm", "herb")
	assert.ErrorIs(t, err, domain.ErrNoPlayer)

	out, err = execute(t, "calc", "farm", "herb", "--player", "zezima")
	require.NoError(t, err)
	assert.Contains(t, out, "Farming level: 85")
	assert.Contains(t, out, "Torstol")

	_, err = execute(t, "calc", "farm", "herb", "--lvl", "120")
	assert.ErrorIs(t, err, domain.ErrInvalidLevel)

	_, err = execute(t, "calc", "farm", "herb", "--lvl", "50", "--herb", "cabbage")
	assert.ErrorIs(t, err, domain.ErrUnknownHerb)
}

func TestCalcFarmHerb_Resurrect(t *testing.T) {
	testEnv(t)

	_, err := execute(t, "config", "set-herb", "--patches", "catherby", "--resurrect")
	require.NoError(t, err)

	out, err := execute(t, "calc", "farm", "herb", "--lvl", "90", "--magic", "80")
	require.NoError(t, err)
	assert.Contains(t, out, "Magic level: 80")
	assert.Contains(t, out, "Resurrect Chance")

	// Magic comes from the hiscores, where zezima is unranked.
	_, err = execute(t, "calc", "farm", "herb", "--lvl", "90", "--player", "zezima")
	assert.ErrorIs(t, err, domain.ErrSpellLevelTooLow)
}

func TestHiscore(t *testing.T) {
	testEnv(t)

	out, err := execute(t, "hiscore", "zezima", "--skill", "farm")
	require.NoError(t, err)
	assert.Equal(t, "zezima Farming: level 85 (3,258,594 xp, rank 120,345)\n", out)

	out, err = execute(t, "hiscore", "zezima", "-s", "magic")
	require.NoError(t, err)
	assert.Equal(t, "zezima Magic: unranked\n", out)

	out, err = execute(t, "hiscore", "zezima")
	require.NoError(t, err)
	assert.Contains(t, out, "Farming")
	assert.Contains(t, out, "3,258,594")
	assert.Contains(t, out, "Clue Scrolls (all)")
	assert.Contains(t, out, "1,310")

	_, err = execute(t, "hiscore")
	assert.ErrorIs(t, err, domain.ErrNoPlayer)

	_, err = execute(t, "hiscore", "nobody")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)

	_, err = execute(t, "hiscore", "zezima", "--skill", "sailing")
	assert.ErrorIs(t, err, domain.ErrUnknownSkill)
}

func TestHiscore_DefaultPlayer(t *testing.T) {
	testEnv(t)

	_, err := execute(t, "config", "set", "default_player", "zezima")
	require.NoError(t, err)

	out, err := execute(t, "hiscore", "--skill", "farming")
	require.NoError(t, err)
	assert.Contains(t, out, "Farming: level 85")
}

func TestPrice(t *testing.T) {
	testEnv(t)

	out, err := execute(t, "price", "ranarr")
	require.NoError(t, err)
	assert.Contains(t, out, "Ranarr seed")
	assert.Contains(t, out, "45,001")
	assert.Contains(t, out, "Grimy ranarr weed")
	assert.Contains(t, out, "7,000")

	_, err = execute(t, "price")
	assert.Error(t, err)
}
