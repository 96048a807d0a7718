package hiscore

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HerbRun_Go/internal/domain"
	"github.com/osse101/HerbRun_Go/internal/testing/leaktest"
)

func TestMain(m *testing.M) {
	leaktest.VerifyTestMain(m)
}

// sampleCSV builds a hiscore response: 24 skill rows followed by activity
// rows. Farming is level 85 and Magic is unranked; the player is ranked in
// Bounty Hunter (hunter) and all clue scrolls.
func sampleCSV() string {
	var b strings.Builder
	for _, skill := range domain.Skills() {
		switch skill {
		case domain.SkillFarming:
			b.WriteString("120345,85,3258594\n")
		case domain.SkillMagic:
			b.WriteString("-1,-1,-1\n")
		case domain.SkillOverall:
			b.WriteString("500000,1500,50000000\n")
		default:
			b.WriteString("250000,70,737627\n")
		}
	}
	b.WriteString("-1,-1\n")
	b.WriteString("4000,120\n")
	b.WriteString("-1,-1\n")
	b.WriteString("52000,310\n")
	return b.String()
}

func newTestServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Query().Get("player") {
		case "Zezima", "zezima", "Iron Mammal":
			_, _ = fmt.Fprint(w, sampleCSV())
		case "broken":
			_, _ = fmt.Fprint(w, "1,2,3\n4,5\n")
		case "down":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestParseSkills(t *testing.T) {
	skills, err := ParseSkills(strings.NewReader(sampleCSV()))
	require.NoError(t, err)
	require.Len(t, skills, 24)

	assert.Equal(t, domain.SkillOverall, skills[0].Skill)
	assert.Equal(t, 1500, skills[0].Level)

	farming := skills[domain.SkillFarming]
	assert.Equal(t, domain.SkillFarming, farming.Skill)
	assert.Equal(t, 120345, farming.Rank)
	assert.Equal(t, 85, farming.Level)
	assert.Equal(t, int64(3258594), farming.XP)

	assert.Equal(t, -1, skills[domain.SkillMagic].Level)
}

func TestParsePlayer(t *testing.T) {
	p, err := ParsePlayer(strings.NewReader(sampleCSV()))
	require.NoError(t, err)
	require.Len(t, p.Skills, 24)
	assert.Equal(t, []domain.ActivityScore{
		{Name: "Bounty Hunter - Hunter", Rank: 4000, Score: 120},
		{Name: "Clue Scrolls (all)", Rank: 52000, Score: 310},
	}, p.Activities)
}

func TestParsePlayer_ActivityRows(t *testing.T) {
	var skills strings.Builder
	for range domain.Skills() {
		skills.WriteString("1,99,13034431\n")
	}

	t.Run("no activity rows", func(t *testing.T) {
		p, err := ParsePlayer(strings.NewReader(skills.String()))
		require.NoError(t, err)
		assert.Empty(t, p.Activities)
	})

	t.Run("rows past the known activities are skipped", func(t *testing.T) {
		body := skills.String() + strings.Repeat("10,5\n", len(activityNames)+3)
		p, err := ParsePlayer(strings.NewReader(body))
		require.NoError(t, err)
		require.Len(t, p.Activities, len(activityNames))
		assert.Equal(t, "Zulrah", p.Activities[len(activityNames)-1].Name)
	})

	t.Run("malformed activity row", func(t *testing.T) {
		for _, row := range []string{"1,2,3\n", "1,lots\n"} {
			_, err := ParsePlayer(strings.NewReader(skills.String() + row))
			assert.ErrorIs(t, err, domain.ErrHiscoreLookup, row)
		}
	})
}

func TestParseSkills_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too few rows", "1,99,13034431\n2,99,13034431\n"},
		{"short row", "1,99\n"},
		{"not a number", "1,ninety,13034431\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSkills(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, domain.ErrHiscoreLookup)
		})
	}
}

func TestClient_Level(t *testing.T) {
	var hits atomic.Int32
	srv := newTestServer(t, &hits)
	client := NewClient(WithURL(srv.URL), WithHTTPClient(srv.Client()))
	ctx := context.Background()

	lvl, err := client.Level(ctx, "Zezima", domain.SkillFarming)
	require.NoError(t, err)
	assert.Equal(t, 85, lvl)

	lvl, err = client.Level(ctx, "Zezima", domain.SkillMagic)
	require.NoError(t, err)
	assert.Equal(t, 1, lvl, "unranked skill reports level 1")

	lvl, err = client.Level(ctx, "Zezima", domain.SkillHitpoints)
	require.NoError(t, err)
	assert.Equal(t, 70, lvl)

	assert.Equal(t, int32(1), hits.Load(), "player cached after first lookup")
}

func TestClient_NameVariantsShareCache(t *testing.T) {
	var hits atomic.Int32
	srv := newTestServer(t, &hits)
	client := NewClient(WithURL(srv.URL), WithHTTPClient(srv.Client()))

	p, err := client.Player(context.Background(), "Iron Mammal")
	require.NoError(t, err)
	assert.Equal(t, "Iron Mammal", p.Name)

	for _, name := range []string{"iron_mammal", "IRON-MAMMAL", " iron mammal "} {
		_, err := client.Player(context.Background(), name)
		require.NoError(t, err, name)
	}
	assert.Equal(t, int32(1), hits.Load())
}

func TestClient_Errors(t *testing.T) {
	var hits atomic.Int32
	srv := newTestServer(t, &hits)
	client := NewClient(WithURL(srv.URL), WithHTTPClient(srv.Client()))
	ctx := context.Background()

	tests := []struct {
		name    string
		player  string
		wantErr error
	}{
		{"unknown player", "nobody", domain.ErrPlayerNotFound},
		{"blank name", "   ", domain.ErrPlayerNotFound},
		{"name too long", "abcdefghijklmnop", domain.ErrPlayerNotFound},
		{"server error", "down", domain.ErrHiscoreLookup},
		{"malformed body", "broken", domain.ErrHiscoreLookup},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Player(ctx, tt.player)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	// Failures are not cached.
	before := hits.Load()
	_, err := client.Player(ctx, "down")
	assert.Error(t, err)
	assert.Equal(t, before+1, hits.Load())
}

func TestClient_CancelledCallerDoesNotFailSharedFetch(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			close(started)
		}
		<-release
		_, _ = fmt.Fprint(w, sampleCSV())
	}))
	t.Cleanup(srv.Close)
	client := NewClient(WithURL(srv.URL), WithHTTPClient(srv.Client()))

	firstCtx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := client.Player(firstCtx, "zezima")
		firstErr <- err
	}()
	<-started

	secondLvl := make(chan int, 1)
	secondErr := make(chan error, 1)
	go func() {
		lvl, err := client.Level(context.Background(), "Zezima", domain.SkillFarming)
		secondLvl <- lvl
		secondErr <- err
	}()
	// Let the second caller join the in-flight fetch.
	time.Sleep(50 * time.Millisecond)

	cancel()
	select {
	case err := <-firstErr:
		assert.ErrorIs(t, err, context.Canceled)
		assert.ErrorIs(t, err, domain.ErrHiscoreLookup)
	case <-time.After(time.Second):
		t.Error("cancelled caller kept waiting on the shared fetch")
	}

	close(release)
	require.NoError(t, <-secondErr)
	assert.Equal(t, 85, <-secondLvl)
	assert.Equal(t, int32(1), hits.Load())
}
