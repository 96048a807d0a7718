package farming

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/HerbRun_Go/internal/domain"
	"github.com/osse101/HerbRun_Go/internal/logger"
	"github.com/osse101/HerbRun_Go/internal/metrics"
)

// PriceSource resolves item prices in one batch.
type PriceSource interface {
	Prices(ctx context.Context, ids []int) (domain.PriceSheet, error)
}

// LevelSource looks up a player's skill level.
type LevelSource interface {
	Level(ctx context.Context, player string, skill domain.Skill) (int, error)
}

// HerbRequest describes one herb table calculation. Explicit levels take
// precedence over a hiscore lookup for Player.
type HerbRequest struct {
	Config       domain.HerbConfig
	Player       string
	FarmingLevel int
	MagicLevel   int
	// Herbs limits the table to these herbs. Empty means all of them.
	Herbs []domain.Herb
}

// PatchInfo describes the bonuses a configured patch provides.
type PatchInfo struct {
	Patch       domain.HerbPatch `json:"patch"`
	Description string           `json:"description"`
	DiseaseFree bool             `json:"disease_free"`
	YieldBonus  float64          `json:"yield_bonus"`
	XPBonus     float64          `json:"xp_bonus"`
}

// Service defines the farming calculator interface
type Service interface {
	HerbTable(ctx context.Context, req HerbRequest) ([]domain.HerbStats, error)
	ResolveLevels(ctx context.Context, req HerbRequest) (domain.Levels, error)
	DescribePatches(cfg *domain.HerbConfig) []PatchInfo
}

type service struct {
	prices PriceSource
	levels LevelSource
	engine *Engine
}

// NewService creates a new farming service
func NewService(prices PriceSource, levels LevelSource) Service {
	return &service{
		prices: prices,
		levels: levels,
		engine: NewEngine(),
	}
}

// HerbTable resolves levels and prices, then computes the table. Any lookup
// failure aborts the whole table.
func (s *service) HerbTable(ctx context.Context, req HerbRequest) (rows []domain.HerbStats, err error) {
	defer func() {
		metrics.HerbCalculations.WithLabelValues(metrics.ResultLabel(err)).Inc()
	}()
	log := logger.FromContext(ctx)

	cfg := req.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	herbs := req.Herbs
	if len(herbs) == 0 {
		herbs = domain.Herbs()
	}

	var (
		levels domain.Levels
		sheet  domain.PriceSheet
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		levels, err = s.ResolveLevels(gctx, req)
		return err
	})
	g.Go(func() error {
		var err error
		sheet, err = s.prices.Prices(gctx, RequiredItems(herbs, &cfg))
		return err
	})
	if err := g.Wait(); err != nil {
		log.Warn("Herb table lookup failed", "player", req.Player, "error", err)
		return nil, err
	}

	log.Debug("Computing herb table",
		"farming_level", levels.Farming,
		"magic_level", levels.Magic,
		"patches", len(cfg.Patches),
		"herbs", len(herbs))
	return s.engine.HerbTable(&cfg, levels, sheet, herbs)
}

// ResolveLevels determines the farming level and, when Resurrect Crops is
// used, the magic level.
func (s *service) ResolveLevels(ctx context.Context, req HerbRequest) (domain.Levels, error) {
	farming, err := s.resolveLevel(ctx, req.Player, req.FarmingLevel, domain.SkillFarming)
	if err != nil {
		return domain.Levels{}, err
	}
	levels := domain.Levels{Farming: farming}
	if !req.Config.ResurrectCrops {
		return levels, nil
	}

	if req.MagicLevel == 0 && req.Player == "" {
		return domain.Levels{}, domain.ErrMagicLevelRequired
	}
	levels.Magic, err = s.resolveLevel(ctx, req.Player, req.MagicLevel, domain.SkillMagic)
	if err != nil {
		return domain.Levels{}, err
	}
	return levels, nil
}

func (s *service) resolveLevel(ctx context.Context, player string, override int, skill domain.Skill) (int, error) {
	if override != 0 {
		if err := domain.ValidateLevel(override); err != nil {
			return 0, fmt.Errorf("%s: %w", skill, err)
		}
		return override, nil
	}
	if player == "" {
		return 0, domain.ErrNoPlayer
	}
	return s.levels.Level(ctx, player, skill)
}

// DescribePatches lists the configured patches with their active bonuses.
func (s *service) DescribePatches(cfg *domain.HerbConfig) []PatchInfo {
	infos := make([]PatchInfo, 0, len(cfg.Patches))
	for _, p := range cfg.Patches {
		infos = append(infos, PatchInfo{
			Patch:       p,
			Description: Describe(p, cfg),
			DiseaseFree: IsDiseaseFree(p, cfg),
			YieldBonus:  YieldBonus(p, cfg),
			XPBonus:     XPBonus(p, cfg),
		})
	}
	return infos
}
