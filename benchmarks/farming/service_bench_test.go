package farming_bench

import (
	"context"
	"testing"

	"github.com/osse101/HerbRun_Go/internal/domain"
	"github.com/osse101/HerbRun_Go/internal/drop"
	"github.com/osse101/HerbRun_Go/internal/farming"
)

// --- Stubs (Zero-overhead sources for benchmarking) ---

type StubPrices struct {
	sheet domain.PriceSheet
}

func newStubPrices() *StubPrices {
	sheet := domain.PriceSheet{}
	for _, herb := range domain.Herbs() {
		info := herb.Info()
		sheet[info.SeedID] = domain.SomePrice(10_000)
		sheet[info.ProductID] = domain.SomePrice(2_500)
	}
	return &StubPrices{sheet: sheet}
}

func (s *StubPrices) Prices(ctx context.Context, ids []int) (domain.PriceSheet, error) {
	return s.sheet, nil
}

type StubLevels struct{}

func (s *StubLevels) Level(ctx context.Context, player string, skill domain.Skill) (int, error) {
	return 90, nil
}

// fullConfig uses every patch and every bonus, the most work per herb.
func fullConfig() domain.HerbConfig {
	return domain.HerbConfig{
		Patches:            domain.HerbPatches(),
		MagicSecateurs:     true,
		FarmingCape:        true,
		BottomlessBucket:   true,
		ResurrectCrops:     true,
		Compost:            domain.CompostUltra,
		AnimaPlant:         domain.AnimaIasor,
		FaladorDiary:       domain.DiaryElite,
		KandarinDiary:      domain.DiaryElite,
		KourendDiary:       domain.DiaryElite,
		HosidiusFiftyFavor: true,
	}
}

// --- Benchmark Functions ---

// BenchmarkHerbTable_AllPatches runs the service end to end with lookups stubbed.
func BenchmarkHerbTable_AllPatches(b *testing.B) {
	svc := farming.NewService(newStubPrices(), &StubLevels{})
	req := farming.HerbRequest{Config: fullConfig(), Player: "zezima"}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.HerbTable(ctx, req); err != nil {
			b.Fatalf("HerbTable failed: %v", err)
		}
	}
}

// BenchmarkHerbTable_SingleHerb measures the fixed cost of one request.
func BenchmarkHerbTable_SingleHerb(b *testing.B) {
	svc := farming.NewService(newStubPrices(), &StubLevels{})
	req := farming.HerbRequest{
		Config:       domain.HerbConfig{Patches: []domain.HerbPatch{domain.PatchCatherby}},
		FarmingLevel: 99,
		Herbs:        []domain.Herb{domain.HerbRanarr},
	}
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.HerbTable(ctx, req); err != nil {
			b.Fatalf("HerbTable failed: %v", err)
		}
	}
}

// BenchmarkDropCalculate_LargeKillCount sums a long binomial tail.
func BenchmarkDropCalculate_LargeKillCount(b *testing.B) {
	req := drop.Request{
		Probability: 1.0 / 5000,
		Attempts:    20_000,
		Rolls:       1,
		Target:      drop.TargetRange{Bound: drop.AtMost, K: 10},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := drop.Calculate(req); err != nil {
			b.Fatalf("Calculate failed: %v", err)
		}
	}
}
