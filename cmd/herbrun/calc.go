package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/HerbRun_Go/internal/domain"
	"github.com/osse101/HerbRun_Go/internal/drop"
	"github.com/osse101/HerbRun_Go/internal/farming"
	"github.com/osse101/HerbRun_Go/internal/report"
)

func newCalcCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Run a calculator",
	}

	farm := &cobra.Command{
		Use:   "farm",
		Short: "Farming calculators",
	}
	farm.AddCommand(newHerbCmd(a))

	cmd.AddCommand(farm, newDropCmd())
	return cmd
}

type herbOptions struct {
	level  int
	magic  int
	player string
	herbs  []string
}

func newHerbCmd(a *app) *cobra.Command {
	var opts herbOptions

	cmd := &cobra.Command{
		Use:   "herb",
		Short: "Expected yield, XP and profit of a herb run",
		Long: `Calculates the expected outcome of one herb run over the patches saved with
"herbrun config set-herb". Levels given with --lvl and --magic are used as is;
otherwise they are looked up on the hiscores for --player or the default player.`,
		Example: `  herbrun calc farm herb --lvl 85
  herbrun calc farm herb --player zezima --herb ranarr --herb snapdragon`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runHerb(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.level, "lvl", "l", 0, "farming level (looked up on the hiscores when omitted)")
	f.IntVarP(&opts.magic, "magic", "m", 0, "magic level, used with resurrect crops")
	f.StringVarP(&opts.player, "player", "p", "", "player to look up instead of the default player")
	f.StringArrayVar(&opts.herbs, "herb", nil, "only show this herb (repeatable)")
	return cmd
}

func (a *app) runHerb(cmd *cobra.Command, opts herbOptions) error {
	_, userCfg, err := a.userConfig()
	if err != nil {
		return err
	}
	herbCfg := userCfg.Farming.Herbs
	if len(herbCfg.Patches) == 0 {
		return fmt.Errorf("%w: run \"herbrun config set-herb --patches ...\" first", domain.ErrNoPatches)
	}

	req := farming.HerbRequest{
		Config:       herbCfg,
		FarmingLevel: opts.level,
		MagicLevel:   opts.magic,
	}
	needsLookup := opts.level == 0 || (herbCfg.ResurrectCrops && opts.magic == 0)
	if needsLookup || opts.player != "" {
		if req.Player, err = userCfg.Player(opts.player); err != nil {
			return err
		}
	}
	for _, name := range opts.herbs {
		herb, err := farming.MatchHerb(name)
		if err != nil {
			return err
		}
		req.Herbs = append(req.Herbs, herb)
	}

	clients, err := a.upstream()
	if err != nil {
		return err
	}
	svc := farming.NewService(clients.Prices, clients.Hiscore)

	ctx := cmd.Context()
	levels, err := svc.ResolveLevels(ctx, req)
	if err != nil {
		return err
	}
	req.FarmingLevel, req.MagicLevel = levels.Farming, levels.Magic

	rows, err := svc.HerbTable(ctx, req)
	if err != nil {
		return err
	}
	return report.HerbTable(cmd.OutOrStdout(), levels, &herbCfg, rows)
}

func newDropCmd() *cobra.Command {
	var (
		attempts uint64
		rolls    float64
		target   string
	)

	cmd := &cobra.Command{
		Use:   "drop PROB",
		Short: "Chance of a number of drops within some attempts",
		Long: `PROB is the drop rate of one roll: a decimal (0.02), a percentage (2%) or a
fraction (1/50). --target picks which outcomes count: "1+" is at least one drop,
"3-" is at most three and "2" is exactly two.`,
		Example: `  herbrun calc drop 1/5000 -n 5000
  herbrun calc drop 2% -n 100 --target 3+`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := drop.ParseProbability(args[0])
			if err != nil {
				return err
			}
			t, err := drop.ParseTargetRange(target)
			if err != nil {
				return err
			}
			res, err := drop.Calculate(drop.Request{
				Probability: p,
				Attempts:    attempts,
				Rolls:       rolls,
				Target:      t,
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res)
			return err
		},
	}

	f := cmd.Flags()
	f.Uint64VarP(&attempts, "attempts", "n", 0, "number of attempts, e.g. kill count")
	f.Float64Var(&rolls, "rolls", 1, "loot table rolls per attempt")
	f.StringVar(&target, "target", "1+", "successes that count: N+, N- or N")
	_ = cmd.MarkFlagRequired("attempts")
	return cmd
}
