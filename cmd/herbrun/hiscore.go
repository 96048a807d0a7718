package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/HerbRun_Go/internal/domain"
	"github.com/osse101/HerbRun_Go/internal/report"
)

func newHiscoreCmd(a *app) *cobra.Command {
	var skill string

	cmd := &cobra.Command{
		Use:   "hiscore [PLAYER]",
		Short: "Show a player's hiscore entry",
		Long:  "Shows every skill, or only --skill, for PLAYER or the default player.",
		Example: `  herbrun hiscore zezima
  herbrun hiscore "iron mammal" --skill farming`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := a.userConfig()
			if err != nil {
				return err
			}
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			if name, err = cfg.Player(name); err != nil {
				return err
			}

			var only domain.Skill
			if skill != "" {
				if only, err = domain.ParseSkill(skill); err != nil {
					return err
				}
			}

			clients, err := a.upstream()
			if err != nil {
				return err
			}
			player, err := clients.Hiscore.Player(cmd.Context(), name)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if skill == "" {
				return report.HiscoreTable(out, player)
			}
			for _, s := range player.Skills {
				if s.Skill == only {
					_, err = fmt.Fprintln(out, skillLine(player.Name, s))
					return err
				}
			}
			_, err = fmt.Fprintf(out, "%s is unranked in %s\n", player.Name, report.Title(only.String()))
			return err
		},
	}

	cmd.Flags().StringVarP(&skill, "skill", "s", "", "only show this skill")
	return cmd
}

// skillLine renders one skill, e.g. "zezima Farming: level 85 (3,258,594 xp, rank 120,345)".
func skillLine(player string, s domain.SkillLevel) string {
	name := report.Title(s.Skill.String())
	if s.Rank < 0 {
		return fmt.Sprintf("%s %s: unranked", player, name)
	}
	return fmt.Sprintf("%s %s: level %s (%s xp, rank %s)", player, name,
		report.FormatInt(int64(s.Level)), report.FormatInt(s.XP), report.FormatInt(int64(s.Rank)))
}
