package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osse101/HerbRun_Go/internal/report"
)

const herbSection = "farming.herbs."

// herbFlags maps set-herb flags to their key under farming.herbs.
var herbFlags = []struct {
	flag, key, usage string
	isBool           bool
}{
	{"patches", "patches", "herb patches you use, comma separated (e.g. catherby,ardougne,guild)", false},
	{"compost", "compost", "compost applied each run: none, normal, super or ultra", false},
	{"anima", "anima_plant", "anima plant planted in Kourend: none, kronos, iasor or attas", false},
	{"secateurs", "magic_secateurs", "magic secateurs equipped", true},
	{"cape", "farming_cape", "farming cape equipped", true},
	{"bucket", "bottomless_bucket", "compost applied with the bottomless bucket", true},
	{"resurrect", "resurrect_crops", "cast Resurrect Crops on dead patches", true},
	{"falador", "falador_diary", "Falador diary tier: none, easy, medium, hard or elite", false},
	{"kandarin", "kandarin_diary", "Kandarin diary tier: none, easy, medium, hard or elite", false},
	{"kourend", "kourend_diary", "Kourend & Kebos diary tier: none, easy, medium, hard or elite", false},
	{"hosidius-favor", "hosidius_fifty_favor", "50% Hosidius favour", true},
}

var errNoSettings = errors.New("no settings given, see --help")

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change saved settings",
	}
	cmd.AddCommand(
		newConfigGetCmd(a),
		newConfigSetCmd(a),
		newConfigSetHerbCmd(a),
		newConfigPathCmd(a),
	)
	return cmd
}

func newConfigGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "get [KEY]",
		Short:   "Print a setting, or every setting when KEY is omitted",
		Example: "  herbrun config get farming.herbs.compost",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := a.userConfig()
			if err != nil {
				return err
			}
			key := ""
			if len(args) == 1 {
				key = args[0]
			}
			value, err := cfg.Get(key)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}
}

func newConfigSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Change one setting",
		Example: `  herbrun config set default_player zezima
  herbrun config set farming.herbs.patches catherby,ardougne`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, cfg, err := a.userConfig()
			if err != nil {
				return err
			}
			changed, err := cfg.Set(args[0], args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !changed {
				_, err = fmt.Fprintf(out, "%s unchanged\n", args[0])
				return err
			}
			if err := store.Save(cfg); err != nil {
				return err
			}
			value, err := cfg.Get(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "%s = %s\n", args[0], value)
			return err
		},
	}
}

func newConfigSetHerbCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-herb",
		Short: "Change the herb run setup",
		Long: `Updates the farming.herbs settings used by "herbrun calc farm herb". Only
the flags given are changed.`,
		Example: `  herbrun config set-herb --patches catherby,ardougne,guild --compost ultra
  herbrun config set-herb --secateurs --kandarin hard`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSetHerb(cmd)
		},
	}

	f := cmd.Flags()
	for _, hf := range herbFlags {
		switch {
		case hf.isBool:
			f.Bool(hf.flag, false, hf.usage)
		case hf.key == "patches":
			f.StringSlice(hf.flag, nil, hf.usage)
		default:
			f.String(hf.flag, "", hf.usage)
		}
	}
	return cmd
}

func (a *app) runSetHerb(cmd *cobra.Command) error {
	store, cfg, err := a.userConfig()
	if err != nil {
		return err
	}

	f := cmd.Flags()
	given, changed := 0, false
	for _, hf := range herbFlags {
		if !f.Changed(hf.flag) {
			continue
		}
		given++
		raw := f.Lookup(hf.flag).Value.String()
		if hf.key == "patches" {
			patches, err := f.GetStringSlice(hf.flag)
			if err != nil {
				return err
			}
			raw = strings.Join(patches, ",")
		}
		c, err := cfg.Set(herbSection+hf.key, raw)
		if err != nil {
			return fmt.Errorf("--%s: %w", hf.flag, err)
		}
		changed = changed || c
	}
	if given == 0 {
		return errNoSettings
	}

	if changed {
		if err := store.Save(cfg); err != nil {
			return err
		}
	}
	return report.ConfigSummary(cmd.OutOrStdout(), &cfg.Farming.Herbs)
}

func newConfigPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where the config file lives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := a.store()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), store.Path())
			return err
		},
	}
}
