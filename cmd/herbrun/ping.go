package main

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"
)

// firstWorld is the lowest world number; world N is served by host N-300.
const firstWorld = 301

var errInvalidWorld = fmt.Errorf("invalid world: must be at least %d", firstWorld)

func newPingCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "ping WORLD",
		Short: "Ping a game world",
		Long:  "Runs the system ping against WORLD until interrupted, or --count times.",
		Example: `  herbrun ping 302
  herbrun ping 330 -c 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			world, err := strconv.Atoi(args[0])
			if err != nil || world < firstWorld {
				return fmt.Errorf("%w, got %q", errInvalidWorld, args[0])
			}
			if count < 0 {
				return errors.New("--count must not be negative")
			}

			name, pingArgs := pingCommand(runtime.GOOS, worldHost(world), count)
			ping := exec.CommandContext(cmd.Context(), name, pingArgs...)
			ping.Stdout = cmd.OutOrStdout()
			ping.Stderr = cmd.ErrOrStderr()
			return ping.Run()
		},
	}

	cmd.Flags().IntVarP(&count, "count", "c", 0, "number of pings (0 runs until interrupted)")
	return cmd
}

func worldHost(world int) string {
	return fmt.Sprintf("oldschool%d.runescape.com", world-300)
}

// pingCommand builds the ping invocation for goos. A count of 0 pings until
// the command is cancelled.
func pingCommand(goos, host string, count int) (string, []string) {
	var args []string
	switch {
	case goos == "windows" && count == 0:
		args = []string{"-t"}
	case goos == "windows":
		args = []string{"-n", strconv.Itoa(count)}
	case count > 0:
		args = []string{"-c", strconv.Itoa(count)}
	}
	return "ping", append(args, host)
}
