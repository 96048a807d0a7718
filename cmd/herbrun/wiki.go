package main

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
)

const wikiURL = "https://oldschool.runescape.wiki/"

func newWikiCmd() *cobra.Command {
	var open bool

	cmd := &cobra.Command{
		Use:   "wiki QUERY...",
		Short: "Search the wiki",
		Long:  "Prints the wiki search URL for QUERY, or opens it in a browser with --open.",
		Example: `  herbrun wiki ranarr weed
  herbrun wiki --open tithe farm`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			link := wikiSearchURL(strings.Join(args, " "))
			if !open {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), link)
				return err
			}
			name, openArgs := browserCommand(runtime.GOOS, link)
			return exec.CommandContext(cmd.Context(), name, openArgs...).Start()
		},
	}

	cmd.Flags().BoolVar(&open, "open", false, "open the results in a browser")
	return cmd
}

func wikiSearchURL(query string) string {
	return wikiURL + "?" + url.Values{"search": {query}}.Encode()
}

func browserCommand(goos, link string) (string, []string) {
	switch goos {
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", link}
	case "darwin":
		return "open", []string{link}
	default:
		return "xdg-open", []string{link}
	}
}
