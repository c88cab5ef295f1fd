package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"sportscal/internal/calendar"
	"sportscal/internal/catalogue"
	"sportscal/internal/extract"
	"sportscal/internal/filter"
)

var outDir string

func main() {
	root := &cobra.Command{
		Use:   "sportscli",
		Short: "Generate sports calendar files from the built-in event catalogue",
	}
	root.PersistentFlags().StringVarP(&outDir, "out", "o", "./calendars", "directory to write .ics files into")

	root.AddCommand(
		presetCmd("all", "Every event in the catalogue", filter.Filter{
			Filename: "all_sports_events", Summary: "All sports events",
		}),
		presetCmd("tennis", "Tennis events only", filter.Filter{
			Sports: []string{"tennis"}, Filename: "tennis_events", Summary: "Tennis events",
		}),
		presetCmd("football", "Football events only", filter.Filter{
			Sports: []string{"football"}, Filename: "football_events", Summary: "Football events",
		}),
		presetCmd("finals", "Finals and semifinals across all sports", filter.Filter{
			Keywords: []string{"final", "semifinal"}, Filename: "finals_events", Summary: "Finals",
		}),
		teamsCmd(),
		extractCmd(),
		sampleCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func presetCmd(name, short string, f filter.Filter) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeCalendar(f)
		},
	}
}

func teamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "teams <name>...",
		Short: "Events featuring the given teams or players",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeCalendar(filter.Filter{
				Teams:    args,
				Filename: strings.ToLower(strings.Join(args, "_")) + "_events",
				Summary:  "Events featuring " + strings.Join(args, ", "),
			})
		},
	}
}

func extractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <request>",
		Short: "Turn a natural-language request into a calendar",
		Long:  `Runs the rule-based extractor over the given text, e.g. "tennis finals" or "barca games".`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			f, err := extract.NewRuleExtractor().Extract(context.Background(), text)
			if err != nil {
				return err
			}
			fmt.Printf("Detected: %s\n", f.Summary)
			return writeCalendar(f)
		},
	}
}

func sampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "One calendar per sport, to eyeball the output",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, sport := range []string{"tennis", "football"} {
				err := writeCalendar(filter.Filter{
					Sports:   []string{sport},
					Filename: "sample_" + sport,
					Summary:  strings.ToUpper(sport[:1]) + sport[1:] + " sample",
				})
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func writeCalendar(f filter.Filter) error {
	f.Normalize()
	data, err := calendar.Render(catalogue.Events(), &f)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", f.Filename, err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	path := filepath.Join(outDir, f.Filename+".ics")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}
