package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/multi-date-picker/internal/export"
	"github.com/username/multi-date-picker/internal/picker"
	"github.com/username/multi-date-picker/internal/render"
	"github.com/username/multi-date-picker/internal/tui"
	"github.com/username/multi-date-picker/pkg/dateutil"
	"go.uber.org/zap"
)

func showCmd() *cobra.Command {
	var month, year int

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the month grid with the stored selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			s, err := newSession(cfg, logger, false)
			if err != nil {
				return err
			}
			return runShow(cmd.OutOrStdout(), s, time.Month(month), year)
		},
	}

	cmd.Flags().IntVar(&month, "month", 0, "Month to show (1-12, default: month of the selection)")
	cmd.Flags().IntVar(&year, "year", 0, "Year to show (default: year of the selection)")

	return cmd
}

func runShow(w io.Writer, s *session, month time.Month, year int) error {
	if month != 0 || year != 0 {
		ref := s.model.ReferenceDate()
		if month == 0 {
			month = ref.Month()
		}
		if year == 0 {
			year = ref.Year()
		}
		if !s.model.JumpTo(month, year) {
			return fmt.Errorf("cannot show %d-%02d: month must be 1..12 and year %d..%d", year, month, picker.MinYear, picker.MaxYear)
		}
	}

	fmt.Fprintln(w, render.Month(s.model, 0))
	return nil
}

func pickCmd() *cobra.Command {
	var (
		dates  []string
		format string
		fresh  bool
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Tap days by date and print the resulting selection",
		Long: `Tap each --select date in order, as if clicked in the grid, then print
the selection. In "any" mode a second tap on a day deselects it; in "range"
mode two taps make a range. Days that are not selectable are skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			s, err := newSession(cfg, logger, fresh)
			if err != nil {
				return err
			}
			return runPick(cmd.OutOrStdout(), cmd.ErrOrStderr(), s, dates, format, dryRun)
		},
	}

	cmd.Flags().StringArrayVarP(&dates, "select", "s", nil, "Date to tap (YYYY-MM-DD, repeatable)")
	cmd.Flags().StringVarP(&format, "format", "f", export.FormatJSON, "Output format: json or ics")
	cmd.Flags().BoolVar(&fresh, "fresh", false, "Ignore the stored selection")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Do not save the selection")

	return cmd
}

func runPick(out, errOut io.Writer, s *session, dates []string, format string, dryRun bool) error {
	for _, str := range dates {
		date, err := dateutil.ParseDate(str, time.Local)
		if err != nil {
			return err
		}
		if !s.tap(date) {
			fmt.Fprintf(errOut, "skipped %s: not selectable\n", date.Format(dateutil.DateLayout))
		}
	}

	if !dryRun {
		if err := s.store.Save(); err != nil {
			return fmt.Errorf("failed to save selection: %w", err)
		}
	}

	return export.Write(out, format, export.ValueOf(s.model))
}

func tuiCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Pick days interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			// console logging would draw over the alternate screen
			log := logger
			if cfg.Log.File == "" {
				log = zap.NewNop()
			}

			s, err := newSession(cfg, log, false)
			if err != nil {
				return err
			}
			s.persist = true

			if err := tui.Run(s.model); err != nil {
				return fmt.Errorf("interactive picker failed: %w", err)
			}
			return export.Write(cmd.OutOrStdout(), format, export.ValueOf(s.model))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", export.FormatJSON, "Output format: json or ics")

	return cmd
}

func clearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget the stored selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			s, err := newSession(cfg, logger, true)
			if err != nil {
				return err
			}
			if err := s.store.Clear(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Selection cleared (%s)\n", cfg.State.SelectionFile)
			return nil
		},
	}
}
