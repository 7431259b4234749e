package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"parking_kiosk/internal/backend"
	"parking_kiosk/internal/board"
	"parking_kiosk/internal/config"
	"parking_kiosk/internal/models"
)

func newHistoryCmd() *cobra.Command {
	var (
		start  string
		end    string
		period string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print the backend's parking history as the kiosk renders it",
		Example: `  parking-kiosk history
  parking-kiosk history --start 2024-05-01 --end 2024-05-31
  parking-kiosk history --period today`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			if limit <= 0 {
				limit = cfg.History.Limit
			}
			rng := models.DateRange{Start: start, End: end}
			title := ""
			if period != "" {
				if rng, title, err = board.RevenuePeriod(period, time.Now(), rng); err != nil {
					return err
				}
			} else if (start == "") != (end == "") {
				return board.ErrIncompleteRange
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Backend.Timeout+time.Second)
			defer cancel()
			records, err := backend.New(cfg.Backend.URL, cfg.Backend.Timeout).History(ctx, rng)
			if err != nil {
				return fmt.Errorf("fetch history: %w", err)
			}

			f := board.NewFormatter(cfg.Locale)
			printHistory(cmd, board.RenderTable(records, f), limit)
			rev := board.ComputeRevenue(records)
			if title == "" {
				title = "Doanh Thu"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%s: %s (vào %d, ra %d)\n", title, f.Money(rev.Total), rev.Entries, rev.Exits)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "first day, YYYY-MM-DD")
	cmd.Flags().StringVar(&end, "end", "", "last day, YYYY-MM-DD")
	cmd.Flags().StringVar(&period, "period", "", "revenue period: today, yesterday, this_month or custom")
	cmd.Flags().IntVar(&limit, "limit", 0, "rows to print (default history.limit)")
	return cmd
}

func printHistory(cmd *cobra.Command, rows []board.Row, limit int) {
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	table := uitable.New()
	table.MaxColWidth = 40
	table.AddRow("THỜI GIAN", "BIỂN SỐ", "TRẠNG THÁI", "PHÍ", "ẢNH")
	for _, r := range rows {
		visual := r.ImageURL
		if r.Visual == board.VisualRFID {
			visual = "RFID"
		}
		table.AddRow(r.Time, r.Plate, r.Status, r.Fee, visual)
	}
	fmt.Fprintln(cmd.OutOrStdout(), table)
}
