package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/2beens/gymmanager/internal/apiclient"
	"github.com/2beens/gymmanager/internal/gym"
)

const defaultAPIURL = "http://localhost:4000"

type cli struct {
	apiURL string
	client *apiclient.Client
	now    func() time.Time
}

func newRootCmd() *cobra.Command {
	c := &cli{now: time.Now}

	rootCmd := &cobra.Command{
		Use:   "gymctl",
		Short: "Gym manager reports in the terminal",
		Long: `gymctl prints the gym manager dashboard tables.

EXAMPLES:

  gymctl stats                                   # member, trainer and nutritionist counts
  gymctl revenue summary --from 2025-03-01       # revenue from a day until today
  gymctl revenue classes --trainer 4             # class revenue of one trainer
  gymctl revenue categories                      # cumulative revenue per category
  gymctl attendance --from 2025-03-01 --to 2025-03-07

The API address is read from --api-url or GYM_API_URL.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if c.apiURL == "" {
				c.apiURL = defaultAPIURL
			}
			c.client = apiclient.NewClient(c.apiURL, nil)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&c.apiURL, "api-url", os.Getenv("GYM_API_URL"), "gym manager API base URL")

	rootCmd.AddCommand(
		c.statsCmd(),
		c.revenueCmd(),
		c.attendanceCmd(),
	)
	return rootCmd
}

// dayRange turns the inclusive from/to flags into a half open range,
// the last 30 days when from is not set.
func (c *cli) dayRange(from, to string) (gym.DateRange, error) {
	today := c.now().UTC()
	end := gym.NewDate(today.Year(), today.Month(), today.Day())
	if to != "" {
		parsed, err := gym.ParseDate(to)
		if err != nil {
			return gym.DateRange{}, err
		}
		end = parsed
	}

	start := end.AddDays(-30)
	if from != "" {
		parsed, err := gym.ParseDate(from)
		if err != nil {
			return gym.DateRange{}, err
		}
		start = parsed
	}

	if !start.Before(end.Time) {
		return gym.DateRange{}, fmt.Errorf("--to must be after --from")
	}
	return gym.DateRange{Start: start, End: end.AddDays(1)}, nil
}

func header(w io.Writer, title string) {
	fmt.Fprintln(w, color.New(color.FgCyan, color.Bold).Sprint(title))
}

func row(w io.Writer, widths []int, cols ...string) {
	var b strings.Builder
	for i, col := range cols {
		if i < len(widths) {
			col = padRight(col, widths[i])
		}
		b.WriteString(col)
		b.WriteString(" ")
	}
	fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
