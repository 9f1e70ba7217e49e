package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/2beens/gymmanager/internal/dashboard"
	"github.com/2beens/gymmanager/internal/gym"
)

func (c *cli) attendanceCmd() *cobra.Command {
	var (
		trainerID int64
		from, to  string
	)

	cmd := &cobra.Command{
		Use:   "attendance",
		Short: "Unique attending members per class session",
		Long: `Lists class sessions with the number of distinct members who attended.
--from and --to go together and both days are included.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if (from == "") != (to == "") {
				return fmt.Errorf("--from and --to must be given together")
			}

			var fromDate, toDate *gym.Date
			if from != "" {
				f, err := gym.ParseDate(from)
				if err != nil {
					return fmt.Errorf("--from: %w", err)
				}
				t, err := gym.ParseDate(to)
				if err != nil {
					return fmt.Errorf("--to: %w", err)
				}
				if t.Before(f.Time) {
					return fmt.Errorf("--to must not be before --from")
				}
				fromDate, toDate = &f, &t
			}

			var tid *int64
			if trainerID > 0 {
				tid = &trainerID
			}

			records, err := c.client.ClassAttendance(cmd.Context(), tid, fromDate, toDate)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			header(out, "Class Attendance")
			summary := dashboard.AttendanceSummary(records)
			if len(summary) == 0 {
				fmt.Fprintln(out, "No attendance records found.")
				return nil
			}
			widths := []int{8, 24, 18}
			row(out, widths, "Session", "Class", "Time", "Attendees")
			for _, s := range summary {
				row(out, widths,
					strconv.FormatInt(s.SessionID, 10),
					s.ClassName,
					s.ClassDatetime.Format("2006-01-02 15:04"),
					strconv.Itoa(s.Attendees),
				)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&trainerID, "trainer", 0, "only sessions of this trainer")
	cmd.Flags().StringVar(&from, "from", "", "first day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "last day (YYYY-MM-DD)")
	return cmd
}
