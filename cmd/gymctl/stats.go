package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/2beens/gymmanager/internal/dashboard"
	"github.com/2beens/gymmanager/internal/gym"
)

func (c *cli) statsCmd() *cobra.Command {
	var recent int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Quick counts and recent workouts of active members",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			active, err := c.client.Members(ctx, gym.MemberStatus.Active)
			if err != nil {
				return fmt.Errorf("load members: %w", err)
			}
			trainers, err := c.client.Trainers(ctx)
			if err != nil {
				return fmt.Errorf("load trainers: %w", err)
			}
			nutritionists, err := c.client.Nutritionists(ctx)
			if err != nil {
				return fmt.Errorf("load nutritionists: %w", err)
			}

			header(out, "Quick Stats")
			widths := []int{16}
			row(out, widths, "Active Members", strconv.Itoa(len(active)))
			row(out, widths, "Trainers", strconv.Itoa(len(trainers)))
			row(out, widths, "Nutritionists", strconv.Itoa(len(nutritionists)))

			if recent > len(active) {
				recent = len(active)
			}
			members := active[:recent]
			logs := make(map[int64][]gym.WorkoutLog, len(members))
			for _, m := range members {
				memberLogs, err := c.client.MemberWorkoutLogs(ctx, m.MemberID)
				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), color.YellowString("workout logs of member %d: %s", m.MemberID, err))
					continue
				}
				logs[m.MemberID] = memberLogs
			}

			fmt.Fprintln(out)
			header(out, "Recent Activity")
			widths = []int{6, 24, 9, 9}
			row(out, widths, "ID", "Member", "Workouts", "Sessions", "Last workout")
			for _, t := range dashboard.MemberWorkoutTotals(members, logs) {
				last := "-"
				if t.LastWorkout != nil {
					last = t.LastWorkout.String()
				}
				row(out, widths, strconv.FormatInt(t.MemberID, 10), t.Name, strconv.Itoa(t.Workouts), strconv.Itoa(t.Sessions), last)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&recent, "recent", "n", 5, "number of active members shown in recent activity")
	return cmd
}
