package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/2beens/gymmanager/internal/dashboard"
)

func (c *cli) revenueCmd() *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "revenue",
		Short: "Revenue reports, --from and --to are both included",
	}
	cmd.PersistentFlags().StringVar(&from, "from", "", "first day (YYYY-MM-DD), 30 days before --to by default")
	cmd.PersistentFlags().StringVar(&to, "to", "", "last day (YYYY-MM-DD), today by default")

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Billed, paid, pending and overdue totals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dr, err := c.dayRange(from, to)
			if err != nil {
				return err
			}
			summary, err := c.client.RevenueSummary(cmd.Context(), dr)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			header(out, fmt.Sprintf("Revenue %s - %s", dr.Start, dr.End.AddDays(-1)))
			widths := []int{16}
			row(out, widths, "Total billed", money(summary.TotalBilled))
			row(out, widths, "Paid", color.GreenString(money(summary.PaidRevenue)))
			row(out, widths, "Pending", money(summary.PendingRevenue))
			row(out, widths, "Overdue", color.RedString(money(summary.OverdueRevenue)))
			return nil
		},
	}

	trainersCmd := &cobra.Command{
		Use:   "trainers",
		Short: "Revenue per trainer, highest paid first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dr, err := c.dayRange(from, to)
			if err != nil {
				return err
			}
			report, err := c.client.RevenueByTrainer(cmd.Context(), dr)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			header(out, "Revenue by Trainer")
			widths := []int{32, 12}
			row(out, widths, "Trainer", "Billed", "Paid")
			for _, t := range report.Trainers {
				row(out, widths, dashboard.TrainerDisplayName(t.FirstName, t.LastName, t.TrainerID), money(t.TotalBilled), money(t.PaidRevenue))
			}
			return nil
		},
	}

	var trainerID int64
	classesCmd := &cobra.Command{
		Use:   "classes",
		Short: "Daily paid class revenue per trainer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dr, err := c.dayRange(from, to)
			if err != nil {
				return err
			}
			var tid *int64
			if trainerID > 0 {
				tid = &trainerID
			}
			report, err := c.client.ClassRevenueTrend(cmd.Context(), dr, tid)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			header(out, "Class Revenue")
			if len(report.Data) == 0 {
				fmt.Fprintln(out, "No revenue records found for this selection.")
				return nil
			}
			widths := []int{12, 32}
			row(out, widths, "Date", "Trainer", "Revenue")
			for _, p := range report.Data {
				row(out, widths, p.RevenueDate.String(), dashboard.TrainerDisplayName(p.FirstName, p.LastName, p.TrainerID), money(p.TotalRevenue))
			}
			return nil
		},
	}
	classesCmd.Flags().Int64Var(&trainerID, "trainer", 0, "only this trainer")

	categoriesCmd := &cobra.Command{
		Use:   "categories",
		Short: "Cumulative revenue per invoice category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dr, err := c.dayRange(from, to)
			if err != nil {
				return err
			}
			report, err := c.client.RevenueByCategory(cmd.Context(), dr)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			header(out, "Cumulative Revenue by Category")
			if len(report.Data) == 0 {
				fmt.Fprintln(out, "No category revenue data found for this range.")
				return nil
			}
			widths := []int{16, 12, 10}
			row(out, widths, "Category", "Date", "Revenue", "Cumulative")
			for _, p := range dashboard.CumulativeCategoryRevenue(report.Data) {
				row(out, widths, p.Category, p.Date.String(), money(p.Revenue), money(p.Cumulative))
			}

			fmt.Fprintln(out)
			header(out, "Totals")
			widths = []int{16, 14}
			row(out, widths, "Category", "Total Revenue", "Paid Revenue")
			for _, t := range dashboard.CategoryTotals(report.Data) {
				row(out, widths, t.Category, money(t.TotalRevenue), money(t.PaidRevenue))
			}
			return nil
		},
	}

	cmd.AddCommand(summaryCmd, trainersCmd, classesCmd, categoriesCmd)
	return cmd
}

