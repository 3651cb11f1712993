package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"hunttrack/internal/bootstrap"
	metricsdto "hunttrack/internal/modules/metrics/dto"
	"hunttrack/internal/platform/minutes"
)

func newDashboardCmd(opts *rootOptions) *cobra.Command {
	var asJSON, publish bool
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Print dashboard metrics and feedback",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd, func(ctx context.Context, a *bootstrap.App) error {
				get := a.MetricsCLI.Dashboard
				if publish {
					get = a.MetricsCLI.Publish
				}
				out, err := get(ctx)
				if err != nil {
					return err
				}
				if asJSON {
					return printJSON(cmd.OutOrStdout(), out)
				}
				printDashboard(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	cmd.Flags().BoolVar(&publish, "publish", false, "also publish the snapshot to redis")
	return cmd
}

func printDashboard(w io.Writer, d metricsdto.DashboardOutput) {
	a, s := d.Applications, d.Study
	_, _ = fmt.Fprintf(w, "today %s\n\n", d.Today)
	_, _ = fmt.Fprintf(w, "applications  total=%d active=%d interviews=%d rate=%.1f%% avg_response=%.1fd per_week=%.1f\n",
		a.Total, a.Active, a.Interviews, a.InterviewRate, a.AvgResponseDays, a.RatePerWeek)
	_, _ = fmt.Fprintf(w, "this week     %d/%d (%d to go)\n", a.ThisWeek, a.WeeklyGoal, a.RemainingThisWeek)
	for _, c := range d.Distribution {
		_, _ = fmt.Fprintf(w, "  %-12s %d\n", c.Status, c.Count)
	}
	_, _ = fmt.Fprintf(w, "\nstudy         total=%s days=%d avg=%.0fm/day consistency=%.0f%%\n",
		minutes.Format(s.TotalMinutes), s.StudyDays, s.AvgMinutesPerDay, s.ConsistencyPct)
	_, _ = fmt.Fprintf(w, "today         %s of %s\n", minutes.Format(s.TodayMinutes), minutes.Format(s.DailyTarget))
	_, _ = fmt.Fprintf(w, "this week     %s\n", minutes.Format(s.WeekMinutes))
	_, _ = fmt.Fprintf(w, "streak        current=%d longest=%d\n", s.CurrentStreak, s.LongestStreak)
	if d.Feedback.Message != "" {
		_, _ = fmt.Fprintf(w, "\n%s\n", d.Feedback.Message)
	}
}

func newAchievementsCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "achievements",
		Short: "Check and list milestones",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd, func(ctx context.Context, a *bootstrap.App) error {
				fresh, err := a.AchievementCLI.Check(ctx)
				if err != nil {
					return err
				}
				all, err := a.AchievementCLI.List(ctx)
				if err != nil {
					return err
				}
				if asJSON {
					return printJSON(cmd.OutOrStdout(), all)
				}
				for _, f := range fresh {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "unlocked: %s\n", f.Title)
				}
				for _, item := range all {
					mark := " "
					if item.Unlocked {
						mark = "x"
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%s] %-22s %3.0f%%  %s\n", mark, item.Title, item.Progress*100, item.Description)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func newAttachCmd(opts *rootOptions) *cobra.Command {
	attach := &cobra.Command{Use: "attach", Short: "Store resumes and cover letters"}

	var kind, company, role string
	save := &cobra.Command{
		Use:   "save <file>",
		Short: "Copy a file into storage and print its ref",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(ctx context.Context, a *bootstrap.App) error {
				out, err := a.AttachmentCLI.Save(ctx, kind, company, role, args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", out.Ref)
				return nil
			})
		},
	}
	save.Flags().StringVar(&kind, "kind", "resume", "resume|cover_letter")
	save.Flags().StringVar(&company, "company", "", "company")
	save.Flags().StringVar(&role, "role", "", "role")

	inspect := &cobra.Command{
		Use:   "inspect <ref>",
		Short: "Show metadata of a stored file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(ctx context.Context, a *bootstrap.App) error {
				out, err := a.AttachmentCLI.Inspect(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), out)
			})
		},
	}

	remove := &cobra.Command{
		Use:   "delete <ref>",
		Short: "Delete a stored file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(ctx context.Context, a *bootstrap.App) error {
				if err := a.AttachmentCLI.Delete(ctx, args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
				return nil
			})
		},
	}

	attach.AddCommand(save, inspect, remove)
	return attach
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	export := &cobra.Command{Use: "export", Short: "Export data"}

	var output string
	csvCmd := &cobra.Command{
		Use:   "csv <applications|study>",
		Short: "Write records as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(ctx context.Context, a *bootstrap.App) error {
				w := cmd.OutOrStdout()
				if output != "" {
					f, err := os.Create(output)
					if err != nil {
						return fmt.Errorf("create %s: %w", output, err)
					}
					defer func() { _ = f.Close() }()
					w = f
				}
				out, err := a.ReportCLI.ExportCSV(ctx, args[0], w)
				if err != nil {
					return err
				}
				if output != "" {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d %s rows to %s\n", out.Rows, out.Kind, output)
				}
				return nil
			})
		},
	}
	csvCmd.Flags().StringVarP(&output, "output", "o", "", "file to write (default stdout)")

	var date, path string
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Write or refresh the weekly markdown report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd, func(ctx context.Context, a *bootstrap.App) error {
				out, err := a.ReportCLI.WeeklyReport(ctx, date, path)
				if err != nil {
					return err
				}
				verb := "updated"
				if out.Created {
					verb = "created"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s report %s (%d applications, %s study)\n", verb, out.Week, out.Path, out.Applications, minutes.Format(out.StudyMinutes))
				return nil
			})
		},
	}
	reportCmd.Flags().StringVar(&date, "date", "", "any date in the week (default today)")
	reportCmd.Flags().StringVar(&path, "path", "", "report file (default <data>/reports/<week>.md)")

	export.AddCommand(csvCmd, reportCmd)
	return export
}
