package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hunttrack/internal/bootstrap"
	studydto "hunttrack/internal/modules/study/dto"
	"hunttrack/internal/platform/minutes"
)

func newStudyCmd(opts *rootOptions) *cobra.Command {
	study := &cobra.Command{Use: "study", Short: "Manage study logs"}
	study.AddCommand(
		newStudyLogCmd(opts),
		newStudyUpdateCmd(opts),
		newStudyListCmd(opts),
		newStudyDeleteCmd(opts),
		newStudyResetCmd(opts),
	)
	return study
}

func newStudyLogCmd(opts *rootOptions) *cobra.Command {
	var date, notes string
	cmd := &cobra.Command{
		Use:   "log <duration>",
		Short: "Log study time, e.g. 90, 1h30m, 1:30 or 1.5h",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			duration := strings.Join(args, " ")
			return opts.run(cmd, func(ctx context.Context, a *bootstrap.App) error {
				out, err := a.StudyCLI.Log(ctx, date, duration, notes)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged %s on %s (%s)\n", minutes.Format(out.Minutes), out.Date, out.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "study date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&notes, "notes", "", "topics covered")
	return cmd
}

func newStudyUpdateCmd(opts *rootOptions) *cobra.Command {
	var date, duration, notes string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change a study log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := studydto.UpdateInput{ID: args[0]}
			if cmd.Flags().Changed("date") {
				input.Date = &date
			}
			if cmd.Flags().Changed("duration") {
				input.Duration = &duration
			}
			if cmd.Flags().Changed("notes") {
				input.TopicNotes = &notes
			}
			return opts.run(cmd, func(ctx context.Context, a *bootstrap.App) error {
				out, err := a.StudyCLI.Update(ctx, input)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated %s %s %s\n", out.ID, out.Date, minutes.Format(out.Minutes))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "study date YYYY-MM-DD")
	cmd.Flags().StringVar(&duration, "duration", "", "duration")
	cmd.Flags().StringVar(&notes, "notes", "", "topics covered")
	return cmd
}

func newStudyListCmd(opts *rootOptions) *cobra.Command {
	var from, to string
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List study logs by date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd, func(ctx context.Context, a *bootstrap.App) error {
				logs, err := a.StudyCLI.List(ctx, from, to)
				if err != nil {
					return err
				}
				if asJSON {
					return printJSON(cmd.OutOrStdout(), logs)
				}
				if len(logs) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no study logs")
					return nil
				}
				for _, l := range logs {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", l.ID, l.Date, minutes.Format(l.Minutes), l.TopicNotes)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "earliest date")
	cmd.Flags().StringVar(&to, "to", "", "latest date")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func newStudyDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one study log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(ctx context.Context, a *bootstrap.App) error {
				if err := a.StudyCLI.Delete(ctx, args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
				return nil
			})
		},
	}
}

func newStudyResetCmd(opts *rootOptions) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset --yes",
		Short: "Delete every study log",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete all study logs without --yes")
			}
			return opts.run(cmd, func(ctx context.Context, a *bootstrap.App) error {
				out, err := a.StudyCLI.Reset(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %d study logs\n", out.Deleted)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm")
	return cmd
}
