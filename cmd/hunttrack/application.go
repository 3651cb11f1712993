package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"hunttrack/internal/bootstrap"
	applicationdto "hunttrack/internal/modules/application/dto"
)

func newAppCmd(opts *rootOptions) *cobra.Command {
	app := &cobra.Command{Use: "app", Short: "Manage job applications"}
	app.AddCommand(
		newAppAddCmd(opts),
		newAppUpdateCmd(opts),
		newAppListCmd(opts),
		newAppShowCmd(opts),
		newAppDeleteCmd(opts),
		newAppResetCmd(opts),
	)
	return app
}

func newAppAddCmd(opts *rootOptions) *cobra.Command {
	var input applicationdto.AddInput
	cmd := &cobra.Command{
		Use:   "add <company> <role>",
		Short: "Record a new application",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input.Company, input.Role = args[0], args[1]
			return opts.run(cmd, func(ctx context.Context, a *bootstrap.App) error {
				out, err := a.ApplicationCLI.Add(ctx, input)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s at %s (%s) status=%s applied=%s\n", out.Role, out.Company, out.ID, out.Status, out.AppliedDate)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&input.Status, "status", "", "initial status (default first configured)")
	cmd.Flags().StringVar(&input.AppliedDate, "date", "", "applied date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&input.ResumeRef, "resume", "", "stored resume ref")
	cmd.Flags().StringVar(&input.CoverLetterRef, "cover-letter", "", "stored cover letter ref")
	cmd.Flags().StringVar(&input.Notes, "notes", "", "free-form notes")
	return cmd
}

func newAppUpdateCmd(opts *rootOptions) *cobra.Command {
	var company, role, status, date, resume, cover, notes string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := applicationdto.UpdateInput{ID: args[0]}
			flags := cmd.Flags()
			set := func(name string, value string, field **string) {
				if flags.Changed(name) {
					v := value
					*field = &v
				}
			}
			set("company", company, &input.Company)
			set("role", role, &input.Role)
			set("status", status, &input.Status)
			set("date", date, &input.AppliedDate)
			set("resume", resume, &input.ResumeRef)
			set("cover-letter", cover, &input.CoverLetterRef)
			set("notes", notes, &input.Notes)
			return opts.run(cmd, func(ctx context.Context, a *bootstrap.App) error {
				out, err := a.ApplicationCLI.Update(ctx, input)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated %s status=%s last_updated=%s\n", out.ID, out.Status, out.LastUpdated)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&company, "company", "", "company")
	cmd.Flags().StringVar(&role, "role", "", "role")
	cmd.Flags().StringVar(&status, "status", "", "status")
	cmd.Flags().StringVar(&date, "date", "", "applied date YYYY-MM-DD")
	cmd.Flags().StringVar(&resume, "resume", "", "stored resume ref")
	cmd.Flags().StringVar(&cover, "cover-letter", "", "stored cover letter ref")
	cmd.Flags().StringVar(&notes, "notes", "", "notes")
	return cmd
}

func newAppListCmd(opts *rootOptions) *cobra.Command {
	var statuses []string
	var from, to string
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List applications by applied date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd, func(ctx context.Context, a *bootstrap.App) error {
				apps, err := a.ApplicationCLI.List(ctx, statuses, from, to)
				if err != nil {
					return err
				}
				if asJSON {
					return printJSON(cmd.OutOrStdout(), apps)
				}
				if len(apps) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no applications")
					return nil
				}
				for _, item := range apps {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\n", item.ID, item.AppliedDate, item.Status, item.Company, item.Role)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringSliceVar(&statuses, "status", nil, "only these statuses")
	cmd.Flags().StringVar(&from, "from", "", "earliest applied date")
	cmd.Flags().StringVar(&to, "to", "", "latest applied date")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func newAppShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(ctx context.Context, a *bootstrap.App) error {
				out, err := a.ApplicationCLI.Get(ctx, args[0])
				if err != nil {
					return err
				}
				printApplication(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
}

func printApplication(w io.Writer, a applicationdto.ApplicationOutput) {
	_, _ = fmt.Fprintf(w, "id: %s\ncompany: %s\nrole: %s\nstatus: %s\napplied: %s\nupdated: %s\n", a.ID, a.Company, a.Role, a.Status, a.AppliedDate, a.LastUpdated)
	if a.ResumeRef != "" {
		_, _ = fmt.Fprintf(w, "resume: %s\n", a.ResumeRef)
	}
	if a.CoverLetterRef != "" {
		_, _ = fmt.Fprintf(w, "cover letter: %s\n", a.CoverLetterRef)
	}
	if strings.TrimSpace(a.Notes) != "" {
		_, _ = fmt.Fprintf(w, "notes:\n%s\n", a.Notes)
	}
}

func newAppDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, func(ctx context.Context, a *bootstrap.App) error {
				if err := a.ApplicationCLI.Delete(ctx, args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
				return nil
			})
		},
	}
}

func newAppResetCmd(opts *rootOptions) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset --yes",
		Short: "Delete every application",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete all applications without --yes")
			}
			return opts.run(cmd, func(ctx context.Context, a *bootstrap.App) error {
				out, err := a.ApplicationCLI.Reset(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %d applications\n", out.Deleted)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm")
	return cmd
}
