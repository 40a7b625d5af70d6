package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/joeblew999/plat-respond/pkg/store"
	"github.com/joeblew999/plat-respond/pkg/template"
	"github.com/spf13/cobra"
)

func newListCmd(opts *options) *cobra.Command {
	var users, skills []string
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List templates",
		Long: `List templates with their parsed user alias and skill.

Filters combine: --user and --skill keep only the named values (default: all),
--query keeps filenames containing the text, ignoring case.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := template.Filter{Query: query}
			if cmd.Flags().Changed("user") {
				f.Users = users
			}
			if cmd.Flags().Changed("skill") {
				f.Skills = skills
			}

			return opts.withStore(cmd, func(ctx context.Context, st *store.Store) error {
				listing, err := st.Browse(ctx, f)
				if err != nil {
					return err
				}
				for _, w := range listing.Warnings {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", w)
				}

				if opts.jsonOut {
					return writeJSON(cmd.OutOrStdout(), listing)
				}
				if listing.Total == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No templates found. Add one with \"plat-respond save\".")
					return nil
				}
				if len(listing.Entries) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No templates match the selected filters.")
					return nil
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "FILENAME\tUSER\tSKILL\tTEMPLATE")
				for _, e := range listing.Entries {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Filename, e.User, e.Skill, e.Label())
				}
				return tw.Flush()
			})
		},
	}

	cmd.Flags().StringSliceVar(&users, "user", nil, "User aliases to include")
	cmd.Flags().StringSliceVar(&skills, "skill", nil, "Skills to include")
	cmd.Flags().StringVarP(&query, "query", "q", "", "Filename search text")
	return cmd
}

func newShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <filename>",
		Short: "Show a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withStore(cmd, func(ctx context.Context, st *store.Store) error {
				t, err := st.Load(ctx, args[0])
				if err != nil {
					return err
				}
				if opts.jsonOut {
					return writeJSON(cmd.OutOrStdout(), t)
				}

				out := cmd.OutOrStdout()
				info := template.ParseFilename(args[0])
				fmt.Fprintf(out, "Template:    %s\n", t.Name)
				fmt.Fprintf(out, "Description: %s\n", orDefault(t.Description, "No description provided."))
				fmt.Fprintf(out, "User:        %s\n", info.User)
				fmt.Fprintf(out, "Skill:       %s\n", info.Skill)
				fmt.Fprintf(out, "Variables:   %s\n", orDefault(template.FormatVariableList(t.Variables), "None"))
				if div := t.Divergence(); !div.Empty() {
					fmt.Fprintf(out, "Warning:     %s\n", div)
				}
				fmt.Fprintf(out, "\n%s\n", t.Body)
				return nil
			})
		},
	}
}

func newRenderCmd(opts *options) *cobra.Command {
	var values map[string]string
	var outFile string

	cmd := &cobra.Command{
		Use:   "render <filename>",
		Short: "Fill a template with values",
		Example: `  plat-respond render sam_billing_late.json --set name=Sam --set date=Monday
  plat-respond render sam_billing_late.json --set name=Sam -o response.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withStore(cmd, func(ctx context.Context, st *store.Store) error {
				t, err := st.Load(ctx, args[0])
				if err != nil {
					return err
				}
				if div := t.Divergence(); !div.Empty() {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", div)
				}

				text, err := t.Render(values)
				if err != nil {
					return err
				}

				if outFile != "" {
					if err := os.WriteFile(outFile, []byte(text), 0o644); err != nil {
						return fmt.Errorf("write %s: %w", outFile, err)
					}
					fmt.Fprintf(cmd.ErrOrStderr(), "Response written to %s\n", outFile)
					return nil
				}

				if opts.jsonOut {
					return writeJSON(cmd.OutOrStdout(), map[string]string{"filename": args[0], "text": text})
				}
				fmt.Fprintln(cmd.OutOrStdout(), text)
				return nil
			})
		},
	}

	cmd.Flags().StringToStringVar(&values, "set", nil, "Variable value as name=value (repeatable)")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "Write the response to a file instead of stdout")
	return cmd
}

func newSaveCmd(opts *options) *cobra.Command {
	var filename, name, description, body, bodyFile, variables string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Add a template, or edit one with --filename",
		Long: `Add a new template, stored as <name>.json with spaces turned into
underscores and lower-cased. Name it <useralias>_<skill>_<templatename>.

With --filename the existing template is edited in place; its name is kept.
Variables default to the placeholders detected in the body.`,
		Example: `  plat-respond save --name sam_billing_late --description "Late shipment" --body-file late.txt
  plat-respond save --filename sam_billing_late.json --description "Late shipment" --body "Hi {name}"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if bodyFile != "" {
				data, err := readInput(cmd.InOrStdin(), bodyFile)
				if err != nil {
					return err
				}
				body = data
			}
			if !cmd.Flags().Changed("variables") {
				variables = template.FormatVariableList(template.DetectVariables(body))
			}

			draft := template.Draft{Name: name, Description: description, Body: body, Variables: variables}

			return opts.withStore(cmd, func(ctx context.Context, st *store.Store) error {
				if filename != "" {
					current, err := st.Load(ctx, filename)
					if err != nil {
						return err
					}
					if err := draft.ValidateEdit(); err != nil {
						return err
					}
					t := draft.Template()
					t.Name = current.Name
					if err := st.Save(ctx, filename, t); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Template '%s' updated!\n", filename)
					return nil
				}

				if err := draft.ValidateNew(); err != nil {
					return err
				}
				t := draft.Template()
				target := template.FilenameFor(t.Name)
				if err := st.Save(ctx, target, t); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Template '%s' saved as %s!\n", t.Name, target)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&filename, "filename", "", "Existing template to edit")
	cmd.Flags().StringVar(&name, "name", "", "Template name, e.g. tirshiva_ILAC_reimbursement")
	cmd.Flags().StringVar(&description, "description", "", "Short description (when to use this template)")
	cmd.Flags().StringVar(&body, "body", "", "Email body using {variable} placeholders")
	cmd.Flags().StringVar(&bodyFile, "body-file", "", "Read the body from a file (- for stdin)")
	cmd.Flags().StringVar(&variables, "variables", "", "Comma-separated variables (default: detected from the body)")
	return cmd
}

func newDetectCmd(opts *options) *cobra.Command {
	var bodyFile string

	cmd := &cobra.Command{
		Use:   "detect [body]",
		Short: "List the placeholders in an email body",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var body string
			switch {
			case len(args) == 1:
				body = args[0]
			case bodyFile != "":
				data, err := readInput(cmd.InOrStdin(), bodyFile)
				if err != nil {
					return err
				}
				body = data
			default:
				return fmt.Errorf("pass the body as an argument or with --body-file")
			}

			vars := template.DetectVariables(body)
			if opts.jsonOut {
				if vars == nil {
					vars = []string{}
				}
				return writeJSON(cmd.OutOrStdout(), map[string][]string{"variables": vars})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Detected variables: %s\n", orDefault(template.FormatVariableList(vars), "None"))
			return nil
		},
	}

	cmd.Flags().StringVar(&bodyFile, "body-file", "", "Read the body from a file (- for stdin)")
	return cmd
}

func readInput(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
