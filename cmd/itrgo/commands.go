package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rgehrsitz/itrgo/internal/breakeven"
	"github.com/rgehrsitz/itrgo/internal/compare"
	"github.com/rgehrsitz/itrgo/internal/domain"
	"github.com/rgehrsitz/itrgo/internal/metrics"
	"github.com/rgehrsitz/itrgo/internal/output"
	"github.com/rgehrsitz/itrgo/internal/server"
	"github.com/rgehrsitz/itrgo/internal/transform"
	"github.com/rgehrsitz/itrgo/internal/tui"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func calculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate [input-file]",
		Short: "Calculate tax under one regime",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			regimeName, _ := cmd.Flags().GetString("regime")
			input, err := a.loadScenario(cmd, args[0])
			if err != nil {
				return err
			}

			var result domain.TaxResult
			switch domain.Regime(strings.ToLower(regimeName)) {
			case domain.RegimeOld:
				result = a.engine.CalculateOldRegimeTax(input.Salary, input.Deductions, input.Profile)
			case domain.RegimeNew:
				result = a.engine.CalculateNewRegimeTax(input.Salary, input.Deductions)
			default:
				return fmt.Errorf("unknown regime %q: use old or new", regimeName)
			}

			if a.settings.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			writeTaxResult(cmd.OutOrStdout(), result)
			return nil
		},
	}
	cmd.Flags().StringP("regime", "r", "new", "regime to calculate: old or new")
	addWhatIfFlags(cmd)
	return cmd
}

func writeTaxResult(w io.Writer, r domain.TaxResult) {
	fmt.Fprintf(w, "%s\n", strings.ToUpper(r.Regime.DisplayName()))
	fmt.Fprintln(w, strings.Repeat("=", 44))
	rows := []struct {
		label string
		value decimal.Decimal
	}{
		{"Gross income", r.GrossIncome},
		{"Total deductions", r.TotalDeductions},
		{"Taxable income", r.TaxableIncome},
		{"Tax before surcharge", r.TaxBeforeSurcharge},
		{"Rebate u/s 87A", r.Rebate},
		{"Surcharge", r.Surcharge},
		{"Health and education cess", r.Cess},
		{"Total tax", r.TotalTax},
		{"Net income", r.NetIncome},
	}
	for _, row := range rows {
		fmt.Fprintf(w, "%-28s %15s\n", row.label, domain.FormatINR(row.value))
	}
	if r.MarginalRelief != nil {
		fmt.Fprintf(w, "%-28s %15s\n", "Marginal relief", domain.FormatINR(*r.MarginalRelief))
	}
	if r.SurchargeRelief != nil {
		fmt.Fprintf(w, "%-28s %15s\n", "Surcharge relief", domain.FormatINR(*r.SurchargeRelief))
	}
	fmt.Fprintf(w, "%-28s %15s\n", "Effective tax rate", domain.FormatPercent(r.EffectiveTaxRate))
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [input-file]",
		Short: "Compare the Old and New regimes and recommend one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			f := output.GetFormatterByName(a.settings.Format)
			if f == nil {
				return fmt.Errorf("unknown format %q; available: %s (aliases: %s)", a.settings.Format,
					strings.Join(output.AvailableFormatterNames(), ", "),
					strings.Join(output.AvailableFormatAliases(), ", "))
			}

			input, err := a.loadScenario(cmd, args[0])
			if err != nil {
				return err
			}
			comparison := compare.NewCompareEngine(a.engine).Compare(input)

			if output.IsBinary(f) {
				filename, err := output.WriteFormatted(f, comparison, f.Name())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
				return nil
			}

			data, err := f.Format(comparison)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	addWhatIfFlags(cmd)
	return cmd
}

func breakEvenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breakeven [input-file]",
		Short: "Find the extra deductions at which the Old regime costs no more than the New",
		Long: "With an input file, finds the additional Old-regime deductions that taxpayer needs.\n" +
			"With --table, tabulates the deductions needed at a range of plain salaries.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			table, _ := cmd.Flags().GetBool("table")
			if !table && len(args) == 0 {
				return fmt.Errorf("an input file is required unless --table is set")
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			solver := breakeven.NewDefaultSolver(a.engine)
			jsonOut := a.settings.Format == "json"

			if table {
				age, _ := cmd.Flags().GetInt("age")
				raw, _ := cmd.Flags().GetStringSlice("incomes")
				incomes, err := parseIncomes(raw)
				if err != nil {
					return err
				}
				points, err := solver.BreakEvenTable(ctx, incomes, age)
				if err != nil {
					return err
				}
				if jsonOut {
					out, err := (&breakeven.JSONFormatter{Pretty: true}).FormatTable(points)
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), out)
					return nil
				}
				fmt.Fprint(cmd.OutOrStdout(), (&breakeven.TableFormatter{}).FormatTable(points))
				return nil
			}

			input, err := a.loadScenario(cmd, args[0])
			if err != nil {
				return err
			}
			result, err := solver.Solve(ctx, input)
			if err != nil {
				return err
			}
			if jsonOut {
				out, err := (&breakeven.JSONFormatter{Pretty: true}).Format(result)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), (&breakeven.TableFormatter{}).Format(result))
			return nil
		},
	}
	cmd.Flags().Bool("table", false, "tabulate break-even deductions over a range of salaries")
	cmd.Flags().Int("age", 30, "taxpayer age used with --table")
	cmd.Flags().StringSlice("incomes", nil, "gross salaries for --table, e.g. 1200000,2000000 (default 8 lakh to 50 lakh)")
	addWhatIfFlags(cmd)
	return cmd
}

func parseIncomes(raw []string) ([]decimal.Decimal, error) {
	if len(raw) == 0 {
		return breakeven.DefaultTableIncomes(), nil
	}
	incomes := make([]decimal.Decimal, 0, len(raw))
	for _, s := range raw {
		v, err := decimal.NewFromString(strings.TrimSpace(s))
		if err != nil || v.IsNegative() {
			return nil, fmt.Errorf("invalid income %q", s)
		}
		incomes = append(incomes, v)
	}
	return incomes, nil
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [input-file]",
		Short: "Validate a taxpayer input file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			_, adjustments, err := a.parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			for _, adj := range adjustments {
				fmt.Fprintf(cmd.OutOrStdout(), "adjusted %s\n", adj)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Input file %s is valid\n", args[0])
			return nil
		},
	}
}

func rulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the rules table in effect",
		Long:  "Prints the slab rates, limits and surcharge tiers in effect, as YAML (or JSON with --format json).\nThe YAML output can be edited and passed back with --rules.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			if a.settings.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), a.engine.Rules)
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(a.engine.Rules); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			srv, err := server.New(server.Options{
				Engine:   a.engine,
				Settings: a.settings.Server,
				Logger:   a.log,
				Metrics:  metrics.New(nil, metrics.Config{ServiceName: "itrgo"}),
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx)
		},
	}
	cmd.Flags().String("address", ":8080", "listen address")
	return cmd
}

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui [input-file]",
		Short: "Edit a taxpayer interactively and compare regimes live",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()
			// Log lines would corrupt the alternate screen.
			a.engine.SetLogger(nil)

			input := domain.TaxpayerInput{Profile: domain.UserProfile{Age: 30}}
			if len(args) == 1 {
				if input, err = a.loadInput(args[0]); err != nil {
					return err
				}
			}

			p := tea.NewProgram(tui.NewModel(a.engine, input), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}
			return nil
		},
	}
}

func whatIfCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whatif",
		Short: "List the what-if templates and edits accepted by --template and --what-if",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			w := cmd.OutOrStdout()
			fmt.Fprint(w, transform.GetTemplateHelp(transform.CreateBuiltInTemplates(a.engine.Rules.Old, domain.UserProfile{})))
			fmt.Fprintln(w, "\nAvailable Edits (--what-if name:key=value,...):")
			fmt.Fprintln(w)
			for _, name := range transform.NewTransformRegistry().List() {
				fmt.Fprintf(w, "  %s\n", name)
			}
			fmt.Fprintf(w, "\nSections: %s\n", strings.Join(transform.SectionNames(), ", "))
			return nil
		},
	}
}
