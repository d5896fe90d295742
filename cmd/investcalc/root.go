package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"invest-calc/domain"
	"invest-calc/format"
	"invest-calc/service"
)

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "investcalc",
		Short: "Compound interest projections from the command line",
		Long: `investcalc computes investment schedules, future values, the time needed
to reach a target and the implied annual return.

Amounts accept thousands separators ("10,000") and rates accept a
trailing percent sign ("5%").`,
		SilenceUsage: true,
	}
	root.SetOut(out)

	root.AddCommand(
		newScheduleCmd(),
		newFutureValueCmd(),
		newPeriodCmd(),
		newReturnRateCmd(),
	)
	return root
}

func newScheduleCmd() *cobra.Command {
	var (
		initial, contribution, rate string
		duration                    int
		unit, rateType, compounding string
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Month-by-month balance schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			input := domain.InvestmentInput{InvestmentDuration: duration}
			var err error
			if input.InitialInvestment, err = format.ParseAmount(initial); err != nil {
				return fmt.Errorf("--initial: %w", err)
			}
			if input.PeriodicContribution, err = format.ParseAmount(contribution); err != nil {
				return fmt.Errorf("--contribution: %w", err)
			}
			if input.NominalRate, err = format.ParsePercent(rate); err != nil {
				return fmt.Errorf("--rate: %w", err)
			}
			if input.DurationUnit, err = domain.ParseTimePeriodUnit(unit); err != nil {
				return fmt.Errorf("--unit: %w", err)
			}
			if input.RateType, err = domain.ParseInterestRateType(rateType); err != nil {
				return fmt.Errorf("--rate-type: %w", err)
			}
			if input.CompoundingFrequency, err = domain.ParseCompoundingFrequency(compounding); err != nil {
				return fmt.Errorf("--compounding: %w", err)
			}

			result, err := service.NewInterestCalculator().Calculate(input)
			if err != nil {
				return err
			}
			return printSchedule(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&initial, "initial", "0", "initial investment")
	cmd.Flags().StringVar(&contribution, "contribution", "0", "contribution added every month")
	cmd.Flags().StringVar(&rate, "rate", "0", "nominal interest rate in percent")
	cmd.Flags().IntVar(&duration, "duration", 1, "investment duration")
	cmd.Flags().StringVar(&unit, "unit", "year", "duration unit: year or month")
	cmd.Flags().StringVar(&rateType, "rate-type", "yearly", "rate quoted per: yearly or monthly")
	cmd.Flags().StringVar(&compounding, "compounding", "monthly", "yearly, semiyearly, quarterly, monthly or daily")
	return cmd
}

func newFutureValueCmd() *cobra.Command {
	var present, rate, contribution string
	var years int

	cmd := &cobra.Command{
		Use:   "future-value",
		Short: "Year-by-year simple vs compound growth",
		RunE: func(cmd *cobra.Command, args []string) error {
			pv, ratePct, monthly, err := parseCommon(present, rate, contribution)
			if err != nil {
				return err
			}
			p, err := service.CalculateFutureValue(pv, ratePct/100, monthly, years)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(w, "Year\tPrincipal\tSimple\tCompound\t")
			for i := range p.Principals {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t\n", i,
					format.FormatAmount(p.Principals[i]),
					format.FormatAmount(p.SimpleInterestFVs[i]),
					format.FormatAmount(p.CompoundInterestFVs[i]))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&present, "present", "0", "present value")
	cmd.Flags().StringVar(&rate, "rate", "0", "annual rate in percent")
	cmd.Flags().StringVar(&contribution, "contribution", "0", "monthly contribution")
	cmd.Flags().IntVar(&years, "years", 10, "years to project")
	return cmd
}

func newPeriodCmd() *cobra.Command {
	var present, future, rate, contribution string

	cmd := &cobra.Command{
		Use:   "period",
		Short: "Years needed to reach a future value",
		RunE: func(cmd *cobra.Command, args []string) error {
			pv, ratePct, monthly, err := parseCommon(present, rate, contribution)
			if err != nil {
				return err
			}
			fv, err := format.ParseAmount(future)
			if err != nil {
				return fmt.Errorf("--future: %w", err)
			}
			years, err := service.CalculateInvestmentPeriod(pv, fv, ratePct/100, monthly)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%.1f years\n", years)
			return nil
		},
	}

	cmd.Flags().StringVar(&present, "present", "0", "present value")
	cmd.Flags().StringVar(&future, "future", "0", "target future value")
	cmd.Flags().StringVar(&rate, "rate", "0", "annual rate in percent")
	cmd.Flags().StringVar(&contribution, "contribution", "0", "monthly contribution")
	return cmd
}

func newReturnRateCmd() *cobra.Command {
	var present, future, contribution string
	var years float64

	cmd := &cobra.Command{
		Use:   "return-rate",
		Short: "Annual return needed to reach a future value",
		RunE: func(cmd *cobra.Command, args []string) error {
			pv, _, monthly, err := parseCommon(present, "0", contribution)
			if err != nil {
				return err
			}
			fv, err := format.ParseAmount(future)
			if err != nil {
				return fmt.Errorf("--future: %w", err)
			}
			rate, err := service.CalculateAnnualReturnRate(pv, fv, monthly, years)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), format.FormatPercent(rate*100))
			return nil
		},
	}

	cmd.Flags().StringVar(&present, "present", "0", "present value")
	cmd.Flags().StringVar(&future, "future", "0", "target future value")
	cmd.Flags().StringVar(&contribution, "contribution", "0", "monthly contribution")
	cmd.Flags().Float64Var(&years, "years", 10, "investment horizon in years")
	return cmd
}

func parseCommon(present, rate, contribution string) (pv, ratePct, monthly float64, err error) {
	if pv, err = format.ParseAmount(present); err != nil {
		return 0, 0, 0, fmt.Errorf("--present: %w", err)
	}
	if ratePct, err = format.ParsePercent(rate); err != nil {
		return 0, 0, 0, fmt.Errorf("--rate: %w", err)
	}
	if monthly, err = format.ParseAmount(contribution); err != nil {
		return 0, 0, 0, fmt.Errorf("--contribution: %w", err)
	}
	return pv, ratePct, monthly, nil
}

func printSchedule(out io.Writer, result domain.InvestmentResult) error {
	summary := service.Summarize(result)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Month\tStart\tInterest\tTotal interest\tEnd\tContributed\t")
	for i := range result.StartingBalances {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t\n", i+1,
			format.FormatAmount(result.StartingBalances[i]),
			format.FormatAmount(result.InterestEarnedPerPeriod[i]),
			format.FormatAmount(result.TotalInterestEarned[i]),
			format.FormatAmount(result.EndingBalances[i+1]),
			format.FormatAmount(result.Contribution[i+1]))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nPrincipal:        %s\n", format.FormatAmount(summary.Principal))
	fmt.Fprintf(out, "Interest earned:  %s\n", format.FormatAmount(summary.TotalInterest))
	fmt.Fprintf(out, "Final balance:    %s\n", format.FormatAmount(summary.TotalBalance))
	fmt.Fprintf(out, "Total invested:   %s\n", format.FormatAmount(result.TotalInvestment))
	fmt.Fprintf(out, "APY:              %s\n", format.FormatPercent(result.APY))
	return nil
}
