package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"causalLab/business/psm"
	"causalLab/domain"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
)

type (
	distributionFlags struct {
		Model   string `validate:"required,psm_model"`
		Samples int    `validate:"min=2"`
	}

	summaryFlags struct {
		Method  string  `validate:"required,psm_method"`
		Caliper float64 `validate:"min=0.01,max=0.2"`
	}

	inspectFlags struct {
		Model string  `validate:"required,psm_model"`
		Score float64 `validate:"min=0,max=1"`
	}
)

var validate = psm.NewValidator()

// checkFlags reports the first failing flag by its field name.
func checkFlags(flags interface{}) error {
	if err := validate.Struct(flags); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			fe := errs[0]
			return fmt.Errorf("invalid --%s: %v fails %q", flagName(fe.Field()), fe.Value(), fe.Tag())
		}
		return err
	}
	return nil
}

func flagName(field string) string {
	switch field {
	case "Model":
		return "model"
	case "Method":
		return "method"
	case "Caliper":
		return "caliper"
	case "Samples":
		return "samples"
	case "Score":
		return "score"
	}
	return field
}

func newDistributionCmd() *cobra.Command {
	var flags distributionFlags

	cmd := &cobra.Command{
		Use:   "distribution",
		Short: "Print treatment and control densities for a scoring model",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFlags(flags); err != nil {
				return err
			}
			m, err := psm.ParseModel(flags.Model)
			if err != nil {
				return err
			}

			profile := psm.ProfileFor(m)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (center shift %v, spread %v)\n", m, profile.CenterShift, profile.Spread)

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "SCORE\tTREATMENT\tCONTROL")
			for _, s := range psm.Generate(profile, flags.Samples) {
				fmt.Fprintf(tw, "%s\t%.4f\t%.4f\n", s.Label, s.TreatmentDensity, s.ControlDensity)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&flags.Model, "model", "m", string(domain.ModelLogisticRegression), "Scoring model (lr, rf, xgb or display name)")
	cmd.Flags().IntVarP(&flags.Samples, "samples", "n", 50, "Number of evenly spaced scores on [0, 1]")
	return cmd
}

func newSummaryCmd() *cobra.Command {
	var flags summaryFlags

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Describe a matching method with its effective parameters",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFlags(flags); err != nil {
				return err
			}
			m, err := psm.ParseMethod(flags.Method)
			if err != nil {
				return err
			}

			printSummary(cmd.OutOrStdout(), psm.Summarize(m, flags.Caliper))
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.Method, "method", "M", string(domain.MethodNearestNeighbor), "Matching method (nn, radius, kernel or display name)")
	cmd.Flags().Float64VarP(&flags.Caliper, "caliper", "c", domain.CaliperDefault, "Caliper width in [0.01, 0.2]")
	return cmd
}

func newInspectCmd() *cobra.Command {
	var flags inspectFlags

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Select a score and print the inspection band around it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFlags(flags); err != nil {
				return err
			}
			m, err := psm.ParseModel(flags.Model)
			if err != nil {
				return err
			}

			sess := psm.NewSession("cli", psm.DefaultConfig())
			defer sess.Close()

			if err := sess.SetModel(m); err != nil {
				return err
			}
			sample, ok := psm.Nearest(sess.View().Samples, flags.Score)
			if !ok {
				return fmt.Errorf("no samples to select from")
			}
			if err := sess.SelectScore(sample.Score); err != nil {
				return err
			}

			view := sess.View()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Model\t%s\n", view.Model)
			fmt.Fprintf(tw, "Selected\t%s\n", view.SelectLabel.Center)
			fmt.Fprintf(tw, "Range\t%s - %s\n", view.SelectLabel.Lower, view.SelectLabel.Upper)
			fmt.Fprintf(tw, "Treatment density\t%.4f\n", sample.TreatmentDensity)
			fmt.Fprintf(tw, "Control density\t%.4f\n", sample.ControlDensity)
			if in := view.Inspection; in != nil {
				fmt.Fprintf(tw, "Matched pairs\t%s\n", in.MatchedPairs)
				fmt.Fprintf(tw, "Local ATE\t%s\n", in.LocalATE)
				for _, c := range in.Covariates {
					fmt.Fprintf(tw, "%s\t%s\n", c.Name, c.Value)
				}
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&flags.Model, "model", "m", string(domain.ModelLogisticRegression), "Scoring model (lr, rf, xgb or display name)")
	cmd.Flags().Float64VarP(&flags.Score, "score", "s", 0.5, "Propensity score to inspect, snapped to the nearest sample")
	return cmd
}

func newQualityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quality",
		Short: "Print the matching-quality cards and the parameter guide",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := psm.Quality()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, m := range q.Metrics {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", m.Label, m.Value, m.Note)
			}
			fmt.Fprintln(tw)
			for _, p := range q.Parameters {
				fmt.Fprintf(tw, "%s\t%s\n", p.Title, p.Description)
				fmt.Fprintf(tw, "  %s\t%s\n", p.LowLabel, p.LowEffect)
				fmt.Fprintf(tw, "  %s\t%s\n", p.HighLabel, p.HighEffect)
			}
			return tw.Flush()
		},
	}
}

func printSummary(w io.Writer, s domain.MethodSummary) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Method\t%s\n", s.Title)
	fmt.Fprintf(tw, "Mechanism\t%s\n", s.Mechanism)
	fmt.Fprintf(tw, "Params\t%s\n", s.EffectiveParams)
	fmt.Fprintf(tw, "Pros\t%s\n", s.Pros)
	fmt.Fprintf(tw, "Cons\t%s\n", s.Cons)
	_ = tw.Flush()
}
