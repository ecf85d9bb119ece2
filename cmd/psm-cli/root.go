package main

import (
	"causalLab/pkg/logger"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "psm-cli",
		Short: "Inspect propensity score distributions and matching methods from the terminal.",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.Init("development")
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logger.Logger().SetOutput(cmd.ErrOrStderr())
			logger.Logger().SetLevel(level)
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&logLevel, "loglevel", "l", "warn", "Set log level. Available: debug, info, warn, error")

	root.AddCommand(
		newDistributionCmd(),
		newSummaryCmd(),
		newInspectCmd(),
		newQualityCmd(),
	)
	return root
}
