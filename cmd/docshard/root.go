package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	rootCmd := &cobra.Command{
		Use:   "docshard",
		Short: "Convert line-oriented corpora into sharded <doc> files",
		Long: `docshard converts a compressed, line-oriented text corpus (one sentence
per line, blank lines separating documents) into the sharded <doc> layout
consumed by tokenizer pipelines, cleaning and quality-filtering each
document along the way.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newExtractCommand(&configFlag))
	rootCmd.AddCommand(newShardsCommand())
	rootCmd.AddCommand(newConfigCommand(&configFlag))

	return rootCmd
}
