package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// sourceCmd prints a standalone trust report for one URL.
var sourceCmd = &cobra.Command{
	Use:   "source <url>",
	Short: "Analyze the credibility of a single source URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		p := buildPipeline(cfg)

		report, err := p.inspector.AnalyzeSource(context.Background(), args[0])
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sourceCmd)
}
