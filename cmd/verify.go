package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// verifyCmd runs a one-shot verification without the HTTP server. The
// cache is not consulted: the command always performs a full run.
var verifyCmd = &cobra.Command{
	Use:   "verify [file]",
	Short: "Verify the claims in a text file (or stdin) and print the run as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		var content []byte
		var err error
		if len(args) == 1 && args[0] != "-" {
			content, err = os.ReadFile(args[0])
		} else {
			content, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(string(content)) == "" {
			return fmt.Errorf("no content to verify")
		}

		p := buildPipeline(cfg)
		orch := p.orchestrator(cfg, p.model, nil, nil)

		run := orch.Verify(context.Background(), string(content))

		out, err := json.MarshalIndent(run, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
