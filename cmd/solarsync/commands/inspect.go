package commands

import (
	"encoding/json"
	"fmt"

	"solarsync/services/designsync"

	"github.com/spf13/cobra"
)

var inspectJson bool

func init() {
	inspectCmd.Flags().BoolVar(&inspectJson, "json", false, "Print the Quickbase payload instead of a table.")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <project-id>",
	Short: "Fetches a project's designs and prints the records that would be posted.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := mustReadConfig()
		projectId := args[0]

		assembler := designsync.NewAssembler(designsync.NewExtractor(cfg.AuroraClient(nil)))
		records, err := assembler.Assemble(cmd.Context(), projectId)
		if err != nil {
			return fmt.Errorf("assemble project %s: %w", projectId, err)
		}
		if len(records) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "project %s has no designs\n", projectId)
			return nil
		}

		if !inspectJson {
			renderRecords(cmd.OutOrStdout(), projectId, records)
			return nil
		}

		serialized, err := json.MarshalIndent(cfg.Formatter().Format(records), "", "    ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(serialized))
		return nil
	},
}
