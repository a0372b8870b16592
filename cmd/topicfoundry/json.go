package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/topicfoundry/topicfoundry/pkg/foundryConfig"
	"github.com/topicfoundry/topicfoundry/pkg/jsonSchema"
	"github.com/topicfoundry/topicfoundry/pkg/logger"
)

var jsonCmd = &cobra.Command{
	Use:   "json <abi-files...>",
	Short: "Emit a manifest with a JSON Schema per event",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := initRunCmd(cmd)

		l, _ := logger.NewLogger(&logger.LoggerConfig{Debug: cfg.Debug})

		store, err := loadContractStore(args, l)
		if err != nil {
			return err
		}

		manifest := jsonSchema.NewManifest(store.ListEvents())
		encoded, err := json.MarshalIndent(manifest, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal manifest: %w", err)
		}
		return writeOutput(cfg.OutFile, string(encoded), l)
	},
}

func init() {
	jsonCmd.Flags().String(foundryConfig.OutFile, "", "Write the combined JSON to a file instead of stdout")
}
