package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/topicfoundry/topicfoundry/pkg/foundryConfig"
	"github.com/topicfoundry/topicfoundry/pkg/logDecoder"
	"github.com/topicfoundry/topicfoundry/pkg/logger"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <abi-files...>",
	Short: "Decode a captured event log against the given ABIs",
	Long:  `Reads an eth_getLogs-shaped log (address, topics, data) from the file given with --log, finds the matching event in the loaded ABIs by topic0, and prints the decoded arguments.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := initRunCmd(cmd)
		if cfg.LogFile == "" {
			return fmt.Errorf("a log file is required, pass --log")
		}

		l, _ := logger.NewLogger(&logger.LoggerConfig{Debug: cfg.Debug})

		store, err := loadContractStore(args, l)
		if err != nil {
			return err
		}

		logData, err := os.ReadFile(cfg.LogFile)
		if err != nil {
			return fmt.Errorf("failed to read log file: %w", err)
		}
		var rawLog logDecoder.RawLog
		if err := json.Unmarshal(logData, &rawLog); err != nil {
			return fmt.Errorf("failed to parse log file: %w", err)
		}

		decoder := logDecoder.NewLogDecoder(store, l)
		decoded, err := decoder.Decode(&rawLog)
		if err != nil {
			return err
		}

		encoded, err := json.MarshalIndent(decoded, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal decoded log: %w", err)
		}
		return writeOutput(cfg.OutFile, string(encoded), l)
	},
}

func init() {
	decodeCmd.Flags().String(foundryConfig.LogFile, "", "Path to a JSON file holding the captured log")
	decodeCmd.Flags().String(foundryConfig.OutFile, "", "Write the decoded log to a file instead of stdout")
}
