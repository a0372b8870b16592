package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/topicfoundry/topicfoundry/pkg/dictionary"
	"github.com/topicfoundry/topicfoundry/pkg/foundryConfig"
	"github.com/topicfoundry/topicfoundry/pkg/logger"
)

var dictCmd = &cobra.Command{
	Use:   "dict <abi-files...>",
	Short: "Produce a CSV data dictionary for all events",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := initRunCmd(cmd)

		l, _ := logger.NewLogger(&logger.LoggerConfig{Debug: cfg.Debug})

		store, err := loadContractStore(args, l)
		if err != nil {
			return err
		}

		var sb strings.Builder
		if err := dictionary.Write(&sb, store.ListEvents()); err != nil {
			return err
		}
		return writeOutput(cfg.OutFile, strings.TrimRight(sb.String(), "\n"), l)
	},
}

func init() {
	dictCmd.Flags().String(foundryConfig.OutFile, "", "Write the CSV to a file instead of stdout")
}
