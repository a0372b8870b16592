package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/topicfoundry/topicfoundry/pkg/foundryConfig"
	"github.com/topicfoundry/topicfoundry/pkg/logFilter"
	"github.com/topicfoundry/topicfoundry/pkg/logger"
)

var filtersCmd = &cobra.Command{
	Use:   "filters <abi-files...>",
	Short: "Print eth_getLogs topic stubs per event",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := initRunCmd(cmd)

		l, _ := logger.NewLogger(&logger.LoggerConfig{Debug: cfg.Debug})

		store, err := loadContractStore(args, l)
		if err != nil {
			return err
		}

		for _, contract := range store.ListContractsInLoadOrder() {
			if cfg.Pretty {
				color.New(color.FgCyan, color.Bold).Printf("== %s ==\n", contract.File)
			}
			for _, event := range contract.Events {
				stub := logFilter.ForEvent(event)
				if cfg.Pretty {
					fmt.Printf("  %s - topics: %v\n", event.Name, stub.Filter.Topics)
					continue
				}
				encoded, err := json.Marshal(stub)
				if err != nil {
					return fmt.Errorf("failed to marshal filter stub: %w", err)
				}
				fmt.Println(string(encoded))
			}
			if cfg.Pretty {
				fmt.Println()
			}
		}
		return nil
	},
}

func init() {
	filtersCmd.Flags().Bool(foundryConfig.Pretty, false, "Console view of per-event topic filters")
}
