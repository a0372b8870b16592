package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/topicfoundry/topicfoundry/pkg/foundryConfig"
	"github.com/topicfoundry/topicfoundry/pkg/logger"
	"github.com/topicfoundry/topicfoundry/pkg/types"
)

var buildCmd = &cobra.Command{
	Use:   "build <abi-files...>",
	Short: "Print event models for the given ABIs",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := initRunCmd(cmd)

		l, _ := logger.NewLogger(&logger.LoggerConfig{Debug: cfg.Debug})

		store, err := loadContractStore(args, l)
		if err != nil {
			return err
		}
		events := store.ListEvents()

		if cfg.Pretty {
			printEventSummary(events)
			return nil
		}

		encoded, err := json.MarshalIndent(events, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal event models: %w", err)
		}
		fmt.Println(string(encoded))
		return nil
	},
}

func init() {
	buildCmd.Flags().Bool(foundryConfig.Pretty, false, "Console summary instead of JSON")
}

func printEventSummary(events []*types.Event) {
	color.New(color.FgCyan, color.Bold).Println("Forged events")

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"File", "Event", "Topic0", "Params"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)

	for _, event := range events {
		params := make([]string, 0, len(event.Inputs))
		for _, p := range event.Inputs {
			tag := "dat"
			if p.Indexed {
				tag = "idx"
			}
			params = append(params, fmt.Sprintf("[%s] %s:%s", tag, p.Name, p.Type))
		}
		table.Append([]string{event.File, event.Name, event.Topic0, strings.Join(params, ", ")})
	}
	table.Render()

	fmt.Printf("\nTotal events: %d\n", len(events))
}
