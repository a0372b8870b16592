package main

import (
	"github.com/spf13/cobra"
	"github.com/topicfoundry/topicfoundry/pkg/config"
	"github.com/topicfoundry/topicfoundry/pkg/ddl"
	"github.com/topicfoundry/topicfoundry/pkg/foundryConfig"
	"github.com/topicfoundry/topicfoundry/pkg/logger"
)

var ddlCmd = &cobra.Command{
	Use:   "ddl <abi-files...>",
	Short: "Emit CREATE TABLE statements for all events",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := initRunCmd(cmd)
		if err := cfg.ValidateForDdl(); err != nil {
			return err
		}

		l, _ := logger.NewLogger(&logger.LoggerConfig{Debug: cfg.Debug})

		store, err := loadContractStore(args, l)
		if err != nil {
			return err
		}

		statements, err := ddl.GenerateAll(store.ListEvents(), config.SqlTarget(cfg.Target), cfg.Schema)
		if err != nil {
			return err
		}
		return writeOutput(cfg.OutFile, statements, l)
	},
}

func init() {
	ddlCmd.Flags().String(foundryConfig.Target, "", "SQL target: postgres, bigquery or clickhouse")
	ddlCmd.Flags().String(foundryConfig.Schema, "public", "Postgres schema (ignored for other targets)")
	ddlCmd.Flags().String(foundryConfig.OutFile, "", "Write statements to a file instead of stdout")
}
