package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/topicfoundry/topicfoundry/pkg/abiFetcher"
	"github.com/topicfoundry/topicfoundry/pkg/config"
	"github.com/topicfoundry/topicfoundry/pkg/contractStore/inMemoryContractStore"
	"github.com/topicfoundry/topicfoundry/pkg/eventExtractor"
	"github.com/topicfoundry/topicfoundry/pkg/foundryConfig"
	"go.uber.org/zap"
)

// initRunCmd binds the command's local flags into viper and resolves the
// effective configuration: a loaded config file wins, flags and env fill in
// the rest.
func initRunCmd(cmd *cobra.Command) *foundryConfig.FoundryConfig {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err := viper.BindPFlag(config.KebabToSnakeCase(f.Name), f); err != nil {
			fmt.Printf("Failed to bind flag '%s' - %+v\n", f.Name, err)
		}
		if err := viper.BindEnv(f.Name); err != nil {
			fmt.Printf("Failed to bind env '%s' - %+v\n", f.Name, err)
		}
	})

	if Config != nil {
		return Config
	}
	return foundryConfig.NewFoundryConfig()
}

// loadContractStore expands the ABI path arguments and extracts every
// contract's events into a fresh store.
func loadContractStore(args []string, l *zap.Logger) (*inMemoryContractStore.InMemoryContractStore, error) {
	paths, err := abiFetcher.ExpandPaths(args)
	if err != nil {
		return nil, err
	}

	extractor := eventExtractor.NewEventExtractor(l)
	store := inMemoryContractStore.NewInMemoryContractStore(l)
	for _, path := range paths {
		contract, err := extractor.ExtractContract(path)
		if err != nil {
			return nil, err
		}
		store.AddContract(contract)
	}
	return store, nil
}

// writeOutput sends content to the configured out file, or stdout when none
// is set.
func writeOutput(outFile string, content string, l *zap.Logger) error {
	if outFile == "" {
		fmt.Println(content)
		return nil
	}
	if err := os.WriteFile(outFile, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	l.Sugar().Infow("Wrote output file", "file", outFile)
	return nil
}
