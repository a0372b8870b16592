package foundryConfig

import (
	"encoding/json"

	"github.com/spf13/viper"
	"github.com/topicfoundry/topicfoundry/pkg/config"
	"k8s.io/apimachinery/pkg/util/validation/field"
	"sigs.k8s.io/yaml"
)

const (
	EnvPrefix = "TOPICFOUNDRY_"

	Debug   = "debug"
	Target  = "target"
	Schema  = "schema"
	OutFile = "out"
	Pretty  = "pretty"
	LogFile = "log"
)

// FoundryConfig represents the configuration shared by the topicfoundry
// subcommands.
type FoundryConfig struct {
	Debug   bool   `json:"debug" yaml:"debug"`
	Target  string `json:"target" yaml:"target"`
	Schema  string `json:"schema" yaml:"schema"`
	OutFile string `json:"outFile" yaml:"outFile"`
	Pretty  bool   `json:"pretty" yaml:"pretty"`
	LogFile string `json:"logFile" yaml:"logFile"`
}

// Validate ensures that all set fields hold supported values.
func (fc *FoundryConfig) Validate() error {
	var allErrors field.ErrorList

	if fc.Target != "" && !config.IsSupportedSqlTarget(fc.Target) {
		allErrors = append(allErrors, field.Invalid(field.NewPath("target"), fc.Target, "must be one of 'postgres', 'bigquery' or 'clickhouse'"))
	}

	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}

// ValidateForDdl additionally requires a target, which only the ddl
// subcommand needs.
func (fc *FoundryConfig) ValidateForDdl() error {
	if err := fc.Validate(); err != nil {
		return err
	}

	var allErrors field.ErrorList
	if fc.Target == "" {
		allErrors = append(allErrors, field.Required(field.NewPath("target"), "target is required for DDL generation"))
	}
	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}

// NewFoundryConfig creates a new FoundryConfig with values from viper
func NewFoundryConfig() *FoundryConfig {
	return &FoundryConfig{
		Debug:   viper.GetBool(config.NormalizeFlagName(Debug)),
		Target:  viper.GetString(config.NormalizeFlagName(Target)),
		Schema:  viper.GetString(config.NormalizeFlagName(Schema)),
		OutFile: viper.GetString(config.NormalizeFlagName(OutFile)),
		Pretty:  viper.GetBool(config.NormalizeFlagName(Pretty)),
		LogFile: viper.GetString(config.NormalizeFlagName(LogFile)),
	}
}

// NewFoundryConfigFromYamlBytes creates a FoundryConfig from YAML bytes
func NewFoundryConfigFromYamlBytes(data []byte) (*FoundryConfig, error) {
	var fc *FoundryConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, err
	}
	return fc, nil
}

// NewFoundryConfigFromJsonBytes creates a FoundryConfig from JSON bytes
func NewFoundryConfigFromJsonBytes(data []byte) (*FoundryConfig, error) {
	var fc *FoundryConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, err
	}
	return fc, nil
}
