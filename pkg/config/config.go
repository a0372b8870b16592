package config

import "strings"

// SqlTarget identifies a SQL dialect that DDL can be generated for.
type SqlTarget string

const (
	SqlTarget_Postgres   SqlTarget = "postgres"
	SqlTarget_BigQuery   SqlTarget = "bigquery"
	SqlTarget_ClickHouse SqlTarget = "clickhouse"
)

var (
	SupportedSqlTargets = []SqlTarget{
		SqlTarget_Postgres,
		SqlTarget_BigQuery,
		SqlTarget_ClickHouse,
	}
)

func IsSupportedSqlTarget(target string) bool {
	for _, t := range SupportedSqlTargets {
		if string(t) == strings.ToLower(target) {
			return true
		}
	}
	return false
}

// KebabToSnakeCase converts a kebab-case flag name to the snake_case key
// viper uses for env binding.
func KebabToSnakeCase(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// NormalizeFlagName is the viper lookup key for a kebab-case flag name.
func NormalizeFlagName(name string) string {
	return KebabToSnakeCase(name)
}
