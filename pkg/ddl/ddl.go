// Package ddl renders CREATE TABLE statements for forged events, one table
// per event, in the PostgreSQL, BigQuery and ClickHouse dialects.
package ddl

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/topicfoundry/topicfoundry/pkg/config"
	"github.com/topicfoundry/topicfoundry/pkg/types"
)

// Per-dialect type maps for normalized Solidity types. Lossless where the
// dialect allows it: 256-bit integers need 78 decimal digits.
var (
	postgresTypes = map[string]string{
		"address": "bytea",
		"bool":    "boolean",
		"bytes32": "bytea",
		"bytes":   "bytea",
		"string":  "text",
		"uint256": "numeric(78)",
		"int256":  "numeric(78)",
	}
	bigQueryTypes = map[string]string{
		"address": "BYTES",
		"bool":    "BOOL",
		"bytes32": "BYTES",
		"bytes":   "BYTES",
		"string":  "STRING",
	}
	clickHouseTypes = map[string]string{
		"address": "FixedString(20)",
		"bool":    "UInt8",
		"bytes32": "FixedString(32)",
		"bytes":   "String",
		"string":  "String",
		"uint256": "Decimal(76,0)",
		"int256":  "Decimal(76,0)",
	}
)

// column is one rendered column of a per-event table.
type column struct {
	name    string
	sqlType string
}

// SqlType maps a normalized Solidity type to the target dialect. Arrays are
// stored as JSON for portability; unknown types degrade to the dialect's
// string type instead of failing.
func SqlType(solType string, target config.SqlTarget) string {
	if strings.HasSuffix(solType, "]") {
		if target == config.SqlTarget_Postgres {
			return "jsonb"
		}
		return "JSON"
	}

	switch target {
	case config.SqlTarget_Postgres:
		if t, ok := postgresTypes[solType]; ok {
			return t
		}
		return "text"
	case config.SqlTarget_BigQuery:
		if solType == "uint256" || solType == "int256" {
			return "BIGNUMERIC"
		}
		if t, ok := bigQueryTypes[solType]; ok {
			return t
		}
		return "STRING"
	case config.SqlTarget_ClickHouse:
		if t, ok := clickHouseTypes[solType]; ok {
			return t
		}
		return "String"
	}
	return "text"
}

// commonColumns are the log envelope columns every per-event table starts
// with, before the event's own parameters.
func commonColumns(target config.SqlTarget) []column {
	ch := target == config.SqlTarget_ClickHouse
	pick := func(standard string, clickhouse string) string {
		if ch {
			return clickhouse
		}
		return standard
	}

	hashType := "BYTES"
	if target == config.SqlTarget_Postgres {
		hashType = "BYTEA"
	} else if ch {
		hashType = "FixedString(32)"
	}

	return []column{
		{"block_number", pick("BIGINT", "UInt64")},
		{"block_time", pick("TIMESTAMP", "DateTime")},
		{"tx_hash", hashType},
		{"log_index", pick("INT", "UInt32")},
		{"address", SqlType("address", target)},
		{"topic0", hashType},
	}
}

// Generate renders the CREATE TABLE statement for one event. The schema
// argument only applies to the postgres target.
func Generate(event *types.Event, target config.SqlTarget, schema string) (string, error) {
	tableName := event.TableName()
	if target == config.SqlTarget_Postgres && schema != "" {
		tableName = fmt.Sprintf("%s.%s", schema, tableName)
	}

	cols := commonColumns(target)
	for _, param := range event.Inputs {
		cols = append(cols, column{
			name:    param.ColumnName(),
			sqlType: SqlType(param.Type, target),
		})
	}

	switch target {
	case config.SqlTarget_Postgres:
		return fmt.Sprintf("-- %s\nCREATE TABLE IF NOT EXISTS %s (\n  %s\n);",
			event.Signature, tableName, joinColumns(cols, "%s %s")), nil
	case config.SqlTarget_BigQuery:
		return fmt.Sprintf("-- %s\nCREATE TABLE IF NOT EXISTS `%s` (\n  %s\n);",
			event.Signature, tableName, joinColumns(cols, "`%s` %s")), nil
	case config.SqlTarget_ClickHouse:
		return fmt.Sprintf("-- %s\nCREATE TABLE IF NOT EXISTS %s (\n  %s\n)\nENGINE = MergeTree()\nORDER BY (block_number, log_index);",
			event.Signature, tableName, joinColumns(cols, "`%s` %s")), nil
	}
	return "", errors.Errorf("unsupported SQL target: %s", target)
}

// GenerateAll renders statements for all events, blank-line separated.
func GenerateAll(events []*types.Event, target config.SqlTarget, schema string) (string, error) {
	statements := make([]string, 0, len(events))
	for _, event := range events {
		stmt, err := Generate(event, target, schema)
		if err != nil {
			return "", err
		}
		statements = append(statements, stmt)
	}
	return strings.Join(statements, "\n\n"), nil
}

func joinColumns(cols []column, format string) string {
	rendered := make([]string, 0, len(cols))
	for _, c := range cols {
		rendered = append(rendered, fmt.Sprintf(format, c.name, c.sqlType))
	}
	return strings.Join(rendered, ",\n  ")
}
