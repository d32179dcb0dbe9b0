package history

// Schema version for migration management
const SchemaVersion = 1

// SchemaVersionTableSQL tracks applied schema versions
const SchemaVersionTableSQL = `
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY,
    applied_at INTEGER NOT NULL
);
`

// SelectionsTableSQL stores every value the picker committed.
// Dates are stored as YYYY-MM-DD text, empty when the endpoint is absent.
const SelectionsTableSQL = `
CREATE TABLE IF NOT EXISTS selections (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    mode TEXT NOT NULL,
    start_date TEXT NOT NULL DEFAULT '',
    end_date TEXT NOT NULL DEFAULT '',
    invalid INTEGER NOT NULL DEFAULT 0,
    recorded_at INTEGER NOT NULL
);
`

// SelectionsIndexesSQL creates indexes on the selections table
const SelectionsIndexesSQL = `
CREATE INDEX IF NOT EXISTS idx_selections_recorded_at ON selections(recorded_at);
CREATE INDEX IF NOT EXISTS idx_selections_mode ON selections(mode);
`

// AllTableSchemas returns all table creation statements in order
func AllTableSchemas() []string {
	return []string{
		SchemaVersionTableSQL,
		SelectionsTableSQL,
	}
}

// AllIndexes returns all index creation statements
func AllIndexes() []string {
	return []string{
		SelectionsIndexesSQL,
	}
}

// PragmaStatements returns pragma statements to execute on database connection
func PragmaStatements() []string {
	return []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
}
