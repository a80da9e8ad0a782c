package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS clients (
	id   INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS projects (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	name      TEXT NOT NULL,
	code      TEXT,
	sub_code  TEXT,
	client_id INTEGER REFERENCES clients(id) ON DELETE SET NULL
);

CREATE TABLE IF NOT EXISTS stages (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	name       TEXT NOT NULL,
	project_id INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS focuses (
	id   INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS log_entries (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	stage_id INTEGER NOT NULL REFERENCES stages(id),
	focus_id INTEGER REFERENCES focuses(id),
	start    TEXT NOT NULL,
	end      TEXT NOT NULL,
	CHECK (end > start)
);

CREATE INDEX IF NOT EXISTS idx_stages_project_id ON stages(project_id);
CREATE INDEX IF NOT EXISTS idx_log_entries_stage_id ON log_entries(stage_id);
CREATE INDEX IF NOT EXISTS idx_log_entries_start ON log_entries(start);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
