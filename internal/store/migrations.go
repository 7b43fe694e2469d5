package store

// migration is one schema change, applied in version order.
type migration struct {
	Version int
	Name    string
	SQL     string
}

var migrations = []migration{
	{
		Version: 1,
		Name:    "create agents",
		SQL: `
			CREATE TABLE agents (
				session_key      TEXT PRIMARY KEY,
				brand_name       TEXT NOT NULL DEFAULT '',
				hero_header      TEXT NOT NULL DEFAULT '',
				hero_subheader   TEXT NOT NULL DEFAULT '',
				products         TEXT NOT NULL DEFAULT '[]',
				product_pills    TEXT NOT NULL DEFAULT '[]',
				background_image TEXT NOT NULL DEFAULT '',
				sales_tone       TEXT NOT NULL DEFAULT 'friendly',
				agent_type       TEXT NOT NULL DEFAULT 'eCommerce',
				created_at       TEXT NOT NULL,
				updated_at       TEXT NOT NULL
			)
		`,
	},
	{
		Version: 2,
		Name:    "create turns",
		SQL: `
			CREATE TABLE turns (
				id          TEXT PRIMARY KEY,
				session_key TEXT NOT NULL REFERENCES agents(session_key) ON DELETE CASCADE,
				seq         INTEGER NOT NULL,
				role        TEXT NOT NULL,
				content     TEXT NOT NULL,
				timestamp   TEXT NOT NULL
			);
			CREATE INDEX idx_turns_session ON turns(session_key, seq);
		`,
	},
}
