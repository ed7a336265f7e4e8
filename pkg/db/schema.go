package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Schema is the subset of the RNAcentral tables the portal reads. The init-db
// command and the tests create it; production tables are managed elsewhere.
const Schema = `
CREATE TABLE IF NOT EXISTS rna (
	upi TEXT PRIMARY KEY,
	md5 TEXT NOT NULL DEFAULT '',
	len INTEGER NOT NULL DEFAULT 0,
	seq_short TEXT,
	seq_long TEXT
);
CREATE TABLE IF NOT EXISTS rnc_database (
	id INTEGER PRIMARY KEY,
	descr TEXT NOT NULL,
	display_name TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS rnc_accessions (
	accession TEXT PRIMARY KEY,
	database TEXT,
	description TEXT,
	species TEXT,
	classification TEXT,
	feature_name TEXT,
	ncrna_class TEXT,
	product TEXT,
	gene TEXT,
	note TEXT
);
CREATE TABLE IF NOT EXISTS xref (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	upi TEXT NOT NULL REFERENCES rna(upi),
	taxid INTEGER NOT NULL,
	ac TEXT NOT NULL REFERENCES rnc_accessions(accession),
	dbid INTEGER NOT NULL REFERENCES rnc_database(id),
	deleted TEXT NOT NULL DEFAULT 'N'
);
CREATE INDEX IF NOT EXISTS xref_upi ON xref(upi);
CREATE INDEX IF NOT EXISTS xref_ac ON xref(ac);
CREATE TABLE IF NOT EXISTS rnc_reference_map (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	accession TEXT NOT NULL,
	reference_id INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS rnc_coordinates (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	accession TEXT NOT NULL,
	name TEXT,
	strand INTEGER,
	primary_start INTEGER,
	primary_end INTEGER
);
CREATE INDEX IF NOT EXISTS rnc_coordinates_name ON rnc_coordinates(name, primary_start, primary_end);
CREATE TABLE IF NOT EXISTS rnc_genome_mapping (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	region_id TEXT NOT NULL,
	upi TEXT NOT NULL,
	taxid INTEGER NOT NULL,
	chromosome TEXT NOT NULL,
	strand INTEGER,
	start INTEGER NOT NULL,
	stop INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS rnc_rna_precomputed (
	id TEXT PRIMARY KEY,
	upi TEXT NOT NULL,
	taxid INTEGER,
	rna_type TEXT,
	description TEXT,
	is_active INTEGER NOT NULL DEFAULT 1
);
CREATE TABLE IF NOT EXISTS ensembl_assembly (
	assembly_id TEXT PRIMARY KEY,
	ensembl_url TEXT UNIQUE,
	taxid INTEGER NOT NULL,
	common_name TEXT,
	scientific_name TEXT,
	division TEXT
);
`

// CreateSchema creates the portal tables if they do not exist.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
