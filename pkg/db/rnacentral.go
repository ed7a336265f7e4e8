package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/rnacentral/rnacentral-go/pkg/model"
)

// ErrNotFound is model.ErrNotFound, re-exported for callers of the store.
var ErrNotFound = model.ErrNotFound

// Keeps IN (...) lists well below the sqlite variable limit.
const batchSize = 500

// RNAcentralDB reads the portal tables.
type RNAcentralDB struct {
	sql *sql.DB
}

func NewRNAcentralDB(db *sql.DB) *RNAcentralDB {
	// Check for db schema and version here later
	return &RNAcentralDB{sql: db}
}

func (r *RNAcentralDB) Ping(ctx context.Context) error {
	return r.sql.PingContext(ctx)
}

func (r *RNAcentralDB) Sequence(ctx context.Context, upi string) (*model.Sequence, error) {

	const qstring = `
		SELECT upi, md5, len, COALESCE(seq_short, seq_long, '')
		FROM rna
		WHERE upi = ?
	`

	var s model.Sequence
	err := r.sql.QueryRowContext(ctx, qstring, upi).Scan(&s.UPI, &s.MD5, &s.Length, &s.Seq)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("sequence %s: %w", upi, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *RNAcentralDB) Xrefs(ctx context.Context, upi string) ([]model.Xref, error) {

	const qstring = `
		SELECT x.upi, x.taxid, x.deleted, x.dbid, d.descr, d.display_name,
			a.accession, COALESCE(a.database, ''), COALESCE(a.description, ''),
			COALESCE(a.species, ''), COALESCE(a.classification, ''),
			COALESCE(a.feature_name, ''), COALESCE(a.ncrna_class, ''),
			COALESCE(a.product, ''), COALESCE(a.gene, ''), COALESCE(a.note, ''),
			(SELECT COUNT(*) FROM rnc_reference_map rm WHERE rm.accession = a.accession),
			(SELECT COUNT(*) FROM rnc_coordinates c WHERE c.accession = a.accession)
		FROM xref x
		JOIN rnc_accessions a ON a.accession = x.ac
		JOIN rnc_database d ON d.id = x.dbid
		WHERE x.upi = ?
		ORDER BY x.id
	`

	rows, err := r.sql.QueryContext(ctx, qstring, upi)
	if err != nil {
		return nil, fmt.Errorf("query xrefs: %w", err)
	}
	defer rows.Close()

	xrefs := make([]model.Xref, 0, 8)
	for rows.Next() {
		var x model.Xref
		var deleted string
		a := &x.Accession
		if err := rows.Scan(
			&x.UPI, &x.Taxid, &deleted, &x.DatabaseID, &x.Database, &x.DisplayName,
			&a.Accession, &a.Database, &a.Description,
			&a.Species, &a.Classification,
			&a.FeatureName, &a.NcRNAClass,
			&a.Product, &a.Gene, &a.Note,
			&x.Publications, &x.Coordinates); err != nil {
			return nil, fmt.Errorf("scan xref: %w", err)
		}
		x.Deleted = deleted == "Y"
		xrefs = append(xrefs, x)
	}
	return xrefs, rows.Err()
}

func (r *RNAcentralDB) AssemblyByURL(ctx context.Context, species string) (*model.Assembly, error) {

	const qstring = `
		SELECT assembly_id, ensembl_url, taxid, COALESCE(common_name, ''),
			COALESCE(scientific_name, ''), COALESCE(division, '')
		FROM ensembl_assembly
		WHERE ensembl_url = ?
	`

	var a model.Assembly
	err := r.sql.QueryRowContext(ctx, qstring, species).Scan(
		&a.AssemblyID, &a.EnsemblURL, &a.Taxid, &a.CommonName, &a.ScientificName, &a.Division)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("assembly %s: %w", species, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *RNAcentralDB) Assemblies(ctx context.Context) ([]model.Assembly, error) {

	const qstring = `
		SELECT assembly_id, ensembl_url, taxid, COALESCE(common_name, ''),
			COALESCE(scientific_name, ''), COALESCE(division, '')
		FROM ensembl_assembly
		ORDER BY scientific_name
	`

	rows, err := r.sql.QueryContext(ctx, qstring)
	if err != nil {
		return nil, fmt.Errorf("query assemblies: %w", err)
	}
	defer rows.Close()

	assemblies := make([]model.Assembly, 0, 16)
	for rows.Next() {
		var a model.Assembly
		if err := rows.Scan(&a.AssemblyID, &a.EnsemblURL, &a.Taxid, &a.CommonName, &a.ScientificName, &a.Division); err != nil {
			return nil, fmt.Errorf("scan assembly: %w", err)
		}
		assemblies = append(assemblies, a)
	}
	return assemblies, rows.Err()
}

func (r *RNAcentralDB) XrefCoordinates(ctx context.Context, taxid int, chromosome string, start, end int) ([]model.XrefCoordinate, error) {

	const qstring = `
		WITH acc_coord AS (
			SELECT DISTINCT c.name, c.strand, c.primary_start, c.primary_end, c.accession
			FROM rnc_coordinates c
			JOIN rnc_accessions a ON a.accession = c.accession
			WHERE c.primary_start >= ?
			  AND c.primary_end <= ?
			  AND c.name = ?
		)
		SELECT xref.upi, xref.taxid, acc_coord.accession, COALESCE(acc_coord.name, ''),
			COALESCE(acc_coord.strand, ''), acc_coord.primary_start, acc_coord.primary_end
		FROM xref
		JOIN acc_coord ON xref.ac = acc_coord.accession
		WHERE xref.deleted = 'N'
		  AND xref.taxid = ?
		ORDER BY xref.id, acc_coord.primary_start, acc_coord.primary_end
	`

	rows, err := r.sql.QueryContext(ctx, qstring, start, end, chromosome, taxid)
	if err != nil {
		return nil, fmt.Errorf("query coordinates: %w", err)
	}
	defer rows.Close()

	coords := make([]model.XrefCoordinate, 0, 32)
	for rows.Next() {
		var c model.XrefCoordinate
		if err := rows.Scan(&c.UPI, &c.Taxid, &c.Accession, &c.Chromosome, &c.Strand, &c.Start, &c.End); err != nil {
			return nil, fmt.Errorf("scan coordinate: %w", err)
		}
		coords = append(coords, c)
	}
	return coords, rows.Err()
}

// MappingSpans aggregates over every row of a group, not just the rows inside
// the region, so a transcript crossing the region edge is left out.
func (r *RNAcentralDB) MappingSpans(ctx context.Context, taxid int, chromosome string, start, end int) ([]model.MappingSpan, error) {

	const qstring = `
		SELECT region_id, upi, taxid, chromosome, COALESCE(strand, ''), MIN(start), MAX(stop)
		FROM rnc_genome_mapping
		WHERE taxid = ?
		  AND chromosome = ?
		GROUP BY region_id, upi, strand, chromosome, taxid
		HAVING MIN(start) > ?
		   AND MAX(stop) < ?
		ORDER BY MIN(id)
	`

	rows, err := r.sql.QueryContext(ctx, qstring, taxid, chromosome, start, end)
	if err != nil {
		return nil, fmt.Errorf("query mapping spans: %w", err)
	}
	defer rows.Close()

	spans := make([]model.MappingSpan, 0, 16)
	for rows.Next() {
		var sp model.MappingSpan
		if err := rows.Scan(&sp.RegionID, &sp.UPI, &sp.Taxid, &sp.Chromosome, &sp.Strand, &sp.Start, &sp.Stop); err != nil {
			return nil, fmt.Errorf("scan mapping span: %w", err)
		}
		spans = append(spans, sp)
	}
	return spans, rows.Err()
}

func (r *RNAcentralDB) Mappings(ctx context.Context, taxid int, chromosome string, start, end int) ([]model.Mapping, error) {

	const qstring = `
		SELECT region_id, upi, taxid, chromosome, COALESCE(strand, ''), start, stop
		FROM rnc_genome_mapping
		WHERE taxid = ?
		  AND chromosome = ?
		  AND start >= ?
		  AND stop <= ?
		ORDER BY id
	`

	rows, err := r.sql.QueryContext(ctx, qstring, taxid, chromosome, start, end)
	if err != nil {
		return nil, fmt.Errorf("query mappings: %w", err)
	}
	defer rows.Close()

	mappings := make([]model.Mapping, 0, 32)
	for rows.Next() {
		var m model.Mapping
		if err := rows.Scan(&m.RegionID, &m.UPI, &m.Taxid, &m.Chromosome, &m.Strand, &m.Start, &m.Stop); err != nil {
			return nil, fmt.Errorf("scan mapping: %w", err)
		}
		mappings = append(mappings, m)
	}
	return mappings, rows.Err()
}

// Precomputed returns active rows of taxid plus taxon-agnostic rows, which
// come back with Taxid 0.
func (r *RNAcentralDB) Precomputed(ctx context.Context, upis []string, taxid int) ([]model.Precomputed, error) {

	const qtemplate = `
		SELECT upi, COALESCE(taxid, 0), COALESCE(rna_type, ''), COALESCE(description, '')
		FROM rnc_rna_precomputed
		WHERE upi IN (%s)
		  AND ((taxid = ? AND is_active = 1) OR taxid IS NULL)
	`

	result := make([]model.Precomputed, 0, len(upis))
	for _, batch := range batches(upis) {
		args := append(stringArgs(batch), taxid)
		rows, err := r.sql.QueryContext(ctx, fmt.Sprintf(qtemplate, placeholders(len(batch))), args...)
		if err != nil {
			return nil, fmt.Errorf("query precomputed: %w", err)
		}

		for rows.Next() {
			var p model.Precomputed
			if err := rows.Scan(&p.UPI, &p.Taxid, &p.RNAType, &p.Description); err != nil {
				rows.Close()
				return nil, fmt.Errorf("scan precomputed: %w", err)
			}
			result = append(result, p)
		}
		err = rows.Err()
		rows.Close()
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (r *RNAcentralDB) XrefDatabases(ctx context.Context, upis []string, taxid int) (map[string][]string, error) {

	const qtemplate = `
		SELECT DISTINCT x.upi, d.display_name
		FROM xref x
		JOIN rnc_database d ON d.id = x.dbid
		WHERE x.deleted = 'N'
		  AND x.taxid = ?
		  AND x.upi IN (%s)
		ORDER BY x.upi, d.display_name
	`

	result := make(map[string][]string, len(upis))
	for _, batch := range batches(upis) {
		args := append([]any{taxid}, stringArgs(batch)...)
		rows, err := r.sql.QueryContext(ctx, fmt.Sprintf(qtemplate, placeholders(len(batch))), args...)
		if err != nil {
			return nil, fmt.Errorf("query xref databases: %w", err)
		}

		for rows.Next() {
			var upi, name string
			if err := rows.Scan(&upi, &name); err != nil {
				rows.Close()
				return nil, fmt.Errorf("scan xref database: %w", err)
			}
			result[upi] = append(result[upi], name)
		}
		err = rows.Err()
		rows.Close()
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func batches(values []string) [][]string {
	var out [][]string
	for len(values) > batchSize {
		out = append(out, values[:batchSize])
		values = values[batchSize:]
	}
	if len(values) > 0 {
		out = append(out, values)
	}
	return out
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func stringArgs(values []string) []any {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}
