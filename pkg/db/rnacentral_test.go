package db

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/rnacentral/rnacentral-go/pkg/model"
)

const fixture = `
INSERT INTO rna (upi, md5, len, seq_short, seq_long) VALUES
	('URS0000000001', 'aaa', 100, NULL, NULL),
	('URS0000000002', 'bbb', 8, 'GGCTACGT', NULL),
	('URS0000000003', 'ccc', 6, NULL, 'ACGTAC');

INSERT INTO rnc_database (id, descr, display_name) VALUES
	(1, 'ENA', 'ENA'),
	(2, 'RFAM', 'Rfam'),
	(3, 'REFSEQ', 'RefSeq');

INSERT INTO rnc_accessions (accession, database, description, species, feature_name, ncrna_class, product, gene, note) VALUES
	('ACC1', 'ENA', 'small nucleolar RNA', 'Homo sapiens', 'ncRNA', 'snoRNA', 'SNORD3A', NULL, NULL),
	('ACC2', 'RFAM', 'U3 snoRNA', 'Homo sapiens', 'ncRNA', 'snoRNA', NULL, NULL, 'alignment:seed'),
	('ACC3', 'REFSEQ', 'tRNA-Ala', 'Homo sapiens', 'tRNA', NULL, NULL, 'TRA', NULL),
	('ACC4', 'ENA', 'old record', 'Mus musculus', 'misc_RNA', NULL, NULL, NULL, NULL);

INSERT INTO xref (upi, taxid, ac, dbid, deleted) VALUES
	('URS0000000001', 9606, 'ACC1', 1, 'N'),
	('URS0000000001', 9606, 'ACC2', 2, 'N'),
	('URS0000000002', 9606, 'ACC3', 3, 'N'),
	('URS0000000001', 10090, 'ACC4', 1, 'Y');

INSERT INTO rnc_reference_map (accession, reference_id) VALUES
	('ACC1', 1), ('ACC1', 2), ('ACC2', 3);

INSERT INTO rnc_coordinates (accession, name, strand, primary_start, primary_end) VALUES
	('ACC1', '1', 1, 100, 150),
	('ACC1', '1', 1, 200, 250),
	('ACC3', '1', -1, 500, 600),
	('ACC3', '2', -1, 500, 600),
	('ACC4', '1', 1, 300, 400);

INSERT INTO rnc_genome_mapping (region_id, upi, taxid, chromosome, strand, start, stop) VALUES
	('URS0000000001@1/100-250:+', 'URS0000000001', 9606, '1', 1, 100, 150),
	('URS0000000001@1/100-250:+', 'URS0000000001', 9606, '1', 1, 200, 250),
	('URS0000000003@1/900-1000:-', 'URS0000000003', 9606, '1', -1, 900, 1000),
	('URS0000000003@1/2000-2500:+', 'URS0000000003', 9606, '1', 1, 2000, 2100),
	('URS0000000003@1/2000-2500:+', 'URS0000000003', 9606, '1', 1, 2400, 2500);

INSERT INTO rnc_rna_precomputed (id, upi, taxid, rna_type, description, is_active) VALUES
	('URS0000000001_9606', 'URS0000000001', 9606, 'snoRNA', 'Homo sapiens small nucleolar RNA', 1),
	('URS0000000001', 'URS0000000001', NULL, 'snoRNA', 'small nucleolar RNA from 2 species', 1),
	('URS0000000002_9606', 'URS0000000002', 9606, 'tRNA', 'stale', 0),
	('URS0000000002', 'URS0000000002', NULL, 'tRNA', 'tRNA-Ala', 1);

INSERT INTO ensembl_assembly (assembly_id, ensembl_url, taxid, common_name, scientific_name, division) VALUES
	('GRCh38', 'homo_sapiens', 9606, 'human', 'Homo sapiens', 'Ensembl'),
	('GRCm39', 'mus_musculus', 10090, 'mouse', 'Mus musculus', 'Ensembl');
`

func newTestDB(t *testing.T) *RNAcentralDB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "rnacentral.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	require.NoError(t, CreateSchema(ctx, db))
	_, err = db.ExecContext(ctx, fixture)
	require.NoError(t, err)

	return NewRNAcentralDB(db)
}

func TestSequence(t *testing.T) {
	r := newTestDB(t)
	ctx := context.Background()

	s, err := r.Sequence(ctx, "URS0000000002")
	require.NoError(t, err)
	assert.Equal(t, "bbb", s.MD5)
	assert.Equal(t, 8, s.Length)
	assert.Equal(t, "GGCTACGT", s.Seq)

	s, err = r.Sequence(ctx, "URS0000000003")
	require.NoError(t, err)
	assert.Equal(t, "ACGTAC", s.Seq)

	_, err = r.Sequence(ctx, "URS0000009999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestXrefs(t *testing.T) {
	r := newTestDB(t)

	xrefs, err := r.Xrefs(context.Background(), "URS0000000001")
	require.NoError(t, err)
	require.Len(t, xrefs, 3)

	assert.Equal(t, "ACC1", xrefs[0].Accession.Accession)
	assert.Equal(t, 2, xrefs[0].Publications)
	assert.Equal(t, 2, xrefs[0].Coordinates)
	assert.Equal(t, "SNORD3A", xrefs[0].Accession.Product)
	assert.Empty(t, xrefs[0].Accession.Gene)
	assert.False(t, xrefs[0].Deleted)

	assert.Equal(t, "RFAM", xrefs[1].Database)
	assert.Equal(t, "Rfam", xrefs[1].DisplayName)
	assert.False(t, xrefs[1].IsRfamFullAlignment())

	assert.True(t, xrefs[2].Deleted)
	assert.Equal(t, 10090, xrefs[2].Taxid)
	assert.Equal(t, 1, xrefs[2].Coordinates)
}

func TestAssemblies(t *testing.T) {
	r := newTestDB(t)
	ctx := context.Background()

	a, err := r.AssemblyByURL(ctx, "homo_sapiens")
	require.NoError(t, err)
	assert.Equal(t, 9606, a.Taxid)
	assert.Equal(t, "GRCh38", a.AssemblyID)

	_, err = r.AssemblyByURL(ctx, "danio_rerio")
	assert.ErrorIs(t, err, ErrNotFound)

	all, err := r.Assemblies(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Homo sapiens", all[0].ScientificName)
	assert.Equal(t, "Mus musculus", all[1].ScientificName)
}

func TestXrefCoordinates_ClosedInterval(t *testing.T) {
	r := newTestDB(t)
	ctx := context.Background()

	coords, err := r.XrefCoordinates(ctx, 9606, "1", 100, 600)
	require.NoError(t, err)
	require.Len(t, coords, 3)

	assert.Equal(t, "ACC1", coords[0].Accession)
	assert.Equal(t, 100, coords[0].Start)
	assert.Equal(t, "1", coords[0].Strand)
	assert.Equal(t, 200, coords[1].Start)
	assert.Equal(t, "ACC3", coords[2].Accession)
	assert.Equal(t, "-1", coords[2].Strand)

	coords, err = r.XrefCoordinates(ctx, 9606, "1", 101, 600)
	require.NoError(t, err)
	assert.Len(t, coords, 2)

	// deleted xrefs never reach the browser
	coords, err = r.XrefCoordinates(ctx, 10090, "1", 1, 1000)
	require.NoError(t, err)
	assert.Empty(t, coords)
}

func TestMappings(t *testing.T) {
	r := newTestDB(t)

	mappings, err := r.Mappings(context.Background(), 9606, "1", 100, 1000)
	require.NoError(t, err)
	require.Len(t, mappings, 3)
	assert.Equal(t, "URS0000000001@1/100-250:+", mappings[0].RegionID)
	assert.Equal(t, 150, mappings[0].Stop)
	assert.Equal(t, "-1", mappings[2].Strand)

	mappings, err = r.Mappings(context.Background(), 9606, "1", 100, 999)
	require.NoError(t, err)
	assert.Len(t, mappings, 2)
}

func TestMappingSpans(t *testing.T) {
	r := newTestDB(t)
	ctx := context.Background()

	spans, err := r.MappingSpans(ctx, 9606, "1", 99, 1001)
	require.NoError(t, err)
	require.Len(t, spans, 2)
	assert.Equal(t, model.MappingSpan{
		RegionID: "URS0000000001@1/100-250:+", UPI: "URS0000000001", Taxid: 9606,
		Chromosome: "1", Strand: "1", Start: 100, Stop: 250,
	}, spans[0])
	assert.Equal(t, "URS0000000003@1/900-1000:-", spans[1].RegionID)

	// strict bounds
	spans, err = r.MappingSpans(ctx, 9606, "1", 100, 1001)
	require.NoError(t, err)
	require.Len(t, spans, 1)
	assert.Equal(t, "URS0000000003@1/900-1000:-", spans[0].RegionID)

	// the span covers rows outside the query
	spans, err = r.MappingSpans(ctx, 9606, "1", 2050, 3000)
	require.NoError(t, err)
	assert.Empty(t, spans)

	spans, err = r.MappingSpans(ctx, 9606, "1", 1999, 2501)
	require.NoError(t, err)
	require.Len(t, spans, 1)
	assert.Equal(t, 2000, spans[0].Start)
	assert.Equal(t, 2500, spans[0].Stop)
}

func TestGenomeAnnotations_MappingCrossingRegionEdge(t *testing.T) {
	r := newTestDB(t)

	features, err := model.GenomeAnnotations(context.Background(), r, "homo_sapiens", "1", 2050, 3000)
	require.NoError(t, err)
	assert.Empty(t, features)

	features, err = model.GenomeAnnotations(context.Background(), r, "homo_sapiens", "1", 1999, 2501)
	require.NoError(t, err)
	require.Len(t, features, 3)
	assert.Equal(t, "URS0000000003@1/2000-2500:+", features[0].ID)
	assert.Equal(t, 2000, features[0].Start)
	assert.Equal(t, 2500, features[0].End)
	assert.Equal(t, "+", features[0].Strand)
	assert.Equal(t, features[0].ID, features[1].Parent)
	assert.Equal(t, features[0].ID, features[2].Parent)
}

func TestPrecomputed(t *testing.T) {
	r := newTestDB(t)

	rows, err := r.Precomputed(context.Background(), []string{"URS0000000001", "URS0000000002", "URS0000000003"}, 9606)
	require.NoError(t, err)

	byKey := make(map[string]string)
	for _, p := range rows {
		byKey[fmt.Sprintf("%s/%d", p.UPI, p.Taxid)] = p.Description
	}
	assert.Equal(t, map[string]string{
		"URS0000000001/9606": "Homo sapiens small nucleolar RNA",
		"URS0000000001/0":    "small nucleolar RNA from 2 species",
		"URS0000000002/0":    "tRNA-Ala",
	}, byKey)
}

func TestXrefDatabases(t *testing.T) {
	r := newTestDB(t)

	dbs, err := r.XrefDatabases(context.Background(), []string{"URS0000000001", "URS0000000002"}, 9606)
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"URS0000000001": {"ENA", "Rfam"},
		"URS0000000002": {"RefSeq"},
	}, dbs)
}

func TestBatches(t *testing.T) {
	values := make([]string, 2*batchSize+1)
	for i := range values {
		values[i] = fmt.Sprintf("URS%010d", i)
	}

	got := batches(values)

	require.Len(t, got, 3)
	assert.Len(t, got[0], batchSize)
	assert.Len(t, got[2], 1)
	assert.Empty(t, batches(nil))
	assert.Equal(t, "?,?,?", placeholders(3))
}
