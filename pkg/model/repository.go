package model

import (
	"context"
	"errors"
)

// ErrNotFound is returned by repositories when a looked-up row does not exist.
var ErrNotFound = errors.New("not found")

// GenomeRepository is the data access needed to build genome browser features.
type GenomeRepository interface {
	// AssemblyByURL resolves an Ensembl species slug (e.g. homo_sapiens).
	AssemblyByURL(ctx context.Context, species string) (*Assembly, error)
	// XrefCoordinates returns coordinates with start >= start and end <= end on
	// chromosome, joined to non-deleted xrefs of taxid.
	XrefCoordinates(ctx context.Context, taxid int, chromosome string, start, end int) ([]XrefCoordinate, error)
	// MappingSpans groups every mapping row of taxid on chromosome by
	// (region_id, upi, strand, chromosome, taxid) and returns the groups whose
	// min(start) > start and max(stop) < end.
	MappingSpans(ctx context.Context, taxid int, chromosome string, start, end int) ([]MappingSpan, error)
	// Mappings returns the exon rows with start >= start and stop <= end. Their
	// position in the result numbers the exon ids.
	Mappings(ctx context.Context, taxid int, chromosome string, start, end int) ([]Mapping, error)
	// Precomputed returns rows for taxid and the taxon-agnostic rows for upis.
	Precomputed(ctx context.Context, upis []string, taxid int) ([]Precomputed, error)
	// XrefDatabases returns sorted distinct display names of live xrefs per upi.
	XrefDatabases(ctx context.Context, upis []string, taxid int) (map[string][]string, error)
}

// SequenceRepository is the data access needed to describe a sequence.
type SequenceRepository interface {
	Sequence(ctx context.Context, upi string) (*Sequence, error)
	// Xrefs returns every xref of upi, deleted ones included, in a stable order.
	Xrefs(ctx context.Context, upi string) ([]Xref, error)
}
