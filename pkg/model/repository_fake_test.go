package model

import (
	"context"
	"errors"
)

var errBoom = errors.New("boom")

type fakeGenomeRepo struct {
	assemblies  map[string]*Assembly
	coords      []XrefCoordinate
	mappings    []Mapping
	precomputed []Precomputed
	databases   map[string][]string

	coordsErr        error
	precomputedCalls int
}

func (f *fakeGenomeRepo) AssemblyByURL(ctx context.Context, species string) (*Assembly, error) {
	if a, ok := f.assemblies[species]; ok {
		return a, nil
	}
	return nil, ErrNotFound
}

func (f *fakeGenomeRepo) XrefCoordinates(ctx context.Context, taxid int, chromosome string, start, end int) ([]XrefCoordinate, error) {
	return f.coords, f.coordsErr
}

func (f *fakeGenomeRepo) MappingSpans(ctx context.Context, taxid int, chromosome string, start, end int) ([]MappingSpan, error) {
	var spans []MappingSpan
	index := make(map[MappingSpan]int)
	for _, m := range f.mappings {
		if m.Taxid != taxid || m.Chromosome != chromosome {
			continue
		}
		key := MappingSpan{RegionID: m.RegionID, UPI: m.UPI, Taxid: m.Taxid, Chromosome: m.Chromosome, Strand: m.Strand}
		i, ok := index[key]
		if !ok {
			i = len(spans)
			index[key] = i
			key.Start, key.Stop = m.Start, m.Stop
			spans = append(spans, key)
		}
		spans[i].Start = min(spans[i].Start, m.Start)
		spans[i].Stop = max(spans[i].Stop, m.Stop)
	}

	var inside []MappingSpan
	for _, sp := range spans {
		if sp.Start > start && sp.Stop < end {
			inside = append(inside, sp)
		}
	}
	return inside, nil
}

func (f *fakeGenomeRepo) Mappings(ctx context.Context, taxid int, chromosome string, start, end int) ([]Mapping, error) {
	var rows []Mapping
	for _, m := range f.mappings {
		if m.Taxid == taxid && m.Chromosome == chromosome && m.Start >= start && m.Stop <= end {
			rows = append(rows, m)
		}
	}
	return rows, nil
}

func (f *fakeGenomeRepo) Precomputed(ctx context.Context, upis []string, taxid int) ([]Precomputed, error) {
	f.precomputedCalls++
	wanted := make(map[string]bool)
	for _, upi := range upis {
		wanted[upi] = true
	}
	var rows []Precomputed
	for _, p := range f.precomputed {
		if wanted[p.UPI] && (p.Taxid == taxid || p.Taxid == 0) {
			rows = append(rows, p)
		}
	}
	return rows, nil
}

func (f *fakeGenomeRepo) XrefDatabases(ctx context.Context, upis []string, taxid int) (map[string][]string, error) {
	return f.databases, nil
}

type fakeSequenceRepo struct {
	sequences map[string][]Xref
	xrefCalls int
}

func (f *fakeSequenceRepo) Sequence(ctx context.Context, upi string) (*Sequence, error) {
	if _, ok := f.sequences[upi]; !ok {
		return nil, ErrNotFound
	}
	return &Sequence{UPI: upi}, nil
}

func (f *fakeSequenceRepo) Xrefs(ctx context.Context, upi string) ([]Xref, error) {
	f.xrefCalls++
	return f.sequences[upi], nil
}
