// Genome browser features for a region: cross-reference coordinates merged
// with genome mappings.

package model

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rnacentral/rnacentral-go/logger"
	"go.uber.org/zap"
)

// GenomeAnnotations returns transcripts and exons overlapping
// chromosome:start-end for the species slug. Features backed by
// cross-references come first; mapping transcripts that repeat one of them
// are dropped together with their exons. An unknown species yields an empty
// slice.
func GenomeAnnotations(ctx context.Context, repo GenomeRepository, species, chromosome string, start, end int) ([]*Feature, error) {

	assembly, err := repo.AssemblyByURL(ctx, species)
	if errors.Is(err, ErrNotFound) {
		logger.Debug("Unknown species", zap.String("species", species))
		return []*Feature{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("assembly %s: %w", species, err)
	}
	taxid := assembly.Taxid

	coords, err := repo.XrefCoordinates(ctx, taxid, chromosome, start, end)
	if err != nil {
		return nil, fmt.Errorf("xref coordinates: %w", err)
	}

	// Mapping transcripts must lie strictly inside the region while
	// coordinates above were matched inclusively.
	spans, err := repo.MappingSpans(ctx, taxid, chromosome, start, end)
	if err != nil {
		return nil, fmt.Errorf("genome mapping spans: %w", err)
	}

	mappings, err := repo.Mappings(ctx, taxid, chromosome, start, end)
	if err != nil {
		return nil, fmt.Errorf("genome mappings: %w", err)
	}

	groups := groupMappings(spans, mappings, start, end)

	upis := collectUPIs(coords, groups)
	annotations, err := loadAnnotations(ctx, repo, upis, taxid)
	if err != nil {
		return nil, err
	}

	xrefFeatures := featuresFromXrefs(coords, chromosome, annotations)
	mappingFeatures := featuresFromMappings(groups, annotations)

	return mergeFeatures(xrefFeatures, mappingFeatures), nil
}

// annotationIndex carries everything looked up per upi in one batch.
type annotationIndex struct {
	specific  map[string]Precomputed
	fallback  map[string]Precomputed
	databases map[string][]string
}

func (a *annotationIndex) precomputed(upi string) Precomputed {
	if p, ok := a.specific[upi]; ok {
		return p
	}
	return a.fallback[upi]
}

func loadAnnotations(ctx context.Context, repo GenomeRepository, upis []string, taxid int) (*annotationIndex, error) {
	index := &annotationIndex{
		specific:  make(map[string]Precomputed),
		fallback:  make(map[string]Precomputed),
		databases: make(map[string][]string),
	}
	if len(upis) == 0 {
		return index, nil
	}

	rows, err := repo.Precomputed(ctx, upis, taxid)
	if err != nil {
		return nil, fmt.Errorf("precomputed: %w", err)
	}
	for _, row := range rows {
		if row.Taxid == taxid {
			index.specific[row.UPI] = row
		} else if row.Taxid == 0 {
			index.fallback[row.UPI] = row
		}
	}

	dbs, err := repo.XrefDatabases(ctx, upis, taxid)
	if err != nil {
		return nil, fmt.Errorf("xref databases: %w", err)
	}
	if dbs != nil {
		index.databases = dbs
	}
	return index, nil
}

func collectUPIs(coords []XrefCoordinate, groups []*mappingGroup) []string {
	seen := make(map[string]bool)
	upis := make([]string, 0, len(coords)+len(groups))
	add := func(upi string) {
		if !seen[upi] {
			seen[upi] = true
			upis = append(upis, upi)
		}
	}
	for _, c := range coords {
		add(c.UPI)
	}
	for _, g := range groups {
		add(g.key.upi)
	}
	return upis
}

// featuresFromXrefs emits one transcript per upi, built from the first
// accession that reaches it, followed by that accession's exons.
func featuresFromXrefs(coords []XrefCoordinate, chromosome string, annotations *annotationIndex) []*Feature {

	accessions := make([]string, 0)
	exonsByAccession := make(map[string][]XrefCoordinate)
	for _, c := range coords {
		if _, ok := exonsByAccession[c.Accession]; !ok {
			accessions = append(accessions, c.Accession)
		}
		exonsByAccession[c.Accession] = append(exonsByAccession[c.Accession], c)
	}

	features := make([]*Feature, 0, len(coords)*2)
	seenUPI := make(map[string]bool)

	for _, accession := range accessions {
		exons := exonsByAccession[accession]
		upi := exons[0].UPI
		if seenUPI[upi] {
			continue
		}
		seenUPI[upi] = true

		placed := firstPlaced(exons)
		spanStart, spanEnd := exons[0].Start, exons[0].End
		for _, e := range exons[1:] {
			spanStart = min(spanStart, e.Start)
			spanEnd = max(spanEnd, e.End)
		}

		transcriptID := upi + "_" + placed.Chromosome + ":" + strconv.Itoa(spanStart) + "-" + strconv.Itoa(spanEnd)
		pre := annotations.precomputed(upi)

		features = append(features, &Feature{
			ID:             transcriptID,
			ExternalName:   upi,
			Taxid:          exons[0].Taxid,
			FeatureType:    FeatureTranscript,
			LogicName:      LogicName,
			Biotype:        pre.RNAType,
			Description:    pre.Description,
			SeqRegionName:  chromosome,
			UCSCChromosome: UCSCChromosome(chromosome),
			Strand:         NormalizeStrand(placed.Strand),
			Start:          spanStart,
			End:            spanEnd,
			Databases:      annotations.databases[upi],
		})

		for i, e := range exons {
			// some exons are not placed on the genome (common in RefSeq)
			if e.Chromosome == "" {
				continue
			}
			exonID := accession + "_exon_" + strconv.Itoa(i)
			features = append(features, &Feature{
				ID:             exonID,
				ExternalName:   exonID,
				Taxid:          exons[0].Taxid,
				FeatureType:    FeatureExon,
				Parent:         transcriptID,
				LogicName:      LogicName,
				Biotype:        pre.RNAType,
				SeqRegionName:  chromosome,
				UCSCChromosome: UCSCChromosome(chromosome),
				Strand:         NormalizeStrand(e.Strand),
				Start:          e.Start,
				End:            e.End,
			})
		}
	}

	return features
}

func firstPlaced(exons []XrefCoordinate) XrefCoordinate {
	for _, e := range exons {
		if e.Chromosome != "" {
			return e
		}
	}
	return exons[0]
}

type mappingKey struct {
	regionID   string
	upi        string
	strand     string
	chromosome string
	taxid      int
}

type mappingGroup struct {
	key   mappingKey
	start int
	stop  int
	// exons keep their position in the mapping result, which is part of the id
	exons []indexedMapping
}

type indexedMapping struct {
	index int
	Mapping
}

func spanKey(regionID, upi, strand, chromosome string, taxid int) mappingKey {
	return mappingKey{
		regionID:   regionID,
		upi:        upi,
		strand:     NormalizeStrand(strand),
		chromosome: chromosome,
		taxid:      taxid,
	}
}

// groupMappings builds transcripts from spans, which cover every row of a
// group, and keeps those strictly inside (start, end). Rows are attached as
// exons to their group; rows of any other group are dropped.
func groupMappings(spans []MappingSpan, mappings []Mapping, start, end int) []*mappingGroup {

	groups := make([]*mappingGroup, 0, len(spans))
	byKey := make(map[mappingKey]*mappingGroup, len(spans))

	for _, sp := range spans {
		if sp.Start <= start || sp.Stop >= end {
			continue
		}
		key := spanKey(sp.RegionID, sp.UPI, sp.Strand, sp.Chromosome, sp.Taxid)
		if _, ok := byKey[key]; ok {
			continue
		}
		g := &mappingGroup{key: key, start: sp.Start, stop: sp.Stop}
		byKey[key] = g
		groups = append(groups, g)
	}

	for i, m := range mappings {
		g, ok := byKey[spanKey(m.RegionID, m.UPI, m.Strand, m.Chromosome, m.Taxid)]
		if !ok {
			continue
		}
		g.exons = append(g.exons, indexedMapping{index: i, Mapping: m})
	}
	return groups
}

// mappingFeatures pairs a mapping transcript with its exons so the merge can
// drop both together.
type mappingFeatures struct {
	transcript *Feature
	exons      []*Feature
}

func featuresFromMappings(groups []*mappingGroup, annotations *annotationIndex) []mappingFeatures {

	result := make([]mappingFeatures, 0, len(groups))

	for _, g := range groups {
		pre := annotations.precomputed(g.key.upi)

		mf := mappingFeatures{
			transcript: &Feature{
				ID:            g.key.regionID,
				ExternalName:  g.key.upi,
				Taxid:         g.key.taxid,
				FeatureType:   FeatureTranscript,
				LogicName:     LogicName,
				Biotype:       pre.RNAType,
				Description:   pre.Description,
				SeqRegionName: g.key.chromosome,
				Strand:        g.key.strand,
				Start:         g.start,
				End:           g.stop,
				Databases:     annotations.databases[g.key.upi],
			},
		}

		for _, e := range g.exons {
			mf.exons = append(mf.exons, &Feature{
				ID:            g.key.regionID + "_exon_" + strconv.Itoa(e.index),
				ExternalName:  g.key.regionID,
				Taxid:         e.Taxid,
				FeatureType:   FeatureExon,
				Parent:        g.key.regionID,
				LogicName:     LogicName,
				Biotype:       pre.RNAType,
				SeqRegionName: e.Chromosome,
				Strand:        NormalizeStrand(e.Strand),
				Start:         e.Start,
				End:           e.Stop,
			})
		}
		result = append(result, mf)
	}

	return result
}

// mergeFeatures keeps all xref features, then appends mapping transcripts
// (and their exons) that do not repeat a feature already accepted. Mapping
// transcripts come before mapping exons, as in the browser track format.
func mergeFeatures(xrefFeatures []*Feature, mapped []mappingFeatures) []*Feature {

	features := make([]*Feature, 0, len(xrefFeatures)+2*len(mapped))
	features = append(features, xrefFeatures...)

	var exons []*Feature
	for _, mf := range mapped {
		if containsLocus(features, mf.transcript) {
			logger.Debug("Skip duplicated mapping",
				zap.String("region_id", mf.transcript.ID),
				zap.String("upi", mf.transcript.ExternalName))
			continue
		}
		features = append(features, mf.transcript)
		exons = append(exons, mf.exons...)
	}

	return append(features, exons...)
}

func containsLocus(features []*Feature, f *Feature) bool {
	for _, candidate := range features {
		if candidate.SameLocus(f) {
			return true
		}
	}
	return false
}
