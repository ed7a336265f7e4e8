// Description lines and RNA types picked from a sequence's cross-references.

package model

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ScoreWeights are the per-xref bonuses and penalties used when a species
// specific description is chosen.
type ScoreWeights struct {
	Publication       float64 `mapstructure:"publication" json:"publication"`
	Genome            float64 `mapstructure:"genome" json:"genome"`
	Product           float64 `mapstructure:"product" json:"product"`
	Gene              float64 `mapstructure:"gene" json:"gene"`
	Note              float64 `mapstructure:"note" json:"note"`
	RfamFullAlignment float64 `mapstructure:"rfam-full-alignment" json:"rfam_full_alignment"`
	MiscRNA           float64 `mapstructure:"misc-rna" json:"misc_rna"`
}

// DescriptionConfig drives Describe.
type DescriptionConfig struct {
	Weights ScoreWeights `mapstructure:"weights"`
	// Overrides maps a upi to a fixed description used when no taxid is given.
	Overrides map[string]string `mapstructure:"overrides"`
}

// URS000065859A has more than 200K xrefs, all from Rfam.
const neocallimastigalesUPI = "URS000065859A"

func DefaultDescriptionConfig() DescriptionConfig {
	return DescriptionConfig{
		Weights: ScoreWeights{
			Publication:       0.2,
			Genome:            1,
			Product:           0.1,
			Gene:              0.1,
			Note:              0.1,
			RfamFullAlignment: -2,
			MiscRNA:           -2,
		},
		Overrides: map[string]string{
			neocallimastigalesUPI: "uncultured Neocallimastigales 5.8S ribosomal RNA",
		},
	}
}

type Description struct {
	UPI         string `json:"upi"`
	Taxid       int    `json:"taxid,omitempty"`
	Description string `json:"description"`
	RNAType     string `json:"rna_type"`
}

// Describe picks the description and RNA type of upi. A zero taxid asks for
// the description across all species; a taxid the sequence was never seen in
// is ignored. Unknown upis return ErrNotFound.
func Describe(ctx context.Context, repo SequenceRepository, cfg DescriptionConfig, upi string, taxid int) (*Description, error) {

	seq, err := repo.Sequence(ctx, upi)
	if err != nil {
		return nil, fmt.Errorf("describe: %w", err)
	}

	// Computing these would mean loading every xref of the sequence.
	if fixed, ok := cfg.Overrides[seq.UPI]; ok && taxid == 0 {
		return &Description{UPI: seq.UPI, Description: fixed}, nil
	}

	all, err := repo.Xrefs(ctx, seq.UPI)
	if err != nil {
		return nil, fmt.Errorf("xrefs of %s: %w", seq.UPI, err)
	}

	if taxid != 0 && !hasTaxid(all, taxid) {
		taxid = 0
	}

	xrefs := xrefsForDescription(all, taxid)

	if taxid == 0 {
		rna := rnaType(xrefs)
		return &Description{
			UPI:         seq.UPI,
			Description: genericDescription(xrefs, rna, distinctOrganisms(all)),
			RNAType:     rna,
		}, nil
	}

	best := bestXref(xrefs, cfg.Weights)
	return &Description{
		UPI:         seq.UPI,
		Taxid:       taxid,
		Description: best.Accession.Description,
		RNAType:     best.Accession.RNAType(),
	}, nil
}

func hasTaxid(xrefs []Xref, taxid int) bool {
	for i := range xrefs {
		if xrefs[i].Taxid == taxid {
			return true
		}
	}
	return false
}

// xrefsForDescription prefers live xrefs and falls back to deleted ones.
func xrefsForDescription(all []Xref, taxid int) []Xref {
	var active, every []Xref
	for _, x := range all {
		if taxid != 0 && x.Taxid != taxid {
			continue
		}
		every = append(every, x)
		if !x.Deleted {
			active = append(active, x)
		}
	}
	if len(active) > 0 {
		return active
	}
	return every
}

func distinctOrganisms(xrefs []Xref) int {
	taxa := make(map[int]struct{})
	for _, x := range xrefs {
		taxa[x.Taxid] = struct{}{}
	}
	return len(taxa)
}

// distinct returns the non-empty values of field in first-seen order.
func distinct(xrefs []Xref, field func(*Accession) string) []string {
	seen := make(map[string]bool)
	values := make([]string, 0)
	for i := range xrefs {
		v := field(&xrefs[i].Accession)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values
}

func genericDescription(xrefs []Xref, rnaType string, organisms int) string {
	if len(xrefs) == 0 {
		return ""
	}

	// Empty descriptions count as a distinct value here.
	descriptions := make(map[string]struct{})
	for _, x := range xrefs {
		descriptions[x.Accession.Description] = struct{}{}
	}
	if len(descriptions) == 1 {
		return capitalize(xrefs[0].Accession.Description)
	}

	if organisms == 1 {
		return xrefs[0].Accession.Species + " " + rnaType
	}
	return fmt.Sprintf("%s from %d species", rnaType, organisms)
}

// rnaType is product > gene > feature names, with ncRNA features replaced by
// their ncRNA classes.
func rnaType(xrefs []Xref) string {
	products := distinct(xrefs, func(a *Accession) string { return a.Product })
	if len(products) == 1 {
		return products[0]
	}

	genes := distinct(xrefs, func(a *Accession) string { return a.Gene })
	if len(genes) == 1 {
		return genes[0]
	}

	featureNames := distinct(xrefs, func(a *Accession) string { return a.FeatureName })
	if len(featureNames) == 1 && featureNames[0] == "ncRNA" {
		classes := distinct(xrefs, func(a *Accession) string { return a.NcRNAClass })
		if len(classes) > 1 {
			classes = without(classes, "misc_RNA")
		}
		return strings.Join(classes, "/")
	}
	return strings.Join(featureNames, "/")
}

func without(values []string, drop string) []string {
	kept := values[:0:0]
	for _, v := range values {
		if v != drop {
			kept = append(kept, v)
		}
	}
	return kept
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// ScoreXref rates how informative a cross-reference is.
func ScoreXref(x *Xref, w ScoreWeights) float64 {
	score := float64(x.Publications) * w.Publication

	if x.Coordinates > 0 {
		score += w.Genome
	}
	if x.Accession.Product != "" {
		score += w.Product
	}
	if x.Accession.Gene != "" {
		score += w.Gene
	}
	if x.Accession.Note != "" {
		score += w.Note
	}
	if x.IsRfamFullAlignment() {
		score += w.RfamFullAlignment
	}
	if x.Accession.FeatureName == "misc_RNA" {
		score += w.MiscRNA
	}
	return score
}

// bestXref returns the highest scoring xref; ties go to the earliest one.
func bestXref(xrefs []Xref, w ScoreWeights) *Xref {
	type scored struct {
		xref  *Xref
		score float64
	}

	ranked := make([]scored, len(xrefs))
	for i := range xrefs {
		ranked[i] = scored{xref: &xrefs[i], score: ScoreXref(&xrefs[i], w)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	return ranked[0].xref
}
