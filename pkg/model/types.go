package model

import (
	"regexp"
	"strings"
)

const (
	FeatureTranscript = "transcript"
	FeatureExon       = "exon"

	// Genoverse refuses features without a logic name.
	LogicName = "RNAcentral"
)

// Feature is one row of the genome browser track.
type Feature struct {
	ID             string   `json:"id"`
	ExternalName   string   `json:"external_name"`
	Taxid          int      `json:"taxid"`
	FeatureType    string   `json:"feature_type"`
	Parent         string   `json:"parent,omitempty"`
	LogicName      string   `json:"logic_name"`
	SeqRegionName  string   `json:"seq_region_name"`
	UCSCChromosome string   `json:"ucsc_chromosome,omitempty"` // cross-reference features only
	Strand         string   `json:"strand"`
	Start          int      `json:"start"`
	End            int      `json:"end"`
	Biotype        string   `json:"biotype,omitempty"`
	Description    string   `json:"description,omitempty"`
	Databases      []string `json:"databases,omitempty"`
}

// SameLocus reports whether two features describe the same transcript
// placement. Only these six fields take part.
func (f *Feature) SameLocus(o *Feature) bool {
	return f.Start == o.Start &&
		f.End == o.End &&
		f.Strand == o.Strand &&
		f.SeqRegionName == o.SeqRegionName &&
		f.Taxid == o.Taxid &&
		f.ExternalName == o.ExternalName
}

func (f *Feature) IsTranscript() bool {
	return f.FeatureType == FeatureTranscript
}

var numericChromosome = regexp.MustCompile(`^\d+`)

// UCSCChromosome returns the chr-prefixed alias used by UCSC style browsers.
func UCSCChromosome(name string) string {
	if numericChromosome.MatchString(name) || name == "X" || name == "Y" {
		return "chr" + name
	}
	return name
}

// NormalizeStrand maps the integer and symbolic encodings found in the
// coordinate tables onto "+" and "-".
func NormalizeStrand(raw string) string {
	switch strings.TrimSpace(raw) {
	case "1", "+1", "+":
		return "+"
	case "-1", "-":
		return "-"
	default:
		return strings.TrimSpace(raw)
	}
}

type Sequence struct {
	UPI    string `json:"upi"`
	MD5    string `json:"md5"`
	Length int    `json:"length"`
	Seq    string `json:"sequence"`
}

type Accession struct {
	Accession      string `json:"accession"`
	Database       string `json:"database"`
	Description    string `json:"description"`
	Species        string `json:"species"`
	Classification string `json:"classification"`
	FeatureName    string `json:"feature_name"`
	NcRNAClass     string `json:"ncrna_class"`
	Product        string `json:"product"`
	Gene           string `json:"gene"`
	Note           string `json:"note"`
}

// RNAType is the ncRNA class for ncRNA features and the feature name otherwise.
func (a *Accession) RNAType() string {
	if a.FeatureName == "ncRNA" {
		return a.NcRNAClass
	}
	return a.FeatureName
}

// Xref links a sequence to an expert database accession in one taxon.
type Xref struct {
	UPI          string
	Taxid        int
	Deleted      bool
	DatabaseID   int
	Database     string // descr, e.g. RFAM
	DisplayName  string
	Accession    Accession
	Publications int
	Coordinates  int
}

const rfamDatabase = "RFAM"

// IsRfamFullAlignment is true for Rfam hits outside the curated seed.
func (x *Xref) IsRfamFullAlignment() bool {
	return x.Database == rfamDatabase && !strings.Contains(x.Accession.Note, "alignment:seed")
}

type Assembly struct {
	AssemblyID     string `json:"assembly_id"`
	EnsemblURL     string `json:"ensembl_url"`
	Taxid          int    `json:"taxid"`
	CommonName     string `json:"common_name"`
	ScientificName string `json:"scientific_name"`
	Division       string `json:"division"`
}

// XrefCoordinate is one exon placement reached through a live cross-reference.
type XrefCoordinate struct {
	UPI        string
	Taxid      int
	Accession  string
	Chromosome string
	Strand     string
	Start      int
	End        int
}

// Mapping is one computationally predicted exon placement.
type Mapping struct {
	RegionID   string
	UPI        string
	Taxid      int
	Chromosome string
	Strand     string
	Start      int
	Stop       int
}

// MappingSpan is the extent of one mapped transcript over all of its rows.
type MappingSpan struct {
	RegionID   string
	UPI        string
	Taxid      int
	Chromosome string
	Strand     string
	Start      int
	Stop       int
}

// Precomputed holds the cached rna_type/description. Taxid 0 is the
// taxon-agnostic row.
type Precomputed struct {
	UPI         string
	Taxid       int
	RNAType     string
	Description string
}
