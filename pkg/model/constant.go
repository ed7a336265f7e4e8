package model

import "strings"

type ExpertDatabase struct {
	Name         string   `json:"name"`
	Label        string   `json:"label"`
	URL          string   `json:"url"`
	Description  string   `json:"description"`
	Abbreviation string   `json:"abbreviation"`
	Examples     []string `json:"examples"`
	Imported     bool     `json:"imported"`
}

var (
	EXPERT_DATABASES = []ExpertDatabase{
		{
			Name:         "ENA",
			Label:        "ena",
			URL:          "http://www.ebi.ac.uk/ena/",
			Description:  "provides a comprehensive record of the world's nucleotide sequencing information",
			Abbreviation: "European Nucleotide Archive",
			Examples:     []string{"URS00002D0E0C", "URS000035EE7E", "URS0000000001"},
			Imported:     true,
		},
		{
			Name:        "Rfam",
			Label:       "rfam",
			URL:         "http://rfam.xfam.org",
			Description: "is a database containing information about ncRNA families and other structured RNA elements",
			Examples:    []string{"URS00000478B7", "URS000066DAB6", "URS000068EEC5"},
			Imported:    true,
		},
		{
			Name:        "miRBase",
			Label:       "mirbase",
			URL:         "http://www.mirbase.org/",
			Description: "is a database of published miRNA sequences and annotations that provides a centralised system for assigning names to miRNA genes",
			Examples:    []string{"URS00003B7674", "URS000016FD1A"},
			Imported:    true,
		},
		{
			Name:         "VEGA",
			Label:        "vega",
			URL:          "http://vega.sanger.ac.uk/",
			Description:  "is a repository for high-quality gene models produced by the manual annotation of vertebrate genomes",
			Abbreviation: "Vertebrate Genome Annotation",
			Imported:     true,
		},
		{
			Name:        "tmRNA Website",
			Label:       "tmrna-website",
			URL:         "http://bioinformatics.sandia.gov/tmrna/",
			Description: "contains predicted tmRNA sequences from RefSeq prokaryotic genomes, plasmids and phages",
			Imported:    true,
		},
		{
			Name:         "SRPDB",
			Label:        "srpdb",
			URL:          "http://rnp.uthscsa.edu/rnp/SRPDB/SRPDB.html",
			Description:  "provides aligned, annotated and phylogenetically ordered sequences related to structure and function of SRP",
			Abbreviation: "Signal Recognition Particle Database",
			Imported:     true,
		},
		{
			Name:        "lncRNAdb",
			Label:       "lncrnadb",
			URL:         "http://lncrnadb.org/",
			Description: "is a database providing comprehensive annotations of eukaryotic long non-coding RNAs (lncRNAs)",
			Imported:    true,
		},
		{
			Name:        "gtRNAdb",
			Label:       "gtrnadb",
			URL:         "http://gtrnadb.ucsc.edu/",
			Description: "contains tRNA gene predictions on complete or nearly complete genomes",
			Imported:    true,
		},
		{
			Name:         "RefSeq",
			Label:        "refseq",
			URL:          "http://www.ncbi.nlm.nih.gov/refseq/",
			Description:  "is a comprehensive, integrated, non-redundant, well-annotated set of reference sequences",
			Abbreviation: "NCBI Reference Sequence Database",
			Imported:     true,
		},
		{
			Name:         "RDP",
			Label:        "rdp",
			URL:          "http://rdp.cme.msu.edu/",
			Description:  "provides quality-controlled, aligned and annotated rRNA sequences and a suite of analysis tools",
			Abbreviation: "Ribosomal Database Project",
			Imported:     true,
		},
	}
)

// ExpertDatabaseByLabel finds an expert database by label, ignoring case.
func ExpertDatabaseByLabel(label string) (*ExpertDatabase, bool) {
	for i := range EXPERT_DATABASES {
		if strings.EqualFold(EXPERT_DATABASES[i].Label, label) {
			return &EXPERT_DATABASES[i], true
		}
	}
	return nil, false
}
