// Model for sequence output in FASTA

package model

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
)

// Width of FASTA sequence lines.
const fastaLineWidth = 80

// RNA returns the sequence as RNA: upper case with U in place of T.
func (s *Sequence) RNA() string {
	return strings.ReplaceAll(strings.ToUpper(s.Seq), "T", "U")
}

// WriteFasta writes one FASTA record with a ">upi description" header.
func WriteFasta(w io.Writer, seq *Sequence, description string) error {

	var output bytes.Buffer

	header := ">" + seq.UPI
	if description != "" {
		header += " " + description
	}
	output.WriteString(header)
	output.WriteByte('\n')

	rna := seq.RNA()
	for len(rna) > fastaLineWidth {
		output.WriteString(rna[:fastaLineWidth])
		output.WriteByte('\n')
		rna = rna[fastaLineWidth:]
	}
	if rna != "" {
		output.WriteString(rna)
		output.WriteByte('\n')
	}

	_, err := w.Write(output.Bytes())
	return err
}

// Fasta renders upi with its generic description as the header.
func Fasta(ctx context.Context, repo SequenceRepository, cfg DescriptionConfig, upi string) (string, error) {

	seq, err := repo.Sequence(ctx, upi)
	if err != nil {
		return "", fmt.Errorf("fasta: %w", err)
	}

	description, err := Describe(ctx, repo, cfg, upi, 0)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if err := WriteFasta(&b, seq, description.Description); err != nil {
		return "", err
	}
	return b.String(), nil
}
