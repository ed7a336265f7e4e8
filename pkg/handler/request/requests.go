package request

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedRegion = errors.New("region must look like <chromosome>:<start>-<end>")

// Region of a genome, 1-based and inclusive.
type RegionRequest struct {
	Species    string `json:"species"`
	Chromosome string `json:"chromosome"`
	Start      int    `json:"start"`
	End        int    `json:"end"`
}

// ParseRegion reads "<chromosome>:<start>-<end>". Thousands separators in the
// coordinates are ignored, so "X:1,000-2,000" is accepted.
func ParseRegion(species, raw string) (RegionRequest, error) {

	colon := strings.LastIndex(raw, ":")
	if colon <= 0 {
		return RegionRequest{}, fmt.Errorf("%w: %q", ErrMalformedRegion, raw)
	}
	chromosome := raw[:colon]

	bounds := strings.SplitN(raw[colon+1:], "-", 2)
	if len(bounds) != 2 {
		return RegionRequest{}, fmt.Errorf("%w: %q", ErrMalformedRegion, raw)
	}

	start, err := ParseCoordinate(bounds[0])
	if err != nil {
		return RegionRequest{}, fmt.Errorf("%w: start: %v", ErrMalformedRegion, err)
	}
	end, err := ParseCoordinate(bounds[1])
	if err != nil {
		return RegionRequest{}, fmt.Errorf("%w: end: %v", ErrMalformedRegion, err)
	}
	if start > end {
		return RegionRequest{}, fmt.Errorf("%w: start %d is after end %d", ErrMalformedRegion, start, end)
	}

	return RegionRequest{
		Species:    species,
		Chromosome: chromosome,
		Start:      start,
		End:        end,
	}, nil
}

// ParseCoordinate parses a positive genome position, dropping commas.
func ParseCoordinate(raw string) (int, error) {
	n, err := strconv.Atoi(strings.ReplaceAll(strings.TrimSpace(raw), ",", ""))
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("position %d is not positive", n)
	}
	return n, nil
}

// ParseTaxid reads an NCBI taxonomy id. Empty means no taxon filter (0).
func ParseTaxid(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	taxid, err := strconv.Atoi(raw)
	if err != nil || taxid <= 0 {
		return 0, fmt.Errorf("invalid taxid %q", raw)
	}
	return taxid, nil
}
