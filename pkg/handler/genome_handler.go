package handler

import (
	"net/http"

	"github.com/rnacentral/rnacentral-go/pkg/handler/request"
	"github.com/rnacentral/rnacentral-go/pkg/model"
	"go.uber.org/zap"
)

// Ensembl-like overlap endpoint consumed by the genome browser.
// GET /api/v1/overlap/region/{species}/{region}
func (dbctx *DBContext) GenomeAnnotationsHandler(w http.ResponseWriter, r *http.Request) {

	region, err := request.ParseRegion(r.PathValue("species"), r.PathValue("region"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	requestLog(r).Debug("Overlap",
		zap.String("species", region.Species),
		zap.String("chromosome", region.Chromosome),
		zap.Int("start", region.Start),
		zap.Int("end", region.End))

	features, err := model.GenomeAnnotations(r.Context(), dbctx.Store,
		region.Species, region.Chromosome, region.Start, region.End)
	if err != nil {
		requestLog(r).Error("Genome annotations failed", zap.String("region", r.PathValue("region")), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to load genome annotations")
		return
	}

	writeJSON(w, http.StatusOK, features)
}
