package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rnacentral/rnacentral-go/pkg/model"
	"go.uber.org/zap"
)

// GET /api/v1/rna/{upi}?format=fasta
func (dbctx *DBContext) RnaFastaHandler(w http.ResponseWriter, r *http.Request) {

	upi := r.PathValue("upi")
	fasta, err := model.Fasta(r.Context(), dbctx.Store, dbctx.Description, upi)

	switch {
	case errors.Is(err, model.ErrNotFound):
		http.Error(w, "sequence "+upi+" not found", http.StatusNotFound)
	case err != nil:
		requestLog(r).Error("Fasta failed", zap.String("upi", upi), zap.Error(err))
		http.Error(w, "failed to render sequence", http.StatusInternalServerError)
	default:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, fasta)
	}
}
