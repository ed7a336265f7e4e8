package handler

// DI for all handlers and models alike.

import (
	"context"

	"github.com/rnacentral/rnacentral-go/pkg/model"
)

// Store is everything the handlers read from the database.
type Store interface {
	model.GenomeRepository
	model.SequenceRepository
	Assemblies(ctx context.Context) ([]model.Assembly, error)
}

type DBContext struct {
	Store       Store
	Description model.DescriptionConfig
}
