package port

import (
	"context"

	"sp-provision/internal/core/domain"
)

// ProvisionUseCase is the primary port: one end-to-end provisioning run.
// Mock implementations can be generated from this interface for testing.
type ProvisionUseCase interface {
	// Provision authenticates, then creates the campaign, the ad group, the
	// keywords and the product ads described by plan, in that order. The
	// first failure aborts the run; entities created before it are left in
	// place.
	Provision(ctx context.Context, plan domain.Plan) (*domain.ProvisionResult, error)
}
