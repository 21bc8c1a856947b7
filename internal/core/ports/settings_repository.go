package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
)

// SettingsRepository reads and writes the runtime settings document.
type SettingsRepository interface {
	// RuntimeWeights returns the stored ranking weights, or
	// kernel.DefaultRuntimeWeights when no settings document exists.
	RuntimeWeights(ctx context.Context) (kernel.RuntimeWeights, error)

	SaveRuntimeWeights(ctx context.Context, weights kernel.RuntimeWeights) error
}
