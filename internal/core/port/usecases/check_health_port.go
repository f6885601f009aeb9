package usecases_port

import (
	"context"

	"github.com/stnslvsvnv/ted-scraper/internal/core/domain"
)

type CheckHealthUseCase interface {
	Execute(ctx context.Context) domain.HealthStatus
}
