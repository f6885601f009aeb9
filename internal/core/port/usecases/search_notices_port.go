package usecases_port

import (
	"context"

	"github.com/stnslvsvnv/ted-scraper/internal/core/domain"
)

type SearchNoticesUseCase interface {
	Execute(ctx context.Context, filters domain.SearchFilters, page, limit int) (*domain.SearchResult, error)
}
