package usecases_port

import (
	"context"

	"github.com/stnslvsvnv/ted-scraper/internal/core/domain"
)

type GetNoticeUseCase interface {
	Execute(ctx context.Context, publicationNumber string) (*domain.Notice, error)
}
