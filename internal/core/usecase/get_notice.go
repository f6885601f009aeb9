package usecase

import (
	"context"
	"fmt"

	"github.com/stnslvsvnv/ted-scraper/internal/contextkeys"
	"github.com/stnslvsvnv/ted-scraper/internal/core/domain"
	"github.com/stnslvsvnv/ted-scraper/internal/core/port"
)

type GetNoticeUseCase struct {
	searcher port.NoticeSearcherPort
}

func NewGetNoticeUseCase(searcher port.NoticeSearcherPort) *GetNoticeUseCase {
	return &GetNoticeUseCase{searcher: searcher}
}

// Execute ищет одно объявление по publication number.
func (uc *GetNoticeUseCase) Execute(ctx context.Context, publicationNumber string) (*domain.Notice, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":           "GetNotice",
		"publication_number": publicationNumber,
	})

	notice, err := uc.searcher.GetNotice(ctx, publicationNumber)
	if err != nil {
		logger.Error("Notice lookup failed", err, nil)
		return nil, fmt.Errorf("get notice %s: %w", publicationNumber, err)
	}
	if notice == nil {
		logger.Warn("Notice not found", nil)
		return nil, domain.ErrNoticeNotFound
	}

	logger.Info("Notice lookup completed", nil)
	return notice, nil
}
