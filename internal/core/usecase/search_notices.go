package usecase

import (
	"context"
	"fmt"

	"github.com/stnslvsvnv/ted-scraper/internal/contextkeys"
	"github.com/stnslvsvnv/ted-scraper/internal/core/domain"
	"github.com/stnslvsvnv/ted-scraper/internal/core/port"
)

type SearchNoticesUseCase struct {
	searcher port.NoticeSearcherPort
}

func NewSearchNoticesUseCase(searcher port.NoticeSearcherPort) *SearchNoticesUseCase {
	return &SearchNoticesUseCase{searcher: searcher}
}

// Execute выполняет один поиск: фильтры -> экспертный запрос -> TED -> нормализованный результат.
// Ошибки внешнего API не маскируются под пустой результат, а возвращаются наверх.
func (uc *SearchNoticesUseCase) Execute(ctx context.Context, filters domain.SearchFilters, page, limit int) (*domain.SearchResult, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "SearchNotices"})

	result, err := uc.searcher.SearchNotices(ctx, filters, page, limit)
	if err != nil {
		logger.Error("Notice search failed", err, nil)
		return nil, fmt.Errorf("search notices: %w", err)
	}

	logger.Info("Notice search completed", port.Fields{
		"total":    result.Total,
		"returned": len(result.Notices),
	})
	return result, nil
}
