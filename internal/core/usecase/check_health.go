package usecase

import (
	"context"

	"github.com/stnslvsvnv/ted-scraper/internal/contextkeys"
	"github.com/stnslvsvnv/ted-scraper/internal/core/domain"
	"github.com/stnslvsvnv/ted-scraper/internal/core/port"
)

type CheckHealthUseCase struct {
	searcher port.NoticeSearcherPort
}

func NewCheckHealthUseCase(searcher port.NoticeSearcherPort) *CheckHealthUseCase {
	return &CheckHealthUseCase{searcher: searcher}
}

// Execute проверяет доступность TED минимальным широким запросом
// (пустые фильтры, первая страница, один результат).
// Ошибку наверх не возвращает никогда: недоступность внешнего API -
// это статус "degraded", а не ошибка самого сервиса.
func (uc *CheckHealthUseCase) Execute(ctx context.Context) domain.HealthStatus {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{"use_case": "CheckHealth"})

	_, err := uc.searcher.SearchNotices(ctx, domain.SearchFilters{}, 1, 1)
	if err != nil {
		logger.Warn("TED API is not available", port.Fields{"reason": err.Error()})
		return domain.HealthStatus{Status: "degraded", TedAPIAvailable: false}
	}

	logger.Debug("TED API is available", nil)
	return domain.HealthStatus{Status: "healthy", TedAPIAvailable: true}
}
