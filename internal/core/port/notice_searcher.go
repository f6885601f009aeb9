package port

import (
	"context"

	"github.com/stnslvsvnv/ted-scraper/internal/core/domain"
)

// NoticeSearcherPort - контракт исходящего адаптера к поисковому API TED.
// Реализация сама строит экспертный запрос из фильтров и нормализует ответ.
type NoticeSearcherPort interface {
	// SearchNotices выполняет один поисковый запрос.
	// page и limit могут приходить любыми - адаптер приводит их
	// к диапазону, который принимает TED.
	SearchNotices(ctx context.Context, filters domain.SearchFilters, page, limit int) (*domain.SearchResult, error)

	// GetNotice ищет одно объявление по publication number.
	// Возвращает nil, nil если объявление не найдено.
	GetNotice(ctx context.Context, publicationNumber string) (*domain.Notice, error)
}
