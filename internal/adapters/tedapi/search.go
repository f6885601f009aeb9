package tedapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/stnslvsvnv/ted-scraper/internal/constants"
	"github.com/stnslvsvnv/ted-scraper/internal/contextkeys"
	"github.com/stnslvsvnv/ted-scraper/internal/core/domain"
	"github.com/stnslvsvnv/ted-scraper/internal/core/port"
)

// maxErrorDetail - сколько байт тела ошибочного ответа сохраняем для диагностики
const maxErrorDetail = 1000

// searchPayload - тело исходящего POST-запроса к TED v3.
// Пустой список fields или неподдерживаемое имя поля роняют весь вызов,
// поэтому список приходит из конфигурации и не собирается на месте.
type searchPayload struct {
	Query  string   `json:"query"`
	Page   int      `json:"page"`
	Limit  int      `json:"limit"`
	Fields []string `json:"fields"`
	Scope  string   `json:"scope,omitempty"`
	APIKey string   `json:"apiKey,omitempty"`
}

// SearchNotices выполняет один поисковый вызов к TED:
// строит экспертный запрос, отправляет его и нормализует ответ.
func (a *TedFetcherAdapter) SearchNotices(ctx context.Context, filters domain.SearchFilters, page, limit int) (*domain.SearchResult, error) {
	query := BuildExpertQuery(filters, a.now())
	return a.search(ctx, query, page, limit)
}

// GetNotice ищет одно объявление по publication number.
// Возвращает nil, nil если TED ничего не нашёл.
func (a *TedFetcherAdapter) GetNotice(ctx context.Context, publicationNumber string) (*domain.Notice, error) {
	result, err := a.search(ctx, BuildLookupQuery(publicationNumber), 1, 1)
	if err != nil {
		return nil, err
	}
	if len(result.Notices) == 0 {
		return nil, nil
	}
	return &result.Notices[0], nil
}

func (a *TedFetcherAdapter) search(ctx context.Context, query string, page, limit int) (*domain.SearchResult, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "TedFetcherAdapter",
	})

	if page < 1 {
		page = 1
	}

	payload := searchPayload{
		Query:  query,
		Page:   page,
		Limit:  clamp(limit, 1, constants.MaxPageSize),
		Fields: a.fields,
		Scope:  a.scope,
		APIKey: a.apiKey,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("ted adapter: failed to marshal payload: %w", err)
	}

	logger.Debug("Sending search request to TED", port.Fields{
		"url":   a.baseURL,
		"query": query,
		"page":  payload.Page,
		"limit": payload.Limit,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("ted adapter: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		// Сюда попадают и отказ соединения, и таймаут клиента -
		// ответа от TED не было, это ошибка связности, а не ошибка API.
		logger.Error("Request to TED failed", err, nil)
		return nil, &domain.ConnectivityError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := readErrorDetail(resp.Body)
		upstreamErr := &domain.UpstreamError{StatusCode: resp.StatusCode, Detail: detail}
		logger.Error("TED returned error response", upstreamErr, port.Fields{"status_code": resp.StatusCode})
		return nil, upstreamErr
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		logger.Error("Failed to decode TED response", err, nil)
		return nil, &domain.UpstreamError{
			StatusCode: resp.StatusCode,
			Detail:     fmt.Sprintf("response body is not valid JSON: %v", err),
		}
	}

	result := a.toSearchResult(ctx, decoded)
	logger.Info("TED search completed", port.Fields{
		"total":    result.Total,
		"returned": len(result.Notices),
	})
	return result, nil
}

// readErrorDetail читает тело ошибочного ответа, усечённое до maxErrorDetail байт.
func readErrorDetail(r io.Reader) string {
	detail, _ := io.ReadAll(io.LimitReader(r, maxErrorDetail))
	return string(detail)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
