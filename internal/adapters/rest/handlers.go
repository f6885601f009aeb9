package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/stnslvsvnv/ted-scraper/internal/contextkeys"
	"github.com/stnslvsvnv/ted-scraper/internal/core/domain"
	"github.com/stnslvsvnv/ted-scraper/internal/core/port"
	usecases_port "github.com/stnslvsvnv/ted-scraper/internal/core/port/usecases"
)

type SearchHandlers struct {
	searchNoticesUC usecases_port.SearchNoticesUseCase
	getNoticeUC     usecases_port.GetNoticeUseCase
	checkHealthUC   usecases_port.CheckHealthUseCase
}

// NewSearchHandlers - конструктор для наших обработчиков.
func NewSearchHandlers(searchNoticesUC usecases_port.SearchNoticesUseCase,
	getNoticeUC usecases_port.GetNoticeUseCase,
	checkHealthUC usecases_port.CheckHealthUseCase) *SearchHandlers {
	return &SearchHandlers{
		searchNoticesUC: searchNoticesUC,
		getNoticeUC:     getNoticeUC,
		checkHealthUC:   checkHealthUC,
	}
}

// HandleSearch - обработчик для POST /api/v1/search
func (h *SearchHandlers) HandleSearch(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleSearch"})

	var reqDTO SearchRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		if err == io.EOF {
			logger.Error("Failed to decode request body", err, nil)
			WriteJSONError(w, http.StatusBadRequest, "Request body is empty")
			return
		}
		WriteJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if msg, ok := validateFilterDates(reqDTO.Filters); !ok {
		WriteJSONError(w, http.StatusBadRequest, msg)
		return
	}

	filters := reqDTO.Filters.toDomainFilters()
	searchLogger := logger.WithFields(port.Fields{
		"page":      reqDTO.Page,
		"limit":     reqDTO.Limit,
		"countries": strings.Join(filters.Countries, ", "),
	})
	searchLogger.Info("Received search request", nil)

	result, err := h.searchNoticesUC.Execute(r.Context(), filters, reqDTO.Page, reqDTO.Limit)
	if err != nil {
		writeUpstreamFailure(w, searchLogger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toSearchResponseDTO(result))
}

// HandleGetNotice - обработчик для GET /api/v1/notices/{publicationNumber}
func (h *SearchHandlers) HandleGetNotice(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "HandleGetNotice"})

	publicationNumber := chi.URLParam(r, "publicationNumber")
	if publicationNumber == "" {
		WriteJSONError(w, http.StatusBadRequest, "Publication number is required")
		return
	}

	noticeLogger := logger.WithFields(port.Fields{"publication_number": publicationNumber})
	noticeLogger.Info("Received notice lookup request", nil)

	notice, err := h.getNoticeUC.Execute(r.Context(), publicationNumber)
	if err != nil {
		if errors.Is(err, domain.ErrNoticeNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Notice not found")
			return
		}
		writeUpstreamFailure(w, noticeLogger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, toNoticeDTO(*notice))
}

// HandleHealth - обработчик для GET /api/v1/health.
// Всегда отвечает 200: недоступность TED - это "degraded", а не ошибка.
func (h *SearchHandlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	status := h.checkHealthUC.Execute(r.Context())
	RespondWithJSON(w, http.StatusOK, HealthResponseDTO{
		Status:          status.Status,
		TedAPIAvailable: status.TedAPIAvailable,
	})
}

// writeUpstreamFailure маппит таксономию ошибок внешнего вызова на HTTP-ответы.
// Ошибка не превращается в пустой успешный результат: фронтенд должен
// отличать "ничего не найдено" от "поиск не удался".
func writeUpstreamFailure(w http.ResponseWriter, logger port.LoggerPort, err error) {
	var upstreamErr *domain.UpstreamError
	if errors.As(err, &upstreamErr) {
		logger.Error("Upstream TED error", err, port.Fields{"upstream_status": upstreamErr.StatusCode})
		RespondWithJSON(w, http.StatusBadGateway, map[string]interface{}{
			"error":           fmt.Sprintf("TED API error: %s", upstreamErr.Detail),
			"upstream_status": upstreamErr.StatusCode,
		})
		return
	}

	var connErr *domain.ConnectivityError
	if errors.As(err, &connErr) {
		logger.Error("TED connectivity error", err, nil)
		WriteJSONError(w, http.StatusGatewayTimeout, "TED API is unreachable")
		return
	}

	logger.Error("Unexpected search failure", err, nil)
	WriteJSONError(w, http.StatusInternalServerError, "Search failed")
}

// validateFilterDates проверяет, что границы дат - календарные ISO-даты.
func validateFilterDates(filters *SearchFiltersDTO) (string, bool) {
	if filters == nil {
		return "", true
	}
	for _, date := range []string{filters.DateFrom, filters.DateTo} {
		if date == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return fmt.Sprintf("Invalid date %q, expected YYYY-MM-DD", date), false
		}
	}
	return "", true
}

// splitCountryList разбирает строку вида "DEU,FRA, ita" в список кодов,
// отбрасывая пустые элементы.
func splitCountryList(raw string) []string {
	var codes []string
	for _, part := range strings.Split(raw, ",") {
		if code := strings.TrimSpace(part); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}
