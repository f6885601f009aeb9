package rest

import (
	"github.com/stnslvsvnv/ted-scraper/internal/core/domain"
)

// SearchFiltersDTO - фильтры поиска из тела POST-запроса.
// country - одна строка с кодами через запятую ("DEU,FRA"), как шлёт фронтенд.
type SearchFiltersDTO struct {
	Text         string `json:"text"`
	Country      string `json:"country"`
	CategoryCode string `json:"category_code"`
	DateFrom     string `json:"date_from"`
	DateTo       string `json:"date_to"`
	ActiveOnly   bool   `json:"active_only"`
}

type SearchRequestDTO struct {
	Filters *SearchFiltersDTO `json:"filters"`
	Page    int               `json:"page"`
	Limit   int               `json:"limit"`
}

type NoticeDTO struct {
	PublicationNumber string `json:"publication_number"`
	PublicationDate   string `json:"publication_date"`
	Deadline          string `json:"deadline"`
	Title             string `json:"title"`
	Buyer             string `json:"buyer"`
	Country           string `json:"country"`
	City              string `json:"city"`
}

type SearchResponseDTO struct {
	Total   int         `json:"total"`
	Notices []NoticeDTO `json:"notices"`
}

type HealthResponseDTO struct {
	Status          string `json:"status"`
	TedAPIAvailable bool   `json:"ted_api_available"`
}

// toDomainFilters маппит DTO в доменные фильтры: строка стран
// разбивается по запятым, пустые элементы отбрасываются.
func (dto *SearchFiltersDTO) toDomainFilters() domain.SearchFilters {
	if dto == nil {
		return domain.SearchFilters{}
	}
	return domain.SearchFilters{
		Text:         dto.Text,
		Countries:    splitCountryList(dto.Country),
		CategoryCode: dto.CategoryCode,
		DateFrom:     dto.DateFrom,
		DateTo:       dto.DateTo,
		ActiveOnly:   dto.ActiveOnly,
	}
}

func toNoticeDTO(n domain.Notice) NoticeDTO {
	return NoticeDTO{
		PublicationNumber: n.PublicationNumber,
		PublicationDate:   n.PublicationDate,
		Deadline:          n.Deadline,
		Title:             n.Title,
		Buyer:             n.Buyer,
		Country:           n.Country,
		City:              n.City,
	}
}

func toSearchResponseDTO(result *domain.SearchResult) SearchResponseDTO {
	notices := make([]NoticeDTO, len(result.Notices))
	for i, n := range result.Notices {
		notices[i] = toNoticeDTO(n)
	}
	return SearchResponseDTO{Total: result.Total, Notices: notices}
}
