package tedapi

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stnslvsvnv/ted-scraper/internal/core/domain"
)

var fixedNow = time.Date(2025, 8, 25, 12, 0, 0, 0, time.UTC)

func TestBuildExpertQuery_EmptyFiltersFallsBackToBroadHistory(t *testing.T) {
	query := BuildExpertQuery(domain.SearchFilters{}, fixedNow)
	require.Equal(t, "(publication-date >= 19930101)", query)
}

func TestBuildExpertQuery_BlankFiltersFallBackToBroadHistory(t *testing.T) {
	filters := domain.SearchFilters{
		Text:      "   ",
		Countries: []string{"", "  "},
	}
	query := BuildExpertQuery(filters, fixedNow)
	require.Equal(t, "(publication-date >= 19930101)", query)
}

func TestBuildExpertQuery_SingleCountry(t *testing.T) {
	query := BuildExpertQuery(domain.SearchFilters{Countries: []string{"DEU"}}, fixedNow)
	require.Equal(t, "(buyer-country = DEU)", query)
}

func TestBuildExpertQuery_MultipleCountriesAreOrCombined(t *testing.T) {
	query := BuildExpertQuery(domain.SearchFilters{Countries: []string{"DEU", "FRA"}}, fixedNow)
	require.Equal(t, "((buyer-country = DEU) OR (buyer-country = FRA))", query)
}

func TestBuildExpertQuery_CountryCodesAreNormalized(t *testing.T) {
	query := BuildExpertQuery(domain.SearchFilters{Countries: []string{" deu ", "", "fra"}}, fixedNow)
	require.Equal(t, "((buyer-country = DEU) OR (buyer-country = FRA))", query)
}

func TestBuildExpertQuery_MultiTokenTextIsQuoted(t *testing.T) {
	query := BuildExpertQuery(domain.SearchFilters{Text: "road repair"}, fixedNow)
	require.Equal(t, `(notice-title ~ "road repair" OR buyer-name ~ "road repair")`, query)
}

func TestBuildExpertQuery_SingleTokenTextIsUnquoted(t *testing.T) {
	query := BuildExpertQuery(domain.SearchFilters{Text: "bridge"}, fixedNow)
	require.Equal(t, "(notice-title ~ bridge OR buyer-name ~ bridge)", query)
}

func TestBuildExpertQuery_CategoryCode(t *testing.T) {
	query := BuildExpertQuery(domain.SearchFilters{CategoryCode: "45000000"}, fixedNow)
	require.Equal(t, "(classification-cpv = 45000000)", query)
}

func TestBuildExpertQuery_DateBoundsUseCompactDates(t *testing.T) {
	filters := domain.SearchFilters{
		DateFrom: "2024-01-01",
		DateTo:   "2024-12-31",
	}
	query := BuildExpertQuery(filters, fixedNow)
	require.Equal(t, "(publication-date >= 20240101) AND (publication-date <= 20241231)", query)
}

func TestBuildExpertQuery_ActiveOnlyUsesCurrentDate(t *testing.T) {
	query := BuildExpertQuery(domain.SearchFilters{ActiveOnly: true}, fixedNow)
	require.Equal(t, "(deadline-receipt-tender >= 20250825)", query)
}

func TestBuildExpertQuery_ClauseOrderIsFixed(t *testing.T) {
	filters := domain.SearchFilters{
		Text:         "bridge",
		Countries:    []string{"ESP"},
		CategoryCode: "45000000",
		DateFrom:     "2024-01-01",
		DateTo:       "2024-06-30",
		ActiveOnly:   true,
	}
	query := BuildExpertQuery(filters, fixedNow)

	expected := "(notice-title ~ bridge OR buyer-name ~ bridge)" +
		" AND (buyer-country = ESP)" +
		" AND (classification-cpv = 45000000)" +
		" AND (publication-date >= 20240101)" +
		" AND (publication-date <= 20240630)" +
		" AND (deadline-receipt-tender >= 20250825)"
	require.Equal(t, expected, query)
}

// Построенный запрос должен разбираться обратно на те же логические
// предикаты независимо от форматирования.
func TestBuildExpertQuery_RoundTripRecoversPredicates(t *testing.T) {
	filters := domain.SearchFilters{
		Text:      "bridge",
		Countries: []string{"ESP", "ITA"},
		DateFrom:  "2024-01-01",
	}
	query := BuildExpertQuery(filters, fixedNow)

	predicates := strings.Split(query, " AND ")
	require.Len(t, predicates, 3)

	require.Contains(t, predicates[0], "notice-title ~ bridge")
	require.Contains(t, predicates[0], "buyer-name ~ bridge")

	require.Contains(t, predicates[1], "(buyer-country = ESP)")
	require.Contains(t, predicates[1], "(buyer-country = ITA)")
	require.Contains(t, predicates[1], " OR ")

	require.Contains(t, predicates[2], "publication-date >= 20240101")
}

func TestBuildLookupQuery(t *testing.T) {
	require.Equal(t, "(publication-number = 123456-2025)", BuildLookupQuery(" 123456-2025 "))
}
