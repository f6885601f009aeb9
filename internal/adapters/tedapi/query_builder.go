package tedapi

import (
	"fmt"
	"strings"
	"time"

	"github.com/stnslvsvnv/ted-scraper/internal/constants"
	"github.com/stnslvsvnv/ted-scraper/internal/core/domain"
)

// BuildExpertQuery детерминированно превращает фильтры в одну строку
// на экспертном языке запросов TED. Каждый заполненный фильтр даёт один
// клауз в скобках, клаузы соединяются через AND в фиксированном порядке:
// текст, страны, категория, дата-от, дата-до, active_only.
//
// now нужен только для клауза active_only; функция чистая и не делает I/O.
func BuildExpertQuery(f domain.SearchFilters, now time.Time) string {
	var terms []string

	if text := strings.TrimSpace(f.Text); text != "" {
		terms = append(terms, textTerm(text))
	}

	if term, ok := countriesTerm(f.Countries); ok {
		terms = append(terms, term)
	}

	if code := strings.TrimSpace(f.CategoryCode); code != "" {
		terms = append(terms, fmt.Sprintf("(%s = %s)", constants.FieldClassificationCPV, code))
	}

	if from := compactDate(f.DateFrom); from != "" {
		terms = append(terms, fmt.Sprintf("(%s >= %s)", constants.FieldPublicationDate, from))
	}

	if to := compactDate(f.DateTo); to != "" {
		terms = append(terms, fmt.Sprintf("(%s <= %s)", constants.FieldPublicationDate, to))
	}

	if f.ActiveOnly {
		today := now.Format("20060102")
		terms = append(terms, fmt.Sprintf("(%s >= %s)", constants.FieldDeadlineTender, today))
	}

	// Ни одного фильтра - отправляем широкий исторический запрос.
	// Пустой или wildcard-запрос TED обрабатывает непредсказуемо.
	if len(terms) == 0 {
		return historicalBroadQuery()
	}

	return strings.Join(terms, " AND ")
}

// BuildLookupQuery строит запрос для поиска одного объявления по его номеру.
func BuildLookupQuery(publicationNumber string) string {
	return fmt.Sprintf("(%s = %s)", constants.FieldPublicationNumber, strings.TrimSpace(publicationNumber))
}

func historicalBroadQuery() string {
	return fmt.Sprintf("(%s >= %s)", constants.FieldPublicationDate, constants.EarliestPublicationDate)
}

// textTerm - полнотекстовый поиск по названию и имени заказчика.
// Фразы из нескольких слов обязательно в кавычках, одиночные токены - без:
// грамматика TED по-разному трактует кавычки, и только такое
// разделение даёт стабильные результаты.
func textTerm(text string) string {
	value := text
	if strings.ContainsAny(text, " \t") {
		value = fmt.Sprintf("%q", text)
	}
	return fmt.Sprintf("(%s ~ %s OR %s ~ %s)",
		constants.FieldNoticeTitle, value, constants.FieldBuyerName, value)
}

// countriesTerm строит клауз по странам заказчика: по одному равенству
// на код, несколько кодов объединяются через OR внутри общей скобки.
// Пустые элементы отбрасываются, коды приводятся к верхнему регистру.
func countriesTerm(countries []string) (string, bool) {
	var codes []string
	for _, c := range countries {
		if code := strings.ToUpper(strings.TrimSpace(c)); code != "" {
			codes = append(codes, code)
		}
	}
	if len(codes) == 0 {
		return "", false
	}

	clauses := make([]string, len(codes))
	for i, code := range codes {
		clauses[i] = fmt.Sprintf("(%s = %s)", constants.FieldBuyerCountry, code)
	}
	if len(clauses) == 1 {
		return clauses[0], true
	}
	return "(" + strings.Join(clauses, " OR ") + ")", true
}

// compactDate убирает разделители из ISO-даты: "2024-01-01" -> "20240101".
func compactDate(date string) string {
	return strings.ReplaceAll(strings.TrimSpace(date), "-", "")
}
