package tedapi

import (
	"context"
	"strconv"

	"github.com/stnslvsvnv/ted-scraper/internal/constants"
	"github.com/stnslvsvnv/ted-scraper/internal/contextkeys"
	"github.com/stnslvsvnv/ted-scraper/internal/core/domain"
	"github.com/stnslvsvnv/ted-scraper/internal/core/port"
)

// Ключи, под которыми разные версии TED v3 отдают одно и то же:
// список результатов и общее количество совпадений.
// Пробуем по порядку, берём первый присутствующий.
var (
	noticeListKeys = []string{"notices", "results"}
	totalCountKeys = []string{"total", "totalNoticeCount"}
)

// searchResponse - разобранное тело ответа TED. Схема записей не
// фиксирована, поэтому каждая запись остаётся сырой картой.
type searchResponse map[string]interface{}

// toSearchResult нормализует ответ TED в доменный результат.
// Запись, на которой маппинг падает, пропускается целиком -
// одна битая запись не роняет весь батч. Порядок записей сохраняется.
func (a *TedFetcherAdapter) toSearchResult(ctx context.Context, resp searchResponse) *domain.SearchResult {
	logger := contextkeys.LoggerFromContext(ctx)

	raw := rawNotices(resp)

	notices := make([]domain.Notice, 0, len(raw))
	for i, item := range raw {
		notice, ok := a.toNotice(item)
		if !ok {
			logger.Warn("Skipping unparsable notice record", port.Fields{"index": i})
			continue
		}
		notices = append(notices, notice)
	}

	return &domain.SearchResult{
		Total:   totalCount(resp, len(raw)),
		Notices: notices,
	}
}

// toNotice маппит одну сырую запись. ok=false означает, что при разборе
// случилась структурная паника и запись нужно пропустить.
func (a *TedFetcherAdapter) toNotice(item map[string]interface{}) (notice domain.Notice, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()

	const def = constants.DefaultPlaceholder

	notice = domain.Notice{
		PublicationNumber: a.extractText(item[constants.FieldPublicationNumber], def),
		PublicationDate:   truncateToDate(a.extractText(item[constants.FieldPublicationDate], "")),
		Deadline:          truncateToDate(a.deadlineField(item)),
		Title:             a.extractText(item[constants.FieldNoticeTitle], def),
		Buyer:             a.extractText(item[constants.FieldBuyerName], def),
		Country:           a.extractText(item[constants.FieldBuyerCountry], def),
		City:              a.extractText(item[constants.FieldBuyerCity], def),
	}
	return notice, true
}

// deadlineField пробует поля дедлайна в порядке приоритета и возвращает
// первое непустое значение.
func (a *TedFetcherAdapter) deadlineField(item map[string]interface{}) string {
	for _, field := range constants.DeadlineFieldCandidates() {
		if value := a.extractText(item[field], ""); value != "" {
			return value
		}
	}
	return ""
}

// extractText рекурсивно извлекает текст из поля произвольной формы.
// TED отдаёт одно и то же логическое поле тремя способами:
//   - плоская строка (или число);
//   - словарь язык -> значение; берём первый из приоритетных языков,
//     иначе первый попавшийся, и разрешаем его значение рекурсивно;
//   - список; берём первый элемент и разрешаем рекурсивно.
//
// Для отсутствующих/пустых значений возвращается def.
func (a *TedFetcherAdapter) extractText(value interface{}, def string) string {
	switch v := value.(type) {
	case string:
		if v == "" {
			return def
		}
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case map[string]interface{}:
		if len(v) == 0 {
			return def
		}
		for _, lang := range a.langs {
			if inner, exists := v[lang]; exists {
				return a.extractText(inner, def)
			}
		}
		// ни одного приоритетного языка - берём любой
		for _, inner := range v {
			return a.extractText(inner, def)
		}
		return def
	case []interface{}:
		if len(v) == 0 {
			return def
		}
		return a.extractText(v[0], def)
	default:
		return def
	}
}

// truncateToDate обрезает значение даты до календарной части:
// "2025-09-30+02:00" -> "2025-09-30". TED дописывает к датам смещение
// таймзоны, клиенту оно не нужно.
func truncateToDate(value string) string {
	if len(value) > 10 {
		return value[:10]
	}
	return value
}

// rawNotices достаёт список записей из ответа, пробуя ключи по порядку.
func rawNotices(resp searchResponse) []map[string]interface{} {
	for _, key := range noticeListKeys {
		list, exists := resp[key].([]interface{})
		if !exists {
			continue
		}
		items := make([]map[string]interface{}, 0, len(list))
		for _, entry := range list {
			if item, ok := entry.(map[string]interface{}); ok {
				items = append(items, item)
			}
		}
		return items
	}
	return nil
}

// totalCount достаёт общее количество совпадений, пробуя ключи по порядку.
// Если ни одного нет - считаем, что совпадений столько, сколько записей вернулось.
func totalCount(resp searchResponse, fallback int) int {
	for _, key := range totalCountKeys {
		if num, ok := resp[key].(float64); ok {
			return int(num)
		}
	}
	return fallback
}
