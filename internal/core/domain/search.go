package domain

// SearchFilters - критерии поиска, которые приходят от фронтенда.
// Все поля необязательные: пустой набор фильтров тоже валиден,
// в этом случае строится широкий исторический запрос.
type SearchFilters struct {
	Text         string   // свободный текст (ищется в названии и в имени заказчика)
	Countries    []string // ISO-alpha-3 коды стран заказчика
	CategoryCode string   // код классификации CPV
	DateFrom     string   // нижняя граница даты публикации, "YYYY-MM-DD"
	DateTo       string   // верхняя граница даты публикации, "YYYY-MM-DD"
	ActiveOnly   bool     // только объявления с ещё не истёкшим дедлайном
}

// Notice - одно нормализованное тендерное объявление.
// Все поля уже плоские строки: многоязычные словари и вложенные
// списки из ответа TED разрешаются на этапе маппинга.
type Notice struct {
	PublicationNumber string
	PublicationDate   string
	Deadline          string
	Title             string
	Buyer             string
	Country           string
	City              string
}

// SearchResult - итог одного поискового запроса.
// Total - сколько всего объявлений подходит под запрос по данным TED,
// независимо от того, сколько вернулось на текущей странице.
type SearchResult struct {
	Total   int
	Notices []Notice
}

// HealthStatus - результат проверки доступности внешнего API.
type HealthStatus struct {
	Status          string
	TedAPIAvailable bool
}
