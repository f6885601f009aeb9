package constants

// Имена полей экспертного языка запросов TED v3.
// ВАЖНО: словарь допустимых полей у TED менялся со временем
// (например, cpv-code -> classification-cpv), поэтому список полей
// для выборки задаётся конфигурацией, а здесь живут только значения по умолчанию.
const (
	FieldPublicationNumber = "publication-number"
	FieldPublicationDate   = "publication-date"
	FieldNoticeTitle       = "notice-title"
	FieldBuyerName         = "buyer-name"
	FieldBuyerCountry      = "buyer-country"
	FieldBuyerCity         = "buyer-city"
	FieldClassificationCPV = "classification-cpv"

	// Кандидаты на поле дедлайна, в порядке приоритета
	FieldDeadlineTender      = "deadline-receipt-tender"
	FieldDeadlineRequest     = "deadline-receipt-request"
	FieldDeadlineExpressions = "deadline-receipt-expressions"
)

// Scope - подмножество корпуса объявлений, которое ищет TED
const (
	ScopeActive   = "ACTIVE"
	ScopeArchived = "ARCHIVED"
	ScopeAll      = "ALL"
)

// EarliestPublicationDate - самая ранняя дата публикации в корпусе TED
// (компактный числовой формат). Используется для широкого запроса,
// когда пользователь не задал ни одного фильтра: TED некорректно
// обрабатывает некоторые формы wildcard-запросов.
const EarliestPublicationDate = "19930101"

// DefaultPlaceholder подставляется вместо полей, которые
// не удалось извлечь из ответа TED.
const DefaultPlaceholder = "N/A"

const MaxPageSize = 100

// DeadlineFieldCandidates возвращает имена полей дедлайна в порядке приоритета:
// сначала срок подачи предложений, потом срок заявок на участие,
// потом срок выражения заинтересованности.
func DeadlineFieldCandidates() []string {
	return []string{FieldDeadlineTender, FieldDeadlineRequest, FieldDeadlineExpressions}
}

// PreferredLanguages возвращает приоритет языков для многоязычных полей:
// сначала английский, потом немецкий и французский.
func PreferredLanguages() []string {
	return []string{"eng", "deu", "fra"}
}

// DefaultSearchFields возвращает список полей по умолчанию для параметра
// fields исходящего запроса. Пустой список или неподдерживаемое имя поля
// роняют весь запрос на стороне TED, поэтому перед изменением список
// нужно проверять на живом API.
func DefaultSearchFields() []string {
	return []string{
		FieldPublicationNumber,
		FieldPublicationDate,
		FieldNoticeTitle,
		FieldBuyerName,
		FieldBuyerCountry,
		FieldBuyerCity,
		FieldDeadlineTender,
		FieldDeadlineRequest,
		FieldDeadlineExpressions,
	}
}
