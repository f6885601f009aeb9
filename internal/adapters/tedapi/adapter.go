package tedapi

import (
	"net/http"
	"time"

	"github.com/stnslvsvnv/ted-scraper/internal/constants"
)

const defaultTimeout = 60 * time.Second

// Config - настройки адаптера TED.
type Config struct {
	BaseURL string        // URL эндпоинта notices/search
	APIKey  string        // опциональный ключ; без него доступ ограничен
	Scope   string        // опциональный параметр scope; пустой - не отправляется
	Fields  []string      // словарь полей для параметра fields исходящего запроса
	Timeout time.Duration // таймаут одного вызова
}

// TedFetcherAdapter отвечает за все взаимодействия с поисковым API TED:
// строит экспертный запрос, выполняет вызов и нормализует ответ.
type TedFetcherAdapter struct {
	baseURL    string
	apiKey     string
	scope      string
	fields     []string
	langs      []string
	httpClient *http.Client

	// now подменяется в тестах, чтобы запрос по флагу active_only был детерминированным
	now func() time.Time
}

// NewTedFetcherAdapter - конструктор
func NewTedFetcherAdapter(cfg Config) *TedFetcherAdapter {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	fields := cfg.Fields
	if len(fields) == 0 {
		fields = constants.DefaultSearchFields()
	}

	return &TedFetcherAdapter{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		scope:      cfg.Scope,
		fields:     fields,
		langs:      constants.PreferredLanguages(),
		httpClient: &http.Client{Timeout: timeout},
		now:        time.Now,
	}
}
