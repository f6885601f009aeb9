package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/stnslvsvnv/ted-scraper/internal/contracts"
)

type RESTconfig struct {
	PORT   string
	WebDir string // каталог с index.html и static/
}

// TedAPIConfig хранит конфигурацию внешнего поискового API TED
type TedAPIConfig struct {
	URL     string
	APIKey  string // без ключа доступ ограничен, но работает
	Scope   string // пустая строка - параметр scope не отправляется
	Timeout time.Duration
	// Fields - словарь полей для параметра fields исходящего запроса.
	// nil означает "использовать встроенный список по умолчанию".
	Fields []string
}

type StdoutLogConfig struct {
	Level string
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string
}

// AppConfig хранит всю конфигурацию приложения
type AppConfig struct {
	Rest         RESTconfig
	TedAPI       TedAPIConfig
	FluentBit    FluentBitConfig
	AppName      string
	StdoutLogger StdoutLogConfig
}

// LoadConfig загружает конфигурацию из переменных окружения.
// .env файл опционален: в контейнере переменные приходят из окружения.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "ted-scraper")

	cfg.Rest.PORT = getEnvAsString("PORT", "8846")
	cfg.Rest.WebDir = getEnvAsString("WEB_DIR", "./web")

	cfg.TedAPI.URL = getEnvAsString("TED_API_URL", "https://api.ted.europa.eu/v3/notices/search")
	cfg.TedAPI.APIKey = os.Getenv("TED_API_KEY")
	cfg.TedAPI.Scope = os.Getenv("TED_SCOPE")
	cfg.TedAPI.Timeout = time.Duration(getEnvAsInt("TED_TIMEOUT_SECONDS", 60)) * time.Second

	if fieldsFile := os.Getenv("TED_FIELDS_FILE"); fieldsFile != "" {
		fields, err := loadSearchFields(fieldsFile)
		if err != nil {
			return nil, fmt.Errorf("could not load TED field vocabulary from %s: %w", fieldsFile, err)
		}
		cfg.TedAPI.Fields = fields
	}

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}

		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")

	return cfg, nil
}

// loadSearchFields читает словарь полей TED из JSON-файла и
// валидирует его по схеме до первого обращения к API.
func loadSearchFields(path string) ([]string, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return contracts.ParseFieldVocabulary(body)
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt читает переменную окружения как int или возвращает значение по умолчанию.
// Логирует ошибку, если переменная есть, но не может быть преобразована в int
func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

// getEnvAsBool читает переменную окружения как bool или возвращает значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}
