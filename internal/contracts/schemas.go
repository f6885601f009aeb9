package contracts

import (
	"embed"
	"encoding/json"
	"fmt"
	"log"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas
var schemasFS embed.FS

const fieldsSchemaPath = "schemas/fields/v1.json"

var fieldsSchema *jsonschema.Schema

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	file, err := schemasFS.Open(fieldsSchemaPath)
	if err != nil {
		log.Fatalf("failed to open embedded schema %s: %v", fieldsSchemaPath, err)
	}
	defer file.Close()

	if err := compiler.AddResource(fieldsSchemaPath, file); err != nil {
		log.Fatalf("failed to add schema resource %s: %v", fieldsSchemaPath, err)
	}

	fieldsSchema, err = compiler.Compile(fieldsSchemaPath)
	if err != nil {
		log.Fatalf("failed to compile schema %s: %v", fieldsSchemaPath, err)
	}
}

// fieldVocabulary - формат файла словаря полей: {"fields": ["publication-number", ...]}
type fieldVocabulary struct {
	Fields []string `json:"fields"`
}

// ParseFieldVocabulary проверяет файл словаря полей по схеме и возвращает
// список полей. Словарь допустимых полей у TED меняется со временем,
// поэтому он задаётся снаружи, а не зашивается в код; схема ловит
// хотя бы синтаксически битые имена до первого вызова API.
func ParseFieldVocabulary(body []byte) ([]string, error) {
	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, fmt.Errorf("field vocabulary is not a valid JSON: %w", err)
	}

	if err := fieldsSchema.Validate(v); err != nil {
		return nil, fmt.Errorf("field vocabulary schema validation failed: %w", err)
	}

	var vocabulary fieldVocabulary
	if err := json.Unmarshal(body, &vocabulary); err != nil {
		return nil, fmt.Errorf("failed to decode field vocabulary: %w", err)
	}

	return vocabulary.Fields, nil
}
