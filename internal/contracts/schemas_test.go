package contracts

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFieldVocabulary_Valid(t *testing.T) {
	fields, err := ParseFieldVocabulary([]byte(`{
		"fields": ["publication-number", "notice-title", "buyer-country"]
	}`))
	require.NoError(t, err)
	require.Equal(t, []string{"publication-number", "notice-title", "buyer-country"}, fields)
}

func TestParseFieldVocabulary_NotJSON(t *testing.T) {
	_, err := ParseFieldVocabulary([]byte(`fields: [a, b]`))
	require.Error(t, err)
}

func TestParseFieldVocabulary_MissingFieldsKey(t *testing.T) {
	_, err := ParseFieldVocabulary([]byte(`{"columns": ["publication-number"]}`))
	require.Error(t, err)
}

func TestParseFieldVocabulary_EmptyListIsRejected(t *testing.T) {
	_, err := ParseFieldVocabulary([]byte(`{"fields": []}`))
	require.Error(t, err)
}

func TestParseFieldVocabulary_BadFieldNameIsRejected(t *testing.T) {
	// имена полей TED - kebab-case в нижнем регистре
	_, err := ParseFieldVocabulary([]byte(`{"fields": ["Publication_Number"]}`))
	require.Error(t, err)
}

func TestParseFieldVocabulary_DuplicatesAreRejected(t *testing.T) {
	_, err := ParseFieldVocabulary([]byte(`{"fields": ["notice-title", "notice-title"]}`))
	require.Error(t, err)
}
