package tedapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stnslvsvnv/ted-scraper/internal/core/domain"
)

func TestSearchNotices_SendsExpectedPayload(t *testing.T) {
	var captured map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total": 0, "notices": []}`))
	}))
	defer server.Close()

	adapter := NewTedFetcherAdapter(Config{
		BaseURL: server.URL,
		Fields:  []string{"publication-number", "notice-title"},
	})
	adapter.now = func() time.Time { return fixedNow }

	_, err := adapter.SearchNotices(context.Background(), domain.SearchFilters{Countries: []string{"DEU"}}, 3, 25)
	require.NoError(t, err)

	require.Equal(t, "(buyer-country = DEU)", captured["query"])
	require.Equal(t, float64(3), captured["page"])
	require.Equal(t, float64(25), captured["limit"])
	require.Equal(t, []interface{}{"publication-number", "notice-title"}, captured["fields"])

	// пустые scope и apiKey не отправляются вовсе
	_, hasScope := captured["scope"]
	require.False(t, hasScope)
	_, hasKey := captured["apiKey"]
	require.False(t, hasKey)
}

func TestSearchNotices_ClampsPageAndLimit(t *testing.T) {
	var captured map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(`{"total": 0, "notices": []}`))
	}))
	defer server.Close()

	adapter := NewTedFetcherAdapter(Config{BaseURL: server.URL})

	_, err := adapter.SearchNotices(context.Background(), domain.SearchFilters{}, 0, 1000)
	require.NoError(t, err)

	require.Equal(t, float64(1), captured["page"])
	require.Equal(t, float64(100), captured["limit"])
}

func TestSearchNotices_SendsScopeAndAPIKeyWhenConfigured(t *testing.T) {
	var captured map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(`{"total": 0, "notices": []}`))
	}))
	defer server.Close()

	adapter := NewTedFetcherAdapter(Config{
		BaseURL: server.URL,
		APIKey:  "secret-key",
		Scope:   "ACTIVE",
	})

	_, err := adapter.SearchNotices(context.Background(), domain.SearchFilters{}, 1, 10)
	require.NoError(t, err)

	require.Equal(t, "ACTIVE", captured["scope"])
	require.Equal(t, "secret-key", captured["apiKey"])
}

func TestSearchNotices_MapsSuccessfulResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"total": 1,
			"notices": [{
				"publication-number": "777-2025",
				"notice-title": {"eng": ["Bridge construction"]},
				"buyer-country": "ESP"
			}]
		}`))
	}))
	defer server.Close()

	adapter := NewTedFetcherAdapter(Config{BaseURL: server.URL})

	result, err := adapter.SearchNotices(context.Background(), domain.SearchFilters{}, 1, 10)
	require.NoError(t, err)
	require.Equal(t, 1, result.Total)
	require.Len(t, result.Notices, 1)
	require.Equal(t, "777-2025", result.Notices[0].PublicationNumber)
	require.Equal(t, "Bridge construction", result.Notices[0].Title)
	require.Equal(t, "ESP", result.Notices[0].Country)
}

func TestSearchNotices_NonSuccessStatusIsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "unknown field: cpv-code"}`))
	}))
	defer server.Close()

	adapter := NewTedFetcherAdapter(Config{BaseURL: server.URL})

	_, err := adapter.SearchNotices(context.Background(), domain.SearchFilters{}, 1, 10)
	require.Error(t, err)

	var upstreamErr *domain.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	require.Equal(t, http.StatusBadRequest, upstreamErr.StatusCode)
	require.Contains(t, upstreamErr.Detail, "unknown field")
}

func TestSearchNotices_TransportFailureIsConnectivityError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // сервер уже закрыт - соединение будет отвергнуто

	adapter := NewTedFetcherAdapter(Config{BaseURL: server.URL})

	_, err := adapter.SearchNotices(context.Background(), domain.SearchFilters{}, 1, 10)
	require.Error(t, err)

	var connErr *domain.ConnectivityError
	require.ErrorAs(t, err, &connErr)

	var upstreamErr *domain.UpstreamError
	require.False(t, errors.As(err, &upstreamErr))
}

func TestSearchNotices_TimeoutIsConnectivityError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"total": 0, "notices": []}`))
	}))
	defer server.Close()

	adapter := NewTedFetcherAdapter(Config{
		BaseURL: server.URL,
		Timeout: 20 * time.Millisecond,
	})

	_, err := adapter.SearchNotices(context.Background(), domain.SearchFilters{}, 1, 10)
	require.Error(t, err)

	var connErr *domain.ConnectivityError
	require.ErrorAs(t, err, &connErr)
}

func TestSearchNotices_MalformedBodyIsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>gateway error</html>`))
	}))
	defer server.Close()

	adapter := NewTedFetcherAdapter(Config{BaseURL: server.URL})

	_, err := adapter.SearchNotices(context.Background(), domain.SearchFilters{}, 1, 10)
	require.Error(t, err)

	var upstreamErr *domain.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
}

func TestGetNotice_ReturnsFirstMatch(t *testing.T) {
	var captured map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte(`{"total": 1, "notices": [{"publication-number": "555-2025"}]}`))
	}))
	defer server.Close()

	adapter := NewTedFetcherAdapter(Config{BaseURL: server.URL})

	notice, err := adapter.GetNotice(context.Background(), "555-2025")
	require.NoError(t, err)
	require.NotNil(t, notice)
	require.Equal(t, "555-2025", notice.PublicationNumber)
	require.Equal(t, "(publication-number = 555-2025)", captured["query"])
}

func TestGetNotice_NoMatchReturnsNil(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total": 0, "notices": []}`))
	}))
	defer server.Close()

	adapter := NewTedFetcherAdapter(Config{BaseURL: server.URL})

	notice, err := adapter.GetNotice(context.Background(), "000-0000")
	require.NoError(t, err)
	require.Nil(t, notice)
}
