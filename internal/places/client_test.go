package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextSearchMapsResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/textsearch/json", r.URL.Path)
		assert.Equal(t, "gyms in Houston, TX", r.URL.Query().Get("query"))
		assert.Equal(t, "key", r.URL.Query().Get("key"))

		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [
				{
					"name": "Iron Works Gym",
					"types": ["gym", "health", "point_of_interest"],
					"geometry": {"location": {"lat": 29.76, "lng": -95.36}}
				}
			]
		}`))
	}))
	defer srv.Close()

	client, err := NewClient(Config{APIKey: "key", BaseURL: srv.URL})
	require.NoError(t, err)

	results, err := client.TextSearch(context.Background(), "gyms in Houston, TX")
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, "Iron Works Gym", results[0].Name)
	assert.Equal(t, []string{"gym", "health", "point_of_interest"}, results[0].Tags)
	assert.Equal(t, 29.76, results[0].Lat)
}

func TestTextSearchZeroResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))
	defer srv.Close()

	client, err := NewClient(Config{APIKey: "key", BaseURL: srv.URL})
	require.NoError(t, err)

	results, err := client.TextSearch(context.Background(), "anything")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestTextSearchDeniedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status": "REQUEST_DENIED"}`))
	}))
	defer srv.Close()

	client, err := NewClient(Config{APIKey: "key", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.TextSearch(context.Background(), "anything")
	assert.Error(t, err)
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)
}
