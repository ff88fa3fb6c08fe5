package jobsearch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchJobsMapsResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/api/jobs/us/search/1", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "software engineer", q.Get("what"))
		assert.Equal(t, "Houston, TX", q.Get("where"))
		assert.Equal(t, "id", q.Get("app_id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"results": [
				{
					"title": "Software Engineer",
					"company": {"display_name": "Acme"},
					"location": {"display_name": "Houston"},
					"description": "Build things in Go",
					"salary_min": 90000,
					"salary_max": 120000
				},
				{
					"title": "Data Analyst",
					"company": {"display_name": "MarketLens"},
					"location": {"display_name": "Houston"}
				}
			]
		}`))
	}))
	defer srv.Close()

	client, err := NewClient(Config{AppID: "id", AppKey: "key", BaseURL: srv.URL})
	require.NoError(t, err)

	jobs, err := client.SearchJobs(context.Background(), "software engineer", SearchParams{Location: "Houston, TX"})
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	assert.Equal(t, "Software Engineer", jobs[0].Title)
	assert.Equal(t, "Acme", jobs[0].Company)
	assert.Equal(t, float64(90000), jobs[0].SalaryMin)
	assert.Zero(t, jobs[1].SalaryMin)
}

func TestSearchJobsLimitsResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"results":[{"title":"a"},{"title":"b"},{"title":"c"}]}`))
	}))
	defer srv.Close()

	client, err := NewClient(Config{AppID: "id", AppKey: "key", BaseURL: srv.URL})
	require.NoError(t, err)

	jobs, err := client.SearchJobs(context.Background(), "q", SearchParams{MaxResults: 2})
	require.NoError(t, err)
	assert.Len(t, jobs, 2)
}

func TestSearchJobsErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	}))
	defer srv.Close()

	client, err := NewClient(Config{AppID: "id", AppKey: "key", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = client.SearchJobs(context.Background(), "q", SearchParams{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestNewClientRequiresCredentials(t *testing.T) {
	_, err := NewClient(Config{AppID: "id"})
	assert.Error(t, err)
	_, err = NewClient(Config{AppKey: "key"})
	assert.Error(t, err)
}

func TestSearchJobsRequiresQuery(t *testing.T) {
	client, err := NewClient(Config{AppID: "id", AppKey: "key"})
	require.NoError(t, err)
	_, err = client.SearchJobs(context.Background(), "", SearchParams{})
	assert.Error(t, err)
}
