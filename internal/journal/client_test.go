package journal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schultafel/internal/providers"
	"schultafel/internal/structures"
	"schultafel/internal/testutil"
)

const sampleWeekJSON = `{
	"data": {
		"days": [
			{
				"id": "1234",
				"date": "2024-02-05",
				"lessons": [
					{
						"id": 1,
						"nr": 1,
						"group": {"id": 10, "local_id": "5a", "level_id": 5},
						"subject": {"id": 20, "local_id": "MA", "name": "Mathematik"},
						"status": "initial",
						"rooms": [{"id": 30, "local_id": "113"}],
						"teachers": [{"id": 40, "forename": "Max", "name": "Mustermann"}],
						"time": {"id": 50, "nr": 1, "from": "08:00", "to": "08:45"}
					}
				],
				"notes": [{"description": "- Hofpause drinnen"}]
			}
		]
	}
}`

func newTestClient(baseUrl string) FetcherInterface {
	conf := &structures.Config{}
	conf.Schule.BaseUrl = baseUrl
	conf.Schule.Token = "secret-token"
	conf.Schule.Timeout = 2 * time.Second
	return NewClient(conf, &testutil.MockLogger{}, providers.NewMetricsProvider(&structures.Config{}))
}

func TestFetchWeek_RequestShape(t *testing.T) {
	var gotPath, gotQuery, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(sampleWeekJSON))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).FetchWeek(context.Background(), date(2024, time.February, 5))

	require.NoError(t, err)
	assert.Equal(t, "/api/journal/weeks/2024-6", gotPath)
	assert.Equal(t, "include=days.lessons&interpolate=true", gotQuery)
	assert.Equal(t, "Bearer secret-token", gotAuth)
}

func TestFetchWeek_DecodesPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleWeekJSON))
	}))
	defer srv.Close()

	reply, err := newTestClient(srv.URL).FetchWeek(context.Background(), date(2024, time.February, 5))

	require.NoError(t, err)
	require.Len(t, reply.Data.Days, 1)
	day := reply.Data.Days[0]
	assert.Equal(t, "2024-02-05", day.Date)
	require.Len(t, day.Lessons, 1)
	assert.Equal(t, 5, day.Lessons[0].Group.LevelId)
	assert.Equal(t, "Mathematik", day.Lessons[0].Subject.Name)
	require.Len(t, day.Notes, 1)
}

func TestFetchWeek_NonOKStatusIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).FetchWeek(context.Background(), date(2024, time.February, 5))

	var tErr *TransportError
	require.ErrorAs(t, err, &tErr)
	assert.Equal(t, "2024-6", tErr.Week)
}

func TestFetchWeek_MalformedBodyIsParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>definitely not json</html>"))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).FetchWeek(context.Background(), date(2024, time.February, 5))

	var pErr *ParseError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, "2024-6", pErr.Week)
}

func TestFetchWeek_ConnectionRefusedIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := newTestClient(srv.URL).FetchWeek(context.Background(), date(2024, time.February, 5))

	var tErr *TransportError
	assert.ErrorAs(t, err, &tErr)
}

func TestFetchWeek_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestClient(srv.URL).FetchWeek(ctx, date(2024, time.February, 5))

	var tErr *TransportError
	assert.ErrorAs(t, err, &tErr)
}
