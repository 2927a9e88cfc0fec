package controllers

import (
	"errors"
	"net/http"

	json "github.com/goccy/go-json"

	"schultafel/internal/journal"
	"schultafel/internal/providers"
	"schultafel/internal/services"
)

type ApiController struct {
	logger  providers.Logger
	service services.TimetableServiceInterface
	cache   providers.CacheProviderInterface
}

func NewApiController(logger providers.Logger, service services.TimetableServiceInterface, cache providers.CacheProviderInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		cache:   cache,
	}
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		ac.writeResolveError(w, err)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

// writeResolveError maps the fetch error taxonomy onto HTTP: upstream
// trouble is a gateway problem, anything else stays a 500.
func (ac *ApiController) writeResolveError(w http.ResponseWriter, err error) {
	var tErr *journal.TransportError
	var pErr *journal.ParseError
	if errors.As(err, &tErr) || errors.As(err, &pErr) {
		ac.logger.Errorf(providers.TypeHttp, "upstream failure: %s", err)
		http.Error(w, "Bad Gateway", http.StatusBadGateway)
		return
	}
	ac.logger.Errorf(providers.TypeHttp, "resolve failure: %s", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// GetTimetable resolves and merges the timetable for ?date=YYYY-MM-DD,
// defaulting to the current display date.
func (ac *ApiController) GetTimetable(w http.ResponseWriter, r *http.Request) {
	date := ac.service.DisplayDate()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := journal.ParseDate(raw)
		if err != nil {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		date = parsed
	}

	ac.serveFromCacheOrCompute(w, "grid:"+journal.FormatDate(date), func() (any, error) {
		return ac.service.GetTimetable(r.Context(), date)
	})
}

// GetCurrent serves the last refreshed grid without touching the
// upstream. 404 until the first refresh (or snapshot restore) lands.
func (ac *ApiController) GetCurrent(w http.ResponseWriter, r *http.Request) {
	grid := ac.service.GetCurrent()
	if grid == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	gson, err := json.Marshal(grid)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}
