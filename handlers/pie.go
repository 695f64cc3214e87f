package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	log "github.com/sirupsen/logrus"

	"anacharts/chart"
	"anacharts/database"
	"anacharts/surface"
)

const (
	chartWidth  = "900px"
	chartHeight = "500px"
)

type PieResponse struct {
	Option chart.RenderOption `json:"option"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// PieHandler serves pie chart options built from posted settings or from
// a named dataset.
type PieHandler struct {
	// DB is nil when no database is configured.
	DB database.Querier
}

func (h *PieHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /charts/pie", h.HandleSettings)
	mux.HandleFunc("GET /charts/pie/{dataset}", h.HandleDataset)
}

// HandleSettings builds a pie from the JSON settings in the request body.
func (h *PieHandler) HandleSettings(w http.ResponseWriter, r *http.Request) {
	var settings chart.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.draw(w, r, settings)
}

// HandleDataset loads a registered dataset and draws it.
// Query parameters ring and title override the dataset defaults.
func (h *PieHandler) HandleDataset(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("dataset")
	ds, ok := database.FindDataset(name)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown dataset "+strconv.Quote(name))
		return
	}
	if h.DB == nil {
		writeError(w, http.StatusServiceUnavailable, "database connection not initialized")
		return
	}

	settings := chart.Settings{
		Title:  ds.Title,
		KeyMap: &ds.KeyMap,
	}
	q := r.URL.Query()
	if q.Has("title") {
		settings.Title = q.Get("title")
	}
	if v := q.Get("ring"); v != "" {
		ring, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "ring must be a boolean")
			return
		}
		settings.Ring = ring
	}

	records, err := database.LoadRecords(r.Context(), h.DB, ds.Query)
	if err != nil {
		log.WithError(err).WithField("dataset", ds.Name).Error("loading dataset failed")
		writeError(w, http.StatusInternalServerError, "error loading dataset")
		return
	}
	settings.Data = records
	h.draw(w, r, settings)
}

func (h *PieHandler) draw(w http.ResponseWriter, r *http.Request, settings chart.Settings) {
	s := surface.NewECharts(chartWidth, chartHeight)
	if _, err := chart.Init(s, settings.Data, settings); err != nil {
		var verr *chart.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Error())
			return
		}
		log.WithError(err).Error("building pie chart failed")
		writeError(w, http.StatusInternalServerError, "error building chart")
		return
	}

	if r.URL.Query().Get("format") == "html" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := s.Render(w); err != nil {
			log.WithError(err).Error("rendering pie chart failed")
		}
		return
	}

	opt, _ := s.Option()
	writeJSON(w, http.StatusOK, PieResponse{Option: opt})
}

// writeJSON encodes v before touching the response so an encoding failure
// still reaches the client as a 500.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.WithError(err).Error("failed to encode response")
		buf.Reset()
		buf.WriteString(`{"error":"failed to encode response"}` + "\n")
		status = http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.WithError(err).Warn("failed to write response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
