package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"treadscope/internal/age"
	"treadscope/internal/analysis"
	"treadscope/internal/imaging"
	"treadscope/internal/narrative"
	"treadscope/internal/timetravel"
	"treadscope/internal/wear"
	"treadscope/internal/weather"
	"treadscope/pkg/pixel"
)

// createParams are the usage parameters accepted alongside the photo.
type createParams struct {
	MilesPerYear int    `validate:"gte=0"`
	ZIP          string `validate:"omitempty,len=5,numeric"`
}

// handleCreateAnalysis ingests a photo plus usage parameters and returns
// the full analysis bundle.
//
// POST /v1/analyses  (multipart: photo, milesPerYear, zip)
func (s *Server) handleCreateAnalysis(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		s.writeError(w, http.StatusBadRequest, "malformed multipart request")
		return
	}

	milesPerYear, err := strconv.Atoi(r.FormValue("milesPerYear"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "milesPerYear must be an integer")
		return
	}
	params := createParams{MilesPerYear: milesPerYear, ZIP: r.FormValue("zip")}
	if err := s.validate.Struct(params); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid parameters: "+err.Error())
		return
	}

	climate, err := wear.ClimateFromZIP(params.ZIP)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	file, _, err := r.FormFile("photo")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "photo file is required")
		return
	}
	defer file.Close()

	buf, err := imaging.Decode(file, s.cfg.MaxImageDim)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "photo could not be decoded")
		return
	}

	res, err := s.analyzer.Analyze(buf, wear.Profile{
		MilesPerYear: params.MilesPerYear,
		Climate:      climate,
	})
	if err != nil {
		if errors.Is(err, pixel.ErrInvalidImage) {
			s.writeError(w, http.StatusBadRequest, "photo has no usable pixels")
			return
		}
		s.log.Errorw("analysis failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	s.store.Put(res)
	s.log.Infow("analysis created",
		"id", res.ID,
		"bucket", res.Estimate.Bucket.String(),
		"confidence", res.Estimate.Confidence,
		"acceptable", res.Quality.Acceptable,
	)
	s.writeJSON(w, http.StatusCreated, toAnalysisDTO(res))
}

// handleGetAnalysis returns a stored bundle.
//
// GET /v1/analyses/{id}
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	res, ok := s.lookup(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, toAnalysisDTO(res))
}

// handleState derives the time-travel state at t.
//
// GET /v1/analyses/{id}/state?t=&weather=&skipRotations=&aggressive=
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	res, ok := s.lookup(w, r)
	if !ok {
		return
	}
	t, tog, err := parseStateQuery(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	st := timetravel.Derive(res.Prediction, t, tog, s.now())
	s.writeJSON(w, http.StatusOK, toStateDTO(st))
}

// handleFrame renders the aged photo at t. Frames are rendered anew on
// every call; the rendering boundary owns any caching decision and the
// contract says it must not cache.
//
// GET /v1/analyses/{id}/frame?t=&unevenWear=&seed=
func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	res, ok := s.lookup(w, r)
	if !ok {
		return
	}
	q := r.URL.Query()

	t, err := parseFloat(q.Get("t"), 0)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "t must be a number")
		return
	}
	unevenWear, err := parseBool(q.Get("unevenWear"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "unevenWear must be a boolean")
		return
	}
	var seed int64
	if raw := q.Get("seed"); raw != "" {
		seed, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "seed must be an integer")
			return
		}
	}

	frame := age.Render(res.Photo, age.Options{T: t, UnevenWear: unevenWear, Seed: seed})

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "no-store")
	if err := imaging.EncodeJPEG(w, frame, s.cfg.JPEGQuality); err != nil {
		s.log.Errorw("encoding frame", "error", err)
	}
}

// handleNarrative renders the templated explanation at t.
//
// GET /v1/analyses/{id}/narrative?t=&weather=&skipRotations=&aggressive=
func (s *Server) handleNarrative(w http.ResponseWriter, r *http.Request) {
	res, ok := s.lookup(w, r)
	if !ok {
		return
	}
	t, tog, err := parseStateQuery(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	st := timetravel.Derive(res.Prediction, t, tog, s.now())
	text, err := narrative.Explain(res, st)
	if err != nil {
		s.log.Errorw("rendering narrative", "error", err)
		s.writeError(w, http.StatusInternalServerError, "narrative failed")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}

// lookup resolves the {id} path parameter against the store, writing the
// error response itself on failure.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*analysis.Result, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid analysis id")
		return nil, false
	}
	res, err := s.store.Get(id)
	if err != nil {
		s.writeError(w, http.StatusNotFound, "analysis not found")
		return nil, false
	}
	return res, true
}

// parseStateQuery extracts (t, toggles) from a state-style query string.
// Unknown weather modes are rejected here, at the boundary, per the
// UnknownEnum policy; a missing mode falls back to dry.
func parseStateQuery(r *http.Request) (float64, timetravel.Toggles, error) {
	q := r.URL.Query()

	t, err := parseFloat(q.Get("t"), 0)
	if err != nil {
		return 0, timetravel.Toggles{}, errors.New("t must be a number")
	}
	mode, err := weather.ParseMode(q.Get("weather"))
	if err != nil {
		return 0, timetravel.Toggles{}, err
	}
	skip, err := parseBool(q.Get("skipRotations"))
	if err != nil {
		return 0, timetravel.Toggles{}, errors.New("skipRotations must be a boolean")
	}
	aggressive, err := parseBool(q.Get("aggressive"))
	if err != nil {
		return 0, timetravel.Toggles{}, errors.New("aggressive must be a boolean")
	}

	return t, timetravel.Toggles{
		WeatherMode:       mode,
		SkipRotations:     skip,
		AggressiveDriving: aggressive,
	}, nil
}

func parseFloat(raw string, def float64) (float64, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.ParseFloat(raw, 64)
}

func parseBool(raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}

// iso formats a date for the wire. The core never serializes dates; this
// boundary owns the ISO-8601 representation.
func iso(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
