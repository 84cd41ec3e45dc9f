package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Wagner-UFRRJ/agrimensura/consts"
	"github.com/Wagner-UFRRJ/agrimensura/domain/geo"
	"github.com/Wagner-UFRRJ/agrimensura/export"
	"github.com/Wagner-UFRRJ/agrimensura/instrument"
	"github.com/Wagner-UFRRJ/agrimensura/logging"
	"github.com/Wagner-UFRRJ/agrimensura/survey"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

var measurements = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "survey_measurements_total",
	Help: "Number of distance measurements performed, by instrument kind",
}, []string{"instrument"})

func init() {
	prometheus.MustRegister(measurements)
}

// ProjectHandler serves survey projects from a store. The export
// formats offered are injected at construction, which allows feature
// gating of individual formats.
type ProjectHandler struct {
	store   survey.Store
	formats map[string]export.Exporter
}

func NewProjectHandler(store survey.Store, formats map[string]export.Exporter) *ProjectHandler {
	return &ProjectHandler{
		store:   store,
		formats: formats,
	}
}

func (h *ProjectHandler) InitRoutes(r *mux.Router) {
	r.HandleFunc("/projects", h.createProject).Methods("POST")
	r.HandleFunc("/projects", h.listProjects).Methods("GET")
	r.HandleFunc("/projects/{id}", h.getProject).Methods("GET")
	r.HandleFunc("/projects/{id}/points", h.addPoint).Methods("POST")
	r.HandleFunc("/projects/{id}/points", h.listPoints).Methods("GET")
	r.HandleFunc("/projects/{id}/export", h.exportProject).Methods("GET")
	r.HandleFunc("/projects/{id}/traverse", h.traverse).Methods("GET")
}

type projectView struct {
	ID      survey.ProjectID `json:"id"`
	Name    string           `json:"name"`
	Created time.Time        `json:"created"`
	Points  int              `json:"points"`
}

func viewOf(p *survey.Project) projectView {
	return projectView{
		ID:      p.ID,
		Name:    p.Name,
		Created: p.Created,
		Points:  p.Len(),
	}
}

func (h *ProjectHandler) createProject(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Name == "" {
		Respond(r).WithJSON(w, http.StatusBadRequest, map[string]string{"error": "missing project name"})
		return
	}
	p := survey.NewProject(body.Name)
	if err := h.store.Add(p); err != nil {
		Respond(r).WithError(w, http.StatusInternalServerError, err)
		return
	}
	logging.From(r.Context()).Info("Project created",
		zap.String("project", string(p.ID)),
		zap.String("name", p.Name))
	Respond(r).WithJSON(w, http.StatusCreated, viewOf(p))
}

func (h *ProjectHandler) listProjects(w http.ResponseWriter, r *http.Request) {
	order := consts.Ascending
	if r.URL.Query().Get("order") == "desc" {
		order = consts.Descending
	}
	projects, err := h.store.FindAll(order)
	if err != nil {
		Respond(r).WithError(w, http.StatusInternalServerError, err)
		return
	}
	views := make([]projectView, len(projects))
	for i, p := range projects {
		views[i] = viewOf(p)
	}
	Respond(r).WithJSON(w, http.StatusOK, views)
}

func (h *ProjectHandler) getProject(w http.ResponseWriter, r *http.Request) {
	p, ok := h.projectOr404(w, r)
	if !ok {
		return
	}
	Respond(r).WithJSON(w, http.StatusOK, viewOf(p))
}

type pointRequest struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Altitude  float64  `json:"altitude"`
	Precision *float64 `json:"precision,omitempty"`
}

func (h *ProjectHandler) addPoint(w http.ResponseWriter, r *http.Request) {
	p, ok := h.projectOr404(w, r)
	if !ok {
		return
	}
	var body pointRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		Respond(r).WithError(w, http.StatusBadRequest, err)
		return
	}
	point, err := geo.NewPoint(body.Latitude, body.Longitude, body.Altitude)
	if err != nil {
		Respond(r).WithError(w, http.StatusBadRequest, err)
		return
	}
	stored := p.AddPoint(point)
	if err := h.store.Update(p); err != nil {
		Respond(r).WithError(w, http.StatusInternalServerError, err)
		return
	}
	var described geo.Describer = stored
	if body.Precision != nil {
		described = geo.MeasuredPoint{Point: stored, Precision: *body.Precision}
	}
	Respond(r).WithJSON(w, http.StatusCreated, struct {
		Point       geo.Point `json:"point"`
		Description string    `json:"description"`
	}{
		Point:       stored,
		Description: described.Describe(),
	})
}

func (h *ProjectHandler) listPoints(w http.ResponseWriter, r *http.Request) {
	p, ok := h.projectOr404(w, r)
	if !ok {
		return
	}
	Respond(r).WithJSON(w, http.StatusOK, p.Points())
}

func (h *ProjectHandler) exportProject(w http.ResponseWriter, r *http.Request) {
	p, ok := h.projectOr404(w, r)
	if !ok {
		return
	}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}
	exporter, found := h.formats[format]
	if !found {
		Respond(r).WithError(w, http.StatusBadRequest, export.UnknownFormat(format))
		return
	}
	out, err := p.Export(exporter)
	if err != nil {
		Respond(r).WithError(w, http.StatusInternalServerError, err)
		return
	}
	respondWithText(w, exporter.Mime(), out)
}

func (h *ProjectHandler) traverse(w http.ResponseWriter, r *http.Request) {
	p, ok := h.projectOr404(w, r)
	if !ok {
		return
	}
	kind := r.URL.Query().Get("instrument")
	if kind == "" {
		kind = "gps"
	}
	inst, err := instrument.ForName(kind, r.URL.Query().Get("model"))
	if err != nil {
		Respond(r).WithError(w, http.StatusBadRequest, err)
		return
	}
	legs := p.Traverse(inst)
	measurements.WithLabelValues(kind).Add(float64(len(legs)))
	Respond(r).WithJSON(w, http.StatusOK, struct {
		Instrument string       `json:"instrument"`
		Legs       []survey.Leg `json:"legs"`
	}{
		Instrument: kind,
		Legs:       legs,
	})
}

func (h *ProjectHandler) projectOr404(w http.ResponseWriter, r *http.Request) (*survey.Project, bool) {
	id := survey.ProjectID(mux.Vars(r)["id"])
	p, err := h.store.Get(id)
	if err != nil {
		Respond(r).WithError(w, http.StatusNotFound, err)
		return nil, false
	}
	return p, true
}
