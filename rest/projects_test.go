package rest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Wagner-UFRRJ/agrimensura/consts"
	"github.com/Wagner-UFRRJ/agrimensura/domain/geo"
	"github.com/Wagner-UFRRJ/agrimensura/export"
	"github.com/Wagner-UFRRJ/agrimensura/survey"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(store survey.Store) *mux.Router {
	router := mux.NewRouter()
	h := NewProjectHandler(store, map[string]export.Exporter{
		"csv":  export.CSV{},
		"json": export.JSON{},
	})
	h.InitRoutes(router)
	return router
}

func executeRequest(router *mux.Router, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestCreateProject(t *testing.T) {
	router := newTestRouter(newTestStore())
	req, _ := http.NewRequest("POST", "/projects", bytes.NewBufferString(`{"name":"campus"}`))
	response := executeRequest(router, req)

	require.Equal(t, http.StatusCreated, response.Code)
	var view struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &view))
	assert.NotEmpty(t, view.ID)
	assert.Equal(t, "campus", view.Name)
}

func TestCreateProjectWithoutName(t *testing.T) {
	router := newTestRouter(newTestStore())
	req, _ := http.NewRequest("POST", "/projects", bytes.NewBufferString(`{}`))
	response := executeRequest(router, req)
	assert.Equal(t, http.StatusBadRequest, response.Code)
}

func TestGetUnknownProject(t *testing.T) {
	router := newTestRouter(newTestStore())
	req, _ := http.NewRequest("GET", "/projects/missing", nil)
	response := executeRequest(router, req)
	assert.Equal(t, http.StatusNotFound, response.Code)
}

func TestAddPoint(t *testing.T) {
	store := newTestStore()
	p := survey.NewProject("campus")
	require.NoError(t, store.Add(p))
	router := newTestRouter(store)

	req, _ := http.NewRequest("POST", "/projects/"+string(p.ID)+"/points",
		bytes.NewBufferString(`{"latitude":10.5,"longitude":20.25,"altitude":5}`))
	response := executeRequest(router, req)

	require.Equal(t, http.StatusCreated, response.Code)
	var body struct {
		Description string `json:"description"`
	}
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &body))
	assert.Equal(t, "Lat: 10.5, Lon: 20.25, Alt: 5 m", body.Description)

	stored, err := store.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Len())
}

func TestAddMeasuredPoint(t *testing.T) {
	store := newTestStore()
	p := survey.NewProject("campus")
	require.NoError(t, store.Add(p))
	router := newTestRouter(store)

	req, _ := http.NewRequest("POST", "/projects/"+string(p.ID)+"/points",
		bytes.NewBufferString(`{"latitude":10.5,"longitude":20.25,"altitude":5,"precision":0.02}`))
	response := executeRequest(router, req)

	require.Equal(t, http.StatusCreated, response.Code)
	var body struct {
		Description string `json:"description"`
	}
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &body))
	assert.Equal(t, "Lat: 10.5, Lon: 20.25, Alt: 5 m (±0.02 m)", body.Description)
}

func TestAddInvalidPoint(t *testing.T) {
	store := newTestStore()
	p := survey.NewProject("campus")
	require.NoError(t, store.Add(p))
	router := newTestRouter(store)

	req, _ := http.NewRequest("POST", "/projects/"+string(p.ID)+"/points",
		bytes.NewBufferString(`{"latitude":100,"longitude":0,"altitude":0}`))
	response := executeRequest(router, req)

	assert.Equal(t, http.StatusBadRequest, response.Code)
	stored, err := store.Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Len(), "Rejected point must not be stored")
}

func TestExportCSVIsDefault(t *testing.T) {
	store := newTestStore()
	p := survey.NewProject("campus")
	p.AddPoint(geo.MustNewPoint(10.5, 20.25, 5))
	require.NoError(t, store.Add(p))
	router := newTestRouter(store)

	req, _ := http.NewRequest("GET", "/projects/"+string(p.ID)+"/export", nil)
	response := executeRequest(router, req)

	require.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, "text/csv", response.Header().Get("Content-Type"))
	assert.Equal(t, "Latitude,Longitude,Altitude\n10.5,20.25,5\n", response.Body.String())
}

func TestExportUnknownFormat(t *testing.T) {
	store := newTestStore()
	p := survey.NewProject("campus")
	require.NoError(t, store.Add(p))
	router := newTestRouter(store)

	req, _ := http.NewRequest("GET", "/projects/"+string(p.ID)+"/export?format=svg", nil)
	response := executeRequest(router, req)
	assert.Equal(t, http.StatusBadRequest, response.Code, "Formats not offered by the handler are rejected")
}

func TestTraverse(t *testing.T) {
	store := newTestStore()
	p := survey.NewProject("campus")
	p.AddPoint(geo.MustNewPoint(0, 0, 0))
	p.AddPoint(geo.MustNewPoint(0, 0, 10))
	require.NoError(t, store.Add(p))
	router := newTestRouter(store)

	req, _ := http.NewRequest("GET", "/projects/"+string(p.ID)+"/traverse?instrument=totalstation", nil)
	response := executeRequest(router, req)

	require.Equal(t, http.StatusOK, response.Code)
	var body struct {
		Instrument string       `json:"instrument"`
		Legs       []survey.Leg `json:"legs"`
	}
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &body))
	assert.Equal(t, "totalstation", body.Instrument)
	require.Len(t, body.Legs, 1)
	assert.Equal(t, 10.0, body.Legs[0].Distance)
	require.NotNil(t, body.Legs[0].Azimuth)
}

func TestTraverseUnknownInstrument(t *testing.T) {
	store := newTestStore()
	p := survey.NewProject("campus")
	require.NoError(t, store.Add(p))
	router := newTestRouter(store)

	req, _ := http.NewRequest("GET", "/projects/"+string(p.ID)+"/traverse?instrument=theodolite", nil)
	response := executeRequest(router, req)
	assert.Equal(t, http.StatusBadRequest, response.Code)
}

func TestGetInfo(t *testing.T) {
	router := mux.NewRouter()
	NewInfoHandler(survey.DefaultMetadata()).InitRoutes(router)
	req, _ := http.NewRequest("GET", "/info", nil)
	response := executeRequest(router, req)

	require.Equal(t, http.StatusOK, response.Code)
	var meta survey.Metadata
	require.NoError(t, json.Unmarshal(response.Body.Bytes(), &meta))
	assert.Equal(t, survey.DefaultMetadata(), meta)
}

// testStore is an in-memory survey.Store for handler tests
type testStore struct {
	projects map[survey.ProjectID]*survey.Project
	order    []survey.ProjectID
}

func newTestStore() *testStore {
	return &testStore{projects: make(map[survey.ProjectID]*survey.Project)}
}

func (s *testStore) Add(p *survey.Project) error {
	if _, exists := s.projects[p.ID]; exists {
		return survey.ProjectAlreadyExists(p.ID)
	}
	s.projects[p.ID] = p
	s.order = append(s.order, p.ID)
	return nil
}

func (s *testStore) Update(p *survey.Project) error {
	if _, exists := s.projects[p.ID]; !exists {
		return survey.NotFound(p.ID)
	}
	s.projects[p.ID] = p
	return nil
}

func (s *testStore) Get(id survey.ProjectID) (*survey.Project, error) {
	p, exists := s.projects[id]
	if !exists {
		return nil, survey.NotFound(id)
	}
	return p, nil
}

func (s *testStore) FindAll(order consts.SortOrder) ([]*survey.Project, error) {
	found := make([]*survey.Project, 0, len(s.order))
	for _, id := range s.order {
		found = append(found, s.projects[id])
	}
	if order == consts.Descending {
		for i, j := 0, len(found)-1; i < j; i, j = i+1, j-1 {
			found[i], found[j] = found[j], found[i]
		}
	}
	return found, nil
}
