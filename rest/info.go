package rest

import (
	"net/http"

	"github.com/Wagner-UFRRJ/agrimensura/survey"
	"github.com/gorilla/mux"
)

type InfoHandler struct {
	meta survey.Metadata
}

func NewInfoHandler(meta survey.Metadata) *InfoHandler {
	return &InfoHandler{meta: meta}
}

func (i *InfoHandler) InitRoutes(r *mux.Router) {
	r.HandleFunc("/info", i.getInfo).Methods("GET")
}

func (i *InfoHandler) getInfo(w http.ResponseWriter, r *http.Request) {
	Respond(r).WithJSON(w, http.StatusOK, i.meta)
}
