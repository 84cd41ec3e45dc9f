package rest

import (
	"net/http"

	"github.com/Wagner-UFRRJ/agrimensura/discovery"
	"github.com/gorilla/mux"
)

type PeersAPI struct {
	peers *discovery.Controller
}

func NewPeersAPI(peers *discovery.Controller) *PeersAPI {
	return &PeersAPI{peers: peers}
}

func (p *PeersAPI) InitRoutes(router *mux.Router) {
	router.HandleFunc("/peers", p.listPeers).Methods(http.MethodGet)
}

func (p *PeersAPI) listPeers(w http.ResponseWriter, r *http.Request) {
	data := struct {
		Instances []discovery.Peer `json:"instances,omitempty"`
	}{
		Instances: p.peers.Peers(),
	}
	Respond(r).WithJSON(w, http.StatusOK, &simplePayload{Data: data})
}
