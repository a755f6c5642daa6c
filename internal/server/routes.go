package server

import (
	"encoding/json"
	"log"
	"net/http"
)

// HandleRoutes registers the websocket endpoint and the HTTP API on mux.
func HandleRoutes(mux *http.ServeMux, hub *Hub) {
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ServeWs(hub, w, r)
	})

	mux.HandleFunc("GET /api/sessions/{id}", func(w http.ResponseWriter, r *http.Request) {
		GetSessionHandler(hub, w, r)
	})
	log.Println("Registered route: /api/sessions/{id}")

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

// GetSessionHandler writes the current state of a live session.
func GetSessionHandler(hub *Hub, w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		http.Error(w, "Session id is required", http.StatusBadRequest)
		return
	}

	session, ok := hub.Session(id)
	if !ok {
		http.Error(w, "Session not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(session.Snapshot()); err != nil {
		log.Printf("Session %s: error encoding state: %v", id, err)
	}
}
