package main

import (
	"log"
	"net/http"

	"set-game/internal/config"
	"set-game/internal/game"
	"set-game/internal/server"
)

func main() {
	log.Println("Starting Set server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gameCfg := game.DefaultConfig()
	gameCfg.StartingCards = cfg.StartingCards

	hub := server.NewHub(gameCfg, cfg.SendBuffer)
	go hub.Run()

	mux := http.NewServeMux()
	server.HandleRoutes(mux, hub)
	mux.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))

	log.Printf("Listening on %s", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, mux))
}
