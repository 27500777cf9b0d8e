package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/joho/godotenv"

	"github.com/ohowland/nzeb_core/internal/pkg/webservice"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	addr := envOr("NZEB_ADDR", ":8080")
	origin := envOr("NZEB_CORS_ORIGIN", "*")

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{origin}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	r := webservice.MakeRouter()
	log.Println("Starting Server on", addr)
	if err := http.ListenAndServe(addr, cors(r)); err != nil {
		log.Fatal(err)
	}
}
