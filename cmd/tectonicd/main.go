// Command tectonicd serves the noise and plate generation API.
package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/terragen/tectonic/internal/api"
)

func main() {
	listen := flag.String("listen", ":5000", "HTTP listen address")
	flag.Parse()

	srv := api.NewServer()
	handler := api.LoggingMiddleware(srv.ServeMux())

	log.Printf("tectonicd %s listening on %s", api.Version, *listen)
	if err := http.ListenAndServe(*listen, handler); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
