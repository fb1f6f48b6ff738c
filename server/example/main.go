package main

import (
	"log"

	"github.com/kianooshaz/static-server/server"
)

func main() {
	addr := "127.0.0.1:9000"
	s := server.Server{
		Addr:    addr,
		Handler: server.FileServer{Root: "www"},
	}
	log.Printf("Starting web server: http://%s", addr)
	if err := s.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
