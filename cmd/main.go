package main

import (
	"net/http"
	"os"

	"fitness-backend/config"
	"fitness-backend/routes"

	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter()

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logrus.Infof("server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, c.Handler(r)); err != nil {
		logrus.Fatal(err)
	}
}
