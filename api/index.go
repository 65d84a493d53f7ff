package handler

import (
	"net/http"

	"guesthouse/config"
	"guesthouse/di"
	"guesthouse/shared/logger"
)

// Handler adapts the service to serverless platforms that invoke a plain
// http.HandlerFunc per request.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	service := di.InitializeService()
	service.Handler().ServeHTTP(w, r)
}
