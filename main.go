package main

import (
	"github.com/dristi2006/expiry-date-tracker/config"
	"github.com/dristi2006/expiry-date-tracker/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
