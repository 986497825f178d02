package main

import (
	"net/http"
	"os"

	"github.com/companieshouse/chs.go/log"
	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/config"
	"github.com/companieshouse/shop-paypal.api.ch.gov.uk/handlers"
	"github.com/gorilla/mux"
)

func main() {
	log.Namespace = "shop-paypal.api.ch.gov.uk"

	cfg, err := config.Get()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}

	router := mux.NewRouter()
	handlers.Register(router, *cfg)

	log.Info("Starting shop-paypal.api.ch.gov.uk service")
	err = http.ListenAndServe(cfg.BindAddr, router)

	if err != nil {
		log.Error(err)
	}
	log.Trace("Exiting shop-paypal.api.ch.gov.uk service")
}
