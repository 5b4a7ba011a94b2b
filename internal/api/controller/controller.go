package controller

import (
	"github.com/maplecrest/canscore/internal/service/draws"
	"github.com/maplecrest/canscore/internal/service/ingest"
)

type Controller struct {
	drawsService  *draws.Service
	ingestService *ingest.Service
}

func NewController(drawsService *draws.Service, ingestService *ingest.Service) *Controller {
	return &Controller{drawsService: drawsService, ingestService: ingestService}
}
