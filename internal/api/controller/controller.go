package controller

import (
	"github.com/ptcharoen/agrirot/internal/service/catalog"
	"github.com/ptcharoen/agrirot/internal/service/rotation"
	"github.com/ptcharoen/agrirot/internal/service/treatment"
)

type Controller struct {
	treatmentService *treatment.Service
	rotationService  *rotation.Service
	catalogService   *catalog.Service
}

func NewController(
	treatmentService *treatment.Service,
	rotationService *rotation.Service,
	catalogService *catalog.Service,
) *Controller {
	return &Controller{
		treatmentService: treatmentService,
		rotationService:  rotationService,
		catalogService:   catalogService,
	}
}
