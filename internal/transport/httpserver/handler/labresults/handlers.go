package labresults

import (
	"diet-profile-go/internal/domain/labresult"
	"diet-profile-go/pkg/logger"
)

type Handlers struct {
	LabResults *labresult.Service
	log        logger.Logger
}

func New(labResults *labresult.Service, log logger.Logger) *Handlers {
	return &Handlers{
		LabResults: labResults,
		log:        log,
	}
}
