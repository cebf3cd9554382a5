package preferences

import (
	"diet-profile-go/internal/domain/catalog"
	prefdomain "diet-profile-go/internal/domain/preferences"
	"diet-profile-go/internal/domain/serving"
	"diet-profile-go/pkg/logger"
)

type Handlers struct {
	Catalog       *catalog.Service
	Dietary       *prefdomain.Manager
	Allergies     *prefdomain.Manager
	Servings      *serving.Service
	publicBaseURL string
	log           logger.Logger
}

func New(catalogs *catalog.Service, dietary, allergies *prefdomain.Manager, servings *serving.Service, publicBaseURL string, log logger.Logger) *Handlers {
	return &Handlers{
		Catalog:       catalogs,
		Dietary:       dietary,
		Allergies:     allergies,
		Servings:      servings,
		publicBaseURL: publicBaseURL,
		log:           log,
	}
}
