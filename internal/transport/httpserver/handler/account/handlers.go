package account

import (
	"diet-profile-go/internal/domain/profile"
	userdomain "diet-profile-go/internal/domain/user"
	"diet-profile-go/pkg/logger"
)

type Handlers struct {
	Users         *userdomain.Service
	Profiles      *profile.Aggregator
	publicBaseURL string
	log           logger.Logger
}

func New(users *userdomain.Service, profiles *profile.Aggregator, publicBaseURL string, log logger.Logger) *Handlers {
	return &Handlers{
		Users:         users,
		Profiles:      profiles,
		publicBaseURL: publicBaseURL,
		log:           log,
	}
}
