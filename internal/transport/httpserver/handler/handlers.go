package handler

import (
	"diet-profile-go/internal/transport/httpserver/handler/account"
	"diet-profile-go/internal/transport/httpserver/handler/common"
	"diet-profile-go/internal/transport/httpserver/handler/labresults"
	"diet-profile-go/internal/transport/httpserver/handler/preferences"
)

type Handlers struct {
	Common      *common.Handlers
	Account     *account.Handlers
	Preferences *preferences.Handlers
	LabResults  *labresults.Handlers
}

func New(common *common.Handlers, account *account.Handlers, preferences *preferences.Handlers, labResults *labresults.Handlers) *Handlers {
	return &Handlers{
		Common:      common,
		Account:     account,
		Preferences: preferences,
		LabResults:  labResults,
	}
}
