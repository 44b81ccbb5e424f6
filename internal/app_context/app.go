package appcontext

import (
	"github.com/SeakMengs/ClubCert/internal/config"
	"github.com/SeakMengs/ClubCert/internal/service"
	"go.uber.org/zap"
)

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// BadgeService runs the badge pipeline: compose, fetch logo, upload.
	BadgeService service.BadgeService
}
