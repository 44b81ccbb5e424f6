package route

import (
	"net/http"

	appcontext "github.com/SeakMengs/ClubCert/internal/app_context"
	"github.com/SeakMengs/ClubCert/internal/controller"
	"github.com/SeakMengs/ClubCert/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires every route of the api. metricsHandler is served on /metrics.
func NewRouter(app *appcontext.Application, m *middleware.Middleware, metricsHandler http.Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), m.RequestID, m.Logger, m.Metrics)

	// docs: https://github.com/gin-contrib/cors?tab=readme-ov-file#using-defaultconfig-as-start-point
	corsConfig := cors.DefaultConfig()
	if len(app.Config.Cors.AllowOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = app.Config.Cors.AllowOrigins
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "X-Requested-With", "Accept", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	r.Use(cors.New(corsConfig))

	_controller := controller.NewController(app)

	Index(r, _controller.Index, app.Config.StaticDir)
	r.GET("/metrics", gin.WrapH(metricsHandler))

	UploadPdf(r, _controller.Badge)

	rApi := r.Group("/api")
	V1_Badges(rApi, _controller.Badge)

	return r
}
