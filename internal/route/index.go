package route

import (
	"github.com/SeakMengs/ClubCert/internal/controller"
	"github.com/gin-gonic/gin"
)

func Index(r *gin.Engine, indexController *controller.IndexController, staticDir string) {
	r.GET("/", indexController.Index)
	r.GET("/favicon.ico", indexController.Favicon)
	r.GET("/healthz", indexController.Healthz)
	r.Static("/static", staticDir)
}
