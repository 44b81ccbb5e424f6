package controller

import (
	"net/http"
	"path/filepath"

	"github.com/SeakMengs/ClubCert/internal/util"
	"github.com/gin-gonic/gin"
)

type IndexController struct {
	*baseController
}

func (ic IndexController) Index(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the " + util.GetAppName() + " API!",
	})
}

func (ic IndexController) Favicon(ctx *gin.Context) {
	ctx.File(filepath.Join(ic.app.Config.StaticDir, "favicon.ico"))
}

func (ic IndexController) Healthz(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
