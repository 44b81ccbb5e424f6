package route

import (
	"github.com/SeakMengs/ClubCert/internal/controller"
	"github.com/gin-gonic/gin"
)

// The path existing clients post to
func UploadPdf(r *gin.Engine, badgeController *controller.BadgeController) {
	r.POST("/upload-pdf/", badgeController.UploadPdf)
}

func V1_Badges(r *gin.RouterGroup, badgeController *controller.BadgeController) {
	v1 := r.Group("/v1/badges")
	{
		v1.POST("", badgeController.UploadPdf)
	}
}
