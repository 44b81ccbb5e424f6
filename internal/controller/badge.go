package controller

import (
	"net/http"

	"github.com/SeakMengs/ClubCert/internal/constant"
	"github.com/SeakMengs/ClubCert/internal/service"
	"github.com/SeakMengs/ClubCert/internal/util"
	"github.com/gin-gonic/gin"
)

type BadgeController struct {
	*baseController
}

// Accepted as query string, urlencoded or multipart form, or json body
type uploadBadgeRequest struct {
	QRCodeURL string `form:"qr_code_url" json:"qr_code_url" binding:"required,strNotEmpty"`
	ClubName  string `form:"club_name" json:"club_name" binding:"required,strNotEmpty"`
	LogoURL   string `form:"logo_url" json:"logo_url" binding:"required,strNotEmpty"`
}

func (bc BadgeController) UploadPdf(ctx *gin.Context) {
	var body uploadBadgeRequest
	if err := ctx.ShouldBind(&body); err != nil {
		util.ResponseFailed(ctx, http.StatusUnprocessableEntity, "Invalid request", util.GenerateErrorMessages(err, "body"), nil)
		return
	}

	res, err := bc.app.BadgeService.Generate(ctx.Request.Context(), service.BadgeRequest{
		QRCodeURL: body.QRCodeURL,
		ClubName:  body.ClubName,
		LogoURL:   body.LogoURL,
	})
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, constant.INTERNAL_ERROR, util.GenerateErrorMessages(err, "detail"), nil)
		return
	}

	util.ResponseSuccess(ctx, res.FileName+" uploaded successfully", res)
}
