package constant

const (
	BADGE_CONTENT_TYPE = "application/pdf"
	BADGE_EXTENSION    = ".pdf"
)

// Pipeline stages, in execution order. Used as log fields and metric labels.
const (
	StageGenerateQR    = "generate_qr"
	StageOpenTemplate  = "open_template"
	StageFetchLogo     = "fetch_logo"
	StageLayoutLogo    = "layout_logo"
	StageLayoutQR      = "layout_qr"
	StageSerialize     = "serialize_to_temp_file"
	StageUpload        = "upload"
	StageDeleteTmpFile = "delete_temp_file"
)
