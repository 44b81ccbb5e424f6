package constant

const (
	REQUEST_SUCCESSFUL   = "Request successful"
	REQUEST_UNSUCCESSFUL = "Request unsuccessful"
	INTERNAL_ERROR       = "Internal error"
)
