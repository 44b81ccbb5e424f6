package util

func GetAppName() string {
	return "ClubCert"
}
