package util

import (
	"strings"

	"github.com/SeakMengs/ClubCert/internal/constant"
)

var turkishReplacer = strings.NewReplacer(
	"ş", "s", "ç", "c", "ö", "o", "ğ", "g", "ü", "u", "ı", "i",
	"Ş", "S", "Ç", "C", "Ö", "O", "Ğ", "G", "Ü", "U", "İ", "I",
)

func isFilenameRune(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r == '_' || r == '.' || r == '-'
}

// SanitizeFilename makes a storage-safe key out of a human entered label.
// Turkish letters are transliterated first, then every rune outside
// [a-zA-Z0-9_.-] becomes a single underscore and the result is lowercased.
//
// Example: "Çöğüş Kulübü" -> "cogus_kulubu"
func SanitizeFilename(name string) string {
	name = turkishReplacer.Replace(name)

	var sb strings.Builder
	sb.Grow(len(name))
	for _, r := range name {
		if isFilenameRune(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('_')
		}
	}

	return strings.ToLower(sb.String())
}

// Example output for "Test Club": "test_club.pdf"
func ToBadgeObjectName(clubName string) string {
	return SanitizeFilename(clubName) + constant.BADGE_EXTENSION
}
