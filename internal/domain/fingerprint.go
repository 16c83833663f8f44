package domain

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// Fingerprint derives the stable cross-run identity of a listing from the
// dealer code, title, model year, and mileage text. Price, posting time,
// source site, and location are deliberately excluded: a listing whose
// price drops between runs keeps its identity, which is what makes price
// tracking possible. Two listings identical in all four inputs collapse to
// one identifier; that approximation is accepted.
func Fingerprint(dealerCode string, title, year, mileage Field) string {
	details := strings.Join([]string{dealerCode, title.String(), year.String(), mileage.String()}, "_")
	sum := md5.Sum([]byte(details))
	return hex.EncodeToString(sum[:])
}
