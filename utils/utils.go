package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// HashAdminPassword computes the deterministic hex digest stored for
// admin credentials. Comparison is exact-match on the digest.
func HashAdminPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// GenerateSessionToken returns an opaque 64-char hex bearer token
func GenerateSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// GenerateCertificateNumber builds a certificate id like
// CERT-20260127-A1B2C3D4: date-stamped prefix plus a random suffix.
// Collisions are negligible at expected volume; the column's unique
// index backstops them.
func GenerateCertificateNumber(t time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("CERT-%s-%s", t.Format("20060102"), suffix)
}
