package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Confirmation codes are keyed hashes over (user id, code salt, issue
// time). Rotating the salt invalidates every outstanding code for that
// user, which is how a code becomes single-use: the salt rotates when a
// token is issued.

const codeDigestLen = 32 // hex chars kept from the HMAC digest

// MakeConfirmationCode issues a code of the form "<unix>.<digest>".
func MakeConfirmationCode(secret string, userID int64, salt uuid.UUID, issued time.Time) string {
	ts := issued.Unix()
	return fmt.Sprintf("%d.%s", ts, codeDigest(secret, userID, salt, ts))
}

// CheckConfirmationCode verifies a code against the user's current salt
// and the expiry window.
func CheckConfirmationCode(secret string, userID int64, salt uuid.UUID, code string, maxAge time.Duration, now time.Time) bool {
	tsStr, digest, ok := strings.Cut(code, ".")
	if !ok {
		return false
	}

	ts, err := strconv.ParseInt(tsStr, 10, 64)
	if err != nil {
		return false
	}

	issued := time.Unix(ts, 0)
	if issued.After(now) || now.Sub(issued) > maxAge {
		return false
	}

	expected := codeDigest(secret, userID, salt, ts)
	return hmac.Equal([]byte(digest), []byte(expected))
}

func codeDigest(secret string, userID int64, salt uuid.UUID, ts int64) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d:%s:%d", userID, salt.String(), ts)
	return hex.EncodeToString(mac.Sum(nil))[:codeDigestLen]
}
