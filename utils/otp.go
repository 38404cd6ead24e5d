package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateOTP returns the 6-digit code mailed during signup and password
// reset.
func GenerateOTP() string {
	const digits = "0123456789"
	b := make([]byte, 6)
	rand.Read(b)
	otp := make([]byte, len(b))
	for i, v := range b {
		otp[i] = digits[int(v)%10]
	}
	return string(otp)
}

// GenerateOAuthState returns the random state value that ties a Google
// login round-trip together; the caller's return URL is stored in Redis
// under it.
func GenerateOAuthState() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}
