// Package auth implements the two credential schemes guarding the UI and
// the API. The schemes are independent: a UI credential never satisfies the
// API check and vice versa.
package auth

import "crypto/subtle"

// Credentials holds the configured secrets for both schemes. Injected at
// process start; there are no defaults.
type Credentials struct {
	UIUsername string
	UIPassword string
	APIKey     string
}

// VerifyUI checks the UI username/password pair. Both comparisons always
// run, so a missing credential behaves exactly like a wrong one.
func (c Credentials) VerifyUI(username, password string) bool {
	if c.UIUsername == "" || c.UIPassword == "" {
		return false
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.UIUsername))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(c.UIPassword))

	return userOK&passOK == 1
}

// VerifyAPIKey checks a caller-supplied key byte-for-byte against the
// configured secret.
func (c Credentials) VerifyAPIKey(key string) bool {
	if c.APIKey == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(key), []byte(c.APIKey)) == 1
}
