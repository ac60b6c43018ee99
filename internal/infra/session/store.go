// Package session keeps booking wizards and revoked token ids between
// requests, in Redis or in process memory.
package session

import "time"

// WizardTTL is how long an untouched booking wizard survives.
const WizardTTL = 30 * time.Minute

const (
	wizardPrefix  = "booking:wizard:"
	revokedPrefix = "auth:revoked:"
)
