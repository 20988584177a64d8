package services

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	uniqueIDPrefix   = "MTC-"
	uniqueIDLength   = 10
	uniqueIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	// insert attempts before a run of unique ID collisions is reported
	maxUniqueIDAttempts = 5
)

// NewUniqueID mints a public identifier of the form MTC-<10 alphanumerics>.
func NewUniqueID() (string, error) {
	id, err := gonanoid.Generate(uniqueIDAlphabet, uniqueIDLength)
	if err != nil {
		return "", err
	}
	return uniqueIDPrefix + id, nil
}
