// Package models holds the persisted entity types of the inventory server.
package models

import "time"

// System is one registered internal application and its security posture.
type System struct {
	ID                 string
	Name               string
	Description        string
	Owner              string
	MFAEnabled         bool
	SSOEnabled         bool
	PasswordPolicy     bool
	CentralizedLogging bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
