// Package audit provides audit stamp value types embedded by domain records.
package audit

import "time"

// Created records who created a record and when.
// Embedded by composition in domain entities that need creation stamps.
type Created struct {
	CreatedBy string
	CreatedAt time.Time
}

// Updated records the last modification of a record.
// UpdatedAt is nil for records that were never modified.
type Updated struct {
	UpdatedBy string
	UpdatedAt *time.Time
}

// NewCreated returns a creation stamp for the given actor at the current UTC time.
func NewCreated(actor string) Created {
	return Created{
		CreatedBy: actor,
		CreatedAt: time.Now().UTC(),
	}
}

// NewUpdated returns a modification stamp for the given actor at the current UTC time.
func NewUpdated(actor string) Updated {
	now := time.Now().UTC()
	return Updated{
		UpdatedBy: actor,
		UpdatedAt: &now,
	}
}
