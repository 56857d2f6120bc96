package model

import (
	"github.com/google/uuid"
)

// ensureID assigns a fresh UUID when the caller left the primary key empty.
func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}
