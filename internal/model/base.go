package model

import (
	"time"
)

// BaseModel handles the surrogate ID and the audit trail of who touched a row last
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Audit User Tracking (usernames)
	CreatedBy string `gorm:"type:varchar(150)" json:"created_by"`
	UpdatedBy string `gorm:"type:varchar(150)" json:"updated_by"`
}

// Stamp sets the audit columns for a write performed by actor
func (base *BaseModel) Stamp(actor Identity) {
	if base.CreatedBy == "" {
		base.CreatedBy = actor.Username
	}
	base.UpdatedBy = actor.Username
}
