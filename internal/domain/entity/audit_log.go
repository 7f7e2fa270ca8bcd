package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AuditLog records a moderation-relevant action
type AuditLog struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Action    string     `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata  JSON       `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// JSON type for GORM JSONB support
type JSON map[string]interface{}

// Value returns json value, implement driver.Valuer interface
func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan scan value into Jsonb, implements sql.Scanner interface
func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := map[string]interface{}{}
	err := json.Unmarshal(bytes, &result)
	*j = JSON(result)
	return err
}

// Common audit actions
const (
	AuditActionUserRegister           = "user.register"
	AuditActionUserLogin              = "user.login"
	AuditActionCustomerUpdate         = "customer.update"
	AuditActionCustomerSoftDelete     = "customer.soft_delete"
	AuditActionCustomerHardDelete     = "customer.hard_delete"
	AuditActionProfessionalUpdate     = "professional.update"
	AuditActionProfessionalSoftDelete = "professional.soft_delete"
	AuditActionProfessionalHardDelete = "professional.hard_delete"
	AuditActionAdminSoftDelete        = "admin.soft_delete"
	AuditActionAdminHardDelete        = "admin.hard_delete"
	AuditActionMeetingCreate          = "meeting.create"
	AuditActionMeetingAccept          = "meeting.accept"
	AuditActionMeetingReject          = "meeting.reject"
	AuditActionMeetingCancel          = "meeting.cancel"
	AuditActionMeetingFinalize        = "meeting.finalize"
	AuditActionMeetingSoftDelete      = "meeting.soft_delete"
	AuditActionMeetingHardDelete      = "meeting.hard_delete"
	AuditActionSlotAdd                = "professional.slot_add"
	AuditActionSlotRemove             = "professional.slot_remove"
	AuditActionSlotMove               = "professional.slot_move"
	AuditActionSlotClear              = "professional.slot_clear"
)
