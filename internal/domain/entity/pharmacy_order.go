package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// PharmacyOrderStatus represents the fulfillment status of a pharmacy order
type PharmacyOrderStatus string

const (
	PharmacyOrderPending   PharmacyOrderStatus = "pending"
	PharmacyOrderPreparing PharmacyOrderStatus = "preparing"
	PharmacyOrderReady     PharmacyOrderStatus = "ready"
	PharmacyOrderDelivered PharmacyOrderStatus = "delivered"
	PharmacyOrderCancelled PharmacyOrderStatus = "cancelled"
)

func (s PharmacyOrderStatus) IsValid() bool {
	switch s {
	case PharmacyOrderPending, PharmacyOrderPreparing, PharmacyOrderReady, PharmacyOrderDelivered, PharmacyOrderCancelled:
		return true
	}
	return false
}

// MedicationItem is one entry of the denormalized medications snapshot kept
// on a pharmacy order. The snapshot is immutable after creation.
type MedicationItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
}

// MedicationSnapshot is stored as a JSONB column.
type MedicationSnapshot []MedicationItem

func (m MedicationSnapshot) Value() (driver.Value, error) {
	return json.Marshal(m)
}

func (m *MedicationSnapshot) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for medication snapshot")
	}
	return json.Unmarshal(data, m)
}

// TotalQuantity sums the quantities in the snapshot.
func (m MedicationSnapshot) TotalQuantity() int {
	total := 0
	for _, item := range m {
		total += item.Quantity
	}
	return total
}

// PharmacyOrder is the fulfillment ticket auto-derived from a prescription,
// created in the same transaction. Only status, notes and the delivery
// timestamp mutate afterwards.
type PharmacyOrder struct {
	ID             int                 `gorm:"primaryKey;autoIncrement;column:order_id" json:"order_id"`
	PrescriptionID int                 `gorm:"not null;uniqueIndex" json:"prescription_id"`
	ClientID       int                 `gorm:"not null;index" json:"client_id"`
	Status         PharmacyOrderStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Medications    MedicationSnapshot  `gorm:"type:jsonb;not null" json:"medications"`
	TotalItems     int                 `gorm:"not null" json:"total_items"`
	Notes          string              `gorm:"type:text" json:"notes"`
	DeliveredAt    *time.Time          `json:"delivered_at"`
	CreatedAt      time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time           `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PharmacyOrder) TableName() string {
	return "pharmacy_orders"
}

// ApplyStatus updates the order status and notes. The delivery timestamp is
// set on the first transition into delivered and never changes afterwards.
func (o *PharmacyOrder) ApplyStatus(status PharmacyOrderStatus, notes string) {
	o.Status = status
	if notes != "" {
		o.Notes = notes
	}
	if status == PharmacyOrderDelivered && o.DeliveredAt == nil {
		now := time.Now()
		o.DeliveredAt = &now
	}
}
