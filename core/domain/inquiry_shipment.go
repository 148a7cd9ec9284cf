package domain

import (
	"time"

	"github.com/google/uuid"
)

// ShipmentStatus represents the transit state of a shipment.
type ShipmentStatus string

const (
	ShipmentBooked    ShipmentStatus = "booked"
	ShipmentInTransit ShipmentStatus = "in_transit"
	ShipmentArrived   ShipmentStatus = "arrived"
	ShipmentDelivered ShipmentStatus = "delivered"
)

// Shipment is a logistics shipment inquiries can be linked to.
type Shipment struct {
	ID          uuid.UUID
	CompanyID   uuid.UUID
	Reference   string // booking / container / waybill number
	Origin      string
	Destination string
	Status      ShipmentStatus
	ETA         *time.Time
	InquiryIDs  []uuid.UUID // linked inquiries
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
