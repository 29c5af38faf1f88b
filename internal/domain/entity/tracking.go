package entity

import (
	"slices"
	"strings"
	"time"
)

// OrderStatus is the backend order status, normalized to upper case
type OrderStatus string

// Order statuses that keep a tracking session polling
const (
	OrderStatusAccepted         OrderStatus = "ACCEPTED"
	OrderStatusPharmacyAccepted OrderStatus = "PHARMACY_ACCEPTED"
	OrderStatusRiderAssigned    OrderStatus = "RIDER_ASSIGNED"
	OrderStatusOutForDelivery   OrderStatus = "OUT_FOR_DELIVERY"
	OrderStatusPaymentRequested OrderStatus = "PAYMENT_REQUESTED"
	OrderStatusPaymentPending   OrderStatus = "PAYMENT_PENDING"
	OrderStatusDelivered        OrderStatus = "DELIVERED"
)

// DefaultActiveStatuses are the active-delivery statuses used when none are configured
var DefaultActiveStatuses = []OrderStatus{
	OrderStatusAccepted,
	OrderStatusPharmacyAccepted,
	OrderStatusRiderAssigned,
	OrderStatusOutForDelivery,
	OrderStatusPaymentRequested,
	OrderStatusPaymentPending,
}

// NormalizeStatus trims and upper-cases a raw status value
func NormalizeStatus(raw string) OrderStatus {
	return OrderStatus(strings.ToUpper(strings.TrimSpace(raw)))
}

// StatusSet is a set of order statuses
type StatusSet []OrderStatus

// NewStatusSet normalizes raw statuses, falling back to DefaultActiveStatuses
func NewStatusSet(raw []string) StatusSet {
	if len(raw) == 0 {
		return slices.Clone(DefaultActiveStatuses)
	}

	set := make(StatusSet, 0, len(raw))
	for _, s := range raw {
		if status := NormalizeStatus(s); status != "" {
			set = append(set, status)
		}
	}

	return set
}

// Contains reports whether the status is part of the set
func (s StatusSet) Contains(status OrderStatus) bool {
	return slices.Contains(s, status)
}

// Order is the part of a backend order the tracking session needs
type Order struct {
	ID     string      `json:"id"`
	Status OrderStatus `json:"status"`
}

// TrackingSnapshot is a point-in-time tracking view owned by the backend.
// Sessions replace it wholesale and never merge fields.
type TrackingSnapshot struct {
	Status      OrderStatus `json:"status"`
	UpdatedAt   *time.Time  `json:"updated_at,omitempty"`
	ETAMinutes  *float64    `json:"eta_minutes,omitempty"`
	DistanceKm  *float64    `json:"distance_km,omitempty"`
	RiderName   string      `json:"rider_name,omitempty"`
	RiderPhone  string      `json:"rider_phone,omitempty"`
	Rider       *Coordinate `json:"rider,omitempty"`
	Destination *Coordinate `json:"destination,omitempty"`
}
