// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pickup lets users book waste pickups with a facility and lets
facilities list the bookings addressed to them.

A request is only accepted for a facility that exists and currently has
pickup availability turned on.
*/
package pickup

import "time"

// RequestCodePrefix prefixes generated request references ("pkp-...").
const RequestCodePrefix = "pkp"

// Request is a booked pickup.
type Request struct {
	ID         string `json:"_id"`
	RequestID  string `json:"requestId"`
	UserID     string `json:"userId"`
	FacilityID string `json:"facilityId"`

	// PickupDate is a calendar date in YYYY-MM-DD form.
	PickupDate string `json:"pickupDate"`
	PickupTime string `json:"pickupTime"`

	// PickupStatus is true once the facility completed the pickup.
	PickupStatus bool `json:"pickupStatus"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Owner selects whose requests a listing returns.
type Owner int

const (
	// OwnerUser lists the requests a user booked.
	OwnerUser Owner = iota

	// OwnerFacility lists the requests addressed to a facility.
	OwnerFacility
)
