package schema

// PickupRequestTable represents the 'pickup.requests' table
type PickupRequestTable struct {
	Table        string
	ID           string
	RequestID    string
	UserID       string
	FacilityID   string
	PickupDate   string
	PickupTime   string
	PickupStatus string
	CreatedAt    string
	UpdatedAt    string
}

// PickupRequest is the schema definition for pickup.requests
var PickupRequest = PickupRequestTable{
	Table:        "pickup.requests",
	ID:           "id",
	RequestID:    "requestid",
	UserID:       "userid",
	FacilityID:   "facilityid",
	PickupDate:   "pickupdate",
	PickupTime:   "pickuptime",
	PickupStatus: "pickupstatus",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

func (t PickupRequestTable) Columns() []string {
	return []string{
		t.ID, t.RequestID, t.UserID, t.FacilityID, t.PickupDate,
		t.PickupTime, t.PickupStatus, t.CreatedAt, t.UpdatedAt,
	}
}
