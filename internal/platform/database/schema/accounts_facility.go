package schema

// AccountFacilityTable represents the 'accounts.facilities' table
type AccountFacilityTable struct {
	Table              string
	ID                 string
	Email              string
	FacilityName       string
	State              string
	City               string
	Pincode            string
	AddressLine1       string
	AddressLine2       string
	ContactNo          string
	PickupAvailability string
	WasteTypes         string
	OpeningHours       string
	ClosingHours       string
	WorkingDays        string
	PasswordHash       string
	RefreshToken       string
	CreatedAt          string
	UpdatedAt          string
}

// AccountFacility is the schema definition for accounts.facilities
var AccountFacility = AccountFacilityTable{
	Table:              "accounts.facilities",
	ID:                 "id",
	Email:              "email",
	FacilityName:       "facilityname",
	State:              "state",
	City:               "city",
	Pincode:            "pincode",
	AddressLine1:       "addressline1",
	AddressLine2:       "addressline2",
	ContactNo:          "contactno",
	PickupAvailability: "pickupavailability",
	WasteTypes:         "wastetypes",
	OpeningHours:       "openinghours",
	ClosingHours:       "closinghours",
	WorkingDays:        "workingdays",
	PasswordHash:       "passwordhash",
	RefreshToken:       "refreshtoken",
	CreatedAt:          "createdat",
	UpdatedAt:          "updatedat",
}

// Columns returns every column in scan order.
func (t AccountFacilityTable) Columns() []string {
	return []string{
		t.ID, t.Email, t.FacilityName, t.State, t.City, t.Pincode,
		t.AddressLine1, t.AddressLine2, t.ContactNo, t.PickupAvailability,
		t.WasteTypes, t.OpeningHours, t.ClosingHours, t.WorkingDays,
		t.PasswordHash, t.RefreshToken, t.CreatedAt, t.UpdatedAt,
	}
}

// Identity returns the columns that may appear in an identity lookup.
func (t AccountFacilityTable) Identity() []string {
	return []string{t.Email, t.ContactNo}
}
