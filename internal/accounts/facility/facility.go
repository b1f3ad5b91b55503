// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package facility plugs disposal facilities into the generic account lifecycle
and serves the public facility directory.

A facility advertises where it is, which waste it accepts, when it works and
whether it currently takes pickups. Users browse the directory and book
pickups against it.
*/
package facility

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/taibuivan/wastewise/internal/accounts/account"
	"github.com/taibuivan/wastewise/internal/platform/apperr"
	"github.com/taibuivan/wastewise/internal/platform/database/schema"
	"github.com/taibuivan/wastewise/internal/platform/sec"
	"github.com/taibuivan/wastewise/pkg/ident"
	"github.com/taibuivan/wastewise/pkg/slice"
)

// Kind describes facility accounts.
var Kind = account.Kind{
	Name:              sec.KindFacility,
	Label:             "Facility",
	PayloadKey:        "facility",
	CurrentPath:       "/current-facility",
	RequiredMessage:   "Please fill all the fields",
	IdentityMessage:   "Please fill all the fields",
	ConflictMessage:   "Facility with this email or contact no. already exists",
	MissingMessage:    "Facility does not exist",
	CredentialMessage: "Invalid facility credentials",
}

// Weekdays lists the accepted working days.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// ContactNumber is a phone number stored as digits. Clients send it either
// as a JSON number or a string.
type ContactNumber string

// UnmarshalJSON implements json.Unmarshaler.
func (c *ContactNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*c = ContactNumber(text)
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("facility: contactNo must be a number or a string: %w", err)
	}
	*c = ContactNumber(number.String())
	return nil
}

// Facility is a disposal center that accepts pickup requests.
type Facility struct {
	account.Credentials

	Email              string        `json:"email"`
	FacilityName       string        `json:"facilityName"`
	State              string        `json:"state"`
	City               string        `json:"city"`
	Pincode            string        `json:"pincode"`
	AddressLine1       string        `json:"addressLine1"`
	AddressLine2       string        `json:"addressLine2"`
	ContactNo          ContactNumber `json:"contactNo"`
	PickupAvailability bool          `json:"pickupAvailability"`
	WasteTypes         []string      `json:"wasteTypes"`
	OpeningHours       string        `json:"openingHours"`
	ClosingHours       string        `json:"closingHours"`
	WorkingDays        []string      `json:"workingDays"`
}

// Normalize implements [account.Entity].
func (f *Facility) Normalize() {
	f.Email = ident.Fold(f.Email)
	f.FacilityName = ident.Text(f.FacilityName)
	f.State = ident.Text(f.State)
	f.City = ident.Text(f.City)
	f.Pincode = strings.TrimSpace(f.Pincode)
	f.AddressLine1 = ident.Text(f.AddressLine1)
	f.AddressLine2 = ident.Text(f.AddressLine2)
	f.ContactNo = ContactNumber(ident.Digits(string(f.ContactNo)))
	f.WasteTypes = slice.Clean(f.WasteTypes, ident.Fold)
	f.OpeningHours = strings.TrimSpace(f.OpeningHours)
	f.ClosingHours = strings.TrimSpace(f.ClosingHours)
	f.WorkingDays = slice.Clean(f.WorkingDays, ident.Title)
}

// Validate implements [account.Entity].
func (f *Facility) Validate() error {
	required := []string{
		f.Email, f.FacilityName, f.State, f.City, f.Pincode,
		f.AddressLine1, string(f.ContactNo), f.OpeningHours, f.ClosingHours,
	}
	for _, value := range required {
		if value == "" {
			return apperr.ValidationError(Kind.RequiredMessage)
		}
	}

	if len(f.WasteTypes) == 0 {
		return apperr.ValidationError("Waste types must be a non-empty array")
	}
	if len(f.WorkingDays) == 0 {
		return apperr.ValidationError("Working days must be a non-empty array")
	}
	return nil
}

// Uniques implements [account.Entity].
func (f *Facility) Uniques() account.Lookup {
	return account.Lookup{
		schema.AccountFacility.Email:     f.Email,
		schema.AccountFacility.ContactNo: string(f.ContactNo),
	}
}

// Claims implements [account.Entity].
func (f *Facility) Claims() (string, string) {
	return f.Email, f.FacilityName
}
