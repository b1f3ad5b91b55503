// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package facility

import (
	"net/http"
	"strings"

	"github.com/taibuivan/wastewise/internal/accounts/account"
	"github.com/taibuivan/wastewise/internal/platform/database/schema"
	requestutil "github.com/taibuivan/wastewise/internal/platform/request"
	"github.com/taibuivan/wastewise/internal/platform/validate"
	"github.com/taibuivan/wastewise/pkg/ident"
	"github.com/taibuivan/wastewise/pkg/pointer"
	"github.com/taibuivan/wastewise/pkg/slice"
)

const facilityNameMinLen = 3

// Codec decodes facility request bodies.
type Codec struct{}

type registrationRequest struct {
	Email              string        `json:"email"`
	FacilityName       string        `json:"facilityName"`
	State              string        `json:"state"`
	City               string        `json:"city"`
	Pincode            string        `json:"pincode"`
	AddressLine1       string        `json:"addressLine1"`
	AddressLine2       string        `json:"addressLine2"`
	ContactNo          ContactNumber `json:"contactNo"`
	PickupAvailability *bool         `json:"pickupAvailability"`
	WasteTypes         []string      `json:"wasteTypes"`
	OpeningHours       string        `json:"openingHours"`
	ClosingHours       string        `json:"closingHours"`
	WorkingDays        []string      `json:"workingDays"`
	Password           string        `json:"password"`
}

func validateWorkingDays(v *validate.Validator, days []string) {
	v.EachOneOf("workingDays", slice.Map(days, ident.Title), Weekdays...)
}

// DecodeRegistration implements [account.Codec].
func (Codec) DecodeRegistration(writer http.ResponseWriter, request *http.Request) (*Facility, error) {
	var input registrationRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		return nil, err
	}

	v := &validate.Validator{}
	v.Email("email", input.Email).
		Required("facilityName", input.FacilityName).
		MinLen("facilityName", input.FacilityName, facilityNameMinLen).
		Required("state", input.State).
		Required("city", input.City).
		Required("pincode", input.Pincode).
		Required("addressLine1", input.AddressLine1).
		Digits("contactNo", ident.Digits(string(input.ContactNo))).
		Required("openingHours", input.OpeningHours).
		Required("closingHours", input.ClosingHours).
		Password("password", input.Password)
	validateWorkingDays(v, input.WorkingDays)
	if err := v.Err(); err != nil {
		return nil, err
	}

	created := &Facility{
		Email:              input.Email,
		FacilityName:       input.FacilityName,
		State:              input.State,
		City:               input.City,
		Pincode:            input.Pincode,
		AddressLine1:       input.AddressLine1,
		AddressLine2:       input.AddressLine2,
		ContactNo:          input.ContactNo,
		PickupAvailability: pointer.Fallback(input.PickupAvailability, true),
		WasteTypes:         input.WasteTypes,
		OpeningHours:       input.OpeningHours,
		ClosingHours:       input.ClosingHours,
		WorkingDays:        input.WorkingDays,
	}
	created.SetPassword(input.Password)
	return created, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// DecodeLogin implements [account.Codec]. Facilities log in by email.
func (Codec) DecodeLogin(writer http.ResponseWriter, request *http.Request) (account.Lookup, string, error) {
	var input loginRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		return nil, "", err
	}

	return account.Lookup{schema.AccountFacility.Email: ident.Fold(input.Email)}, input.Password, nil
}

// Patch is a partial facility profile update. Blank strings and empty
// lists count as absent.
type Patch struct {
	Email              *string        `json:"email"`
	FacilityName       *string        `json:"facilityName"`
	State              *string        `json:"state"`
	City               *string        `json:"city"`
	Pincode            *string        `json:"pincode"`
	AddressLine1       *string        `json:"addressLine1"`
	AddressLine2       *string        `json:"addressLine2"`
	ContactNo          *ContactNumber `json:"contactNo"`
	PickupAvailability *bool          `json:"pickupAvailability"`
	WasteTypes         []string       `json:"wasteTypes"`
	OpeningHours       *string        `json:"openingHours"`
	ClosingHours       *string        `json:"closingHours"`
	WorkingDays        []string       `json:"workingDays"`
}

func (p Patch) texts() []*string {
	return []*string{
		p.Email, p.FacilityName, p.State, p.City, p.Pincode,
		p.AddressLine1, p.AddressLine2, p.OpeningHours, p.ClosingHours,
	}
}

// Empty implements [account.Patch].
func (p Patch) Empty() bool {
	for _, field := range p.texts() {
		if strings.TrimSpace(pointer.Val(field)) != "" {
			return false
		}
	}
	return strings.TrimSpace(string(pointer.Val(p.ContactNo))) == "" &&
		p.PickupAvailability == nil &&
		len(p.WasteTypes) == 0 &&
		len(p.WorkingDays) == 0
}

// Apply implements [account.Patch].
func (p Patch) Apply(target *Facility) {
	set := func(field *string, dst *string) {
		if strings.TrimSpace(pointer.Val(field)) != "" {
			*dst = *field
		}
	}
	set(p.Email, &target.Email)
	set(p.FacilityName, &target.FacilityName)
	set(p.State, &target.State)
	set(p.City, &target.City)
	set(p.Pincode, &target.Pincode)
	set(p.AddressLine1, &target.AddressLine1)
	set(p.AddressLine2, &target.AddressLine2)
	set(p.OpeningHours, &target.OpeningHours)
	set(p.ClosingHours, &target.ClosingHours)

	if contact := pointer.Val(p.ContactNo); strings.TrimSpace(string(contact)) != "" {
		target.ContactNo = contact
	}
	pointer.Apply(p.PickupAvailability, func(available bool) { target.PickupAvailability = available })
	if len(p.WasteTypes) > 0 {
		target.WasteTypes = p.WasteTypes
	}
	if len(p.WorkingDays) > 0 {
		target.WorkingDays = p.WorkingDays
	}
}

// DecodePatch implements [account.Codec].
func (Codec) DecodePatch(writer http.ResponseWriter, request *http.Request) (account.Patch[*Facility], error) {
	var patch Patch
	if err := requestutil.DecodeJSON(writer, request, &patch); err != nil {
		return nil, err
	}

	v := &validate.Validator{}
	if email := strings.TrimSpace(pointer.Val(patch.Email)); email != "" {
		v.Email("email", email)
	}
	if name := strings.TrimSpace(pointer.Val(patch.FacilityName)); name != "" {
		v.MinLen("facilityName", name, facilityNameMinLen)
	}
	if contact := strings.TrimSpace(string(pointer.Val(patch.ContactNo))); contact != "" {
		v.Digits("contactNo", ident.Digits(contact))
	}
	validateWorkingDays(v, patch.WorkingDays)
	if err := v.Err(); err != nil {
		return nil, err
	}

	return patch, nil
}

var _ account.Codec[*Facility] = Codec{}
