// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package facility_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/wastewise/internal/accounts/facility"
	"github.com/taibuivan/wastewise/internal/platform/apperr"
)

func validFacility() *facility.Facility {
	return &facility.Facility{
		Email:              "  Green@Earth.IN ",
		FacilityName:       " Green   Earth ",
		State:              "Karnataka",
		City:               "Bengaluru",
		Pincode:            "560001",
		AddressLine1:       "12 MG Road",
		ContactNo:          "+91 98765-43210",
		PickupAvailability: true,
		WasteTypes:         []string{"Plastic", " plastic", "E-Waste", ""},
		OpeningHours:       "09:00",
		ClosingHours:       "18:00",
		WorkingDays:        []string{"monday", "FRIDAY", "Monday"},
	}
}

/*
TestFacility_Normalize verifies identity folding and list cleanup.
*/
func TestFacility_Normalize(t *testing.T) {
	f := validFacility()
	f.Normalize()

	assert.Equal(t, "green@earth.in", f.Email)
	assert.Equal(t, "Green Earth", f.FacilityName)
	assert.Equal(t, facility.ContactNumber("919876543210"), f.ContactNo)
	assert.Equal(t, []string{"plastic", "e-waste"}, f.WasteTypes)
	assert.Equal(t, []string{"Monday", "Friday"}, f.WorkingDays)
	assert.NoError(t, f.Validate())
}

/*
TestFacility_Validate verifies the business-rule messages.
*/
func TestFacility_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *facility.Facility)
		message string
	}{
		{"Blank city", func(f *facility.Facility) { f.City = "  " }, "Please fill all the fields"},
		{"No waste types", func(f *facility.Facility) { f.WasteTypes = []string{" "} }, "Waste types must be a non-empty array"},
		{"No working days", func(f *facility.Facility) { f.WorkingDays = nil }, "Working days must be a non-empty array"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFacility()
			tt.mutate(f)
			f.Normalize()

			err := f.Validate()
			require.Error(t, err)
			assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

/*
TestContactNumber_UnmarshalJSON accepts numbers and strings.
*/
func TestContactNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    facility.ContactNumber
		wantErr bool
	}{
		{`9876543210`, "9876543210", false},
		{`"98765 43210"`, "98765 43210", false},
		{`null`, "", false},
		{`true`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var got facility.ContactNumber
			err := json.Unmarshal([]byte(tt.in), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestFacility_JSON verifies secrets never serialize.
*/
func TestFacility_JSON(t *testing.T) {
	f := validFacility()
	f.ID = "f-1"
	f.PasswordHash = "$2a$10$secret"
	token := "refresh"
	f.RefreshToken = &token

	payload, err := json.Marshal(f)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(payload, &body))
	assert.Equal(t, "f-1", body["_id"])
	assert.NotContains(t, body, "passwordHash")
	assert.NotContains(t, body, "PasswordHash")
	assert.NotContains(t, body, "refreshToken")
	assert.NotContains(t, string(payload), "secret")
}

func newRequest(body string) (*httptest.ResponseRecorder, *http.Request) {
	return httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(body))
}

/*
TestCodec_DecodeRegistration verifies shape validation and defaults.
*/
func TestCodec_DecodeRegistration(t *testing.T) {
	t.Run("Defaults pickup availability to true", func(t *testing.T) {
		w, r := newRequest(`{
			"email": "green@earth.in", "facilityName": "Green Earth", "state": "KA",
			"city": "Bengaluru", "pincode": "560001", "addressLine1": "12 MG Road",
			"contactNo": 9876543210, "wasteTypes": ["plastic"], "openingHours": "09:00",
			"closingHours": "18:00", "workingDays": ["Monday"], "password": "Secret1!"
		}`)

		got, err := facility.Codec{}.DecodeRegistration(w, r)
		require.NoError(t, err)
		assert.True(t, got.PickupAvailability)
		assert.Equal(t, facility.ContactNumber("9876543210"), got.ContactNo)

		password, ok := got.PendingPassword()
		assert.True(t, ok)
		assert.Equal(t, "Secret1!", password)
	})

	t.Run("Rejects unknown weekday and weak password", func(t *testing.T) {
		w, r := newRequest(`{
			"email": "green@earth.in", "facilityName": "Green Earth", "state": "KA",
			"city": "Bengaluru", "pincode": "560001", "addressLine1": "12 MG Road",
			"contactNo": "9876543210", "wasteTypes": ["plastic"], "openingHours": "09:00",
			"closingHours": "18:00", "workingDays": ["Funday"], "password": "secret"
		}`)

		_, err := facility.Codec{}.DecodeRegistration(w, r)
		require.Error(t, err)

		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		fields := make([]string, 0, len(appErr.Details))
		for _, detail := range appErr.Details {
			fields = append(fields, detail.Field)
		}
		assert.ElementsMatch(t, []string{"workingDays", "password"}, fields)
	})

	contactTests := []struct {
		name    string
		contact string
		wantErr bool
	}{
		{"Formatted number", `"+91 98765-43210"`, false},
		{"Plain digits", `"9876543210"`, false},
		{"No digits", `"call me"`, true},
		{"Non-ASCII digits only", `"٩٨٧"`, true},
	}
	for _, tt := range contactTests {
		t.Run("contactNo "+tt.name, func(t *testing.T) {
			w, r := newRequest(`{
				"email": "green@earth.in", "facilityName": "Green Earth", "state": "KA",
				"city": "Bengaluru", "pincode": "560001", "addressLine1": "12 MG Road",
				"contactNo": ` + tt.contact + `, "wasteTypes": ["plastic"], "openingHours": "09:00",
				"closingHours": "18:00", "workingDays": ["Monday"], "password": "Secret1!"
			}`)

			got, err := facility.Codec{}.DecodeRegistration(w, r)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, apperr.HasCode(err, apperr.CodeValidation), "got %v", err)
				return
			}

			require.NoError(t, err)
			got.Normalize()
			assert.Regexp(t, `^[0-9]+$`, string(got.ContactNo))
		})
	}
}

/*
TestPatch verifies emptiness and selective application.
*/
func TestPatch(t *testing.T) {
	assert.True(t, facility.Patch{}.Empty())

	blank := " "
	assert.True(t, facility.Patch{City: &blank}.Empty())

	closed := false
	patch := facility.Patch{PickupAvailability: &closed, WasteTypes: []string{"glass"}}
	assert.False(t, patch.Empty())

	target := validFacility()
	patch.Apply(target)
	assert.False(t, target.PickupAvailability)
	assert.Equal(t, []string{"glass"}, target.WasteTypes)
	assert.Equal(t, "Bengaluru", target.City)
}
