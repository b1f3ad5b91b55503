// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pickup

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/wastewise/internal/accounts/account"
	requestutil "github.com/taibuivan/wastewise/internal/platform/request"
	"github.com/taibuivan/wastewise/internal/platform/respond"
	"github.com/taibuivan/wastewise/internal/platform/sec"
	"github.com/taibuivan/wastewise/internal/platform/validate"
	"github.com/taibuivan/wastewise/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for pickup requests.
type Handler struct {
	service *Service
}

// NewHandler constructs a new pickup [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// UserRoutes mounts the booking endpoints on the user router.
func (handler *Handler) UserRoutes() account.RouteExtension {
	return account.RouteExtension{
		Protected: func(router chi.Router) {
			router.Post("/pickup-requests", handler.create)
			router.Get("/pickup-requests", handler.listForUser)
		},
	}
}

// FacilityRoutes mounts the inbox endpoint on the facility router.
func (handler *Handler) FacilityRoutes() account.RouteExtension {
	return account.RouteExtension{
		Protected: func(router chi.Router) {
			router.Get("/pickup-requests", handler.listForFacility)
		},
	}
}

// createRequest defines the inbound JSON schema for a booking.
type createRequest struct {
	FacilityID string `json:"facilityId"`
	PickupDate string `json:"pickupDate"`
	PickupTime string `json:"pickupTime"`
}

/*
POST /api/v1/users/pickup-requests.

Request:
  - body: createRequest

Response:
  - 201: Request: The booked request
  - 400: Validation: Invalid payload or a past date
  - 401: No user session
  - 404: Facility does not exist
  - 422: Facility is not accepting pickups
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	principal, err := requestutil.RequiredPrincipal(request, sec.KindUser)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	booking := Booking{
		FacilityID: strings.TrimSpace(input.FacilityID),
		PickupDate: strings.TrimSpace(input.PickupDate),
		PickupTime: strings.TrimSpace(input.PickupTime),
	}

	v := &validate.Validator{}
	v.Required(FieldFacilityID, booking.FacilityID).
		Required(FieldPickupDate, booking.PickupDate).
		Required(FieldPickupTime, booking.PickupTime)
	if booking.FacilityID != "" {
		v.UUID(FieldFacilityID, booking.FacilityID)
	}
	if booking.PickupDate != "" {
		v.Date(FieldPickupDate, booking.PickupDate)
	}
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Book(request.Context(), principal.Subject, booking)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created, "Pickup request created successfully")
}

// GET /api/v1/users/pickup-requests.
func (handler *Handler) listForUser(writer http.ResponseWriter, request *http.Request) {
	principal, err := requestutil.RequiredPrincipal(request, sec.KindUser)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	requests, total, err := handler.service.ListForUser(request.Context(), principal.Subject, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, requests, pagination.NewMeta(params, total), "Pickup requests fetched successfully")
}

// GET /api/v1/facility/pickup-requests.
func (handler *Handler) listForFacility(writer http.ResponseWriter, request *http.Request) {
	principal, err := requestutil.RequiredPrincipal(request, sec.KindFacility)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	requests, total, err := handler.service.ListForFacility(request.Context(), principal.Subject, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, requests, pagination.NewMeta(params, total), "Pickup requests fetched successfully")
}
