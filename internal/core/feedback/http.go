// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feedback

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

// Handler implements the HTTP layer for feedback.
type Handler struct {
	service *Service
}

// NewHandler constructs a new feedback [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// UserRoutes mounts feedback submission on the user router.
func (handler *Handler) UserRoutes() account.RouteExtension {
	return account.RouteExtension{
		Protected: func(router chi.Router) {
			router.Post("/feedback", handler.submit)
		},
	}
}

// FacilityRoutes mounts the public per-facility listing on the facility router.
func (handler *Handler) FacilityRoutes() account.RouteExtension {
	return account.RouteExtension{
		Public: func(router chi.Router) {
			router.Get("/{id}/feedback", handler.listForFacility)
		},
	}
}

// submitRequest defines the inbound JSON schema for feedback.
type submitRequest struct {
	FacilityID string `json:"facilityId"`
	Rating     int    `json:"rating"`
	Review     string `json:"review"`
}

/*
POST /api/v1/users/feedback.

Response:
  - 201: Feedback: The stored entry
  - 400: Validation: Missing facility, rating outside 1..5, review too long
  - 401: No user session
  - 404: Facility does not exist
*/
func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	principal, err := requestutil.RequiredPrincipal(request, sec.KindUser)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input submitRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	facilityID := strings.TrimSpace(input.FacilityID)

	v := &validate.Validator{}
	v.Required(FieldFacilityID, facilityID).
		Range(FieldRating, input.Rating, MinRating, MaxRating).
		MaxLen(FieldReview, strings.TrimSpace(input.Review), MaxReviewLen)
	if facilityID != "" {
		v.UUID(FieldFacilityID, facilityID)
	}
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.service.Submit(request.Context(), principal.Subject, Submission{
		FacilityID: facilityID,
		Rating:     input.Rating,
		Review:     input.Review,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, created, "Feedback submitted successfully")
}

/*
GET /api/v1/facility/{id}/feedback.

Description: Public. Lists a facility's feedback, newest first.

Response:
  - 200: Page of Feedback
  - 400: The ID is not a UUID
  - 404: Facility does not exist
*/
func (handler *Handler) listForFacility(writer http.ResponseWriter, request *http.Request) {
	facilityID := requestutil.Param(request, "id")

	v := &validate.Validator{}
	v.UUID("id", facilityID)
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	entries, total, err := handler.service.ListForFacility(request.Context(), facilityID, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, entries, pagination.NewMeta(params, total), "Feedback fetched successfully")
}
