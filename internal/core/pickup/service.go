// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pickup

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/wastewise/internal/platform/apperr"
	"github.com/taibuivan/wastewise/internal/platform/dberr"
	"github.com/taibuivan/wastewise/internal/platform/validate"
	"github.com/taibuivan/wastewise/pkg/pagination"
	"github.com/taibuivan/wastewise/pkg/uuid"
)

const (
	FieldFacilityID = "facilityId"
	FieldPickupDate = "pickupDate"
	FieldPickupTime = "pickupTime"
)

// Booking is the caller-supplied part of a new request.
type Booking struct {
	FacilityID string
	PickupDate string
	PickupTime string
}

// # Service Layer

// Service orchestrates pickup bookings.
type Service struct {
	requests   RequestRepository
	facilities FacilityAvailability
	logger     *slog.Logger
	now        func() time.Time
}

// Option customizes a [Service].
type Option func(*Service)

// WithClock overrides the time source used for timestamps and the
// past-date check.
func WithClock(now func() time.Time) Option {
	return func(service *Service) { service.now = now }
}

// NewService constructs a new [Service] with its required repositories.
func NewService(requests RequestRepository, facilities FacilityAvailability, logger *slog.Logger, opts ...Option) *Service {
	service := &Service{
		requests:   requests,
		facilities: facilities,
		logger:     logger,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// # Booking

/*
Book creates a pickup request from userID to a facility.

Description: The date must not be before today (UTC). The facility must
exist and must currently accept pickups. The request reference is generated
and the status starts as not completed.

Returns:
  - *Request: The stored request
  - error: ValidationError, NotFound, Unprocessable or storage failures
*/
func (service *Service) Book(context context.Context, userID string, booking Booking) (*Request, error) {
	now := service.now().UTC()

	validator := &validate.Validator{}
	validator.Custom(FieldPickupDate, booking.PickupDate < now.Format(time.DateOnly), "Pickup date cannot be in the past")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	available, err := service.facilities.PickupAvailability(context, booking.FacilityID)
	if err != nil {
		return nil, facilityError(err)
	}
	if !available {
		return nil, apperr.Unprocessable("Facility is not accepting pickup requests")
	}

	request := &Request{
		ID:           uuid.New(),
		RequestID:    uuid.Code(RequestCodePrefix),
		UserID:       userID,
		FacilityID:   booking.FacilityID,
		PickupDate:   booking.PickupDate,
		PickupTime:   booking.PickupTime,
		PickupStatus: false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The facility can still be deleted between the check and the insert.
	if err := service.requests.Create(context, request); err != nil {
		return nil, facilityError(err)
	}

	service.logger.InfoContext(context, "pickup_requested",
		slog.String("request_id", request.RequestID),
		slog.String("user_id", userID),
		slog.String("facility_id", booking.FacilityID),
	)

	return request, nil
}

// # Listings

// ListForUser returns the requests userID booked, newest first.
func (service *Service) ListForUser(context context.Context, userID string, params pagination.Params) ([]*Request, int, error) {
	return service.requests.List(context, OwnerUser, userID, params)
}

// ListForFacility returns the requests addressed to facilityID, newest first.
func (service *Service) ListForFacility(context context.Context, facilityID string, params pagination.Params) ([]*Request, int, error) {
	return service.requests.List(context, OwnerFacility, facilityID, params)
}

func facilityError(err error) error {
	if dberr.IsNotFound(err) {
		return apperr.NotFound("Facility").WithMessage("Facility does not exist")
	}
	return err
}
