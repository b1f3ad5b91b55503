// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pickup

import (
	"context"

	"github.com/taibuivan/wastewise/pkg/pagination"
)

// # Pickup Data Access

// RequestRepository defines the data access contract for pickup requests.
type RequestRepository interface {

	/*
		Create persists a new pickup request.

		Returns:
		  - error: NotFound if the user or facility vanished, Conflict on a
		    duplicate request reference
	*/
	Create(context context.Context, request *Request) error

	/*
		List returns one page of requests owned by ownerID, newest first.

		Parameters:
		  - context: context.Context
		  - owner: Owner (Which column ownerID is matched against)
		  - ownerID: string (UUID)
		  - params: pagination.Params

		Returns:
		  - []*Request: The page
		  - int: Total matching requests
		  - error: Storage failures
	*/
	List(context context.Context, owner Owner, ownerID string, params pagination.Params) ([]*Request, int, error)
}

// FacilityAvailability reports whether a facility accepts pickups.
// It returns a not-found error when the facility does not exist.
type FacilityAvailability interface {
	PickupAvailability(context context.Context, facilityID string) (bool, error)
}
