// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package facility

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/wastewise/internal/accounts/account"
	"github.com/taibuivan/wastewise/internal/platform/respond"
	"github.com/taibuivan/wastewise/pkg/convert"
	"github.com/taibuivan/wastewise/pkg/ident"
	"github.com/taibuivan/wastewise/pkg/pagination"
	"github.com/taibuivan/wastewise/pkg/query"
	"github.com/taibuivan/wastewise/pkg/slice"
)

// # Directory Filter

// Filter narrows the public directory. Zero values match everything.
type Filter struct {
	City       string
	WasteTypes []string
	Available  *bool
}

// FilterFromRequest reads the "city", "wasteType" and "available" query
// parameters. Values are folded like the stored columns.
func FilterFromRequest(request *http.Request) Filter {
	values := request.URL.Query()
	return Filter{
		City:       ident.Fold(values.Get("city")),
		WasteTypes: slice.Clean(query.Values(values, "wasteType"), ident.Fold),
		Available:  convert.ToBoolPtr(values.Get("available")),
	}
}

// wasteTypes never returns nil; a NULL array would defeat the "no filter"
// branch of the list query.
func (filter Filter) wasteTypes() []string {
	if filter.WasteTypes == nil {
		return []string{}
	}
	return filter.WasteTypes
}

// cacheKey is stable for equal filters and pages.
func (filter Filter) cacheKey(params pagination.Params) string {
	types := slices.Clone(filter.wasteTypes())
	slices.Sort(types)

	available := "any"
	if filter.Available != nil {
		available = fmt.Sprint(*filter.Available)
	}

	return fmt.Sprintf("city=%s|waste=%s|available=%s|page=%d|limit=%d",
		filter.City, strings.Join(types, ","), available, params.Page, params.Limit)
}

// # Directory Service

// Lister is the read side of [Repository] used by the directory.
type Lister interface {
	List(ctx context.Context, filter Filter, params pagination.Params) ([]*Facility, int, error)
}

// Cache stores rendered directory pages. Misses report found=false with a
// nil error.
type Cache interface {
	Get(ctx context.Context, key string) (payload []byte, found bool, err error)
	Set(ctx context.Context, key string, payload []byte) error
	Invalidate(ctx context.Context) error
}

// Directory serves the public, cached facility listing.
type Directory struct {
	lister Lister
	cache  Cache
	logger *slog.Logger
}

// NewDirectory constructs a [Directory]. A nil cache disables caching.
func NewDirectory(lister Lister, cache Cache, logger *slog.Logger) *Directory {
	return &Directory{lister: lister, cache: cache, logger: logger}
}

/*
List returns one page of sanitized facilities.

Description: Pages are served from the cache when present. Cache failures
are logged and fall through to the database; they never fail the request.
*/
func (directory *Directory) List(ctx context.Context, filter Filter, params pagination.Params) (respond.Page, error) {
	key := filter.cacheKey(params)

	if directory.cache != nil {
		payload, found, err := directory.cache.Get(ctx, key)
		switch {
		case err != nil:
			directory.logger.WarnContext(ctx, "facility_directory_cache_read_failed", slog.Any("error", err))
		case found:
			var cached cachedPage
			if err := json.Unmarshal(payload, &cached); err == nil {
				return respond.Page{Items: cached.Items, Meta: cached.Meta}, nil
			}
		}
	}

	facilities, total, err := directory.lister.List(ctx, filter, params)
	if err != nil {
		return respond.Page{}, err
	}
	for _, facility := range facilities {
		facility.Sanitize()
	}

	page := cachedPage{Items: facilities, Meta: pagination.NewMeta(params, total)}

	if directory.cache != nil {
		if payload, err := json.Marshal(page); err == nil {
			if err := directory.cache.Set(ctx, key, payload); err != nil {
				directory.logger.WarnContext(ctx, "facility_directory_cache_write_failed", slog.Any("error", err))
			}
		}
	}

	return respond.Page{Items: page.Items, Meta: page.Meta}, nil
}

// cachedPage mirrors [respond.Page] with a concrete item type so cached
// payloads decode back into facilities.
type cachedPage struct {
	Items []*Facility     `json:"items"`
	Meta  pagination.Meta `json:"meta"`
}

// Invalidate drops every cached page. It matches [account.Listener] so the
// facility account service can call it on every change.
func (directory *Directory) Invalidate(ctx context.Context, event account.Event, facilityID string) {
	if directory.cache == nil {
		return
	}

	if err := directory.cache.Invalidate(ctx); err != nil {
		directory.logger.WarnContext(ctx, "facility_directory_invalidate_failed",
			slog.String("event", string(event)),
			slog.String("facility_id", facilityID),
			slog.Any("error", err),
		)
	}
}

// # Directory Endpoint

// DirectoryRoutes mounts GET /get-all-facilities as a public extension of
// the facility account routes.
func (directory *Directory) DirectoryRoutes() account.RouteExtension {
	return account.RouteExtension{
		Public: func(router chi.Router) {
			router.Get("/get-all-facilities", directory.getAll)
		},
	}
}

func (directory *Directory) getAll(writer http.ResponseWriter, request *http.Request) {
	page, err := directory.List(request.Context(), FilterFromRequest(request), pagination.FromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, page.Items, page.Meta, "Facilities fetched successfully")
}
