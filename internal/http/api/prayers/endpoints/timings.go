package endpoints

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/DPANET/HomeyPrayersWeb/internal/db"
	"github.com/DPANET/HomeyPrayersWeb/internal/http/api"
	"github.com/DPANET/HomeyPrayersWeb/internal/http/middleware"
	"github.com/DPANET/HomeyPrayersWeb/internal/model"
	"github.com/DPANET/HomeyPrayersWeb/internal/timings"
)

// TimingsDefaults is the location used when a request carries none.
type TimingsDefaults struct {
	Latitude  float64
	Longitude float64
	Method    int
	City      string
}

type TimingsController struct {
	svc      *timings.Service
	store    db.Store
	defaults TimingsDefaults
}

func newTimingsController(svc *timings.Service, store db.Store, defaults TimingsDefaults) *TimingsController {
	return &TimingsController{svc: svc, store: store, defaults: defaults}
}

// TimingsModule mounts the public timings endpoint.
func TimingsModule(svc *timings.Service, store db.Store, defaults TimingsDefaults) api.Module {
	ctl := newTimingsController(svc, store, defaults)
	return api.ModuleFunc(func(c *api.Controller) {
		c.PUBLIC_GET("/timings", ctl.getTimings)
	})
}

// PersonalTimingsModule mounts the authenticated timings endpoint, which
// applies the caller's stored adjustment settings and saved locations.
func PersonalTimingsModule(svc *timings.Service, store db.Store, defaults TimingsDefaults) api.Module {
	ctl := newTimingsController(svc, store, defaults)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/timings/me", ctl.getPersonalTimings)
	})
}

// GET /api/prayers/timings?latitude=&longitude=&method=
// A valid bearer token is honored when present: the caller's stored
// adjustments apply even on the public route.
func (t *TimingsController) getTimings(ctx *gin.Context) (any, *api.APIError) {
	query, apiErr := t.queryFromRequest(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	if user, ok := middleware.GetCurrentUser(ctx); ok {
		settings, err := t.store.GetSettings(user.ID)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load settings"}
		}
		query.Adjustments = settings
	}

	page, err := t.svc.DayTimings(ctx, query)
	if err != nil {
		log.Error().Err(err).Msg("failed to get prayer times")
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: "failed to get prayer times"}
	}
	return page, nil
}

// GET /api/prayers/timings/me?location_id=
func (t *TimingsController) getPersonalTimings(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	query, apiErr := t.queryFromRequest(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	if raw := ctx.Query("location_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "location_id must be an integer"}
		}
		loc, err := t.store.GetLocationByID(user.ID, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, &api.APIError{Code: http.StatusNotFound, Message: "location not found"}
			}
			return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load location"}
		}
		query.Latitude = loc.Latitude
		query.Longitude = loc.Longitude
		query.City = loc.Label
		if loc.Method != nil {
			query.Method = *loc.Method
		}
	}

	settings, err := t.store.GetSettings(user.ID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not load settings"}
	}
	query.Adjustments = settings

	page, err := t.svc.DayTimings(ctx, query)
	if err != nil {
		log.Error().Err(err).Msg("failed to get prayer times")
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: "failed to get prayer times"}
	}
	return page, nil
}

func (t *TimingsController) queryFromRequest(ctx *gin.Context) (timings.Query, *api.APIError) {
	query := timings.Query{
		Latitude:  t.defaults.Latitude,
		Longitude: t.defaults.Longitude,
		Method:    t.defaults.Method,
		City:      t.defaults.City,
	}

	if raw := ctx.Query("latitude"); raw != "" {
		lat, err := strconv.ParseFloat(raw, 64)
		if err != nil || lat < -90 || lat > 90 {
			return timings.Query{}, &api.APIError{Code: http.StatusBadRequest, Message: "latitude must be a number in [-90,90]"}
		}
		query.Latitude = lat
	}
	if raw := ctx.Query("longitude"); raw != "" {
		lon, err := strconv.ParseFloat(raw, 64)
		if err != nil || lon < -180 || lon > 180 {
			return timings.Query{}, &api.APIError{Code: http.StatusBadRequest, Message: "longitude must be a number in [-180,180]"}
		}
		query.Longitude = lon
	}
	if raw := ctx.Query("method"); raw != "" {
		method, err := strconv.Atoi(raw)
		if err != nil {
			return timings.Query{}, &api.APIError{Code: http.StatusBadRequest, Message: "method must be an integer"}
		}
		query.Method = method
	}
	if city := ctx.Query("city"); city != "" {
		query.City = city
	}

	return query, nil
}
