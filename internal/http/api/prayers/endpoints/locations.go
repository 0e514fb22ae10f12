package endpoints

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DPANET/HomeyPrayersWeb/internal/db"
	"github.com/DPANET/HomeyPrayersWeb/internal/http/api"
	"github.com/DPANET/HomeyPrayersWeb/internal/http/api/prayers/packets"
	"github.com/DPANET/HomeyPrayersWeb/internal/model"
)

type LocationController struct {
	store db.Store
}

func newLocationController(store db.Store) *LocationController {
	return &LocationController{store: store}
}

// LocationsModule mounts all authenticated /locations endpoints.
func LocationsModule(store db.Store) api.Module {
	ctl := newLocationController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/locations", ctl.listLocations)
		c.POST("/locations", ctl.createLocation)
		c.GET("/locations/:id", ctl.getLocation)
		c.PUT("/locations/:id", ctl.updateLocation)
		c.DELETE("/locations/:id", ctl.deleteLocation)
	})
}

func (l *LocationController) listLocations(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	locations, err := l.store.ListLocations(user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list locations"}
	}

	out := make([]packets.LocationResponse, len(locations))
	for i, loc := range locations {
		out[i] = packets.MapLocation(loc)
	}
	return out, nil
}

func (l *LocationController) createLocation(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.LocationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	loc, err := l.store.CreateLocation(user.ID, request.Label, request.Latitude, request.Longitude, request.Timezone, request.Method)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create location"}
	}
	return packets.MapLocation(loc), nil
}

func (l *LocationController) getLocation(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := locationID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	loc, err := l.store.GetLocationByID(user.ID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "location not found"}
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not get location"}
	}
	return packets.MapLocation(*loc), nil
}

func (l *LocationController) updateLocation(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := locationID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	var request packets.LocationRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	err := l.store.UpdateLocation(user.ID, id, request.Label, request.Latitude, request.Longitude, request.Timezone, request.Method)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "location not found"}
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update location"}
	}
	return gin.H{"status": "updated"}, nil
}

func (l *LocationController) deleteLocation(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, apiErr := locationID(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	if err := l.store.DeleteLocation(user.ID, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &api.APIError{Code: http.StatusNotFound, Message: "location not found"}
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete location"}
	}
	return gin.H{"status": "deleted"}, nil
}

func locationID(ctx *gin.Context) (int, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, &api.APIError{Code: http.StatusBadRequest, Message: "id must be an integer"}
	}
	return id, nil
}
