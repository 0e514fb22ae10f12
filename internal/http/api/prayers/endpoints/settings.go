package endpoints

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DPANET/HomeyPrayersWeb/internal/db"
	"github.com/DPANET/HomeyPrayersWeb/internal/http/api"
	"github.com/DPANET/HomeyPrayersWeb/internal/http/api/prayers/packets"
	"github.com/DPANET/HomeyPrayersWeb/internal/model"
)

type SettingsController struct {
	store db.Store
}

func newSettingsController(store db.Store) *SettingsController {
	return &SettingsController{store: store}
}

// SettingsModule mounts the authenticated adjustment-settings endpoints.
func SettingsModule(store db.Store) api.Module {
	ctl := newSettingsController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/settings", ctl.getSettings)
		c.PUT("/settings", ctl.putSettings)
	})
}

// GET /api/prayers/settings — a user with no saved row gets zero offsets.
func (s *SettingsController) getSettings(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	settings, err := s.store.GetSettings(user.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return packets.MapSettings(model.AdjustmentSettings{UserID: user.ID}), nil
		}
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not get settings"}
	}
	return packets.MapSettings(*settings), nil
}

// PUT /api/prayers/settings
func (s *SettingsController) putSettings(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.SettingsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	settings := model.AdjustmentSettings{
		UserID:        user.ID,
		FajrOffset:    request.FajrOffset,
		DhuhrOffset:   request.DhuhrOffset,
		AsrOffset:     request.AsrOffset,
		MaghribOffset: request.MaghribOffset,
		IshaOffset:    request.IshaOffset,
		Method:        request.Method,
	}
	if err := s.store.UpsertSettings(settings); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not save settings"}
	}
	return packets.MapSettings(settings), nil
}
