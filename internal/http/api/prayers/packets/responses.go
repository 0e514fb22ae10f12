package packets

import (
	"time"

	"github.com/DPANET/HomeyPrayersWeb/internal/model"
)

type LocationResponse struct {
	ID        int       `json:"id"`
	Label     string    `json:"label"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timezone  *string   `json:"timezone"`
	Method    *int      `json:"method"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func MapLocation(l model.Location) LocationResponse {
	return LocationResponse{
		ID:        l.ID,
		Label:     l.Label,
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		Timezone:  l.Timezone,
		Method:    l.Method,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

type SettingsResponse struct {
	FajrOffset    int       `json:"fajr_offset"`
	DhuhrOffset   int       `json:"dhuhr_offset"`
	AsrOffset     int       `json:"asr_offset"`
	MaghribOffset int       `json:"maghrib_offset"`
	IshaOffset    int       `json:"isha_offset"`
	Method        *int      `json:"method"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func MapSettings(s model.AdjustmentSettings) SettingsResponse {
	return SettingsResponse{
		FajrOffset:    s.FajrOffset,
		DhuhrOffset:   s.DhuhrOffset,
		AsrOffset:     s.AsrOffset,
		MaghribOffset: s.MaghribOffset,
		IshaOffset:    s.IshaOffset,
		Method:        s.Method,
		UpdatedAt:     s.UpdatedAt,
	}
}
