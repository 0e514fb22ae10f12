package model

import "time"

// AdjustmentSettings shifts each computed prayer time by whole minutes.
// A zero-valued row means “use upstream timings as-is”.
type AdjustmentSettings struct {
	UserID        int       `db:"user_id"        json:"-"`
	FajrOffset    int       `db:"fajr_offset"    json:"fajr_offset"`
	DhuhrOffset   int       `db:"dhuhr_offset"   json:"dhuhr_offset"`
	AsrOffset     int       `db:"asr_offset"     json:"asr_offset"`
	MaghribOffset int       `db:"maghrib_offset" json:"maghrib_offset"`
	IshaOffset    int       `db:"isha_offset"    json:"isha_offset"`
	Method        *int      `db:"method"         json:"method"`
	UpdatedAt     time.Time `db:"updated_at"     json:"updated_at"`
}

// Offset returns the stored offset for a prayer name, 0 for unknown names.
func (s AdjustmentSettings) Offset(prayer string) int {
	switch prayer {
	case PrayerFajr:
		return s.FajrOffset
	case PrayerDhuhr:
		return s.DhuhrOffset
	case PrayerAsr:
		return s.AsrOffset
	case PrayerMaghrib:
		return s.MaghribOffset
	case PrayerIsha:
		return s.IshaOffset
	}
	return 0
}
