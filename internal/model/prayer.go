package model

// Names of the five daily prayers, in calendar order.
const (
	PrayerFajr    = "Fajr"
	PrayerDhuhr   = "Dhuhr"
	PrayerAsr     = "Asr"
	PrayerMaghrib = "Maghrib"
	PrayerIsha    = "Isha"
)

// PrayerOrder lists the daily prayers in the order the front end renders them.
var PrayerOrder = []string{PrayerFajr, PrayerDhuhr, PrayerAsr, PrayerMaghrib, PrayerIsha}

type Prayer struct {
	Name   string `json:"name"`   // “FAJR”, “DHUHR”, …
	Time   string `json:"time"`   // “05:12”
	Period string `json:"period"` // “AM” or “PM”
	Time24 string `json:"time24"` // “17:12”, for client-side countdowns
}

// DayTimes holds one day of raw 24-hour timings as returned upstream,
// keyed by prayer name plus “Sunrise”.
type DayTimes struct {
	Date    string            `json:"date"` // “02-01-2006”
	Timings map[string]string `json:"timings"`
}

type TimingsPageData struct {
	City    string   `json:"city"`
	Date    string   `json:"date"` // “AUGUST 5, 2025”
	Sunrise string   `json:"sunrise"`
	Prayers []Prayer `json:"prayers"`
}
