package timings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DPANET/HomeyPrayersWeb/internal/model"
)

// fakeUpstream serves a canned AlAdhan-style payload and records hits.
func fakeUpstream(t *testing.T, hits *int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hits++
		resp := map[string]any{
			"code": 200,
			"data": map[string]any{
				"timings": map[string]string{
					"Fajr":    "05:12",
					"Sunrise": "06:40",
					"Dhuhr":   "12:30",
					"Asr":     "15:45",
					"Maghrib": "19:58 (CST)",
					"Isha":    "21:15",
				},
				"date": map[string]any{
					"readable": "05 Aug 2025",
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2025, time.August, 5, 10, 0, 0, 0, time.UTC)
	}
}

func TestDayTimingsFormatsPrayers(t *testing.T) {
	hits := 0
	upstream := fakeUpstream(t, &hits)
	defer upstream.Close()

	svc := NewService(NewClient(upstream.URL)).WithClock(fixedClock())

	page, err := svc.DayTimings(context.Background(), Query{
		Latitude:  41.8781,
		Longitude: -87.6298,
		Method:    2,
		City:      "CHICAGO",
	})
	require.NoError(t, err)

	assert.Equal(t, "CHICAGO", page.City)
	assert.Equal(t, "AUGUST 5, 2025", page.Date)
	assert.Equal(t, "06:40 AM", page.Sunrise)
	require.Len(t, page.Prayers, 5)

	assert.Equal(t, "FAJR", page.Prayers[0].Name)
	assert.Equal(t, "05:12", page.Prayers[0].Time)
	assert.Equal(t, "AM", page.Prayers[0].Period)

	// 19:58 with the upstream timezone suffix stripped
	maghrib := page.Prayers[3]
	assert.Equal(t, "MAGHRIB", maghrib.Name)
	assert.Equal(t, "07:58", maghrib.Time)
	assert.Equal(t, "PM", maghrib.Period)
	assert.Equal(t, "19:58", maghrib.Time24)
}

func TestDayTimingsAppliesAdjustments(t *testing.T) {
	hits := 0
	upstream := fakeUpstream(t, &hits)
	defer upstream.Close()

	svc := NewService(NewClient(upstream.URL)).WithClock(fixedClock())

	adjustments := &model.AdjustmentSettings{
		FajrOffset: 10,
		IshaOffset: -20,
	}
	page, err := svc.DayTimings(context.Background(), Query{
		Latitude:    41.8781,
		Longitude:   -87.6298,
		Method:      2,
		Adjustments: adjustments,
	})
	require.NoError(t, err)

	assert.Equal(t, "05:22", page.Prayers[0].Time24)
	assert.Equal(t, "20:55", page.Prayers[4].Time24)
	// unadjusted prayers pass through
	assert.Equal(t, "12:30", page.Prayers[1].Time24)
}

func TestDayTimingsMethodOverrideFromSettings(t *testing.T) {
	var gotMethod string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.URL.Query().Get("method")
		json.NewEncoder(w).Encode(map[string]any{
			"code": 200,
			"data": map[string]any{"timings": map[string]string{
				"Fajr": "05:00", "Sunrise": "06:30", "Dhuhr": "12:00",
				"Asr": "15:00", "Maghrib": "19:00", "Isha": "21:00",
			}},
		})
	}))
	defer upstream.Close()

	svc := NewService(NewClient(upstream.URL)).WithClock(fixedClock())

	method := 4
	_, err := svc.DayTimings(context.Background(), Query{
		Method:      2,
		Adjustments: &model.AdjustmentSettings{Method: &method},
	})
	require.NoError(t, err)
	assert.Equal(t, "4", gotMethod)
}

func TestDayTimingsUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer upstream.Close()

	svc := NewService(NewClient(upstream.URL)).WithClock(fixedClock())

	_, err := svc.DayTimings(context.Background(), Query{})
	assert.Error(t, err)
}

func TestShiftMinutes(t *testing.T) {
	shifted, err := shiftMinutes("23:55", 10)
	require.NoError(t, err)
	assert.Equal(t, "00:05", shifted)

	shifted, err = shiftMinutes("00:05", -10)
	require.NoError(t, err)
	assert.Equal(t, "23:55", shifted)

	same, err := shiftMinutes("12:00", 0)
	require.NoError(t, err)
	assert.Equal(t, "12:00", same)
}

func TestTo12Hour(t *testing.T) {
	cases := []struct {
		in     string
		time   string
		period string
	}{
		{"00:15", "12:15", "AM"},
		{"05:12", "05:12", "AM"},
		{"12:00", "12:00", "PM"},
		{"17:30", "05:30", "PM"},
	}
	for _, tc := range cases {
		got, period := to12Hour(tc.in)
		assert.Equal(t, tc.time, got, tc.in)
		assert.Equal(t, tc.period, period, tc.in)
	}
}
