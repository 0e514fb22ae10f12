package timings

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/DPANET/HomeyPrayersWeb/internal/model"
	"github.com/DPANET/HomeyPrayersWeb/internal/redis"
)

// Query identifies one day's timings request.
type Query struct {
	Latitude  float64
	Longitude float64
	Method    int
	City      string
	// Adjustments, when set, shifts each prayer by its stored minute offset.
	Adjustments *model.AdjustmentSettings
}

// Service layers caching and adjustment application over the upstream client.
type Service struct {
	client *Client
	now    func() time.Time
}

func NewService(client *Client) *Service {
	return &Service{
		client: client,
		now:    time.Now,
	}
}

// WithClock lets tests pin the current day.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// DayTimings returns today's prayers for the query, formatted for the front
// end. Raw upstream timings are cached in redis until end of day;
// adjustments are applied per request so different users share one cache
// entry per location.
func (s *Service) DayTimings(ctx context.Context, q Query) (model.TimingsPageData, error) {
	now := s.now()

	if q.Adjustments != nil && q.Adjustments.Method != nil {
		q.Method = *q.Adjustments.Method
	}

	day, err := s.rawDay(ctx, now, q)
	if err != nil {
		return model.TimingsPageData{}, err
	}

	prayers := make([]model.Prayer, 0, len(model.PrayerOrder))
	for _, name := range model.PrayerOrder {
		t24 := cleanTime(day.Timings[name])
		if q.Adjustments != nil {
			if t24, err = shiftMinutes(t24, q.Adjustments.Offset(name)); err != nil {
				return model.TimingsPageData{}, fmt.Errorf("bad upstream time for %s: %w", name, err)
			}
		}
		time12, period := to12Hour(t24)
		prayers = append(prayers, model.Prayer{
			Name:   strings.ToUpper(name),
			Time:   time12,
			Period: period,
			Time24: t24,
		})
	}

	sunrise := format12(cleanTime(day.Timings["Sunrise"]))

	return model.TimingsPageData{
		City:    q.City,
		Date:    now.Format("JANUARY 2, 2006"),
		Sunrise: sunrise,
		Prayers: prayers,
	}, nil
}

// rawDay serves from the redis cache when possible, otherwise fetches and
// caches until midnight. A broken cache never fails the request.
func (s *Service) rawDay(ctx context.Context, now time.Time, q Query) (model.DayTimes, error) {
	key := fmt.Sprintf("timings:%.4f:%.4f:%d:%s", q.Latitude, q.Longitude, q.Method, now.Format("02-01-2006"))

	if cached, ok := redis.Get(ctx, key); ok {
		var day model.DayTimes
		if err := json.Unmarshal([]byte(cached), &day); err == nil {
			return day, nil
		}
		log.Warn().Str("key", key).Msg("discarding unreadable cached timings")
	}

	day, err := s.client.FetchDay(ctx, now, q.Latitude, q.Longitude, q.Method)
	if err != nil {
		return model.DayTimes{}, err
	}

	if raw, err := json.Marshal(day); err == nil {
		midnight := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
		redis.Set(ctx, key, raw, time.Until(midnight))
	}
	return day, nil
}

// cleanTime strips upstream suffixes like “05:12 (CST)”.
func cleanTime(t string) string {
	if i := strings.IndexByte(t, ' '); i >= 0 {
		return t[:i]
	}
	return t
}

// shiftMinutes moves an “HH:MM” 24-hour time by whole minutes.
func shiftMinutes(t24 string, minutes int) (string, error) {
	if minutes == 0 {
		return t24, nil
	}
	parsed, err := time.Parse("15:04", t24)
	if err != nil {
		return "", err
	}
	return parsed.Add(time.Duration(minutes) * time.Minute).Format("15:04"), nil
}

// to12Hour converts “17:30” to (“05:30”, “PM”).
func to12Hour(t24 string) (string, string) {
	parsed, err := time.Parse("15:04", t24)
	if err != nil {
		return t24, ""
	}
	return parsed.Format("03:04"), parsed.Format("PM")
}

// format12 renders a 24-hour time as “05:30 AM”.
func format12(t24 string) string {
	t, period := to12Hour(t24)
	if period == "" {
		return t
	}
	return t + " " + period
}
