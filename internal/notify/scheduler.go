package notify

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/DPANET/HomeyPrayersWeb/internal/timings"
)

// Scheduler refreshes the day's timings shortly after midnight, republishes
// the schedule, and arms one timer per remaining prayer to announce it.
type Scheduler struct {
	svc       *timings.Service
	announcer *Announcer
	query     timings.Query
	loc       *time.Location

	cron   *cron.Cron
	mu     sync.Mutex
	timers []*time.Timer
}

// loc is the timezone the announced prayer times are expressed in,
// i.e. the zone of the configured default location.
func NewScheduler(svc *timings.Service, announcer *Announcer, query timings.Query, loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{
		svc:       svc,
		announcer: announcer,
		query:     query,
		loc:       loc,
		cron:      cron.New(cron.WithLocation(loc)),
	}
}

// Start arms today's announcements and schedules the nightly refresh (12:05 AM).
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("5 0 * * *", s.refresh); err != nil {
		return err
	}
	s.cron.Start()
	s.refresh()
	log.Info().Msg("prayer announcement scheduler started (nightly refresh at 12:05AM)")
	return nil
}

func (s *Scheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	page, err := s.svc.DayTimings(ctx, s.query)
	if err != nil {
		log.Error().Err(err).Msg("scheduler failed to load day timings")
		return
	}

	if err := s.announcer.PublishSchedule(page); err != nil {
		log.Error().Err(err).Msg("failed to publish day schedule")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimersLocked()

	now := time.Now()
	for _, prayer := range page.Prayers {
		at, err := announceAt(now, prayer.Time24, s.loc)
		if err != nil {
			log.Warn().Str("prayer", prayer.Name).Str("time", prayer.Time24).Msg("unparseable prayer time, skipping announcement")
			continue
		}
		if !at.After(now) {
			continue
		}

		p := prayer
		timer := time.AfterFunc(time.Until(at), func() {
			if err := s.announcer.PublishPrayer(p); err != nil {
				log.Error().Err(err).Str("prayer", p.Name).Msg("failed to publish prayer announcement")
				return
			}
			log.Info().Str("prayer", p.Name).Str("time", p.Time24).Msg("published prayer announcement")
		})
		s.timers = append(s.timers, timer)
	}
}

// Stop halts the nightly refresh and cancels pending announcements.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTimersLocked()
}

// announceAt places a wall-clock prayer time ("15:04") on today's date in
// loc. Upstream times are local to the queried location, so today has to be
// resolved in that zone, not the server's.
func announceAt(now time.Time, time24 string, loc *time.Location) (time.Time, error) {
	parsed, err := time.Parse("15:04", time24)
	if err != nil {
		return time.Time{}, err
	}
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), parsed.Hour(), parsed.Minute(), 0, 0, loc), nil
}

func (s *Scheduler) stopTimersLocked() {
	for _, t := range s.timers {
		t.Stop()
	}
	s.timers = nil
}
