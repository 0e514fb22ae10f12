package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/DPANET/HomeyPrayersWeb/internal/model"
)

// fetches a user's adjustment settings. returns nil, sql.ErrNoRows if the
// user never saved any.
func (s *pgStore) GetSettings(userID int) (*model.AdjustmentSettings, error) {
	var settings model.AdjustmentSettings
	query := `
	SELECT user_id, fajr_offset, dhuhr_offset, asr_offset, maghrib_offset, isha_offset, method, updated_at
	FROM adjustment_settings
	WHERE user_id = $1;`

	if err := s.db.Get(&settings, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Err(err).Msg("failed to get adjustment settings")
		return nil, err
	}
	return &settings, nil
}

// inserts or replaces the user's adjustment settings row.
func (s *pgStore) UpsertSettings(settings model.AdjustmentSettings) error {
	query := `
	INSERT INTO adjustment_settings
	(user_id, fajr_offset, dhuhr_offset, asr_offset, maghrib_offset, isha_offset, method, updated_at)
	VALUES
	($1, $2, $3, $4, $5, $6, $7, now())
	ON CONFLICT (user_id) DO UPDATE
	SET fajr_offset = EXCLUDED.fajr_offset,
	dhuhr_offset = EXCLUDED.dhuhr_offset,
	asr_offset = EXCLUDED.asr_offset,
	maghrib_offset = EXCLUDED.maghrib_offset,
	isha_offset = EXCLUDED.isha_offset,
	method = EXCLUDED.method,
	updated_at = now();`

	if _, err := s.db.Exec(query,
		settings.UserID,
		settings.FajrOffset,
		settings.DhuhrOffset,
		settings.AsrOffset,
		settings.MaghribOffset,
		settings.IshaOffset,
		settings.Method,
	); err != nil {
		log.Error().Err(err).Msg("failed to upsert adjustment settings")
		return err
	}
	return nil
}
