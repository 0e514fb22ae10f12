package db

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/DPANET/HomeyPrayersWeb/internal/model"
)

func (s *pgStore) CreateLocation(userID int, label string, lat, lon float64, timezone *string, method *int) (model.Location, error) {
	var l model.Location
	query := `
	INSERT INTO locations
	(user_id, label, latitude, longitude, timezone, method, created_at, updated_at)
	VALUES
	($1, $2, $3, $4, $5, $6, now(), now())
	RETURNING
	id, user_id, label, latitude, longitude, timezone, method, created_at, updated_at;`

	if err := s.db.Get(&l, query, userID, label, lat, lon, timezone, method); err != nil {
		log.Error().Err(err).Msg("failed to create location")
		return model.Location{}, err
	}
	return l, nil
}

func (s *pgStore) ListLocations(userID int) ([]model.Location, error) {
	locations := []model.Location{}
	query := `
	SELECT id, user_id, label, latitude, longitude, timezone, method, created_at, updated_at
	FROM locations
	WHERE user_id = $1
	ORDER BY label;`

	if err := s.db.Select(&locations, query, userID); err != nil {
		log.Error().Err(err).Msg("failed to list locations")
		return nil, err
	}
	return locations, nil
}

// fetches one saved location scoped to its owner. returns nil, sql.ErrNoRows if not found.
func (s *pgStore) GetLocationByID(userID, id int) (*model.Location, error) {
	var l model.Location
	query := `
	SELECT id, user_id, label, latitude, longitude, timezone, method, created_at, updated_at
	FROM locations
	WHERE id = $1 AND user_id = $2;`

	if err := s.db.Get(&l, query, id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		log.Error().Err(err).Msg("failed to get location by id")
		return nil, err
	}
	return &l, nil
}

func (s *pgStore) UpdateLocation(userID, id int, label string, lat, lon float64, timezone *string, method *int) error {
	query := `
	UPDATE locations
	SET label = $3,
	latitude = $4,
	longitude = $5,
	timezone = $6,
	method = $7,
	updated_at = now()
	WHERE id = $1 AND user_id = $2;`

	res, err := s.db.Exec(query, id, userID, label, lat, lon, timezone, method)
	if err != nil {
		log.Error().Err(err).Msg("failed to update location - exec")
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		log.Error().Err(err).Msg("failed to update location - rows affected")
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *pgStore) DeleteLocation(userID, id int) error {
	res, err := s.db.Exec(`DELETE FROM locations WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		log.Error().Err(err).Msg("failed to delete location")
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
