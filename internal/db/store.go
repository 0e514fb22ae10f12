// exposes a Store interface that is passed to API modules
package db

import (
	"github.com/jmoiron/sqlx"

	"github.com/DPANET/HomeyPrayersWeb/internal/model"
)

type Store interface {
	// user functions
	CreateUser(email, hashedPassword string, name *string) (int, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int) (*model.User, error)
	UpdateUserProfile(id int, email string, name *string) error

	// saved locations
	CreateLocation(userID int, label string, lat, lon float64, timezone *string, method *int) (model.Location, error)
	ListLocations(userID int) ([]model.Location, error)
	GetLocationByID(userID, id int) (*model.Location, error)
	UpdateLocation(userID, id int, label string, lat, lon float64, timezone *string, method *int) error
	DeleteLocation(userID, id int) error

	// adjustment settings
	GetSettings(userID int) (*model.AdjustmentSettings, error)
	UpsertSettings(s model.AdjustmentSettings) error
}

type pgStore struct {
	db *sqlx.DB
}

// compile-time check that pgStore implements Store
var _ Store = (*pgStore)(nil)

func NewStore(conn *sqlx.DB) Store {
	return &pgStore{db: conn}
}
