package model

import "time"

// Location is a saved point on earth a user fetches timings for.
type Location struct {
	ID        int       `db:"id"         json:"id"`
	UserID    int       `db:"user_id"    json:"-"`
	Label     string    `db:"label"      json:"label"`
	Latitude  float64   `db:"latitude"   json:"latitude"`
	Longitude float64   `db:"longitude"  json:"longitude"`
	Timezone  *string   `db:"timezone"   json:"timezone"`
	Method    *int      `db:"method"     json:"method"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
