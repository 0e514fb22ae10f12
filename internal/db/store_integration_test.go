package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DPANET/HomeyPrayersWeb/internal/model"
)

// TestStoreIntegration exercises the real Postgres store. It needs
// TEST_DATABASE_URL and is skipped otherwise.
func TestStoreIntegration(t *testing.T) {
	if err := InitTestDB("../../migrations"); err != nil {
		t.Skipf("skipping store integration test: %v", err)
	}
	store := TestStore

	t.Run("User Management", func(t *testing.T) {
		userID, err := store.CreateUser("test@example.com", "hashedpassword", nil)
		require.NoError(t, err)
		assert.Greater(t, userID, 0)

		user, err := store.GetUserByEmail("test@example.com")
		require.NoError(t, err)
		assert.Equal(t, "test@example.com", user.Email)

		name := "Updated Name"
		err = store.UpdateUserProfile(userID, "newemail@example.com", &name)
		assert.NoError(t, err)
	})

	t.Run("Locations", func(t *testing.T) {
		userID, err := store.CreateUser("locations@example.com", "password", nil)
		require.NoError(t, err)

		loc, err := store.CreateLocation(userID, "Home", 25.2048, 55.2708, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "Home", loc.Label)

		fetched, err := store.GetLocationByID(userID, loc.ID)
		require.NoError(t, err)
		assert.InDelta(t, 25.2048, fetched.Latitude, 1e-9)

		locations, err := store.ListLocations(userID)
		require.NoError(t, err)
		assert.Len(t, locations, 1)

		method := 4
		err = store.UpdateLocation(userID, loc.ID, "Work", 24.4539, 54.3773, nil, &method)
		require.NoError(t, err)

		updated, err := store.GetLocationByID(userID, loc.ID)
		require.NoError(t, err)
		assert.Equal(t, "Work", updated.Label)
		require.NotNil(t, updated.Method)
		assert.Equal(t, 4, *updated.Method)

		// other users cannot see it
		otherID, err := store.CreateUser("other@example.com", "password", nil)
		require.NoError(t, err)
		_, err = store.GetLocationByID(otherID, loc.ID)
		assert.Error(t, err)

		require.NoError(t, store.DeleteLocation(userID, loc.ID))
		_, err = store.GetLocationByID(userID, loc.ID)
		assert.Error(t, err)
	})

	t.Run("Adjustment Settings", func(t *testing.T) {
		userID, err := store.CreateUser("settings@example.com", "password", nil)
		require.NoError(t, err)

		_, err = store.GetSettings(userID)
		assert.Error(t, err, "no row until first save")

		method := 3
		settings := model.AdjustmentSettings{
			UserID:     userID,
			FajrOffset: 10,
			IshaOffset: -5,
			Method:     &method,
		}
		require.NoError(t, store.UpsertSettings(settings))

		saved, err := store.GetSettings(userID)
		require.NoError(t, err)
		assert.Equal(t, 10, saved.FajrOffset)
		assert.Equal(t, -5, saved.IshaOffset)

		// upsert replaces
		settings.FajrOffset = 0
		require.NoError(t, store.UpsertSettings(settings))
		saved, err = store.GetSettings(userID)
		require.NoError(t, err)
		assert.Equal(t, 0, saved.FajrOffset)
	})
}
