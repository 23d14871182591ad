package db_test

import (
	"testing"

	"dsw/internal/storage/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CreatesDatabase(t *testing.T) {
	database, err := db.New(":memory:")
	require.NoError(t, err)
	defer database.Close()

	assert.NotNil(t, database)
}

func TestNew_RunsMigrations(t *testing.T) {
	database, err := db.New(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// Verify the table exists by querying it
	var count int
	err = database.QueryRow("SELECT COUNT(*) FROM generations").Scan(&count)
	assert.NoError(t, err)
	assert.Zero(t, count)
}

func TestGenerations_SaveAndList(t *testing.T) {
	database, err := db.New(":memory:")
	require.NoError(t, err)
	defer database.Close()

	gen := &db.Generation{
		CurrentProfile: "gnome",
		TargetProfile:  "kde-plasma",
		Manager:        "pacman",
		OutputPath:     "/home/user/dsw_gnome_to_kde-plasma.sh",
		ScriptSHA256:   "deadbeef",
	}

	err = database.SaveGeneration(gen)
	require.NoError(t, err)
	assert.NotZero(t, gen.ID)

	gens, err := database.ListGenerations(0)
	require.NoError(t, err)
	require.Len(t, gens, 1)
	assert.Equal(t, "gnome", gens[0].CurrentProfile)
	assert.Equal(t, "kde-plasma", gens[0].TargetProfile)
	assert.Equal(t, "pacman", gens[0].Manager)
	assert.False(t, gens[0].CreatedAt.IsZero())
}

func TestGenerations_ListNewestFirst(t *testing.T) {
	database, err := db.New(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, target := range []string{"xfce4", "mate", "i3"} {
		err = database.SaveGeneration(&db.Generation{
			CurrentProfile: "gnome",
			TargetProfile:  target,
			Manager:        "yay",
			OutputPath:     "/tmp/" + target + ".sh",
			ScriptSHA256:   "cafe",
		})
		require.NoError(t, err)
	}

	gens, err := database.ListGenerations(2)
	require.NoError(t, err)
	require.Len(t, gens, 2)
	assert.Equal(t, "i3", gens[0].TargetProfile)
	assert.Equal(t, "mate", gens[1].TargetProfile)
}
