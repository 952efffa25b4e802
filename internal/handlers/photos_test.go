package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autovista/inspect-api/internal/inspection"
	"github.com/autovista/inspect-api/internal/models"
)

func TestCollectPhotoKeys(t *testing.T) {
	state := inspection.Initialize()
	assert.Empty(t, collectPhotoKeys(state))

	var err error
	state, err = inspection.AddPhoto(state, "Brakes", "Brake pads", models.PhotoRef{Key: "inspections/a/brakes/brake-pads/1.jpg"})
	require.NoError(t, err)
	state, err = inspection.AddPhoto(state, "Brakes", "Brake pads", models.PhotoRef{Key: "inspections/a/brakes/brake-pads/2.jpg"})
	require.NoError(t, err)
	state, err = inspection.AddPhoto(state, "Engine", "Oil leaks", models.PhotoRef{Key: "inspections/a/engine/oil-leaks/1.jpg"})
	require.NoError(t, err)

	// References without a stored object contribute nothing to the cleanup
	state, err = inspection.AddPhoto(state, "Engine", "Oil leaks", models.PhotoRef{URL: "https://example.com/external.jpg"})
	require.NoError(t, err)

	keys := collectPhotoKeys(state)
	assert.ElementsMatch(t, []string{
		"inspections/a/brakes/brake-pads/1.jpg",
		"inspections/a/brakes/brake-pads/2.jpg",
		"inspections/a/engine/oil-leaks/1.jpg",
	}, keys)
}
