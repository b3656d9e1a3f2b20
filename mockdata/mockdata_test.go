package mockdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lezzetkesif/lezzetkesif/models"
)

func TestLoadEmbeddedDataset(t *testing.T) {
	ds, err := Load()
	require.NoError(t, err)

	require.Len(t, ds.Restaurants, 5)
	assert.Equal(t, "Trilye Restaurant", ds.Restaurants[0].Name)
	assert.Equal(t, models.PriceExpensive, ds.Restaurants[0].PriceRange)
	assert.Nil(t, ds.Restaurants[0].Website)
	require.NotNil(t, ds.Restaurants[0].Phone)
	assert.Equal(t, "+903124471200", *ds.Restaurants[0].Phone)
	assert.Equal(t, 2024, ds.Restaurants[0].CreatedAt.Year())

	require.Len(t, ds.BlogPosts, 2)
	assert.True(t, ds.BlogPosts[1].Published)

	require.Len(t, ds.Reviews, 4)
	assert.Equal(t, models.ReviewRejected, ds.Reviews[3].Status)

	require.NotEmpty(t, ds.Users)
	assert.Equal(t, "test@example.com", ds.Users[0].Email)
	assert.Equal(t, "password", ds.Users[0].Password)
	assert.Equal(t, []string{"1"}, ds.Admins)
}

func TestLoadReturnsIndependentCopies(t *testing.T) {
	a, err := Load()
	require.NoError(t, err)
	b, err := Load()
	require.NoError(t, err)

	a.Restaurants[0].Name = "changed"
	assert.Equal(t, "Trilye Restaurant", b.Restaurants[0].Name)
}

func TestParseRejectsInvalidData(t *testing.T) {
	_, err := Parse([]byte("restaurants:\n  - id: \"1\"\n    rating: 7\n    price_range: $\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("reviews:\n  - id: \"1\"\n    restaurant_id: \"9\"\n    status: approved\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("restaurants: [unclosed"))
	assert.Error(t, err)
}
