package models

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRestaurantRequestDefaults(t *testing.T) {
	req := &CreateRestaurantRequest{Name: "  Yeni Mekan  "}
	require.NoError(t, req.Validate())

	r := req.Build()
	assert.Equal(t, "Yeni Mekan", r.Name)
	assert.Equal(t, PriceBudget, r.PriceRange)
	assert.Zero(t, r.Rating)
	assert.Zero(t, r.Latitude)
	assert.Zero(t, r.Longitude)
	assert.Nil(t, r.Description)
}

func TestCreateRestaurantRequestRejectsInvariantViolations(t *testing.T) {
	bad := 5.5
	cases := map[string]*CreateRestaurantRequest{
		"empty name":  {Name: " "},
		"bad price":   {Name: "x", PriceRange: "$$$$$"},
		"rating high": {Name: "x", Rating: &bad},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, req.Validate())
		})
	}
}

func TestUpdateRestaurantRequestApplyTo(t *testing.T) {
	desc := "Eski"
	r := &Restaurant{ID: "1", Name: "Aspava", Description: &desc, PriceRange: PriceModerate}

	name := "Aspava Esat"
	empty := ""
	req := &UpdateRestaurantRequest{Name: &name, Description: &empty}
	require.NoError(t, req.Validate())
	req.ApplyTo(r)

	assert.Equal(t, "1", r.ID)
	assert.Equal(t, "Aspava Esat", r.Name)
	assert.Nil(t, r.Description)
	assert.Equal(t, PriceModerate, r.PriceRange)
}

func TestUserName(t *testing.T) {
	dn := "Test User"
	assert.Equal(t, "Test User", (&User{Email: "a@b.co", DisplayName: &dn}).Name())
	assert.Equal(t, "a@b.co", (&User{Email: "a@b.co"}).Name())
	assert.Equal(t, "Anonim", (&User{}).Name())

	var nilUser *User
	assert.Equal(t, "Anonim", nilUser.Name())
}

func TestSignUpRequestValidate(t *testing.T) {
	req := &SignUpRequest{Email: " Test@Example.com ", Password: "secret"}
	require.NoError(t, req.Validate())
	assert.Equal(t, "test@example.com", req.Email)

	assert.Error(t, (&SignUpRequest{Email: "nope", Password: "secret"}).Validate())
	assert.Error(t, (&SignUpRequest{Email: "a@b.co", Password: "123"}).Validate())
}

func TestSummarizeCountsApprovedOnly(t *testing.T) {
	s := Summarize([]Review{
		{Rating: 4, Status: ReviewApproved},
		{Rating: 5, Status: ReviewApproved},
		{Rating: 1, Status: ReviewRejected},
		{Rating: 2, Status: ReviewPending},
	})
	assert.Equal(t, 2, s.Count)
	assert.InDelta(t, 4.5, s.Average, 0.001)

	assert.Equal(t, ReviewSummary{}, Summarize(nil))
}

func TestBlogPostReadingMinutes(t *testing.T) {
	assert.Equal(t, 1, (&BlogPost{Content: ""}).ReadingMinutes())
	assert.Equal(t, 1, (&BlogPost{Content: "kısa bir yazı"}).ReadingMinutes())

	words := make([]byte, 0, 401*2)
	for i := 0; i < 401; i++ {
		words = append(words, 'a', ' ')
	}
	assert.Equal(t, 3, (&BlogPost{Content: string(words)}).ReadingMinutes())
}

func TestParseFilterCriteria(t *testing.T) {
	q := url.Values{
		"q":          {" pizza "},
		"cuisine":    {"Kebap"},
		"min_rating": {"4"},
		"price":      {"$$"},
	}
	c := ParseFilterCriteria(q)
	assert.Equal(t, FilterCriteria{SearchQuery: "pizza", CuisineType: "Kebap", MinRating: 4, PriceRange: PriceModerate}, c)
	assert.Equal(t, q.Get("cuisine"), c.Values().Get("cuisine"))

	c = ParseFilterCriteria(url.Values{"min_rating": {"abc"}, "price": {"€"}})
	assert.True(t, c.IsZero())
}
