package repository

import (
	"testing"
	"time"

	"booking-directory/internal/domain/genres"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateArtistRoundTrip(t *testing.T) {
	r := newTestRepo(t)

	id, err := r.CreateArtist(ArtistInput{
		Name:               "Guns N Petals",
		City:               "San Francisco",
		State:              "CA",
		Phone:              "326-123-5000",
		ImageLink:          "https://example.com/petals.jpg",
		FacebookLink:       "https://facebook.com/GunsNPetals",
		Website:            "https://gunsnpetalsband.com",
		Genres:             genres.List{"Rock n Roll"},
		SeekingVenue:       "y",
		SeekingDescription: "Looking for shows in the Bay Area.",
	})
	require.NoError(t, err)

	detail, err := r.GetArtistByID(id)
	require.NoError(t, err)

	assert.Equal(t, "Guns N Petals", detail.Name)
	assert.Equal(t, "326-123-5000", detail.Phone)
	assert.Equal(t, genres.List{"Rock n Roll"}, detail.Genres)
	assert.True(t, detail.SeekingVenue)
	assert.Equal(t, "Looking for shows in the Bay Area.", detail.SeekingDescription)
	assert.Empty(t, detail.UpcomingShows)
	assert.Empty(t, detail.PastShows)
}

func TestListAllArtists(t *testing.T) {
	r := newTestRepo(t)

	refs, err := r.ListAllArtists()
	require.NoError(t, err)
	assert.Empty(t, refs)

	mustCreateArtist(t, r, artistInput("The Wild Sax Band", "San Francisco", "CA"))
	mustCreateArtist(t, r, artistInput("Guns N Petals", "San Francisco", "CA"))

	refs, err = r.ListAllArtists()
	require.NoError(t, err)
	require.Len(t, refs, 2)
	assert.Equal(t, "Guns N Petals", refs[0].Name)
	assert.Equal(t, "The Wild Sax Band", refs[1].Name)
}

func TestSearchArtistsByName(t *testing.T) {
	r := newTestRepo(t)

	mustCreateArtist(t, r, artistInput("Guns N Petals", "San Francisco", "CA"))
	mustCreateArtist(t, r, artistInput("Matt Quevado", "New York", "NY"))
	mustCreateArtist(t, r, artistInput("The Wild Sax Band", "San Francisco", "CA"))

	tests := []struct {
		name  string
		term  string
		count int
	}{
		{name: "single letter substring", term: "A", count: 3},
		{name: "case-insensitive word", term: "band", count: 1},
		{name: "empty term matches all", term: "", count: 3},
		{name: "no match", term: "quartet", count: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := r.SearchArtistsByName(tt.term)
			require.NoError(t, err)
			assert.Equal(t, tt.count, res.Count)
			assert.Len(t, res.Data, tt.count)
		})
	}
}

func TestSearchArtistsCountsUpcomingShows(t *testing.T) {
	r := newTestRepo(t)

	artist := mustCreateArtist(t, r, artistInput("The Wild Sax Band", "San Francisco", "CA"))
	venue := mustCreateVenue(t, r, venueInput("Park Square", "San Francisco", "CA"))
	mustCreateShow(t, r, venue, artist, time.Now().Add(48*time.Hour))
	mustCreateShow(t, r, venue, artist, time.Now().Add(-48*time.Hour))

	res, err := r.SearchArtistsByName("sax")
	require.NoError(t, err)
	require.Equal(t, 1, res.Count)
	assert.Equal(t, 1, res.Data[0].NumUpcomingShows)
}

func TestUpdateArtistOverwritesAndPreservesID(t *testing.T) {
	r := newTestRepo(t)

	id := mustCreateArtist(t, r, ArtistInput{
		Name:         "Old Stage Name",
		City:         "Portland",
		State:        "OR",
		Genres:       genres.List{"Folk"},
		SeekingVenue: "y",
	})

	err := r.UpdateArtist(id, ArtistInput{
		Name:   "New Stage Name",
		City:   "Portland",
		State:  "OR",
		Genres: genres.List{"Folk", "Blues"},
	})
	require.NoError(t, err)

	detail, err := r.GetArtistByID(id)
	require.NoError(t, err)
	assert.Equal(t, id, detail.ID)
	assert.Equal(t, "New Stage Name", detail.Name)
	assert.Equal(t, genres.List{"Folk", "Blues"}, detail.Genres)
	assert.False(t, detail.SeekingVenue, "checkbox absent on update means false")
}

func TestGetArtistByIDNotFound(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.GetArtistByID(11)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteArtistCascadesToShows(t *testing.T) {
	r := newTestRepo(t)

	artist := mustCreateArtist(t, r, artistInput("Leaving Act", "Austin", "TX"))
	venue := mustCreateVenue(t, r, venueInput("The Dueling Pianos Bar", "Austin", "TX"))
	mustCreateShow(t, r, venue, artist, time.Now().Add(time.Hour))

	require.NoError(t, r.DeleteArtist(artist))

	_, err := r.GetArtistByID(artist)
	assert.ErrorIs(t, err, ErrNotFound)

	rows, err := r.ListAllShows()
	require.NoError(t, err)
	assert.Empty(t, rows)

	// The venue survives an artist delete.
	_, err = r.GetVenueByID(venue)
	assert.NoError(t, err)
}

func TestDeleteArtistNotFound(t *testing.T) {
	r := newTestRepo(t)

	assert.ErrorIs(t, r.DeleteArtist(404), ErrNotFound)
}
