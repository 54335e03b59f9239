package shows

import (
	"time"

	"booking-directory/internal/repository"
	"booking-directory/internal/web"
)

// ShowForm is the form-encoded body of the create-show submission. The
// start time arrives in the datetime-local style the form emits.
type ShowForm struct {
	ArtistID  uint      `form:"artist_id" binding:"required"`
	VenueID   uint      `form:"venue_id" binding:"required"`
	StartTime time.Time `form:"start_time" binding:"required" time_format:"2006-01-02 15:04:05"`
}

func (f ShowForm) input() repository.ShowInput {
	return repository.ShowInput{
		VenueID:   f.VenueID,
		ArtistID:  f.ArtistID,
		StartTime: f.StartTime,
	}
}

type showView struct {
	VenueID         uint
	VenueName       string
	ArtistID        uint
	ArtistName      string
	ArtistImageLink string
	StartTime       string
}

func toShowViews(rows []repository.ShowRow) []showView {
	out := make([]showView, 0, len(rows))
	for _, s := range rows {
		out = append(out, showView{
			VenueID:         s.VenueID,
			VenueName:       s.VenueName,
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       web.FormatTime(s.StartTime),
		})
	}
	return out
}
