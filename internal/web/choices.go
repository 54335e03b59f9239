package web

import "booking-directory/internal/domain/genres"

// States are the options offered by the venue and artist form selects.
var States = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
	"OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI", "WY",
}

// Choice is one option of a form select, pre-marked for template use.
type Choice struct {
	Name     string
	Selected bool
}

// GenreChoices returns the genre options with the given ones selected.
func GenreChoices(selected []string) []Choice {
	return markChoices(genres.Choices, selected)
}

// StateChoices returns the state options with the given one selected.
func StateChoices(selected string) []Choice {
	return markChoices(States, []string{selected})
}

func markChoices(options, selected []string) []Choice {
	set := make(map[string]bool, len(selected))
	for _, s := range selected {
		set[s] = true
	}
	out := make([]Choice, 0, len(options))
	for _, o := range options {
		out = append(out, Choice{Name: o, Selected: set[o]})
	}
	return out
}
