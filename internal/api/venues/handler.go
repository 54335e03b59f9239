package venues

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"booking-directory/internal/repository"
	"booking-directory/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	repo *repository.Repository
}

func NewHandler(repo *repository.Repository) *Handler {
	return &Handler{repo: repo}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.HTML(http.StatusNotFound, "404.html", gin.H{})
		return 0, false
	}
	return uint(id), true
}

// GET /venues
func (h *Handler) List(c *gin.Context) {
	areas, err := h.repo.ListVenuesGroupedByLocation()
	if err != nil {
		logrus.WithError(err).Error("Failed to list venues")
		c.HTML(http.StatusInternalServerError, "500.html", gin.H{})
		return
	}

	c.HTML(http.StatusOK, "venues.html", gin.H{
		"Areas": areas,
		"Flash": web.Flash(c),
	})
}

// POST /venues/search
func (h *Handler) Search(c *gin.Context) {
	term := c.PostForm("search_term")

	results, err := h.repo.SearchVenuesByName(term)
	if err != nil {
		logrus.WithError(err).Error("Failed to search venues")
		c.HTML(http.StatusInternalServerError, "500.html", gin.H{})
		return
	}

	c.HTML(http.StatusOK, "search_venues.html", gin.H{
		"Results":    results,
		"SearchTerm": term,
	})
}

// GET /venues/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	detail, err := h.repo.GetVenueByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		web.RedirectWithFlash(c, "/venues", "Venue not found.")
		return
	}
	if err != nil {
		logrus.WithError(err).Error("Failed to load venue")
		c.HTML(http.StatusInternalServerError, "500.html", gin.H{})
		return
	}

	c.HTML(http.StatusOK, "show_venue.html", gin.H{
		"Venue":         detail.Venue,
		"UpcomingShows": toShowViews(detail.UpcomingShows),
		"PastShows":     toShowViews(detail.PastShows),
		"Flash":         web.Flash(c),
	})
}

// GET /venues/create
func (h *Handler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "new_venue.html", gin.H{
		"Genres": web.GenreChoices(nil),
		"States": web.StateChoices(""),
	})
}

// POST /venues/create
func (h *Handler) Create(c *gin.Context) {
	var f VenueForm
	if err := c.ShouldBind(&f); err != nil {
		c.HTML(http.StatusBadRequest, "new_venue.html", gin.H{
			"Flash":  "Please fill in all required fields.",
			"Genres": web.GenreChoices(f.Genres),
			"States": web.StateChoices(f.State),
		})
		return
	}

	if _, err := h.repo.CreateVenue(f.input()); err != nil {
		logrus.WithError(err).Error("Failed to create venue")
		web.RedirectWithFlash(c, "/", "An error occurred. Venue "+f.Name+" could not be listed.")
		return
	}

	web.RedirectWithFlash(c, "/", "Venue "+f.Name+" was successfully listed!")
}

// GET /venues/:id/edit
func (h *Handler) EditForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	detail, err := h.repo.GetVenueByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		web.RedirectWithFlash(c, "/venues", "Venue not found.")
		return
	}
	if err != nil {
		logrus.WithError(err).Error("Failed to load venue for edit")
		c.HTML(http.StatusInternalServerError, "500.html", gin.H{})
		return
	}

	c.HTML(http.StatusOK, "edit_venue.html", gin.H{
		"Venue":  detail.Venue,
		"Genres": web.GenreChoices(detail.Venue.Genres),
		"States": web.StateChoices(detail.Venue.State),
	})
}

// POST /venues/:id/edit
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var f VenueForm
	if err := c.ShouldBind(&f); err != nil {
		web.RedirectWithFlash(c, fmt.Sprintf("/venues/%d/edit", id), "Please fill in all required fields.")
		return
	}

	err := h.repo.UpdateVenue(id, f.input())
	if errors.Is(err, repository.ErrNotFound) {
		web.RedirectWithFlash(c, "/venues", "Venue not found.")
		return
	}
	if err != nil {
		logrus.WithError(err).Error("Failed to update venue")
		web.RedirectWithFlash(c, fmt.Sprintf("/venues/%d", id), "An error occurred. Venue "+f.Name+" could not be updated.")
		return
	}

	web.RedirectWithFlash(c, fmt.Sprintf("/venues/%d", id), "Venue "+f.Name+" was successfully updated!")
}

// DELETE /venues/:id (reached via the POST method-override form)
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := h.repo.DeleteVenue(id)
	if errors.Is(err, repository.ErrNotFound) {
		web.RedirectWithFlash(c, "/venues", "Venue not found.")
		return
	}
	if err != nil {
		logrus.WithError(err).Error("Failed to delete venue")
		web.RedirectWithFlash(c, fmt.Sprintf("/venues/%d", id), "An error occurred. Venue could not be deleted.")
		return
	}

	web.RedirectWithFlash(c, "/", "Venue was successfully deleted!")
}
