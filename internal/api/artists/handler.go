package artists

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

// GET /artists
func (h *Handler) List(c *gin.Context) {
	refs, err := h.repo.ListAllArtists()
	if err != nil {
		logrus.WithError(err).Error("Failed to list artists")
		c.HTML(http.StatusInternalServerError, "500.html", gin.H{})
		return
	}

	c.HTML(http.StatusOK, "artists.html", gin.H{
		"Artists": refs,
		"Flash":   web.Flash(c),
	})
}

// POST /artists/search
func (h *Handler) Search(c *gin.Context) {
	term := c.PostForm("search_term")

	results, err := h.repo.SearchArtistsByName(term)
	if err != nil {
		logrus.WithError(err).Error("Failed to search artists")
		c.HTML(http.StatusInternalServerError, "500.html", gin.H{})
		return
	}

	c.HTML(http.StatusOK, "search_artists.html", gin.H{
		"Results":    results,
		"SearchTerm": term,
	})
}

// GET /artists/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	detail, err := h.repo.GetArtistByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		web.RedirectWithFlash(c, "/artists", "Artist not found.")
		return
	}
	if err != nil {
		logrus.WithError(err).Error("Failed to load artist")
		c.HTML(http.StatusInternalServerError, "500.html", gin.H{})
		return
	}

	c.HTML(http.StatusOK, "show_artist.html", gin.H{
		"Artist":        detail.Artist,
		"UpcomingShows": toShowViews(detail.UpcomingShows),
		"PastShows":     toShowViews(detail.PastShows),
		"Flash":         web.Flash(c),
	})
}

// GET /artists/create
func (h *Handler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "new_artist.html", gin.H{
		"Genres": web.GenreChoices(nil),
		"States": web.StateChoices(""),
	})
}

// POST /artists/create
func (h *Handler) Create(c *gin.Context) {
	var f ArtistForm
	if err := c.ShouldBind(&f); err != nil {
		c.HTML(http.StatusBadRequest, "new_artist.html", gin.H{
			"Flash":  "Please fill in all required fields.",
			"Genres": web.GenreChoices(f.Genres),
			"States": web.StateChoices(f.State),
		})
		return
	}

	if _, err := h.repo.CreateArtist(f.input()); err != nil {
		logrus.WithError(err).Error("Failed to create artist")
		web.RedirectWithFlash(c, "/", "An error occurred. Artist "+f.Name+" could not be listed.")
		return
	}

	web.RedirectWithFlash(c, "/", "Artist "+f.Name+" was successfully listed!")
}

// GET /artists/:id/edit
func (h *Handler) EditForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	detail, err := h.repo.GetArtistByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		web.RedirectWithFlash(c, "/artists", "Artist not found.")
		return
	}
	if err != nil {
		logrus.WithError(err).Error("Failed to load artist for edit")
		c.HTML(http.StatusInternalServerError, "500.html", gin.H{})
		return
	}

	c.HTML(http.StatusOK, "edit_artist.html", gin.H{
		"Artist": detail.Artist,
		"Genres": web.GenreChoices(detail.Artist.Genres),
		"States": web.StateChoices(detail.Artist.State),
	})
}

// POST /artists/:id/edit
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var f ArtistForm
	if err := c.ShouldBind(&f); err != nil {
		web.RedirectWithFlash(c, fmt.Sprintf("/artists/%d/edit", id), "Please fill in all required fields.")
		return
	}

	err := h.repo.UpdateArtist(id, f.input())
	if errors.Is(err, repository.ErrNotFound) {
		web.RedirectWithFlash(c, "/artists", "Artist not found.")
		return
	}
	if err != nil {
		logrus.WithError(err).Error("Failed to update artist")
		web.RedirectWithFlash(c, fmt.Sprintf("/artists/%d", id), "An error occurred. Artist "+f.Name+" could not be updated.")
		return
	}

	web.RedirectWithFlash(c, fmt.Sprintf("/artists/%d", id), "Artist "+f.Name+" was successfully updated!")
}

// DELETE /artists/:id (reached via the POST method-override form)
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := h.repo.DeleteArtist(id)
	if errors.Is(err, repository.ErrNotFound) {
		web.RedirectWithFlash(c, "/artists", "Artist not found.")
		return
	}
	if err != nil {
		logrus.WithError(err).Error("Failed to delete artist")
		web.RedirectWithFlash(c, fmt.Sprintf("/artists/%d", id), "An error occurred. Artist could not be deleted.")
		return
	}

	web.RedirectWithFlash(c, "/", "Artist was successfully deleted!")
}
