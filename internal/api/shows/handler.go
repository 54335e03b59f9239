package shows

import (
	"net/http"

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

// GET /shows
func (h *Handler) List(c *gin.Context) {
	rows, err := h.repo.ListAllShows()
	if err != nil {
		logrus.WithError(err).Error("Failed to list shows")
		c.HTML(http.StatusInternalServerError, "500.html", gin.H{})
		return
	}

	c.HTML(http.StatusOK, "shows.html", gin.H{
		"Shows": toShowViews(rows),
		"Flash": web.Flash(c),
	})
}

// GET /shows/create
func (h *Handler) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "new_show.html", gin.H{})
}

// POST /shows/create
func (h *Handler) Create(c *gin.Context) {
	var f ShowForm
	if err := c.ShouldBind(&f); err != nil {
		c.HTML(http.StatusBadRequest, "new_show.html", gin.H{
			"Flash": "Please provide an artist id, a venue id and a start time.",
		})
		return
	}

	if _, err := h.repo.CreateShow(f.input()); err != nil {
		// Covers foreign-key rejection of an unknown venue or artist id.
		logrus.WithError(err).Error("Failed to create show")
		web.RedirectWithFlash(c, "/", "An error occurred. Show could not be listed.")
		return
	}

	web.RedirectWithFlash(c, "/", "Show was successfully listed!")
}
