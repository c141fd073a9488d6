package main

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shub-dev/portfolio/internal/assets"
	"github.com/shub-dev/portfolio/internal/carousel"
)

const gallerySessionCookie = "gallery_session"

// carouselView is what the carousel fragment renders.
type carouselView struct {
	State       carousel.State[assets.Record]
	Items       []assets.Record
	Empty       bool
	Fallback    string
	PollSeconds int
}

func (a *app) newCarouselView(ctrl *carousel.Controller[assets.Record]) carouselView {
	v := carouselView{
		Items:       ctrl.Items(),
		Fallback:    a.cfg.FallbackImageURL,
		PollSeconds: int(a.cfg.Carousel.Interval.Seconds()),
	}
	state, ok := ctrl.Snapshot()
	v.State, v.Empty = state, !ok
	if v.PollSeconds < 1 {
		v.PollSeconds = 1
	}
	return v
}

// gallerySession returns the visitor's carousel session id, issuing a new
// cookie when the request has none or an invalid one.
func (a *app) gallerySession(c *gin.Context) string {
	if id, err := c.Cookie(gallerySessionCookie); err == nil {
		if _, err := uuid.Parse(id); err == nil {
			return id
		}
	}
	id := uuid.NewString()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(gallerySessionCookie, id, 0, "/", "", false, true)
	return id
}

// galleryController returns the visitor's carousel, mounting one over the
// current catalog when none is live. Only the page itself issues session
// cookies; a request without one gets a detached first frame.
func (a *app) galleryController(c *gin.Context) *carousel.Controller[assets.Record] {
	id, err := c.Cookie(gallerySessionCookie)
	if err != nil {
		return a.detachedCarousel()
	}
	if _, err := uuid.Parse(id); err != nil {
		return a.detachedCarousel()
	}
	return a.carousels.Acquire(id, a.currentCatalog().Gallery)
}

func (a *app) detachedCarousel() *carousel.Controller[assets.Record] {
	return carousel.New(a.currentCatalog().Gallery(), carousel.Options{
		WheelInterval:      a.cfg.Carousel.WheelInterval,
		ScrollFlagDuration: a.cfg.Carousel.ScrollFlag,
	})
}

func (a *app) renderCarousel(c *gin.Context, ctrl *carousel.Controller[assets.Record]) {
	c.HTML(http.StatusOK, "gallery-carousel.html", a.newCarouselView(ctrl))
}

func (a *app) setupGalleryRoutes(r *gin.Engine) {
	g := r.Group("/gallery")

	// Current frame; the page polls this to follow auto-advance.
	g.GET("/carousel", func(c *gin.Context) {
		a.renderCarousel(c, a.galleryController(c))
	})

	g.POST("/next", func(c *gin.Context) {
		ctrl := a.galleryController(c)
		ctrl.Next()
		a.renderCarousel(c, ctrl)
	})

	g.POST("/prev", func(c *gin.Context) {
		ctrl := a.galleryController(c)
		ctrl.Previous()
		a.renderCarousel(c, ctrl)
	})

	g.POST("/select/:index", func(c *gin.Context) {
		ctrl := a.galleryController(c)
		j, err := strconv.Atoi(c.Param("index"))
		if err != nil || !ctrl.Select(j) {
			a.logger.Debug("Ignoring carousel selection", zap.String("index", c.Param("index")))
		}
		a.renderCarousel(c, ctrl)
	})

	g.POST("/wheel", func(c *gin.Context) {
		ctrl := a.galleryController(c)
		accepted := false
		if delta, err := strconv.ParseFloat(c.Query("delta"), 64); err == nil {
			accepted = ctrl.Wheel(carousel.DirectionFromDelta(delta))
		}
		c.Header("X-Wheel-Accepted", strconv.FormatBool(accepted))
		a.renderCarousel(c, ctrl)
	})

	// The page calls this when the carousel leaves the DOM; it stops the
	// session's timer.
	g.POST("/unmount", func(c *gin.Context) {
		if id, err := c.Cookie(gallerySessionCookie); err == nil {
			a.carousels.Unmount(id)
		}
		c.Status(http.StatusNoContent)
	})

	g.GET("/lightbox/:index", func(c *gin.Context) {
		gallery := a.currentCatalog().Gallery()
		i, err := strconv.Atoi(c.Param("index"))
		if err != nil || i < 0 || i >= len(gallery) {
			a.renderFragmentError(c, http.StatusNotFound, "That image is no longer in the gallery.")
			return
		}
		c.HTML(http.StatusOK, "gallery-lightbox.html", gin.H{
			"Item":     gallery[i],
			"Index":    i,
			"Len":      len(gallery),
			"Fallback": a.cfg.FallbackImageURL,
		})
	})
}

func (a *app) renderFragmentError(c *gin.Context, status int, message string) {
	c.HTML(status, "fragment-error.html", gin.H{"error": message})
}
