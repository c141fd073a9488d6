package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shub-dev/portfolio/internal/assets"
	"github.com/shub-dev/portfolio/internal/certgrid"
)

// gridView is what the certification grid fragment renders.
type gridView struct {
	certgrid.View
	PageSize int
	Fallback string
}

func (a *app) newGridView(v certgrid.View) gridView {
	return gridView{View: v, PageSize: certgrid.PageSize, Fallback: a.cfg.FallbackImageURL}
}

func (a *app) setupCertificationRoutes(r *gin.Engine) {
	// Filter bar and Load More both swap this fragment.
	r.GET("/certifications", func(c *gin.Context) {
		f := certgrid.ParseFilter(c.Query("category"), c.Query("expanded"))
		view := certgrid.Build(a.currentCatalog().Certificates(), f)
		c.HTML(http.StatusOK, "certifications-grid.html", a.newGridView(view))
	})

	r.GET("/certifications/view", func(c *gin.Context) {
		rec, ok := a.currentCatalog().Lookup(c.Query("path"))
		if !ok || rec.Kind != assets.KindCertificate {
			a.renderFragmentError(c, http.StatusNotFound, "Certificate not found.")
			return
		}
		c.HTML(http.StatusOK, "certification-modal.html", gin.H{
			"Record":   rec,
			"Meta":     rec.Meta(),
			"Fallback": a.cfg.FallbackImageURL,
		})
	})

	r.GET("/certifications/patent", func(c *gin.Context) {
		c.HTML(http.StatusOK, "patent-modal.html", PatentInfo)
	})
}
