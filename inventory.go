package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shub-dev/portfolio/internal/assets"
	"github.com/shub-dev/portfolio/internal/storage"
)

type CategoryCount struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// InventoryStats summarizes what the page is currently showing.
type InventoryStats struct {
	GalleryImages  int              `json:"gallery_images"`
	Certificates   int              `json:"certificates"`
	PDFs           int              `json:"pdfs"`
	TotalAwards    int              `json:"total_awards"`
	Categories     []CategoryCount  `json:"categories"`
	Uploads        int64            `json:"uploads"`
	RecentUploads  []storage.Upload `json:"recent_uploads"`
	GeneratedAt    time.Time        `json:"generated_at"`
	LedgerAttached bool             `json:"ledger_attached"`
}

// inventoryStats counts the catalog and, when the upload ledger is open,
// its entries. The filed patent counts towards total awards.
func (a *app) inventoryStats(ctx context.Context) (*InventoryStats, error) {
	catalog := a.currentCatalog()
	certs := catalog.Certificates()
	stats := &InventoryStats{
		GalleryImages: len(catalog.Gallery()),
		Certificates:  len(certs),
		TotalAwards:   len(certs) + 1,
		GeneratedAt:   time.Now().UTC(),
	}
	for _, r := range certs {
		if r.IsPDF() {
			stats.PDFs++
		}
	}

	counts := catalog.CountByCategory()
	for _, c := range assets.Categories {
		if counts[c] == 0 {
			continue
		}
		stats.Categories = append(stats.Categories, CategoryCount{
			Key:   c.String(),
			Label: c.Meta().Label,
			Count: counts[c],
		})
	}

	if a.ledger == nil {
		return stats, nil
	}
	stats.LedgerAttached = true
	n, err := a.ledger.CountUploads(ctx)
	if err != nil {
		return nil, err
	}
	stats.Uploads = n
	recent, err := a.ledger.ListUploads(ctx, 10)
	if err != nil {
		return nil, err
	}
	stats.RecentUploads = recent
	return stats, nil
}

func (a *app) setupInventoryRoutes(r *gin.Engine) {
	r.GET("/api/stats", func(c *gin.Context) {
		stats, err := a.inventoryStats(c.Request.Context())
		if err != nil {
			a.logger.Error("Error loading stats", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load statistics"})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	// Statistics export (for backups or analysis)
	r.GET("/export/stats", func(c *gin.Context) {
		stats, err := a.inventoryStats(c.Request.Context())
		if err != nil {
			a.logger.Error("Error exporting stats", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load statistics"})
			return
		}

		// Set headers for file download
		filename := fmt.Sprintf("portfolio-stats-%s.json", stats.GeneratedAt.Format("2006-01-02"))
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.IndentedJSON(http.StatusOK, stats)
	})

	r.GET("/api/assets", func(c *gin.Context) {
		catalog := a.currentCatalog()
		c.JSON(http.StatusOK, gin.H{
			"gallery":      catalog.Gallery(),
			"certificates": catalog.Certificates(),
		})
	})
}
