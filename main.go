package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"net/smtp"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/shub-dev/portfolio/internal/assets"
	"github.com/shub-dev/portfolio/internal/carousel"
	"github.com/shub-dev/portfolio/internal/certgrid"
	"github.com/shub-dev/portfolio/internal/config"
	"github.com/shub-dev/portfolio/internal/logging"
	"github.com/shub-dev/portfolio/internal/storage"
	"github.com/shub-dev/portfolio/internal/watch"
)

//go:embed templates/*.html
var templateFS embed.FS

func main() {
	cmd := newRootCommand()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		exitf("Error: %v", err)
	}
}

// exitf writes a formatted error message to stderr and exits with code 1.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// cliEnv is filled in by the root command before any subcommand runs.
type cliEnv struct {
	cfg    *config.Config
	logger *zap.Logger
}

func newRootCommand() *cobra.Command {
	env := &cliEnv{}
	var verbose bool

	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Personal portfolio site",
		Long:          "Serves the portfolio page and manages its gallery and certificate assets.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if verbose {
				cfg.LogLevel = "debug"
			}
			logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			env.cfg, env.logger = cfg, logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if env.logger != nil {
				_ = env.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), env, false)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newServeCommand(env),
		newAssetsCommand(env),
		newUploadCommand(env),
		newBuildCommand(env),
	)
	return root
}

func newServeCommand(env *cliEnv) *cobra.Command {
	var watchAssets bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio page",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), env, watchAssets)
		},
	}
	cmd.Flags().BoolVar(&watchAssets, "watch", false, "Rebuild the asset catalog when files change")
	return cmd
}

// app holds everything the handlers share. The catalog pointer is swapped
// whole when assets are rediscovered; a catalog itself never changes.
type app struct {
	cfg       *config.Config
	logger    *zap.Logger
	ledger    *storage.Store
	catalog   atomic.Pointer[assets.Catalog]
	carousels *carousel.Registry[assets.Record]
	templates *template.Template
	sendMail  func(cfg config.SMTPConfig, to, name, email, message string) error
}

func newApp(cfg *config.Config, logger *zap.Logger, ledger *storage.Store) (*app, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	a := &app{
		cfg:    cfg,
		logger: logger,
		ledger: ledger,
		carousels: carousel.NewRegistry[assets.Record](cfg.Carousel.Interval, carousel.Options{
			WheelInterval:      cfg.Carousel.WheelInterval,
			ScrollFlagDuration: cfg.Carousel.ScrollFlag,
		}),
		templates: tmpl,
		sendMail:  sendContactEmail,
	}
	a.carousels.SetLimit(cfg.Carousel.MaxSessions)
	a.catalog.Store(assets.NewCatalog(assets.Sources{}))
	return a, nil
}

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"pad2":  func(n int) string { return fmt.Sprintf("%02d", n) },
		"inc":   func(n int) int { return n + 1 },
		"lower": strings.ToLower,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

func (a *app) currentCatalog() *assets.Catalog { return a.catalog.Load() }

// reloadCatalog rediscovers the asset trees. On failure the previous catalog
// stays in place.
func (a *app) reloadCatalog(ctx context.Context) {
	var resolver assets.Resolver = assets.PrefixResolver{Base: a.cfg.AssetsURL}
	if a.ledger != nil {
		overrides, err := a.ledger.Overrides(ctx, a.cfg.AssetsDir)
		if err != nil {
			a.logger.Warn("Could not read upload ledger", zap.Error(err))
		} else if len(overrides) > 0 {
			resolver = assets.OverlayResolver{Overrides: overrides, Fallback: resolver}
		}
	}

	catalog, err := assets.Load(os.DirFS(a.cfg.AssetsDir), resolver)
	if err != nil {
		a.logger.Error("Failed to load assets", zap.String("dir", a.cfg.AssetsDir), zap.Error(err))
		return
	}
	a.catalog.Store(catalog)
	a.logger.Info("Asset catalog loaded",
		zap.String("dir", a.cfg.AssetsDir),
		zap.Int("gallery", len(catalog.Gallery())),
		zap.Int("certificates", len(catalog.Certificates())))
}

func runServe(ctx context.Context, env *cliEnv, watchAssets bool) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, logger := env.cfg, env.logger

	// The ledger only improves asset URLs; the page renders without it.
	ledger, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		logger.Warn("Upload ledger unavailable", zap.String("path", cfg.DBPath), zap.Error(err))
		ledger = nil
	} else {
		defer ledger.Close()
	}

	a, err := newApp(cfg, logger, ledger)
	if err != nil {
		return err
	}
	defer a.carousels.Close()
	a.reloadCatalog(ctx)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           a.router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		return a.carousels.Janitor(gctx, time.Minute, cfg.Carousel.SessionTTL, func(n int) {
			logger.Debug("Pruned idle gallery sessions", zap.Int("count", n))
		})
	})
	if watchAssets || cfg.Watch {
		g.Go(func() error {
			w := &watch.Watcher{
				Root:     cfg.AssetsDir,
				OnChange: func() { a.reloadCatalog(gctx) },
				Logger:   logger,
			}
			if err := w.Run(gctx); err != nil {
				logger.Warn("Asset watcher stopped", zap.Error(err))
			}
			return nil
		})
	}

	return g.Wait()
}

func (a *app) router() *gin.Engine {
	r := gin.New()
	r.Use(logging.GinMiddleware(a.logger), gin.Recovery())
	r.SetHTMLTemplate(a.templates)

	if strings.HasPrefix(a.cfg.AssetsURL, "/") {
		r.Static(a.cfg.AssetsURL, a.cfg.AssetsDir)
	}
	if a.cfg.Upload.Endpoint == "" {
		r.Static("/uploads", a.cfg.Upload.Dir)
	}

	// Home page route
	r.GET("/", a.handleIndex)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// HTMX Contact form endpoint - returns just the form HTML
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"title": "Contact Me",
		})
	})

	// Handle contact form submission with HTMX
	r.POST("/contact", a.handleContact)

	a.setupGalleryRoutes(r)
	a.setupCertificationRoutes(r)
	a.setupInventoryRoutes(r)
	return r
}

type pageData struct {
	Hero            Hero
	About           string
	SkillCategories []SkillCategory
	TopSkills       []Skill
	Projects        []Project
	Experiences     []Experience
	SoftSkills      []Skill
	Patent          Patent
	Carousel        carouselView
	Gallery         []assets.Record
	Grid            gridView
	TotalAwards     int
	Fallback        string
	Year            int
}

func (a *app) pageData(ctrl *carousel.Controller[assets.Record]) pageData {
	catalog := a.currentCatalog()
	certs := catalog.Certificates()
	return pageData{
		Hero:            HeroContent,
		About:           AboutMe,
		SkillCategories: SkillCategories,
		TopSkills:       TopSkills,
		Projects:        Projects,
		Experiences:     Experiences,
		SoftSkills:      SoftSkills,
		Patent:          PatentInfo,
		Carousel:        a.newCarouselView(ctrl),
		Gallery:         catalog.Gallery(),
		Grid:            a.newGridView(certgrid.Build(certs, certgrid.Filter{Category: certgrid.All})),
		TotalAwards:     len(certs) + 1,
		Fallback:        a.cfg.FallbackImageURL,
		Year:            time.Now().Year(),
	}
}

// handleIndex renders the full page. Loading the page mounts a fresh
// carousel for the visitor, starting again at the first slide.
func (a *app) handleIndex(c *gin.Context) {
	id := a.gallerySession(c)
	ctrl := a.carousels.Mount(id, a.currentCatalog().Gallery())
	c.HTML(http.StatusOK, "index.html", a.pageData(ctrl))
}

// renderStatic writes the page with a carousel that is not attached to any
// session.
func (a *app) renderStatic(w io.Writer) error {
	ctrl := a.detachedCarousel()
	return a.templates.ExecuteTemplate(w, "index.html", a.pageData(ctrl))
}

func (a *app) handleContact(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("fullName"))
	email := strings.TrimSpace(c.PostForm("email"))
	message := strings.TrimSpace(c.PostForm("message"))

	if name == "" || email == "" || message == "" {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Please fill in your name, email and message.",
		})
		return
	}

	// Send email
	err := a.sendMail(a.cfg.SMTP, a.cfg.ContactEmail, name, email, message)
	if err != nil {
		a.logger.Error("Error sending email", zap.Error(err))
		// Return error message HTML fragment
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	a.logger.Info("Contact email sent", zap.String("name", name))
	// Return success message HTML fragment
	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}

func sendContactEmail(cfg config.SMTPConfig, toEmail, name, email, message string) error {
	if !cfg.Configured() {
		return fmt.Errorf("SMTP credentials not configured")
	}

	subject := fmt.Sprintf("Portfolio Contact: %s", name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, name, email, message)

	msg := []byte("To: " + toEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + cfg.User + "\r\n" +
		"Reply-To: " + email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", cfg.User, cfg.Pass, cfg.Host)
	if err := smtp.SendMail(cfg.Host+":"+cfg.Port, auth, cfg.User, []string{toEmail}, msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
