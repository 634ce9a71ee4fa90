package http

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/artem13815/recruit/api/http/handlers"
	"github.com/artem13815/recruit/api/http/presenter"
	"github.com/artem13815/recruit/pkg/auth"
	"github.com/artem13815/recruit/pkg/security/jwt"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Health    *handlers.HealthHandler
	Resumes   *handlers.ResumesHandler
	Directory *handlers.DirectoryHandler
	Interview *handlers.InterviewHandler
	Admin     *handlers.AdminHandler
}

// NewApp builds a Fiber app with JSON error rendering and access logging.
func NewApp(log *zap.Logger, bodyLimit int) *fiber.App {
	if bodyLimit <= 0 {
		bodyLimit = fiber.DefaultBodyLimit
	}
	app := fiber.New(fiber.Config{
		AppName:      "recruit",
		BodyLimit:    bodyLimit,
		ErrorHandler: presenter.ErrorHandler(log),
	})
	app.Use(RequestLogger(log))
	return app
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, h Handlers, authMW fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", h.Auth.Register)
	a.Post("/login", h.Auth.Login)

	me := v1.Group("/me", authMW)
	me.Get("", h.Auth.Me)
	me.Put("", h.Auth.UpdateMe)
	me.Post("/password", h.Auth.ChangePassword)
	me.Post("/deactivate", h.Auth.Deactivate)
	me.Get("/stats", h.Directory.Stats)

	candidate := jwt.RequireRole(auth.RoleCandidate)
	hr := jwt.RequireRole(auth.RoleHR)

	rs := v1.Group("/resumes", authMW)
	rs.Post("", candidate, h.Resumes.Upload)
	rs.Post("/text", candidate, h.Resumes.SubmitText)
	rs.Get("", h.Resumes.List)
	rs.Get("/:id", h.Resumes.Get)
	rs.Get("/:id/file", h.Resumes.Download)
	rs.Get("/:id/analyses", h.Resumes.Analyses)
	rs.Post("/:id/reanalyze", h.Resumes.Reanalyze)

	cands := v1.Group("/candidates", authMW, hr)
	cands.Get("", h.Directory.ListCandidates)
	cands.Get("/:id", h.Directory.CandidateDetails)

	fav := v1.Group("/favorites", authMW, hr)
	fav.Get("", h.Directory.ListFavorites)
	fav.Get("/:candidateId", h.Directory.IsFavorite)
	fav.Put("/:candidateId", h.Directory.PutFavorite)
	fav.Delete("/:candidateId", h.Directory.DeleteFavorite)

	v1.Get("/analytics", authMW, hr, h.Directory.Analytics)

	iv := v1.Group("/interviews", authMW, candidate)
	iv.Post("", h.Interview.Start)
	iv.Delete("", h.Interview.Reset)
	iv.Get("/current", h.Interview.Current)
	iv.Post("/answer", h.Interview.Answer)
	iv.Post("/abort", h.Interview.Abort)
	iv.Get("/results", h.Interview.Results)
	iv.Post("/save", h.Interview.Save)
	iv.Get("/history", h.Interview.History)
	iv.Get("/history/:id", h.Interview.Record)

	adm := v1.Group("/admin", authMW, hr)
	adm.Get("/tables", h.Admin.Tables)
	adm.Get("/stats", h.Admin.Stats)
	adm.Post("/query", h.Admin.Query)
}
