package main

import (
	"context"
	"fmt"
	"time"

	swagger "github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/artem13815/recruit/docs"

	httpapi "github.com/artem13815/recruit/api/http"
	"github.com/artem13815/recruit/api/http/handlers"
	"github.com/artem13815/recruit/pkg/admin"
	"github.com/artem13815/recruit/pkg/auth"
	"github.com/artem13815/recruit/pkg/classifier"
	"github.com/artem13815/recruit/pkg/directory"
	"github.com/artem13815/recruit/pkg/health"
	"github.com/artem13815/recruit/pkg/health/checkers"
	"github.com/artem13815/recruit/pkg/interview"
	"github.com/artem13815/recruit/pkg/llm/openrouter"
	pgrepo "github.com/artem13815/recruit/pkg/repository/postgres"
	"github.com/artem13815/recruit/pkg/resume"
	"github.com/artem13815/recruit/pkg/security/jwt"
	"github.com/artem13815/recruit/pkg/storage/postgres"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Apply migrations and start the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		e, err := setup(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer e.close()
		return serve(cmd.Context(), e)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// services is the wired domain layer shared by serve and seed.
type services struct {
	users      *pgrepo.UserRepository
	auth       auth.AuthUseCase
	resumes    resume.UseCase
	directory  directory.UseCase
	interviews interview.UseCase
	console    *admin.Console
	redis      *redis.Client
}

func (s *services) close() {
	if s.redis != nil {
		_ = s.redis.Close()
	}
}

func wire(e *env) (*services, error) {
	cfg, log := e.cfg, e.log

	rules := classifier.DefaultRules()
	if cfg.ClassifierRulesFile != "" {
		var err error
		if rules, err = classifier.LoadRulesFile(cfg.ClassifierRulesFile); err != nil {
			return nil, err
		}
	}
	seed := cfg.ClassifierSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	llmClient := openrouter.New(openrouter.Options{
		APIKey:   cfg.OpenRouterAPIKey,
		BaseURL:  cfg.OpenRouterBase,
		Model:    cfg.OpenRouterModel,
		AppTitle: cfg.OpenRouterAppTitle,
		Referer:  cfg.OpenRouterReferer,
	})
	opts := classifier.Options{Mode: cfg.Analyzer, Rules: rules, Seed: seed}
	if llmClient.Configured() {
		opts.Model = llmClient
	} else if cfg.Analyzer == classifier.EngineRemote {
		log.Warn("OPENROUTER_API_KEY is empty, using heuristic analyzer")
	}
	analyzer := classifier.New(opts, log.Named("classifier"))

	s := &services{users: pgrepo.NewUserRepository(e.pool)}
	var sessions interview.SessionStore = interview.NewMemoryStore()
	if cfg.RedisURL != "" {
		ropts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("parse REDIS_URL: %w", err)
		}
		s.redis = redis.NewClient(ropts)
		sessions = interview.NewRedisStore(s.redis, time.Duration(cfg.SessionTTLMinutes)*time.Minute)
	} else {
		log.Info("REDIS_URL is empty, interview sessions are kept in memory")
	}

	resumeRepo := pgrepo.NewResumeRepository(e.pool)
	interviewRepo := pgrepo.NewInterviewRepository(e.pool)
	tokens := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTLMinutes)*time.Minute)

	s.auth = auth.NewAuthService(s.users, tokens, log.Named("auth"))
	s.resumes = resume.NewService(resumeRepo, analyzer, cfg.MaxUploadBytes, log.Named("resume"))
	s.directory = directory.NewService(pgrepo.NewDirectoryRepository(e.pool), resumeRepo, interviewRepo, log.Named("directory"))
	s.interviews = interview.NewService(sessions, interviewRepo, resumeRepo, interview.HeuristicEvaluator{},
		interview.DefaultBank(), seed, log.Named("interview"))
	s.console = admin.NewConsole(pgrepo.NewAdminExecutor(e.pool), 1000, log.Named("admin"))
	return s, nil
}

func serve(ctx context.Context, e *env) error {
	if err := postgres.Migrate(ctx, e.pool, e.log); err != nil {
		return err
	}
	s, err := wire(e)
	if err != nil {
		return err
	}
	defer s.close()

	probes := []health.Checker{checkers.NewPostgresChecker(e.pool)}
	if s.redis != nil {
		probes = append(probes, checkers.NewRedisChecker(s.redis))
	}

	// multipart overhead on top of the file itself
	app := httpapi.NewApp(e.log.Named("http"), int(e.cfg.MaxUploadBytes)+1<<20)
	httpapi.Register(app, httpapi.Handlers{
		Auth:      handlers.NewAuthHandler(s.auth, e.log),
		Health:    handlers.NewHealthHandler(health.NewService(probes...)),
		Resumes:   handlers.NewResumesHandler(s.resumes, e.cfg.MaxUploadBytes, e.log),
		Directory: handlers.NewDirectoryHandler(s.directory, e.log),
		Interview: handlers.NewInterviewHandler(s.interviews, e.log),
		Admin:     handlers.NewAdminHandler(s.console, e.log),
	}, jwt.NewActiveAuthMiddleware(e.cfg.JWTSecret, e.cfg.JWTIssuer, s.users))

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	go func() {
		<-ctx.Done()
		e.log.Info("shutting down")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	e.log.Info("HTTP server listening", zap.String("port", e.cfg.Port), zap.String("analyzer", e.cfg.Analyzer))
	return app.Listen(":" + e.cfg.Port)
}
