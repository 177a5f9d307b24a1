package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/jamjudge/jamjudge-api/internal/config"
	"github.com/jamjudge/jamjudge-api/internal/domain/audit"
	"github.com/jamjudge/jamjudge-api/internal/domain/criterion"
	"github.com/jamjudge/jamjudge-api/internal/domain/evaluation"
	"github.com/jamjudge/jamjudge-api/internal/domain/event"
	"github.com/jamjudge/jamjudge-api/internal/domain/project"
	"github.com/jamjudge/jamjudge-api/internal/domain/result"
	"github.com/jamjudge/jamjudge-api/internal/domain/team"
	"github.com/jamjudge/jamjudge-api/internal/infrastructure/account/introspect"
	cacherepo "github.com/jamjudge/jamjudge-api/internal/infrastructure/repository/cache"
	"github.com/jamjudge/jamjudge-api/internal/infrastructure/repository/memory"
	"github.com/jamjudge/jamjudge-api/internal/infrastructure/repository/postgres"
	"github.com/jamjudge/jamjudge-api/internal/interfaces/httpapi"
	basecache "github.com/jamjudge/jamjudge-api/internal/platform/cache"
	idgen "github.com/jamjudge/jamjudge-api/internal/platform/id"
	"github.com/jamjudge/jamjudge-api/internal/platform/resilience"
	"github.com/jamjudge/jamjudge-api/internal/usecase"
)

type repositories struct {
	events      event.Repository
	teams       team.Repository
	projects    project.Repository
	criteria    criterion.Repository
	evaluations evaluation.Repository
	results     result.Repository
	audits      audit.Repository
}

func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	generator := idgen.NewRandomGenerator()

	eventSvc := usecase.NewEventService(repos.events, repos.criteria)
	resultSvc := usecase.NewResultService(
		repos.events,
		repos.projects,
		repos.teams,
		repos.criteria,
		repos.evaluations,
		repos.results,
		repos.audits,
		generator,
		cfg.PublishMaxWorkers,
	)
	projectSvc := usecase.NewProjectService(repos.projects, repos.events, repos.audits, generator)
	evaluationSvc := usecase.NewEvaluationService(repos.evaluations, repos.projects, repos.events, repos.criteria)
	leaderboardSvc := usecase.NewLeaderboardService(
		repos.events,
		repos.projects,
		repos.teams,
		repos.criteria,
		repos.evaluations,
		repos.results,
		cfg.PublishMaxWorkers,
	)
	auditSvc := usecase.NewAuditService(repos.audits)

	verifier := introspect.NewClient(introspect.ClientConfig{
		HTTPClient:     &http.Client{Timeout: cfg.AuthTimeout},
		BaseURL:        cfg.AuthBaseURL,
		IntrospectPath: cfg.AuthIntrospectPath,
		AdminKey:       cfg.AuthAdminKey,
		TokenCacheTTL:  cfg.AuthTokenCacheTTL,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.AuthCircuitEnabled,
			FailureThreshold: cfg.AuthCircuitFailureCount,
			OpenTimeout:      cfg.AuthCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.AuthCircuitHalfOpenMaxReq,
		},
		Logger: logger,
	})

	handler := httpapi.NewHandler(eventSvc, resultSvc, projectSvc, evaluationSvc, leaderboardSvc, auditSvc, logger)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func buildRepositories(cfg config.Config, logger *slog.Logger) (repositories, error) {
	var repos repositories

	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		eventRepo := memory.NewEventRepository(memory.SeedEvents())
		repos = repositories{
			events:      eventRepo,
			teams:       memory.NewTeamRepository(memory.SeedTeams()),
			projects:    memory.NewProjectRepository(memory.SeedProjects()),
			criteria:    memory.NewCriterionRepository(memory.SeedCriteria()),
			evaluations: memory.NewEvaluationRepository(nil),
			results:     memory.NewResultRepository(eventRepo),
			audits:      memory.NewAuditRepository(),
		}
		logger.Info("store ready", "driver", cfg.StoreDriver)
	case config.StoreDriverPostgres:
		db, err := openDB(cfg)
		if err != nil {
			return repositories{}, err
		}
		if cfg.AppEnv == config.EnvDev {
			seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := postgres.BootstrapSeed(seedCtx, db); err != nil {
				return repositories{}, fmt.Errorf("bootstrap seed: %w", err)
			}
		}
		repos = repositories{
			events:      postgres.NewEventRepository(db),
			teams:       postgres.NewTeamRepository(db),
			projects:    postgres.NewProjectRepository(db),
			criteria:    postgres.NewCriterionRepository(db),
			evaluations: postgres.NewEvaluationRepository(db),
			results:     postgres.NewResultRepository(db),
			audits:      postgres.NewAuditRepository(db),
		}
		logger.Info("store ready", "driver", cfg.StoreDriver, "db", dbNameFromURL(cfg.DBURL))
	default:
		return repositories{}, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.events = cacherepo.NewEventRepository(repos.events, store)
		repos.teams = cacherepo.NewTeamRepository(repos.teams, store)
		repos.criteria = cacherepo.NewCriterionRepository(repos.criteria, store)
		repos.results = cacherepo.NewResultRepository(repos.results, store)
	}

	return repos, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dbURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}
