package router

import (
	"database/sql"
	"net/http"

	_ "infusion-rate-calculator/docs"
	mem "infusion-rate-calculator/internal/adapters/storage/memory"
	pg "infusion-rate-calculator/internal/adapters/storage/postgres"
	"infusion-rate-calculator/internal/domain/drugs"
	"infusion-rate-calculator/internal/domain/reference"
	"infusion-rate-calculator/internal/middleware"
	"infusion-rate-calculator/internal/platform/logger"
	"infusion-rate-calculator/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: repo ya armado (p.ej. memoria con formulario YAML recargable).
	Drugs drugs.Repository

	// Opcional: si viene y Drugs es nil, el catálogo sale de Postgres. Si no, tabla embebida.
	DB *sql.DB

	Logger  logger.Logger    // nil => descarta logs
	Metrics *metrics.Metrics // nil => se crea uno propio

	AllowedOrigins []string // nil => "*"
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var drugRepo drugs.Repository
	switch {
	case opts.Drugs != nil:
		drugRepo = opts.Drugs
	case opts.DB != nil:
		drugRepo = pg.NewDrugsRepo(opts.DB)
	default:
		drugRepo = mem.NewDrugsRepo(drugs.Builtin())
	}

	drugsSvc := drugs.NewService(drugRepo, log, m)

	drugs.RegisterRoutes(r, drugsSvc)
	reference.RegisterRoutes(r, reference.Default())

	return r
}
