package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"perfreview/internal/domain/assessment"
	"perfreview/internal/domain/employee"
	"perfreview/internal/domain/notifications"
	"perfreview/internal/domain/peerreview"
	"perfreview/internal/domain/performance"
	"perfreview/internal/domain/todo"
	"perfreview/internal/platform/config"
	"perfreview/internal/platform/db"
	"perfreview/internal/platform/jobs"
	"perfreview/internal/store/memory"
	"perfreview/internal/store/postgres"
	assessmenthandler "perfreview/internal/transport/http/handlers/assessment"
	notificationshandler "perfreview/internal/transport/http/handlers/notifications"
	peerreviewhandler "perfreview/internal/transport/http/handlers/peerreview"
	performancehandler "perfreview/internal/transport/http/handlers/performance"
	todoshandler "perfreview/internal/transport/http/handlers/todos"
	"perfreview/internal/transport/http/middleware"
)

type stores struct {
	employees     employee.StoreAPI
	records       performance.StoreAPI
	reviews       peerreview.StoreAPI
	cycles        assessment.StoreAPI
	notifications notifications.StoreAPI
	todos         todo.StoreAPI
}

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()

	var pool *pgxpool.Pool
	var st stores
	if cfg.DatabaseURL == "" {
		log.Println("DATABASE_URL not set, using in-memory store")
		mem := memory.New()
		seedDevRoster(mem)
		st = stores{
			employees:     mem.Employees(),
			records:       mem.Records(),
			reviews:       mem.Reviews(),
			cycles:        mem.Cycles(),
			notifications: mem.Notifications(),
			todos:         mem.Todos(),
		}
	} else {
		var err error
		pool, err = db.Connect(ctx, cfg)
		if err != nil {
			log.Fatalf("db connect failed: %v", err)
		}
		defer pool.Close()

		if cfg.RunMigrations {
			if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
				log.Fatalf("migrations failed: %v", err)
			}
		}

		pg := postgres.New(pool)
		st = stores{
			employees:     pg.Employees(),
			records:       pg.Records(),
			reviews:       pg.Reviews(),
			cycles:        pg.Cycles(),
			notifications: pg.Notifications(),
			todos:         pg.Todos(),
		}
	}

	performanceService := performance.NewService(st.records, st.employees)
	allocator := peerreview.NewAllocator(st.employees, st.reviews)
	notifier := notifications.NewService(st.notifications)
	cycleService := assessment.NewService(st.cycles, nil)
	scheduler := assessment.NewScheduler(st.cycles, st.employees, notifier, st.todos, nil)

	jobs.New(scheduler, cfg).Start(ctx)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if pool != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := pool.Ping(ctx); err != nil {
				http.Error(w, "db not ready", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.Route("/api/v1", func(r chi.Router) {
		performancehandler.NewHandler(performanceService).RegisterRoutes(r)
		peerreviewhandler.NewHandler(allocator).RegisterRoutes(r)
		assessmenthandler.NewHandler(cycleService).RegisterRoutes(r)
		notificationshandler.NewHandler(notifier).RegisterRoutes(r)
		todoshandler.NewHandler(st.todos).RegisterRoutes(r)
	})

	log.Printf("performance review server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// seedDevRoster gives the in-memory store a small roster so the API is
// usable out of the box: two departments with enough base contributors for
// peer review allocation, plus their managers and an HR owner.
func seedDevRoster(mem *memory.Store) {
	now := time.Now().UTC()
	mem.Employees().Seed(
		employee.Employee{ID: "emp-alice", Name: "Alice Wong", Department: "engineering", Role: employee.RoleEmployee, Level: employee.LevelSenior, ManagerID: "mgr-dana", Status: employee.StatusActive, CreatedAt: now},
		employee.Employee{ID: "emp-bob", Name: "Bob Araya", Department: "engineering", Role: employee.RoleEmployee, Level: employee.LevelIntermediate, ManagerID: "mgr-dana", Status: employee.StatusActive, CreatedAt: now},
		employee.Employee{ID: "emp-carol", Name: "Carol Diaz", Department: "engineering", Role: employee.RoleEmployee, Level: employee.LevelJunior, ManagerID: "mgr-dana", Status: employee.StatusActive, CreatedAt: now},
		employee.Employee{ID: "mgr-dana", Name: "Dana Petrov", Department: "engineering", Role: employee.RoleManager, Level: employee.LevelSenior, Status: employee.StatusActive, CreatedAt: now},
		employee.Employee{ID: "emp-erik", Name: "Erik Sato", Department: "design", Role: employee.RoleEmployee, Level: employee.LevelIntermediate, ManagerID: "mgr-fay", Status: employee.StatusActive, CreatedAt: now},
		employee.Employee{ID: "emp-gita", Name: "Gita Rao", Department: "design", Role: employee.RoleEmployee, Level: employee.LevelJunior, ManagerID: "mgr-fay", Status: employee.StatusActive, CreatedAt: now},
		employee.Employee{ID: "mgr-fay", Name: "Fay Lindqvist", Department: "design", Role: employee.RoleManager, Level: employee.LevelSenior, Status: employee.StatusActive, CreatedAt: now},
		employee.Employee{ID: "hr-hugo", Name: "Hugo Mensah", Department: "people", Role: employee.RoleHR, Level: employee.LevelSenior, Status: employee.StatusActive, CreatedAt: now},
	)
	log.Println("seeded development roster into in-memory store")
}
