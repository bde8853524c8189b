package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/thejurists/site-api/internal/api"
	"github.com/thejurists/site-api/internal/api/handler"
	"github.com/thejurists/site-api/internal/api/metrics"
	"github.com/thejurists/site-api/internal/core/ports"
	"github.com/thejurists/site-api/internal/core/service"
	"github.com/thejurists/site-api/internal/infrastructure/db/memory"
	mongodb "github.com/thejurists/site-api/internal/infrastructure/db/mongo"
	redisdb "github.com/thejurists/site-api/internal/infrastructure/db/redis"
	"github.com/thejurists/site-api/internal/infrastructure/notify"
	"github.com/thejurists/site-api/internal/infrastructure/queue"
	"github.com/thejurists/site-api/internal/infrastructure/seed"
	"github.com/thejurists/site-api/internal/pkg/config"
	"github.com/thejurists/site-api/internal/policy"
	"github.com/thejurists/site-api/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

// stores are the repositories behind the application services.
type stores struct {
	access   ports.AccessControlRepository
	profiles ports.ProfileRepository
	leads    ports.ContactSubmissionRepository
	content  service.ContentRepositories
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  `Starts the HTTP API, the lead notification workers and, when configured, the MongoDB store and Redis lead throttle.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		ready := map[string]handler.Pinger{}

		// Stores
		st, closeStores, err := openStores(ctx, ready)
		if err != nil {
			return err
		}
		defer closeStores()

		catalog, err := seed.Load(cfg.SeedFile)
		if err != nil {
			return err
		}
		if err := seed.Apply(ctx, catalog, seed.Stores{
			Services: st.content.Services,
			Blog:     st.content.Blog,
			Listings: st.content.Listings,
		}, log); err != nil {
			return err
		}

		// Lead throttle (optional)
		var throttle ports.LeadThrottle
		if cfg.Redis.Addr != "" {
			client, err := redisdb.Connect(ctx, redisdb.Config{
				Addr:     cfg.Redis.Addr,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			if err != nil {
				return fmt.Errorf("failed to connect to redis: %w", err)
			}
			defer client.Close()
			throttle = redisdb.NewLeadLimiter(client, cfg.Leads.RateLimit, cfg.Leads.RateWindow)
			ready["redis"] = redisdb.Pinger{Client: client}
			log.Info().Str("addr", cfg.Redis.Addr).Msg("lead throttle enabled")
		} else {
			log.Warn().Msg("REDIS_ADDR not set, lead throttle disabled")
		}

		// Lead notifications
		dispatcher := queue.NewDispatcher(cfg.Leads.NotifyWorkers, notify.NewLogNotifier(log), logger.Component("dispatcher"))
		dispatcher.OnResult(func(result string) {
			metrics.LeadNotificationsTotal.WithLabelValues(result).Inc()
		})

		// Services
		enforcer, err := policy.New()
		if err != nil {
			return err
		}
		access := service.NewAccessService(st.access, st.profiles, enforcer, logger.Component("access"))
		e := api.NewRouter(api.Services{
			Access:   access,
			Profiles: service.NewProfileService(st.profiles, logger.Component("profiles")),
			Leads:    service.NewLeadService(st.leads, access, throttle, dispatcher, logger.Component("leads")),
			Content:  service.NewContentService(st.content, access, cfg.SiteURL, logger.Component("content")),
		}, api.Options{
			JWTSecret: cfg.JWTSecret,
			Log:       log,
			Ready:     ready,
		})

		// Workers stop after the HTTP server so leads accepted while draining are handed off.
		workerCtx, stopWorkers := context.WithCancel(context.Background())
		defer stopWorkers()
		dispatcher.Start(workerCtx)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			addr := ":" + cfg.Port
			log.Info().Str("addr", addr).Str("store", cfg.StoreDriver).Msg("server starting")
			if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			log.Info().Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		})

		err = g.Wait()
		stopWorkers()
		dispatcher.Wait()
		if err != nil {
			return err
		}
		log.Info().Msg("server stopped gracefully")
		return nil
	},
}

// openStores builds the repositories for the configured driver and registers
// their readiness checks.
func openStores(ctx context.Context, ready map[string]handler.Pinger) (stores, func(), error) {
	if cfg.StoreDriver != config.DriverMongo {
		return stores{
			access:   memory.NewAccessControlRepository(),
			profiles: memory.NewProfileRepository(),
			leads:    memory.NewContactSubmissionRepository(),
			content: service.ContentRepositories{
				Blog:     memory.NewBlogRepository(),
				Services: memory.NewServiceRepository(),
				Topics:   memory.NewTrendingTopicRepository(),
				Listings: memory.NewLegalListingRepository(),
			},
		}, func() {}, nil
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return stores{}, nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	closeFn := func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		closeFn()
		return stores{}, nil, err
	}
	ready["mongodb"] = mongodb.Pinger{DB: db}
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	return stores{
		access:   mongodb.NewAccessControlRepository(db),
		profiles: mongodb.NewProfileRepository(db),
		leads:    mongodb.NewContactSubmissionRepository(db),
		content: service.ContentRepositories{
			Blog:     mongodb.NewBlogRepository(db),
			Services: mongodb.NewServiceRepository(db),
			Topics:   mongodb.NewTrendingTopicRepository(db),
			Listings: mongodb.NewLegalListingRepository(db),
		},
	}, closeFn, nil
}
