package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-redsync/redsync/v4"
	redsyncpool "github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/cel-go/cel"
	"github.com/redis/go-redis/v9"

	"github.com/LerianStudio/midaz/v3/common/mlog"
	"github.com/LerianStudio/midaz/v3/common/mmongo"
	"github.com/LerianStudio/midaz/v3/common/mpostgres"
	mongoevents "github.com/LerianStudio/midaz/v3/components/rebac/internal/adapters/mongodb/events"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/adapters/postgres/bitmapstore"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/adapters/postgres/tuplestore"
	rebacrabbitmq "github.com/LerianStudio/midaz/v3/components/rebac/internal/adapters/rabbitmq"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/domain/consistency"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/domain/namespace"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/domain/tuple"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/services/bitmap"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/services/breaker"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/services/cache"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/services/caveat"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/services/consistencymgr"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/services/core"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/services/evaluator"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/services/events"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/services/guardedstore"
)

// Service is everything rebacd's main loop needs a handle to: the
// wired core.Service plus the background workers/consumers started
// alongside it, mirroring the teacher's bootstrap.Service grouping
// (components/ledger/internal/bootstrap/service.go) for a single
// process' collaborators.
type Service struct {
	Core     *core.Service
	Logger   mlog.Logger
	Workers  []*bitmap.Worker
	Breakers *breaker.Manager

	rabbitConn     *rebacrabbitmq.Connection
	bitmapConsumer *rebacrabbitmq.Consumer
}

// InitServices builds a Service from cfg and the namespace type
// definitions the host has already loaded (typically via
// namespace.Load against one or more YAML documents). Any adapter
// whose connection string is empty is wired as its nil/no-op
// equivalent — every optional collaborator in spec §6 (shared cache,
// bitmap accelerator, event sink) degrades gracefully rather than
// failing startup.
func InitServices(cfg *Config, registryDocs []namespace.TypeDef) (*Service, error) {
	logger, err := newZapLogger(cfg.EnvName, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("rebacd: init logger: %w", err)
	}

	logger.WithFields("version", cfg.Version, "env", cfg.EnvName).Info("Starting rebacd")

	registry := namespace.NewRegistry()
	if len(registryDocs) > 0 {
		if err := registry.ReplaceAll(registryDocs); err != nil {
			return nil, fmt.Errorf("rebacd: load namespace registry: %w", err)
		}
	}

	pg := &mpostgres.PostgresConnection{
		ConnectionStringPrimary: cfg.PrimaryDBPrimaryDSN,
		ConnectionStringReplica: cfg.PrimaryDBReplicaDSN,
		PrimaryDBName:           cfg.PrimaryDBName,
		ReplicaDBName:           cfg.PrimaryDBName,
		MigrationsPath:          filepath.Join("components", "rebac", "migrations"),
	}

	var redisClient *redis.Client

	if cfg.RedisConnectionString != "" {
		opts, err := redis.ParseURL(cfg.RedisConnectionString)
		if err != nil {
			return nil, fmt.Errorf("rebacd: parse redis dsn: %w", err)
		}

		redisClient = redis.NewClient(opts)
	}

	var locker *redsync.Redsync

	if redisClient != nil {
		locker = redsync.New(redsyncpool.NewPool(redisClient))
	}

	tuples := tuplestore.New(pg, locker)
	bitmaps := bitmapstore.New(pg)

	breakerCfg := breaker.Config{
		FailureThreshold: cfg.BreakerFailureThreshold,
		FailureWindow:    cfg.BreakerFailureWindow,
		ResetTimeout:     cfg.BreakerResetTimeout,
		SuccessThreshold: cfg.BreakerSuccessThreshold,
	}
	breakers := breaker.NewManager(breakerCfg, nil)
	store := guardedstore.New(tuples, breakers)

	caveats, err := caveat.NewEvaluator(map[string]*cel.Type{})
	if err != nil {
		return nil, fmt.Errorf("rebacd: init caveat evaluator: %w", err)
	}

	eval := evaluator.New(store, registry, caveats, cfg.EvaluatorMaxDepth)

	var shared *cache.SharedTier

	if cfg.CacheSharedEnabled && redisClient != nil {
		shared = cache.NewSharedTier(redisClient)
	}

	decisionCache, err := cache.New(cfg.CacheInProcessSize, shared, cfg.CacheDefaultTTL)
	if err != nil {
		return nil, fmt.Errorf("rebacd: init decision cache: %w", err)
	}

	signer := consistency.NewSigner([]byte(cfg.ZookieMACKey))
	consistencyMgr := consistencymgr.New(store, signer, consistencymgr.Config{
		WaitDeadline: cfg.ConsistencyWaitDeadline,
	})

	var pub events.Publisher

	if cfg.MongoConnectionString != "" {
		pub = mongoevents.New(&mmongo.MongoConnection{
			ConnectionStringSource: cfg.MongoConnectionString,
			Database:               cfg.MongoDatabase,
		})
	}

	svc := &Service{Logger: logger}

	var bitmapIndex *bitmap.Index

	if cfg.BitmapEnabled {
		var announcer bitmap.Announcer

		if cfg.RabbitMQConnectionString != "" {
			svc.rabbitConn = &rebacrabbitmq.Connection{URL: cfg.RabbitMQConnectionString}
			announcer = rebacrabbitmq.NewAnnouncer(svc.rabbitConn)
		}

		bitmapIndex = bitmap.New(bitmaps, bitmaps, announcer)

		workers := make([]*bitmap.Worker, 0, cfg.BitmapWorkerCount)

		for i := 0; i < cfg.BitmapWorkerCount; i++ {
			w := bitmap.NewWorker(bitmapIndex, lookupResolver(eval, store), bitmap.WorkerConfig{
				PollInterval: cfg.BitmapPollInterval,
				ReapInterval: cfg.BitmapReapInterval,
				ReapAfter:    cfg.BitmapReapAfter,
				MaxAttempts:  cfg.BitmapRetryCap,
				RetryBackoff: time.Minute,
			})
			workers = append(workers, w)
		}

		svc.Workers = workers

		if svc.rabbitConn != nil {
			wakers := make([]rebacrabbitmq.Waker, len(workers))
			for i, w := range workers {
				wakers[i] = w
			}

			svc.bitmapConsumer = rebacrabbitmq.NewConsumer(svc.rabbitConn, wakers...)
		}
	}

	svc.Core = core.New(store, registry, eval, decisionCache, bitmapIndex, consistencyMgr, pub)
	svc.Breakers = breakers

	return svc, nil
}

// lookupResolver adapts evaluator.Evaluator.LookupResources (which
// returns no revision) to bitmap.Resolver's shape by pairing it with
// the store's current revision, read after the traversal completes —
// matching spec §4.5's "computes the full answer by calling
// lookup_resources, bypassing the bitmap index" note, stamped with
// whatever revision was current once that answer was produced.
func lookupResolver(eval *evaluator.Evaluator, store tuple.Store) bitmap.Resolver {
	return func(ctx context.Context, tenant string, subject tuple.Ref, permission, resourceType string) ([]tuple.Ref, int64, error) {
		refs, err := eval.LookupResources(ctx, tenant, subject, permission, resourceType)
		if err != nil {
			return nil, 0, err
		}

		revision, err := store.CurrentRevision(ctx, tenant)
		if err != nil {
			return nil, 0, err
		}

		return refs, revision, nil
	}
}

// Run starts every background worker/consumer and blocks until ctx is
// cancelled.
func (s *Service) Run(ctx context.Context) {
	for _, w := range s.Workers {
		go w.Run(ctx)
		go w.RunReaper(ctx)
	}

	if s.bitmapConsumer != nil {
		go func() {
			if err := s.bitmapConsumer.Run(ctx); err != nil {
				s.Logger.Errorf("rebacd: bitmap announce consumer stopped: %v", err)
			}
		}()
	}

	go s.runMetricsExport(ctx)

	<-ctx.Done()
}

// runMetricsExport refreshes the breaker-open-duration gauge on a short
// tick. The breaker itself never calls out to Prometheus on the request
// path, so this is the one place that pull is driven from.
func (s *Service) runMetricsExport(ctx context.Context) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Breakers.ExportMetrics()
		}
	}
}

// Close releases the long-lived connections Run's workers use.
func (s *Service) Close() error {
	if s.rabbitConn != nil {
		return s.rabbitConn.Close()
	}

	return nil
}
