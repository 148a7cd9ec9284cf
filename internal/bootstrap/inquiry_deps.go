package bootstrap

import (
	"context"
	"time"

	"inquiry_server/adapter/out/messaging"
	"inquiry_server/adapter/out/mongodb"
	"inquiry_server/adapter/out/persistence"
	"inquiry_server/adapter/out/provider"
	"inquiry_server/config"
	"inquiry_server/core/port/in"
	"inquiry_server/core/port/out"
	"inquiry_server/core/service/analytics"
	"inquiry_server/core/service/classify"
	"inquiry_server/core/service/faq"
	"inquiry_server/core/service/inquiry"
	"inquiry_server/core/service/shipment"
	"inquiry_server/core/service/team"
	"inquiry_server/infra/database"
	"inquiry_server/pkg/cache"
	"inquiry_server/pkg/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// Dependencies holds every adapter and service the API and worker share.
type Dependencies struct {
	Config  *config.Config
	DB      *pgxpool.Pool
	SQLDB   *sqlx.DB
	Redis   *redis.Client
	MongoDB *mongo.Client

	// Repositories
	InquiryRepo   out.InquiryRepository
	TagRepo       out.TagRepository
	BodyRepo      out.InquiryBodyRepository
	SentEmailRepo out.SentEmailRepository
	ShipmentRepo  out.ShipmentRepository
	UserRepo      out.UserRepository

	// Providers
	MailProvider out.MailProvider

	// Messaging
	MessageProducer out.MessageProducer

	// Cache
	Cache *cache.RedisCache

	// Classification
	Pipeline *classify.Pipeline

	// Services
	InquiryService   in.InquiryService
	AnalyticsService in.AnalyticsService
	ShipmentService  in.ShipmentService
	TeamService      in.TeamService
}

// NewDependencies wires the full dependency graph. The returned cleanup
// closes connections in reverse order of creation.
func NewDependencies(cfg *config.Config) (*Dependencies, func(), error) {
	deps := &Dependencies{Config: cfg}
	var cleanups []func()

	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	// Database (pgxpool, used by health checks)
	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	deps.DB = db
	cleanups = append(cleanups, func() { db.Close() })

	// Database (sqlx, used by the repository adapters)
	sqlDB, err := database.NewSqlx(cfg.DatabaseURL)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	deps.SQLDB = sqlDB
	cleanups = append(cleanups, func() { sqlDB.Close() })

	// Redis
	redisClient, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	deps.Redis = redisClient
	cleanups = append(cleanups, func() { redisClient.Close() })

	// MongoDB
	mongoClient, err := mongodb.NewClient(cfg.MongoDBURL)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	deps.MongoDB = mongoClient
	cleanups = append(cleanups, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		mongoClient.Disconnect(ctx)
	})

	// Repositories
	deps.InquiryRepo = persistence.NewInquiryAdapter(sqlDB)
	deps.TagRepo = persistence.NewTagAdapter(sqlDB)
	deps.SentEmailRepo = persistence.NewSentEmailAdapter(sqlDB)
	deps.ShipmentRepo = persistence.NewShipmentAdapter(sqlDB)
	deps.UserRepo = persistence.NewUserAdapter(sqlDB)

	bodyAdapter := mongodb.NewBodyAdapter(mongoClient.Database(cfg.MongoDBName))
	indexCtx, indexCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := bodyAdapter.EnsureIndexes(indexCtx); err != nil {
		logger.WithError(err).Warn("failed to ensure MongoDB indexes")
	}
	indexCancel()
	deps.BodyRepo = bodyAdapter

	// Gmail
	deps.MailProvider = provider.NewGmailAdapter(&provider.GmailConfig{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURL,
		RefreshToken: cfg.GmailRefreshToken,
	})

	// Messaging
	deps.MessageProducer = messaging.NewRedisProducer(redisClient)

	// Cache
	deps.Cache = cache.NewRedisCache(redisClient)

	// Classification pipeline
	deps.Pipeline = classify.NewPipeline(classify.DefaultVocabulary(), nil)

	// Services
	log := logger.Default()
	deps.InquiryService = inquiry.NewService(
		deps.InquiryRepo,
		deps.TagRepo,
		deps.BodyRepo,
		deps.SentEmailRepo,
		deps.UserRepo,
		deps.MailProvider,
		deps.MessageProducer,
		deps.Pipeline,
		log,
	)
	deps.AnalyticsService = analytics.NewService(
		deps.InquiryRepo,
		deps.TagRepo,
		deps.BodyRepo,
		deps.SentEmailRepo,
		faq.NewEngine(nil),
		deps.Cache,
		log,
	)
	deps.ShipmentService = shipment.NewService(deps.ShipmentRepo, deps.InquiryRepo)
	deps.TeamService = team.NewService(deps.UserRepo)

	return deps, cleanup, nil
}
