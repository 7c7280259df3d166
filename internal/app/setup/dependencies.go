package setup

import (
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/jawirlabs/topup-order-service/internal/config"
	"github.com/jawirlabs/topup-order-service/internal/domain"
	"github.com/jawirlabs/topup-order-service/internal/infrastructure/kafka"
	"github.com/jawirlabs/topup-order-service/internal/infrastructure/metrics"
	"github.com/jawirlabs/topup-order-service/internal/infrastructure/postgres"
	"github.com/jawirlabs/topup-order-service/internal/infrastructure/postgres/repository"
	"github.com/jawirlabs/topup-order-service/internal/infrastructure/redis"
)

type Dependencies struct {
	Config       *config.TopupConfig
	DB           *gorm.DB
	Publisher    domain.PublisherPort
	Subscriber   domain.SubscriberPort
	Redis        *goredis.Client
	Metrics      *metrics.TopupMetrics
	Repositories *Repositories
}

type Repositories struct {
	TrxRepo  domain.TransactionRepository
	UserRepo domain.UserRepository
}

func InitializeDependencies() (*Dependencies, error) {
	cfg := config.MustLoad()

	db := postgres.MustInitDB(cfg)

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}

	return &Dependencies{
		Config:     cfg,
		DB:         db,
		Publisher:  kafka.NewDefaultKafkaPublisher(brokers),
		Subscriber: kafka.NewDefaultKafkaSubscriber(brokers),
		Redis:      redis.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB),
		Metrics:    metrics.NewTopupMetrics(),
		Repositories: &Repositories{
			TrxRepo:  repository.NewDefaultTransactionRepository(db),
			UserRepo: repository.NewDefaultUserRepository(db),
		},
	}, nil
}
