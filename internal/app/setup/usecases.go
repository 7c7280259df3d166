package setup

import (
	"fmt"
	"time"

	gonanoid "github.com/jaevor/go-nanoid"

	"github.com/jawirlabs/topup-order-service/internal/infrastructure/digiflazz"
	"github.com/jawirlabs/topup-order-service/internal/infrastructure/redis"
	"github.com/jawirlabs/topup-order-service/internal/push"
	"github.com/jawirlabs/topup-order-service/internal/refid"
	authusecase "github.com/jawirlabs/topup-order-service/internal/usecase/auth"
	catalogusecase "github.com/jawirlabs/topup-order-service/internal/usecase/catalog"
	trxusecase "github.com/jawirlabs/topup-order-service/internal/usecase/transaction"
)

const priceListTTL = 5 * time.Minute

type UseCases struct {
	TrxUsecase     trxusecase.TransactionUsecase
	AuthUsecase    authusecase.AuthUsecase
	CatalogUsecase catalogusecase.CatalogUsecase

	StatusPub *push.StatusPublisher
	Monitor   *push.LivenessMonitor
}

func InitializeUseCases(deps *Dependencies) (*UseCases, error) {
	cfg := deps.Config

	provider := digiflazz.NewClient(digiflazz.Config{
		BaseURL:  cfg.Provider.BaseURL,
		Username: cfg.Provider.Username,
		APIKey:   cfg.Provider.APIKey,
		Timeout:  cfg.Provider.Timeout,
	})

	registry := push.NewRegistry(deps.Metrics)
	statusPub := push.NewStatusPublisher(registry, deps.Repositories.TrxRepo, deps.Metrics)
	monitor := push.NewLivenessMonitor(registry, cfg.Push.ProbeInterval, deps.Metrics)

	paymentRef, err := gonanoid.Standard(21)
	if err != nil {
		return nil, fmt.Errorf("payment ref generator: %w", err)
	}

	trxUC := trxusecase.NewDefaultTransactionUsecase(
		deps.Repositories.TrxRepo,
		provider,
		statusPub,
		deps.Publisher,
		deps.Metrics,
		trxusecase.NewTimerScheduler(),
		refid.NewGenerator(),
		paymentRef,
		trxusecase.Config{
			ConfirmAfter:    cfg.Payment.ConfirmAfter,
			SettleAfter:     cfg.Payment.SettleAfter,
			ProviderTimeout: cfg.Provider.Timeout,
		},
	)

	priceCache := redis.NewPriceListCache(deps.Redis, priceListTTL)

	return &UseCases{
		TrxUsecase:     trxUC,
		AuthUsecase:    authusecase.NewDefaultAuthUsecase(deps.Repositories.UserRepo),
		CatalogUsecase: catalogusecase.NewDefaultCatalogUsecase(provider, priceCache),
		StatusPub:      statusPub,
		Monitor:        monitor,
	}, nil
}
