package usecase

import (
	"context"
	"time"

	"github.com/jawirlabs/topup-order-service/internal/domain"
	"github.com/jawirlabs/topup-order-service/internal/infrastructure/metrics"
	"github.com/jawirlabs/topup-order-service/internal/refid"
	trxdto "github.com/jawirlabs/topup-order-service/internal/usecase/dto/transaction"
)

type TransactionUsecase interface {
	CreateTransaction(input *trxdto.CreateTransactionInput) (*domain.Transaction, error)
	ConfirmPayment(ctx context.Context, refID string) error
	HandleProviderCallback(input *trxdto.ProviderCallbackInput) error
	GetTransactionByRefID(refID string) (*domain.Transaction, error)
}

// StatusPublisher is the push side of status distribution. Publishing is
// best effort and never returns an error; the persisted record stays the
// source of truth.
type StatusPublisher interface {
	Publish(refID string, trx *domain.Transaction)
}

type Config struct {
	// ConfirmAfter delays the simulated payment-confirmed trigger after
	// creation.
	ConfirmAfter time.Duration
	// SettleAfter bounds PENDING_PROVIDER before the fallback settles it.
	SettleAfter time.Duration
	// ProviderTimeout caps the synchronous fulfillment call.
	ProviderTimeout time.Duration
}

type DefaultTransactionUsecase struct {
	TrxRepo    domain.TransactionRepository
	Provider   domain.FulfillmentProvider
	StatusPub  StatusPublisher
	Publisher  domain.PublisherPort
	Metrics    *metrics.TopupMetrics
	Scheduler  Scheduler
	RefIDs     *refid.Generator
	PaymentRef func() string

	cfg   Config
	locks *keyedLocks
}

func NewDefaultTransactionUsecase(
	trxRepo domain.TransactionRepository,
	provider domain.FulfillmentProvider,
	statusPub StatusPublisher,
	kafkaPublisher domain.PublisherPort,
	topupMetrics *metrics.TopupMetrics,
	scheduler Scheduler,
	refIDs *refid.Generator,
	paymentRef func() string,
	cfg Config) *DefaultTransactionUsecase {

	return &DefaultTransactionUsecase{
		TrxRepo:    trxRepo,
		Provider:   provider,
		StatusPub:  statusPub,
		Publisher:  kafkaPublisher,
		Metrics:    topupMetrics,
		Scheduler:  scheduler,
		RefIDs:     refIDs,
		PaymentRef: paymentRef,
		cfg:        cfg,
		locks:      newKeyedLocks(),
	}
}
