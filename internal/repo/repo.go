package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/richardliu001/newsletter-service/internal/domain"
	"github.com/richardliu001/newsletter-service/internal/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate go run go.uber.org/mock/mockgen -source=repo.go -destination=../mocks/mock_repository.go -package=mocks

// ErrTokenNotFound is returned when no subscriber owns the given token.
var ErrTokenNotFound = errors.New("subscription token not found")

// RepositoryInterface is the subscription store. InsertSubscriber and StoreToken
// must run on a transaction obtained from Begin.
type RepositoryInterface interface {
	Begin(ctx context.Context) (*gorm.DB, error)
	InsertSubscriber(ctx context.Context, tx *gorm.DB, ns domain.NewSubscriber) (uuid.UUID, error)
	StoreToken(ctx context.Context, tx *gorm.DB, subscriberID uuid.UUID, token string) error
	Commit(tx *gorm.DB) error
	Rollback(tx *gorm.DB)
	SubscriberIDFromToken(ctx context.Context, token string) (uuid.UUID, error)
	Ping(ctx context.Context) error
}

// Repository implements RepositoryInterface on gorm.
type Repository struct {
	db  *gorm.DB
	log *zap.SugaredLogger
}

// NewRepository constructs repo.
func NewRepository(db *gorm.DB, logger *zap.SugaredLogger) *Repository {
	return &Repository{db: db, log: logger}
}

// DB returns the underlying *gorm.DB bound to ctx.
func (r *Repository) DB(ctx context.Context) *gorm.DB { return r.db.WithContext(ctx) }

// Begin opens a transaction bound to ctx; cancelling ctx before Commit rolls it back.
func (r *Repository) Begin(ctx context.Context) (*gorm.DB, error) {
	tx := r.DB(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	return tx, nil
}

// InsertSubscriber writes a new pending subscriber and returns its id.
func (r *Repository) InsertSubscriber(ctx context.Context, tx *gorm.DB, ns domain.NewSubscriber) (uuid.UUID, error) {
	s := &model.Subscription{
		ID:           uuid.New(),
		Email:        ns.Email.String(),
		Name:         ns.Name.String(),
		SubscribedAt: time.Now().UTC(),
		Status:       model.StatusPendingConfirmation,
	}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		r.log.Errorf("insert subscriber: %v", err)
		return uuid.Nil, err
	}
	return s.ID, nil
}

// StoreToken links token to subscriberID.
func (r *Repository) StoreToken(ctx context.Context, tx *gorm.DB, subscriberID uuid.UUID, token string) error {
	t := &model.SubscriptionToken{SubscriptionToken: token, SubscriberID: subscriberID}
	if err := tx.WithContext(ctx).Create(t).Error; err != nil {
		r.log.Errorf("store token: %v", err)
		return &StoreTokenError{Cause: err}
	}
	return nil
}

// Commit ends tx.
func (r *Repository) Commit(tx *gorm.DB) error {
	return tx.Commit().Error
}

// Rollback aborts tx. Calling it on a finished transaction is a no-op.
func (r *Repository) Rollback(tx *gorm.DB) {
	if err := tx.Rollback().Error; err != nil && !errors.Is(err, sql.ErrTxDone) {
		r.log.Warnf("rollback: %v", err)
	}
}

// SubscriberIDFromToken resolves the subscriber a confirmation token was issued to.
func (r *Repository) SubscriberIDFromToken(ctx context.Context, token string) (uuid.UUID, error) {
	var t model.SubscriptionToken
	err := r.DB(ctx).Where("subscription_token = ?", token).First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, ErrTokenNotFound
	}
	if err != nil {
		return uuid.Nil, err
	}
	return t.SubscriberID, nil
}

// Ping checks database connectivity.
func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.DB(ctx).DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Migrate creates or updates the subscription tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Subscription{}, &model.SubscriptionToken{})
}
