package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/richardliu001/newsletter-service/internal/config"
	"github.com/richardliu001/newsletter-service/internal/domain"
	"github.com/richardliu001/newsletter-service/internal/email"
	"github.com/richardliu001/newsletter-service/internal/events"
	"github.com/richardliu001/newsletter-service/internal/logger"
	"github.com/richardliu001/newsletter-service/internal/notify"
	"github.com/richardliu001/newsletter-service/internal/repo"
	"github.com/richardliu001/newsletter-service/internal/service"
	"github.com/richardliu001/newsletter-service/internal/token"
	httptransport "github.com/richardliu001/newsletter-service/internal/transport/http"
	"go.uber.org/zap"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configPath := flag.String("config", "configuration/base.yaml", "path to the yaml configuration")
	flag.Parse()

	// 1. load config
	_ = godotenv.Load()
	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Errorf("load config: %w", err))
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Errorf("invalid config: %w", err))
	}

	// 2. init logger
	log, err := logger.NewLogger(cfg.Server.LogLevel)
	if err != nil {
		panic(fmt.Errorf("init logger: %w", err))
	}
	defer log.Sync()

	// 3. postgres
	gdb, err := gorm.Open(postgres.Open(cfg.Postgres.DSN), &gorm.Config{PrepareStmt: true})
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if cfg.Postgres.MaxOpenConns > 0 {
		sqlDB, err := gdb.DB()
		if err != nil {
			log.Fatalf("postgres pool: %v", err)
		}
		sqlDB.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	}
	if err := repo.Migrate(gdb); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	// 4. email
	client, err := newEmailClient(cfg.Email)
	if err != nil {
		log.Fatalf("email client: %v", err)
	}
	notifier, err := notify.NewNotifier(client, cfg.Server.BaseURL)
	if err != nil {
		log.Fatalf("notifier: %v", err)
	}

	// 5. kafka
	var publisher events.Publisher = events.NopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		kp := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer kp.Close()
		publisher = kp
	}

	// 6. repo & service
	repository := repo.NewRepository(gdb, log)
	svc := service.NewSubscriptionService(repository, notifier, token.Default(), publisher, log)

	// 7. gin router
	router := httptransport.NewRouter(svc, log)

	// 8. serve
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: router}
	go shutdownOnSignal(srv, log)

	log.Infof("newsletter-server listening on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("listen: %v", err)
	}
}

func newEmailClient(cfg config.EmailConfig) (email.Client, error) {
	sender, err := domain.ParseSubscriberEmail(cfg.Sender)
	if err != nil {
		return nil, fmt.Errorf("sender: %w", err)
	}
	switch cfg.Provider {
	case config.ProviderSES:
		c, err := email.NewSESClient(context.Background(), cfg.SES.Region, cfg.SES.AccessKey, cfg.SES.SecretKey, sender)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return email.NewPostmarkClient(cfg.BaseURL, sender, cfg.AuthorizationToken, cfg.Timeout()), nil
	}
}

func shutdownOnSignal(srv *http.Server, log *zap.SugaredLogger) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("shutdown: %v", err)
	}
}
