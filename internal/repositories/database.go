package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/XSAM/otelsql"
	"github.com/coolbreeze/storefront/internal/config"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	_ "github.com/lib/pq"
)

type Repositories struct {
	DB           *sql.DB
	User         UserRepository
	Product      ProductRepository
	Cart         CartRepository
	Order        OrderRepository
	Payment      PaymentRepository
	Notification NotificationRepository
	Warranty     WarrantyRepository
	Complaint    ComplaintRepository
	Stats        StatsRepository
}

// Open connects to Postgres through the otelsql-wrapped lib/pq driver and
// applies the pool settings.
func Open(cfg *config.Database) (*sql.DB, error) {
	db, err := otelsql.Open("postgres", cfg.GetDSN(),
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithSpanOptions(otelsql.SpanOptions{OmitConnResetSession: true}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Test the connection to make sure DB is reachable
	if err := db.PingContext(ctx); err != nil {
		db.Close()

		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func New(cfg *config.Config) (*Repositories, error) {
	db, err := Open(&cfg.Database)
	if err != nil {
		return nil, err
	}

	return NewRepositories(db), nil
}

// NewRepositories builds every repository on an existing handle.
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		DB:           db,
		User:         NewUserRepo(db),
		Product:      NewProductRepo(db),
		Cart:         NewCartRepo(db),
		Order:        NewOrderRepository(db),
		Payment:      NewPaymentRepository(db),
		Notification: NewNotificationRepo(db),
		Warranty:     NewWarrantyRepo(db),
		Complaint:    NewComplaintRepo(db),
		Stats:        NewStatsRepo(db),
	}
}

func (r *Repositories) Close() error {
	return r.DB.Close()
}
