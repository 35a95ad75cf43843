package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	_ "github.com/lib/pq"

	analyticsRepoPg "quiz-analytics-service/internal/analytics/adapters/postgres"
	analyticsUsecase "quiz-analytics-service/internal/analytics/core/usecase"
	"quiz-analytics-service/internal/facade"
	"quiz-analytics-service/internal/platform/sqldb"
	resultsRepoPg "quiz-analytics-service/internal/results/adapters/postgres"
	resultsUsecase "quiz-analytics-service/internal/results/core/usecase"
)

// OpenPostgres wires the facade on a small connection pool.
func OpenPostgres(ctx context.Context, dsn string, verbose bool) (Analytics, io.Closer, error) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	db, err := sqldb.Open(ctx, dsn, sqldb.PoolConfig{
		MaxOpenConns:    4,
		MaxIdleConns:    2,
		ConnMaxLifetime: 5 * time.Minute,
	})
	if err != nil {
		return nil, nil, err
	}

	conn := sqldb.New(db)
	store := analyticsRepoPg.NewEventStoreRepository(conn)

	f := facade.New(
		resultsUsecase.NewResolveResultUseCase(resultsRepoPg.NewResultRepository(conn), logger, nil),
		analyticsUsecase.NewGetFunnelUseCase(store, nil),
		analyticsUsecase.NewGetCohortsUseCase(store, nil, nil),
		analyticsUsecase.NewGetChannelsUseCase(store, nil),
	)

	logger.Debug("connected to postgres")

	return f, db, nil
}
