package store

import (
	"context"
	"fmt"

	"playstore/shared"

	"github.com/jackc/pgx/v5"
)

const selectApps = `
	SELECT app, category, rating, reviews, size, installs, type, price,
	       content_rating, genres, last_updated, current_ver, android_ver
	FROM app
	ORDER BY id
`

// PostgresSource reads records from the app table.
type PostgresSource struct {
	URL string
}

func (s PostgresSource) Load(ctx context.Context) ([]shared.AppRecord, error) {
	conn, err := pgx.Connect(ctx, s.URL)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	defer conn.Close(context.Background())

	rows, err := conn.Query(ctx, selectApps)
	if err != nil {
		return nil, fmt.Errorf("query apps: %w", err)
	}

	records, err := pgx.CollectRows(rows, scanApp)
	if err != nil {
		return nil, fmt.Errorf("scan apps: %w", err)
	}
	return records, nil
}

func scanApp(row pgx.CollectableRow) (shared.AppRecord, error) {
	var app shared.AppRecord
	err := row.Scan(
		&app.App,
		&app.Category,
		&app.Rating,
		&app.Reviews,
		&app.Size,
		&app.Installs,
		&app.Type,
		&app.Price,
		&app.ContentRating,
		&app.Genres,
		&app.LastUpdated,
		&app.CurrentVer,
		&app.AndroidVer)
	return app, err
}
