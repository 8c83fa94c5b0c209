package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/zodin-dev/symphony/internal/middlewares"
)

// ext returns the request transaction when one is carried by the context, so
// every write within a request belongs to the same unit of work, and falls
// back to the plain connection pool otherwise.
func ext(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := middlewares.GetTxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}
