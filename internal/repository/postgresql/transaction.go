package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/presencio/presence-backend-go/internal/pkg/database"
)

type txKey struct{}

// GetQuerier returns either the transaction stashed in the context or
// the pool, so repositories work in both settings.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}

// WithTx stores a transaction in the context for GetQuerier to pick up.
func WithTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}
