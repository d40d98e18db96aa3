package postgresql

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/presencio/presence-backend-go/internal/pkg/database"
	"github.com/stretchr/testify/assert"
)

type stubTx struct {
	pgx.Tx
}

func TestGetQuerier_PrefersContextTransaction(t *testing.T) {
	db := &database.DB{}
	tx := &stubTx{}

	ctx := WithTx(context.Background(), tx)
	assert.Same(t, tx, GetQuerier(ctx, db))
}

func TestGetQuerier_FallsBackToPool(t *testing.T) {
	db := &database.DB{}
	q := GetQuerier(context.Background(), db)
	assert.Equal(t, db.Pool, q)
}
