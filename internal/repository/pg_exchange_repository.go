package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sportsmessenger/backend/internal/model"
)

// PgExchangeRepository は ExchangeRepository の PostgreSQL 実装
type PgExchangeRepository struct {
	pool *pgxpool.Pool
}

// NewPgExchangeRepository は PgExchangeRepository を生成する
func NewPgExchangeRepository(pool *pgxpool.Pool) *PgExchangeRepository {
	return &PgExchangeRepository{pool: pool}
}

var _ ExchangeRepository = (*PgExchangeRepository)(nil)

const exchangeSelectCols = `id, athlete_id, official_id, status, initiated_by, created_at, responded_at`

func scanExchange(scan func(...any) error) (*model.ContactExchange, error) {
	var e model.ContactExchange
	if err := scan(&e.ID, &e.AthleteID, &e.OfficialID, &e.Status, &e.InitiatedBy, &e.CreatedAt, &e.RespondedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// FindByID は ID で交換レコードを取得する
func (r *PgExchangeRepository) FindByID(ctx context.Context, id string) (*model.ContactExchange, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+exchangeSelectCols+` FROM contact_exchanges WHERE id = $1`, id)
	return scanExchange(row.Scan)
}

// FindByPair は (athlete, official) ペアの交換レコードを取得する
func (r *PgExchangeRepository) FindByPair(ctx context.Context, athleteID, officialID string) (*model.ContactExchange, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+exchangeSelectCols+` FROM contact_exchanges
		 WHERE athlete_id = $1 AND official_id = $2`,
		athleteID, officialID)
	return scanExchange(row.Scan)
}

// ListForUser returns every exchange in the given status where userID is a
// participant (either side), ordered by creation time.
func (r *PgExchangeRepository) ListForUser(ctx context.Context, userID string, status model.ExchangeStatus) ([]*model.ContactExchange, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+exchangeSelectCols+` FROM contact_exchanges
		 WHERE (athlete_id = $1 OR official_id = $1) AND status = $2
		 ORDER BY created_at`,
		userID, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exchanges []*model.ContactExchange
	for rows.Next() {
		e, err := scanExchange(rows.Scan)
		if err != nil {
			return nil, err
		}
		exchanges = append(exchanges, e)
	}
	return exchanges, rows.Err()
}

// Create は交換レコードを作成する。ペアのユニーク制約違反は ErrDuplicatePair
// として返す（同一ペアへの並行リクエストは片方だけ成功する）
func (r *PgExchangeRepository) Create(ctx context.Context, exchange *model.ContactExchange) error {
	if exchange.ID == "" {
		exchange.ID = uuid.New().String()
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO contact_exchanges (id, athlete_id, official_id, status, initiated_by)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		exchange.ID, exchange.AthleteID, exchange.OfficialID, exchange.Status, exchange.InitiatedBy,
	).Scan(&exchange.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicatePair
		}
		return err
	}
	return nil
}

// UpdateStatus は status と responded_at を更新する
func (r *PgExchangeRepository) UpdateStatus(ctx context.Context, id string, status model.ExchangeStatus, respondedAt time.Time) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE contact_exchanges SET status = $1, responded_at = $2 WHERE id = $3`,
		status, respondedAt, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete は交換レコードを削除する
func (r *PgExchangeRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM contact_exchanges WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
