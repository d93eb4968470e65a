package seller

import (
	"context"
	"database/sql"
	"errors"

	"seller-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

// DBTX is the store collaborator. *sql.DB, *sql.Tx and *sql.Conn satisfy it;
// the caller owns its lifecycle.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

const (
	insertSellerQuery = `INSERT INTO seller (sellerEmail, sellerHash, sellerSalt) VALUES ($1, $2, $3) RETURNING sellerId`
	updateSellerQuery = `UPDATE seller SET sellerEmail = $1, sellerHash = $2, sellerSalt = $3 WHERE sellerId = $4`
	deleteSellerQuery = `DELETE FROM seller WHERE sellerId = $1`
	selectSellerQuery = `SELECT sellerId, sellerEmail, sellerHash, sellerSalt FROM seller WHERE sellerId = $1`
)

// Insert stores a new seller and assigns the generated id to s.
func (s *Seller) Insert(ctx context.Context, db DBTX) error {
	const op = "insert seller"
	if s.id != nil {
		return newError(KindPreconditionFailed, op, "not a new seller")
	}
	if !s.initialized() {
		return newError(KindPreconditionFailed, op, "seller was not built with New")
	}

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Seller"),
		zap.String("method", "Insert"),
	)

	var id int64
	err := db.QueryRowContext(ctx, insertSellerQuery, s.email, s.passwordHash, s.passwordSalt).Scan(&id)
	if err != nil {
		log.Error("insert failed", zap.String("email", s.email), zap.Error(err))
		return wrapError(KindPersistenceFailure, op, "", err)
	}

	s.id = &id
	return nil
}

// Update writes every field of s to the row keyed by its id.
func (s *Seller) Update(ctx context.Context, db DBTX) error {
	const op = "update seller"
	if s.id == nil {
		return newError(KindPreconditionFailed, op, "unable to update a seller that does not exist")
	}
	if !s.initialized() {
		return newError(KindPreconditionFailed, op, "seller was not built with New")
	}

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Seller"),
		zap.String("method", "Update"),
		zap.Int64("seller_id", *s.id),
	)

	res, err := db.ExecContext(ctx, updateSellerQuery, s.email, s.passwordHash, s.passwordSalt, *s.id)
	if err != nil {
		log.Error("update failed", zap.Error(err))
		return wrapError(KindPersistenceFailure, op, "", err)
	}

	return checkAffected(res, op)
}

// Delete removes the row keyed by s's id. The in-memory value is left as
// is; callers should discard it.
func (s *Seller) Delete(ctx context.Context, db DBTX) error {
	const op = "delete seller"
	if s.id == nil {
		return newError(KindPreconditionFailed, op, "unable to delete a seller that does not exist")
	}

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Seller"),
		zap.String("method", "Delete"),
		zap.Int64("seller_id", *s.id),
	)

	res, err := db.ExecContext(ctx, deleteSellerQuery, *s.id)
	if err != nil {
		log.Error("delete failed", zap.Error(err))
		return wrapError(KindPersistenceFailure, op, "", err)
	}

	return checkAffected(res, op)
}

// FindByID loads a seller by primary key. It returns (nil, nil) when no row
// matches. A stored row that no longer passes validation is reported as a
// persistence failure.
func FindByID(ctx context.Context, db DBTX, id int64) (*Seller, error) {
	const op = "find seller by id"
	if id <= 0 {
		return nil, newError(KindInvalidArgument, op, "seller id is not positive")
	}

	log := logger.FromCtx(ctx).With(
		zap.String("repo", "Seller"),
		zap.String("method", "FindByID"),
		zap.Int64("seller_id", id),
	)

	var (
		rowID             int64
		email, hash, salt string
	)
	err := db.QueryRowContext(ctx, selectSellerQuery, id).Scan(&rowID, &email, &hash, &salt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, wrapError(KindPersistenceFailure, op, "", err)
	}

	s, err := New(&rowID, email, hash, salt)
	if err != nil {
		log.Error("stored row is invalid", zap.Error(err))
		return nil, wrapError(KindPersistenceFailure, op, "stored seller row is invalid", err)
	}

	return s, nil
}

// IsUniqueViolation reports whether err carries a PostgreSQL unique
// constraint violation, e.g. a duplicate sellerEmail.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == PgUniqueViolation
	}
	return false
}

func checkAffected(res sql.Result, op string) error {
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return wrapError(KindPersistenceFailure, op, "", err)
	}
	if rowsAffected == 0 {
		return wrapError(KindPersistenceFailure, op, "", ErrSellerNotFound)
	}
	return nil
}
