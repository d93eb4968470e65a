package seller

import (
	"context"
	"errors"

	"seller-be/internal/logger"

	"go.uber.org/zap"
)

type UpdateInput struct {
	Email        *string
	PasswordHash *string
	PasswordSalt *string
}

type Service interface {
	Register(ctx context.Context, email, passwordHash, passwordSalt string) (*Seller, error)
	Get(ctx context.Context, id int64) (*Seller, error)
	Update(ctx context.Context, id int64, input UpdateInput) (*Seller, error)
	Remove(ctx context.Context, id int64) error
}

type service struct {
	db DBTX
}

func NewService(db DBTX) Service {
	return &service{db: db}
}

func (s *service) Register(ctx context.Context, email, passwordHash, passwordSalt string) (*Seller, error) {
	log := logger.FromCtx(ctx)

	sl, err := New(nil, email, passwordHash, passwordSalt)
	if err != nil {
		log.Warn("invalid seller input", zap.Error(err))
		return nil, err
	}

	if err := sl.Insert(ctx, s.db); err != nil {
		if IsUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		log.Error("failed to create seller", zap.String("email", sl.Email()), zap.Error(err))
		return nil, err
	}

	id, _ := sl.ID()
	log.Info("seller registered",
		zap.Int64("seller_id", id),
		zap.String("email", sl.Email()),
	)

	return sl, nil
}

func (s *service) Get(ctx context.Context, id int64) (*Seller, error) {
	sl, err := FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if sl == nil {
		return nil, ErrSellerNotFound
	}
	return sl, nil
}

func (s *service) Update(ctx context.Context, id int64, input UpdateInput) (*Seller, error) {
	log := logger.FromCtx(ctx).With(zap.Int64("seller_id", id))

	sl, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		if err := sl.SetEmail(*input.Email); err != nil {
			return nil, err
		}
	}
	if input.PasswordHash != nil {
		if err := sl.SetPasswordHash(*input.PasswordHash); err != nil {
			return nil, err
		}
	}
	if input.PasswordSalt != nil {
		if err := sl.SetPasswordSalt(*input.PasswordSalt); err != nil {
			return nil, err
		}
	}

	if err := sl.Update(ctx, s.db); err != nil {
		if IsUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		if errors.Is(err, ErrSellerNotFound) {
			return nil, ErrSellerNotFound
		}
		log.Error("failed to update seller", zap.Error(err))
		return nil, err
	}

	log.Info("seller updated")
	return sl, nil
}

func (s *service) Remove(ctx context.Context, id int64) error {
	log := logger.FromCtx(ctx).With(zap.Int64("seller_id", id))

	sl, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := sl.Delete(ctx, s.db); err != nil {
		if errors.Is(err, ErrSellerNotFound) {
			return ErrSellerNotFound
		}
		log.Error("failed to delete seller", zap.Error(err))
		return err
	}

	log.Info("seller removed")
	return nil
}
