package service

import (
	"context"

	"go.uber.org/zap"
)

type schemaRepository interface {
	Init(ctx context.Context) error
	ClearAll(ctx context.Context) error
}

type storePinger interface {
	Ping(ctx context.Context) error
}

// SystemService backs the health, init and clear-all operations.
type SystemService struct {
	schema schemaRepository
	store  storePinger
	logger *zap.Logger
}

// NewSystemService constructs the service.
func NewSystemService(schema schemaRepository, store storePinger, logger *zap.Logger) *SystemService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SystemService{schema: schema, store: store, logger: logger}
}

// Health probes store reachability.
func (s *SystemService) Health(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// Init creates the schema when absent. Safe to repeat.
func (s *SystemService) Init(ctx context.Context) error {
	if err := s.schema.Init(ctx); err != nil {
		s.logger.Error("schema init failed", zap.Error(err))
		return storageError(err, "failed to initialize schema")
	}
	s.logger.Info("schema initialized")
	return nil
}

// ClearAll wipes every table.
func (s *SystemService) ClearAll(ctx context.Context) error {
	if err := s.schema.ClearAll(ctx); err != nil {
		s.logger.Error("clear-all failed", zap.Error(err))
		return storageError(err, "failed to clear tables")
	}
	s.logger.Warn("all tables cleared")
	return nil
}
