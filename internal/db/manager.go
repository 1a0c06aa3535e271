package db

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Manager mediates every read and write against the record store. It holds
// no state beyond the injected handle and logger; callers are expected to
// invoke it sequentially (see SetCompleted for the check-then-act caveat
// under concurrent use).
type Manager struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewManager wires a manager onto an already-opened store handle. A nil
// logger disables logging.
func NewManager(gdb *gorm.DB, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{db: gdb, log: log}
}

// writeErr logs a failed persist and wraps it in ErrStoreWrite
func (m *Manager) writeErr(op string, err error) error {
	m.log.Error("store write failed", zap.String("op", op), zap.Error(err))
	return fmt.Errorf("%s: %w: %w", op, ErrStoreWrite, err)
}

// readErr logs a failed query and wraps it in ErrStoreRead
func (m *Manager) readErr(op string, err error) error {
	m.log.Error("store read failed", zap.String("op", op), zap.Error(err))
	return fmt.Errorf("%s: %w: %w", op, ErrStoreRead, err)
}
