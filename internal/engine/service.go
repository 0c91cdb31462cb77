package engine

import (
	"time"

	"github.com/go-playground/validator/v10"

	"momentum/internal/storage"
)

// Service wires the gamification and recurrence logic to a Store instance.
// Nothing here is global: tests construct as many isolated services as they
// need.
type Service struct {
	store    *storage.Store
	validate *validator.Validate
	now      func() time.Time
}

type Option func(*Service)

// WithNow overrides the engine clock. Pair it with storage.WithNow so both
// layers see the same time.
func WithNow(fn func() time.Time) Option {
	return func(s *Service) { s.now = fn }
}

func NewService(store *storage.Store, opts ...Option) *Service {
	s := &Service{
		store:    store,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      store.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Store() *storage.Store { return s.store }

func (s *Service) today() string {
	return storage.FormatDate(s.now())
}

func (s *Service) yesterday() string {
	return storage.FormatDate(s.now().AddDate(0, 0, -1))
}
