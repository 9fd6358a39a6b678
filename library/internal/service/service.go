package service

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/sociopath-little-dragon/library-bd/library/internal/model"
	"github.com/sociopath-little-dragon/library-bd/library/internal/repository"
	"github.com/sociopath-little-dragon/library-bd/pkg/auth"
	"github.com/sociopath-little-dragon/library-bd/pkg/kafka"
)

const (
	MaxActiveLoans             = 3
	DefaultTermDays            = 14
	MaxLoanDays                = 60
	MaxOverdueDaysForExtension = 30
)

// Publisher delivers committed domain events. kafka.Enqueuer satisfies it.
type Publisher interface {
	Enqueue(topic, key string, v any) error
}

type TokenIssuer interface {
	Issue(p auth.Profile) (string, error)
}

type Service struct {
	log       *zap.Logger
	repo      repository.Repository
	pub       Publisher
	tokens    TokenIssuer
	now       func() time.Time
	dailyRate decimal.Decimal
}

type Option func(s *Service)

// WithClock replaces time.Now; "today" is the calendar day of the returned time.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithPublisher(pub Publisher) Option {
	return func(s *Service) {
		s.pub = pub
	}
}

func WithTokenIssuer(tokens TokenIssuer) Option {
	return func(s *Service) {
		s.tokens = tokens
	}
}

func WithDailyRate(rate decimal.Decimal) Option {
	return func(s *Service) {
		s.dailyRate = rate
	}
}

func NewService(repo repository.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:       log.Named("service"),
		repo:      repo,
		pub:       kafka.NewNoopEnqueuer(),
		now:       time.Now,
		dailyRate: decimal.NewFromInt(10),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) today() model.Date {
	return model.DateOf(s.now())
}

// DailyRate is the rate used when a caller does not pass one.
func (s *Service) DailyRate() decimal.Decimal {
	return s.dailyRate
}

func (s *Service) publish(events ...model.Event) {
	for _, e := range events {
		if err := s.pub.Enqueue(kafka.LoanTopic, strconv.FormatInt(e.LoanID, 10), e); err != nil {
			s.log.Warn("publish event",
				zap.String("type", string(e.Type)),
				zap.Int64("loanID", e.LoanID),
				zap.Error(err))
		}
	}
}
