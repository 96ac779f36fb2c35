package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"

	"customer-onboarding/internal/model"
	"customer-onboarding/internal/ports"

	"go.uber.org/zap"
)

// суффикс номера счёта: пять цифр из [10000, 99999]
const (
	suffixMin  = 10000
	suffixSpan = 90000
)

// Synthesizer собирает номер счёта: код банка + код отделения + код типа счёта + случайный суффикс.
// Суффикс не уникален, уникальность номера обеспечивает ограничение в БД
type Synthesizer struct {
	references      ports.ReferenceRepository
	institutionCode string
	intN            func(n int) int
	metrics         ports.MetricsRecorder
	logger          *zap.Logger
}

type SynthesizerOption func(*Synthesizer)

// WithRandom подменяет источник случайных чисел; intN(n) должен возвращать значение из [0, n)
func WithRandom(intN func(n int) int) SynthesizerOption {
	return func(s *Synthesizer) {
		s.intN = intN
	}
}

func NewSynthesizer(
	references ports.ReferenceRepository,
	institutionCode string,
	recorder ports.MetricsRecorder,
	logger *zap.Logger,
	opts ...SynthesizerOption,
) *Synthesizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Synthesizer{
		references:      references,
		institutionCode: institutionCode,
		intN:            rand.IntN,
		metrics:         metricsOrNoop(recorder),
		logger:          logger.Named("synthesizer"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synthesize не падает при отсутствии справочных данных: недостающий сегмент остаётся пустым.
// Ошибки чтения справочников возвращаются
func (s *Synthesizer) Synthesize(ctx context.Context, branchName, accountTypeName string) (*model.SynthesizedAccount, error) {
	var branchCode, routingCode, accountTypeCode string

	branch, err := s.references.FindBranch(ctx, branchName)
	switch {
	case errors.Is(err, model.ErrNotFound), err == nil && branch == nil:
		s.logger.Warn("отделение не найдено, код отделения пропущен", zap.String("branch", branchName))
		s.metrics.RecordReferenceMiss(referenceBranch)
	case err != nil:
		return nil, fmt.Errorf("[Synthesizer] ошибка поиска отделения: %w", err)
	default:
		branchCode, routingCode = branch.BranchCode, branch.RoutingCode
	}

	accountType, err := s.references.FindAccountType(ctx, accountTypeName)
	switch {
	case errors.Is(err, model.ErrNotFound), err == nil && accountType == nil:
		s.logger.Warn("тип счёта не найден, код типа пропущен", zap.String("account_type", accountTypeName))
		s.metrics.RecordReferenceMiss(referenceAccountType)
	case err != nil:
		return nil, fmt.Errorf("[Synthesizer] ошибка поиска типа счёта: %w", err)
	default:
		accountTypeCode = accountType.AccountTypeCode
	}

	suffix := strconv.Itoa(suffixMin + s.intN(suffixSpan))

	return &model.SynthesizedAccount{
		AccountNumber: s.institutionCode + branchCode + accountTypeCode + suffix,
		RoutingCode:   routingCode,
	}, nil
}
