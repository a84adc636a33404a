package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"

	"github.com/iho/ledgerbook/internal/domain"
	"github.com/iho/ledgerbook/internal/infrastructure/metrics"
)

// Report parameter errors.
var (
	ErrInvalidDigits    = errors.New("digits must be between 1 and 10")
	ErrInvalidDateRange = errors.New("start date cannot be after end date")
	ErrFutureDate       = errors.New("report dates cannot be in the future")
)

// ReportUseCase produces the general ledger report and billing aggregates.
// Reporting never mutates ledger or invoice state.
type ReportUseCase struct {
	reportRepo ReportRepository
	cache      Cache
	statsTTL   time.Duration
	metrics    *metrics.Metrics
}

// NewReportUseCase creates a new ReportUseCase. cache may be nil to disable
// stats caching.
func NewReportUseCase(reportRepo ReportRepository, cache Cache, statsTTL time.Duration) *ReportUseCase {
	if statsTTL <= 0 {
		statsTTL = DefaultStatsCacheTTL
	}

	return &ReportUseCase{
		reportRepo: reportRepo,
		cache:      cache,
		statsTTL:   statsTTL,
	}
}

// WithMetrics attaches Prometheus counters. A nil receiver field means no
// instrumentation.
func (uc *ReportUseCase) WithMetrics(m *metrics.Metrics) *ReportUseCase {
	uc.metrics = m
	return uc
}

// GeneralLedgerInput represents parameters for the general ledger report.
type GeneralLedgerInput struct {
	Digits        int
	From          *time.Time
	To            *time.Time
	IncludeDetail bool
}

// GeneralLedger groups per-account movement sums under the major account
// determined by the first Digits characters of each account code.
func (uc *ReportUseCase) GeneralLedger(ctx context.Context, input GeneralLedgerInput) (*domain.GeneralLedger, error) {
	if uc.metrics != nil {
		uc.metrics.ReportRequests.WithLabelValues("general_ledger").Inc()
		timer := prometheus.NewTimer(uc.metrics.ReportDuration.WithLabelValues("general_ledger"))
		defer timer.ObserveDuration()
	}

	if input.Digits < 1 || input.Digits > 10 {
		return nil, ErrInvalidDigits
	}

	now := time.Now()
	if input.From != nil && input.To != nil && input.From.After(*input.To) {
		return nil, ErrInvalidDateRange
	}
	if (input.From != nil && input.From.After(now)) || (input.To != nil && input.To.After(now)) {
		return nil, ErrFutureDate
	}

	movements, err := uc.reportRepo.AccountMovements(ctx, input.From, input.To)
	if err != nil {
		return nil, err
	}

	groups := make(map[string]*domain.LedgerGroup)

	for _, m := range movements {
		major := majorCode(m.AccountCode, input.Digits)

		group, ok := groups[major]
		if !ok {
			name, err := uc.reportRepo.MajorAccountName(ctx, major)
			if err != nil {
				return nil, err
			}
			if name == "" {
				name = "Major account " + major
			}

			group = &domain.LedgerGroup{
				MajorCode:   major,
				MajorName:   name,
				TotalDebit:  decimal.Zero,
				TotalCredit: decimal.Zero,
				Balance:     decimal.Zero,
			}
			groups[major] = group
		}

		group.TotalDebit = group.TotalDebit.Add(m.TotalDebit)
		group.TotalCredit = group.TotalCredit.Add(m.TotalCredit)
		group.Balance = group.Balance.Add(m.Balance())

		if input.IncludeDetail {
			group.Subaccounts = append(group.Subaccounts, m)
		}
	}

	codes := make([]string, 0, len(groups))
	for code := range groups {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	report := &domain.GeneralLedger{
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
		GeneratedAt: now.UTC(),
	}

	for _, code := range codes {
		group := groups[code]

		if input.IncludeDetail {
			sort.Slice(group.Subaccounts, func(i, j int) bool {
				return group.Subaccounts[i].AccountCode < group.Subaccounts[j].AccountCode
			})
		}

		report.TotalDebit = report.TotalDebit.Add(group.TotalDebit)
		report.TotalCredit = report.TotalCredit.Add(group.TotalCredit)
		report.Groups = append(report.Groups, group)
	}

	report.Difference = report.TotalDebit.Sub(report.TotalCredit).Abs()

	return report, nil
}

// BillingStats returns invoicing statistics for the date range. Results are
// cached briefly; the statistics tolerate that staleness, invoice state does
// not go through here.
func (uc *ReportUseCase) BillingStats(ctx context.Context, from, to *time.Time) (*domain.BillingStats, error) {
	key := statsKey(from, to)

	if uc.metrics != nil {
		uc.metrics.ReportRequests.WithLabelValues("billing_stats").Inc()
	}

	if uc.cache != nil {
		if raw, err := uc.cache.Get(ctx, key); err == nil && raw != nil {
			var stats domain.BillingStats
			if err := json.Unmarshal(raw, &stats); err == nil {
				if uc.metrics != nil {
					uc.metrics.ReportCacheHits.WithLabelValues("hit").Inc()
				}
				return &stats, nil
			}
		}
		if uc.metrics != nil {
			uc.metrics.ReportCacheHits.WithLabelValues("miss").Inc()
		}
	}

	stats, err := uc.reportRepo.BillingStats(ctx, from, to)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if raw, err := json.Marshal(stats); err == nil {
			_ = uc.cache.Set(ctx, key, raw, uc.statsTTL)
		}
	}

	return stats, nil
}

// TopClients returns the clients with the highest invoiced totals.
func (uc *ReportUseCase) TopClients(ctx context.Context, limit int, from, to *time.Time) ([]*domain.ClientSales, error) {
	if uc.metrics != nil {
		uc.metrics.ReportRequests.WithLabelValues("top_clients").Inc()
	}

	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	return uc.reportRepo.TopClients(ctx, limit, from, to)
}

// majorCode takes the first n characters of an account code, right-padding
// short codes with zeros.
func majorCode(code string, n int) string {
	if len(code) >= n {
		return code[:n]
	}
	return code + strings.Repeat("0", n-len(code))
}

func statsKey(from, to *time.Time) string {
	f, t := "", ""
	if from != nil {
		f = from.Format("2006-01-02")
	}
	if to != nil {
		t = to.Format("2006-01-02")
	}
	return fmt.Sprintf("%s%s:%s", statsCacheKey, f, t)
}
