package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/finboard/internal/accrual"
	"github.com/iho/finboard/internal/domain"
)

// ReportUseCase is the reporting consumer of the accrual engine: it
// fetches an owner's cost records and evaluates them at a reference
// date. The engine itself is pure; every failure mode here belongs to
// the record fetch or the cache.
type ReportUseCase struct {
	costRepo    CostRepository
	revenueRepo RevenueRepository
	goalRepo    GoalRepository
	entityRepo  EntityRepository
	cache       ReportCache
	cacheTTL    time.Duration
}

// NewReportUseCase creates a new ReportUseCase.
func NewReportUseCase(costRepo CostRepository, revenueRepo RevenueRepository, goalRepo GoalRepository, entityRepo EntityRepository, cache ReportCache) *ReportUseCase {
	return &ReportUseCase{
		costRepo:    costRepo,
		revenueRepo: revenueRepo,
		goalRepo:    goalRepo,
		entityRepo:  entityRepo,
		cache:       cache,
		cacheTTL:    ReportCacheTTL,
	}
}

// SetCacheTTL overrides the default report cache lifetime.
func (uc *ReportUseCase) SetCacheTTL(ttl time.Duration) {
	if ttl > 0 {
		uc.cacheTTL = ttl
	}
}

// CostItem is one record's share of an accrued report.
type CostItem struct {
	CostID       string          `json:"cost_id"`
	Contribution decimal.Decimal `json:"contribution"`
	OneTime      bool            `json:"one_time"`
}

// AccruedReport is the point-in-time total for an owner.
type AccruedReport struct {
	Owner         domain.OwnerKey `json:"-"`
	ReferenceDate time.Time       `json:"reference_date"`
	Total         decimal.Decimal `json:"total"`
	Items         []CostItem      `json:"items"`
}

// AccruedTotal computes the accumulated obligation of an owner's active
// cost records as of ref. Results are cached per owner and date.
func (uc *ReportUseCase) AccruedTotal(ctx context.Context, actor *domain.User, owner domain.OwnerKey, ref time.Time) (*AccruedReport, error) {
	if err := verifyOwnership(ctx, uc.entityRepo, actor, owner); err != nil {
		return nil, err
	}

	key := reportCacheKey(owner, ref)

	if uc.cache != nil {
		if data, err := uc.cache.Get(ctx, key); err == nil && data != nil {
			var cached AccruedReport
			if err := json.Unmarshal(data, &cached); err == nil {
				cached.Owner = owner
				return &cached, nil
			}
		}
	}

	costs, err := uc.costRepo.ListActiveByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("fetch costs: %w", err)
	}

	breakdown := accrual.Breakdown(ref, costs)

	report := &AccruedReport{
		Owner:         owner,
		ReferenceDate: ref,
		Total:         breakdown.Total,
		Items:         make([]CostItem, 0, len(breakdown.Items)),
	}
	for _, item := range breakdown.Items {
		report.Items = append(report.Items, CostItem{
			CostID:       item.CostID,
			Contribution: item.Contribution,
			OneTime:      item.OneTime,
		})
	}

	if uc.cache != nil {
		if data, err := json.Marshal(report); err == nil {
			_ = uc.cache.Set(ctx, key, data, uc.cacheTTL)
		}
	}

	return report, nil
}

// MonthlySummary compares accrued costs against received revenues for
// the calendar month containing the given date.
type MonthlySummary struct {
	Month        time.Time       `json:"month"`
	AccruedCosts decimal.Decimal `json:"accrued_costs"`
	Revenues     decimal.Decimal `json:"revenues"`
	Net          decimal.Decimal `json:"net"`
}

// Summary evaluates costs at the end of the month (or at the given date
// when the month is still running) and nets them against revenues.
func (uc *ReportUseCase) Summary(ctx context.Context, actor *domain.User, owner domain.OwnerKey, month time.Time) (*MonthlySummary, error) {
	monthStart := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	nextMonth := monthStart.AddDate(0, 1, 0)

	ref := nextMonth.AddDate(0, 0, -1)
	if now := time.Now().UTC(); now.Before(ref) && !now.Before(monthStart) {
		ref = now
	}

	report, err := uc.AccruedTotal(ctx, actor, owner, ref)
	if err != nil {
		return nil, err
	}

	revenues, err := uc.revenueRepo.SumByOwnerBetween(ctx, owner, monthStart, nextMonth)
	if err != nil {
		return nil, fmt.Errorf("sum revenues: %w", err)
	}

	return &MonthlySummary{
		Month:        monthStart,
		AccruedCosts: report.Total,
		Revenues:     revenues,
		Net:          revenues.Sub(report.Total),
	}, nil
}

// GoalStatus reports one savings goal with its progress ratio.
type GoalStatus struct {
	Goal     *domain.Goal    `json:"goal"`
	Progress decimal.Decimal `json:"progress"`
}

// GoalProgress lists an owner's goals with progress ratios.
func (uc *ReportUseCase) GoalProgress(ctx context.Context, actor *domain.User, owner domain.OwnerKey) ([]GoalStatus, error) {
	if err := verifyOwnership(ctx, uc.entityRepo, actor, owner); err != nil {
		return nil, err
	}

	limit, offset := domain.ValidatePagination(0, 0)
	goals, err := uc.goalRepo.ListByOwner(ctx, owner, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("fetch goals: %w", err)
	}

	statuses := make([]GoalStatus, 0, len(goals))
	for _, g := range goals {
		statuses = append(statuses, GoalStatus{Goal: g, Progress: g.Progress()})
	}
	return statuses, nil
}

func reportCacheKey(owner domain.OwnerKey, ref time.Time) string {
	return fmt.Sprintf("report:%s:%s:%s", owner.Type, owner.ID, ref.UTC().Format("2006-01-02"))
}
