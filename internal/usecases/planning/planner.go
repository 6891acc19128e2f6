package planning

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/pmax-campaign-manager/internal/domain"
)

const (
	MaxLabelLength  = 40
	TimestampLayout = "20060102150405"

	// unnamedLabel stands in for labels made only of unsupported characters.
	unnamedLabel = "label"
)

var (
	ErrInvalidBudget     = errors.New("daily budget must be greater than zero")
	ErrInvalidTargetROAS = errors.New("target ROAS must be greater than zero")
)

var (
	unsupportedChars = regexp.MustCompile(`[^A-Za-z0-9 _-]+`)
	whitespace       = regexp.MustCompile(`\s+`)
	microsPerUnit    = decimal.NewFromInt(1_000_000)
)

type Options struct {
	Prefix      string
	DailyBudget float64
	// DefaultTargetROAS applies to labels without an override. Nil leaves the plan without one.
	DefaultTargetROAS *float64
	Overrides         map[string]float64
}

// BuildPlans returns one plan per label, ordered by impressions descending then label ascending.
// All plans of one call share the same timestamp.
func BuildPlans(stats []domain.LabelStat, opts Options, now time.Time) ([]domain.CampaignPlan, error) {
	micros, err := BudgetMicros(opts.DailyBudget)
	if err != nil {
		return nil, err
	}
	if opts.DefaultTargetROAS != nil && *opts.DefaultTargetROAS <= 0 {
		return nil, ErrInvalidTargetROAS
	}

	ordered := make([]domain.LabelStat, len(stats))
	copy(ordered, stats)
	domain.SortLabelStats(ordered)

	timestamp := now.UTC().Format(TimestampLayout)
	plans := make([]domain.CampaignPlan, 0, len(ordered))
	for _, stat := range ordered {
		plans = append(plans, domain.CampaignPlan{
			Label:             stat.Label,
			Name:              composeName(opts.Prefix, SanitizeLabel(stat.Label), timestamp),
			Impressions:       stat.Impressions,
			DailyBudgetMicros: micros,
			BiddingMode:       domain.BiddingMaximizeConversionValue,
			TargetROAS:        targetROAS(stat.Label, opts),
		})
	}
	return plans, nil
}

// BuildPlan builds the plan of a single label.
func BuildPlan(stat domain.LabelStat, opts Options, now time.Time) (domain.CampaignPlan, error) {
	plans, err := BuildPlans([]domain.LabelStat{stat}, opts, now)
	if err != nil {
		return domain.CampaignPlan{}, err
	}
	return plans[0], nil
}

// SanitizeLabel replaces runs of unsupported characters with a space, collapses whitespace
// and truncates to MaxLabelLength characters.
func SanitizeLabel(label string) string {
	safe := unsupportedChars.ReplaceAllString(label, " ")
	safe = strings.TrimSpace(whitespace.ReplaceAllString(safe, " "))
	if len(safe) > MaxLabelLength {
		safe = strings.TrimSpace(safe[:MaxLabelLength])
	}
	if safe == "" {
		return unnamedLabel
	}
	return safe
}

// CampaignName composes "{prefix} - {label} - {timestamp}", without the prefix segment when prefix is empty.
func CampaignName(prefix, label string, now time.Time) string {
	return composeName(prefix, SanitizeLabel(label), now.UTC().Format(TimestampLayout))
}

// BudgetMicros converts a currency amount to micros, rounding half away from zero.
func BudgetMicros(amount float64) (int64, error) {
	micros := decimal.NewFromFloat(amount).Mul(microsPerUnit).Round(0).IntPart()
	if micros <= 0 {
		return 0, ErrInvalidBudget
	}
	return micros, nil
}

func composeName(prefix, safeLabel, timestamp string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return safeLabel + " - " + timestamp
	}
	return prefix + " - " + safeLabel + " - " + timestamp
}

func targetROAS(label string, opts Options) *float64 {
	if v, ok := opts.Overrides[label]; ok && v > 0 {
		return &v
	}
	if opts.DefaultTargetROAS != nil {
		v := *opts.DefaultTargetROAS
		return &v
	}
	return nil
}
