package alert

import (
	"context"
	"fmt"
	"time"

	"licenza/internal/domain/alert"
	"licenza/internal/domain/license"
	"licenza/internal/shared/biztime"
)

// Evaluator decides which licenses newly cross each configured threshold.
// A license qualifies for threshold T when it expires between today and
// today+T days inclusive and no ledger entry for (license, T) exists yet.
// The same license may qualify for several thresholds in one run.
type Evaluator struct {
	licenseRepo license.Repository
	ledger      alert.LedgerRepository
}

// NewEvaluator creates a new Evaluator
func NewEvaluator(licenseRepo license.Repository, ledger alert.LedgerRepository) *Evaluator {
	return &Evaluator{
		licenseRepo: licenseRepo,
		ledger:      ledger,
	}
}

// Evaluate returns the threshold -> licenses mapping for one run. Every
// threshold is present in the result; groups may be empty.
func (e *Evaluator) Evaluate(ctx context.Context, today time.Time, thresholds []int) (map[int][]*license.License, error) {
	today = biztime.DateOf(today)

	result := make(map[int][]*license.License, len(thresholds))
	for _, t := range thresholds {
		limit := biztime.AddDays(today, t)

		candidates, err := e.licenseRepo.FindByExpiryRange(ctx, nil, today, limit)
		if err != nil {
			return nil, fmt.Errorf("failed to load licenses for threshold %d: %w", t, err)
		}

		group := make([]*license.License, 0, len(candidates))
		for _, lic := range candidates {
			notified, err := e.ledger.Exists(ctx, lic.ID(), t)
			if err != nil {
				return nil, fmt.Errorf("failed to check ledger for license %d threshold %d: %w", lic.ID(), t, err)
			}
			if !notified {
				group = append(group, lic)
			}
		}
		result[t] = group
	}

	return result, nil
}

// HasAny reports whether any threshold group is non-empty.
func HasAny(itemsByThreshold map[int][]*license.License) bool {
	for _, group := range itemsByThreshold {
		if len(group) > 0 {
			return true
		}
	}
	return false
}
