package alert

import (
	"context"
	"errors"
	"time"

	"licenza/internal/domain/alert"
	"licenza/internal/domain/license"
	"licenza/internal/shared/biztime"
	appErrors "licenza/internal/shared/errors"
	"licenza/internal/shared/logger"
)

const digestSubject = "License Expiry Alerts"

// MailSender is the abstract mail transport the dispatcher depends on.
// Its failure is opaque; the raw error text is surfaced to the caller.
type MailSender interface {
	Send(settings *alert.Settings, subject, body string) error
}

// Service orchestrates one alert run: evaluate, format, send, then record.
// Ledger writes happen strictly after a confirmed send, so a transport
// failure can never consume a threshold crossing - the next run retries.
type Service struct {
	settingsRepo alert.SettingsRepository
	ledger       alert.LedgerRepository
	evaluator    *Evaluator
	mailer       MailSender
	logger       logger.Interface
	now          func() time.Time
}

// NewService creates a new alert service
func NewService(
	settingsRepo alert.SettingsRepository,
	licenseRepo license.Repository,
	ledger alert.LedgerRepository,
	mailer MailSender,
	logger logger.Interface,
) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		ledger:       ledger,
		evaluator:    NewEvaluator(licenseRepo, ledger),
		mailer:       mailer,
		logger:       logger,
		now:          biztime.NowUTC,
	}
}

// RunAlerts executes one alert run. The returned message is a one-line
// status for display; sent reports whether a mail actually went out.
func (s *Service) RunAlerts(ctx context.Context) (bool, string, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, alert.ErrSettingsNotFound) {
			return false, "", appErrors.NewNotFoundError("alert settings not configured")
		}
		return false, "", appErrors.NewInternalError("failed to load alert settings", err.Error())
	}

	thresholds := settings.ThresholdDays()
	today := biztime.DateOf(s.now())

	itemsByThreshold, err := s.evaluator.Evaluate(ctx, today, thresholds)
	if err != nil {
		return false, "", appErrors.NewInternalError("failed to evaluate thresholds", err.Error())
	}

	if !HasAny(itemsByThreshold) {
		return false, "no alerts to send", nil
	}

	body := FormatDigest(itemsByThreshold)

	if err := s.mailer.Send(settings, digestSubject, body); err != nil {
		if errors.Is(err, alert.ErrNoRecipients) {
			return false, "", appErrors.NewValidationError("no recipients configured")
		}
		return false, "", appErrors.NewUnavailableError("failed to send alert email", err.Error())
	}

	// Delivery is confirmed; record every included pair. A duplicate here
	// means a concurrent run won the race for that pair, which is fine.
	recorded := 0
	for t, items := range itemsByThreshold {
		for _, lic := range items {
			err := s.ledger.Record(ctx, alert.NewNotification(lic.ID(), t))
			if err != nil {
				if errors.Is(err, alert.ErrDuplicateNotification) {
					s.logger.Debugw("notification already recorded by concurrent run", "license_id", lic.ID(), "threshold", t)
					continue
				}
				s.logger.Errorw("failed to record notification after send", "license_id", lic.ID(), "threshold", t, "error", err)
				return true, "", appErrors.NewInternalError("alert sent but recording notifications failed", err.Error())
			}
			recorded++
		}
	}

	s.logger.Infow("alert run completed", "thresholds", len(thresholds), "notifications", recorded)
	return true, "alerts sent", nil
}

// SendTest sends a plain test message with the stored settings, bypassing
// the evaluator and the ledger entirely.
func (s *Service) SendTest(ctx context.Context) error {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, alert.ErrSettingsNotFound) {
			return appErrors.NewNotFoundError("alert settings not configured")
		}
		return appErrors.NewInternalError("failed to load alert settings", err.Error())
	}

	err = s.mailer.Send(settings, "License Alerts - Test", "This is a test message from the license alert service.")
	if err != nil {
		if errors.Is(err, alert.ErrNoRecipients) {
			return appErrors.NewValidationError("no recipients configured")
		}
		return appErrors.NewUnavailableError("failed to send test email", err.Error())
	}

	return nil
}
