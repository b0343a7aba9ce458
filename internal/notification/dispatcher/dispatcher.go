// Package dispatcher routes business event messages to the outbound channel.
// Dispatch is strictly best-effort: every attempt is logged, a delivery
// failure is recorded, and nothing ever propagates back into the business
// operation that fired it.
package dispatcher

import (
	"context"

	"github.com/RehanShaikh007/texhub-backend/internal/notification/domain"
	"github.com/RehanShaikh007/texhub-backend/pkg/logger"
)

type Dispatcher struct {
	settings domain.SettingRepository
	logs     domain.LogRepository
	notifier domain.Notifier
}

func New(settings domain.SettingRepository, logs domain.LogRepository, notifier domain.Notifier) *Dispatcher {
	return &Dispatcher{
		settings: settings,
		logs:     logs,
		notifier: notifier,
	}
}

// Dispatch sends message through the outbound channel if the category toggle
// is enabled. The toggle is read fresh on every call so runtime changes apply
// immediately. Never returns an error.
func (d *Dispatcher) Dispatch(ctx context.Context, category, message string) {
	setting, err := d.settings.FindByCategory(category)
	if err != nil {
		logger.Error(ctx).
			Err(err).
			Str("category", category).
			Msg("Failed to read notification setting")
		d.record(ctx, category, message, domain.DeliveryNotDelivered, err.Error())
		return
	}

	if !setting.Enabled {
		logger.Debug(ctx).
			Str("category", category).
			Msg("Notification category disabled, skipping send")
		d.record(ctx, category, message, domain.DeliveryDisabled, "")
		return
	}

	if err := d.notifier.Notify(ctx, message); err != nil {
		logger.Error(ctx).
			Err(err).
			Str("category", category).
			Msg("Notification delivery failed")
		d.record(ctx, category, message, domain.DeliveryNotDelivered, err.Error())
		return
	}

	d.record(ctx, category, message, domain.DeliveryDelivered, "")
}

func (d *Dispatcher) record(ctx context.Context, category, message, status, errMsg string) {
	row := &domain.Log{
		Category: category,
		Message:  message,
		Status:   status,
		Error:    errMsg,
	}
	if err := d.logs.Create(row); err != nil {
		logger.Error(ctx).
			Err(err).
			Str("category", category).
			Msg("Failed to write notification log")
	}
}
