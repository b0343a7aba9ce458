package dispatcher

import (
	"context"
	"errors"
	"os"
	"testing"

	"gorm.io/gorm"

	"github.com/RehanShaikh007/texhub-backend/internal/notification/domain"
	"github.com/RehanShaikh007/texhub-backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init("dispatcher-test", false)
	logger.SetLevel("error")
	os.Exit(m.Run())
}

type mockSettingRepository struct {
	settings map[string]*domain.Setting
}

func (m *mockSettingRepository) FindByCategory(category string) (*domain.Setting, error) {
	s, exists := m.settings[category]
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (m *mockSettingRepository) FindAll() ([]domain.Setting, error) {
	var result []domain.Setting
	for _, s := range m.settings {
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockSettingRepository) Upsert(setting *domain.Setting) error {
	m.settings[setting.Category] = setting
	return nil
}

type mockLogRepository struct {
	rows []domain.Log
}

func (m *mockLogRepository) Create(log *domain.Log) error {
	m.rows = append(m.rows, *log)
	return nil
}

func (m *mockLogRepository) FindAll(limit, offset int) ([]domain.Log, int64, error) {
	return m.rows, int64(len(m.rows)), nil
}

type mockChannel struct {
	sent    []string
	failErr error
}

func (m *mockChannel) Notify(ctx context.Context, message string) error {
	if m.failErr != nil {
		return m.failErr
	}
	m.sent = append(m.sent, message)
	return nil
}

func newDispatcherFixture(enabled bool, failErr error) (*mockLogRepository, *mockChannel, *Dispatcher) {
	settings := &mockSettingRepository{settings: map[string]*domain.Setting{
		domain.CategoryOrder: {Category: domain.CategoryOrder, Enabled: enabled},
	}}
	logs := &mockLogRepository{}
	channel := &mockChannel{failErr: failErr}
	return logs, channel, New(settings, logs, channel)
}

func TestDispatch_Delivered(t *testing.T) {
	logs, channel, d := newDispatcherFixture(true, nil)

	d.Dispatch(context.Background(), domain.CategoryOrder, "Order #1 created")

	if len(channel.sent) != 1 || channel.sent[0] != "Order #1 created" {
		t.Errorf("sent = %v, want the dispatched message", channel.sent)
	}
	if len(logs.rows) != 1 {
		t.Fatalf("log rows = %d, want 1", len(logs.rows))
	}
	if row := logs.rows[0]; row.Status != domain.DeliveryDelivered || row.Error != "" {
		t.Errorf("log row = %+v, want delivered without error", row)
	}
}

func TestDispatch_DisabledCategorySkipsSend(t *testing.T) {
	logs, channel, d := newDispatcherFixture(false, nil)

	d.Dispatch(context.Background(), domain.CategoryOrder, "Order #1 created")

	if len(channel.sent) != 0 {
		t.Error("disabled category must not reach the channel")
	}
	if len(logs.rows) != 1 || logs.rows[0].Status != domain.DeliveryDisabled {
		t.Errorf("log rows = %+v, want one disabled row", logs.rows)
	}
}

func TestDispatch_DeliveryFailureIsSwallowed(t *testing.T) {
	logs, _, d := newDispatcherFixture(true, errors.New("gateway timeout"))

	// Must not panic or propagate anything
	d.Dispatch(context.Background(), domain.CategoryOrder, "Order #1 created")

	if len(logs.rows) != 1 {
		t.Fatalf("log rows = %d, want 1", len(logs.rows))
	}
	row := logs.rows[0]
	if row.Status != domain.DeliveryNotDelivered {
		t.Errorf("status = %q, want not_delivered", row.Status)
	}
	if row.Error != "gateway timeout" {
		t.Errorf("error = %q, want the delivery error", row.Error)
	}
}

func TestDispatch_UnknownCategoryRecordsFailure(t *testing.T) {
	logs, channel, d := newDispatcherFixture(true, nil)

	d.Dispatch(context.Background(), "unseeded", "some message")

	if len(channel.sent) != 0 {
		t.Error("unknown category must not reach the channel")
	}
	if len(logs.rows) != 1 || logs.rows[0].Status != domain.DeliveryNotDelivered {
		t.Errorf("log rows = %+v, want one not_delivered row", logs.rows)
	}
}
