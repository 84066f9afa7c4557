package toggle_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crosscall/internal/audit"
	"crosscall/internal/calling"
	"crosscall/internal/toggle"
	"crosscall/pkg/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newController(t *testing.T, service calling.Service, opts ...toggle.Option) *toggle.Controller {
	t.Helper()
	opts = append([]toggle.Option{toggle.WithLogger(testLogger())}, opts...)
	controller, err := toggle.New(service, opts...)
	require.NoError(t, err)
	return controller
}

// =====================
// Constructor
// =====================

func TestNewRequiresCallingService(t *testing.T) {
	_, err := toggle.New(nil)
	assert.Error(t, err)
}

// =====================
// Reads
// =====================

func TestEnabledReflectsPlatformState(t *testing.T) {
	service := calling.NewSimulatedService()
	service.Provision(domain.LineID(1), true)
	service.Provision(domain.LineID(2), false)
	controller := newController(t, service)

	assert.True(t, controller.Enabled(context.Background(), domain.LineID(1)))
	assert.False(t, controller.Enabled(context.Background(), domain.LineID(2)))
}

func TestEnabledUnknownLineReportsOff(t *testing.T) {
	controller := newController(t, calling.NewSimulatedService())

	assert.False(t, controller.Enabled(context.Background(), domain.LineID(9)))
}

func TestEnabledResolutionFailureReportsOff(t *testing.T) {
	service := calling.NewSimulatedService()
	service.Provision(domain.LineID(1), true)
	service.FailResolutions(true)
	controller := newController(t, service)

	assert.False(t, controller.Enabled(context.Background(), domain.LineID(1)))
}

func TestEnabledReadFailureReportsOff(t *testing.T) {
	service := calling.NewSimulatedService()
	service.Provision(domain.LineID(1), true)
	service.FailReads(true)
	controller := newController(t, service)

	assert.False(t, controller.Enabled(context.Background(), domain.LineID(1)))
}

// =====================
// Writes
// =====================

func TestSetEnabledRoundTrip(t *testing.T) {
	service := calling.NewSimulatedService()
	service.Provision(domain.LineID(1), false)
	controller := newController(t, service)

	require.True(t, controller.SetEnabled(context.Background(), domain.LineID(1), true))
	assert.True(t, controller.Enabled(context.Background(), domain.LineID(1)))

	require.True(t, controller.SetEnabled(context.Background(), domain.LineID(1), false))
	assert.False(t, controller.Enabled(context.Background(), domain.LineID(1)))
}

func TestSetEnabledUnknownLineReportsNotApplied(t *testing.T) {
	controller := newController(t, calling.NewSimulatedService())

	assert.False(t, controller.SetEnabled(context.Background(), domain.LineID(9), true))
}

func TestSetEnabledWriteFailureReportsNotApplied(t *testing.T) {
	service := calling.NewSimulatedService()
	service.Provision(domain.LineID(1), false)
	service.FailWrites(true)
	controller := newController(t, service)

	assert.False(t, controller.SetEnabled(context.Background(), domain.LineID(1), true))
	// State is untouched after the failed write.
	assert.False(t, controller.Enabled(context.Background(), domain.LineID(1)))
}

// =====================
// Auditing
// =====================

func TestSetEnabledAuditsSuccessfulWrites(t *testing.T) {
	service := calling.NewSimulatedService()
	service.Provision(domain.LineID(1), false)
	publisher := audit.NewPublisher(audit.NewMemoryStore(), audit.WithLogger(testLogger()))
	defer publisher.Close()
	controller := newController(t, service, toggle.WithAudit(publisher))

	require.True(t, controller.SetEnabled(context.Background(), domain.LineID(1), true))
	require.True(t, controller.SetEnabled(context.Background(), domain.LineID(1), false))

	events, err := publisher.List(context.Background(), domain.LineID(1))
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, audit.ActionToggleEnabled, events[0].Action)
	assert.Equal(t, audit.ActionToggleDisabled, events[1].Action)
}

func TestSetEnabledFailedWriteIsNotAudited(t *testing.T) {
	service := calling.NewSimulatedService()
	service.Provision(domain.LineID(1), false)
	service.FailWrites(true)
	publisher := audit.NewPublisher(audit.NewMemoryStore(), audit.WithLogger(testLogger()))
	defer publisher.Close()
	controller := newController(t, service, toggle.WithAudit(publisher))

	require.False(t, controller.SetEnabled(context.Background(), domain.LineID(1), true))

	events, err := publisher.List(context.Background(), domain.LineID(1))
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestSetEnabledAuditFailureDoesNotFailWrite(t *testing.T) {
	service := calling.NewSimulatedService()
	service.Provision(domain.LineID(1), false)
	controller := newController(t, service, toggle.WithAudit(failingTrail{}))

	assert.True(t, controller.SetEnabled(context.Background(), domain.LineID(1), true))
	assert.True(t, controller.Enabled(context.Background(), domain.LineID(1)))
}

type failingTrail struct{}

func (failingTrail) Emit(context.Context, audit.Event) error {
	return assert.AnError
}
