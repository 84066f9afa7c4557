package eligibility

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"crosscall/internal/carrierconfig"
	"crosscall/internal/directory"
	"crosscall/internal/eligibility/mocks"
	"crosscall/pkg/domain"
	"crosscall/pkg/platform/sentinel"
)

// =============================================================================
// Eligibility Service Test Suite
// =============================================================================
// Justification for unit tests: the evaluation chain is the core control
// flow of the gateway. Tests verify gate ordering, short-circuiting (later
// collaborators must not be called once a gate fails), and the fail-safe
// posture under collaborator failures. gomock's unexpected-call detection
// doubles as the short-circuit assertion.

type ServiceSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	capability *mocks.MockCapabilityChecker
	lines      *mocks.MockLineDirectory
	companion  *mocks.MockCompanionSupport
	configs    *mocks.MockCarrierConfigs
	service    *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.capability = mocks.NewMockCapabilityChecker(s.ctrl)
	s.lines = mocks.NewMockLineDirectory(s.ctrl)
	s.companion = mocks.NewMockCompanionSupport(s.ctrl)
	s.configs = mocks.NewMockCarrierConfigs(s.ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.service, _ = New(s.capability, s.lines, s.companion, s.configs, WithLogger(logger))
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func singleLine(id domain.LineID) []directory.Line {
	return []directory.Line{{ID: id, Active: true, DisplayName: "Primary"}}
}

func enabledConfig() carrierconfig.Config {
	return carrierconfig.Config{carrierconfig.KeyCrossNetworkAvailable: true}
}

// =============================================================================
// Constructor Tests (Invariant Enforcement)
// =============================================================================

func (s *ServiceSuite) TestNew() {
	s.Run("nil capability checker returns error", func() {
		_, err := New(nil, s.lines, s.companion, s.configs)
		s.Error(err)
		s.Contains(err.Error(), "capability checker is required")
	})

	s.Run("nil line directory returns error", func() {
		_, err := New(s.capability, nil, s.companion, s.configs)
		s.Error(err)
		s.Contains(err.Error(), "line directory is required")
	})

	s.Run("nil companion support returns error", func() {
		_, err := New(s.capability, s.lines, nil, s.configs)
		s.Error(err)
		s.Contains(err.Error(), "companion support is required")
	})

	s.Run("nil carrier config store returns error", func() {
		_, err := New(s.capability, s.lines, s.companion, nil)
		s.Error(err)
		s.Contains(err.Error(), "carrier config store is required")
	})

	s.Run("valid collaborators returns configured service", func() {
		svc, err := New(s.capability, s.lines, s.companion, s.configs)
		s.NoError(err)
		s.NotNil(svc)
	})
}

// =============================================================================
// Gate Ordering and Short-Circuiting
// =============================================================================

func (s *ServiceSuite) TestEvaluate_ServiceNotConnected() {
	// No other expectations: a disconnected service must stop the chain
	// before any remote call.
	s.capability.EXPECT().Connected().Return(false)

	eval := s.service.Evaluate(context.Background(), 1)
	s.Equal(VerdictConditionallyUnavailable, eval.Verdict)
	s.Equal(ReasonServiceNotConnected, eval.Reason)
}

func (s *ServiceSuite) TestEvaluate_PlatformUnsupported() {
	s.capability.EXPECT().Connected().Return(true)
	s.capability.EXPECT().CrossNetworkSupported(gomock.Any(), domain.LineID(1)).Return(false)

	eval := s.service.Evaluate(context.Background(), 1)
	s.Equal(VerdictConditionallyUnavailable, eval.Verdict)
	s.Equal(ReasonPlatformUnsupported, eval.Reason)
}

func (s *ServiceSuite) TestEvaluate_DirectoryUnavailable() {
	s.capability.EXPECT().Connected().Return(true)
	s.capability.EXPECT().CrossNetworkSupported(gomock.Any(), domain.LineID(1)).Return(true)
	s.lines.EXPECT().ActiveLines(gomock.Any()).Return(nil, errors.New("directory offline"))

	eval := s.service.Evaluate(context.Background(), 1)
	s.Equal(VerdictConditionallyUnavailable, eval.Verdict)
	s.Equal(ReasonDirectoryUnavailable, eval.Reason)
}

func (s *ServiceSuite) TestEvaluate_LineNotActive() {
	s.capability.EXPECT().Connected().Return(true)
	s.capability.EXPECT().CrossNetworkSupported(gomock.Any(), domain.LineID(3)).Return(true)
	s.lines.EXPECT().ActiveLines(gomock.Any()).Return(singleLine(1), nil)

	eval := s.service.Evaluate(context.Background(), 3)
	s.Equal(VerdictConditionallyUnavailable, eval.Verdict)
	s.Equal(ReasonLineNotActive, eval.Reason)
}

func (s *ServiceSuite) TestEvaluate_MultipleActiveLines() {
	// Both lines pass every other gate; the single-line policy still gates
	// both. This is deliberate policy, not a technical limit.
	two := []directory.Line{
		{ID: 1, Active: true, DisplayName: "Personal"},
		{ID: 2, Active: true, DisplayName: "Work"},
	}
	for _, id := range []domain.LineID{1, 2} {
		s.capability.EXPECT().Connected().Return(true)
		s.capability.EXPECT().CrossNetworkSupported(gomock.Any(), id).Return(true)
		s.lines.EXPECT().ActiveLines(gomock.Any()).Return(two, nil)

		eval := s.service.Evaluate(context.Background(), id)
		s.Equal(VerdictConditionallyUnavailable, eval.Verdict)
		s.Equal(ReasonMultipleActiveLines, eval.Reason)
	}
}

func (s *ServiceSuite) TestEvaluate_CompanionUnsupported() {
	s.capability.EXPECT().Connected().Return(true)
	s.capability.EXPECT().CrossNetworkSupported(gomock.Any(), domain.LineID(1)).Return(true)
	s.lines.EXPECT().ActiveLines(gomock.Any()).Return(singleLine(1), nil)
	s.companion.EXPECT().Supported(gomock.Any(), domain.LineID(1)).Return(false, nil)

	eval := s.service.Evaluate(context.Background(), 1)
	s.Equal(VerdictConditionallyUnavailable, eval.Verdict)
	s.Equal(ReasonCompanionUnsupported, eval.Reason)
}

func (s *ServiceSuite) TestEvaluate_CompanionLookupFails() {
	s.capability.EXPECT().Connected().Return(true)
	s.capability.EXPECT().CrossNetworkSupported(gomock.Any(), domain.LineID(1)).Return(true)
	s.lines.EXPECT().ActiveLines(gomock.Any()).Return(singleLine(1), nil)
	s.companion.EXPECT().Supported(gomock.Any(), domain.LineID(1)).Return(false, errors.New("ims query failed"))

	eval := s.service.Evaluate(context.Background(), 1)
	s.Equal(VerdictConditionallyUnavailable, eval.Verdict)
	s.Equal(ReasonCompanionUnsupported, eval.Reason)
}

func (s *ServiceSuite) TestEvaluate_CarrierConfigAbsent() {
	s.capability.EXPECT().Connected().Return(true)
	s.capability.EXPECT().CrossNetworkSupported(gomock.Any(), domain.LineID(1)).Return(true)
	s.lines.EXPECT().ActiveLines(gomock.Any()).Return(singleLine(1), nil)
	s.companion.EXPECT().Supported(gomock.Any(), domain.LineID(1)).Return(true, nil)
	s.configs.EXPECT().ConfigFor(gomock.Any(), domain.LineID(1)).Return(nil, sentinel.ErrNotFound)

	eval := s.service.Evaluate(context.Background(), 1)
	s.Equal(VerdictConditionallyUnavailable, eval.Verdict)
	s.Equal(ReasonCarrierDisabled, eval.Reason)
}

func (s *ServiceSuite) TestEvaluate_CarrierConfigStoreUnreachable() {
	// An unreachable config store is distinct from an absent flag; both
	// resolve to the fail-safe verdict.
	s.capability.EXPECT().Connected().Return(true)
	s.capability.EXPECT().CrossNetworkSupported(gomock.Any(), domain.LineID(1)).Return(true)
	s.lines.EXPECT().ActiveLines(gomock.Any()).Return(singleLine(1), nil)
	s.companion.EXPECT().Supported(gomock.Any(), domain.LineID(1)).Return(true, nil)
	s.configs.EXPECT().ConfigFor(gomock.Any(), domain.LineID(1)).Return(nil, errors.New("store unreachable"))

	eval := s.service.Evaluate(context.Background(), 1)
	s.Equal(VerdictConditionallyUnavailable, eval.Verdict)
	s.Equal(ReasonCarrierDisabled, eval.Reason)
}

func (s *ServiceSuite) TestEvaluate_CarrierFlagMissing() {
	s.capability.EXPECT().Connected().Return(true)
	s.capability.EXPECT().CrossNetworkSupported(gomock.Any(), domain.LineID(1)).Return(true)
	s.lines.EXPECT().ActiveLines(gomock.Any()).Return(singleLine(1), nil)
	s.companion.EXPECT().Supported(gomock.Any(), domain.LineID(1)).Return(true, nil)
	s.configs.EXPECT().ConfigFor(gomock.Any(), domain.LineID(1)).Return(carrierconfig.Config{"carrier_name": "ExampleCell"}, nil)

	eval := s.service.Evaluate(context.Background(), 1)
	s.Equal(VerdictConditionallyUnavailable, eval.Verdict)
	s.Equal(ReasonCarrierDisabled, eval.Reason)
}

// =============================================================================
// Available Path
// =============================================================================

func (s *ServiceSuite) TestEvaluate_AllGatesPass() {
	s.capability.EXPECT().Connected().Return(true)
	s.capability.EXPECT().CrossNetworkSupported(gomock.Any(), domain.LineID(1)).Return(true)
	s.lines.EXPECT().ActiveLines(gomock.Any()).Return(singleLine(1), nil)
	s.companion.EXPECT().Supported(gomock.Any(), domain.LineID(1)).Return(true, nil)
	s.configs.EXPECT().ConfigFor(gomock.Any(), domain.LineID(1)).Return(enabledConfig(), nil)

	eval := s.service.Evaluate(context.Background(), 1)
	s.Equal(VerdictAvailable, eval.Verdict)
	s.Equal(ReasonAllChecksPassed, eval.Reason)
	s.True(eval.Available())
	if s.NotNil(eval.Line) {
		s.Equal(domain.LineID(1), eval.Line.ID)
		s.Equal("Primary", eval.Line.DisplayName)
	}
	s.False(eval.EvaluatedAt.IsZero())
}

// =============================================================================
// Verdicts Are Never Cached
// =============================================================================

func (s *ServiceSuite) TestEvaluate_RecomputedEveryCall() {
	// First call: available. Second call: service disconnected mid-session.
	// The second evaluation must observe the new state, not a cached verdict.
	s.capability.EXPECT().Connected().Return(true)
	s.capability.EXPECT().CrossNetworkSupported(gomock.Any(), domain.LineID(1)).Return(true)
	s.lines.EXPECT().ActiveLines(gomock.Any()).Return(singleLine(1), nil)
	s.companion.EXPECT().Supported(gomock.Any(), domain.LineID(1)).Return(true, nil)
	s.configs.EXPECT().ConfigFor(gomock.Any(), domain.LineID(1)).Return(enabledConfig(), nil)

	first := s.service.Evaluate(context.Background(), 1)
	s.Equal(VerdictAvailable, first.Verdict)

	s.capability.EXPECT().Connected().Return(false)

	second := s.service.Evaluate(context.Background(), 1)
	s.Equal(VerdictConditionallyUnavailable, second.Verdict)
	s.Equal(ReasonServiceNotConnected, second.Reason)
}
