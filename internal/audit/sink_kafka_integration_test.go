//go:build integration

package audit_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kgo"

	"crosscall/internal/audit"
	"crosscall/pkg/domain"
	"crosscall/pkg/testutil/containers"
)

type KafkaSinkSuite struct {
	suite.Suite
	broker string
	sink   *audit.KafkaSink
}

func TestKafkaSinkSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(KafkaSinkSuite))
}

func (s *KafkaSinkSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.broker = mgr.GetRedpanda(s.T()).Broker

	sink, err := audit.NewKafkaSink([]string{s.broker}, "crosscall.audit.test", nil)
	s.Require().NoError(err)
	s.sink = sink
}

func (s *KafkaSinkSuite) TearDownSuite() {
	if s.sink != nil {
		s.sink.Close()
	}
}

func (s *KafkaSinkSuite) TestPublishIsConsumable() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	event := audit.Event{
		ID:        uuid.New(),
		Timestamp: time.Now().UTC(),
		Action:    audit.ActionToggleEnabled,
		LineID:    domain.LineID(1),
		Actor:     "ops@example.com",
	}
	s.Require().NoError(s.sink.Publish(ctx, event))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(s.broker),
		kgo.ConsumeTopics("crosscall.audit.test"),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	s.Require().NoError(err)
	defer consumer.Close()

	fetches := consumer.PollFetches(ctx)
	s.Require().NoError(fetches.Err())
	records := fetches.Records()
	s.Require().NotEmpty(records)

	var decoded struct {
		ID     string `json:"id"`
		Action string `json:"action"`
		LineID string `json:"line_id"`
		Actor  string `json:"actor"`
	}
	s.Require().NoError(json.Unmarshal(records[len(records)-1].Value, &decoded))
	s.Equal(event.ID.String(), decoded.ID)
	s.Equal(string(audit.ActionToggleEnabled), decoded.Action)
	s.Equal("1", decoded.LineID)
	s.Equal("ops@example.com", decoded.Actor)
	s.Equal([]byte("1"), records[len(records)-1].Key)
}

func (s *KafkaSinkSuite) TestNewKafkaSinkCreatesTopic() {
	sink, err := audit.NewKafkaSink([]string{s.broker}, "crosscall.audit.ensure", nil)
	s.Require().NoError(err)
	sink.Close()

	// Second construction sees the existing topic and must not fail.
	sink, err = audit.NewKafkaSink([]string{s.broker}, "crosscall.audit.ensure", nil)
	s.Require().NoError(err)
	sink.Close()
}
