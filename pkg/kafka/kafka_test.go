package kafka_test

import (
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	cb "github.com/sociopath-little-dragon/library-bd/pkg/circuit_breaker"
	"github.com/sociopath-little-dragon/library-bd/pkg/kafka"
	"github.com/sociopath-little-dragon/library-bd/pkg/serializer"
)

type event struct {
	Type   string `json:"type"`
	LoanID int64  `json:"loanId"`
}

func TestEnqueuer_Enqueue(t *testing.T) {
	t.Parallel()
	producer := mocks.NewSyncProducer(t, sarama.NewConfig())
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var got event
		if err := serializer.JSON.Unmarshal(val, &got); err != nil {
			return err
		}
		if got.Type != "loan.issued" || got.LoanID != 7 {
			return errors.New("unexpected payload " + string(val))
		}
		return nil
	})

	breaker := cb.New(cb.Config{RecordLength: 2, Timeout: time.Minute, Percentile: 1, RecoveryRequests: 1})
	q := kafka.NewEnqueuer(producer, breaker, zap.NewNop())

	require.NoError(t, q.Enqueue(kafka.LoanTopic, "7", event{Type: "loan.issued", LoanID: 7}))
	require.NoError(t, q.Close())
}

func TestEnqueuer_BreakerOpensOnBrokerFailures(t *testing.T) {
	t.Parallel()
	brokerErr := errors.New("broker down")
	producer := mocks.NewSyncProducer(t, sarama.NewConfig())
	producer.ExpectSendMessageAndFail(brokerErr)
	producer.ExpectSendMessageAndFail(brokerErr)

	breaker := cb.New(cb.Config{RecordLength: 2, Timeout: time.Hour, Percentile: 1, RecoveryRequests: 1})
	q := kafka.NewEnqueuer(producer, breaker, zap.NewNop())

	require.ErrorIs(t, q.Enqueue(kafka.LoanTopic, "1", event{Type: "loan.returned"}), brokerErr)
	require.ErrorIs(t, q.Enqueue(kafka.LoanTopic, "1", event{Type: "loan.returned"}), brokerErr)
	require.Equal(t, cb.Open, breaker.State())

	require.ErrorIs(t, q.Enqueue(kafka.LoanTopic, "1", event{Type: "loan.returned"}), cb.ErrOpenCB)
	require.NoError(t, q.Close())
}

func TestNoopEnqueuer(t *testing.T) {
	t.Parallel()
	q := kafka.NewNoopEnqueuer()
	require.NoError(t, q.Enqueue(kafka.LoanTopic, "1", event{}))
	require.NoError(t, q.Close())
}
