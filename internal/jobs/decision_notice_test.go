package jobs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"crewcycle.io/crewcycle/internal/notification"
	"crewcycle.io/crewcycle/internal/pkg/logger"
	"crewcycle.io/crewcycle/internal/pkg/worker"
)

// recordingMailer captures batches and fails configured recipients.
type recordingMailer struct {
	mu      sync.Mutex
	batches [][]notification.Message
	failTo  map[string]bool
}

func (m *recordingMailer) Send(_ context.Context, msg notification.Message) error {
	errs := m.SendBatch(context.Background(), []notification.Message{msg})
	return errs[0]
}

func (m *recordingMailer) SendBatch(_ context.Context, msgs []notification.Message) []error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.batches = append(m.batches, msgs)
	errs := make([]error, len(msgs))
	for i, msg := range msgs {
		if m.failTo[msg.To] {
			errs[i] = errors.New("relay rejected recipient")
		}
	}
	return errs
}

func newNoticeMessages(n int) []notification.Message {
	msgs := make([]notification.Message, 0, n)
	for i := 0; i < n; i++ {
		msgs = append(msgs, notification.Message{
			To:      fmt.Sprintf("applicant-%d@example.com", i),
			Subject: "Your application status",
		})
	}
	return msgs
}

func newMailPool(t *testing.T) *worker.Pool {
	t.Helper()
	_ = logger.Init("error", "console")
	pools, err := worker.NewPools(context.Background(), worker.DefaultPoolConfig())
	require.NoError(t, err)
	t.Cleanup(pools.Shutdown)
	return pools.Mail
}

func TestDecisionNoticeDispatch_ChunksThroughMailPool(t *testing.T) {
	mailer := &recordingMailer{}
	w := NewDecisionNoticeWorker(nil, mailer, newMailPool(t), 2)

	failed := w.dispatch(context.Background(), "cycle-1", newNoticeMessages(5))
	require.Equal(t, 0, failed)

	require.Len(t, mailer.batches, 3)
	require.Len(t, mailer.batches[0], 2)
	require.Len(t, mailer.batches[1], 2)
	require.Len(t, mailer.batches[2], 1)
}

func TestDecisionNoticeDispatch_ChunkFailureDoesNotStopLaterChunks(t *testing.T) {
	mailer := &recordingMailer{failTo: map[string]bool{"applicant-0@example.com": true}}
	w := NewDecisionNoticeWorker(nil, mailer, newMailPool(t), 2)

	failed := w.dispatch(context.Background(), "cycle-1", newNoticeMessages(5))
	require.Equal(t, 1, failed)
	require.Len(t, mailer.batches, 3)
}

func TestDecisionNoticeDispatch_CancelledContextFailsRemaining(t *testing.T) {
	mailer := &recordingMailer{}
	w := NewDecisionNoticeWorker(nil, mailer, newMailPool(t), 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	failed := w.dispatch(ctx, "cycle-1", newNoticeMessages(4))
	require.Equal(t, 4, failed)
	require.Empty(t, mailer.batches)
}
