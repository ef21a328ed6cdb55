package consumer_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-roster/internal/bootstrap"
	"go-roster/internal/events"
	"go-roster/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeReader struct {
	msgs      []kafkago.Message
	fetchErrs []error
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.fetchErrs) > 0 {
		err := r.fetchErrs[0]
		r.fetchErrs = r.fetchErrs[1:]
		return kafkago.Message{}, err
	}
	if len(r.msgs) == 0 {
		r.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

type recordingAudit struct {
	entries []bootstrap.AuditLog
}

func (a *recordingAudit) Log(_ context.Context, entry bootstrap.AuditLog) {
	a.entries = append(a.entries, entry)
}

func lifecycleMessage(t *testing.T, offset int64, event events.EmployeeLifecycleEvent) kafkago.Message {
	t.Helper()
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	return kafkago.Message{Topic: events.EmployeeLifecycleTopic, Offset: offset, Value: payload}
}

func TestConsumeRosterLifecycle(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	active := true
	reader := &fakeReader{
		cancel:    cancel,
		fetchErrs: []error{errors.New("broker hiccup")},
		msgs: []kafkago.Message{
			lifecycleMessage(t, 1, events.EmployeeLifecycleEvent{
				EventType:  events.EmployeeCreated,
				RequestID:  "req-1",
				EmployeeID: "EMP-1",
				Active:     &active,
				OccurredAt: time.Now().UTC(),
			}),
			{Topic: events.EmployeeLifecycleTopic, Offset: 2, Value: []byte(`not json`)},
			lifecycleMessage(t, 3, events.EmployeeLifecycleEvent{
				EventType:  events.EmployeeDeleted,
				EmployeeID: "EMP-1",
				OccurredAt: time.Now().UTC(),
			}),
		},
	}
	audit := &recordingAudit{}

	consumer.ConsumeRosterLifecycle(ctx, reader, audit, zap.NewNop())

	require.Len(t, audit.entries, 2)
	assert.Equal(t, "EMPLOYEE_CREATED", audit.entries[0].Action)
	assert.Equal(t, "employee EMP-1 created", audit.entries[0].Message)
	assert.Equal(t, "req-1", audit.entries[0].Meta["request_id"])
	assert.Equal(t, true, audit.entries[0].Meta["active"])
	assert.Equal(t, "EMPLOYEE_DELETED", audit.entries[1].Action)
	assert.NotContains(t, audit.entries[1].Meta, "active")

	offsets := make([]int64, len(reader.committed))
	for i, m := range reader.committed {
		offsets[i] = m.Offset
	}
	assert.Equal(t, []int64{1, 2, 3}, offsets)
}
