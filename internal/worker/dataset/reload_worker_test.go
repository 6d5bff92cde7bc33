package dataset_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/inspection-map/internal/domain"
	"github.com/inspection-map/internal/usecase"
	"github.com/inspection-map/internal/worker/dataset"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

// MockReloader is a mock of Reloader
type MockReloader struct {
	mock.Mock
}

func (m *MockReloader) Reload(ctx context.Context, requestID, requestedBy string) (*domain.DatasetStatus, error) {
	args := m.Called(ctx, requestID, requestedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DatasetStatus), args.Error(1)
}

const group = "test-group"

// closedStream returns a stream that delivers msgs and then closes.
func closedStream(msgs ...domain.StreamMessage) <-chan domain.StreamMessage {
	ch := make(chan domain.StreamMessage, len(msgs))
	for _, m := range msgs {
		ch <- m
	}
	close(ch)
	return ch
}

func newWorker(stream *MockStreamRepository, reloader dataset.Reloader) *dataset.ReloadWorker {
	return dataset.NewReloadWorker(stream, reloader, group, zap.NewNop(),
		dataset.WithConsumerName("test-consumer"))
}

func expectConsume(stream *MockStreamRepository, ch <-chan domain.StreamMessage) {
	stream.On("CreateConsumerGroup", mock.Anything, domain.StreamDatasetReload, group).Return(nil)
	stream.On("ConsumeStream", mock.Anything, domain.StreamDatasetReload, group, "test-consumer").Return(ch, nil)
}

func loaded() *domain.DatasetStatus {
	return &domain.DatasetStatus{Version: "v2", Total: 42}
}

func TestReloadWorker_Name(t *testing.T) {
	w := newWorker(&MockStreamRepository{}, &MockReloader{})

	assert.Equal(t, "dataset-reload", w.Name())
	assert.Equal(t, group, w.ConsumerGroup())
	assert.Zero(t, w.Stats().Processed)
	assert.Zero(t, w.Stats().Failed)
}

func TestReloadWorker_ProcessesReloadRequest(t *testing.T) {
	stream := &MockStreamRepository{}
	reloader := &MockReloader{}

	expectConsume(stream, closedStream(domain.StreamMessage{
		ID:   "1-0",
		Data: `{"request_id":"req-1","requested_by":"ops","requested_at":"2024-09-01T12:00:00Z"}`,
	}))
	reloader.On("Reload", mock.Anything, "req-1", "ops").Return(loaded(), nil).Once()
	stream.On("AckMessage", mock.Anything, domain.StreamDatasetReload, group, "1-0").Return(nil).Once()

	w := newWorker(stream, reloader)
	require.NoError(t, w.Start(context.Background()))

	assert.Equal(t, int64(1), w.Stats().Processed)
	assert.Zero(t, w.Stats().Failed)
	stream.AssertExpectations(t)
	reloader.AssertExpectations(t)
}

func TestReloadWorker_MalformedMessageIsAcked(t *testing.T) {
	stream := &MockStreamRepository{}
	reloader := &MockReloader{}

	expectConsume(stream, closedStream(domain.StreamMessage{ID: "2-0", Data: "not json"}))
	stream.On("AckMessage", mock.Anything, domain.StreamDatasetReload, group, "2-0").Return(nil).Once()

	w := newWorker(stream, reloader)
	require.NoError(t, w.Start(context.Background()))

	assert.Equal(t, int64(1), w.Stats().Failed)
	reloader.AssertNotCalled(t, "Reload", mock.Anything, mock.Anything, mock.Anything)
	stream.AssertExpectations(t)
}

func TestReloadWorker_FailedReloadIsNotRetried(t *testing.T) {
	stream := &MockStreamRepository{}
	reloader := &MockReloader{}

	expectConsume(stream, closedStream(domain.StreamMessage{ID: "3-0", Data: `{"request_id":"req-3"}`}))
	reloader.On("Reload", mock.Anything, "req-3", "").Return(nil, errors.New("upstream 503")).Once()
	stream.On("AckMessage", mock.Anything, domain.StreamDatasetReload, group, "3-0").Return(nil).Once()

	w := newWorker(stream, reloader)
	require.NoError(t, w.Start(context.Background()))

	assert.Zero(t, w.Stats().Processed)
	assert.Equal(t, int64(1), w.Stats().Failed)
	reloader.AssertNumberOfCalls(t, "Reload", 1)
	stream.AssertExpectations(t)
}

// failingSource counts fetches and always fails.
type failingSource struct {
	calls atomic.Int32
}

func (s *failingSource) Fetch(context.Context) ([]domain.Restaurant, error) {
	s.calls.Add(1)
	return nil, errors.New("failed to load data: 503 Service Unavailable")
}

func (s *failingSource) Location() string {
	return "test://restaurants.json"
}

func TestReloadWorker_FetchesOncePerRequest(t *testing.T) {
	stream := &MockStreamRepository{}
	src := &failingSource{}
	datasets := usecase.NewDatasetUseCase(src, nil, nil, zap.NewNop())

	expectConsume(stream, closedStream(
		domain.StreamMessage{ID: "5-0", Data: `{"request_id":"req-5"}`},
		domain.StreamMessage{ID: "6-0", Data: `{"request_id":"req-6"}`},
	))
	stream.On("AckMessage", mock.Anything, domain.StreamDatasetReload, group, mock.Anything).Return(nil).Twice()

	w := newWorker(stream, datasets)
	require.NoError(t, w.Start(context.Background()))

	assert.Equal(t, int32(2), src.calls.Load())
	assert.Equal(t, int64(2), w.Stats().Failed)
	assert.NotEmpty(t, datasets.Status().Error)
	stream.AssertExpectations(t)
}

func TestReloadWorker_ConsumerGroupError(t *testing.T) {
	stream := &MockStreamRepository{}
	stream.On("CreateConsumerGroup", mock.Anything, domain.StreamDatasetReload, group).
		Return(errors.New("redis down"))

	w := newWorker(stream, &MockReloader{})
	err := w.Start(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "consumer group")
	stream.AssertNotCalled(t, "ConsumeStream", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReloadWorker_Stop(t *testing.T) {
	stream := &MockStreamRepository{}
	started := make(chan struct{})
	// Stream that never delivers and is never closed by the test
	var idle <-chan domain.StreamMessage = make(chan domain.StreamMessage)
	stream.On("CreateConsumerGroup", mock.Anything, domain.StreamDatasetReload, group).Return(nil)
	stream.On("ConsumeStream", mock.Anything, domain.StreamDatasetReload, group, "test-consumer").
		Run(func(mock.Arguments) { close(started) }).
		Return(idle, nil)

	w := newWorker(stream, &MockReloader{})

	done := make(chan error, 1)
	go func() {
		done <- w.Start(context.Background())
	}()

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("worker did not start consuming")
	}

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())
	assert.True(t, w.IsStopped())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestReloadWorker_ContextCancel(t *testing.T) {
	stream := &MockStreamRepository{}
	expectConsume(stream, make(chan domain.StreamMessage))

	w := newWorker(stream, &MockReloader{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, w.Start(ctx))
}
