package kafka_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"marketplace/internal/adapters/in/kafka"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReader struct{ mock.Mock }

func (m *MockReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	args := m.Called(ctx)
	return args.Get(0).(kafkago.Message), args.Error(1)
}

func (m *MockReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockReader) Close() error {
	return m.Called().Error(0)
}

func TestConsumer_Run(t *testing.T) {
	first := kafkago.Message{Offset: 1, Value: []byte("a")}
	second := kafkago.Message{Offset: 2, Value: []byte("b")}

	t.Run("should commit each handled message and stop on cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		defer cancel()
		reader := new(MockReader)
		reader.On("FetchMessage", mock.Anything).Return(first, nil).Once()
		reader.On("FetchMessage", mock.Anything).Return(second, nil).Once()
		reader.On("FetchMessage", mock.Anything).
			Run(func(mock.Arguments) { cancel() }).
			Return(kafkago.Message{}, context.Canceled).Once()
		reader.On("CommitMessages", mock.Anything, []kafkago.Message{first}).Return(nil).Once()
		reader.On("CommitMessages", mock.Anything, []kafkago.Message{second}).Return(nil).Once()
		reader.On("Close").Return(nil).Once()

		var handled []int64
		err := kafka.NewConsumer(reader, slog.Default()).Run(ctx, func(_ context.Context, m kafkago.Message) error {
			handled = append(handled, m.Offset)
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2}, handled)
		reader.AssertExpectations(t)
	})

	t.Run("should retry a failing message then skip it", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		defer cancel()
		reader := new(MockReader)
		reader.On("FetchMessage", mock.Anything).Return(first, nil).Once()
		reader.On("FetchMessage", mock.Anything).
			Run(func(mock.Arguments) { cancel() }).
			Return(kafkago.Message{}, context.Canceled).Once()
		reader.On("CommitMessages", mock.Anything, []kafkago.Message{first}).Return(nil).Once()
		reader.On("Close").Return(nil).Once()

		attempts := 0
		err := kafka.NewConsumer(reader, slog.Default()).
			WithRetry(3, 0).
			Run(ctx, func(context.Context, kafkago.Message) error {
				attempts++
				return errors.New("database down")
			})

		require.NoError(t, err)
		assert.Equal(t, 3, attempts)
		reader.AssertExpectations(t)
	})

	t.Run("should return reader failures", func(t *testing.T) {
		fetchErr := errors.New("broker unreachable")
		reader := new(MockReader)
		reader.On("FetchMessage", mock.Anything).Return(kafkago.Message{}, fetchErr).Once()
		reader.On("Close").Return(nil).Once()

		err := kafka.NewConsumer(reader, slog.Default()).Run(t.Context(), func(context.Context, kafkago.Message) error {
			return nil
		})

		assert.ErrorIs(t, err, fetchErr)
		reader.AssertNotCalled(t, "CommitMessages", mock.Anything, mock.Anything)
	})
}
