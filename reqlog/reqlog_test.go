package reqlog

import (
	"context"
	"database/sql"
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mailru/easyjson"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dialogs/dialog-acceptor/kafka"
	"github.com/dialogs/dialog-acceptor/kafka/mocks"
)

func newRecord(payload string) *Record {
	return &Record{
		ID:         "7b0a3c4e-2f1d-4c55-9a2e-0b5f3f0d1a10",
		RemoteAddr: "127.0.0.1:40000",
		Payload:    payload,
		ReceivedAt: time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestRecordJSON(t *testing.T) {

	data, err := easyjson.Marshal(newRecord("GET /\r\n"))
	require.NoError(t, err)
	require.JSONEq(t,
		`{"id":"7b0a3c4e-2f1d-4c55-9a2e-0b5f3f0d1a10","remoteAddr":"127.0.0.1:40000","payload":"GET /\r\n","receivedAt":"2020-01-02T03:04:05Z"}`,
		string(data))

	rec := &Record{}
	require.NoError(t, easyjson.Unmarshal(data, rec))
	require.Equal(t, newRecord("GET /\r\n"), rec)

	require.Error(t, easyjson.Unmarshal([]byte(`{"id":`), &Record{}))
}

func TestFileSink(t *testing.T) {

	dir, err := ioutil.TempDir("", "reqlog")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "log.txt")
	s := NewFileSink(path)
	require.Equal(t, path, s.Path())

	for _, payload := range []string{"first", "", "third"} {
		require.NoError(t, s.Write(context.Background(), newRecord(payload)))
	}
	require.NoError(t, s.Close())

	data, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "first\n\nthird\n", string(data))

	require.Equal(t, DefaultFile, NewFileSink("").Path())
}

func TestFileSinkBestEffort(t *testing.T) {

	dir, err := ioutil.TempDir("", "reqlog")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	s := NewFileSink(filepath.Join(dir, "missing", "log.txt"))
	require.NoError(t, s.Write(context.Background(), newRecord("lost")))
}

func TestKafkaSink(t *testing.T) {

	w := mocks.NewWriter()
	s := NewKafkaSink(w, time.Second)

	rec := newRecord("payload")
	require.NoError(t, s.Write(context.Background(), rec))
	require.NoError(t, s.Close())

	msgs := w.Messages()
	require.Len(t, msgs, 1)
	require.Equal(t, []byte(rec.ID), msgs[0].Key)
	require.Equal(t, rec.ReceivedAt, msgs[0].Time)

	decoded := &Record{}
	require.NoError(t, easyjson.Unmarshal(msgs[0].Value, decoded))
	require.Equal(t, rec, decoded)

	w.AssertNumberOfCalls(t, "WriteMessages", 1)
	w.AssertCalled(t, "Close")
}

func TestKafkaSinkError(t *testing.T) {

	w := &mocks.WriterMock{}
	w.On("WriteMessages", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	err := NewKafkaSink(w, time.Second).Write(context.Background(), newRecord("payload"))
	require.EqualError(t, err, "failed to publish request record: broker down")
	require.Empty(t, w.Messages())
}

func TestKafkaSinkTimeout(t *testing.T) {

	w := &mocks.WriterMock{}
	w.On("WriteMessages", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			<-args.Get(0).(context.Context).Done()
		}).
		Return(context.DeadlineExceeded)

	start := time.Now()
	err := NewKafkaSink(w, 50*time.Millisecond).Write(context.Background(), newRecord("payload"))
	require.EqualError(t, err, "failed to publish request record: context deadline exceeded")
	require.True(t, time.Since(start) < 5*time.Second)
}

type execMock struct {
	mock.Mock
}

func (m *execMock) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, m.Called(ctx, query, args).Error(1)
}

func (m *execMock) Close() error {
	return m.Called().Error(0)
}

func TestPostgresSink(t *testing.T) {

	rec := newRecord("payload")

	conn := &execMock{}
	conn.On("ExecContext", mock.Anything, insertRecord,
		[]interface{}{rec.ID, rec.RemoteAddr, []byte(rec.Payload), rec.ReceivedAt}).
		Return(nil, nil).Once()
	conn.On("ExecContext", mock.Anything, insertRecord, mock.Anything).
		Return(nil, errors.New("duplicate key"))
	conn.On("Close").Return(nil)

	s := newPostgresSink(conn)
	require.NoError(t, s.Write(context.Background(), rec))
	require.EqualError(t,
		s.Write(context.Background(), rec),
		"failed to insert request record: duplicate key")
	require.NoError(t, s.Close())

	conn.AssertExpectations(t)
}

func TestPostgresSinkBinaryPayload(t *testing.T) {

	rec := newRecord("\x00\xff\xfebin\x00")

	conn := &execMock{}
	conn.On("ExecContext", mock.Anything, insertRecord,
		[]interface{}{rec.ID, rec.RemoteAddr, []byte{0x00, 0xff, 0xfe, 'b', 'i', 'n', 0x00}, rec.ReceivedAt}).
		Return(nil, nil).Once()

	require.NoError(t, newPostgresSink(conn).Write(context.Background(), rec))
	conn.AssertExpectations(t)
}

type failSink struct {
	name string
}

func (s failSink) Write(context.Context, *Record) error { return errors.New(s.name) }
func (s failSink) Close() error                         { return errors.New(s.name) }

func TestMultiSink(t *testing.T) {

	w := mocks.NewWriter()
	m := MultiSink{failSink{name: "a"}, NewKafkaSink(w, time.Second), failSink{name: "b"}}

	require.EqualError(t,
		m.Write(context.Background(), newRecord("x")),
		"request log: a; b")

	// a failed sink does not stop the others
	require.Len(t, w.Messages(), 1)

	require.EqualError(t, m.Close(), "close request log: a; b")

	require.NoError(t, MultiSink{}.Write(context.Background(), newRecord("x")))
}

func TestNew(t *testing.T) {

	{
		s, err := New(context.Background(), Config{File: "requests.txt"})
		require.NoError(t, err)
		require.IsType(t, &FileSink{}, s)
		require.Equal(t, "requests.txt", s.(*FileSink).Path())
	}

	{
		s, err := New(context.Background(), Config{
			Kafka: kafka.Config{Brokers: []string{"localhost:9092"}},
		})
		require.EqualError(t, err, "kafka.topic: was not set")
		require.Nil(t, s)
	}
}
