package eventbus

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type rowsLoaded struct {
	count int
}

type gridNavigated struct {
	year int
}

func TestPublisher_Subscribe(t *testing.T) {
	publisher := NewEventPublisher(logrus.New())
	var got int
	publisher.Subscribe(func(e *rowsLoaded) {
		got = e.count
	})
	publisher.Publish(&rowsLoaded{count: 20})
	assert.Equal(t, 20, got)
}

func TestPublisher_NoMatchingSubscriber(t *testing.T) {
	logBuffer := bytes.Buffer{}
	log := logrus.New()
	log.SetOutput(&logBuffer)
	log.SetLevel(logrus.WarnLevel)

	publisher := NewEventPublisher(log)
	publisher.Subscribe(func(e *rowsLoaded) {
		t.Error("should not be called")
	})
	publisher.Publish(&gridNavigated{year: 2024})

	assert.Contains(t, logBuffer.String(), "no matching subscribers")
}

func TestPublisher_PanickingHandlerIsIsolated(t *testing.T) {
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})

	publisher := NewEventPublisher(log)
	publisher.Subscribe(func(e *rowsLoaded) {
		panic("boom")
	})
	called := false
	publisher.Subscribe(func(e *rowsLoaded) {
		called = true
	})
	publisher.Publish(&rowsLoaded{count: 1})
	assert.True(t, called)
}

func TestPublisher_Unsubscribe(t *testing.T) {
	publisher := NewEventPublisher(logrus.New())
	handler := func(e *rowsLoaded) {
		t.Error("should not be called after unsubscribe")
	}
	publisher.Subscribe(handler)
	assert.Equal(t, 1, publisher.SubscribersCount())
	publisher.Unsubscribe(handler)
	assert.Equal(t, 0, publisher.SubscribersCount())
}

func TestMatchSignature(t *testing.T) {
	assert.True(t, MatchSignature(func(e *rowsLoaded) {}, []interface{}{&rowsLoaded{}}))
	assert.False(t, MatchSignature(func(e *rowsLoaded) {}, []interface{}{&gridNavigated{}}))
	assert.False(t, MatchSignature(func(e *rowsLoaded) {}, []interface{}{}))
	assert.False(t, MatchSignature(func(e *rowsLoaded) {}, []interface{}{&rowsLoaded{}, &rowsLoaded{}}))
	assert.False(t, MatchSignature("not a func", []interface{}{&rowsLoaded{}}))
}
