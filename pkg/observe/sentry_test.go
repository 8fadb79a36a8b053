package observe

import (
	"errors"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kma-forecast/pkg/logger"
)

func newTestHook(events *[]*sentry.Event) *SentryHook {
	return &SentryHook{
		appZone: "test",
		appName: "kma-forecast",
		capture: func(event *sentry.Event) *sentry.EventID {
			*events = append(*events, event)
			return nil
		},
	}
}

func TestSentryHook_CapturesErrorLines(t *testing.T) {
	var events []*sentry.Event
	hook := newTestHook(&events)

	l := logger.NewZapLogger("kma-forecast", hook)
	l.Info("not captured")
	l.Warning("not captured either")
	l.Error(errors.New("portal returned 500"), map[string]any{"base_time": "0800"})

	require.Len(t, events, 1)
	event := events[0]
	assert.Equal(t, sentry.LevelError, event.Level)
	assert.Equal(t, "portal returned 500", event.Message)
	assert.Equal(t, "test", event.Environment)
	assert.Equal(t, "kma-forecast", event.Extra["AppName"])
	assert.Equal(t, "portal returned 500", event.Extra["Error"])
	require.Len(t, event.Exception, 1)
	assert.Equal(t, "portal returned 500", event.Exception[0].Value)
}

func TestSentryHook_IgnoresGarbage(t *testing.T) {
	var events []*sentry.Event
	hook := newTestHook(&events)

	n, err := hook.Write([]byte("not json"))
	assert.NoError(t, err)
	assert.Equal(t, len("not json"), n)

	_, err = hook.Write([]byte(`{"level":"shouting","msg":"x"}`))
	assert.NoError(t, err)

	assert.Empty(t, events)
}

func TestSentryHook_MapLevel(t *testing.T) {
	hook := &SentryHook{}

	assert.Equal(t, sentry.LevelFatal, hook.mapLevel(4))
	assert.Equal(t, sentry.LevelError, hook.mapLevel(2))
	assert.Equal(t, sentry.LevelWarning, hook.mapLevel(1))
	assert.Equal(t, sentry.LevelInfo, hook.mapLevel(0))
	assert.Equal(t, sentry.LevelDebug, hook.mapLevel(-1))
}

func TestNewSentryHook_RequiresDSN(t *testing.T) {
	_, err := NewSentryHook("test", "kma-forecast", false, "")
	assert.Error(t, err)
}
