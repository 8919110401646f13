package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/multipaste/internal/core/notify"
)

// newTestController returns a controller driven by a fake clock.
func newTestController() (*ToastController, *time.Time) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewToastController()
	c.now = func() time.Time { return now }
	return c, &now
}

func TestToastController_Push(t *testing.T) {
	c, now := newTestController()

	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "hello"})

	assert.True(t, c.HasToasts())
	assert.Len(t, c.Toasts(), 1)
	assert.Equal(t, "hello", c.Toasts()[0].notification.Message)
	assert.Equal(t, now.Add(defaultToastTTL), c.Toasts()[0].expiresAt)
}

func TestToastController_Push_uses_notification_TTL(t *testing.T) {
	c, now := newTestController()

	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "short", TTL: 3 * time.Second})

	assert.Equal(t, now.Add(3*time.Second), c.Toasts()[0].expiresAt)
}

func TestToastController_Push_evicts_oldest_at_max(t *testing.T) {
	c := NewToastController()

	for i := range defaultMaxToasts + 2 {
		c.Push(notify.Notification{
			Level:   notify.LevelInfo,
			Message: time.Duration(i).String(),
		})
	}

	assert.Len(t, c.Toasts(), defaultMaxToasts)
	assert.Equal(t, "2ns", c.Toasts()[0].notification.Message)
}

func TestToastController_Tick_keeps_unexpired(t *testing.T) {
	c, now := newTestController()
	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "tick"})

	*now = now.Add(defaultToastTTL - time.Millisecond)
	c.Tick()

	assert.True(t, c.HasToasts())
}

func TestToastController_Tick_removes_expired(t *testing.T) {
	c, now := newTestController()
	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "expires", TTL: time.Second})
	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "survives"})

	*now = now.Add(time.Second)
	c.Tick()

	assert.Len(t, c.Toasts(), 1)
	assert.Equal(t, "survives", c.Toasts()[0].notification.Message)
}

func TestToastController_Dismiss(t *testing.T) {
	c := NewToastController()
	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "first"})
	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "second"})

	c.Dismiss()

	assert.Len(t, c.Toasts(), 1)
	assert.Equal(t, "first", c.Toasts()[0].notification.Message)
}

func TestToastController_Dismiss_empty(t *testing.T) {
	c := NewToastController()
	c.Dismiss()
	assert.False(t, c.HasToasts())
}

func TestToastController_DismissAll(t *testing.T) {
	c := NewToastController()
	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "a"})
	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "b"})

	c.DismissAll()

	assert.False(t, c.HasToasts())
	assert.Empty(t, c.Toasts())
}
