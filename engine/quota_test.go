package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/routekit/routekit/engine"
)

func TestNoQuota_NeverExceeded(t *testing.T) {
	assert.False(t, engine.NoQuota.IsExceeded())
}

func TestTimeQuota_ExceedsAfterDeadline(t *testing.T) {
	q := engine.NewTimeQuota(1 * time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	assert.True(t, q.IsExceeded())
}

func TestTimeQuota_NotExceededBeforeDeadline(t *testing.T) {
	q := engine.NewTimeQuota(1 * time.Hour)
	assert.False(t, q.IsExceeded())
}
