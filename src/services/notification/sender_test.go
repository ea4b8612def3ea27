package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPublishWithContext_ReturnsPublishResult(t *testing.T) {
	publishErr := errors.New("channel closed")

	err := publishWithContext(context.Background(), func() error { return publishErr })
	assert.ErrorIs(t, err, publishErr)

	err = publishWithContext(context.Background(), func() error { return nil })
	assert.NoError(t, err)
}

// A broker that never answers must not hold the dispatch past its timeout.
func TestPublishWithContext_HungPublisherHitsTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	blocked := make(chan struct{})
	defer close(blocked)

	start := time.Now()
	err := publishWithContext(ctx, func() error {
		<-blocked
		return nil
	})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}
