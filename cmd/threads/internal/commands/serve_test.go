package commands

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitForStop(t *testing.T) {
	tests := []struct {
		name    string
		start   func() error
		wantErr bool
	}{
		{
			name:  "server closed",
			start: func() error { return http.ErrServerClosed },
		},
		{
			name:  "clean return",
			start: func() error { return nil },
		},
		{
			name:    "listen failure",
			start:   func() error { return errors.New("listen tcp :8080: bind: address already in use") },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := waitForStop(context.Background(), tt.start)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "address already in use")
			assert.NotContains(t, err.Error(), "%!w")
		})
	}
}

func TestWaitForStop_signal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	block := make(chan struct{})
	defer close(block)

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := waitForStop(ctx, func() error {
		<-block
		return http.ErrServerClosed
	})
	assert.NoError(t, err)
}
