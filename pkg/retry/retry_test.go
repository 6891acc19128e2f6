package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy(slept *[]time.Duration) Policy {
	p := DefaultPolicy()
	p.Rand = func() float64 { return 0 }
	p.Sleep = func(_ context.Context, d time.Duration) error {
		*slept = append(*slept, d)
		return nil
	}
	return p
}

func TestPolicyDoRetriesTransientFailures(t *testing.T) {
	transient := Mark(errors.New("concurrent modification"), Transient, "CONCURRENT_MODIFICATION")

	tests := []struct {
		name      string
		failures  int
		wantCalls int
		wantErr   bool
	}{
		{name: "Succeeds on the first call without sleeping", failures: 0, wantCalls: 1},
		{name: "Fails twice then succeeds on the third call", failures: 2, wantCalls: 3},
		{name: "Fails five times then succeeds on the last allowed call", failures: 5, wantCalls: 6},
		{name: "Fails six times and propagates after exactly six calls", failures: 6, wantCalls: 6, wantErr: true},
		{name: "Fails forever and stops at the attempt ceiling", failures: 100, wantCalls: 6, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var slept []time.Duration
			calls := 0

			result, err := DoValue(context.Background(), testPolicy(&slept), "mutate", func() (string, error) {
				calls++
				if calls <= tt.failures {
					return "", transient
				}
				return "ok", nil
			})

			assert.Equal(t, tt.wantCalls, calls)
			assert.Len(t, slept, tt.wantCalls-1)
			if tt.wantErr {
				assert.Same(t, transient, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ok", result)
		})
	}
}

func TestPolicyDoDoesNotRetryPermanentFailures(t *testing.T) {
	var slept []time.Duration
	permanent := errors.New("invalid argument")
	calls := 0

	err := testPolicy(&slept).Do(context.Background(), "mutate", func() error {
		calls++
		return permanent
	})

	assert.Same(t, permanent, err)
	assert.Equal(t, 1, calls)
	assert.Empty(t, slept)
}

func TestPolicyDelayGrowsExponentially(t *testing.T) {
	var slept []time.Duration
	p := testPolicy(&slept)
	calls := 0

	_ = p.Do(context.Background(), "search", func() error {
		calls++
		return Mark(errors.New("unavailable"), Transient, "UNAVAILABLE")
	})

	require.Len(t, slept, 5)
	assert.Equal(t, time.Second, slept[0])
	assert.Equal(t, 1600*time.Millisecond, slept[1])
	assert.Equal(t, 2560*time.Millisecond, slept[2])
	assert.InDelta(t, float64(4096*time.Millisecond), float64(slept[3]), float64(time.Millisecond))
}

func TestPolicyDelayAppliesJitter(t *testing.T) {
	p := DefaultPolicy()

	assert.Equal(t, time.Second, p.Delay(1, 0))
	assert.Equal(t, 1250*time.Millisecond, p.Delay(1, 1))
	assert.Equal(t, 2000*time.Millisecond, p.Delay(2, 1))
}

func TestPolicyDoStopsWhenContextIsCancelled(t *testing.T) {
	p := DefaultPolicy()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	transient := Mark(errors.New("unavailable"), Transient, "UNAVAILABLE")
	calls := 0
	err := p.Do(ctx, "search", func() error {
		calls++
		return transient
	})

	assert.Same(t, transient, err)
	assert.Equal(t, 1, calls)
}

func TestPolicyDoReportsRetries(t *testing.T) {
	var slept []time.Duration
	p := testPolicy(&slept)
	var reasons []string
	p.OnRetry = func(operation, reason string) {
		reasons = append(reasons, operation+":"+reason)
	}
	calls := 0

	err := p.Do(context.Background(), "create_budget", func() error {
		calls++
		if calls == 1 {
			return Mark(errors.New("quota"), Transient, "RESOURCE_EXHAUSTED")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"create_budget:RESOURCE_EXHAUSTED"}, reasons)
}

func TestClassOf(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), Mark(errors.New("boom"), Transient, "INTERNAL_ERROR"))

	class, reason := ClassOf(wrapped)
	assert.Equal(t, Transient, class)
	assert.Equal(t, "INTERNAL_ERROR", reason)

	class, _ = ClassOf(errors.New("plain"))
	assert.Equal(t, Permanent, class)
	assert.False(t, IsTransient(nil))
}
