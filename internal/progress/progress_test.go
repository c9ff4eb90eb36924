package progress

import "testing"

// TestNewChannelCallback verifies forwarding and the non-blocking guarantee.
func TestNewChannelCallback(t *testing.T) {
	t.Parallel()

	t.Run("forwards updates with the calculator index", func(t *testing.T) {
		t.Parallel()
		ch := make(chan ProgressUpdate, 1)
		cb := NewChannelCallback(ch, 3)
		cb(0.5)

		update := <-ch
		if update.CalculatorIndex != 3 {
			t.Errorf("CalculatorIndex = %d, want 3", update.CalculatorIndex)
		}
		if update.Value != 0.5 {
			t.Errorf("Value = %f, want 0.5", update.Value)
		}
	})

	t.Run("drops updates when the buffer is full", func(t *testing.T) {
		t.Parallel()
		ch := make(chan ProgressUpdate, 1)
		cb := NewChannelCallback(ch, 0)
		cb(0.1)
		cb(0.2) // must not block
		if update := <-ch; update.Value != 0.1 {
			t.Errorf("Value = %f, want first update 0.1", update.Value)
		}
	})

	t.Run("nil channel yields no-op", func(t *testing.T) {
		t.Parallel()
		cb := NewChannelCallback(nil, 0)
		cb(1.0) // must not panic
	})
}

// TestStepReporter verifies throttling behavior.
func TestStepReporter(t *testing.T) {
	t.Parallel()

	t.Run("reports first and last step", func(t *testing.T) {
		t.Parallel()
		var got []float64
		r := NewStepReporter(func(v float64) { got = append(got, v) }, 1000, 10)
		r.Step(1)
		r.Step(1000)
		if len(got) != 2 {
			t.Fatalf("got %d reports, want 2", len(got))
		}
		if got[1] != 1.0 {
			t.Errorf("final report = %f, want 1.0", got[1])
		}
	})

	t.Run("throttles intermediate steps", func(t *testing.T) {
		t.Parallel()
		count := 0
		r := NewStepReporter(func(float64) { count++ }, 1000, 10)
		for i := 1; i <= 1000; i++ {
			r.Step(i)
		}
		if count > 12 {
			t.Errorf("got %d reports, want at most ~12", count)
		}
	})

	t.Run("nil callback is safe", func(t *testing.T) {
		t.Parallel()
		r := NewStepReporter(nil, 10, 5)
		r.Step(1)
	})
}
