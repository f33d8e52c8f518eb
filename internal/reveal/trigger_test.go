package reveal

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnceNeverReverts(t *testing.T) {
	tr := NewTrigger(0.1, Once)
	assert.False(t, tr.Visible())
	assert.False(t, tr.Observe(0.05))

	assert.True(t, tr.Observe(0.1))

	for _, ratio := range []float64{0, 0.01, 0.5, 0, 1, 0} {
		assert.True(t, tr.Observe(ratio))
	}
	assert.True(t, tr.Fired())
}

func TestRepeatFollowsEveryObservation(t *testing.T) {
	tr := NewTrigger(0.25, Repeat)
	assert.True(t, tr.Observe(0.3))
	assert.False(t, tr.Observe(0.2))
	assert.True(t, tr.Observe(0.25))
	assert.False(t, tr.Fired())
}

func TestOnMountIsVisibleImmediately(t *testing.T) {
	tr := NewTrigger(0.5, OnMount)
	assert.True(t, tr.Visible())
	assert.True(t, tr.Observe(0))
}

func TestNilTriggerIsNoop(t *testing.T) {
	var tr *Trigger
	assert.False(t, tr.Observe(1))
	assert.False(t, tr.Visible())
	assert.False(t, tr.Fired())
}

func TestInvalidThresholdUsesDefault(t *testing.T) {
	assert.Equal(t, DefaultThreshold, NewTrigger(0, Once).Threshold)
	assert.Equal(t, DefaultThreshold, NewTrigger(1.5, Once).Threshold)
	assert.Equal(t, 1.0, NewTrigger(1, Once).Threshold)
}

func TestBoard(t *testing.T) {
	b := NewBoard()
	b.Register("about", 0.1, OnMount)
	b.Register("skills", 0.1, Once)
	b.Register("projects", 0.1, Once)
	b.Register("ticker", 0.1, Repeat)

	assert.False(t, b.Observe("missing", 1))
	assert.True(t, b.Observe("skills", 0.4))
	assert.True(t, b.Observe("ticker", 0.4))
	assert.False(t, b.Visible("projects"))

	assert.Equal(t, []string{"about", "skills"}, b.Revealed())

	// re-registering keeps state
	b.Register("skills", 0.9, Once)
	assert.True(t, b.Visible("skills"))
}

func TestBoardRestore(t *testing.T) {
	b := NewBoard()
	b.Register("skills", 0.1, Once)
	b.Register("ticker", 0.1, Repeat)

	b.Restore([]string{"skills", "ticker", "gone"})

	assert.True(t, b.Visible("skills"))
	assert.False(t, b.Visible("ticker"))
	assert.True(t, b.Observe("skills", 0))
}

func TestModeText(t *testing.T) {
	for _, m := range []Mode{Once, Repeat, OnMount} {
		text, err := m.MarshalText()
		require.NoError(t, err)

		var back Mode
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, m, back)
	}

	var m Mode
	err := m.UnmarshalText([]byte("sometimes"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown reveal mode "sometimes"`)
	assert.Contains(t, fmt.Sprintf("%+v", err), "(*Mode).UnmarshalText")
	assert.Equal(t, "unknown", Mode(9).String())
}
