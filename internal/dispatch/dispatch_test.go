package dispatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/serty2005/uiohook/internal/event"
	"github.com/serty2005/uiohook/internal/modmask"
	"github.com/serty2005/uiohook/internal/vcode"
)

func collector() (*[]event.Event, Consumer) {
	var got []event.Event
	return &got, func(e event.Event) bool {
		got = append(got, e)
		return false
	}
}

func TestHookEnableDisableBracketing(t *testing.T) {
	got, consume := collector()
	d := New(DefaultConfig(), modmask.New(0), consume)

	d.HookEnabled(time.Now())
	d.KeyPress(time.Now(), vcode.VCA, 0, 0)
	d.HookDisabled(time.Now())

	require.Equal(t, event.EventHookEnabled, (*got)[0].Kind)
	require.Equal(t, event.EventHookDisabled, (*got)[len(*got)-1].Kind)
}

func TestKeyPressSetsModifierMask(t *testing.T) {
	got, consume := collector()
	d := New(DefaultConfig(), modmask.New(0), consume)

	d.KeyPress(time.Now(), vcode.VCShiftL, 0, 0)
	require.True(t, d.mods.Has(modmask.ShiftL))

	d.KeyRelease(time.Now(), vcode.VCShiftL, 0, 0)
	require.False(t, d.mods.Has(modmask.ShiftL))

	require.Len(t, *got, 2)
}

func TestLockKeyTogglesOnPressOnlyNeverOnRelease(t *testing.T) {
	got, consume := collector()
	d := New(DefaultConfig(), modmask.New(0), consume)
	_ = got

	d.KeyPress(time.Now(), vcode.VCCapsLock, 0, 0)
	require.True(t, d.mods.Has(modmask.CapsLock))

	d.KeyRelease(time.Now(), vcode.VCCapsLock, 0, 0)
	require.True(t, d.mods.Has(modmask.CapsLock), "lock bit must survive release")

	d.KeyPress(time.Now(), vcode.VCCapsLock, 0, 0)
	require.False(t, d.mods.Has(modmask.CapsLock), "second press toggles it back off")
}

func TestMouseClickCountIncrementsWithinWindow(t *testing.T) {
	got, consume := collector()
	d := New(DefaultConfig(), modmask.New(0), consume)

	t0 := time.Now()
	d.MousePress(t0, 1, 10, 10)
	d.MouseRelease(t0.Add(10*time.Millisecond), 1, 10, 10)
	d.MousePress(t0.Add(100*time.Millisecond), 1, 11, 10)
	d.MouseRelease(t0.Add(110*time.Millisecond), 1, 11, 10)

	var clicks []uint16
	for _, e := range *got {
		if e.Kind == event.EventMouseClicked {
			clicks = append(clicks, e.Mouse.Clicks)
		}
	}
	require.Equal(t, []uint16{1, 2}, clicks)
}

func TestMouseClickCountResetsAfterInterval(t *testing.T) {
	got, consume := collector()
	cfg := DefaultConfig()
	cfg.ClickInterval = 50 * time.Millisecond
	d := New(cfg, modmask.New(0), consume)

	t0 := time.Now()
	d.MousePress(t0, 1, 10, 10)
	d.MouseRelease(t0, 1, 10, 10)
	d.MousePress(t0.Add(200*time.Millisecond), 1, 10, 10)
	d.MouseRelease(t0.Add(200*time.Millisecond), 1, 10, 10)

	var clicks []uint16
	for _, e := range *got {
		if e.Kind == event.EventMouseClicked {
			clicks = append(clicks, e.Mouse.Clicks)
		}
	}
	require.Equal(t, []uint16{1, 1}, clicks)
}

func TestMouseMoveBecomesDraggedWhileButtonHeld(t *testing.T) {
	got, consume := collector()
	d := New(DefaultConfig(), modmask.New(0), consume)

	t0 := time.Now()
	d.MousePress(t0, 1, 0, 0)
	d.MouseMove(t0, 5, 5)
	d.MouseRelease(t0, 1, 5, 5)
	d.MouseMove(t0, 10, 10)

	var kinds []event.EventKind
	for _, e := range *got {
		if e.Kind == event.EventMouseMoved || e.Kind == event.EventMouseDragged {
			kinds = append(kinds, e.Kind)
		}
	}
	require.Equal(t, []event.EventKind{event.EventMouseDragged, event.EventMouseMoved}, kinds)
}

func TestButtonMaskUsesMaskConstantNotRawNumber(t *testing.T) {
	// Regression test for the documented X11 bug: button 4/5 masks must
	// always be the MASK_BUTTON4/5 bit, never the raw button number OR'd
	// straight into the word.
	require.Equal(t, modmask.Button4, buttonBit(4))
	require.Equal(t, modmask.Button5, buttonBit(5))
	require.NotEqual(t, uint16(4), buttonBit(4))
	require.NotEqual(t, uint16(5), buttonBit(5))
}

func TestKeyTypedFromUnitsEmitsOneEventForBMPChar(t *testing.T) {
	got, consume := collector()
	d := New(DefaultConfig(), modmask.New(0), consume)

	lead, trail, n := uint16('A'), uint16(0), 1
	d.KeyTypedFromUnits(time.Now(), vcode.VCA, lead, trail, n)

	require.Len(t, *got, 1)
	require.Equal(t, event.EventKeyTyped, (*got)[0].Kind)
	require.Equal(t, 'A', (*got)[0].Key.KeyChar)
	require.Equal(t, uint32('A'), (*got)[0].Key.RawCode)
}

func TestKeyTypedFromUnitsEmitsTwoEventsForAstralChar(t *testing.T) {
	got, consume := collector()
	d := New(DefaultConfig(), modmask.New(0), consume)

	const cp = 0x1F600
	const leadOffset = 0xD800 - (0x10000 >> 10)
	lead := uint16(leadOffset + (cp >> 10))
	trail := uint16(0xDC00 + (cp & 0x3FF))

	d.KeyTypedFromUnits(time.Now(), vcode.VCA, lead, trail, 2)

	require.Len(t, *got, 2)
	for _, e := range *got {
		require.Equal(t, event.EventKeyTyped, e.Kind)
		require.Equal(t, uint32(cp), e.Key.RawCode)
	}
	require.Equal(t, rune(lead), (*got)[0].Key.KeyChar)
	require.Equal(t, rune(trail), (*got)[1].Key.KeyChar)
}

func TestKeyTypedFromUnitsEmitsNothingForUntranslatableKey(t *testing.T) {
	got, consume := collector()
	d := New(DefaultConfig(), modmask.New(0), consume)

	d.KeyTypedFromUnits(time.Now(), vcode.VCF1, 0, 0, 0)

	require.Empty(t, *got)
}

func TestMouseClickedSuppressedWhenDisplacementExceedsThreshold(t *testing.T) {
	got, consume := collector()
	d := New(DefaultConfig(), modmask.New(0), consume)

	t0 := time.Now()
	d.MousePress(t0, 1, 0, 0)
	d.MouseMove(t0, 50, 0)
	d.MouseMove(t0, 100, 0)
	d.MouseMove(t0, 150, 0)
	d.MouseRelease(t0, 1, 150, 0)

	for _, e := range *got {
		require.NotEqual(t, event.EventMouseClicked, e.Kind, "drag beyond tolerance must not emit MouseClicked")
	}
}

func TestMouseClickedEmittedWithinTolerance(t *testing.T) {
	got, consume := collector()
	d := New(DefaultConfig(), modmask.New(0), consume)

	t0 := time.Now()
	d.MousePress(t0, 1, 10, 10)
	d.MouseRelease(t0, 1, 11, 11)

	var sawClicked bool
	for _, e := range *got {
		if e.Kind == event.EventMouseClicked {
			sawClicked = true
		}
	}
	require.True(t, sawClicked, "small displacement within tolerance must still emit MouseClicked")
}

func TestMouseReleaseDispatchesActualButtonNotHardcoded(t *testing.T) {
	got, consume := collector()
	d := New(DefaultConfig(), modmask.New(0), consume)

	d.MousePress(time.Now(), 4, 0, 0)
	d.MouseRelease(time.Now(), 4, 0, 0)

	for _, e := range *got {
		if e.Kind == event.EventMouseReleased {
			require.Equal(t, uint16(4), e.Mouse.Button)
		}
	}
}
