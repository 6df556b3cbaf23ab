package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slider/internal/carousel"
	"slider/internal/config"
)

func testSlides(n int) []config.Slide {
	slides := make([]config.Slide, n)
	for i := range slides {
		slides[i] = config.Slide{
			Title:  "Slide " + string(rune('A'+i)),
			Body:   "body " + string(rune('a'+i)),
			Author: "author",
		}
	}
	return slides
}

// newSliderEngine returns a slider view driven by an initialized engine.
func newSliderEngine(t *testing.T, n int) (*SliderView, *carousel.Engine) {
	t.Helper()
	v := NewSliderView(testSlides(n))
	e := carousel.New(n, v)
	require.NoError(t, e.Initialize())
	return v, e
}

// findZone returns the first zone whose target matches.
func findZone(z *Zones, match func(carousel.Target) bool) (Zone, bool) {
	for _, zn := range z.zones {
		if match(zn.Target) {
			return zn, true
		}
	}
	return Zone{}, false
}

func dotZone(t *testing.T, z *Zones, i int) Zone {
	t.Helper()
	zn, ok := findZone(z, func(tg carousel.Target) bool {
		v, _ := tg.Attr(carousel.AttrSlide)
		return tg.Role() == carousel.RoleIndicator && v == string(rune('0'+i))
	})
	require.True(t, ok, "no zone for dot %d", i)
	return zn
}

func sliderEvent(t *testing.T, cmd tea.Cmd) carousel.Event {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(SliderInputMsg)
	require.True(t, ok)
	return msg.Event
}

func TestSliderView_RendersVisibleSlide(t *testing.T) {
	v, e := newSliderEngine(t, 3)
	out := v.View()
	assert.Contains(t, out, "Slide A")
	assert.NotContains(t, out, "Slide B")
	assert.Contains(t, out, "Slide 1 of 3")
	assert.Equal(t, 1, strings.Count(out, dotActive))
	assert.Equal(t, 2, strings.Count(out, dotInactive))

	require.NoError(t, e.HandleInput(carousel.Previous()))
	out = v.View()
	assert.Contains(t, out, "Slide C")
	assert.Contains(t, out, "Slide 3 of 3")
	assert.Equal(t, 2, v.Visible(40))
}

func TestSliderView_RenderCopiesFrame(t *testing.T) {
	v := NewSliderView(testSlides(2))
	f := carousel.Frame{Current: 1, Offsets: []int{-100, 0}, Indicators: []bool{false, true}}
	v.Render(f)
	f.Offsets[1] = 500
	assert.Equal(t, []int{-100, 0}, v.Frame().Offsets)
	assert.Equal(t, 1, v.Renders())
}

func TestSliderView_VisibleFollowsOffsets(t *testing.T) {
	v := NewSliderView(testSlides(3))
	v.Render(carousel.Frame{Offsets: carousel.Layout(1, 3), Indicators: []bool{false, true, false}})
	assert.Equal(t, 1, v.Visible(70))

	// A half-way offset still covers the left edge.
	v.Render(carousel.Frame{Offsets: []int{-50, 50, 150}, Indicators: []bool{true, false, false}})
	assert.Equal(t, 0, v.Visible(70))

	v.Render(carousel.Frame{Offsets: []int{100, 200}, Indicators: []bool{true, false}})
	assert.Equal(t, -1, v.Visible(70))
}

func TestSliderView_Empty(t *testing.T) {
	v, _ := newSliderEngine(t, 0)
	assert.Contains(t, v.View(), "No slides")
	assert.Zero(t, v.Renders())
	assert.Nil(t, v.Click(0, 0))
}

func TestSliderView_ClickDots(t *testing.T) {
	v, _ := newSliderEngine(t, 3)
	v.View()

	dot := dotZone(t, &v.zones, 2)
	ev := sliderEvent(t, v.Click(dot.X0, dot.Y))
	act, ok := ev.(carousel.Activate)
	require.True(t, ok)
	assert.Equal(t, carousel.IndicatorElement(2), act.Target)

	// Between two dots: the container is hit; the router will ignore it.
	ev = sliderEvent(t, v.Click(dot.X0-1, dot.Y))
	act, ok = ev.(carousel.Activate)
	require.True(t, ok)
	assert.Equal(t, RoleDots, act.Target.Role())

	assert.Nil(t, v.Click(dot.X0, dot.Y+5))
}

func TestSliderView_ClickControls(t *testing.T) {
	v, _ := newSliderEngine(t, 3)
	v.View()

	assert.Equal(t, carousel.Backward{}, sliderEvent(t, v.Click(1, 2)))
	assert.Equal(t, carousel.Forward{}, sliderEvent(t, v.Click(defaultWidth-2, 2)))
	assert.Nil(t, v.Click(1, 0), "header row is not a control")
}

func TestSliderView_Resize(t *testing.T) {
	v, _ := newSliderEngine(t, 5)
	v.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	v.View()
	first := dotZone(t, &v.zones, 0)
	last := dotZone(t, &v.zones, 4)
	// 5 dots with single spaces take 9 columns, centered in 40.
	assert.Equal(t, 15, first.X0)
	assert.Equal(t, 23, last.X0)
}
