package clock

import (
	"math"
	"time"

	"github.com/dshills/tac/internal/config"
	"github.com/dshills/tac/internal/renderer/core"
	"github.com/dshills/tac/internal/renderer/view"
)

// Border modes, by option index of the clock border entry.
const (
	BorderNone = iota
	BorderEllipse
	BorderTicks
	BorderHours
)

// Seconds display modes, by option index of the display seconds entry.
const (
	SecondsOff = iota
	SecondsStep
	SecondsSweep
	SecondsTipStep
	SecondsTipSweep
)

// Number modes, by option index of the numbers entry.
const (
	NumbersOff = iota
	NumbersStars
	NumbersDigits
)

// Settings is the face configuration resolved from the store.
type Settings struct {
	Border, Seconds, Numbers int

	Width  int64
	Offset int64

	ContinuousMinutes bool

	HourLabel, MinuteLabel, SecondLabel string

	Background, Circle, SecondHand, Digits, MinuteHand, HourHand string
}

// Resolve reads the face settings.
func Resolve(r config.Reader) Settings {
	str := func(key string) string {
		s, _ := r.GetString(key)
		return s
	}
	return Settings{
		Border:            r.GetOption(config.KeyClockBorder),
		Seconds:           r.GetOption(config.KeyDisplaySeconds),
		Numbers:           r.GetOption(config.KeyNumbers),
		Width:             r.GetInt(config.KeyClockWidth),
		Offset:            r.GetInt(config.KeyTimeOffset),
		ContinuousMinutes: r.GetBool(config.KeyContinuousMinutes),
		HourLabel:         str(config.KeyHourLabel),
		MinuteLabel:       str(config.KeyMinuteLabel),
		SecondLabel:       str(config.KeySecondLabel),
		Background:        str(config.KeyBackgroundColor),
		Circle:            str(config.KeyCircleColor),
		SecondHand:        str(config.KeySecondsColor),
		Digits:            str(config.KeyDigitsColor),
		MinuteHand:        str(config.KeyMinutesColor),
		HourHand:          str(config.KeyHoursColor),
	}
}

// Sweeping reports whether the second hand moves continuously.
func (s Settings) Sweeping() bool {
	return s.Seconds == SecondsSweep || s.Seconds == SecondsTipSweep
}

// Angles returns the hour, minute and second hand angles for t. Seconds
// include the sub-second fraction only while sweeping.
func (s Settings) Angles(t time.Time) (hour, minute, second float64) {
	h := (int64(t.Hour()) + s.Offset) % 12
	if h < 0 {
		h += 12
	}
	m := float64(t.Minute())
	sec := float64(t.Second())
	if s.Sweeping() {
		sec += float64(t.Nanosecond()/int(time.Millisecond)) / 1000
	}

	hour = 2 * math.Pi * (float64(h) + m/60) / 12
	if s.ContinuousMinutes {
		minute = 2 * math.Pi * (m + sec/60) / 60
	} else {
		minute = 2 * math.Pi * m / 60
	}
	second = 2 * math.Pi * sec / 60
	return hour, minute, second
}

type painter struct {
	f    *view.Frame
	base core.Style
}

func (p *painter) style(name string) core.Style {
	c, ok := core.ColorFromName(name)
	if !ok {
		return p.base
	}
	return p.base.WithForeground(c)
}

func (p *painter) put(pt Point, r rune, style core.Style) {
	p.f.Print(pt.Y, pt.X, string(r), style)
}

// line draws a hand, cycling pattern along it. An empty pattern draws
// nothing.
func (p *painter) line(from, to Point, pattern string, style core.Style) {
	runes := []rune(pattern)
	if len(runes) == 0 {
		return
	}
	for i, pt := range Line(from.X, from.Y, to.X, to.Y) {
		p.put(pt, runes[i%len(runes)], style)
	}
}

// Draw lays out the clock face for t on a width x height screen.
func Draw(s Settings, t time.Time, width, height int) *view.Frame {
	f := view.NewFrame(width, height)
	p := &painter{f: f, base: core.DefaultStyle()}
	if c, ok := core.ColorFromName(s.Background); ok {
		p.base = p.base.WithBackground(c)
		bg := p.base
		f.Background = &bg
	}

	cx, cy := width/2, height/2
	a, b := Radii(width, height, s.Width)
	fa, fb := float64(a), float64(b)
	center := Point{cx, cy}

	circle := p.style(s.Circle)
	switch s.Border {
	case BorderEllipse:
		for _, pt := range EllipsePoints(cx, cy, a, b) {
			p.put(pt, '*', circle)
		}
	case BorderTicks:
		for i := range 60 {
			angle := 2 * math.Pi * float64(i) / 60
			outer := PolarToEllipse(cx, cy, angle, fa, fb)
			if i%5 == 0 {
				inner := PolarToEllipse(cx, cy, angle, fa*0.95, fb*0.95)
				p.line(outer, inner, "*", circle)
			} else {
				p.put(outer, '.', circle)
			}
		}
	case BorderHours:
		for i := range 12 {
			p.put(PolarToEllipse(cx, cy, 2*math.Pi*float64(i)/12, fa, fb), '*', circle)
		}
	}

	digits := p.style(s.Digits)
	for i := 1; i <= 12; i++ {
		pt := PolarToEllipse(cx, cy, 2*math.Pi*float64(i)/12, fa*0.9, fb*0.9)
		switch s.Numbers {
		case NumbersDigits:
			if i > 9 {
				p.put(Point{pt.X - 1, pt.Y}, '1', digits)
			}
			p.put(pt, rune('0'+i%10), digits)
		case NumbersStars:
			p.put(pt, '*', digits)
		}
	}

	hourAngle, minuteAngle, secondAngle := s.Angles(t)

	if s.Seconds > SecondsOff {
		tip := PolarToEllipse(cx, cy, secondAngle, fa, fb)
		from := center
		if s.Seconds >= SecondsTipStep {
			from = PolarToEllipse(cx, cy, secondAngle, fa*0.8, fb*0.8)
		}
		p.line(from, tip, s.SecondLabel, p.style(s.SecondHand))
	}

	mt := PolarToEllipse(cx, cy, minuteAngle, fa*0.9, fb*0.9)
	p.line(tail(center, mt), mt, s.MinuteLabel, p.style(s.MinuteHand))

	ht := PolarToEllipse(cx, cy, hourAngle, fa*0.7, fb*0.7)
	p.line(tail(center, ht), ht, s.HourLabel, p.style(s.HourHand))

	return f
}

// tail is where a hand starts: a tenth of its length behind the centre.
func tail(center, tip Point) Point {
	return Point{center.X + (center.X-tip.X)/10, center.Y + (center.Y-tip.Y)/10}
}
