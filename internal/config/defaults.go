package config

// Keys read by the clock face.
const (
	KeyBackgroundColor = "background color"
	KeyCircleColor     = "circle color"
	KeySecondsColor    = "seconds color"
	KeyDigitsColor     = "digits color"
	KeyMinutesColor    = "minutes color"
	KeyHoursColor      = "hours color"

	KeyHourLabel   = "hour hand label"
	KeyMinuteLabel = "minute hand label"
	KeySecondLabel = "second hand label"

	KeyClockBorder       = "clock border"
	KeyDisplaySeconds    = "display seconds"
	KeyNumbers           = "numbers"
	KeyClockWidth        = "clock width"
	KeyTimeOffset        = "local time offset"
	KeyContinuousMinutes = "continuous minutes"

	KeyShortcutBorder  = "change clock border"
	KeyShortcutNumbers = "change number display"
	KeyShortcutSeconds = "change seconds display"
	KeyShortcutQuit    = "quit"
)

// ColorNames are the options of every default Color entry, in palette order.
var ColorNames = []string{"BLACK", "RED", "GREEN", "YELLOW", "BLUE", "MAGENTA", "CYAN", "WHITE"}

// DefaultEntries returns a fresh copy of the built-in clock schema.
func DefaultEntries() []Entry {
	color := func(key string, selected int) Entry {
		options := make([]string, len(ColorNames))
		copy(options, ColorNames)
		return Entry{Key: key, Value: &Color{Options: options, Selected: selected}}
	}
	text := func(key, value string, limit int) Entry {
		return Entry{Key: key, Value: &Text{Value: value, MaximumSize: MaxSize(limit)}}
	}
	choice := func(key string, selected int, options ...string) Entry {
		return Entry{Key: key, Value: &Choice{Options: options, Selected: selected}}
	}
	category := func(key string) Entry {
		return Entry{Key: key, Value: &Category{}}
	}

	return []Entry{
		category("Colors"),
		color(KeyBackgroundColor, 0),
		color(KeyCircleColor, 2),
		color(KeySecondsColor, 6),
		color(KeyDigitsColor, 7),
		color(KeyMinutesColor, 3),
		color(KeyHoursColor, 1),

		category("Hand labels"),
		text(KeyHourLabel, "HOURS", 32),
		text(KeyMinuteLabel, "minutes", 32),
		text(KeySecondLabel, ".", 32),

		category("Display modes"),
		choice(KeyClockBorder, 1, "full", "dot and hours", "hours", "no border"),
		choice(KeyDisplaySeconds, 1,
			"no display",
			"full each second",
			"full continuous",
			"end of hand each second",
			"end of hand full continuous",
		),
		choice(KeyNumbers, 0, "no numbers", "stars", "numbers"),
		{Key: KeyClockWidth, Value: &Integer{Value: 5}},
		{Key: KeyTimeOffset, Value: &Integer{Value: 0}},
		{Key: KeyContinuousMinutes, Value: &Boolean{Value: true}},

		category("Keyboard shortcuts"),
		text(KeyShortcutBorder, "c", 1),
		text(KeyShortcutNumbers, "n", 1),
		text(KeyShortcutSeconds, "s", 1),
		text(KeyShortcutQuit, "q", 1),
	}
}
