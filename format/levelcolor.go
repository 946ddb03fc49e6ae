package format

import "logency/record"

// levelColor is the foreground/background pairing ColorFormatter uses for
// each severity. The table is fixed; ColorFormatter offers no override.
type levelColor struct {
	foreground Color
	background Color
}

var defaultLevelColors = map[record.Level]levelColor{
	record.Trace:    {foreground: ColorWhite, background: ColorDefault},
	record.Debug:    {foreground: ColorCyan, background: ColorDefault},
	record.Info:     {foreground: ColorGreen, background: ColorDefault},
	record.Warning:  {foreground: ColorYellow, background: ColorDefault},
	record.Error:    {foreground: ColorRed, background: ColorDefault},
	record.Critical: {foreground: ColorIntenseWhite, background: ColorIntenseRed},
}

func colorForLevel(level record.Level) levelColor {
	if c, ok := defaultLevelColors[level]; ok {
		return c
	}
	return levelColor{foreground: ColorDefault, background: ColorDefault}
}
