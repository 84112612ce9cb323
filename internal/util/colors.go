package util

import "github.com/fatih/color"

var colorsOptions = map[string]color.Attribute{
	"red":       color.FgHiRed,
	"green":     color.FgGreen,
	"underline": color.Underline,
	"bold":      color.Bold,
	"bgRed":     color.BgRed,
	"bgGreen":   color.BgGreen,
	"gray":      color.FgHiBlack,
	"purple":    color.FgMagenta,
	"blue":      color.FgBlue,
}

func ColorOutput(text string, colorOptions ...string) string {
	attributes := []color.Attribute{}
	for _, option := range colorOptions {
		if o, ok := colorsOptions[option]; ok {
			attributes = append(attributes, o)
		}
	}
	c := color.New(attributes...)
	return c.Sprint(text)
}

var statusColors = map[string]string{
	"empty":       "gray",
	"balanced":    "green",
	"shortage":    "red",
	"unallocated": "purple",
}

// StatusColor returns the color option used to paint a budget status.
func StatusColor(status string) string {
	if c, ok := statusColors[status]; ok {
		return c
	}
	return ""
}
