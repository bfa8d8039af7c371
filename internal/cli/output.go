package cli

import "github.com/fatih/color"

func okMark() string {
	return color.GreenString("✓")
}

func errorMark() string {
	return color.RedString("✗")
}

func warnText(s string) string {
	return color.YellowString(s)
}

func header(s string) string {
	return color.CyanString(s)
}
