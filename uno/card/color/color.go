package color

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

type Color int

const (
	None Color = iota
	Red
	Yellow
	Green
	Blue
	Wild
)

type colorStruct struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

var palette = map[Color]colorStruct{
	Red:    {name: "red", colorFunction: color.New(color.FgHiRed).SprintfFunc()},
	Yellow: {name: "yellow", colorFunction: color.New(color.FgHiYellow).SprintfFunc()},
	Green:  {name: "green", colorFunction: color.New(color.FgHiGreen).SprintfFunc()},
	Blue:   {name: "blue", colorFunction: color.New(color.FgHiCyan).SprintfFunc()},
	Wild:   {name: "wild", colorFunction: color.New(color.FgHiMagenta).SprintfFunc()},
}

// Base lists the four suit colors in canonical deck order.
var Base = []Color{Red, Yellow, Green, Blue}

func (c Color) IsBase() bool {
	return c >= Red && c <= Blue
}

func (c Color) Name() string {
	if p, ok := palette[c]; ok {
		return p.name
	}
	return "none"
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(text string, args ...interface{}) string {
	p, ok := palette[c]
	if !ok {
		return fmt.Sprintf(text, args...)
	}
	return p.colorFunction(text, args...)
}

func (c Color) String() string {
	return c.Name()
}

// ByName resolves a base color from its name, ignoring case and surrounding spaces.
func ByName(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, c := range Base {
		if palette[c].name == name {
			return c, nil
		}
	}
	return None, fmt.Errorf("invalid color '%s'", name)
}
