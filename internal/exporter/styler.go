package exporter

import (
	"github.com/xuri/excelize/v2"
)

// Styler handles Excel styling
type Styler struct {
	File *excelize.File

	// Pre-defined styles
	HeaderStyle    int
	FeatureStyle   int
	ComponentStyle int
	ServiceStyle   int
	UtilityStyle   int
	ContainerStyle int
	DefaultStyle   int
}

// NewStyler creates a new Styler and explicitly registers styles
func NewStyler(f *excelize.File) (*Styler, error) {
	s := &Styler{File: f}
	var err error

	// Header Style: Bold, Gray Background, Center Aligned
	s.HeaderStyle, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#000000"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    createBorder(),
	})
	if err != nil {
		return nil, err
	}

	// Feature Style: Blue Text (business areas stand out)
	s.FeatureStyle, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#0000FF"}, // Blue
		Alignment: &excelize.Alignment{Vertical: "center"},
		Border:    createBorder(),
	})
	if err != nil {
		return nil, err
	}

	// Component Style: Default Black
	s.ComponentStyle, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center"},
		Border:    createBorder(),
	})
	if err != nil {
		return nil, err
	}

	// Service Style: Red Text (network and data boundaries)
	s.ServiceStyle, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Color: "#D32F2F"}, // Red
		Alignment: &excelize.Alignment{Vertical: "center"},
		Border:    createBorder(),
	})
	if err != nil {
		return nil, err
	}

	// Utility Style: Gray Italic (helper code)
	s.UtilityStyle, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Color: "#757575", Italic: true}, // Gray
		Alignment: &excelize.Alignment{Vertical: "center"},
		Border:    createBorder(),
	})
	if err != nil {
		return nil, err
	}

	// Container Style: Light Gray (structural directories with no purpose)
	s.ContainerStyle, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Color: "#9E9E9E"},
		Alignment: &excelize.Alignment{Vertical: "center"},
		Border:    createBorder(),
	})
	if err != nil {
		return nil, err
	}

	// Default Style
	s.DefaultStyle, err = f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "center"},
		Border:    createBorder(),
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

// StyleFor maps a resolved directory category to a registered style
func (s *Styler) StyleFor(category string) int {
	switch category {
	case "feature":
		return s.FeatureStyle
	case "component", "page":
		return s.ComponentStyle
	case "service", "route", "model":
		return s.ServiceStyle
	case "utility", "hook", "type":
		return s.UtilityStyle
	}
	return s.DefaultStyle
}

func createBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "D4D4D4", Style: 1},
		{Type: "top", Color: "D4D4D4", Style: 1},
		{Type: "bottom", Color: "D4D4D4", Style: 1},
		{Type: "right", Color: "D4D4D4", Style: 1},
	}
}
