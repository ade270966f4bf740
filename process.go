package lowpass

import (
	"fmt"
)

// Processor : type with processing options
type Processor struct {
	// Passes is the number of times the lowpass filter is applied.
	Passes int
	// PreserveAlpha leaves the alpha channel out of the filtering.
	PreserveAlpha bool
	// ComparePath, when set, receives a side by side sheet of the input and the output.
	ComparePath string
}

// Stats describes a finished run.
type Stats struct {
	Width  int
	Height int
	Passes int
}

// Filter returns the filter chain configured by the processor options.
func (p *Processor) Filter() *Chain {
	return Repeat(Lowpass{PreserveAlpha: p.PreserveAlpha}, p.Passes)
}

// Process decodes the image at input, smooths it horizontally and encodes the result as PNG at output.
func (p *Processor) Process(input, output string) (*Stats, error) {
	if p.Passes < 1 {
		return nil, ErrInvalidPasses
	}

	src, err := ReadFile(input)
	if err != nil {
		return nil, err
	}

	dst := p.Filter().Apply(src)
	if err := WriteFile(output, dst); err != nil {
		return nil, err
	}

	if p.ComparePath != "" {
		label := "lowpass"
		if p.Passes > 1 {
			label = fmt.Sprintf("lowpass x%d", p.Passes)
		}
		if err := WriteCompare(p.ComparePath, src, dst, label); err != nil {
			return nil, err
		}
	}

	return &Stats{
		Width:  dst.Bounds().Dx(),
		Height: dst.Bounds().Dy(),
		Passes: p.Passes,
	}, nil
}
