package world

import "fmt"

// Source supplies uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// span is the half-open weight interval [start, end) owned by one template.
type span struct {
	start, end int
}

// Picker selects biome templates by weight.
type Picker struct {
	templates []Template
	spans     []span
	total     int
}

// NewPicker lays the templates out as contiguous intervals in list order.
func NewPicker(templates []Template) (*Picker, error) {
	if len(templates) == 0 {
		return nil, ErrEmptyBiome
	}

	p := &Picker{
		templates: templates,
		spans:     make([]span, len(templates)),
	}
	for i, t := range templates {
		if t.Weight <= 0 {
			return nil, fmt.Errorf("template %d (%s) has weight %d: %w", i, t.Color, t.Weight, ErrInvalidWeight)
		}
		p.spans[i] = span{start: p.total, end: p.total + t.Weight}
		p.total += t.Weight
	}
	return p, nil
}

// Total returns the sum of all weights.
func (p *Picker) Total() int {
	return p.total
}

// Select returns the template whose interval contains roll. The first
// interval in list order wins.
func (p *Picker) Select(roll int) Template {
	for i, s := range p.spans {
		if roll >= s.start && roll < s.end {
			return p.templates[i]
		}
	}
	panic(fmt.Sprintf("world: roll %d outside [0,%d)", roll, p.total))
}

// Pick draws a template from src.
func (p *Picker) Pick(src Source) Template {
	return p.Select(src.Intn(p.total))
}
