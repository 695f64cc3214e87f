package chart

// Surface is the charting engine instance a chart draws on.
type Surface interface {
	SetOption(opt RenderOption, notMerge bool)
	Clear()
}

// Chart is implemented by every chart type.
type Chart interface {
	Transform() (ChartOption, error)
	Apply()
}

type base struct {
	settings Settings
	options  ChartOption
	surface  Surface
}

// Options returns the option computed by the last successful Transform.
func (b *base) Options() ChartOption {
	return b.options
}

// Settings returns the settings the chart was built with.
func (b *base) Settings() Settings {
	return b.settings
}

// draw resets the surface between two identical SetOption calls so the
// engine drops any state left from the previous render.
func (b *base) draw(opt RenderOption) {
	b.surface.SetOption(opt, true)
	b.surface.Clear()
	b.surface.SetOption(opt, true)
}

// Init binds data into settings, builds a pie chart on surface and draws it.
func Init(surface Surface, data []Record, settings Settings) (*Pie, error) {
	settings.Data = data
	p := NewPie(surface, settings)
	if _, err := p.Transform(); err != nil {
		return nil, err
	}
	p.Apply()
	return p, nil
}
