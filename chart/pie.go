package chart

const pieType = "pie"

var (
	solidRadius = "60%"
	ringRadius  = []string{"50%", "70%"}

	titledCenter   = [2]string{"50%", "60%"}
	untitledCenter = [2]string{"50%", "50%"}
)

// Pie renders records as a single pie or donut series.
type Pie struct {
	base
}

var _ Chart = (*Pie)(nil)

func NewPie(surface Surface, settings Settings) *Pie {
	return &Pie{base{settings: settings, surface: surface}}
}

// Transform converts the settings into a ChartOption and keeps it for Apply.
// Only the first record is checked for the mapped keys.
func (p *Pie) Transform() (ChartOption, error) {
	var (
		data  = p.settings.Data
		title = p.settings.Title
		keys  = p.settings.keys()
	)
	if len(data) == 0 {
		return ChartOption{}, &ValidationError{Reason: "empty data source"}
	}
	if err := CheckKeyInModel(data[0], keys.TextKey, keys.DataKey); err != nil {
		return ChartOption{}, err
	}

	var radius interface{} = solidRadius
	if p.settings.Ring {
		radius = append([]string(nil), ringRadius...)
	}
	center := untitledCenter
	if title != "" {
		center = titledCenter
	}

	serie := Series{
		Type:   pieType,
		Radius: radius,
		Center: center,
		Data:   make([]SeriesItem, 0, len(data)),
	}
	for _, rec := range data {
		serie.Data = append(serie.Data, makeItem(rec, keys))
	}

	p.options = ChartOption{
		Title:      title,
		Series:     []Series{serie},
		LegendData: []string{},
	}
	return p.options, nil
}

// makeItem moves the mapped fields to value and name. Remaining fields are
// copied afterwards and may shadow them; _raw always wins.
func makeItem(rec Record, keys KeyMap) SeriesItem {
	item := make(SeriesItem, len(rec)+2)
	item["value"] = rec[keys.DataKey]
	item["name"] = rec[keys.TextKey]
	for k, v := range rec {
		if k == keys.DataKey || k == keys.TextKey {
			continue
		}
		item[k] = v
	}
	item["_raw"] = rec
	return item
}

// Apply draws the current option on the surface, merging any inserted
// series fragments first.
func (p *Pie) Apply() {
	series := make([]map[string]interface{}, 0, len(p.options.Series))
	for _, s := range p.options.Series {
		series = append(series, s.Fields())
	}
	if insert := p.settings.InsertSeries; len(insert) > 0 && len(series) > 0 {
		series = InjectDataIntoSeries(insert, series)
	}

	legend := p.options.LegendData
	if legend == nil {
		legend = []string{}
	}
	opt := RenderOption{
		Title: TitleBlock{
			Text: p.options.Title,
			X:    "center",
		},
		Tooltip: TooltipBlock{
			Trigger:   "item",
			Formatter: TooltipFormatter,
		},
		Legend: LegendBlock{
			Orient: "vertical",
			Left:   "left",
			Data:   legend,
		},
		Series: series,
	}
	p.draw(opt)
}
