package chart

// TooltipFormatter renders "name : value (percent%)" for pie slices.
const TooltipFormatter = "{b} : {c} ({d}%)"

// SeriesItem is one slice of a pie series.
type SeriesItem map[string]interface{}

// Series describes a single pie layer.
type Series struct {
	Type   string       `json:"type"`
	Radius interface{}  `json:"radius"`
	Center [2]string    `json:"center"`
	Data   []SeriesItem `json:"data"`
}

// Fields returns the series as a plain map, the shape inserted series
// fragments are merged into.
func (s Series) Fields() map[string]interface{} {
	return map[string]interface{}{
		"type":   s.Type,
		"radius": s.Radius,
		"center": []string{s.Center[0], s.Center[1]},
		"data":   s.Data,
	}
}

// ChartOption is the result of transforming settings.
type ChartOption struct {
	Title      string   `json:"title"`
	Series     []Series `json:"series"`
	LegendData []string `json:"legendData"`
}

type TitleBlock struct {
	Text string `json:"text"`
	X    string `json:"x"`
}

type TooltipBlock struct {
	Trigger   string `json:"trigger"`
	Formatter string `json:"formatter"`
}

type LegendBlock struct {
	Orient string   `json:"orient"`
	Left   string   `json:"left"`
	Data   []string `json:"data"`
}

// RenderOption is handed to the rendering surface as is.
type RenderOption struct {
	Title   TitleBlock               `json:"title"`
	Tooltip TooltipBlock             `json:"tooltip"`
	Legend  LegendBlock              `json:"legend"`
	Series  []map[string]interface{} `json:"series"`
}
