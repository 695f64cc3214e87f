// Package surface draws chart options with go-echarts.
package surface

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	log "github.com/sirupsen/logrus"

	"anacharts/chart"
)

// Series keys go-echarts can draw. Anything else stays in Option() only.
var drawnSeriesKeys = map[string]bool{
	"type":      true,
	"name":      true,
	"data":      true,
	"radius":    true,
	"center":    true,
	"roseType":  true,
	"label":     true,
	"itemStyle": true,
}

// Item keys copied into opts.PieData besides name and value.
var drawnItemKeys = []string{"selected", "label", "itemStyle"}

// ECharts is a chart.Surface backed by a go-echarts pie.
type ECharts struct {
	init opts.Initialization
	pie  *charts.Pie

	last    chart.RenderOption
	hasLast bool

	sets, clears int
}

var _ chart.Surface = (*ECharts)(nil)

func NewECharts(width, height string) *ECharts {
	s := &ECharts{init: opts.Initialization{
		PageTitle: "anacharts",
		Width:     width,
		Height:    height,
	}}
	s.reset()
	return s
}

func (s *ECharts) reset() {
	s.pie = charts.NewPie()
	s.pie.SetGlobalOptions(charts.WithInitializationOpts(s.init))
}

// SetOption draws opt. With notMerge the previous chart is discarded first.
// Otherwise each series replaces the drawn series at the same index and the
// surplus ones are appended; series are not deep-merged.
func (s *ECharts) SetOption(opt chart.RenderOption, notMerge bool) {
	s.sets++
	if notMerge {
		s.reset()
	}

	var tooltip opts.Tooltip
	if err := decode(opt.Tooltip, &tooltip); err != nil {
		log.WithError(err).Warn("ignoring pie tooltip options")
	}
	tooltip.Show = opts.Bool(true)

	s.pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: opt.Title.Text,
			Left:  opt.Title.X,
		}),
		charts.WithTooltipOpts(tooltip),
		charts.WithLegendOpts(opts.Legend{
			Show:   opts.Bool(true),
			Orient: opt.Legend.Orient,
			Left:   opt.Legend.Left,
			Data:   opt.Legend.Data,
		}),
	)

	drawn := len(s.pie.MultiSeries)
	for i, serie := range opt.Series {
		s.addSeries(serie)
		if i < drawn {
			last := len(s.pie.MultiSeries) - 1
			s.pie.MultiSeries[i] = s.pie.MultiSeries[last]
			s.pie.MultiSeries = s.pie.MultiSeries[:last]
		}
	}
	s.last = opt
	s.hasLast = true
}

func (s *ECharts) addSeries(serie map[string]interface{}) {
	name, _ := serie["name"].(string)
	roseType, _ := serie["roseType"].(string)

	seriesOpts := []charts.SeriesOpts{
		charts.WithPieChartOpts(opts.PieChart{
			Radius:   serie["radius"],
			Center:   serie["center"],
			RoseType: roseType,
		}),
	}
	if raw, ok := serie["label"]; ok {
		var label opts.Label
		if err := decode(raw, &label); err != nil {
			log.WithError(err).WithField("series", name).Warn("ignoring pie series label")
		} else {
			seriesOpts = append(seriesOpts, charts.WithLabelOpts(label))
		}
	}
	if raw, ok := serie["itemStyle"]; ok {
		var style opts.ItemStyle
		if err := decode(raw, &style); err != nil {
			log.WithError(err).WithField("series", name).Warn("ignoring pie series item style")
		} else {
			seriesOpts = append(seriesOpts, charts.WithItemStyleOpts(style))
		}
	}

	var dropped []string
	for k := range serie {
		if !drawnSeriesKeys[k] {
			dropped = append(dropped, k)
		}
	}
	if len(dropped) > 0 {
		sort.Strings(dropped)
		log.WithFields(log.Fields{
			"series": name,
			"keys":   dropped,
		}).Debug("series keys not drawn by go-echarts")
	}

	s.pie.AddSeries(name, pieData(serie["data"]), seriesOpts...)
}

// Clear removes every component and series.
func (s *ECharts) Clear() {
	s.clears++
	s.reset()
	s.hasLast = false
}

// Option returns the option currently drawn.
func (s *ECharts) Option() (chart.RenderOption, bool) {
	return s.last, s.hasLast
}

// Counters reports how many SetOption and Clear calls were made.
func (s *ECharts) Counters() (sets, clears int) {
	return s.sets, s.clears
}

// Render writes a standalone HTML page for the current chart.
func (s *ECharts) Render(w io.Writer) error {
	if err := s.pie.Render(w); err != nil {
		return fmt.Errorf("render pie: %w", err)
	}
	return nil
}

// decode converts a loosely typed option fragment into a go-echarts option
// through their shared JSON form.
func decode(src, dst interface{}) error {
	b, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}

// pieData keeps name, value and the item keys ECharts draws. Other record
// fields only travel in the JSON option.
func pieData(raw interface{}) []opts.PieData {
	var items []map[string]interface{}
	switch data := raw.(type) {
	case []chart.SeriesItem:
		for _, it := range data {
			items = append(items, it)
		}
	case []map[string]interface{}:
		items = data
	case []interface{}:
		for _, it := range data {
			switch m := it.(type) {
			case map[string]interface{}:
				items = append(items, m)
			case chart.SeriesItem:
				items = append(items, m)
			}
		}
	}

	out := make([]opts.PieData, 0, len(items))
	for _, it := range items {
		var d opts.PieData
		extra := make(map[string]interface{})
		for _, k := range drawnItemKeys {
			if v, ok := it[k]; ok {
				extra[k] = v
			}
		}
		if len(extra) > 0 {
			if err := decode(extra, &d); err != nil {
				log.WithError(err).Warn("ignoring pie item style")
				d = opts.PieData{}
			}
		}
		d.Name = label(it["name"])
		d.Value = it["value"]
		out = append(out, d)
	}
	return out
}

func label(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
