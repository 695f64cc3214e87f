package chart

// Record is one row of the data source, keyed by field name.
type Record map[string]interface{}

// KeyMap names the record fields holding the label and the magnitude.
type KeyMap struct {
	TextKey string `json:"textKey"`
	DataKey string `json:"dataKey"`
}

// DefaultKeyMap is used when the settings carry no key map.
var DefaultKeyMap = KeyMap{
	TextKey: "key",
	DataKey: "value",
}

// Settings is the user configuration a chart is built from.
type Settings struct {
	Data         []Record                 `json:"data"`
	Title        string                   `json:"title,omitempty"`
	Ring         bool                     `json:"ring,omitempty"`
	KeyMap       *KeyMap                  `json:"keyMap,omitempty"`
	InsertSeries []map[string]interface{} `json:"insertSeries,omitempty"`
}

func (s Settings) keys() KeyMap {
	if s.KeyMap == nil {
		return DefaultKeyMap
	}
	return *s.KeyMap
}
