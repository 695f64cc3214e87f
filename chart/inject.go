package chart

// InjectDataIntoSeries shallow-merges insert[i] into series[i]. Fragments
// without a matching series are dropped. Neither input is modified.
func InjectDataIntoSeries(insert []map[string]interface{}, series []map[string]interface{}) []map[string]interface{} {
	merged := make([]map[string]interface{}, len(series))
	for i, s := range series {
		out := make(map[string]interface{}, len(s))
		for k, v := range s {
			out[k] = v
		}
		if i < len(insert) {
			for k, v := range insert[i] {
				out[k] = v
			}
		}
		merged[i] = out
	}
	return merged
}
