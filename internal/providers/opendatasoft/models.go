package opendatasoft

// SearchAPIResponse is the body of a records/1.0/search query.
type SearchAPIResponse struct {
	Nhits      int `json:"nhits"`
	Parameters struct {
		Dataset  string   `json:"dataset"`
		Query    string   `json:"q"`
		Rows     int      `json:"rows"`
		Timezone string   `json:"timezone"`
		Format   string   `json:"format"`
		Facet    []string `json:"facet"`
	} `json:"parameters"`
	Records []Record `json:"records"`
}

type Record struct {
	DatasetID string         `json:"datasetid"`
	RecordID  string         `json:"recordid"`
	Fields    map[string]any `json:"fields"`
	Geometry  Geometry       `json:"geometry"`
}

// Geometry is a GeoJSON point; Coordinates is [longitude, latitude].
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// StringField returns a text field of the record. Some georef fields are
// published as single-element arrays, so the first string element is used then.
func (r Record) StringField(key string) string {
	val, ok := r.Fields[key]
	if !ok {
		return ""
	}
	switch v := val.(type) {
	case string:
		return v
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				return s
			}
		}
	}
	return ""
}
