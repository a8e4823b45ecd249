package nifc

// QueryAPIResponse is an ArcGIS FeatureServer query result in Esri JSON (f=json).
type QueryAPIResponse struct {
	ObjectIDFieldName string `json:"objectIdFieldName"`
	GeometryType      string `json:"geometryType"`
	SpatialReference  struct {
		Wkid       int `json:"wkid"`
		LatestWkid int `json:"latestWkid"`
	} `json:"spatialReference"`
	Features              []Feature `json:"features"`
	ExceededTransferLimit bool      `json:"exceededTransferLimit"`
	// ArcGIS reports query failures with HTTP 200 and this object set.
	Error *APIError `json:"error,omitempty"`
}

type APIError struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details"`
}

type Feature struct {
	Attributes Attributes `json:"attributes"`
	Geometry   *Point     `json:"geometry"`
}

// Attributes of a WFIGS incident location. Every field is nullable in the feed.
type Attributes struct {
	ObjectID                      *int64   `json:"OBJECTID"`
	FireBehaviorGeneral           *string  `json:"FireBehaviorGeneral"`
	FireBehaviorGeneral1          *string  `json:"FireBehaviorGeneral1"`
	InitialLatitude               *float64 `json:"InitialLatitude"`
	InitialLongitude              *float64 `json:"InitialLongitude"`
	IncidentName                  *string  `json:"IncidentName"`
	PercentContained              *float64 `json:"PercentContained"`
	PercentPerimeterToBeContained *float64 `json:"PercentPerimeterToBeContained"`
	DailyAcres                    *float64 `json:"DailyAcres"`
	POOCity                       *string  `json:"POOCity"`
}

// Point is an Esri point geometry; with outSR=4326, X is longitude and Y latitude.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
