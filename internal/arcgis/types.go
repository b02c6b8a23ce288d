package arcgis

import "fmt"

// Feature is a single record of a feature layer in Esri JSON form.
type Feature struct {
	Attributes map[string]interface{} `json:"attributes"`
	Geometry   *Geometry              `json:"geometry,omitempty"`
}

// Geometry carries either a point (X, Y) or a polyline (Paths),
// depending on the layer's geometry type.
type Geometry struct {
	X     float64        `json:"x,omitempty"`
	Y     float64        `json:"y,omitempty"`
	Paths [][][2]float64 `json:"paths,omitempty"`
}

// EditResult is the per-feature outcome of an applyEdits call,
// returned in the same order as the submitted features.
type EditResult struct {
	ObjectID int64      `json:"objectId"`
	Success  bool       `json:"success"`
	Error    *EditError `json:"error,omitempty"`
}

// EditError is the service's detail for a rejected edit.
type EditError struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
}

// apiError is the service-level error envelope, delivered with HTTP 200.
type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("service error %d: %s", e.Code, e.Message)
}

type queryResponse struct {
	Error                 *apiError `json:"error,omitempty"`
	Features              []Feature `json:"features"`
	ExceededTransferLimit bool      `json:"exceededTransferLimit"`
}

type applyEditsResponse struct {
	Error         *apiError    `json:"error,omitempty"`
	UpdateResults []EditResult `json:"updateResults"`
}
