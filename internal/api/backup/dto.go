package backup

type ImportResponse struct {
	Imported bool   `json:"imported"`
	Version  string `json:"version"`
}
