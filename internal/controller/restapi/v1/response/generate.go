package response

type Generate struct {
	Success bool   `json:"success"`
	Path    string `json:"path"`
}

type CustomHighlight struct {
	HighlightID string `json:"highlight_id"`
}
