package models

// ExportModel describes a completed spreadsheet export
type ExportModel struct {
	Path string `json:"path"`
	Rows int    `json:"rows"`
}
