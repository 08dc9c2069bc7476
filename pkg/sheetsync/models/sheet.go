package models

// Sheet represents one tab of the source spreadsheet as read from the remote.
type Sheet struct {
	// Name is the tab title.
	Name string `json:"name"`
	// Rows holds the raw cells of columns A to C, header row included.
	Rows [][]string `json:"rows,omitempty"`
}
