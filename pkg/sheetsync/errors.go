package sheetsync

import (
	"errors"
	"fmt"
)

// ErrMissingSpreadsheetID indicates no spreadsheet identifier was configured.
var ErrMissingSpreadsheetID = errors.New("spreadsheet id not set")

// ErrMissingAPIKey indicates no API credential was configured.
var ErrMissingAPIKey = errors.New("api key not set")

// ErrMissingOutputPath indicates the data file path is empty.
var ErrMissingOutputPath = errors.New("output path not set")

// FetchError reports that the spreadsheet itself could not be read.
// It aborts the run.
type FetchError struct {
	SpreadsheetID string
	// CredentialRejected is set when the remote refused the credential.
	CredentialRejected bool
	Err                error
}

func (e *FetchError) Error() string {
	if e.CredentialRejected {
		return fmt.Sprintf("fetch spreadsheet %q: credential rejected: %v", e.SpreadsheetID, e.Err)
	}
	return fmt.Sprintf("fetch spreadsheet %q: %v", e.SpreadsheetID, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// SheetError reports that one tab could not be read. The run skips the
// tab and continues.
type SheetError struct {
	SheetName string
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("fetch sheet %q: %v", e.SheetName, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}
