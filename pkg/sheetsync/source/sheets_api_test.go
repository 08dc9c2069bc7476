package source

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"google.golang.org/api/option"
)

const testSpreadsheetID = "sheet-123"

func newTestSheetsAPI(t *testing.T, handler http.HandlerFunc) *SheetsAPI {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	api, err := NewSheetsAPI(context.Background(), testSpreadsheetID, "test-key",
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()),
	)
	if err != nil {
		t.Fatalf("NewSheetsAPI failed: %v", err)
	}
	return api
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func TestSheetsAPISheetTitles(t *testing.T) {
	api := newTestSheetsAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v4/spreadsheets/"+testSpreadsheetID {
			http.NotFound(w, r)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"sheets": []map[string]interface{}{
				{"properties": map[string]interface{}{"title": "Language Learning"}},
				{"properties": map[string]interface{}{"title": "Birthland Tours"}},
			},
		})
	})

	titles, err := api.SheetTitles(context.Background())
	if err != nil {
		t.Fatalf("SheetTitles failed: %v", err)
	}
	expected := []string{"Language Learning", "Birthland Tours"}
	if !reflect.DeepEqual(titles, expected) {
		t.Errorf("SheetTitles() = %v, expected %v", titles, expected)
	}
}

func TestSheetsAPIReadRange(t *testing.T) {
	var requested string
	api := newTestSheetsAPI(t, func(w http.ResponseWriter, r *http.Request) {
		prefix := "/v4/spreadsheets/" + testSpreadsheetID + "/values/"
		if !strings.HasPrefix(r.URL.Path, prefix) {
			http.NotFound(w, r)
			return
		}
		requested = strings.TrimPrefix(r.URL.Path, prefix)
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"range":          "'Birthland Tours'!A1:C3",
			"majorDimension": "ROWS",
			"values": [][]interface{}{
				{"Name", "URL", "Category"},
				{"Tour", "https://tour.example"},
				{2024, "", "yearly"},
			},
		})
	})

	rows, err := api.ReadRange(context.Background(), "Birthland Tours", ColumnRange)
	if err != nil {
		t.Fatalf("ReadRange failed: %v", err)
	}
	if requested != "'Birthland Tours'!A:C" {
		t.Errorf("Expected range 'Birthland Tours'!A:C, got %q", requested)
	}
	expected := [][]string{
		{"Name", "URL", "Category"},
		{"Tour", "https://tour.example"},
		{"2024", "", "yearly"},
	}
	if !reflect.DeepEqual(rows, expected) {
		t.Errorf("ReadRange() = %q, expected %q", rows, expected)
	}
}

func TestSheetsAPIRejectedKey(t *testing.T) {
	api := newTestSheetsAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, map[string]interface{}{
			"error": map[string]interface{}{
				"code":    403,
				"message": "The caller does not have permission",
				"status":  "PERMISSION_DENIED",
			},
		})
	})

	_, err := api.SheetTitles(context.Background())
	if err == nil {
		t.Fatal("Expected error for rejected key")
	}
	if !IsCredentialError(err) {
		t.Errorf("Expected credential error, got %v", err)
	}
}

func TestSheetsAPIReadRangeServerError(t *testing.T) {
	api := newTestSheetsAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"error": map[string]interface{}{"code": 500, "message": "backend error"},
		})
	})

	_, err := api.ReadRange(context.Background(), "Links", ColumnRange)
	if err == nil {
		t.Fatal("Expected error")
	}
	if IsCredentialError(err) {
		t.Errorf("Server error classified as credential error: %v", err)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		input    interface{}
		expected string
	}{
		{nil, ""},
		{"text", "text"},
		{float64(3), "3"},
		{1.5, "1.5"},
		{true, "true"},
	}

	for _, tt := range tests {
		result := formatValue(tt.input)
		if result != tt.expected {
			t.Errorf("formatValue(%v) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}
