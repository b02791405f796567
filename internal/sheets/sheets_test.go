package sheets

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

func TestExtractID(t *testing.T) {
	tests := []struct {
		name    string
		locator string
		wantID  string
		wantURL bool
	}{
		{
			name:    "edit URL",
			locator: "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms/edit#gid=0",
			wantID:  "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
			wantURL: true,
		},
		{
			name:    "bare URL without edit suffix",
			locator: "https://docs.google.com/spreadsheets/d/abc-DEF_123",
			wantID:  "abc-DEF_123",
			wantURL: true,
		},
		{
			name:    "raw ID",
			locator: "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
			wantID:  "1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms",
			wantURL: false,
		},
		{
			name:    "empty locator",
			locator: "",
			wantID:  "",
			wantURL: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, fromURL := ExtractID(tt.locator)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantURL, fromURL)
		})
	}
}

func TestClassify(t *testing.T) {
	notFound := &googleapi.Error{Code: 404, Message: "Requested entity was not found."}
	cause, apiErr := Classify(fmt.Errorf("fetching spreadsheet: %w", notFound))
	assert.Equal(t, CauseNotFound, cause)
	require.NotNil(t, apiErr)
	assert.Equal(t, 404, apiErr.Code)

	forbidden := &googleapi.Error{Code: 403, Message: "Google Sheets API has not been used in project"}
	cause, apiErr = Classify(forbidden)
	assert.Equal(t, CauseAPI, cause)
	require.NotNil(t, apiErr)
	assert.Equal(t, 403, apiErr.Code)

	cause, apiErr = Classify(errors.New("connection refused"))
	assert.Equal(t, CauseUnexpected, cause)
	assert.Nil(t, apiErr)
}
