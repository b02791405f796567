package sheets

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

type Service struct {
	srv *sheets.Service
}

// NewService builds a Sheets client authorized with the given token source.
func NewService(ctx context.Context, ts oauth2.TokenSource) (*Service, error) {
	srv, err := sheets.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, err
	}
	return &Service{srv: srv}, nil
}

// Spreadsheet is the metadata needed to diagnose access: the document title
// and the names of its worksheet tabs.
type Spreadsheet struct {
	Title      string
	Worksheets []string
}

func (s *Service) Describe(ctx context.Context, spreadsheetID string) (*Spreadsheet, error) {
	resp, err := s.srv.Spreadsheets.Get(spreadsheetID).
		Fields("properties.title,sheets.properties.title").
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	info := &Spreadsheet{}
	if resp.Properties != nil {
		info.Title = resp.Properties.Title
	}
	for _, sh := range resp.Sheets {
		if sh.Properties != nil {
			info.Worksheets = append(info.Worksheets, sh.Properties.Title)
		}
	}
	return info, nil
}

// Preview is a bounded snapshot of the top of one worksheet.
type Preview struct {
	Header []string
	Rows   [][]string
}

// ReadPreview fetches the header row plus up to maxRows data rows of the
// named worksheet.
func (s *Service) ReadPreview(ctx context.Context, spreadsheetID, worksheet string, maxRows int) (*Preview, error) {
	rangeName := fmt.Sprintf("'%s'!A1:Z%d", worksheet, maxRows+1)
	resp, err := s.srv.Spreadsheets.Values.Get(spreadsheetID, rangeName).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	preview := &Preview{}
	for i, row := range resp.Values {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = fmt.Sprint(cell)
		}
		if i == 0 {
			preview.Header = cells
			continue
		}
		preview.Rows = append(preview.Rows, cells)
	}
	return preview, nil
}

// sheetIDPattern matches the /d/<id> segment of a spreadsheet URL.
var sheetIDPattern = regexp.MustCompile(`/d/([a-zA-Z0-9-_]+)`)

// ExtractID pulls the spreadsheet ID out of a locator. URLs containing a
// /d/<id> segment yield the captured group; anything else is assumed to be
// the ID itself. fromURL reports which case applied.
func ExtractID(locator string) (id string, fromURL bool) {
	if matches := sheetIDPattern.FindStringSubmatch(locator); len(matches) == 2 {
		return matches[1], true
	}
	return locator, false
}

// Cause buckets a sheet-access failure for the diagnosis.
type Cause int

const (
	// CauseUnexpected is anything that is not a Google API error.
	CauseUnexpected Cause = iota
	// CauseNotFound means the API returned 404: wrong ID, or the sheet is
	// not shared with the service account.
	CauseNotFound
	// CauseAPI is any other Google API error, typically a disabled API or
	// an org sharing policy.
	CauseAPI
)

// Classify maps an access error onto its diagnostic cause. The returned
// *googleapi.Error is nil for CauseUnexpected.
func Classify(err error) (Cause, *googleapi.Error) {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return CauseUnexpected, nil
	}
	if apiErr.Code == 404 {
		return CauseNotFound, apiErr
	}
	return CauseAPI, apiErr
}
