package export

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"meteolog.dev/internal/logging"
	"meteolog.dev/weatherdb"
)

const sheetName = "observations"

// timestampLayout is timezone-naive because spreadsheet cells cannot carry a
// timezone; values are written in the service's local timezone.
const timestampLayout = "2006-01-02 15:04:05"

var headers = []string{
	"Temperature (°C)",
	"Wind speed (m/s)",
	"Wind direction",
	"Precipitation (mm)",
	"Pressure (mmHg)",
	"Weather",
	"Observed at",
}

// Service writes observation spreadsheets into a fixed directory
type Service struct {
	dir      string
	location *time.Location
	logger   *slog.Logger
}

// NewService creates an export Service writing .xlsx files to dir, with
// timestamps rendered in the given timezone.
func NewService(dir string, location *time.Location, logger *slog.Logger) *Service {
	return &Service{dir: dir, location: location, logger: logger}
}

// Export writes the given observations to a new workbook and returns its
// path and the number of data rows written.
func (s *Service) Export(observations []weatherdb.Observation) (string, int, error) {
	f := excelize.NewFile()
	defer logging.SafeCloseWithLogging(f, s.logger, "xlsx_workbook")

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return "", 0, fmt.Errorf("error naming worksheet: %w", err)
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return "", 0, err
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return "", 0, fmt.Errorf("error writing header %q: %w", header, err)
		}
	}

	for row, obs := range observations {
		values := []interface{}{
			obs.Temperature,
			obs.WindSpeed,
			obs.WindDirection,
			obs.Precipitation,
			obs.Pressure,
			obs.Weather,
			obs.ObservedAt.In(s.location).Format(timestampLayout),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return "", 0, err
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return "", 0, fmt.Errorf("error writing row %d: %w", row+2, err)
			}
		}
	}

	path := filepath.Join(s.dir, fmt.Sprintf("observations-%s.xlsx", time.Now().UTC().Format("20060102-150405")))
	if err := f.SaveAs(path); err != nil {
		return "", 0, fmt.Errorf("error saving workbook: %w", err)
	}

	return path, len(observations), nil
}
