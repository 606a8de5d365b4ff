package dailyreport

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ukaji3/dailyreport-go/pkg/dailyreport/models"
	"github.com/ukaji3/dailyreport-go/pkg/dailyreport/parser"
)

// Extract extracts one daily report per non-empty sheet of a workbook file.
// Reports are returned in workbook sheet order.
func Extract(ctx context.Context, path string, opts Options) ([]models.DailyReport, error) {
	wb, err := OpenWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer wb.Close()

	return ExtractWorkbook(ctx, wb, opts)
}

// sheetGrid is a materialized sheet awaiting parsing.
type sheetGrid struct {
	name string
	rows [][]string
}

// ExtractWorkbook extracts daily reports from an already opened workbook.
func ExtractWorkbook(ctx context.Context, wb Workbook, opts Options) ([]models.DailyReport, error) {
	logger := zerolog.Ctx(ctx)

	grids, err := readSheets(ctx, wb, opts)
	if err != nil {
		return nil, err
	}

	reports := make([]models.DailyReport, len(grids))

	g := new(errgroup.Group)
	g.SetLimit(max(opts.Concurrency, 1))
	for i, grid := range grids {
		g.Go(func() error {
			reports[i] = parser.ParseSheet(grid.name, grid.rows, opts.Layout)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, r := range reports {
		logger.Debug().
			Str("sheet", r.ReportDate).
			Int("tasks", len(r.TaskProgressList)).
			Int("plans", len(r.TomorrowPlans)).
			Int("workers", len(r.WorkerReports)).
			Int("machinery", len(r.MachineryRentals)).
			Int("problems", len(r.ProblemFeedbacks)).
			Int("requirements", len(r.Requirements)).
			Msg("sheet parsed")
	}

	return reports, nil
}

// readSheets materializes the row grid of every non-empty sheet, in order.
// Workbook access stays sequential; only parsing runs concurrently.
func readSheets(ctx context.Context, wb Workbook, opts Options) ([]sheetGrid, error) {
	logger := zerolog.Ctx(ctx)

	var grids []sheetGrid
	for _, name := range wb.SheetNames() {
		rows, err := wb.Rows(name)
		if err != nil {
			extractErr := NewExtractionError(name, "rows", err)
			if !opts.SkipUnreadableSheets {
				return nil, extractErr
			}
			logger.Warn().Err(extractErr).Str("sheet", name).Msg("skipping unreadable sheet")
			continue
		}

		if len(rows) == 0 {
			logger.Debug().Str("sheet", name).Msg("skipping empty sheet")
			continue
		}

		logger.Debug().
			Str("sheet", name).
			Int("rows", len(rows)).
			Msg("sheet loaded")
		grids = append(grids, sheetGrid{name: name, rows: rows})
	}
	return grids, nil
}

// IsSheetError reports whether err came from reading a single sheet.
func IsSheetError(err error) bool {
	var extractErr *ExtractionError
	return errors.As(err, &extractErr)
}
