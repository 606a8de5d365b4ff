package dailyreport

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/dailyreport-go/pkg/dailyreport/models"
	"github.com/ukaji3/dailyreport-go/pkg/dailyreport/output"
	"github.com/ukaji3/dailyreport-go/pkg/dailyreport/parser/parsertest"
)

type mockWorkbook struct {
	mock.Mock
}

func (m *mockWorkbook) SheetNames() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *mockWorkbook) Rows(sheetName string) ([][]string, error) {
	args := m.Called(sheetName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]string), args.Error(1)
}

func (m *mockWorkbook) Close() error {
	return m.Called().Error(0)
}

func testContext() context.Context {
	logger := zerolog.Nop()
	return logger.WithContext(context.Background())
}

func writeTemplateWorkbook(t *testing.T, names ...string) string {
	t.Helper()
	grids := make([][][]string, len(names))
	for i := range names {
		grids[i] = parsertest.TemplateRows()
	}
	path := filepath.Join(t.TempDir(), "daily.xlsx")
	parsertest.WriteWorkbook(t, path, names, grids)
	return path
}

func TestExtract_TemplateWorkbook(t *testing.T) {
	path := writeTemplateWorkbook(t, "2024-05-10", "2024-05-11")

	reports, err := Extract(testContext(), path, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, reports, 2)

	assert.Equal(t, "2024-05-10", reports[0].ReportDate)
	assert.Equal(t, "2024-05-11", reports[1].ReportDate)
	for _, r := range reports {
		assert.Equal(t, "XX", r.ReporterName)
		assert.Equal(t, "normal", string(r.OverallProgress))
		assert.Len(t, r.TaskProgressList, 2)
		assert.Len(t, r.TomorrowPlans, 1)
		assert.Len(t, r.MachineryRentals, 1)
		assert.Len(t, r.ProblemFeedbacks, 2)
		assert.Len(t, r.Requirements, 1)
		assert.Equal(t, len(r.WorkerReports), r.OnSitePersonnelCount)
		assert.Equal(t, 3, r.OnSitePersonnelCount)
	}
}

func TestExtract_SkipsEmptySheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daily.xlsx")
	parsertest.WriteWorkbook(t, path,
		[]string{"2024-05-10", "blank", "2024-05-12"},
		[][][]string{parsertest.TemplateRows(), nil, parsertest.TemplateRows()},
	)

	reports, err := Extract(testContext(), path, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "2024-05-10", reports[0].ReportDate)
	assert.Equal(t, "2024-05-12", reports[1].ReportDate)
}

func TestExtract_Idempotent(t *testing.T) {
	path := writeTemplateWorkbook(t, "2024-05-10", "2024-05-11", "2024-05-12")

	first, err := Extract(testContext(), path, DefaultOptions())
	require.NoError(t, err)
	second, err := Extract(testContext(), path, DefaultOptions())
	require.NoError(t, err)

	a, err := output.ToJSON(first, true)
	require.NoError(t, err)
	b, err := output.ToJSON(second, true)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestExtract_ConcurrentKeepsSheetOrder(t *testing.T) {
	names := []string{"2024-05-01", "2024-05-02", "2024-05-03", "2024-05-04", "2024-05-05", "2024-05-06"}
	path := writeTemplateWorkbook(t, names...)

	opts := DefaultOptions()
	opts.Concurrency = 4

	reports, err := Extract(testContext(), path, opts)
	require.NoError(t, err)
	require.Len(t, reports, len(names))
	for i, r := range reports {
		assert.Equal(t, names[i], r.ReportDate)
	}

	sequential, err := Extract(testContext(), path, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, sequential, reports)
}

func TestExtract_FileNotFound(t *testing.T) {
	_, err := Extract(testContext(), filepath.Join(t.TempDir(), "missing.xlsx"), DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileNotFound))
}

func TestExtract_InvalidFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a workbook"), 0o644))

	_, err := Extract(testContext(), path, DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidFormat))
}

func TestExtractWorkbook_NoSheets(t *testing.T) {
	wb := new(mockWorkbook)
	wb.On("SheetNames").Return([]string{})

	reports, err := ExtractWorkbook(testContext(), wb, DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, reports)
	wb.AssertExpectations(t)
}

func TestExtractWorkbook_SheetReadFailureAborts(t *testing.T) {
	readErr := errors.New("range error")
	wb := new(mockWorkbook)
	wb.On("SheetNames").Return([]string{"2024-05-10", "2024-05-11"})
	wb.On("Rows", "2024-05-10").Return(nil, readErr)

	_, err := ExtractWorkbook(testContext(), wb, DefaultOptions())
	require.Error(t, err)
	assert.True(t, IsSheetError(err))
	assert.ErrorIs(t, err, readErr)

	var extractErr *ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, "2024-05-10", extractErr.SheetName)
	wb.AssertNotCalled(t, "Rows", "2024-05-11")
}

func TestExtractWorkbook_SheetReadFailureSkipped(t *testing.T) {
	wb := new(mockWorkbook)
	wb.On("SheetNames").Return([]string{"2024-05-10", "2024-05-11"})
	wb.On("Rows", "2024-05-10").Return(nil, errors.New("range error"))
	wb.On("Rows", "2024-05-11").Return(parsertest.TemplateRows(), nil)

	opts := DefaultOptions()
	opts.SkipUnreadableSheets = true

	reports, err := ExtractWorkbook(testContext(), wb, opts)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "2024-05-11", reports[0].ReportDate)
}

func TestTrimTrailingEmpty(t *testing.T) {
	rows := [][]string{{"a"}, nil, {"b"}, nil, {}}
	assert.Equal(t, [][]string{{"a"}, nil, {"b"}}, trimTrailingEmpty(rows))
	assert.Empty(t, trimTrailingEmpty([][]string{nil, {}}))
}

// testdata/legacy.xls is a BIFF8 workbook with three sheets: a report whose
// progress cell is the only cell of its row (column E), an empty sheet, and a
// title-only report with a row starting at column C.
const legacyXLS = "testdata/legacy.xls"

func TestOpenWorkbook_LegacyXLS(t *testing.T) {
	wb, err := OpenWorkbook(legacyXLS)
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, []string{"2024-05-10", "empty", "2024-05-11"}, wb.SheetNames())

	rows, err := wb.Rows("2024-05-10")
	require.NoError(t, err)
	require.Len(t, rows, 8)
	assert.Equal(t, []string{"XX项目工作日报"}, rows[0])
	assert.Empty(t, rows[1])
	assert.Equal(t, []string{"", "", "", "", "进度滞后"}, rows[2])
	assert.Equal(t, []string{"1", "张三", "电工"}, rows[7])

	rows, err = wb.Rows("empty")
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = wb.Rows("2024-05-11")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"", "", "a", "b"}, rows[3])

	_, err = wb.Rows("missing")
	assert.Error(t, err)
}

func TestExtract_LegacyXLS(t *testing.T) {
	reports, err := Extract(testContext(), legacyXLS, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, reports, 2)

	first := reports[0]
	assert.Equal(t, "2024-05-10", first.ReportDate)
	assert.Equal(t, "XX", first.ReporterName)
	assert.Equal(t, models.ProgressDelayed, first.OverallProgress)
	assert.Equal(t, "进度滞后", first.ProgressDescription)
	assert.Equal(t, []models.WorkerReport{{SeqNo: "1", Name: "张三", JobType: "电工"}}, first.WorkerReports)
	assert.Equal(t, 1, first.OnSitePersonnelCount)

	second := reports[1]
	assert.Equal(t, "2024-05-11", second.ReportDate)
	assert.Equal(t, "YY", second.ReporterName)
	assert.Equal(t, models.ProgressNormal, second.OverallProgress)
	assert.Empty(t, second.WorkerReports)
}
