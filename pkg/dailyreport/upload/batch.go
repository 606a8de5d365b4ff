package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/ukaji3/dailyreport-go/pkg/dailyreport/models"
	"github.com/ukaji3/dailyreport-go/pkg/dailyreport/session"
)

// Batch is one import request.
type Batch struct {
	Reports           []models.DailyReport
	ProjectID         int
	ReporterID        int
	OverwriteExisting bool
}

// WireReport is a daily report as the import endpoint expects it: section
// arrays travel as JSON strings.
type WireReport struct {
	ReportDate           string          `json:"reportDate"`
	ReporterName         string          `json:"reporterName"`
	OverallProgress      models.Progress `json:"overallProgress"`
	ProgressDescription  string          `json:"progressDescription"`
	TaskProgressList     string          `json:"taskProgressList"`
	TomorrowPlans        string          `json:"tomorrowPlans"`
	WorkerReports        string          `json:"workerReports"`
	MachineryRentals     string          `json:"machineryRentals"`
	ProblemFeedbacks     string          `json:"problemFeedbacks"`
	Requirements         string          `json:"requirements"`
	OnSitePersonnelCount int             `json:"onSitePersonnelCount"`
	Weather              *string         `json:"weather"`
	Temperature          *string         `json:"temperature"`
	Remarks              *string         `json:"remarks"`
}

// Payload is the request body of a batch import.
type Payload struct {
	ProjectID         int          `json:"projectId"`
	ReporterID        int          `json:"reporterId"`
	OverwriteExisting bool         `json:"overwriteExisting"`
	Reports           []WireReport `json:"reports"`
}

// ImportResult is the server's account of a batch import.
type ImportResult struct {
	TotalCount     int             `json:"totalCount"`
	SuccessCount   int             `json:"successCount"`
	FailedCount    int             `json:"failedCount"`
	SkippedCount   int             `json:"skippedCount"`
	SuccessReports json.RawMessage `json:"successReports,omitempty"`
	FailedReports  json.RawMessage `json:"failedReports,omitempty"`
}

// EncodeReports converts reports to their wire form.
func EncodeReports(reports []models.DailyReport) ([]WireReport, error) {
	out := make([]WireReport, 0, len(reports))
	for _, r := range reports {
		w, err := encodeReport(r)
		if err != nil {
			return nil, fmt.Errorf("report %s: %w", r.ReportDate, err)
		}
		out = append(out, w)
	}
	return out, nil
}

func encodeReport(r models.DailyReport) (WireReport, error) {
	w := WireReport{
		ReportDate:           r.ReportDate,
		ReporterName:         r.ReporterName,
		OverallProgress:      r.OverallProgress,
		ProgressDescription:  r.ProgressDescription,
		OnSitePersonnelCount: r.OnSitePersonnelCount,
		Weather:              r.Weather,
		Temperature:          r.Temperature,
		Remarks:              r.Remarks,
	}

	fields := []struct {
		dst *string
		src interface{}
	}{
		{&w.TaskProgressList, r.TaskProgressList},
		{&w.TomorrowPlans, r.TomorrowPlans},
		{&w.WorkerReports, r.WorkerReports},
		{&w.MachineryRentals, r.MachineryRentals},
		{&w.ProblemFeedbacks, r.ProblemFeedbacks},
		{&w.Requirements, r.Requirements},
	}
	for _, f := range fields {
		data, err := encodeJSON(f.src)
		if err != nil {
			return WireReport{}, err
		}
		*f.dst = string(data)
	}
	return w, nil
}

// NewPayload builds the wire body for b.
func NewPayload(b Batch) (*Payload, error) {
	wire, err := EncodeReports(b.Reports)
	if err != nil {
		return nil, fmt.Errorf("failed to encode reports: %w", err)
	}
	return &Payload{
		ProjectID:         b.ProjectID,
		ReporterID:        b.ReporterID,
		OverwriteExisting: b.OverwriteExisting,
		Reports:           wire,
	}, nil
}

// JSON renders the payload as sent, optionally indented.
func (p *Payload) JSON(pretty bool) ([]byte, error) {
	if !pretty {
		return encodeJSON(p)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// BatchImport uploads reports to the project.
func (c *Client) BatchImport(ctx context.Context, sess *session.Session, b Batch) (*ImportResult, error) {
	logger := zerolog.Ctx(ctx)

	if !sess.Valid(c.now()) {
		return nil, ErrNotLoggedIn
	}
	if len(b.Reports) == 0 {
		return nil, ErrNoReports
	}

	payload, err := NewPayload(b)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int("project_id", payload.ProjectID).
		Int("reporter_id", payload.ReporterID).
		Bool("overwrite", payload.OverwriteExisting).
		Int("reports", len(payload.Reports)).
		Msg("uploading reports")

	var result ImportResult
	err = c.do(ctx, call{
		method:      http.MethodPost,
		baseURL:     sess.ServerURL,
		path:        batchImportPath,
		token:       sess.Token,
		body:        payload,
		failMessage: "batch import failed",
	}, &result)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int("total", result.TotalCount).
		Int("success", result.SuccessCount).
		Int("failed", result.FailedCount).
		Int("skipped", result.SkippedCount).
		Msg("upload finished")
	return &result, nil
}
