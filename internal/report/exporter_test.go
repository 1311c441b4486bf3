package report_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"teamhours-be/internal/entities"
	"teamhours-be/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type stubWorkHoursRepo struct {
	entries []*entities.WorkHour
	err     error
}

func (s *stubWorkHoursRepo) Create(userID string, start, end time.Time, summary *string, timezone, totalHours string) (*entities.WorkHour, error) {
	panic("not used")
}

func (s *stubWorkHoursRepo) ListByMonth(userID string, year int, month time.Month) ([]*entities.WorkHour, error) {
	return s.entries, s.err
}

func (s *stubWorkHoursRepo) UpdateSummary(id int64, summary *string) (*entities.WorkHour, error) {
	panic("not used")
}

func strptr(s string) *string { return &s }

func entry(id int64, start, end string, total string, summary *string) *entities.WorkHour {
	st, _ := time.Parse("2006-01-02 15:04:05", start)
	en, _ := time.Parse("2006-01-02 15:04:05", end)
	return &entities.WorkHour{
		ID:         id,
		UserID:     "user-1",
		StartTime:  st,
		EndTime:    en,
		Summary:    summary,
		Timezone:   "UTC",
		TotalHours: total,
	}
}

func TestExport_RowsMatchListingOrder(t *testing.T) {
	repo := &stubWorkHoursRepo{entries: []*entities.WorkHour{
		entry(2, "2024-06-10 09:00:00", "2024-06-10 17:30:00", "08h30min", strptr("release prep")),
		entry(1, "2024-06-03 10:00:00", "2024-06-03 12:00:00", "02h00min", nil),
	}}

	content, err := report.NewExporter(repo).Export("user-1", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Work Hours")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Date", "Start Time", "End Time", "Total Hours", "Summary"}, rows[0])
	assert.Equal(t, []string{"2024-06-10", "09:00:00", "17:30:00", "08h30min", "release prep"}, rows[1])
	// A nil summary renders as an empty trailing cell.
	assert.Equal(t, "2024-06-03", rows[2][0])
	assert.Equal(t, "02h00min", rows[2][3])
}

func TestExport_Deterministic(t *testing.T) {
	repo := &stubWorkHoursRepo{entries: []*entities.WorkHour{
		entry(1, "2024-06-03 10:00:00", "2024-06-03 12:00:00", "02h00min", strptr("x")),
	}}
	exporter := report.NewExporter(repo)
	month := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	a, err := exporter.Export("user-1", month)
	require.NoError(t, err)
	b, err := exporter.Export("user-1", month)
	require.NoError(t, err)

	ra, err := excelize.OpenReader(bytes.NewReader(a))
	require.NoError(t, err)
	defer ra.Close()
	rb, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer rb.Close()

	rowsA, err := ra.GetRows("Work Hours")
	require.NoError(t, err)
	rowsB, err := rb.GetRows("Work Hours")
	require.NoError(t, err)
	assert.Equal(t, rowsA, rowsB)
}

func TestExport_StoreFailurePropagates(t *testing.T) {
	repo := &stubWorkHoursRepo{err: errors.New("db down")}

	_, err := report.NewExporter(repo).Export("user-1", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	assert.Error(t, err)
}

func TestExport_EmptyMonthHasOnlyHeader(t *testing.T) {
	content, err := report.NewExporter(&stubWorkHoursRepo{}).Export("user-1", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Work Hours")
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
