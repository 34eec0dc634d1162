package reports

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/minseo-dev/event-marketing-backend/internal/analytics"
	"github.com/minseo-dev/event-marketing-backend/internal/event"
)

func sampleReportData() ReportData {
	events := []event.Event{
		{
			ID:              "7b0d1b3a-0000-0000-0000-000000000001",
			Title:           "March Live Commerce",
			EventType:       event.TypeLiveCommerce,
			Status:          event.StatusCompleted,
			StartDate:       time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:         time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
			Partner:         "Acme Living",
			TargetContracts: 10,
			ActualContracts: 11,
			TotalCost:       1_200_000,
			ActualSqm:       42.5,
		},
	}
	return ReportData{
		Report: Report{
			Title:      "2025-03 Monthly Report",
			PeriodType: PeriodMonthly,
			StartDate:  time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
			EventCount: 1,
			CreatedAt:  time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC),
		},
		Snapshot: Snapshot{
			Summary:  analytics.Summarize(events),
			Channels: analytics.ChannelRollup(events),
			Events:   events,
		},
	}
}

func TestExportText(t *testing.T) {
	e := NewExporter()

	out, filename, mime, err := e.Export(FormatText, sampleReportData())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(filename, ".txt") {
		t.Errorf("filename = %q, want .txt suffix", filename)
	}
	if !strings.HasPrefix(mime, "text/plain") {
		t.Errorf("mime = %q", mime)
	}

	text := string(out)
	for _, want := range []string{
		"2025-03 Monthly Report",
		"Period: 2025-03-01 ~ 2025-03-31",
		"Total events: 1",
		"Contracts: 11 / 10 (110%)",
		"March Live Commerce",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("text export missing %q:\n%s", want, text)
		}
	}
}

func TestExportCSV(t *testing.T) {
	e := NewExporter()

	out, _, mime, err := e.Export(FormatCSV, sampleReportData())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mime != "text/csv" {
		t.Errorf("mime = %q, want text/csv", mime)
	}

	records, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("invalid csv output: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("csv rows = %d, want header + 1", len(records))
	}
	if records[0][1] != "Title" {
		t.Errorf("header row = %v", records[0])
	}
	if records[1][1] != "March Live Commerce" || records[1][2] != event.TypeLiveCommerce {
		t.Errorf("data row = %v", records[1])
	}
}

func TestExportUnsupportedFormat(t *testing.T) {
	e := NewExporter()
	if _, _, _, err := e.Export("docx", sampleReportData()); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestExportDefaultsToText(t *testing.T) {
	e := NewExporter()
	_, filename, _, err := e.Export("", sampleReportData())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(filename, ".txt") {
		t.Errorf("filename = %q, want .txt", filename)
	}
}
