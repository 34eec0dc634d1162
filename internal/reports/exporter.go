package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/minseo-dev/event-marketing-backend/internal/event"
)

// Exporter renders a saved report as a downloadable artifact.
type Exporter struct{}

func NewExporter() *Exporter {
	return &Exporter{}
}

// Export returns the rendered bytes, a suggested filename and the MIME type.
func (e *Exporter) Export(format string, data ReportData) ([]byte, string, string, error) {
	timestamp := time.Now().Format("20060102_150405")

	switch format {
	case FormatText, "":
		out, err := e.exportText(data)
		if err != nil {
			return nil, "", "", err
		}
		return out, fmt.Sprintf("report_%s.txt", timestamp), "text/plain; charset=utf-8", nil

	case FormatCSV:
		out, err := e.exportCSV(data)
		if err != nil {
			return nil, "", "", err
		}
		return out, fmt.Sprintf("report_%s.csv", timestamp), "text/csv", nil

	case FormatExcel:
		out, err := e.exportExcel(data)
		if err != nil {
			return nil, "", "", err
		}
		return out, fmt.Sprintf("report_%s.xlsx", timestamp), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil

	case FormatPDF:
		out, err := e.exportPDF(data)
		if err != nil {
			return nil, "", "", err
		}
		return out, fmt.Sprintf("report_%s.pdf", timestamp), "application/pdf", nil

	default:
		return nil, "", "", fmt.Errorf("unsupported format: %s", format)
	}
}

// exportText produces the human-readable line-delimited summary.
func (e *Exporter) exportText(data ReportData) ([]byte, error) {
	var buf bytes.Buffer
	rep := data.Report
	sum := data.Snapshot.Summary

	fmt.Fprintf(&buf, "%s\n", rep.Title)
	fmt.Fprintf(&buf, "Period: %s ~ %s\n", rep.StartDate.Format(event.DateLayout), rep.EndDate.Format(event.DateLayout))
	fmt.Fprintf(&buf, "Generated: %s\n", rep.CreatedAt.Format("2006-01-02 15:04:05"))
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "Total events: %d\n", sum.TotalEvents)
	fmt.Fprintf(&buf, "Contracts: %d / %d (%d%%)\n", sum.ActualContracts, sum.TargetContracts, sum.ContractAchievementRate)
	fmt.Fprintf(&buf, "Estimates: %d / %d (%d%%)\n", sum.ActualEstimates, sum.TargetEstimates, sum.EstimateAchievementRate)
	fmt.Fprintf(&buf, "Sqm sold: %.1f\n", sum.ActualSqm)
	fmt.Fprintf(&buf, "Total cost: %.0f\n", sum.TotalCost)
	fmt.Fprintf(&buf, "Cost per unit: %d\n", sum.CostPerUnit)
	fmt.Fprintf(&buf, "Avg efficiency: %.1f%%\n", sum.AvgEfficiency)
	buf.WriteString("\n")

	buf.WriteString("By channel:\n")
	for _, ch := range data.Snapshot.Channels {
		fmt.Fprintf(&buf, "  %-22s events=%d contracts=%d/%d rate=%d%% cost=%.0f\n",
			ch.EventType, ch.EventCount, ch.ActualContracts, ch.TargetContracts, ch.AchievementRate, ch.TotalCost)
	}
	buf.WriteString("\n")

	buf.WriteString("Events:\n")
	for _, ev := range data.Snapshot.Events {
		fmt.Fprintf(&buf, "  [%s] %s (%s, %s ~ %s) contracts=%d/%d cost=%.0f\n",
			ev.Status, ev.Title, ev.EventType,
			ev.StartDate.Format(event.DateLayout), ev.EndDate.Format(event.DateLayout),
			ev.ActualContracts, ev.TargetContracts, ev.TotalCost)
	}

	if rep.Notes != "" {
		buf.WriteString("\nNotes:\n")
		buf.WriteString(rep.Notes)
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

func eventHeaders() []string {
	return []string{"ID", "Title", "Type", "Status", "Start Date", "End Date", "Partner",
		"Target Contracts", "Actual Contracts", "Target Estimates", "Actual Estimates",
		"Actual Sqm", "Total Cost", "Efficiency"}
}

func eventRecord(ev event.Event) []string {
	return []string{
		ev.ID,
		ev.Title,
		ev.EventType,
		ev.Status,
		ev.StartDate.Format(event.DateLayout),
		ev.EndDate.Format(event.DateLayout),
		ev.Partner,
		strconv.Itoa(ev.TargetContracts),
		strconv.Itoa(ev.ActualContracts),
		strconv.Itoa(ev.TargetEstimates),
		strconv.Itoa(ev.ActualEstimates),
		fmt.Sprintf("%.1f", ev.ActualSqm),
		fmt.Sprintf("%.0f", ev.TotalCost),
		fmt.Sprintf("%.1f", ev.Efficiency),
	}
}

func (e *Exporter) exportCSV(data ReportData) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(eventHeaders()); err != nil {
		return nil, err
	}
	for _, ev := range data.Snapshot.Events {
		if err := writer.Write(eventRecord(ev)); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (e *Exporter) exportExcel(data ReportData) ([]byte, error) {
	f := excelize.NewFile()

	summarySheet := "Summary"
	f.SetSheetName("Sheet1", summarySheet)

	sum := data.Snapshot.Summary
	summaryRows := [][]interface{}{
		{"Title", data.Report.Title},
		{"Period", fmt.Sprintf("%s ~ %s", data.Report.StartDate.Format(event.DateLayout), data.Report.EndDate.Format(event.DateLayout))},
		{"Total Events", sum.TotalEvents},
		{"Actual Contracts", sum.ActualContracts},
		{"Target Contracts", sum.TargetContracts},
		{"Contract Achievement Rate", sum.ContractAchievementRate},
		{"Actual Estimates", sum.ActualEstimates},
		{"Target Estimates", sum.TargetEstimates},
		{"Estimate Achievement Rate", sum.EstimateAchievementRate},
		{"Actual Sqm", sum.ActualSqm},
		{"Total Cost", sum.TotalCost},
		{"Cost Per Unit", sum.CostPerUnit},
		{"Avg Efficiency", sum.AvgEfficiency},
	}
	for i, row := range summaryRows {
		f.SetCellValue(summarySheet, fmt.Sprintf("A%d", i+1), row[0])
		f.SetCellValue(summarySheet, fmt.Sprintf("B%d", i+1), row[1])
	}

	channelSheet := "Channels"
	if _, err := f.NewSheet(channelSheet); err != nil {
		return nil, err
	}
	channelHeaders := []string{"Type", "Events", "Target Contracts", "Actual Contracts", "Achievement Rate", "Target Estimates", "Actual Estimates", "Total Cost"}
	for i, h := range channelHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(channelSheet, cell, h)
	}
	for rIdx, ch := range data.Snapshot.Channels {
		row := rIdx + 2
		f.SetCellValue(channelSheet, fmt.Sprintf("A%d", row), ch.EventType)
		f.SetCellValue(channelSheet, fmt.Sprintf("B%d", row), ch.EventCount)
		f.SetCellValue(channelSheet, fmt.Sprintf("C%d", row), ch.TargetContracts)
		f.SetCellValue(channelSheet, fmt.Sprintf("D%d", row), ch.ActualContracts)
		f.SetCellValue(channelSheet, fmt.Sprintf("E%d", row), ch.AchievementRate)
		f.SetCellValue(channelSheet, fmt.Sprintf("F%d", row), ch.TargetEstimates)
		f.SetCellValue(channelSheet, fmt.Sprintf("G%d", row), ch.ActualEstimates)
		f.SetCellValue(channelSheet, fmt.Sprintf("H%d", row), ch.TotalCost)
	}

	eventSheet := "Events"
	if _, err := f.NewSheet(eventSheet); err != nil {
		return nil, err
	}
	for i, h := range eventHeaders() {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(eventSheet, cell, h)
	}
	for rIdx, ev := range data.Snapshot.Events {
		for cIdx, v := range eventRecord(ev) {
			cell, err := excelize.CoordinatesToCellName(cIdx+1, rIdx+2)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(eventSheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *Exporter) exportPDF(data ReportData) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, data.Report.Title)
	pdf.Ln(12)

	sum := data.Snapshot.Summary
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Period: %s ~ %s",
		data.Report.StartDate.Format(event.DateLayout), data.Report.EndDate.Format(event.DateLayout)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Events: %d   Contracts: %d/%d (%d%%)   Estimates: %d/%d (%d%%)",
		sum.TotalEvents, sum.ActualContracts, sum.TargetContracts, sum.ContractAchievementRate,
		sum.ActualEstimates, sum.TargetEstimates, sum.EstimateAchievementRate))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Sqm: %.1f   Total cost: %.0f   Cost/unit: %d   Avg efficiency: %.1f%%",
		sum.ActualSqm, sum.TotalCost, sum.CostPerUnit, sum.AvgEfficiency))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 9)
	headers := []string{"Title", "Type", "Status", "Start", "End", "Partner", "Contracts", "Estimates", "Sqm", "Cost"}
	widths := []float64{55, 32, 22, 22, 22, 35, 22, 22, 20, 25}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, ev := range data.Snapshot.Events {
		title := ev.Title
		if len(title) > 32 {
			title = title[:29] + "..."
		}
		pdf.CellFormat(widths[0], 6, title, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, ev.EventType, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, ev.Status, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 6, ev.StartDate.Format(event.DateLayout), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[4], 6, ev.EndDate.Format(event.DateLayout), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[5], 6, ev.Partner, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[6], 6, fmt.Sprintf("%d/%d", ev.ActualContracts, ev.TargetContracts), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[7], 6, fmt.Sprintf("%d/%d", ev.ActualEstimates, ev.TargetEstimates), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[8], 6, fmt.Sprintf("%.1f", ev.ActualSqm), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[9], 6, fmt.Sprintf("%.0f", ev.TotalCost), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
