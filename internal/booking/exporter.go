package booking

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
	FormatPDF   = "pdf"
)

// Exporter produces back-office downloads: the bookings report in the
// requested format and the per-booking PDF voucher.
type Exporter interface {
	ExportBookings(format string, bookings []Booking) ([]byte, string, string, error)
	Voucher(b *Booking) ([]byte, string, string, error)
}

type exporter struct{}

func NewExporter() Exporter {
	return &exporter{}
}

func (e *exporter) ExportBookings(format string, bookings []Booking) ([]byte, string, string, error) {
	timestamp := time.Now().Format("20060102_150405")

	switch format {
	case FormatExcel, "":
		data, err := e.exportBookingsExcel(bookings)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("bookings_report_%s.xlsx", timestamp)
		return data, filename, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil

	case FormatCSV:
		data, err := e.exportBookingsCSV(bookings)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("bookings_report_%s.csv", timestamp)
		return data, filename, "text/csv", nil

	case FormatPDF:
		data, err := e.exportBookingsPDF(bookings)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("bookings_report_%s.pdf", timestamp)
		return data, filename, "application/pdf", nil

	default:
		return nil, "", "", fmt.Errorf("unsupported format for bookings export: %s", format)
	}
}

func (e *exporter) exportBookingsCSV(bookings []Booking) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Reference", "Service", "Item", "Start Date", "End Date", "Adults", "Children", "Rooms", "Customer", "Email", "Total", "Currency", "Status", "Created At"}
	if err := writer.Write(headers); err != nil {
		return nil, err
	}

	for _, b := range bookings {
		record := []string{
			b.Reference,
			b.ServiceType,
			b.ItemTitle,
			b.StartDate,
			b.EndDate,
			strconv.Itoa(b.Adults),
			strconv.Itoa(b.Children),
			strconv.Itoa(b.Rooms),
			b.FirstName + " " + b.LastName,
			b.Email,
			fmt.Sprintf("%.2f", b.Total),
			b.Currency,
			b.Status,
			b.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (e *exporter) exportBookingsExcel(bookings []Booking) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Bookings"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headers := []string{"Reference", "Service", "Item", "Start Date", "End Date", "Adults", "Children", "Rooms", "Customer", "Email", "Total", "Currency", "Status", "Created At"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(sheet, cell, h)
	}

	for rIdx, b := range bookings {
		row := rIdx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), b.Reference)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), b.ServiceType)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), b.ItemTitle)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), b.StartDate)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), b.EndDate)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), b.Adults)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), b.Children)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), b.Rooms)
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), b.FirstName+" "+b.LastName)
		f.SetCellValue(sheet, fmt.Sprintf("J%d", row), b.Email)
		f.SetCellValue(sheet, fmt.Sprintf("K%d", row), b.Total)
		f.SetCellValue(sheet, fmt.Sprintf("L%d", row), b.Currency)
		f.SetCellValue(sheet, fmt.Sprintf("M%d", row), b.Status)
		f.SetCellValue(sheet, fmt.Sprintf("N%d", row), b.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (e *exporter) exportBookingsPDF(bookings []Booking) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(40, 10, "Bookings Report")
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 9)
	headers := []string{"Reference", "Service", "Item", "Dates", "Party", "Customer", "Total", "Status"}
	widths := []float64{30, 20, 60, 45, 25, 50, 25, 22}

	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, b := range bookings {
		party := fmt.Sprintf("%dA %dC", b.Adults, b.Children)
		if b.Rooms > 0 {
			party = fmt.Sprintf("%s %dR", party, b.Rooms)
		}
		pdf.CellFormat(widths[0], 6, b.Reference, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 6, b.ServiceType, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[2], 6, b.ItemTitle, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 6, b.StartDate+" / "+b.EndDate, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[4], 6, party, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[5], 6, b.FirstName+" "+b.LastName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[6], 6, fmt.Sprintf("%.2f %s", b.Total, b.Currency), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[7], 6, b.Status, "1", 0, "C", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Voucher renders the confirmation document handed to the customer.
func (e *exporter) Voucher(b *Booking) ([]byte, string, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 12, "Booking Voucher")
	pdf.Ln(14)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Reference: "+b.Reference)
	pdf.Ln(12)

	rows := [][2]string{
		{"Service", b.ServiceType},
		{"Item", b.ItemTitle},
		{"Start Date", b.StartDate},
		{"End Date", b.EndDate},
		{"Adults", strconv.Itoa(b.Adults)},
		{"Children", strconv.Itoa(b.Children)},
	}
	if b.Rooms > 0 {
		rows = append(rows, [2]string{"Rooms", strconv.Itoa(b.Rooms)})
	}
	if b.Tier != "" {
		rows = append(rows, [2]string{"Tier", b.Tier})
	}
	rows = append(rows,
		[2]string{"Customer", b.FirstName + " " + b.LastName},
		[2]string{"Email", b.Email},
		[2]string{"Phone", b.Phone},
		[2]string{"Total", fmt.Sprintf("%.2f %s", b.Total, b.Currency)},
		[2]string{"Status", b.Status},
		[2]string{"Booked On", b.CreatedAt.Format("2006-01-02 15:04:05")},
	)

	pdf.SetFont("Arial", "", 11)
	for _, r := range rows {
		pdf.CellFormat(50, 8, r[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(120, 8, r[1], "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	if b.SpecialRequest != "" {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 8, "Special Request")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(170, 6, b.SpecialRequest, "1", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", "", err
	}

	filename := fmt.Sprintf("voucher_%s.pdf", b.Reference)
	return buf.Bytes(), filename, "application/pdf", nil
}
