package leaverequest

import (
	"io"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
)

var reportColumns = []struct {
	id    string
	width float64
}{
	{"report_col_employee", 50},
	{"report_col_type", 40},
	{"report_col_start", 25},
	{"report_col_end", 25},
	{"report_col_days", 15},
	{"report_col_status", 25},
}

// WriteReport renders the admin overview as an A4 PDF. Labels come from the given locale.
func WriteReport(w io.Writer, labels Labeler, locale string, generatedAt time.Time, data AdminLeaveRequestsResponse) error {
	t := func(id string, vars map[string]any) string {
		if labels == nil {
			return id
		}
		return labels.T(locale, id, vars)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, tr(t("report_title", nil)))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, tr(t("report_generated", map[string]any{"Date": generatedAt.UTC().Format("2006-01-02 15:04")})))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(t("report_summary", map[string]any{
		"Approved": data.ApprovedRequests,
		"Pending":  data.PendingRequests,
		"Declined": data.DeclinedRequests,
		"Total":    data.TotalRequests,
	})))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	for _, col := range reportColumns {
		pdf.CellFormat(col.width, 7, tr(t(col.id, nil)), "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, r := range data.Requests {
		employee := r.EmployeeName
		if employee == "" {
			employee = r.EmployeeID
		}
		cells := []string{
			employee,
			r.LeaveTypeName,
			r.StartDate,
			r.EndDate,
			strconv.Itoa(r.NumberOfDays),
			r.StatusLabel,
		}
		for i, col := range reportColumns {
			pdf.CellFormat(col.width, 6, tr(cells[i]), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
