package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/reelcut/internal/model"
)

// segmentColor represents an RGB color for a cut segment.
type segmentColor struct {
	R, G, B int
}

// segmentColors is the palette cycled through for cuts on one reel.
var segmentColors = []segmentColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	rowHeight    = 20.0 // Vertical space per reel diagram
	barHeight    = 9.0  // Height of the reel bar itself
	reelsPerPage = 8
)

// ExportPDF generates a PDF document containing the allocation result.
// Each reel is drawn as a horizontal bar with one colored segment per cut
// and the leftover length in gray, followed by a summary page.
func ExportPDF(path string, result model.AllocationResult, unit string) error {
	if len(result.Usages) == 0 {
		return fmt.Errorf("no reels to export")
	}
	if unit == "" {
		unit = "m"
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	for i := 0; i < len(result.Usages); i += reelsPerPage {
		end := i + reelsPerPage
		if end > len(result.Usages) {
			end = len(result.Usages)
		}
		pageNum := i/reelsPerPage + 1
		renderReelPage(pdf, result.Usages[i:end], unit, pageNum)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, result, unit)

	return pdf.OutputFileAndClose(path)
}

// renderReelPage draws up to reelsPerPage reel bars on one page.
func renderReelPage(pdf *fpdf.Fpdf, usages []model.ReelUsage, unit string, pageNum int) {
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight,
		fmt.Sprintf("Reel Cutting Plan - page %d", pageNum), "", 0, "L", false, 0, "")

	// Scale all bars on the page against the longest reel
	maxLength := 0.0
	for _, u := range usages {
		if l := u.Reel.Length.InexactFloat64(); l > maxLength {
			maxLength = l
		}
	}
	if maxLength <= 0 {
		maxLength = 1
	}
	drawWidth := pageWidth - marginLeft - marginRight
	scale := drawWidth / maxLength

	y := marginTop + headerHeight + 5.0
	for _, u := range usages {
		renderReelBar(pdf, u, unit, scale, y)
		y += rowHeight
	}
}

// renderReelBar draws a single reel as a scaled horizontal bar at the given y.
func renderReelBar(pdf *fpdf.Fpdf, u model.ReelUsage, unit string, scale, y float64) {
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, y)
	label := fmt.Sprintf("%s  [%s]  %s %s total, %s %s left, %.1f%% used",
		u.Reel.Serial, u.Reel.Category, u.Reel.Length, unit, u.Remaining, unit, u.Utilization())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, label, "", 0, "L", false, 0, "")

	barY := y + 5.0
	barW := u.Reel.Length.InexactFloat64() * scale

	// Reel outline with leftover in light gray
	pdf.SetFillColor(224, 224, 224)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.3)
	pdf.Rect(marginLeft, barY, barW, barHeight, "FD")

	x := marginLeft
	for i, a := range u.Assignments {
		col := segmentColors[i%len(segmentColors)]
		segW := a.Length.InexactFloat64() * scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.Rect(x, barY, segW, barHeight, "FD")

		text := a.Length.String()
		pdf.SetFont("Helvetica", "", 7)
		if pdf.GetStringWidth(text) < segW-1 {
			pdf.SetXY(x, barY+barHeight/2-1.5)
			pdf.CellFormat(segW, 3, text, "", 0, "C", false, 0, "")
		}
		x += segW
	}
}

// renderSummaryPage draws run totals and the unassigned cut list.
func renderSummaryPage(pdf *fpdf.Fpdf, result model.AllocationResult, unit string) {
	s := model.Summarize(result)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, "Summary", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	lines := []string{
		fmt.Sprintf("Reels: %d", s.ReelCount),
		fmt.Sprintf("Assigned cuts: %d (%s %s)", s.AssignedCuts, s.AssignedLength, unit),
		fmt.Sprintf("Unassigned cuts: %d (%s %s)", s.UnassignedCuts, s.UnassignedLength, unit),
		fmt.Sprintf("Remaining on reels: %s %s", s.RemainingLength, unit),
		fmt.Sprintf("Overall utilization: %.1f%%", result.TotalUtilization()),
	}
	y := marginTop + headerHeight + 4.0
	for _, line := range lines {
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, line, "", 0, "L", false, 0, "")
		y += 6.0
	}

	if len(result.Unassigned) > 0 {
		y += 4.0
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(pageWidth-marginLeft-marginRight, 6, "Unassigned cuts", "", 0, "L", false, 0, "")
		y += 7.0

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(180, 30, 30)
		for _, c := range result.Unassigned {
			if y > pageHeight-marginBottom {
				pdf.AddPage()
				y = marginTop
			}
			pdf.SetXY(marginLeft, y)
			pdf.CellFormat(pageWidth-marginLeft-marginRight, 4,
				fmt.Sprintf("%s  %s %s", c.Category, c.Length, unit), "", 0, "L", false, 0, "")
			y += 5.0
		}
		pdf.SetTextColor(0, 0, 0)
	}
}
