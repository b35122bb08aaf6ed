package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"

	"github.com/piwi3910/reelcut/internal/model"
)

// DXF diagram geometry (drawing units match the length unit of the input).
const (
	dxfBarHeight = 20.0 // Height of one reel bar
	dxfRowPitch  = 40.0 // Vertical distance between reel bars
	dxfTextH     = 5.0  // Annotation text height
)

// ExportDXF writes a cutting diagram as a DXF drawing: one horizontal bar
// per reel at true length scale, with a tick mark at every cut boundary.
// Reel outlines go on the REELS layer, cut marks on CUTS, annotations on TEXT.
func ExportDXF(path string, result model.AllocationResult) error {
	if len(result.Usages) == 0 {
		return fmt.Errorf("no reels to export")
	}

	d := dxf.NewDrawing()
	if _, err := d.AddLayer("REELS", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add REELS layer: %w", err)
	}
	if _, err := d.AddLayer("CUTS", color.Red, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("failed to add CUTS layer: %w", err)
	}
	if _, err := d.AddLayer("TEXT", color.Green, dxf.DefaultLineType, false); err != nil {
		return fmt.Errorf("failed to add TEXT layer: %w", err)
	}

	for i, u := range result.Usages {
		top := -float64(i) * dxfRowPitch
		if err := drawReel(d, u, top); err != nil {
			return fmt.Errorf("failed to draw reel %s: %w", u.Reel.Serial, err)
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save DXF: %w", err)
	}
	return nil
}

// drawReel draws one reel bar with its top edge at the given y.
func drawReel(d *drawing.Drawing, u model.ReelUsage, top float64) error {
	length := u.Reel.Length.InexactFloat64()
	bottom := top - dxfBarHeight

	if err := d.ChangeLayer("REELS"); err != nil {
		return err
	}
	outline := [][4]float64{
		{0, top, length, top},
		{0, bottom, length, bottom},
		{0, bottom, 0, top},
		{length, bottom, length, top},
	}
	for _, l := range outline {
		if _, err := d.Line(l[0], l[1], 0, l[2], l[3], 0); err != nil {
			return err
		}
	}

	// Tick mark at every cut boundary
	if err := d.ChangeLayer("CUTS"); err != nil {
		return err
	}
	x := 0.0
	for _, a := range u.Assignments {
		x += a.Length.InexactFloat64()
		if _, err := d.Line(x, bottom, 0, x, top, 0); err != nil {
			return err
		}
	}

	if err := d.ChangeLayer("TEXT"); err != nil {
		return err
	}
	title := fmt.Sprintf("%s [%s] %s", u.Reel.Serial, u.Reel.Category, u.Reel.Length)
	if _, err := d.Text(title, 0, top+2.0, 0, dxfTextH); err != nil {
		return err
	}
	x = 0.0
	for _, a := range u.Assignments {
		segment := a.Length.InexactFloat64()
		if _, err := d.Text(a.Length.String(), x+segment/4, bottom+dxfBarHeight/2, 0, dxfTextH); err != nil {
			return err
		}
		x += segment
	}

	return nil
}
