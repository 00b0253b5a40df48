package export

import (
	"fmt"

	"github.com/pkg/errors"
	qrcode "github.com/skip2/go-qrcode"

	"tripweaver/internal/app/models"
)

const qrSize = 256

// ShareSummary is the short plain-text synopsis written to the clipboard
// on the share action. Informational only, not a re-import format.
func ShareSummary(plan *models.TripPlan) string {
	return fmt.Sprintf("Trip to %s: %s", plan.Destination, plan.Summary)
}

// ShareQR encodes the share summary as a PNG QR code so the result
// screen can be picked up by a phone camera.
func ShareQR(plan *models.TripPlan) ([]byte, error) {
	if plan == nil {
		return nil, errors.Wrap(models.ErrExportUnavailable, "no plan to share")
	}
	png, err := qrcode.Encode(ShareSummary(plan), qrcode.Medium, qrSize)
	if err != nil {
		return nil, errors.Wrapf(models.ErrExportUnavailable, "encoding QR code: %v", err)
	}
	return png, nil
}
