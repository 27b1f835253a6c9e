// Package qrgen renders payment URLs as scannable PNG images. Rendering
// is a pure transformation of the URL; a render failure (typically the
// URL exceeding the symbol capacity at the chosen recovery level) is
// reported distinctly from encoding failures upstream.
package qrgen

import (
	"fmt"

	apperrors "hawamoni/internal/errors"

	qrcode "github.com/skip2/go-qrcode"
)

const (
	DefaultSize  = 400
	DefaultLevel = "M"
)

type Renderer interface {
	Render(url string, size int, level string) ([]byte, error)
}

type renderer struct{}

func NewRenderer() Renderer {
	return &renderer{}
}

func (r *renderer) Render(url string, size int, level string) ([]byte, error) {
	if size <= 0 {
		size = DefaultSize
	}
	lvl, err := recoveryLevel(level)
	if err != nil {
		return nil, apperrors.ErrQRRenderFailed.WithCause(err)
	}
	png, err := qrcode.Encode(url, lvl, size)
	if err != nil {
		return nil, apperrors.ErrQRRenderFailed.WithCause(err)
	}
	return png, nil
}

func recoveryLevel(level string) (qrcode.RecoveryLevel, error) {
	switch level {
	case "", DefaultLevel:
		return qrcode.Medium, nil
	case "L":
		return qrcode.Low, nil
	case "Q":
		return qrcode.High, nil
	case "H":
		return qrcode.Highest, nil
	default:
		return qrcode.Medium, fmt.Errorf("unknown recovery level %q", level)
	}
}
