package labels_test

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"rfidship/internal/adapters/out/labels"
	"rfidship/internal/core/ports"
	"rfidship/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.LabelRenderer = (*labels.PDFRenderer)(nil)

func boxLabels(n int) []ports.BoxLabel {
	result := make([]ports.BoxLabel, 0, n)
	for i := 1; i <= n; i++ {
		result = append(result, ports.BoxLabel{
			BoxNo:        fmt.Sprintf("B0012025%05d", i),
			Code:         "001",
			ProductCount: i,
			CreatedAt:    time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		})
	}
	return result
}

func TestPDFRenderer_Render(t *testing.T) {
	renderer, err := labels.NewPDFRenderer(labels.DefaultLayout)
	require.NoError(t, err)

	doc, err := renderer.Render(boxLabels(9))

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF-")))
	assert.True(t, bytes.Contains(doc, []byte("/Count 2")), "nine labels need two sheets of eight")
}

func TestPDFRenderer_RequiresLabels(t *testing.T) {
	renderer, err := labels.NewPDFRenderer(labels.DefaultLayout)
	require.NoError(t, err)

	_, err = renderer.Render(nil)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewPDFRenderer_RejectsImpossibleLayout(t *testing.T) {
	tests := map[string]labels.Layout{
		"no columns":  {Cols: 0, Rows: 2},
		"too wide":    {Cols: 2, Rows: 2, MarginLeft: 120},
		"gaps eat it": {Cols: 10, Rows: 10, GapX: 30},
	}
	for name, layout := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := labels.NewPDFRenderer(layout)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}
