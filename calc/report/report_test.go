package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SoftwareDevEngResearch/BeaverDet/quantity"
)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, Report{
		Project: "Detonation tube",
		Author:  "lab",
		Date:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Rows: []Row{
			QuantityRow("Max initial pressure", quantity.New(1.5, quantity.Atmosphere), quantity.Psi),
			QuantityRow("Design temperature", quantity.New(20, quantity.Celsius), quantity.Celsius),
		},
		Warnings: []string{"Screws fail in shear, not tension."},
		Notes:    "Flange class 1500 at 350 °C.",
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestQuantityRow(t *testing.T) {
	row := QuantityRow("Wall", quantity.New(0.432, quantity.Inch), quantity.Millimeter)
	assert.Equal(t, "10.97 mm", row.Value)

	row = QuantityRow("Wall", quantity.New(0.432, quantity.Inch), quantity.Psi)
	assert.Contains(t, row.Value, " in")
}
