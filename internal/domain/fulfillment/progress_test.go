package fulfillment_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Ordenes-api/internal/domain/entity"
	"github.com/jhoicas/Ordenes-api/internal/domain/fulfillment"
)

func line(qtyOrdered float64, linkQtys ...float64) entity.OrderLine {
	l := entity.OrderLine{QtyOrdered: decimal.NewFromFloat(qtyOrdered)}
	for _, q := range linkQtys {
		l.Links = append(l.Links, entity.FulfillmentLink{QtyLinkedBase: decimal.NewFromFloat(q)})
	}
	return l
}

func TestLineProgress_SumaDeLinks(t *testing.T) {
	cases := []struct {
		name        string
		line        entity.OrderLine
		wantQty     string
		wantPct     int
	}{
		{"sin links", line(10), "0", 0},
		{"un link parcial", line(10, 4), "4", 40},
		{"varios links completan", line(10, 4, 6), "10", 100},
		{"redondeo hacia arriba", line(3, 1), "1", 33},
		{"redondeo a mitad", line(8, 7), "7", 88},
		{"cantidades fraccionarias", line(2.5, 1.25), "1.25", 50},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			qty, pct := fulfillment.LineProgress(tc.line)
			assert.Equal(t, tc.wantQty, qty.String())
			assert.Equal(t, tc.wantPct, pct)
		})
	}
}

// El porcentaje no se recorta a 100: la sobre-entrega es un caso de borde
// visible, no un error.
func TestLineProgress_SobreEntregaSinRecorte(t *testing.T) {
	qty, pct := fulfillment.LineProgress(line(10, 15))
	assert.Equal(t, "15", qty.String())
	assert.Equal(t, 150, pct, "porcentajes mayores a 100 deben conservarse")
}

// Cantidad ordenada cero no debe producir división por cero: el porcentaje es
// 0 por definición defensiva.
func TestPercentage_OrdenadoCero(t *testing.T) {
	assert.Equal(t, 0, fulfillment.Percentage(decimal.NewFromInt(5), decimal.Zero))

	_, pct := fulfillment.LineProgress(line(0, 3))
	assert.Equal(t, 0, pct)
}

func TestInvoicedProgress(t *testing.T) {
	l := line(20)
	inv, pct := fulfillment.InvoicedProgress(l, decimal.NewFromInt(5))
	assert.Equal(t, "5", inv.String())
	assert.Equal(t, 25, pct)
}

func TestHasUnfulfilled(t *testing.T) {
	completa := line(10, 10)
	parcial := line(20, 5)
	vacia := line(20)

	assert.False(t, fulfillment.HasUnfulfilled(nil))
	assert.False(t, fulfillment.HasUnfulfilled([]*entity.OrderLine{&completa}))
	assert.True(t, fulfillment.HasUnfulfilled([]*entity.OrderLine{&completa, &parcial}))
	assert.True(t, fulfillment.HasUnfulfilled([]*entity.OrderLine{&completa, &vacia}))

	// La sobre-entrega cuenta como cumplida.
	sobre := line(10, 15)
	assert.False(t, fulfillment.HasUnfulfilled([]*entity.OrderLine{&sobre}))
}
