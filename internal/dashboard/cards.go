// Salesboard - Sales Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/salesboard

package dashboard

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/tomtom215/salesboard/internal/aggregate"
)

// LastUpdatedLayout renders a timestamp the way the id-ID locale does.
const LastUpdatedLayout = "02/01/2006, 15.04.05"

// Card titles, in display order.
const (
	CardTotalRecords   = "Total Records"
	CardTotalSales     = "Total Sales"
	CardTotalUnits     = "Total Units"
	CardAvgPrice       = "Avg Price/Unit"
	CardUniqueProducts = "Unique Products"
	CardUniqueRegions  = "Unique Regions"
)

// SummaryCard is one headline figure above the chart grid.
type SummaryCard struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// buildCards formats s with en-US digit grouping. The average price always
// carries two decimals and no grouping.
func buildCards(s aggregate.Summary) []SummaryCard {
	p := message.NewPrinter(language.AmericanEnglish)
	grouped := func(v float64) string {
		return p.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
	}

	return []SummaryCard{
		{Title: CardTotalRecords, Value: grouped(float64(s.TotalRecords))},
		{Title: CardTotalSales, Value: "$" + grouped(s.TotalSales)},
		{Title: CardTotalUnits, Value: grouped(s.TotalUnits)},
		{Title: CardAvgPrice, Value: fmt.Sprintf("$%.2f", s.AvgPricePerUnit)},
		{Title: CardUniqueProducts, Value: grouped(float64(s.UniqueProducts))},
		{Title: CardUniqueRegions, Value: grouped(float64(s.UniqueRegions))},
	}
}

func formatLastUpdated(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(LastUpdatedLayout)
}
