package export

import (
	"strconv"
	"time"

	"inventory-backend/internal/ledger"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// StockLedgerReport renders the entries as a paginated PDF table with a
// title header and generation timestamp. Empty input produces a document
// saying so rather than a headerless table.
func StockLedgerReport(entries []ledger.Entry, title string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(12,
		text.NewCol(12, title, props.Text{
			Size:  18,
			Style: fontstyle.Bold,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, "Generated on: "+time.Now().Format("2006-01-02 15:04:05"), props.Text{
			Size: 10,
		}),
	)

	if len(entries) == 0 {
		m.AddRow(12,
			text.NewCol(12, "No data available", props.Text{Size: 12}),
		)
		doc, err := m.Generate()
		if err != nil {
			return nil, err
		}
		return doc.GetBytes(), nil
	}

	headerStyle := props.Text{Size: 8, Style: fontstyle.Bold}
	m.AddRow(8,
		text.NewCol(2, "Part Number", headerStyle),
		text.NewCol(2, "Part Name", headerStyle),
		text.NewCol(1, "DC No", headerStyle),
		text.NewCol(1, "Sent", headerStyle),
		text.NewCol(1, "Dispatched", headerStyle),
		text.NewCol(1, "Available", headerStyle),
		text.NewCol(2, "Supplier", headerStyle),
		text.NewCol(2, "Company", headerStyle),
	)

	cellStyle := props.Text{Size: 8}
	for _, e := range entries {
		company := e.CompanyName
		if company == "" {
			company = "-"
		}
		m.AddRow(6,
			text.NewCol(2, e.PartNumber, cellStyle),
			text.NewCol(2, e.PartName, cellStyle),
			text.NewCol(1, e.DCNumber, cellStyle),
			text.NewCol(1, strconv.Itoa(e.TotalSentToSupplier), cellStyle),
			text.NewCol(1, strconv.Itoa(e.TotalSentToCompany), cellStyle),
			text.NewCol(1, strconv.Itoa(e.AvailableQuantity), cellStyle),
			text.NewCol(2, e.SupplierName, cellStyle),
			text.NewCol(2, company, cellStyle),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}
