package extraction

import (
	"sort"
	"strings"

	"github.com/enerjitakip/fatura-extract/constants"
)

// requiredFields trigger the non-fatal extraction warning when unresolved.
var requiredFields = []FieldKind{FieldInvoiceNumber, FieldInvoiceDate, FieldAmount}

// warningFieldNames maps internal kinds to their canonical schema names for
// the warning message.
var warningFieldNames = map[FieldKind]string{
	FieldInvoiceNumber: "invoiceNumber",
	FieldInvoiceDate:   "invoiceDate",
	FieldAmount:        "amount",
}

// formatResult maps resolved fields to the canonical output schema, derives
// the consumption unit, attaches table data and raw text, and sets the
// warning when a required field stayed empty. The call still succeeds with a
// best-effort result; downstream manual correction is expected.
func formatResult(fields map[FieldKind]Resolution, table Table, hasTable bool, fallbackRows [][]string, rawText string) Result {
	value := func(kind FieldKind) string { return fields[kind].Value }

	inv := ExtractedInvoice{
		InvoiceNumber:      value(FieldInvoiceNumber),
		InvoiceDate:        value(FieldInvoiceDate),
		DueDate:            value(FieldDueDate),
		Amount:             value(FieldAmount),
		Provider:           value(FieldProvider),
		Period:             value(FieldPeriod),
		Consumption:        value(FieldConsumption),
		InvoiceType:        value(FieldInvoiceType),
		Unit:               constants.UnitFor(constants.InvoiceType(value(FieldInvoiceType))),
		AccountNumber:      value(FieldAccountNumber),
		InstallationNumber: value(FieldInstallationNumber),
		CustomerNumber:     value(FieldCustomerNumber),
		FullName:           value(FieldFullName),
		Address:            value(FieldAddress),
		ConsumerGroup:      value(FieldConsumerGroup),
		RawText:            rawText,
	}

	var rows [][]string
	if hasTable {
		rows = tableRows(table)
	} else {
		rows = fallbackRows
	}
	if len(rows) > 0 {
		inv.TableHeaders = rows[0]
		inv.TableData = rows[1:]
	}

	var missing []string
	for _, kind := range requiredFields {
		if fields[kind].Value == "" {
			missing = append(missing, warningFieldNames[kind])
		}
	}
	if len(missing) > 0 {
		inv.Warning = "unresolved fields: " + strings.Join(missing, ", ")
	}

	resolutions := make([]Resolution, 0, len(fields))
	for _, r := range fields {
		resolutions = append(resolutions, r)
	}
	sort.Slice(resolutions, func(a, b int) bool { return resolutions[a].Kind < resolutions[b].Kind })

	return Result{Invoice: inv, Resolutions: resolutions}
}

// tableRows flattens a reconstructed table into row slices, keeping only
// populated cells in column order.
func tableRows(t Table) [][]string {
	byRow := map[int][]TableCell{}
	for _, c := range t.Cells {
		byRow[c.Row] = append(byRow[c.Row], c)
	}
	rowIdx := make([]int, 0, len(byRow))
	for r := range byRow {
		rowIdx = append(rowIdx, r)
	}
	sort.Ints(rowIdx)

	rows := make([][]string, 0, len(rowIdx))
	for _, r := range rowIdx {
		cells := byRow[r]
		sort.Slice(cells, func(a, b int) bool { return cells[a].Col < cells[b].Col })
		row := make([]string, 0, len(cells))
		for _, c := range cells {
			row = append(row, c.Content)
		}
		rows = append(rows, row)
	}
	return rows
}
