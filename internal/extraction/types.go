package extraction

// BoundingBox is the pixel rectangle enclosing one recognized word.
type BoundingBox struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// CenterX returns the horizontal center of the box.
func (b BoundingBox) CenterX() int { return (b.X1 + b.X2) / 2 }

// CenterY returns the vertical center of the box.
func (b BoundingBox) CenterY() int { return (b.Y1 + b.Y2) / 2 }

// Union grows the box to cover o.
func (b BoundingBox) Union(o BoundingBox) BoundingBox {
	if o.X1 < b.X1 {
		b.X1 = o.X1
	}
	if o.Y1 < b.Y1 {
		b.Y1 = o.Y1
	}
	if o.X2 > b.X2 {
		b.X2 = o.X2
	}
	if o.Y2 > b.Y2 {
		b.Y2 = o.Y2
	}
	return b
}

// WordElement is one recognized word and its pixel rectangle. The spatial
// clustering code depends only on this shape, never on the OCR engine's
// markup syntax.
type WordElement struct {
	Text string      `json:"text"`
	Box  BoundingBox `json:"box"`
}

// RecognitionResult carries the merged output of both recognition passes:
// full text from the standard pass, word boxes from the table pass.
type RecognitionResult struct {
	FullText string
	Words    []WordElement
}

// FieldKind names one extractable invoice field. The set is closed; label
// synonyms for each kind live in labels.go as data.
type FieldKind string

const (
	FieldInvoiceNumber      FieldKind = "invoice_number"
	FieldInvoiceDate        FieldKind = "invoice_date"
	FieldDueDate            FieldKind = "due_date"
	FieldAmount             FieldKind = "amount"
	FieldProvider           FieldKind = "provider"
	FieldPeriod             FieldKind = "period"
	FieldConsumption        FieldKind = "consumption"
	FieldInvoiceType        FieldKind = "invoice_type"
	FieldAccountNumber      FieldKind = "account_number"
	FieldInstallationNumber FieldKind = "installation_number"
	FieldCustomerNumber     FieldKind = "customer_number"
	FieldFullName           FieldKind = "full_name"
	FieldAddress            FieldKind = "address"
	FieldConsumerGroup      FieldKind = "consumer_group"
)

// FieldCandidate is a tentative, scored value for one field, produced by an
// extractor before final selection by the merger.
type FieldCandidate struct {
	Kind       FieldKind
	Value      string
	Confidence int
	SourceLine string
}

// TableCell is one populated cell of a reconstructed table. Empty grid
// positions are omitted, not emitted as blank cells.
type TableCell struct {
	Row     int         `json:"row"`
	Col     int         `json:"col"`
	Box     BoundingBox `json:"box"`
	Content string      `json:"content"`
}

// Table is the result of spatial table reconstruction.
type Table struct {
	Cells    []TableCell `json:"cells"`
	RowCount int         `json:"row_count"`
	ColCount int         `json:"col_count"`
	Bounds   BoundingBox `json:"bounds"`
}

// Source identifies which stage of the merge resolved a field.
type Source string

const (
	SourceLabelTable   Source = "label_table"
	SourceSpatialTable Source = "spatial_table"
	SourceExtractor    Source = "extractor"
	SourceKeyword      Source = "keyword"
	SourceDerived      Source = "derived"
	SourceUnresolved   Source = "unresolved"
)

// Resolution records how one field was resolved, making the merge policy
// auditable without reading logs.
type Resolution struct {
	Kind       FieldKind `json:"field"`
	Value      string    `json:"value"`
	Source     Source    `json:"source"`
	Confidence int       `json:"confidence,omitempty"`
}

// ExtractedInvoice is the canonical output schema. Every field is either
// empty or has passed its type-specific validator.
type ExtractedInvoice struct {
	InvoiceNumber      string     `json:"invoiceNumber"`
	InvoiceDate        string     `json:"invoiceDate"` // YYYY-MM-DD
	DueDate            string     `json:"dueDate"`     // YYYY-MM-DD
	Amount             string     `json:"amount"`      // positive decimal, <= 100000
	Provider           string     `json:"provider"`
	Period             string     `json:"period"`
	Consumption        string     `json:"consumption"`
	InvoiceType        string     `json:"invoiceType"`
	Unit               string     `json:"unit"`
	AccountNumber      string     `json:"accountNumber"`
	InstallationNumber string     `json:"installationNumber"`
	CustomerNumber     string     `json:"customerNumber"`
	AverageConsumption string     `json:"averageConsumption"`
	FullName           string     `json:"fullName"`
	Address            string     `json:"address"`
	ConsumerGroup      string     `json:"consumerGroup"`
	TableData          [][]string `json:"tableData"`
	TableHeaders       []string   `json:"tableHeaders"`
	RawText            string     `json:"rawText"`
	Warning            string     `json:"warning,omitempty"`
}

// Result pairs the canonical invoice with per-field provenance.
type Result struct {
	Invoice     ExtractedInvoice `json:"invoice"`
	Resolutions []Resolution     `json:"resolutions"`
}
