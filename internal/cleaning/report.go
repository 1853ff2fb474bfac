package cleaning

// Operation records one cleaning step that was applied, or attempted and
// skipped. The log is append-only; entries are never rewritten.
type Operation struct {
	Name   string `json:"operation" yaml:"operation"`
	Detail string `json:"detail" yaml:"detail"`
	Count  int    `json:"count" yaml:"count"`
	Failed bool   `json:"failed,omitempty" yaml:"failed,omitempty"`
}

// Shape is a (rows, columns) pair.
type Shape struct {
	Rows    int `json:"rows" yaml:"rows"`
	Columns int `json:"columns" yaml:"columns"`
}

// Report summarizes one cleaning run.
type Report struct {
	SourceFile     string      `json:"source_file,omitempty" yaml:"source_file,omitempty"`
	Mode           Mode        `json:"mode" yaml:"mode"`
	OriginalShape  Shape       `json:"original_shape" yaml:"original_shape"`
	CleanedShape   Shape       `json:"cleaned_shape" yaml:"cleaned_shape"`
	RowsRemoved    int         `json:"rows_removed" yaml:"rows_removed"`
	ColumnsRemoved int         `json:"columns_removed" yaml:"columns_removed"`
	Operations     []Operation `json:"operations" yaml:"operations"`
}
