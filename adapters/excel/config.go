package excel

// ReaderConfig configures the sales data reader
type ReaderConfig struct {
	FilePath string // .xlsx or .csv source file
	Sheet    string // Excel sheet name; defaults to Sheet1
}

// DefaultSheet is the worksheet read when none is configured
const DefaultSheet = "Sheet1"

// NewReaderConfig creates a reader config with defaults applied
func NewReaderConfig(filePath string) ReaderConfig {
	return ReaderConfig{
		FilePath: filePath,
		Sheet:    DefaultSheet,
	}
}
