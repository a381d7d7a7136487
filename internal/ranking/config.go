// Package ranking scores candidate files against a parsed query.
package ranking

// Fixed bonuses awarded by the metadata scorer. Unlike the weight table
// these are not tunable; they are part of the scoring contract.
const (
	// FileTypeBonus is awarded when the file extension matches a
	// requested file-type hint.
	FileTypeBonus = 10
	// DocBonus is awarded when a doc file meets a docs intent.
	DocBonus = 8
)

// Weights is the signal weight table. Every contribution in the engine is
// derived from one of these values, so the table fully determines relative
// signal strength.
type Weights struct {
	Filename  float64 `yaml:"filename"`
	Filepath  float64 `yaml:"filepath"`
	Content   float64 `yaml:"content"`
	Export    float64 `yaml:"export"`
	Import    float64 `yaml:"import"`
	Function  float64 `yaml:"function"`
	Class     float64 `yaml:"class"`
	Interface float64 `yaml:"interface"`
	Comment   float64 `yaml:"comment"`
	Config    float64 `yaml:"config"`
	Test      float64 `yaml:"test"`
	Related   float64 `yaml:"related"`
}

// DefaultWeights returns the standard weight table.
func DefaultWeights() *Weights {
	return &Weights{
		Filename:  25,
		Filepath:  20,
		Content:   15,
		Export:    20,
		Import:    10,
		Function:  15,
		Class:     15,
		Interface: 12,
		Comment:   5,
		Config:    18,
		Test:      12,
		Related:   8,
	}
}

// ApplyDefaults fills zero values with the standard weights.
func (w *Weights) ApplyDefaults() {
	defaults := DefaultWeights()
	if w.Filename == 0 {
		w.Filename = defaults.Filename
	}
	if w.Filepath == 0 {
		w.Filepath = defaults.Filepath
	}
	if w.Content == 0 {
		w.Content = defaults.Content
	}
	if w.Export == 0 {
		w.Export = defaults.Export
	}
	if w.Import == 0 {
		w.Import = defaults.Import
	}
	if w.Function == 0 {
		w.Function = defaults.Function
	}
	if w.Class == 0 {
		w.Class = defaults.Class
	}
	if w.Interface == 0 {
		w.Interface = defaults.Interface
	}
	if w.Comment == 0 {
		w.Comment = defaults.Comment
	}
	if w.Config == 0 {
		w.Config = defaults.Config
	}
	if w.Test == 0 {
		w.Test = defaults.Test
	}
	if w.Related == 0 {
		w.Related = defaults.Related
	}
}
