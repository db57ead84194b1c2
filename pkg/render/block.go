package render

import "github.com/Heykelog/PenSH/pkg/model"

// Kind identifies the layout unit a Block represents.
type Kind string

const (
	KindHeading   Kind = "heading"
	KindParagraph Kind = "paragraph"
	KindTable     Kind = "table"
	KindImage     Kind = "image"
	KindPageBreak Kind = "page_break"
	KindCodeBlock Kind = "code_block"
)

// Block is one renderable unit. Only the fields relevant to its Kind
// are set; everything else stays zero.
type Block struct {
	Kind Kind

	// Heading, paragraph and code text.
	Text string

	// Heading level: 0 is the document title, 1 a section, 2 a
	// finding, 3 a subsection label.
	Level int

	// Anchor names this block as a link target; LinkTo points at one.
	Anchor string
	LinkTo string

	// Indent marks contents-page sub-entries.
	Indent bool

	Bold   bool
	Italic bool
	Center bool

	// Boxed paragraphs get the bordered info-box treatment.
	Boxed bool

	// Badge colors the block with the risk style for this level.
	Badge model.RiskLevel

	// Code block label, e.g. "REQUEST".
	Label string

	Table *Table
	Image *Image
}

// TableTheme selects the header color family of a table.
type TableTheme string

const (
	ThemePrimary   TableTheme = "primary"
	ThemeSecondary TableTheme = "secondary"
	ThemeAccent    TableTheme = "accent"
)

// Table is a header row plus body rows. Cells may carry a risk badge
// or an internal link; plain cells are just text.
type Table struct {
	Theme  TableTheme
	Header []string
	Rows   [][]Cell
	// Widths are relative column weights; backends scale them to
	// their own page or sheet geometry.
	Widths []float64
}

type Cell struct {
	Text   string
	Badge  model.RiskLevel
	LinkTo string
}

// Image references a raster asset by storage path. Name is the
// user-facing filename shown in placeholders and error notes.
type Image struct {
	Path    string
	Name    string
	Caption string

	// Bounding box in points; zero means the backend's content box.
	MaxWidth  float64
	MaxHeight float64
}

// Text helpers keep the composer terse.

func heading(level int, text, anchor string) Block {
	return Block{Kind: KindHeading, Level: level, Text: text, Anchor: anchor}
}

func para(text string) Block {
	return Block{Kind: KindParagraph, Text: text}
}

func boldPara(text string) Block {
	return Block{Kind: KindParagraph, Text: text, Bold: true}
}

func pageBreak() Block {
	return Block{Kind: KindPageBreak}
}
