package projects

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/ytget/project-manager/internal/model"
)

// Column sizing. Widths are display cells; limits and the threshold count
// characters.
const (
	NameWidth            = 20
	NameLimit            = 17
	DescriptionWidth     = 80
	DescriptionThreshold = 80
	DescriptionLimit     = 70
	ProgressWidth        = 15
	DueDateWidth         = 15
)

// Glyphs
const (
	Filler      = "_"
	Separator   = "|"
	Ellipsis    = "..."
	PercentSign = "%"
)

// Header labels
const (
	HeaderName        = "Name"
	HeaderDescription = "Description"
	HeaderProgress    = "Progress"
	HeaderDueDate     = "Due Date"
)

// Layout controls how records are turned into table lines
type Layout struct {
	NameWidth            int
	NameLimit            int
	DescriptionWidth     int
	DescriptionThreshold int
	DescriptionLimit     int
	ProgressWidth        int
	DueDateWidth         int
	Filler               string
	Separator            string
	Indent               string
}

// DefaultLayout is the layout used by the main window
var DefaultLayout = Layout{
	NameWidth:            NameWidth,
	NameLimit:            NameLimit,
	DescriptionWidth:     DescriptionWidth,
	DescriptionThreshold: DescriptionThreshold,
	DescriptionLimit:     DescriptionLimit,
	ProgressWidth:        ProgressWidth,
	DueDateWidth:         DueDateWidth,
	Filler:               Filler,
	Separator:            Separator,
}

// Row is one displayed record, addressed by its ID
type Row struct {
	ID   string
	Text string
}

// View is a rendered table. The header is not part of Rows, so a row index
// never needs adjusting to find its record.
type View struct {
	Header string
	Rows   []Row

	// Term is set when the view shows search results
	Term string
}

// Filtered reports whether the view shows a search subset
func (v View) Filtered() bool {
	return v.Term != ""
}

// IDAt returns the record ID shown at row index i
func (v View) IDAt(i int) (string, bool) {
	if i < 0 || i >= len(v.Rows) {
		return "", false
	}
	return v.Rows[i].ID, true
}

// String joins the header and the rows, one per line
func (v View) String() string {
	var b strings.Builder
	b.WriteString(v.Header)
	for _, r := range v.Rows {
		b.WriteByte('\n')
		b.WriteString(r.Text)
	}
	return b.String()
}

// Render builds a view of projects
func (l Layout) Render(projects []model.Project) View {
	v := View{
		Header: l.Header(),
		Rows:   make([]Row, 0, len(projects)),
	}
	for _, p := range projects {
		v.Rows = append(v.Rows, Row{ID: p.ID, Text: l.Row(p)})
	}
	return v
}

// Header returns the column title line
func (l Layout) Header() string {
	return l.join(
		center(HeaderName, l.NameWidth, l.Filler),
		center(HeaderDescription, l.DescriptionWidth, l.Filler),
		center(HeaderProgress, l.ProgressWidth+len(PercentSign), l.Filler),
		center(HeaderDueDate, l.DueDateWidth, l.Filler),
	)
}

// Row returns the table line for p
func (l Layout) Row(p model.Project) string {
	return l.join(
		center(l.name(p.Name), l.NameWidth, l.Filler),
		center(l.description(p.Description), l.DescriptionWidth, l.Filler),
		center(strconv.Itoa(p.Progress), l.ProgressWidth, l.Filler)+PercentSign,
		center(p.DueDate, l.DueDateWidth, l.Filler),
	)
}

func (l Layout) join(cells ...string) string {
	return l.Indent + strings.Join(cells, l.Separator)
}

func (l Layout) name(s string) string {
	if l.NameLimit <= 0 {
		return s
	}
	return firstRunes(s, l.NameLimit)
}

func (l Layout) description(s string) string {
	if utf8.RuneCountInString(s) <= l.DescriptionThreshold {
		return s
	}
	return firstRunes(s, l.DescriptionLimit) + Ellipsis
}

// firstRunes returns at most n characters from the start of s
func firstRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// center pads s with fill on both sides up to width cells. When the padding
// is odd the extra cell goes left only if both the padding and width are odd.
func center(s string, width int, fill string) string {
	margin := width - runewidth.StringWidth(s)
	if margin <= 0 || fill == "" {
		return s
	}
	left := margin/2 + (margin & width & 1)
	return strings.Repeat(fill, left) + s + strings.Repeat(fill, margin-left)
}
