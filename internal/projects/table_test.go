package projects

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/project-manager/internal/model"
)

func TestCenter(t *testing.T) {
	tests := []struct {
		s        string
		width    int
		expected string
	}{
		{"ab", 6, "__ab__"},
		{"abc", 6, "_abc__"},
		{"abc", 7, "__abc__"},
		{"ab", 7, "___ab__"},
		{"abcd", 7, "__abcd_"},
		{"", 3, "___"},
		{"toolong", 3, "toolong"},
	}

	for _, test := range tests {
		result := center(test.s, test.width, "_")
		if result != test.expected {
			t.Errorf("center(%q, %d) = %q, expected %q", test.s, test.width, result, test.expected)
		}
	}
}

func TestLayout_Header(t *testing.T) {
	header := DefaultLayout.Header()
	cells := strings.Split(header, Separator)
	require.Len(t, cells, 4)

	assert.Equal(t, "________Name________", cells[0])
	assert.Equal(t, NameWidth, len(cells[0]))
	assert.Equal(t, DescriptionWidth, len(cells[1]))
	assert.Contains(t, cells[1], "Description")
	assert.Equal(t, ProgressWidth+1, len(cells[2]))
	assert.Contains(t, cells[2], "Progress")
	assert.Equal(t, DueDateWidth, len(cells[3]))
	assert.Contains(t, cells[3], "Due Date")
	assert.True(t, strings.HasPrefix(header, Filler), "padding uses the filler glyph")
}

func TestLayout_Row(t *testing.T) {
	row := DefaultLayout.Row(model.Project{
		ID:          "p-1",
		Name:        "Website",
		Description: "Build site",
		Progress:    10,
		DueDate:     "2024-06-01",
	})
	cells := strings.Split(row, Separator)
	require.Len(t, cells, 4)

	assert.Equal(t, "______Website_______", cells[0])
	assert.Equal(t, strings.Repeat("_", 35)+"Build site"+strings.Repeat("_", 35), cells[1])
	assert.Equal(t, "_______10______%", cells[2])
	assert.Equal(t, "___2024-06-01__", cells[3])

	// Rows and header line up column by column
	assert.Equal(t, len(DefaultLayout.Header()), len(row))
}

func TestLayout_RowTruncatesName(t *testing.T) {
	row := DefaultLayout.Row(model.Project{Name: "An extremely long project name", Description: "d"})
	cells := strings.Split(row, Separator)

	assert.Equal(t, "_An extremely long__", cells[0])
	assert.Equal(t, NameWidth, len(cells[0]))
}

func TestLayout_RowDescriptionThreshold(t *testing.T) {
	exactly80 := strings.Repeat("d", 80)
	row := DefaultLayout.Row(model.Project{Name: "n", Description: exactly80})
	assert.Equal(t, exactly80, strings.Split(row, Separator)[1], "80 characters are kept as-is")

	long := strings.Repeat("x", 70) + strings.Repeat("y", 11)
	row = DefaultLayout.Row(model.Project{Name: "n", Description: long})
	cell := strings.Split(row, Separator)[1]
	assert.Equal(t, strings.Repeat("_", 3)+strings.Repeat("x", 70)+Ellipsis+strings.Repeat("_", 4), cell)
	assert.Equal(t, DescriptionWidth, len(cell))
}

func TestLayout_RowProgressFormatting(t *testing.T) {
	row := DefaultLayout.Row(model.Project{Name: "n", Description: "d", Progress: 100})
	assert.Equal(t, "______100______%", strings.Split(row, Separator)[2])
}

func TestLayout_WideCharacters(t *testing.T) {
	row := DefaultLayout.Row(model.Project{Name: "项目管理", Description: "网站", DueDate: "明天"})
	cells := strings.Split(row, Separator)

	assert.Equal(t, NameWidth, runewidth.StringWidth(cells[0]))
	assert.Equal(t, DescriptionWidth, runewidth.StringWidth(cells[1]))
	assert.Equal(t, DueDateWidth, runewidth.StringWidth(cells[3]))
}

func TestLayout_LimitsCountCharacters(t *testing.T) {
	wide := strings.Repeat("网", 45)
	row := DefaultLayout.Row(model.Project{Name: strings.Repeat("项", 10), Description: wide})
	cells := strings.Split(row, Separator)

	assert.Equal(t, strings.Repeat("项", 10), strings.Trim(cells[0], Filler), "10 characters are under the name limit")
	assert.Equal(t, wide, strings.Trim(cells[1], Filler), "45 characters are under the description threshold")

	longName := strings.Repeat("项", 20)
	row = DefaultLayout.Row(model.Project{Name: longName, Description: strings.Repeat("网", 81)})
	cells = strings.Split(row, Separator)

	assert.Equal(t, strings.Repeat("项", NameLimit), strings.Trim(cells[0], Filler))
	assert.Equal(t, strings.Repeat("网", DescriptionLimit)+Ellipsis, strings.Trim(cells[1], Filler))
}

func TestLayout_Indent(t *testing.T) {
	l := DefaultLayout
	l.Indent = "  "

	v := l.Render([]model.Project{{ID: "p-1", Name: "a", Description: "b"}})
	assert.True(t, strings.HasPrefix(v.Header, "  _"))
	assert.True(t, strings.HasPrefix(v.Rows[0].Text, "  _"))
}

func TestView_IDAt(t *testing.T) {
	v := DefaultLayout.Render([]model.Project{
		{ID: "p-1", Name: "a", Description: "b"},
		{ID: "p-2", Name: "c", Description: "d"},
	})

	id, ok := v.IDAt(0)
	assert.True(t, ok)
	assert.Equal(t, "p-1", id)

	id, ok = v.IDAt(1)
	assert.True(t, ok)
	assert.Equal(t, "p-2", id)

	_, ok = v.IDAt(-1)
	assert.False(t, ok, "there is no header row to select")
	_, ok = v.IDAt(2)
	assert.False(t, ok)
}

func TestView_String(t *testing.T) {
	v := DefaultLayout.Render([]model.Project{{ID: "p-1", Name: "a", Description: "b"}})
	lines := strings.Split(v.String(), "\n")

	require.Len(t, lines, 2)
	assert.Equal(t, v.Header, lines[0])
	assert.Equal(t, v.Rows[0].Text, lines[1])
	assert.False(t, v.Filtered())
}
