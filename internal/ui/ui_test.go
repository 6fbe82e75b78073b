package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/todosearch/internal/model"
)

func plainOutput(t *testing.T, theme string) {
	t.Helper()
	SetColorForcing(false, true)
	SetTheme(theme)
	t.Cleanup(func() {
		SetColorForcing(false, false)
		SetTheme("classic")
	})
}

var scenario = []model.TodoItem{
	{ID: 1, Title: "Buy milk", Completed: false},
	{ID: 2, Title: "Buy eggs", Completed: true},
}

func TestRow(t *testing.T) {
	assert.Equal(t, "Buy milk (Status: Pending)", Row(scenario[0]))
	assert.Equal(t, "Buy eggs (Status: Completed)", Row(scenario[1]))
}

func TestStyledRow_Plain(t *testing.T) {
	plainOutput(t, "mono")
	assert.Equal(t, "[ ] Buy milk (Status: Pending)", StyledRow(scenario[0]))
	assert.Equal(t, "[x] Buy eggs (Status: Completed)", StyledRow(scenario[1]))
}

func TestC_Disabled(t *testing.T) {
	plainOutput(t, "classic")
	assert.Equal(t, "text", C(fgRed, "text"))
}

func TestC_Forced(t *testing.T) {
	SetColorForcing(true, false)
	t.Cleanup(func() { SetColorForcing(false, false) })
	assert.Equal(t, fgRed+"text"+reset, C(fgRed, "text"))
	assert.Equal(t, "text", C("", "text"))
}

func TestSetTheme_UnknownFallsBackToClassic(t *testing.T) {
	SetTheme("does-not-exist")
	assert.Equal(t, "classic", Current().Name)
	SetTheme("NEON")
	assert.Equal(t, "neon", Current().Name)
	SetTheme("classic")
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░  50%", ProgressBar(1, 2, 10))
	assert.Equal(t, "░░░░░   0%", ProgressBar(0, 0, 1), "width and total are clamped")
	assert.Equal(t, "██████████ 100%", ProgressBar(3, 3, 10))
}

func TestPanelString_FramesEveryLine(t *testing.T) {
	plainOutput(t, "mono")
	out := PanelString([]string{"short", "a longer line"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	for _, ln := range lines {
		assert.Equal(t, len(lines[0]), len(ln), "line %q", ln)
	}
	assert.Equal(t, "| short         |", lines[1])
}

func TestPanel_WritesToWriter(t *testing.T) {
	plainOutput(t, "mono")
	var buf bytes.Buffer
	require.NoError(t, Panel(&buf, []string{"hello"}))
	assert.Contains(t, buf.String(), "| hello |")
}

func TestResultLines(t *testing.T) {
	plainOutput(t, "mono")

	lines := ResultLines("buy", scenario, 2)
	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, AppTitle)
	assert.Contains(t, joined, `query: "buy"`)
	assert.Contains(t, joined, " 1. [ ] Buy milk (Status: Pending)")
	assert.Contains(t, joined, " 2. [x] Buy eggs (Status: Completed)")
	assert.NotContains(t, joined, NoResultsText)

	empty := strings.Join(ResultLines("xyz", nil, 2), "\n")
	assert.Contains(t, empty, NoResultsText)
	assert.Contains(t, empty, "Shown 0/2")
}

func TestHeader(t *testing.T) {
	plainOutput(t, "mono")
	assert.Equal(t, "Todo Search  x 1  - 1  Shown 2/200", Header(scenario, 200))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "untouched", Truncate("untouched", 0))
}

func TestMarkdown(t *testing.T) {
	md := Markdown("buy", scenario, 2)
	assert.Contains(t, md, "# Todo Search")
	assert.Contains(t, md, "Results for **buy** (2 of 2)")
	assert.Contains(t, md, "- Buy milk (Status: Pending)")
	assert.Contains(t, md, "- Buy eggs (Status: Completed)")

	empty := Markdown("xyz", nil, 2)
	assert.Contains(t, empty, NoResultsText)

	escaped := Markdown("a_b", []model.TodoItem{{ID: 9, Title: "fix *bold* [link]"}}, 1)
	assert.Contains(t, escaped, `fix \*bold\* \[link\]`)
	assert.Contains(t, escaped, `a\_b`)
}

func TestRenderMarkdown_Plain(t *testing.T) {
	plainOutput(t, "mono")
	out, err := RenderMarkdown(Markdown("buy", scenario, 2), 80)
	require.NoError(t, err)
	assert.Contains(t, out, "Buy milk (Status: Pending)")
	assert.Contains(t, out, "Buy eggs (Status: Completed)")
}

func TestOKAndFail(t *testing.T) {
	plainOutput(t, "classic")
	var buf bytes.Buffer
	OK(&buf, "saved")
	Fail(&buf, "broken")
	assert.Equal(t, "✔ saved\n✖ broken\n", buf.String())
}
