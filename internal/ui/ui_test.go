package ui

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTheme(t *testing.T, name string) {
	t.Helper()
	SetTheme(name)
	SetColorForcing(false, true)
	t.Cleanup(func() {
		SetColorForcing(false, false)
		SetTheme("classic")
	})
}

func TestColorSwitches(t *testing.T) {
	t.Cleanup(func() { SetColorForcing(false, false) })

	SetColorForcing(true, false)
	assert.Equal(t, fgRed+"x"+reset, C(fgRed, "x"))
	assert.Equal(t, "x", C("", "x"))

	SetColorForcing(true, true)
	assert.Equal(t, "x", C(fgRed, "x"))
}

func TestPaintChecksTheDestination(t *testing.T) {
	t.Cleanup(func() { SetColorForcing(false, false) })
	SetColorForcing(false, false)

	var buf bytes.Buffer
	assert.Equal(t, "x", Paint(&buf, fgRed, "x"))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, "x", Paint(f, fgRed, "x"), "a regular file is not a terminal")

	Fail(&buf, "boom")
	assert.NotContains(t, buf.String(), "\033[")
	assert.Contains(t, buf.String(), "boom")
}

func TestGauge(t *testing.T) {
	withTheme(t, "mono")

	tests := []struct {
		value int
		want  string
	}{
		{10, ".........."},
		{30, "#####....."},
		{50, "##########"},
		{99, "##########"},
		{0, ".........."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Gauge(tt.value, 10, 50, 10), "Gauge(%d)", tt.value)
	}
}

func TestPanel(t *testing.T) {
	withTheme(t, "mono")

	var buf bytes.Buffer
	Panel(&buf, []string{"Notes", "1. Groceries", "\033[31mred\033[0m"})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"+--------------+",
		"| Notes        |",
		"| 1. Groceries |",
		"| \033[31mred\033[0m          |",
		"+--------------+",
	}, lines)
}

func TestStatusLines(t *testing.T) {
	withTheme(t, "mono")

	var buf bytes.Buffer
	OK(&buf, "saved")
	Fail(&buf, "no note matches 9")
	assert.Equal(t, "ok saved\nerror: no note matches 9\n", buf.String())
}
