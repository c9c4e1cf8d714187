package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-golf/internal/config"
	"github.com/vovakirdan/tui-golf/internal/games/golf/course"
	"github.com/vovakirdan/tui-golf/internal/games/golf/surface"
	"github.com/vovakirdan/tui-golf/internal/storage"
)

func sampleCourse(t *testing.T) (*course.Catalog, *course.Course) {
	t.Helper()
	cat, err := course.DefaultCatalog()
	require.NoError(t, err)
	c, err := course.Sample(cat)
	require.NoError(t, err)
	return cat, c
}

func TestCheckCourse(t *testing.T) {
	cat, c := sampleCourse(t)
	dir := t.TempDir()

	good := filepath.Join(dir, "01.crs")
	var buf bytes.Buffer
	require.NoError(t, course.Write(&buf, c))
	require.NoError(t, os.WriteFile(good, buf.Bytes(), 0o644))

	line, ok := checkCourse(good, cat)
	assert.True(t, ok)
	assert.Contains(t, line, `"sample course"`)
	assert.True(t, strings.HasPrefix(line, "ok"))

	bad := filepath.Join(dir, "02.crs")
	require.NoError(t, os.WriteFile(bad, []byte("broken\nnot a par\n"), 0o644))
	line, ok = checkCourse(bad, cat)
	assert.False(t, ok)
	assert.True(t, strings.HasPrefix(line, "FAIL"), line)
	assert.Contains(t, line, "line 2")

	line, ok = checkCourse(filepath.Join(dir, "missing.crs"), cat)
	assert.False(t, ok)
	assert.True(t, strings.HasPrefix(line, "ERROR"), line)
}

func TestPrintElements(t *testing.T) {
	cat, _ := sampleCourse(t)
	var buf bytes.Buffer
	printElements(&buf, cat)
	out := buf.String()

	assert.Contains(t, out, "templates:")
	var slope, belt string
	for _, l := range strings.Split(out, "\n") {
		fields := strings.Fields(l)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "slope":
			slope = l
		case "beltup":
			belt = l
		}
	}
	assert.Equal(t, []string{"slope", "20x20", "11", "12", "13"}, strings.Fields(slope))
	assert.Equal(t, []string{"beltup", "40x20", "17", "-", "-"}, strings.Fields(belt))
}

func TestNewPainterUsesImageDirectory(t *testing.T) {
	_, c := sampleCourse(t)
	cfg := config.DefaultGolfConfig()
	pal := surface.DefaultPalette()
	t.Cleanup(func() { flagImages = "" })

	flagImages = ""
	_, err := newPainter(pal, cfg).Paint(c.Holes[0])
	assert.NoError(t, err)

	// Without the template graphics the hole cannot be painted
	flagImages = t.TempDir()
	_, err = newPainter(pal, cfg).Paint(c.Holes[0])
	assert.Error(t, err)
}

func TestScoresListings(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "rounds.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	var buf bytes.Buffer
	require.NoError(t, printCourseSummary(&buf, store))
	assert.Contains(t, buf.String(), "No rounds recorded yet.")
	assert.Error(t, printMatch(&buf, store, "nope"))

	rounds := make([]storage.Round, 2)
	for i := range rounds {
		r := storage.Round{MatchID: "m-1", Course: "links", Player: []string{"ann", "bob"}[i], Par: 54}
		for h := range r.Strokes {
			r.Strokes[h] = 3 + i
		}
		r.Total = (3 + i) * course.HoleCount
		rounds[i] = r
	}
	require.NoError(t, store.SaveMatch(rounds))

	buf.Reset()
	require.NoError(t, printMatch(&buf, store, "m-1"))
	out := buf.String()
	assert.Contains(t, out, "Match m-1 - links")
	assert.Contains(t, out, "ann")
	assert.Contains(t, out, "+18")
	assert.Contains(t, out, "E")

	buf.Reset()
	require.NoError(t, printCourseSummary(&buf, store))
	fields := strings.Fields(strings.Split(buf.String(), "\n")[2])
	require.GreaterOrEqual(t, len(fields), 5)
	assert.Equal(t, []string{"links", "2", "1", "54", "63.0"}, fields[:5])
}

func TestToParText(t *testing.T) {
	assert.Equal(t, "E", toParText(0))
	assert.Equal(t, "-3", toParText(-3))
	assert.Equal(t, "+2", toParText(2))
}
