package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/stationrank/stationrank/pkg/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testCmd(t *testing.T) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{}
	cmd.SetContext(withLogger(context.Background(), newLogger(io.Discard, charmlog.FatalLevel)))
	return cmd
}

func testOpts(output string) rankOptions {
	return rankOptions{
		output:     output,
		format:     formatSVG,
		view:       viewGeo,
		designator: "站",
		topK:       15,
		damping:    0.85,
		tol:        1e-6,
		maxIter:    100,
		pngScale:   2.0,
	}
}

func TestRunRankChain(t *testing.T) {
	dir := t.TempDir()
	lines := writeFile(t, dir, "lines.csv", "src,dst\nA,B\nB,C\n")
	coords := writeFile(t, dir, "stations.csv", "站名,WGS84_Lng,WGS84_Lat\nA,116.0,39.0\nB,117.0,40.0\nC,118.0,41.0\n")
	out := filepath.Join(dir, "map.svg")

	if err := runRank(testCmd(t), lines, coords, testOpts(out)); err != nil {
		t.Fatalf("runRank() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	svg := string(data)

	if got := strings.Count(svg, "<circle"); got != 3 {
		t.Errorf("marker count = %d, want 3", got)
	}
	if got := strings.Count(svg, "<line"); got < 2 {
		t.Errorf("edge line count = %d, want at least 2", got)
	}
	for _, name := range []string{"A", "B", "C"} {
		if !strings.Contains(svg, ">"+name+"</text>") {
			t.Errorf("station %s not labeled", name)
		}
	}
}

func TestRunRankExcludesStationsWithoutCoordinates(t *testing.T) {
	dir := t.TempDir()
	lines := writeFile(t, dir, "lines.csv", "src,dst\nA,B\nB,C\nC,D\n")
	coords := writeFile(t, dir, "stations.csv", "站名,WGS84_Lng,WGS84_Lat\nA,116.0,39.0\nB,117.0,40.0\nC,118.0,41.0\n")
	out := filepath.Join(dir, "map.svg")

	if err := runRank(testCmd(t), lines, coords, testOpts(out)); err != nil {
		t.Fatalf("runRank() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	svg := string(data)

	if got := strings.Count(svg, "<circle"); got != 3 {
		t.Errorf("marker count = %d, want 3 (D has no coordinates)", got)
	}
	if strings.Contains(svg, ">D</text>") {
		t.Error("station D labeled despite missing coordinates")
	}
}

func TestRunRankDesignatorJoin(t *testing.T) {
	dir := t.TempDir()
	lines := writeFile(t, dir, "lines.csv", "src,dst\n北京,上海\n")
	coords := writeFile(t, dir, "stations.csv", "站名,WGS84_Lng,WGS84_Lat\n北京站,116.4,39.9\n上海站,121.5,31.2\n")
	out := filepath.Join(dir, "map.svg")

	if err := runRank(testCmd(t), lines, coords, testOpts(out)); err != nil {
		t.Fatalf("runRank() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	svg := string(data)

	if got := strings.Count(svg, "<circle"); got != 2 {
		t.Errorf("marker count = %d, want 2", got)
	}
	if !strings.Contains(svg, ">北京</text>") {
		t.Error("北京 not labeled after designator stripping")
	}
}

func TestRunRankEmptyIntersection(t *testing.T) {
	dir := t.TempDir()
	lines := writeFile(t, dir, "lines.csv", "src,dst\nA,B\n")
	coords := writeFile(t, dir, "stations.csv", "站名,WGS84_Lng,WGS84_Lat\nX,116.0,39.0\nY,117.0,40.0\n")
	out := filepath.Join(dir, "map.svg")

	err := runRank(testCmd(t), lines, coords, testOpts(out))
	if !errors.Is(err, errors.ErrCodeEmptyIntersection) {
		t.Fatalf("error = %v, want EMPTY_INTERSECTION", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("output written despite pipeline failure")
	}
}

func TestRunRankMissingInput(t *testing.T) {
	dir := t.TempDir()
	coords := writeFile(t, dir, "stations.csv", "站名,WGS84_Lng,WGS84_Lat\nA,116.0,39.0\n")

	err := runRank(testCmd(t), filepath.Join(dir, "nope.csv"), coords, testOpts(filepath.Join(dir, "map.svg")))
	if !errors.Is(err, errors.ErrCodeInputNotFound) {
		t.Fatalf("error = %v, want INPUT_NOT_FOUND", err)
	}
}

func TestRunRankSchematicDOT(t *testing.T) {
	dir := t.TempDir()
	lines := writeFile(t, dir, "lines.csv", "src,dst\nA,B\nB,C\n")
	coords := writeFile(t, dir, "stations.csv", "站名,WGS84_Lng,WGS84_Lat\nA,116.0,39.0\nB,117.0,40.0\nC,118.0,41.0\n")
	out := filepath.Join(dir, "network.dot")

	opts := testOpts(out)
	opts.format = formatDOT
	opts.view = viewSchematic
	if err := runRank(testCmd(t), lines, coords, opts); err != nil {
		t.Fatalf("runRank() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	dot := string(data)
	if !strings.Contains(dot, "digraph railway") {
		t.Error("missing digraph header")
	}
	if !strings.Contains(dot, `"A" -> "B"`) {
		t.Error("missing edge A -> B")
	}
}

func TestResolveConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*rankOptions)
		code   errors.Code
	}{
		{"unknown format", func(o *rankOptions) { o.format = "pdf" }, errors.ErrCodeInvalidFormat},
		{"unknown view", func(o *rankOptions) { o.view = "3d" }, errors.ErrCodeInvalidConfig},
		{"dot needs schematic", func(o *rankOptions) { o.format = formatDOT }, errors.ErrCodeInvalidFormat},
		{"inverted bounds", func(o *rankOptions) { o.bounds = []float64{140, 70, 15, 55} }, errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOpts("out.svg")
			tt.mutate(&opts)
			_, err := resolveConfig(opts)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestOutputPathDefaultsToFormat(t *testing.T) {
	opts := testOpts("")
	opts.format = formatPNG
	if got := outputPath(opts); got != "stationrank.png" {
		t.Errorf("outputPath() = %q", got)
	}
	opts.output = "custom.svg"
	if got := outputPath(opts); got != "custom.svg" {
		t.Errorf("outputPath() = %q", got)
	}
}

func TestDesignatorRune(t *testing.T) {
	if got := designatorRune("站"); got != '站' {
		t.Errorf("designatorRune(站) = %q", got)
	}
	if got := designatorRune(""); got != 0 {
		t.Errorf("designatorRune(empty) = %q", got)
	}
}
