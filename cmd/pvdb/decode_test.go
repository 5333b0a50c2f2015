// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"pvdb-cli/internal/config"
	"pvdb-cli/internal/issue"
	"pvdb-cli/internal/testutil/pvdbtest"
	"pvdb-cli/pkg/types"
)

func sampleDatabase() string {
	return pvdbtest.Text(
		"# comment\n",
		pvdbtest.Entry("pv_010", pvdbtest.WithSongName("Second Song"), pvdbtest.WithBPM(150)),
		pvdbtest.Entry("pv_001", pvdbtest.WithSongName("Sing Along"), pvdbtest.WithChart("extreme", 0, "PV_LV_09_5")),
		pvdbtest.Entry("pv_002", pvdbtest.WithField("bpm", "fast")),
		pvdbtest.Entry("pv_abc"),
	)
}

func TestDecode_Table(t *testing.T) {
	t.Parallel()

	path := writeInput(t, "pv_db.txt", sampleDatabase())
	res := runCLI(t, nil, "decode", path)
	if res.err != nil {
		t.Fatalf("decode error: %v\nstderr: %s", res.err, res.stderr)
	}

	first := strings.Index(res.stdout, "Sing Along")
	second := strings.Index(res.stdout, "Second Song")
	if first < 0 || second < 0 || first > second {
		t.Errorf("table should list pv_001 before pv_010:\n%s", res.stdout)
	}
	if !strings.Contains(res.stdout, "2 entries") {
		t.Errorf("table should end with the entry count:\n%s", res.stdout)
	}
	if strings.Contains(res.stderr, "skipped") {
		t.Errorf("skips should stay silent without --report, stderr: %s", res.stderr)
	}
}

func TestDecode_JSONFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Output.Format = config.FormatJSON
	path := writeInput(t, "pv_db.txt", sampleDatabase())

	res := runCLI(t, cfg, "decode", path)
	if res.err != nil {
		t.Fatalf("decode error: %v", res.err)
	}

	var got []struct {
		ID     uint32 `json:"id"`
		Record struct {
			SongName string `json:"song_name"`
			BPM      int32  `json:"bpm"`
		} `json:"record"`
	}
	if err := json.Unmarshal([]byte(res.stdout), &got); err != nil {
		t.Fatalf("stdout is not JSON: %v\n%s", err, res.stdout)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 10 {
		t.Fatalf("ids = %+v, want 1 then 10", got)
	}
	if got[1].Record.SongName != "Second Song" || got[1].Record.BPM != 150 {
		t.Errorf("pv_010 = %+v", got[1].Record)
	}
}

func TestDecode_FormatFlagOverridesConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Output.Format = config.FormatJSON
	path := writeInput(t, "pv_db.txt", sampleDatabase())

	res := runCLI(t, cfg, "decode", path, "--format", "yaml")
	if res.err != nil {
		t.Fatalf("decode error: %v", res.err)
	}
	if !strings.Contains(res.stdout, "song_name: Sing Along") {
		t.Errorf("expected YAML output, got:\n%s", res.stdout)
	}
}

func TestDecode_ReportAndStrict(t *testing.T) {
	t.Parallel()

	path := writeInput(t, "pv_db.txt", sampleDatabase())
	res := runCLI(t, nil, "decode", path, "--report", "--strict")

	var exitErr *ExitError
	if !errors.As(res.err, &exitErr) {
		t.Fatalf("error = %v, want ExitError", res.err)
	}
	if exitErr.Code != types.ExitSkipped {
		t.Errorf("exit code = %d, want %d", exitErr.Code, types.ExitSkipped)
	}
	for _, want := range []string{"2 entries skipped", "pv_002", "decode_error", "pv_abc"} {
		if !strings.Contains(res.stderr, want) {
			t.Errorf("report missing %q:\n%s", want, res.stderr)
		}
	}
}

func TestDecode_StrictWithoutSkips(t *testing.T) {
	t.Parallel()

	path := writeInput(t, "pv_db.txt", pvdbtest.Entry("pv_005"))
	res := runCLI(t, nil, "decode", path, "--strict", "--report")
	if res.err != nil {
		t.Fatalf("decode error: %v", res.err)
	}
	if !strings.Contains(res.stderr, "No entries skipped") {
		t.Errorf("stderr = %q", res.stderr)
	}
}

func TestDecode_MdataSchema(t *testing.T) {
	t.Parallel()

	path := writeInput(t, "mdata_pv_db.txt", pvdbtest.Mdata("pv_007", pvdbtest.WithSongName("Patched")))

	res := runCLI(t, nil, "decode", path, "--schema", "mdata")
	if res.err != nil {
		t.Fatalf("decode error: %v", res.err)
	}
	if !strings.Contains(res.stdout, "Patched") || !strings.Contains(res.stdout, "1 entries") {
		t.Errorf("mdata table:\n%s", res.stdout)
	}

	res = runCLI(t, nil, "decode", path)
	if res.err != nil {
		t.Fatalf("decode error: %v", res.err)
	}
	if !strings.Contains(res.stdout, "No entries decoded.") {
		t.Errorf("base schema should reject the patch record:\n%s", res.stdout)
	}
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	good := writeInput(t, "pv_db.txt", sampleDatabase())
	conflict := writeInput(t, "conflict.txt", "pv_001.bpm=120\npv_001=1\n")

	tests := []struct {
		name      string
		args      []string
		wantIssue issue.Id
		wantErr   string
	}{
		{name: "missing file", args: []string{"decode", good + ".missing"}, wantIssue: issue.InputNotFoundId},
		{name: "root conflict", args: []string{"decode", conflict}, wantIssue: issue.DecodeFailedId},
		{name: "bad format", args: []string{"decode", good, "-f", "xml"}, wantErr: "invalid output format"},
		{name: "bad schema", args: []string{"decode", good, "-s", "patch"}, wantErr: "invalid schema"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := runCLI(t, nil, tt.args...)
			var exitErr *ExitError
			if !errors.As(res.err, &exitErr) || exitErr.Code != types.ExitFailure {
				t.Fatalf("error = %v, want ExitError with code 1", res.err)
			}
			if tt.wantIssue != 0 {
				is, ok := issue.IssueOf(res.err)
				if !ok || is.Id() != tt.wantIssue {
					t.Errorf("issue = %v, want id %d", is, tt.wantIssue)
				}
			}
			if tt.wantErr != "" && !strings.Contains(res.err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", res.err, tt.wantErr)
			}
			if !strings.Contains(res.stderr, "Error: ") {
				t.Errorf("stderr should carry the rendered error, got %q", res.stderr)
			}
		})
	}
}
