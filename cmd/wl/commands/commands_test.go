package commands_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"watchlist/cmd/wl/commands"
	"watchlist/internal/domain"
)

type result struct {
	out string
	err error
}

// run executes one wl invocation against the watch list file at path.
func run(t *testing.T, path, stdin string, args ...string) result {
	t.Helper()
	t.Setenv("HOME", filepath.Dir(path))
	t.Setenv(configEnv, "")
	os.Unsetenv(configEnv)

	root := commands.NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--file", path}, args...))
	err := root.Execute()
	return result{out: out.String(), err: err}
}

const configEnv = "WATCHLIST_CONFIG"

func mustRun(t *testing.T, path string, args ...string) string {
	t.Helper()
	r := run(t, path, "", args...)
	if r.err != nil {
		t.Fatalf("wl %s: %v", strings.Join(args, " "), r.err)
	}
	return r.out
}

func readLists(t *testing.T, path string) map[string][]string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var m map[string][]string
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return m
}

func tempFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "watchlist.json")
}

func TestMovieWalkthrough(t *testing.T) {
	path := tempFile(t)

	mustRun(t, path, "new", "movies")
	mustRun(t, path, "add", "movies", "Inception", "Dune", "-i")
	if out := mustRun(t, path, "add", "movies", "Dune", "-i"); !strings.Contains(out, "skipped 1 duplicate") {
		t.Fatalf("add output: %q", out)
	}
	if got := readLists(t, path)["movies"]; !reflect.DeepEqual(got, []string{"Inception", "Dune"}) {
		t.Fatalf("after add: %v", got)
	}

	out := mustRun(t, path, "search", "movies", "du")
	if !strings.Contains(out, "1. | Dune") || strings.Contains(out, "Inception") {
		t.Fatalf("search output: %q", out)
	}

	if out := mustRun(t, path, "delete", "movies", "du"); !strings.Contains(out, "Deleted 1 item(s)") {
		t.Fatalf("delete output: %q", out)
	}
	if got := readLists(t, path)["movies"]; !reflect.DeepEqual(got, []string{"Inception"}) {
		t.Fatalf("after delete: %v", got)
	}
}

func TestAliases(t *testing.T) {
	path := tempFile(t)
	mustRun(t, path, "n", "tv")
	mustRun(t, path, "a", "tv", "Severance")
	if out := mustRun(t, path, "rand", "tv"); strings.TrimSpace(out) != "Severance" {
		t.Fatalf("random: %q", out)
	}
	if out := mustRun(t, path, "se", "tv", "sev"); !strings.Contains(out, "Severance") {
		t.Fatalf("search: %q", out)
	}
	mustRun(t, path, "del", "tv", "--yes")
	if _, ok := readLists(t, path)["tv"]; ok {
		t.Fatal("tv still present")
	}
}

func TestShowModes(t *testing.T) {
	path := tempFile(t)
	if out := mustRun(t, path, "show"); !strings.Contains(out, "No lists found") {
		t.Fatalf("empty show: %q", out)
	}

	mustRun(t, path, "new", "A")
	mustRun(t, path, "new", "B")
	mustRun(t, path, "add", "B", "1")

	out := mustRun(t, path, "show", "--all-items")
	if !strings.Contains(out, "B") || !strings.Contains(out, "1. | 1") {
		t.Fatalf("show all: %q", out)
	}
	if strings.Contains(out, "A") {
		t.Fatalf("show all includes empty list: %q", out)
	}

	if out := mustRun(t, path, "show", "A"); !strings.Contains(out, `List "A" is empty`) {
		t.Fatalf("show empty list: %q", out)
	}
	out = mustRun(t, path, "s")
	if !strings.Contains(out, "All Lists") || !strings.Contains(out, "1. | A") || !strings.Contains(out, "2. | B") {
		t.Fatalf("show names: %q", out)
	}

	r := run(t, path, "", "show", "A", "--all-items")
	if commands.ExitCode(r.err) != commands.ExitUsage {
		t.Fatalf("want usage error, got %v", r.err)
	}
}

func TestErrorsMapToExitCodes(t *testing.T) {
	path := tempFile(t)
	mustRun(t, path, "new", "movies")
	mustRun(t, path, "new", "empty")
	mustRun(t, path, "add", "movies", "Dune")

	cases := []struct {
		args []string
		code int
	}{
		{[]string{"new", "movies"}, commands.ExitListExists},
		{[]string{"add", "tv", "x"}, commands.ExitListNotFound},
		{[]string{"show", "tv"}, commands.ExitListNotFound},
		{[]string{"random", "empty"}, commands.ExitEmptyList},
		{[]string{"delete", "tv", "--yes"}, commands.ExitListNotFound},
		{[]string{"search", "tv", "x"}, commands.ExitListNotFound},
		{[]string{"add", "movies"}, commands.ExitUsage},
		{[]string{"new", ""}, commands.ExitUsage},
		{[]string{"search", "movies"}, commands.ExitUsage},
		{[]string{"add", "--bogus", "movies", "x"}, commands.ExitUsage},
	}
	for _, tc := range cases {
		r := run(t, path, "", tc.args...)
		if got := commands.ExitCode(r.err); got != tc.code {
			t.Fatalf("wl %s: exit %d want %d (err %v)", strings.Join(tc.args, " "), got, tc.code, r.err)
		}
	}

	if got := readLists(t, path); !reflect.DeepEqual(got, map[string][]string{"movies": {"Dune"}, "empty": {}}) {
		t.Fatalf("failed commands changed the file: %v", got)
	}
}

func TestRandom_NoNameNeedsItems(t *testing.T) {
	path := tempFile(t)
	mustRun(t, path, "new", "empty")
	r := run(t, path, "", "random")
	if !errors.Is(r.err, domain.ErrEmptyList) {
		t.Fatalf("want ErrEmptyList, got %v", r.err)
	}

	mustRun(t, path, "new", "one")
	mustRun(t, path, "add", "one", "only")
	if out := mustRun(t, path, "r"); strings.TrimSpace(out) != "only" {
		t.Fatalf("random: %q", out)
	}
}

func TestNotFoundMessageSuggests(t *testing.T) {
	path := tempFile(t)
	mustRun(t, path, "new", "movies")

	r := run(t, path, "", "show", "movis")
	if r.err == nil {
		t.Fatal("expected error")
	}
	if msg := commands.Message(r.err); !strings.Contains(msg, `did you mean "movies"`) {
		t.Fatalf("message: %q", msg)
	}
}

func TestDeleteList_Confirmation(t *testing.T) {
	path := tempFile(t)
	mustRun(t, path, "new", "movies")

	for _, answer := range []string{"n\n", "\n", "", "yes\n"} {
		r := run(t, path, answer, "delete", "movies")
		if r.err != nil {
			t.Fatalf("answer %q: %v", answer, r.err)
		}
		if !strings.Contains(r.out, "Deleting cancelled") {
			t.Fatalf("answer %q: output %q", answer, r.out)
		}
		if _, ok := readLists(t, path)["movies"]; !ok {
			t.Fatalf("answer %q deleted the list", answer)
		}
	}

	r := run(t, path, "Y\n", "delete", "movies")
	if r.err != nil {
		t.Fatalf("confirm: %v", r.err)
	}
	if _, ok := readLists(t, path)["movies"]; ok {
		t.Fatal("list not deleted after confirmation")
	}
}

func TestDeleteMatching_NoMatches(t *testing.T) {
	path := tempFile(t)
	mustRun(t, path, "new", "movies")
	mustRun(t, path, "add", "movies", "Dune")

	if out := mustRun(t, path, "delete", "movies", "zzz"); !strings.Contains(out, "No matches") {
		t.Fatalf("output: %q", out)
	}
	if got := readLists(t, path)["movies"]; !reflect.DeepEqual(got, []string{"Dune"}) {
		t.Fatalf("list changed: %v", got)
	}
}

func TestDeletePick(t *testing.T) {
	path := tempFile(t)
	mustRun(t, path, "new", "movies")
	mustRun(t, path, "add", "movies", "Dune", "Alien", "Dune: Part Two")

	r := run(t, path, "abc\n7\n2\n", "delete", "movies", "dune", "--pick")
	if r.err != nil {
		t.Fatalf("pick: %v", r.err)
	}
	if !strings.Contains(r.out, "Matched Items") || !strings.Contains(r.out, `Deleted "Dune: Part Two"`) {
		t.Fatalf("output: %q", r.out)
	}
	if got := readLists(t, path)["movies"]; !reflect.DeepEqual(got, []string{"Dune", "Alien"}) {
		t.Fatalf("after pick: %v", got)
	}

	r = run(t, path, "\n", "delete", "movies", "dune", "--pick")
	if r.err != nil {
		t.Fatalf("default pick: %v", r.err)
	}
	if got := readLists(t, path)["movies"]; !reflect.DeepEqual(got, []string{"Alien"}) {
		t.Fatalf("after default pick: %v", got)
	}

	r = run(t, path, "", "delete", "movies", "alien", "--pick")
	if r.err != nil || !strings.Contains(r.out, "Deleting cancelled") {
		t.Fatalf("eof pick: %q, %v", r.out, r.err)
	}

	if r := run(t, path, "", "delete", "movies", "--pick"); commands.ExitCode(r.err) != commands.ExitUsage {
		t.Fatalf("pick without prompt: %v", r.err)
	}
}

func TestCorruptFile_FailsWithIOExitAndKeepsFile(t *testing.T) {
	path := tempFile(t)
	if err := os.WriteFile(path, []byte(`{"movies": [1, 2]}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	r := run(t, path, "", "new", "tv")
	if commands.ExitCode(r.err) != commands.ExitIO {
		t.Fatalf("want IO exit, got %v", r.err)
	}
	b, _ := os.ReadFile(path)
	if string(b) != `{"movies": [1, 2]}` {
		t.Fatalf("corrupt file rewritten: %s", b)
	}
}

func TestSealedFileViaEnv(t *testing.T) {
	path := tempFile(t)
	t.Setenv("WATCHLIST_PASSPHRASE", "s3cret")
	mustRun(t, path, "new", "movies")
	mustRun(t, path, "add", "movies", "Dune")

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if strings.Contains(string(raw), "Dune") {
		t.Fatal("sealed file holds plaintext")
	}
	if out := mustRun(t, path, "show", "movies"); !strings.Contains(out, "1. | Dune") {
		t.Fatalf("show: %q", out)
	}

	t.Setenv("WATCHLIST_PASSPHRASE", "wrong")
	r := run(t, path, "", "show", "movies")
	if !errors.Is(r.err, domain.ErrWrongPassphrase) || commands.ExitCode(r.err) != commands.ExitIO {
		t.Fatalf("want wrong passphrase IO error, got %v", r.err)
	}
}

func TestExitCode_Unknown(t *testing.T) {
	if commands.ExitCode(nil) != commands.ExitOK {
		t.Fatal("nil error should exit 0")
	}
	if commands.ExitCode(errors.New("boom")) != commands.ExitError {
		t.Fatal("unknown error should exit 1")
	}
}
