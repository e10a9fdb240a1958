package command

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bornholm/workers/internal/command/add"
	"github.com/bornholm/workers/internal/command/common"
	"github.com/bornholm/workers/internal/command/display"
	"github.com/bornholm/workers/internal/command/selection"
	"github.com/bornholm/workers/internal/core/model"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

func TestVersion(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	stdout, err := runApp(t, "--version")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "workers 0.1.0\n", stdout; e != g {
		t.Errorf("expected '%v', got '%v'", e, g)
	}
}

func TestAddDisplaySelect(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	db := filepath.Join(t.TempDir(), "staff.db")

	if _, err := runApp(t, "add", "--db", db, "-n", "Alice", "-p", "555-1234", "-b", "1990"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if _, err := runApp(t, "add", "--db", db, "--name", "Bob", "--birth", "1985"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	stdout, err := runApp(t, "display", "--db", db)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	expected := "" +
		"+------+--------------------------------+----------------------+----------------------+\n" +
		"|  №   |              Имя               |    Номер телефона    |    Дата рождения     |\n" +
		"+------+--------------------------------+----------------------+----------------------+\n" +
		"|    1 | Alice                          | 555-1234             |                 1990 |\n" +
		"+------+--------------------------------+----------------------+----------------------+\n" +
		"|    2 | Bob                            |                      |                 1985 |\n" +
		"+------+--------------------------------+----------------------+----------------------+\n"

	if e, g := expected, stdout; e != g {
		t.Errorf("display: expected\n%s\ngot\n%s", e, g)
	}

	stdout, err = runApp(t, "select", "--db", db, "-N", "555-1234", "--format", "json")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	var workers []model.Worker
	if err := json.Unmarshal([]byte(stdout), &workers); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(workers); e != g {
		t.Fatalf("len(workers): expected %d, got %d: %s", e, g, spew.Sdump(workers))
	}

	if e, g := (model.Worker{Name: "Alice", Number: "555-1234", Year: 1990}), workers[0]; e != g {
		t.Errorf("workers[0]: expected %s, got %s", spew.Sdump(e), spew.Sdump(g))
	}

	stdout, err = runApp(t, "select", "--db", db, "--number", "000")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := common.EmptyWorkersMessage+"\n", stdout; e != g {
		t.Errorf("select: expected '%v', got '%v'", e, g)
	}
}

func TestDisplayEmpty(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	db := filepath.Join(t.TempDir(), "users.db")

	stdout, err := runApp(t, "display", "--db", db)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := common.EmptyWorkersMessage+"\n", stdout; e != g {
		t.Errorf("expected '%v', got '%v'", e, g)
	}
}

func TestDatabaseFromEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	db := filepath.Join(t.TempDir(), "env.db")
	t.Setenv("WORKERS_STORAGE_DATABASE_DSN", db)

	if _, err := runApp(t, "add", "-n", "Carol", "-p", "222", "-b", "1985"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	stdout, err := runApp(t, "display", "--format", "yaml", "--db", db)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !strings.Contains(stdout, "name: Carol") {
		t.Errorf("expected output to contain 'name: Carol', got '%s'", stdout)
	}

	stdout, err = runApp(t, "display", "--db", filepath.Join(home, "users.db"))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := common.EmptyWorkersMessage+"\n", stdout; e != g {
		t.Errorf("expected '%v', got '%v'", e, g)
	}
}

func TestInvalidArguments(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	db := filepath.Join(t.TempDir(), "users.db")

	invalid := [][]string{
		{"add", "--db", db, "-p", "555-1234", "-b", "1990"},
		{"add", "--db", db, "-n", "Alice", "-p", "555-1234"},
		{"add", "--db", db, "-n", "Alice", "-b", "nineteen"},
		{"add", "--db", db, "-n", "", "-b", "1990"},
		{"select", "--db", db},
		{"display", "--db", db, "--format", "xml"},
	}

	for _, args := range invalid {
		if _, err := runApp(t, args...); err == nil {
			t.Errorf("%v: expected error, got nil", args)
		}
	}

	stdout, err := runApp(t, "display", "--db", db)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := common.EmptyWorkersMessage+"\n", stdout; e != g {
		t.Errorf("expected '%v', got '%v'", e, g)
	}
}

func TestDatabaseLogsFollowErrWriter(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	db := filepath.Join(t.TempDir(), "staff.db")

	var stdout, stderr bytes.Buffer

	if err := runAppWithWriters(t, &stdout, &stderr, "--log-level", "info", "display", "--db", db); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "CREATE TABLE", stderr.String(); !strings.Contains(g, e) {
		t.Errorf("stderr: expected to contain '%s', got '%s'", e, g)
	}

	if g := stdout.String(); strings.Contains(g, "CREATE TABLE") {
		t.Errorf("stdout: expected no database logs, got '%s'", g)
	}
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout bytes.Buffer

	err := runAppWithWriters(t, &stdout, io.Discard, args...)

	return stdout.String(), err
}

func runAppWithWriters(t *testing.T, stdout io.Writer, stderr io.Writer, args ...string) error {
	t.Helper()

	app := NewApp(
		"workers", "record and list workers in a local database",
		add.Command(),
		display.Command(),
		selection.Command(),
	)

	app.Writer = stdout
	app.ErrWriter = stderr

	return app.Run(append([]string{"workers"}, args...))
}
