package ui

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/samber/do/v2"

	"github.com/javiermolinar/twine/internal/content"
	"github.com/javiermolinar/twine/internal/dateutil"
	"github.com/javiermolinar/twine/internal/di"
	"github.com/javiermolinar/twine/internal/di/providers"
	"github.com/javiermolinar/twine/internal/planner"
	"github.com/javiermolinar/twine/internal/tags"
	"github.com/javiermolinar/twine/internal/tui"
)

func init() {
	DisableColor()
}

// now is Wednesday 2026-01-14.
var now = time.Date(2026, 1, 14, 10, 0, 0, 0, time.UTC)

type testEnv struct {
	injector *do.RootScope
	copied   []string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	injector := di.NewContainer(providers.Settings{
		ConfigPath: filepath.Join(t.TempDir(), "missing.toml"),
		Ephemeral:  true,
	})
	if err := di.Bootstrap(injector); err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}
	t.Cleanup(func() { _ = di.Shutdown(injector) })
	return &testEnv{injector: injector}
}

func (e *testEnv) app() *App {
	return NewApp(
		WithInjector(e.injector),
		WithClock(func() time.Time { return now }),
		WithClipboard(func(s string) error {
			e.copied = append(e.copied, s)
			return nil
		}),
	)
}

// run executes one command line against the shared container.
func (e *testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app := e.app()
	var buf bytes.Buffer
	app.SetOutput(&buf)
	app.SetArgs(args)
	err := app.Execute()
	return buf.String(), err
}

func (e *testEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := e.run(t, args...)
	if err != nil {
		t.Fatalf("twine %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

// add creates a block and returns its id.
func (e *testEnv) add(t *testing.T, args ...string) string {
	t.Helper()
	out := e.mustRun(t, append([]string{"add"}, args...)...)
	fields := strings.Fields(out)
	if len(fields) < 3 || fields[0] != "Created" {
		t.Fatalf("unexpected add output %q", out)
	}
	return strings.TrimSuffix(fields[2], ":")
}

func (e *testEnv) store() *planner.Store {
	return do.MustInvoke[*planner.Store](e.injector)
}

func (e *testEnv) block(t *testing.T, id string) content.Block {
	t.Helper()
	b, ok := e.store().BlockByID(id)
	if !ok {
		t.Fatalf("block %s not found", id)
	}
	return b
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)
	out := env.mustRun(t, "version")
	if out != "twine dev (commit: none)\n" {
		t.Errorf("version output = %q", out)
	}
}

func TestClose_OwnedContainer(t *testing.T) {
	app := NewApp(WithClock(func() time.Time { return now }))
	var buf bytes.Buffer
	app.SetOutput(&buf)
	app.SetArgs([]string{"--ephemeral", "--config", filepath.Join(t.TempDir(), "missing.toml"), "seed"})

	if err := app.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if err := app.Close(); err != nil {
		t.Errorf("Close() = %v, want nil after a clean shutdown", err)
	}
}

func TestClose_SharedContainer(t *testing.T) {
	env := newTestEnv(t)
	app := env.app()
	if err := app.Close(); err != nil {
		t.Errorf("Close() = %v, want nil", err)
	}
	env.mustRun(t, "seed")
}

func TestRootRunsBoard(t *testing.T) {
	env := newTestEnv(t)
	app := env.app()
	var got tui.Deps
	app.runBoard = func(d tui.Deps) error {
		got = d
		return nil
	}
	app.SetArgs([]string{})

	if err := app.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got.Store != env.store() || got.Cache == nil || got.Coordinator == nil || got.Tags == nil {
		t.Errorf("board deps not wired: %+v", got)
	}
	if got.Start.Format(dateutil.Layout) != "2026-01-14" {
		t.Errorf("board start = %v, want today", got.Start)
	}
}

func TestAdd(t *testing.T) {
	env := newTestEnv(t)
	id := env.add(t, "Morning Motivation",
		"--type=text", "--tag=Encourage Dreams", "--text=Dream big",
		"--date=tomorrow", "--slot=afternoon", "--promo")

	b := env.block(t, id)
	if b.Title != "Morning Motivation" || b.Type != content.TypeText || b.Text != "Dream big" {
		t.Errorf("block = %+v", b)
	}
	if !b.At("2026-01-15", content.SlotAfternoon) {
		t.Errorf("block at (%s, %v), want 2026-01-15 afternoon", b.Date, b.TimeSlot)
	}
	if !b.IsPromotional || !b.HasTag("Encourage Dreams") {
		t.Errorf("promo/tags lost: %+v", b)
	}
}

func TestAdd_Defaults(t *testing.T) {
	env := newTestEnv(t)
	b := env.block(t, env.add(t, "Quick note"))

	if b.Type != content.TypeText || !b.At("2026-01-14", content.SlotMorning) {
		t.Errorf("block = %+v, want text today morning", b)
	}
}

func TestAdd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "blank_title", args: []string{"  "}, want: "title is required"},
		{name: "unknown_type", args: []string{"X", "--type=video"}, want: "type must be one of: text creative recycled flexible"},
		{name: "text_too_long", args: []string{"X", "--text=" + strings.Repeat("x", 501)}, want: "text must not exceed 500 characters"},
		{name: "bad_date", args: []string{"X", "--date=someday"}, want: "date"},
		{name: "bad_slot", args: []string{"X", "--slot=night"}, want: "slot"},
		{name: "tag_not_offered", args: []string{"X", "--type=recycled", "--tag=Encourage Dreams"}, want: "not offered for recycled"},
		{name: "no_title", args: nil, want: "accepts 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			_, err := env.run(t, append([]string{"add"}, tt.args...)...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
			if n := env.store().Count(); n != 0 {
				t.Errorf("count = %d, want 0", n)
			}
		})
	}
}

func TestEdit(t *testing.T) {
	env := newTestEnv(t)
	id := env.add(t, "Draft", "--tag=Tell Story")

	out := env.mustRun(t, "edit", id, "--title=Evening reflection", "--slot=evening", "--date=2026-01-20")
	if !strings.Contains(out, "Updated block "+id) {
		t.Errorf("output = %q", out)
	}
	b := env.block(t, id)
	if b.Title != "Evening reflection" || !b.At("2026-01-20", content.SlotEvening) {
		t.Errorf("block = %+v", b)
	}
	if !b.HasTag("Tell Story") {
		t.Error("unchanged flags should keep tags")
	}

	env.mustRun(t, "edit", id, "--tag=")
	if tags := env.block(t, id).Tags; len(tags) != 0 {
		t.Errorf("tags = %q, want cleared", tags)
	}
}

func TestEdit_Errors(t *testing.T) {
	env := newTestEnv(t)
	id := env.add(t, "Draft")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "nothing", args: []string{id}, want: "nothing to change"},
		{name: "blank_title", args: []string{id, "--title= "}, want: "title is required"},
		{name: "bad_tag", args: []string{id, "--tag=Throwback"}, want: "not offered"},
		{name: "bad_slot", args: []string{id, "--slot=7"}, want: "slot"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.run(t, append([]string{"edit"}, tt.args...)...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
	if b := env.block(t, id); b.Title != "Draft" {
		t.Errorf("failed edits changed the block: %+v", b)
	}
}

func TestUnknownID(t *testing.T) {
	env := newTestEnv(t)
	for _, args := range [][]string{
		{"edit", "nope", "--title=x"},
		{"done", "nope"},
		{"delete", "nope"},
		{"move", "nope", "today", "morning"},
		{"drag", "nope", "slot-2026-01-14-0"},
		{"show", "nope"},
		{"copy", "nope"},
	} {
		_, err := env.run(t, args...)
		if !errors.Is(err, ErrBlockNotFound) {
			t.Errorf("twine %s: error = %v, want ErrBlockNotFound", strings.Join(args, " "), err)
		}
	}
}

func TestDone(t *testing.T) {
	env := newTestEnv(t)
	id := env.add(t, "Post")

	if out := env.mustRun(t, "done", id); out != "Marked "+id+" as done\n" {
		t.Errorf("output = %q", out)
	}
	if !env.block(t, id).IsDone {
		t.Error("block not done")
	}
	if out := env.mustRun(t, "done", id); out != "Marked "+id+" as not done\n" {
		t.Errorf("output = %q", out)
	}
}

func TestDelete(t *testing.T) {
	env := newTestEnv(t)
	id := env.add(t, "Post")

	env.mustRun(t, "rm", id)
	if _, ok := env.store().BlockByID(id); ok {
		t.Error("block still present")
	}
}

func TestMove(t *testing.T) {
	env := newTestEnv(t)
	id := env.add(t, "Post")

	out := env.mustRun(t, "move", id, "2026-01-20", "2")
	if out != "Moved "+id+" to 2026-01-20 Evening\n" {
		t.Errorf("output = %q", out)
	}
	if !env.block(t, id).At("2026-01-20", content.SlotEvening) {
		t.Error("block not moved")
	}
}

func TestDrag(t *testing.T) {
	env := newTestEnv(t)
	a := env.add(t, "A", "--date=2026-01-12", "--slot=morning")
	b := env.add(t, "B", "--date=2026-01-13", "--slot=evening")

	out := env.mustRun(t, "drag", a, b)
	if !strings.HasPrefix(out, "Swapped") {
		t.Errorf("swap output = %q", out)
	}
	if !env.block(t, a).At("2026-01-13", content.SlotEvening) || !env.block(t, b).At("2026-01-12", content.SlotMorning) {
		t.Error("blocks not swapped")
	}

	out = env.mustRun(t, "drag", a, "slot-2026-01-16-1")
	if out != "Moved "+a+" to 2026-01-16 Afternoon\n" {
		t.Errorf("move output = %q", out)
	}

	before := env.block(t, a)
	for _, target := range []string{a, "nowhere", "slot-2026-13-40-1"} {
		out = env.mustRun(t, "drag", a, target)
		if !strings.HasPrefix(out, "No change") {
			t.Errorf("drag onto %q: output = %q", target, out)
		}
	}
	if after := env.block(t, a); !after.UpdatedAt.Equal(before.UpdatedAt) || after.Date != before.Date {
		t.Error("no-op drops changed the block")
	}
}

func TestClear(t *testing.T) {
	env := newTestEnv(t)
	env.add(t, "A")
	env.add(t, "B")

	_, err := env.run(t, "clear")
	if err == nil || !strings.Contains(err.Error(), "refusing to delete 2 blocks without --yes") {
		t.Errorf("error = %v", err)
	}
	if out := env.mustRun(t, "clear", "--yes"); out != "Deleted 2 blocks\n" {
		t.Errorf("output = %q", out)
	}
	if env.store().Count() != 0 {
		t.Error("blocks remain")
	}
}

func TestSeed(t *testing.T) {
	env := newTestEnv(t)

	if out := env.mustRun(t, "seed"); !strings.HasPrefix(out, "Seeded ") {
		t.Errorf("output = %q", out)
	}
	n := env.store().Count()
	if out := env.mustRun(t, "seed"); !strings.Contains(out, "nothing seeded") {
		t.Errorf("output = %q", out)
	}
	if env.store().Count() != n {
		t.Error("second seed added blocks")
	}
}

func TestShow(t *testing.T) {
	env := newTestEnv(t)
	id := env.add(t, "Studio tour", "--type=creative", "--tag=Showcase", "--text=Come see it")

	out := env.mustRun(t, "show", id)
	for _, want := range []string{
		"[C] Studio tour",
		"id:          " + id,
		"type:        Creative",
		"scheduled:   2026-01-14 Morning",
		"tags:        Showcase",
		"characters:  11/500",
		"Come see it",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}
}

func TestList(t *testing.T) {
	env := newTestEnv(t)
	env.add(t, "Launch day", "--date=2026-01-16", "--slot=evening")

	out := env.mustRun(t, "list")
	for _, want := range []string{
		"=== Jan 12 - Jan 18 ===",
		"=== Feb 2 - Feb 8 ===",
		"Wed Jan 14 (today)",
		"Evening   ○ [T] Launch day",
		"1 blocks, 0 done",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}

	out = env.mustRun(t, "list", "--from=2026-03-04")
	if !strings.Contains(out, "=== Mar 2 - Mar 8 ===") || strings.Contains(out, "Launch day") {
		t.Errorf("list --from output:\n%s", out)
	}
}

func TestCopy(t *testing.T) {
	env := newTestEnv(t)
	id := env.add(t, "Post", "--text=Héllo world")

	if out := env.mustRun(t, "copy", id); out != "Copied 11 characters\n" {
		t.Errorf("output = %q", out)
	}
	if len(env.copied) != 1 || env.copied[0] != "Héllo world" {
		t.Errorf("clipboard = %q", env.copied)
	}

	empty := env.add(t, "Empty")
	if _, err := env.run(t, "copy", empty); err == nil {
		t.Error("expected error for empty draft")
	}
}

func TestTags(t *testing.T) {
	env := newTestEnv(t)
	vocab := do.MustInvoke[*tags.Store](env.injector)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"tags", "add", "text", "Share Win"}, `Added "Share Win" to text tags`},
		{[]string{"tags", "add", "text", "Share Win"}, "No change"},
		{[]string{"tags", "rename", "creative", "Showcase", "Portfolio"}, `Renamed "Showcase" to "Portfolio"`},
		{[]string{"tags", "rename", "creative", "Showcase", "Portfolio"}, "No change"},
		{[]string{"tags", "remove", "creative", "Portfolio"}, `Removed "Portfolio" from creative tags`},
		{[]string{"tags", "remove", "creative", "Portfolio"}, "No change"},
		{[]string{"tags", "list", "recycled"}, "Recycled (fixed)"},
		{[]string{"tags", "list", "text"}, "  Share Win"},
	}
	for _, tt := range tests {
		out := env.mustRun(t, tt.args...)
		if !strings.Contains(out, tt.want) {
			t.Errorf("twine %s: output = %q, want %q", strings.Join(tt.args, " "), out, tt.want)
		}
	}

	creative := vocab.TagsForType(tags.Creative)
	for _, tag := range creative {
		if tag == "Showcase" || tag == "Portfolio" {
			t.Errorf("creative tags = %q", creative)
		}
	}

	if _, err := env.run(t, "tags", "add", "recycled", "Old"); !errors.Is(err, tags.ErrInvalidCategory) {
		t.Errorf("error = %v, want ErrInvalidCategory", err)
	}
}

// A rename does not touch existing blocks, and the old tag is no longer offered.
func TestTags_RenameDoesNotCascade(t *testing.T) {
	env := newTestEnv(t)
	id := env.add(t, "Post", "--type=creative", "--tag=Showcase")

	env.mustRun(t, "tags", "rename", "creative", "Showcase", "Portfolio")

	if !env.block(t, id).HasTag("Showcase") {
		t.Error("rename changed an existing block")
	}
	if _, err := env.run(t, "add", "New", "--type=creative", "--tag=Showcase"); err == nil {
		t.Error("renamed tag is still offered")
	}
	env.add(t, "New", "--type=creative", "--tag=Portfolio")
}
