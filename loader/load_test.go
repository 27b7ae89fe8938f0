package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/treelab/optree"
)

func setupTracing(t *testing.T) func() {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	return teardown
}

func TestWordsBuildsDistinctKeyTree(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	ld := New(optree.Ordered[string](), 0)
	defer ld.Close()
	tree, err := ld.Words(strings.NewReader("the quick brown fox jumps over the lazy fox"))
	if err != nil {
		t.Fatal(err)
	}
	// "the" and "fox" appear twice
	if tree.Size() != 7 {
		var words []string
		tree.EachInorder(func(w *string) { words = append(words, *w) })
		t.Errorf("tree size = %d, want 7 distinct words; got %v", tree.Size(), words)
	}
	for _, w := range []string{"quick", "fox", "lazy"} {
		if !tree.Contains(w) {
			t.Errorf("tree should contain %q", w)
		}
	}
	if err := tree.Check(); err != nil {
		t.Errorf("loaded tree fails invariant check: %v", err)
	}
}

func TestWordsEmptyInput(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	ld := New(optree.Ordered[string](), 0)
	defer ld.Close()
	tree, err := ld.Words(strings.NewReader("   \n  "))
	if err != nil {
		t.Fatal(err)
	}
	if tree.Size() != 0 {
		t.Errorf("blank input should yield an empty tree, size = %d", tree.Size())
	}
}

func TestLoadFile(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	name := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(name, []byte("alpha beta\ngamma beta\n"), 0644); err != nil {
		t.Fatal(err)
	}
	ld := New(optree.Ordered[string](), 0)
	defer ld.Close()
	tree, err := ld.Load(name)
	if err != nil {
		t.Fatal(err)
	}
	if tree.Size() != 3 {
		t.Errorf("tree size = %d, want 3", tree.Size())
	}
	if !tree.Contains("gamma") {
		t.Errorf("tree should contain %q", "gamma")
	}
}

func TestLoadRejectsDirectory(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	ld := New(optree.Ordered[string](), 0)
	defer ld.Close()
	if _, err := ld.Load(t.TempDir()); err == nil {
		t.Errorf("loading a directory should fail")
	}
}

func TestFromHTMLExtractsText(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	input := "<p>hello <b>world</b></p><p>hello again</p>"
	ld := New(optree.Ordered[string](), 0)
	defer ld.Close()
	tree, err := ld.FromHTML(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range []string{"hello", "world", "again"} {
		if !tree.Contains(w) {
			t.Errorf("tree should contain %q", w)
		}
	}
	if tree.Size() != 3 {
		var words []string
		tree.EachInorder(func(w *string) { words = append(words, *w) })
		t.Errorf("tree size = %d, want 3; got %v", tree.Size(), words)
	}
}

func TestProgressBroadcast(t *testing.T) {
	teardown := setupTracing(t)
	defer teardown()
	//
	ld := New(optree.Ordered[string](), 2)
	ch, ok := ld.Subscribe(16)
	if !ok {
		t.Fatal("subscription on open loader should succeed")
	}
	_, err := ld.Words(strings.NewReader("a b c d a"))
	if err != nil {
		t.Fatal(err)
	}
	// the first batch is deterministic: two fresh keys after two segments
	first := <-ch
	p, isProgress := first.(Progress)
	if !isProgress {
		t.Fatalf("broadcast message of type %T, want Progress", first)
	}
	if p.Inserted != 2 || p.Rejected != 0 {
		t.Errorf("first progress = %+v, want 2 inserted and 0 rejected", p)
	}
	ld.Close() // closes subscriber channels, ends the drain below
	last := p
	for m := range ch {
		p, isProgress := m.(Progress)
		if !isProgress {
			t.Fatalf("broadcast message of type %T, want Progress", m)
		}
		if p.Inserted < last.Inserted || p.Rejected < last.Rejected {
			t.Errorf("progress must be monotonic, got %+v after %+v", p, last)
		}
		last = p
	}
}
