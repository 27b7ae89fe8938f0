package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/guiguan/caster"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
	"golang.org/x/net/html"

	"github.com/treelab/optree"
)

// defaultBatch is the number of processed segments between progress
// broadcasts.
const defaultBatch = 64

// Progress is broadcast to subscribers while a bulk load runs.
type Progress struct {
	Inserted int // distinct keys inserted so far
	Rejected int // duplicate keys rejected so far
}

// Loader builds word trees from text sources.
//
// The comparator is captured at construction and handed to every tree the
// loader creates. A loader may be reused for several loads; Close releases
// the progress broadcaster and ends all subscriptions.
type Loader struct {
	cmp   optree.Cmp[string]
	cast  *caster.Caster // broadcaster for load progress
	batch int
}

// New creates a loader for trees ordered by cmp. batch is the number of
// processed segments between progress broadcasts; 0 or less selects a
// default.
func New(cmp optree.Cmp[string], batch int) *Loader {
	if batch <= 0 {
		batch = defaultBatch
	}
	return &Loader{
		cmp:   cmp,
		cast:  caster.New(nil),
		batch: batch,
	}
}

// Subscribe registers a progress listener and returns its channel. The
// second result is false when the loader has been closed.
//
// Messages are of type Progress. The channel is buffered with the given
// capacity; broadcasting is best effort, a full channel misses updates.
func (ld *Loader) Subscribe(capacity uint) (chan interface{}, bool) {
	return ld.cast.Sub(nil, capacity)
}

// Unsubscribe removes a listener channel obtained from Subscribe.
func (ld *Loader) Unsubscribe(ch chan interface{}) {
	ld.cast.Unsub(ch)
}

// Close shuts down the progress broadcaster and closes all subscriber
// channels.
func (ld *Loader) Close() {
	ld.cast.Close()
}

// Words reads text from r, segments it into words and inserts every word
// into a fresh tree, which is returned together with nothing left pending:
// the call is synchronous and the calling goroutine is the tree's only
// owner throughout.
func (ld *Loader) Words(r io.Reader) (*optree.Tree[string], error) {
	tree := optree.New(ld.cmp)
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(r))
	var p Progress
	seen := 0
	for segmenter.Next() {
		word := strings.TrimSpace(string(segmenter.Bytes()))
		if word == "" {
			continue
		}
		if tree.Insert(word) {
			p.Inserted++
		} else {
			p.Rejected++
		}
		seen++
		if seen%ld.batch == 0 {
			ld.cast.TryPub(p)
		}
	}
	T().Debugf("loader: %d words inserted, %d duplicates", p.Inserted, p.Rejected)
	ld.cast.TryPub(p)
	return tree, nil
}

// Load reads the text file at name and builds a word tree from its
// content.
func (ld *Loader) Load(name string) (*optree.Tree[string], error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegularFile, name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ld.Words(file)
}

// FromHTML extracts the textual content of an HTML fragment, resembling
//
//	document.getElementById("myNode").innerText
//
// in JavaScript, and builds a word tree from it. Markup is not interpreted
// beyond locating text nodes.
func (ld *Loader) FromHTML(input io.Reader) (*optree.Tree[string], error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	for _, n := range nodes {
		collectText(n, &sb)
	}
	return ld.Words(strings.NewReader(sb.String()))
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		sb.WriteString(" ") // keep text of sibling elements apart
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}
