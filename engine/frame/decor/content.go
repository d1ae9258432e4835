package decor

import (
	"regexp"
	"strings"

	"github.com/npillmayer/paginate/engine/dom"
	"github.com/npillmayer/paginate/engine/dom/style"
	"github.com/npillmayer/paginate/engine/frame/counter"
	"golang.org/x/text/unicode/norm"
)

// MaterializeContent applies the counter directives of n and, for generated
// content nodes, creates the text of property `content` as a child of n.
// Reflowers call it once per layout pass; it does nothing if content is
// already set.
func (n *Node) MaterializeContent() {
	if n.contentSet {
		return
	}
	s := n.Style()
	for _, e := range counter.ParseResets(s.GetPropertyValue("counter-reset").String()) {
		n.ResetCounter(e.ID, e.Value)
	}
	n.increments = counter.ParseIncrements(s.GetPropertyValue("counter-increment").String())
	for _, e := range n.increments {
		n.IncrementCounter(e.ID, e.Value)
	}
	if content := s.GetPropertyValue("content"); n.Frame().IsGeneratedContent() && hasContent(content) {
		n.dropGeneratedChildren() // a deep copy may carry the text of the original
		if text := n.evaluateContent(content.String()); text != "" {
			h := dom.CreateText(norm.NFC.String(text))
			child := n.doc.NewNode(h, style.New().Inherit(s), n.root)
			n.AppendChild(child)
		}
	}
	n.contentSet = true
}

// ResetGeneratedContent removes the children of a generated content node,
// so that they will be re-created by the next layout pass. It applies only
// to nodes whose content is set.
func (n *Node) ResetGeneratedContent() {
	if !n.contentSet || !n.Frame().IsGeneratedContent() {
		return
	}
	if !hasContent(n.Style().GetPropertyValue("content")) {
		return
	}
	n.dropGeneratedChildren()
}

func (n *Node) dropGeneratedChildren() {
	f := n.Frame()
	for c := f.FirstChild(); c != nil; c = f.FirstChild() {
		tracer().Debugf("%s: drop generated %s", n, c)
		f.Tree().Release(c)
	}
}

// RevertCounterIncrement undoes the counter increments applied by
// MaterializeContent. Increments are reverted at most once per pass, and
// only on counters still in scope. The body element is exempt.
func (n *Node) RevertCounterIncrement() {
	if !n.contentSet || n.IsBody() {
		return
	}
	if n.Style().GetPropertyValue("counter-increment").IsNone() {
		return
	}
	for _, e := range n.increments {
		if owner := n.LookupCounterFrame(e.ID, false); owner != nil {
			owner.counters.Add(e.ID, -e.Value)
		}
	}
	n.increments = nil
}

func hasContent(content style.Property) bool {
	return content != "normal" && !content.IsNone()
}

// --- Evaluation of property `content` --------------------------------------

var contentToken = regexp.MustCompile(
	`"((?:[^"\\]|\\.)*)"|'((?:[^'\\]|\\.)*)'|(counters?|attr)\(([^)]*)\)|(no-open-quote|no-close-quote|open-quote|close-quote)`)

func (n *Node) evaluateContent(content string) string {
	var b strings.Builder
	for _, m := range contentToken.FindAllStringSubmatch(content, -1) {
		switch {
		case m[1] != "" || m[2] != "":
			b.WriteString(unescape(m[1] + m[2]))
		case m[3] == "counter":
			args := splitArgs(m[4], 2)
			b.WriteString(n.CounterValue(args[0], listStyle(args[1])))
		case m[3] == "counters":
			args := splitArgs(m[4], 3)
			values := n.counterValues(args[0])
			sty := listStyle(args[2])
			for i, v := range values {
				if i > 0 {
					b.WriteString(args[1])
				}
				b.WriteString(counter.Format(v, sty))
			}
		case m[3] == "attr":
			if p := n.Parent(); p != nil {
				v, _ := dom.Attr(p.Node(), strings.TrimSpace(m[4]))
				b.WriteString(v)
			}
		case m[5] == "open-quote":
			b.WriteString(n.quote(0))
		case m[5] == "close-quote":
			b.WriteString(n.quote(1))
		}
	}
	return b.String()
}

// quote returns the first open (0) or close (1) quote of property `quotes`.
func (n *Node) quote(which int) string {
	q := n.Style().GetPropertyValue("quotes")
	if q.IsNone() {
		return ""
	}
	if q == "auto" {
		return [2]string{"“", "”"}[which]
	}
	quotes := contentToken.FindAllStringSubmatch(q.String(), 2)
	if len(quotes) < 2 {
		return ""
	}
	m := quotes[which]
	return unescape(m[1] + m[2])
}

func splitArgs(s string, count int) []string {
	args := make([]string, count)
	for i, a := range strings.SplitN(s, ",", count) {
		a = strings.TrimSpace(a)
		if len(a) >= 2 && (a[0] == '"' || a[0] == '\'') && a[len(a)-1] == a[0] {
			a = unescape(a[1 : len(a)-1])
		}
		args[i] = a
	}
	return args
}

func listStyle(s string) string {
	if s == "" {
		return "decimal"
	}
	return s
}

func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	escaped := false
	for _, r := range s {
		if r == '\\' && !escaped {
			escaped = true
			continue
		}
		if escaped && r == 'A' {
			r = '\n'
		}
		escaped = false
		b.WriteRune(r)
	}
	return b.String()
}
