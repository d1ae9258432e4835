/*
Package framedebug renders decorated frame trees for debugging.

Outline writes an indented text outline, ToGraphViz writes a DOT file
suitable as input for Graphviz.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package framedebug

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/paginate/engine/dom"
	"github.com/npillmayer/paginate/engine/frame/decor"
)

// maxNodes guards against erroneous cycles.
const maxNodes = 100000

// Outline writes one line per node of the subtree of n: tag, id, split
// state and counters, indented by depth. Ids retired by a split are
// shown with a leading '~'.
func Outline(n *decor.Node, w io.Writer) error {
	cnt := 0
	return outline(n, w, 0, &cnt)
}

// OutlineString returns the outline of n as a string.
func OutlineString(n *decor.Node) string {
	var b strings.Builder
	Outline(n, &b) // a strings.Builder never fails
	return b.String()
}

func outline(n *decor.Node, w io.Writer, level int, cnt *int) error {
	if *cnt++; *cnt > maxNodes {
		return fmt.Errorf("outline: more than %d nodes", maxNodes)
	}
	if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", level), describe(n)); err != nil {
		return err
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if err := outline(c, w, level+1, cnt); err != nil {
			return err
		}
	}
	return nil
}

func describe(n *decor.Node) string {
	h := n.Node()
	if dom.IsText(h) {
		return fmt.Sprintf("%q", h.Data)
	}
	var b strings.Builder
	b.WriteString(dom.NodeName(h))
	if id, ok := dom.Attr(h, "id"); ok {
		b.WriteString("#" + id)
	} else if id, ok := dom.Attr(h, dom.OriginalIDAttr); ok {
		b.WriteString("~" + id)
	}
	if n.IsSplit() {
		b.WriteString(" split")
	}
	if n.IsSplitOff() {
		b.WriteString(" fragment")
	}
	if n.Counters().Len() > 0 {
		b.WriteString(" " + n.Counters().String())
	}
	return b.String()
}

// --- GraphViz --------------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
	cnt      int
}

// Helper structs
type gnode struct {
	N    *decor.Node
	Name string
}

type gedge struct {
	N1, N2 gnode
}

// ToGraphViz creates a graphical representation of a decorated tree.
// It produces a DOT file format suitable as input for Graphviz, given a Writer.
func ToGraphViz(root *decor.Node, w io.Writer) error {
	header := template.Must(template.New("frameTree").Parse(graphHeadTmpl))
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("node").Funcs(
		template.FuncMap{
			"shortstring": shortText,
			"istext":      isText,
			"label":       label,
			"fill":        fill,
		}).Parse(nodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("edge").Parse(edgeTmpl))
	if err := header.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[*decor.Node]string, 256)
	if err := nodes(root, w, dict, &gparams); err != nil {
		return err
	}
	_, err := w.Write([]byte("}\n"))
	return err
}

func nodes(n *decor.Node, w io.Writer, dict map[*decor.Node]string, gparams *graphParamsType) error {
	gparams.cnt++
	if gparams.cnt > maxNodes {
		return fmt.Errorf("graphviz: more than %d nodes", maxNodes)
	}
	if err := gparams.NodeTmpl.Execute(w, gnode{n, name(n, dict)}); err != nil {
		return err
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if err := nodes(c, w, dict, gparams); err != nil {
			return err
		}
		e := gedge{gnode{n, name(n, dict)}, gnode{c, name(c, dict)}}
		if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
			return err
		}
	}
	return nil
}

func name(n *decor.Node, dict map[*decor.Node]string) string {
	if nm, ok := dict[n]; ok {
		return nm
	}
	nm := fmt.Sprintf("node%05d", len(dict)+1)
	dict[n] = nm
	return nm
}

func label(n *decor.Node) string {
	return fmt.Sprintf("%q", n.Frame().Display().Symbol()+" "+describe(n))
}

func fill(n *decor.Node) string {
	switch {
	case n.IsSplit():
		return "gold"
	case n.IsSplitOff():
		return "khaki"
	}
	return "lightblue3"
}

func isText(n *decor.Node) bool {
	return n.Frame().IsText()
}

func shortText(n *decor.Node) string {
	txt := []rune(n.Node().Data)
	s := "T "
	if len(txt) > 10 {
		s += string(txt[:10]) + "…"
	} else {
		s += string(txt)
	}
	s = strings.Replace(s, "\n", `\n`, -1)
	s = strings.Replace(s, "\t", `\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return fmt.Sprintf("%q", s)
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=12] ;
   node [fontname = "{{ .Fontname }}" fontsize=12] ;
   edge [fontname = "{{ .Fontname }}" fontsize=12] ;
`

const nodeTmpl = `{{ if istext .N }}{{ .Name }}	[ label={{ shortstring .N }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}{{ .Name }}	[ label={{ label .N }} shape=box style=filled fillcolor={{ fill .N }} ] ;
{{ end }}`

const edgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`
