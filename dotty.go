package ranktree

import (
	"fmt"
	"io"
)

type nodeids struct {
	idTable map[*node]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[*node]int),
		max:     1,
	}
}

func (ids nodeids) find(n *node) int {
	return ids.idTable[n]
}

func (ids *nodeids) alloc(n *node) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// TreeToDot outputs the internal structure of a Tree in Graphviz DOT format
// (for debugging purposes).
func TreeToDot(t *Tree, w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable()
	nodelist, edgelist := "", ""
	if !t.Empty() {
		inOrder(t.root, func(n *node) bool {
			ids.alloc(n)
			return true
		})
		inOrder(t.root, func(n *node) bool {
			ID := ids.find(n)
			isleaf := !n.left.isRealNode() && !n.right.isRealNode()
			label := fmt.Sprintf("%d\\nr%d s%d", n.key, n.rank, n.size)
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(isleaf))
			if n.left.isRealNode() {
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.find(n.left))
			} else if !isleaf {
				nilid := ID + 10000
				nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode(nilid))
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
			}
			if n.right.isRealNode() {
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.find(n.right))
			} else if !isleaf {
				nilid := ID + 20000
				nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode(nilid))
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
			}
			return true
		})
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func emptyNode(id int) string {
	s := "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
	return s
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
