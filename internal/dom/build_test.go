package dom

import "testing"

func TestFromHTMLBasicStructure(t *testing.T) {
	root, err := FromHTML("<p>hello <em>world</em></p>")
	if err != nil {
		t.Fatalf("FromHTML() error = %v", err)
	}
	if root.Kind != KindRoot {
		t.Fatalf("root kind = %v, want KindRoot", root.Kind)
	}
	if len(root.Children) != 1 || !root.Children[0].IsElement("p") {
		t.Fatalf("root children = %+v, want one <p>", root.Children)
	}

	p := root.Children[0]
	if len(p.Children) != 2 {
		t.Fatalf("p has %d children, want 2", len(p.Children))
	}
	if p.Children[0].Kind != KindText || p.Children[0].Value != "hello " {
		t.Errorf("first child = %+v, want text %q", p.Children[0], "hello ")
	}
	if !p.Children[1].IsElement("em") {
		t.Errorf("second child = %+v, want <em>", p.Children[1])
	}
}

func TestFromHTMLUnescapesEntities(t *testing.T) {
	root, err := FromHTML("<p>{{#note title=&quot;X&quot;}}</p>")
	if err != nil {
		t.Fatalf("FromHTML() error = %v", err)
	}
	got := root.Children[0].Children[0].Value
	want := `{{#note title="X"}}`
	if got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func TestFromHTMLAttributes(t *testing.T) {
	root, err := FromHTML(`<div class="footnotes wide" id="x"><input type="checkbox" disabled="" /></div>`)
	if err != nil {
		t.Fatalf("FromHTML() error = %v", err)
	}
	div := root.Children[0]

	class, ok := div.Attr("class")
	if !ok || class.Kind != AttrList {
		t.Fatalf("class attr = %+v, want list", class)
	}
	if len(class.List) != 2 || class.List[0] != "footnotes" {
		t.Errorf("class list = %v, want [footnotes wide]", class.List)
	}
	if id, _ := div.StringAttr("id"); id != "x" {
		t.Errorf("id = %q, want %q", id, "x")
	}

	input := div.Children[0]
	disabled, ok := input.Attr("disabled")
	if !ok || disabled.Kind != AttrBool {
		t.Errorf("disabled attr = %+v, want bare attribute", disabled)
	}
}

func TestFromHTMLDropsComments(t *testing.T) {
	root, err := FromHTML("<!-- hidden --><p>x</p>")
	if err != nil {
		t.Fatalf("FromHTML() error = %v", err)
	}
	if len(root.Children) != 1 {
		t.Errorf("root has %d children, want 1 (comment dropped)", len(root.Children))
	}
}

func TestInnerText(t *testing.T) {
	n := Element("p", nil,
		Text("a "),
		Element("em", nil, Text("b")),
		Opaque("<skipped/>"),
		Text(" c"),
	)
	if got := n.InnerText(); got != "a b c" {
		t.Errorf("InnerText() = %q, want %q", got, "a b c")
	}
}

func TestHasClass(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want bool
	}{
		{
			name: "list attribute match",
			node: Element("div", map[string]AttrValue{"class": List("footnotes", "x")}),
			want: true,
		},
		{
			name: "string attribute match",
			node: Element("div", map[string]AttrValue{"class": String("a footnotes")}),
			want: true,
		},
		{
			name: "no class attribute",
			node: Element("div", nil),
			want: false,
		},
		{
			name: "different class",
			node: Element("div", map[string]AttrValue{"class": List("footer")}),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.HasClass("footnotes"); got != tt.want {
				t.Errorf("HasClass(footnotes) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCopyAttrsDoesNotAlias(t *testing.T) {
	n := Element("td", map[string]AttrValue{"align": String("left")})
	attrs := n.CopyAttrs()
	delete(attrs, "align")
	if _, ok := n.Attr("align"); !ok {
		t.Error("CopyAttrs() aliased the original map")
	}
}
