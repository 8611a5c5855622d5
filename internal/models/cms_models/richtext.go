package cms_models

// RichNode is one node of a Strapi rich-content tree. Node kinds observed in
// the CMS: "paragraph", "list", "list-item", "text". Text leaves carry Text
// and optionally Bold; containers carry Children.
type RichNode struct {
	Type     string     `json:"type"`
	Text     string     `json:"text,omitempty"`
	Bold     bool       `json:"bold,omitempty"`
	Format   string     `json:"format,omitempty"`
	Children []RichNode `json:"children,omitempty"`
}

const (
	NodeParagraph = "paragraph"
	NodeList      = "list"
	NodeListItem  = "list-item"
	NodeText      = "text"
)

// FeatureNode is one entry of the features_main component. Depending on how
// the CMS populated the field, entries are either tagged feature objects
// ({id, features}) or plain rich-content nodes.
type FeatureNode struct {
	ID       int        `json:"id,omitempty"`
	Features string     `json:"features,omitempty"`
	Type     string     `json:"type,omitempty"`
	Text     string     `json:"text,omitempty"`
	Bold     bool       `json:"bold,omitempty"`
	Children []RichNode `json:"children,omitempty"`
}

// AsRichNode reinterprets a feature entry as a rich-content node for the
// extractor fallback path.
func (f FeatureNode) AsRichNode() RichNode {
	return RichNode{
		Type:     f.Type,
		Text:     f.Text,
		Bold:     f.Bold,
		Children: f.Children,
	}
}
