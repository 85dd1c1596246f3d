package plugin

import (
	"sort"
	"strings"

	"github.com/goliatone/go-frontend/pkg/entangle"
)

// ConfigAttributes is the config key holding user-supplied HTML attributes.
const ConfigAttributes = "attributes"

// DefaultTagType is used when an item does not name its wrapper element.
const DefaultTagType = "div"

// Item is one placed plugin instance: its type, its stored configuration and
// its children. Classes added during rendering are kept off the stored config.
type Item struct {
	ID       string          `json:"id,omitempty"`
	UIItem   string          `json:"ui_item"`
	TagType  string          `json:"tag_type,omitempty"`
	Position int             `json:"position,omitempty"`
	Config   entangle.Config `json:"config,omitempty"`
	Children []*Item         `json:"children,omitempty"`

	classes []string
	styles  []string
}

// Tag returns the wrapper element name.
func (i *Item) Tag() string {
	if i == nil || strings.TrimSpace(i.TagType) == "" {
		return DefaultTagType
	}
	return strings.TrimSpace(i.TagType)
}

// AddClasses appends class tokens, ignoring blanks and tokens already added.
func (i *Item) AddClasses(classes ...string) {
	for _, class := range classes {
		for _, token := range strings.Fields(class) {
			if containsString(i.classes, token) {
				continue
			}
			i.classes = append(i.classes, token)
		}
	}
}

// Classes returns the classes added so far, in insertion order.
func (i *Item) Classes() []string {
	return append([]string(nil), i.classes...)
}

// AddStyle appends an inline style declaration such as "--bs-bg-opacity: .5".
func (i *Item) AddStyle(declaration string) {
	declaration = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(declaration), ";"))
	if declaration == "" {
		return
	}
	i.styles = append(i.styles, declaration)
}

// Attribute is a rendered HTML attribute.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Attributes merges computed classes and styles with the user attributes from
// config. Computed classes come first, followed by the user "class" value;
// computed styles precede the user "style". Remaining attributes are sorted by
// name so output is stable.
func (i *Item) Attributes() []Attribute {
	user := i.Config.Map(ConfigAttributes)

	classes := append([]string(nil), i.classes...)
	for _, token := range strings.Fields(user["class"]) {
		if !containsString(classes, token) {
			classes = append(classes, token)
		}
	}
	styles := append([]string(nil), i.styles...)
	if extra := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(user["style"]), ";")); extra != "" {
		styles = append(styles, extra)
	}
	delete(user, "class")
	delete(user, "style")

	var out []Attribute
	if len(classes) > 0 {
		out = append(out, Attribute{Name: "class", Value: strings.Join(classes, " ")})
	}
	if len(styles) > 0 {
		out = append(out, Attribute{Name: "style", Value: strings.Join(styles, "; ")})
	}
	names := make([]string, 0, len(user))
	for name := range user {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		out = append(out, Attribute{Name: name, Value: user[name]})
	}
	return out
}

// Clone copies the item tree so render-time classes never leak between
// renders of the same stored item.
func (i *Item) Clone() *Item {
	if i == nil {
		return nil
	}
	out := &Item{
		ID:       i.ID,
		UIItem:   i.UIItem,
		TagType:  i.TagType,
		Position: i.Position,
		Config:   i.Config.Clone(),
		classes:  append([]string(nil), i.classes...),
		styles:   append([]string(nil), i.styles...),
	}
	if len(i.Children) > 0 {
		out.Children = make([]*Item, len(i.Children))
		for idx, child := range i.Children {
			out.Children[idx] = child.Clone()
		}
	}
	return out
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
