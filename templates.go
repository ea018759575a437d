package gomiio

import "slices"

// Template is the command layout for one air conditioner model.
// Base holds markers that Encode replaces; Off, when set, is a complete
// literal power-off command.
type Template struct {
	DeviceType string
	Base       string
	Off        string
}

// HasOff reports whether the model has a fixed power-off command.
func (t Template) HasOff() bool {
	return t.Off != ""
}

const fallbackTemplateKey = "fallback"

// Command templates per model prefix (e.g. 0180111111).
// [po], [mo], [wi], [sw], [tt], [tt1], [tt4], [tt7] and [li] are markers.
var commandTemplates = map[string]Template{
	fallbackTemplateKey: {
		DeviceType: "generic",
		Base:       "[po][mo][wi][sw][tt][li]",
	},
	"0100010727": {
		DeviceType: "gree_2",
		Base:       "[po][mo][wi][sw][tt]1100190[tt1]205002102000[tt7]0190[tt1]207002000000[tt4]",
		Off:        "01011101004000205002112000D04000207002000000A0",
	},
	"0100004795": {
		DeviceType: "gree_8",
		Base:       "[po][mo][wi][sw][tt][li]10009090000500",
	},
	"0180333331": {
		DeviceType: "haier_1",
		Base:       "[po][mo][wi][sw][tt]1",
	},
	"0180666661": {
		DeviceType: "aux_1",
		Base:       "[po][mo][wi][sw][tt]1",
	},
	"0180777771": {
		DeviceType: "chigo_1",
		Base:       "[po][mo][wi][sw][tt]1",
	},
}

// LookupTemplate returns the template registered for prefix, or the
// generic fallback template when the prefix is unknown.
func LookupTemplate(prefix string) Template {
	if t, exists := exactTemplate(prefix); exists {
		return t
	}
	return commandTemplates[fallbackTemplateKey]
}

func exactTemplate(prefix string) (Template, bool) {
	if prefix == fallbackTemplateKey {
		return Template{}, false
	}
	t, exists := commandTemplates[prefix]
	return t, exists
}

// KnownPrefixes lists the model prefixes with a dedicated template.
func KnownPrefixes() []string {
	prefixes := make([]string, 0, len(commandTemplates)-1)
	for prefix := range commandTemplates {
		if prefix != fallbackTemplateKey {
			prefixes = append(prefixes, prefix)
		}
	}
	slices.Sort(prefixes)
	return prefixes
}
