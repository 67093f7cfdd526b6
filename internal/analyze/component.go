// Package analyze extracts structural UI facts from component source text and
// turns them into suggested test descriptions. Extraction is a best-effort
// regex heuristic over markup, not a parser: it tolerates malformed input,
// may under- or over-match, and never errors.
package analyze

import (
	"regexp"
	"strings"
)

// Input describes one text-entry field found in a component.
type Input struct {
	Name        string `json:"name,omitempty"`
	Type        string `json:"type"`
	Placeholder string `json:"placeholder,omitempty"`
	Required    bool   `json:"required,omitempty"`
}

// Select describes a dropdown. Options is populated for native selects only;
// component-style selects expose no option text to a static scan.
type Select struct {
	Name    string   `json:"name,omitempty"`
	Options []string `json:"options,omitempty"`
}

// Form describes a native form element and the field names found inside it.
type Form struct {
	Fields []string `json:"fields"`
}

// ComponentAnalysis holds everything the analyzer could extract from one
// component's source text.
type ComponentAnalysis struct {
	Buttons []string `json:"buttons,omitempty"`
	Inputs  []Input  `json:"inputs,omitempty"`
	Selects []Select `json:"selects,omitempty"`
	Links   []string `json:"links,omitempty"`
	Modals  []string `json:"modals,omitempty"`
	Forms   []Form   `json:"forms,omitempty"`

	HasTable        bool `json:"has_table,omitempty"`
	HasPagination   bool `json:"has_pagination,omitempty"`
	HasSearch       bool `json:"has_search,omitempty"`
	FetchesData     bool `json:"fetches_data,omitempty"`
	HasLoadingState bool `json:"has_loading_state,omitempty"`
	HasErrorState   bool `json:"has_error_state,omitempty"`
	HasEmptyState   bool `json:"has_empty_state,omitempty"`
}

// Empty reports whether the analysis found no structural facts at all.
// Feature flags do not count as structure.
func (a ComponentAnalysis) Empty() bool {
	return len(a.Buttons) == 0 && len(a.Inputs) == 0 && len(a.Selects) == 0 &&
		len(a.Links) == 0 && len(a.Modals) == 0 && len(a.Forms) == 0
}

// Button extraction: plain elements with inline text, capitalized Button
// components with inline text, and icon-only variants labeled through an
// accessibility or title attribute.
var (
	rePlainButton = regexp.MustCompile(`(?s)<button[^>]*>\s*([^<{][^<]*?)\s*</`)
	reCompButton  = regexp.MustCompile(`(?s)<Button[^>]*>\s*([^<{][^<]*?)\s*</`)
	reIconButton  = regexp.MustCompile(`<(?:IconButton|Button|button)\b[^>]*(?:aria-label|title)=["']([^"']+)["']`)
)

// Input extraction: native and component text fields plus multi-line areas.
var (
	reInputTag    = regexp.MustCompile(`<(?:input|Input|TextField)\b[^>]*>`)
	reTextareaTag = regexp.MustCompile(`<(?:textarea|TextArea|Textarea)\b[^>]*>`)
)

// Select, link, modal, and form extraction.
var (
	reNativeSelect = regexp.MustCompile(`(?s)<select\b([^>]*)>(.*?)</select>`)
	reCompSelect   = regexp.MustCompile(`<Select\b[^>]*>`)
	reOption       = regexp.MustCompile(`(?s)<option[^>]*>\s*([^<{][^<]*?)\s*(?:<|$)`)
	reAnchor       = regexp.MustCompile(`<a\b[^>]*\bhref=["']([^"']+)["']`)
	reLinkTo       = regexp.MustCompile(`<(?:Link|NavLink)\b[^>]*\bto=["']([^"']+)["']`)
	reModal        = regexp.MustCompile(`<(Modal|Dialog|Drawer|Popover|Sheet)\b([^>]*)>`)
	reForm         = regexp.MustCompile(`(?s)<form\b[^>]*>(.*?)</form>`)
	reNameOrID     = regexp.MustCompile(`\b(?:name|id)=["']([^"']+)["']`)
)

// Attribute pulls: every extractor treats "attribute not found" as "omit the
// field", never as an error.
var attrRes = map[string]*regexp.Regexp{
	"name":        regexp.MustCompile(`\bname=["']([^"']+)["']`),
	"id":          regexp.MustCompile(`\bid=["']([^"']+)["']`),
	"type":        regexp.MustCompile(`\btype=["']([^"']+)["']`),
	"placeholder": regexp.MustCompile(`\bplaceholder=["']([^"']+)["']`),
	"label":       regexp.MustCompile(`\blabel=["']([^"']+)["']`),
	"aria-label":  regexp.MustCompile(`\baria-label=["']([^"']+)["']`),
	"title":       regexp.MustCompile(`\btitle=["']([^"']+)["']`),
}

// featureFlags maps each boolean flag to the case-insensitive markers whose
// presence sets it.
var featureFlags = map[string][]string{
	"table":      {"<table", "<Table", "DataGrid", "columns="},
	"pagination": {"pagination", "pageSize", "currentPage", "nextPage", "page-size"},
	"search":     {"search"},
	"fetch":      {"fetch(", "axios", "useQuery", "useSWR", ".get(", ".post("},
	"loading":    {"isLoading", "loading", "Spinner", "Skeleton"},
	"error":      {"error"},
	"empty":      {"no results", "empty", "nothing found", "no data"},
}

// Analyze extracts structural UI facts from raw component source text. It is
// pure and deterministic: no I/O, no errors, partial markup tolerated.
func Analyze(src string) ComponentAnalysis {
	var a ComponentAnalysis
	a.Buttons = extractButtons(src)
	a.Inputs = extractInputs(src)
	a.Selects = extractSelects(src)
	a.Links = extractLinks(src)
	a.Modals = extractModals(src)
	a.Forms = extractForms(src)

	lower := strings.ToLower(src)
	a.HasTable = hasAny(lower, featureFlags["table"])
	a.HasPagination = hasAny(lower, featureFlags["pagination"])
	a.HasSearch = hasAny(lower, featureFlags["search"])
	a.FetchesData = hasAny(lower, featureFlags["fetch"])
	a.HasLoadingState = hasAny(lower, featureFlags["loading"])
	a.HasErrorState = hasAny(lower, featureFlags["error"])
	a.HasEmptyState = hasAny(lower, featureFlags["empty"])
	return a
}

func extractButtons(src string) []string {
	var labels []string
	for _, re := range []*regexp.Regexp{rePlainButton, reCompButton, reIconButton} {
		for _, m := range re.FindAllStringSubmatch(src, -1) {
			label := strings.TrimSpace(m[1])
			if label != "" {
				labels = append(labels, label)
			}
		}
	}
	return dedupeFold(labels)
}

func extractInputs(src string) []Input {
	var inputs []Input
	for _, tag := range reInputTag.FindAllString(src, -1) {
		inputs = append(inputs, inputFromTag(tag, "text"))
	}
	for _, tag := range reTextareaTag.FindAllString(src, -1) {
		inputs = append(inputs, inputFromTag(tag, "textarea"))
	}

	seen := make(map[string]bool)
	out := inputs[:0]
	for _, in := range inputs {
		key := in.Name + "|" + in.Placeholder + "|" + in.Type
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, in)
	}
	return out
}

func inputFromTag(tag, defaultType string) Input {
	in := Input{Type: defaultType}
	if t := attr(tag, "type"); t != "" {
		in.Type = t
	}
	if n := attr(tag, "name"); n != "" {
		in.Name = n
	} else if id := attr(tag, "id"); id != "" {
		in.Name = id
	}
	in.Placeholder = attr(tag, "placeholder")
	in.Required = strings.Contains(tag, "required")
	return in
}

func extractSelects(src string) []Select {
	var selects []Select
	for _, m := range reNativeSelect.FindAllStringSubmatch(src, -1) {
		s := Select{Name: firstAttr(m[1], "name", "id")}
		for _, opt := range reOption.FindAllStringSubmatch(m[2], -1) {
			if text := strings.TrimSpace(opt[1]); text != "" {
				s.Options = append(s.Options, text)
			}
		}
		selects = append(selects, s)
	}
	for _, tag := range reCompSelect.FindAllString(src, -1) {
		selects = append(selects, Select{Name: firstAttr(tag, "name", "label", "aria-label")})
	}
	return selects
}

func extractLinks(src string) []string {
	var targets []string
	for _, re := range []*regexp.Regexp{reAnchor, reLinkTo} {
		for _, m := range re.FindAllStringSubmatch(src, -1) {
			t := m[1]
			if strings.HasPrefix(t, "http://") || strings.HasPrefix(t, "https://") ||
				strings.HasPrefix(t, "mailto:") {
				continue
			}
			targets = append(targets, t)
		}
	}
	return dedupeFold(targets)
}

func extractModals(src string) []string {
	var labels []string
	for _, m := range reModal.FindAllStringSubmatch(src, -1) {
		label := firstAttr(m[2], "title", "aria-label")
		if label == "" {
			label = m[1]
		}
		labels = append(labels, label)
	}
	return dedupeFold(labels)
}

func extractForms(src string) []Form {
	var forms []Form
	for _, m := range reForm.FindAllStringSubmatch(src, -1) {
		var fields []string
		for _, f := range reNameOrID.FindAllStringSubmatch(m[1], -1) {
			fields = append(fields, f[1])
		}
		forms = append(forms, Form{Fields: dedupeFold(fields)})
	}
	return forms
}

// attr returns the named attribute's value inside a tag, or "".
func attr(tag, name string) string {
	re, ok := attrRes[name]
	if !ok {
		return ""
	}
	if m := re.FindStringSubmatch(tag); len(m) >= 2 {
		return m[1]
	}
	return ""
}

// firstAttr returns the first non-empty attribute among names.
func firstAttr(tag string, names ...string) string {
	for _, n := range names {
		if v := attr(tag, n); v != "" {
			return v
		}
	}
	return ""
}

// hasAny reports whether lower contains any marker, compared case-insensitively.
func hasAny(lower string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(lower, strings.ToLower(m)) {
			return true
		}
	}
	return false
}

// dedupeFold removes case-insensitive duplicates, keeping first occurrences.
func dedupeFold(vals []string) []string {
	seen := make(map[string]bool, len(vals))
	var out []string
	for _, v := range vals {
		key := strings.ToLower(v)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}
