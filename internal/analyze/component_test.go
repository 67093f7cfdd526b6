package analyze

import (
	"strings"
	"testing"
)

func TestAnalyzeButtons(t *testing.T) {
	src := `
<button onClick={save}>Save</button>
<Button variant="primary">Submit</Button>
<IconButton aria-label="Close panel" />
<button>save</button>
`
	a := Analyze(src)
	if len(a.Buttons) != 3 {
		t.Fatalf("expected 3 buttons (case-insensitive dedupe), got %d: %v", len(a.Buttons), a.Buttons)
	}
	want := []string{"Save", "Submit", "Close panel"}
	for i, w := range want {
		if a.Buttons[i] != w {
			t.Errorf("Buttons[%d] = %q, want %q", i, a.Buttons[i], w)
		}
	}
}

func TestAnalyzeButtonSkipsExpressionChildren(t *testing.T) {
	a := Analyze(`<button>{label}</button>`)
	if len(a.Buttons) != 0 {
		t.Errorf("expression-only button text should be skipped, got %v", a.Buttons)
	}
}

func TestAnalyzeInputs(t *testing.T) {
	src := `
<input name="email" type="email" placeholder="you@example.com" required />
<input id="age" type="number" />
<textarea name="bio"></textarea>
<Input name="email" type="email" placeholder="you@example.com" required />
`
	a := Analyze(src)
	if len(a.Inputs) != 3 {
		t.Fatalf("expected 3 inputs after dedupe, got %d: %+v", len(a.Inputs), a.Inputs)
	}

	email := a.Inputs[0]
	if email.Name != "email" || email.Type != "email" || !email.Required {
		t.Errorf("email input = %+v, want name=email type=email required", email)
	}
	if email.Placeholder != "you@example.com" {
		t.Errorf("Placeholder = %q, want %q", email.Placeholder, "you@example.com")
	}

	age := a.Inputs[1]
	if age.Name != "age" || age.Type != "number" || age.Required {
		t.Errorf("age input = %+v, want name=age (from id) type=number optional", age)
	}

	bio := a.Inputs[2]
	if bio.Name != "bio" || bio.Type != "textarea" {
		t.Errorf("bio input = %+v, want name=bio type=textarea", bio)
	}
}

func TestAnalyzeInputDefaultsToText(t *testing.T) {
	a := Analyze(`<input name="q" />`)
	if len(a.Inputs) != 1 || a.Inputs[0].Type != "text" {
		t.Errorf("Inputs = %+v, want one input with type text", a.Inputs)
	}
}

func TestAnalyzeSelects(t *testing.T) {
	src := `
<select name="country">
  <option>Chile</option>
  <option value="pe">Peru</option>
</select>
<Select label="Currency" />
`
	a := Analyze(src)
	if len(a.Selects) != 2 {
		t.Fatalf("expected 2 selects, got %d: %+v", len(a.Selects), a.Selects)
	}
	native := a.Selects[0]
	if native.Name != "country" {
		t.Errorf("native select name = %q, want country", native.Name)
	}
	if len(native.Options) != 2 || native.Options[0] != "Chile" || native.Options[1] != "Peru" {
		t.Errorf("options = %v, want [Chile Peru]", native.Options)
	}
	comp := a.Selects[1]
	if comp.Name != "Currency" || comp.Options != nil {
		t.Errorf("component select = %+v, want name=Currency, no options", comp)
	}
}

func TestAnalyzeLinks(t *testing.T) {
	src := `
<a href="/about">About</a>
<Link to="/users">Users</Link>
<NavLink to="/settings">Settings</NavLink>
<a href="https://example.com">External</a>
<a href="mailto:hi@example.com">Mail</a>
<a href="/about">About again</a>
`
	a := Analyze(src)
	want := []string{"/about", "/users", "/settings"}
	if len(a.Links) != len(want) {
		t.Fatalf("Links = %v, want %v", a.Links, want)
	}
	for i, w := range want {
		if a.Links[i] != w {
			t.Errorf("Links[%d] = %q, want %q", i, a.Links[i], w)
		}
	}
}

func TestAnalyzeModals(t *testing.T) {
	src := `
<Modal title="Confirm delete">...</Modal>
<Dialog aria-label="Edit user">...</Dialog>
<Drawer open={open}>...</Drawer>
`
	a := Analyze(src)
	want := []string{"Confirm delete", "Edit user", "Drawer"}
	if len(a.Modals) != len(want) {
		t.Fatalf("Modals = %v, want %v", a.Modals, want)
	}
	for i, w := range want {
		if a.Modals[i] != w {
			t.Errorf("Modals[%d] = %q, want %q", i, a.Modals[i], w)
		}
	}
}

func TestAnalyzeForms(t *testing.T) {
	src := `
<form onSubmit={submit}>
  <input name="email" />
  <input id="password" />
  <input name="email" />
</form>
`
	a := Analyze(src)
	if len(a.Forms) != 1 {
		t.Fatalf("expected 1 form, got %d", len(a.Forms))
	}
	fields := a.Forms[0].Fields
	if len(fields) != 2 || fields[0] != "email" || fields[1] != "password" {
		t.Errorf("Fields = %v, want [email password]", fields)
	}
}

func TestAnalyzeFeatureFlags(t *testing.T) {
	src := `
const { data, isLoading, error } = useQuery('users', fetchUsers)
return <Table columns={cols} pagination={{ pageSize: 20 }} />
{data.length === 0 && <div>No results</div>}
<SearchBar />
`
	a := Analyze(src)
	checks := []struct {
		name string
		got  bool
	}{
		{"HasTable", a.HasTable},
		{"HasPagination", a.HasPagination},
		{"HasSearch", a.HasSearch},
		{"FetchesData", a.FetchesData},
		{"HasLoadingState", a.HasLoadingState},
		{"HasErrorState", a.HasErrorState},
		{"HasEmptyState", a.HasEmptyState},
	}
	for _, c := range checks {
		if !c.got {
			t.Errorf("%s = false, want true", c.name)
		}
	}
}

func TestAnalyzeMalformedMarkupNeverPanics(t *testing.T) {
	inputs := []string{
		"",
		"<button",
		"<input name=",
		"<form><input name='x'",
		"<<<>>>",
		strings.Repeat("<button>x</button>", 1000),
	}
	for _, src := range inputs {
		_ = Analyze(src) // must not panic
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	a := Analyze("const x = 1; // loading error")
	if !a.Empty() {
		t.Errorf("Empty() = false for structure-free source: %+v", a)
	}
	if !a.HasLoadingState || !a.HasErrorState {
		t.Error("feature flags should still be set on structure-free source")
	}
}
