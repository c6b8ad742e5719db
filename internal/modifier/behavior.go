package modifier

// On binds a client-side event to a named page handler. The binding
// extractor records it against the element's document-order position;
// the style collector ignores it.
type On struct {
	behavior
	Event   string
	Handler string
}

// OnClick binds a click event to handler.
func OnClick(handler string) On { return On{Event: "click", Handler: handler} }

// OnInput binds an input event to handler.
func OnInput(handler string) On { return On{Event: "input", Handler: handler} }

// OnChange binds a change event to handler.
func OnChange(handler string) On { return On{Event: "change", Handler: handler} }

// OnSubmit binds a submit event to handler.
func OnSubmit(handler string) On { return On{Event: "submit", Handler: handler} }
