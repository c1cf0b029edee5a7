package model

// Violation is one occurrence of one rule failing on one page. A single
// record may represent multiple DOM instances of the failure (Occurrences).
// Violations are never mutated after creation.
type Violation struct {
	// RuleID is the short code naming the failed check (e.g. "image-alt").
	RuleID string `json:"rule_id"`

	// Severity is the engine-reported impact level.
	Severity Severity `json:"severity"`

	// Description is the human-readable explanation of the failure.
	Description string `json:"description"`

	// Help is the remediation guidance text.
	Help string `json:"help"`

	// HelpURL points at the rule's documentation.
	HelpURL string `json:"help_url"`

	// Tags lists the guideline tag families the rule belongs to.
	Tags []string `json:"tags,omitempty"`

	// PageURL is the page on which the violation was found.
	PageURL string `json:"page_url"`

	// Occurrences is the number of DOM nodes matching the violation.
	Occurrences int `json:"occurrences"`
}

// EngineResult is the raw output of one rule-engine evaluation against a
// loaded page. The field shapes follow the engine's JSON output.
type EngineResult struct {
	Violations []EngineCheck `json:"violations"`
	Passes     []EngineCheck `json:"passes"`
	Incomplete []EngineCheck `json:"incomplete"`
}

// EngineCheck is one rule result reported by the engine.
type EngineCheck struct {
	ID          string       `json:"id"`
	Impact      string       `json:"impact"`
	Description string       `json:"description"`
	Help        string       `json:"help"`
	HelpURL     string       `json:"helpUrl"`
	Tags        []string     `json:"tags"`
	Nodes       []EngineNode `json:"nodes"`
}

// EngineNode is one affected DOM node of a rule result.
type EngineNode struct {
	Target []string `json:"target"`
	HTML   string   `json:"html,omitempty"`
}
