package core

// ResultKind tags the three shapes a query can end in.
type ResultKind int

const (
	// ResultOK carries one or more localized schemes.
	ResultOK ResultKind = iota
	// ResultEmpty means nothing survived eligibility filtering.
	ResultEmpty
	// ResultError means the pipeline failed.
	ResultError
)

func (k ResultKind) String() string {
	switch k {
	case ResultOK:
		return "ok"
	case ResultEmpty:
		return "empty"
	case ResultError:
		return "error"
	default:
		return "unknown"
	}
}

// LocalizedScheme is a display-ready scheme in a single language.
// Similarity is nil for synthetic sentinel entries and category listings.
type LocalizedScheme struct {
	Id          string      `json:"id"`
	Name        string      `json:"name"`
	Eligibility string      `json:"eligibility"`
	Benefits    string      `json:"benefits"`
	ApplyLink   string      `json:"applyLink"`
	Category    string      `json:"category,omitempty"`
	TargetState string      `json:"targetState,omitempty"`
	SchemeLevel SchemeLevel `json:"schemeLevel,omitempty"`
	Similarity  *float32    `json:"similarity,omitempty"`
}

// QueryResult is the outcome of one query. It is built fresh per request.
// Every kind carries at least one entry in Schemes so consumers can render
// it uniformly; Err is set only for ResultError.
type QueryResult struct {
	Kind     ResultKind
	Schemes  []LocalizedScheme
	Language Language
	Region   string
	Err      error
}

// OK reports whether the result carries real schemes.
func (r *QueryResult) OK() bool {
	return r.Kind == ResultOK
}
