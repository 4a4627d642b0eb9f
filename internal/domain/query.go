package domain

// QueryRequest is the payload sent to the query endpoint.
type QueryRequest struct {
	Question         string `json:"question"`
	DocumentID       string `json:"document_id,omitempty"`
	IncludeCitations bool   `json:"include_citations"`
	MaxCitations     int    `json:"max_citations"`
}

// Citation is a supporting excerpt returned with an answer. The backend
// returns citations in relevance-descending order and the client preserves
// that order verbatim.
type Citation struct {
	PageNumber     int     `json:"page_number"`
	Section        *string `json:"section,omitempty"`
	Content        string  `json:"content"`
	RelevanceScore float64 `json:"relevance_score"`
}

// QueryResult is an answer with citations, as returned by the query endpoint.
type QueryResult struct {
	Answer          string     `json:"answer"`
	Citations       []Citation `json:"citations"`
	ConfidenceScore float64    `json:"confidence_score"`
	ProcessingTime  float64    `json:"processing_time"`
}
