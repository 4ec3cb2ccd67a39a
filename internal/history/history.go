// Package history records completed analyses so past recommendations can be
// reviewed and compared. The engine itself stays stateless; recording happens
// at the serving layer.
package history

import "time"

// Record is one stored analysis run.
type Record struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	Description   string    `json:"description"`
	Industry      string    `json:"industry,omitempty"`
	CompanySize   string    `json:"company_size,omitempty"`
	Urgency       string    `json:"urgency,omitempty"`
	SolutionCount int       `json:"solution_count"`
	TopSolution   string    `json:"top_solution,omitempty"`
	TopScore      float64   `json:"top_score"`
}

// Detail is a record plus the full input and result payloads.
type Detail struct {
	Record
	Input  []byte `json:"input"`
	Result []byte `json:"result"`
}
