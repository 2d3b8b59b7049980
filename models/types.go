package models

// Sex values used by the tally summary
const (
	SexMan   = "man"
	SexWoman = "woman"
)

// Result limits used by the index and candidate pages
const (
	TopCandidates    = 10
	BottomCandidates = 1
	SupporterVoices  = 10
)

// Domain types

type User struct {
	ID       int64  `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Address  string `db:"address" json:"-"`  // Never expose in JSON
	Mynumber string `db:"mynumber" json:"-"` // Never expose in JSON
	Votes    int    `db:"votes" json:"votes"`
}

type Candidate struct {
	ID             int64  `db:"id" json:"id"`
	Name           string `db:"name" json:"name"`
	PoliticalParty string `db:"political_party" json:"political_party"`
	Sex            string `db:"sex" json:"sex"`
}

type Vote struct {
	ID          int64  `db:"id" json:"id"`
	UserID      int64  `db:"user_id" json:"user_id"`
	CandidateID int64  `db:"candidate_id" json:"candidate_id"`
	Keyword     string `db:"keyword" json:"keyword"`
}

// SexOf maps a stored candidate sex to the tally domain.
// Returns "" for values outside of it.
func SexOf(stored string) string {
	switch stored {
	case "male", "man", "男":
		return SexMan
	case "female", "woman", "女":
		return SexWoman
	}
	return ""
}

// Tally types

type CandidateResult struct {
	Candidate
	VoteCount int `db:"vote_count" json:"vote_count"`
}

type PartyResult struct {
	PoliticalParty string `db:"political_party" json:"political_party"`
	VoteCount      int    `db:"vote_count" json:"vote_count"`
}

type SexResult struct {
	Sex       string `db:"sex" json:"sex"`
	VoteCount int    `db:"vote_count" json:"vote_count"`
}

type SexRatio struct {
	Man   int `json:"man"`
	Woman int `json:"woman"`
}

// Request types

// One ballot submission, worth VoteCount vote rows
type CastRequest struct {
	Mynumber  string `json:"mynumber"`
	Candidate string `json:"candidate"`
	Keyword   string `json:"keyword"`
	VoteCount int    `json:"vote_count"`
}

// Response types

type CastResult struct {
	UserID      int64  `json:"user_id"`
	CandidateID int64  `json:"candidate_id"`
	Inserted    int    `json:"inserted"`
	Message     string `json:"message"`
}

type IndexResponse struct {
	Candidates []CandidateResult `json:"candidates"`
	Parties    []PartyResult     `json:"parties"`
	SexRatio   SexRatio          `json:"sex_ratio"`
}

type CandidatePage struct {
	Candidate Candidate `json:"candidate"`
	Votes     int       `json:"votes"`
	Keywords  []string  `json:"keywords"`
}

type PartyPage struct {
	PoliticalParty string      `json:"political_party"`
	Votes          int         `json:"votes"`
	Candidates     []Candidate `json:"candidates"`
	Keywords       []string    `json:"keywords"`
}

type VoteFormResponse struct {
	Candidates []Candidate `json:"candidates"`
	Message    string      `json:"message"`
	Accepted   bool        `json:"accepted"`
	Reason     string      `json:"reason,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
