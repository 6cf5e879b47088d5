package ranking

import "intern-match/internal/domain/job"

// Method tags which ranking path produced a match.
type Method string

const (
	MethodVectorSimilarity Method = "vector_similarity"
	MethodKeywordMatching  Method = "keyword_matching"
)

// Match is one ranked job for a candidate. Score is the display-ready
// 0-100 integer match percentage; Rank is the 1-based position in the final
// sorted list.
type Match struct {
	Posting job.Posting
	Score   int
	Rank    int
	Method  Method
}
