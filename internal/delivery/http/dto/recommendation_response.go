package dto

import "intern-match/internal/usecase"

type RecommendationItemResponse struct {
	Job         JobResponse `json:"job"`
	CompanyName string      `json:"company_name"`
	CompanyLogo *string     `json:"company_logo"`
	Score       int         `json:"score"`
	Rank        int         `json:"rank"`
	Method      string      `json:"method"`
}

type RecommendationMetadataResponse struct {
	Method              string `json:"method,omitempty"`
	JobsAnalyzed        int    `json:"jobs_analyzed"`
	MinScore            int    `json:"min_score,omitempty"`
	EmbeddingDimensions int    `json:"embedding_dimensions,omitempty"`
}

type RecommendationSetResponse struct {
	Recommendations []RecommendationItemResponse   `json:"recommendations"`
	Total           int                            `json:"total"`
	Message         string                         `json:"message,omitempty"`
	Metadata        RecommendationMetadataResponse `json:"metadata"`
}

func NewRecommendationSetResponse(set usecase.RecommendationSet) RecommendationSetResponse {
	items := make([]RecommendationItemResponse, 0, len(set.Items))
	for _, it := range set.Items {
		items = append(items, RecommendationItemResponse{
			Job:         NewJobResponse(it.Job),
			CompanyName: it.CompanyName,
			CompanyLogo: it.CompanyLogo,
			Score:       it.Score,
			Rank:        it.Rank,
			Method:      string(it.Method),
		})
	}
	return RecommendationSetResponse{
		Recommendations: items,
		Total:           set.Total,
		Message:         set.Message,
		Metadata: RecommendationMetadataResponse{
			Method:              string(set.Metadata.Method),
			JobsAnalyzed:        set.Metadata.JobsAnalyzed,
			MinScore:            set.Metadata.MinScore,
			EmbeddingDimensions: set.Metadata.EmbeddingDimensions,
		},
	}
}
