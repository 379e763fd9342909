package dto

type SkillRequest struct {
	Skills *string `json:"skills"`
}

type SkillResponse struct {
	Skill string `json:"skill"`
}

type ResumeUploadResponse struct {
	Message   string `json:"message"`
	ResumeURL string `json:"resumeUrl"`
}

type ResumeURLResponse struct {
	ResumeURL string `json:"resumeUrl"`
}

type ResumeReviewResponse struct {
	Review string `json:"review"`
}
