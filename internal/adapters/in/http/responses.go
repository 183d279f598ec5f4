package http

import (
	"time"

	"recruitment/internal/core/application/cleanup"
	"recruitment/internal/core/application/usecases/queries"
	"recruitment/internal/core/domain/model/asset"
	"recruitment/internal/core/domain/model/kernel"
)

type AssetResponse struct {
	ID           string    `json:"id"`
	URL          string    `json:"url"`
	ResourceType string    `json:"resourceType"`
	OriginalName string    `json:"originalName"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

type DocumentResponse struct {
	AssetResponse
	DownloadURL string `json:"downloadUrl"`
}

type InterviewDateResponse struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type ParticipantResponse struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type ServiceResponse struct {
	ID             string                  `json:"id"`
	ServiceName    string                  `json:"serviceName"`
	Description    string                  `json:"description"`
	CoverImage     AssetResponse           `json:"coverImage"`
	Media          []AssetResponse         `json:"media"`
	Documents      []DocumentResponse      `json:"documents"`
	InterviewDates []InterviewDateResponse `json:"interviewDates"`
	UsersInvolved  []ParticipantResponse   `json:"usersInvolved"`
	CreatedAt      time.Time               `json:"createdAt"`
	UpdatedAt      time.Time               `json:"updatedAt"`
}

type ServiceSummaryResponse struct {
	ID            string    `json:"id"`
	ServiceName   string    `json:"serviceName"`
	Description   string    `json:"description"`
	CoverImage    string    `json:"coverImage"`
	MediaCount    int       `json:"mediaCount"`
	DocumentCount int       `json:"documentCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

type ApplicationResponse struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Email         string                `json:"email"`
	ServiceID     string                `json:"serviceId"`
	InterviewDate InterviewDateResponse `json:"interviewDate"`
	CV            DocumentResponse      `json:"cv"`
	Status        string                `json:"status"`
	AppliedAt     time.Time             `json:"appliedAt"`
}

// UserResponse never carries credentials.
type UserResponse struct {
	ID        string            `json:"id"`
	Username  string            `json:"username"`
	Email     string            `json:"email"`
	Role      string            `json:"role"`
	CV        *DocumentResponse `json:"cv,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}

type OutcomeResponse struct {
	URL           string `json:"url"`
	PublicID      string `json:"publicId,omitempty"`
	ResourceType  string `json:"resourceType,omitempty"`
	Success       bool   `json:"success"`
	AlreadyAbsent bool   `json:"alreadyAbsent,omitempty"`
	Error         string `json:"error,omitempty"`
}

// CleanupResponse reports what happened to each remote asset of an entity.
type CleanupResponse struct {
	CoverImage *bool             `json:"coverImage,omitempty"`
	CV         *bool             `json:"cv,omitempty"`
	Media      []OutcomeResponse `json:"media"`
	Documents  []OutcomeResponse `json:"documents"`
}

type DeletedResponse struct {
	Message   string          `json:"message"`
	Deletions CleanupResponse `json:"deletions"`
}

type UpdatedServiceResponse struct {
	ID        string          `json:"id"`
	Deletions CleanupResponse `json:"deletions"`
}

type UserCVResponse struct {
	CV        AssetResponse   `json:"cv"`
	Deletions CleanupResponse `json:"deletions"`
}

func assetResponse(v queries.AssetView) AssetResponse {
	return AssetResponse{
		ID:           v.ID.String(),
		URL:          v.URL,
		ResourceType: v.ResourceKind,
		OriginalName: v.OriginalName,
		UploadedAt:   v.UploadedAt,
	}
}

func storedAssetResponse(a *asset.Asset) AssetResponse {
	return AssetResponse{
		ID:           a.ID().String(),
		URL:          a.URL(),
		ResourceType: a.ResourceKind().String(),
		OriginalName: a.OriginalName(),
		UploadedAt:   a.UploadedAt(),
	}
}

func documentResponse(v queries.DocumentView) DocumentResponse {
	return DocumentResponse{AssetResponse: assetResponse(v.AssetView), DownloadURL: v.DownloadURL}
}

func interviewDateResponse(v queries.InterviewDateView) InterviewDateResponse {
	return InterviewDateResponse{Date: v.Date.Format(kernel.InterviewDateLayout), Time: v.Time}
}

func serviceResponse(s queries.GetServiceQueryResponse) ServiceResponse {
	response := ServiceResponse{
		ID:             s.ID.String(),
		ServiceName:    s.Name,
		Description:    s.Description,
		CoverImage:     assetResponse(s.CoverImage),
		Media:          make([]AssetResponse, len(s.Media)),
		Documents:      make([]DocumentResponse, len(s.Documents)),
		InterviewDates: make([]InterviewDateResponse, len(s.InterviewDates)),
		UsersInvolved:  make([]ParticipantResponse, len(s.UsersInvolved)),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
	for i, m := range s.Media {
		response.Media[i] = assetResponse(m)
	}
	for i, d := range s.Documents {
		response.Documents[i] = documentResponse(d)
	}
	for i, d := range s.InterviewDates {
		response.InterviewDates[i] = interviewDateResponse(d)
	}
	for i, u := range s.UsersInvolved {
		response.UsersInvolved[i] = ParticipantResponse{Name: u.Name, Email: u.Email}
	}
	return response
}

func applicationResponse(a queries.ListApplicationsQueryResponse) ApplicationResponse {
	return ApplicationResponse{
		ID:            a.ID.String(),
		Name:          a.Name,
		Email:         a.Email,
		ServiceID:     a.ServiceID.String(),
		InterviewDate: interviewDateResponse(a.InterviewDate),
		CV:            documentResponse(a.CV),
		Status:        a.Status,
		AppliedAt:     a.AppliedAt,
	}
}

func userResponse(u queries.ListUsersQueryResponse) UserResponse {
	response := UserResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
	if u.CV != nil {
		cv := documentResponse(*u.CV)
		response.CV = &cv
	}
	return response
}

func cleanupResponse(r cleanup.Report) CleanupResponse {
	return CleanupResponse{
		CoverImage: r.CoverImage,
		CV:         r.CV,
		Media:      outcomeResponses(r.Media),
		Documents:  outcomeResponses(r.Documents),
	}
}

func outcomeResponses(outcomes []cleanup.Outcome) []OutcomeResponse {
	out := make([]OutcomeResponse, len(outcomes))
	for i, o := range outcomes {
		out[i] = OutcomeResponse{
			URL:           o.URL,
			PublicID:      o.PublicID,
			Success:       o.Success,
			AlreadyAbsent: o.AlreadyAbsent,
		}
		if o.ResourceKind.IsStorable() {
			out[i].ResourceType = o.ResourceKind.String()
		}
		if o.Err != nil {
			out[i].Error = o.Err.Error()
		}
	}
	return out
}
