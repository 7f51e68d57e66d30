package job

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Job is the stored shape of a posting. Field names mirror the document
// store, responses expose stored documents verbatim.
type Job struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BannerURL           string             `bson:"job_banner_url" json:"job_banner_url"`
	JobTitle            string             `bson:"job_title" json:"job_title"`
	UserName            string             `bson:"user_name" json:"user_name"`
	UserEmail           string             `bson:"user_email" json:"user_email"`
	JobCategory         string             `bson:"job_category" json:"job_category"`
	MinRange            json.Number        `bson:"min_range" json:"min_range,omitempty"`
	MaxRange            json.Number        `bson:"max_range" json:"max_range,omitempty"`
	JobDescription      string             `bson:"job_description" json:"job_description"`
	JobPostingDate      string             `bson:"job_posting_date" json:"job_posting_date"`
	ApplicationDeadline string             `bson:"application_deadline" json:"application_deadline"`
	JobApplicants       int                `bson:"job_applicants" json:"job_applicants"`
}

// JobRq is the wire shape of a posting as submitted by the client.
type JobRq struct {
	ImageURL            string      `json:"imageURL"`
	JobTitle            string      `json:"jobTitle"`
	UserName            string      `json:"userName"`
	UserEmail           string      `json:"userEmail"`
	JobCategory         string      `json:"jobCategory"`
	MinRange            json.Number `json:"minRange"`
	MaxRange            json.Number `json:"maxRange"`
	JobDescription      string      `json:"jobDescription"`
	JobPostingDate      string      `json:"jobPostingDate"`
	ApplicationDeadline string      `json:"applicationDeadline"`
	JobApplicants       int         `json:"jobApplicants"`
}

// Fields maps the wire shape onto stored field names. The mapping is fixed
// and total, ids are never part of it.
func (rq JobRq) Fields() bson.M {
	minRange, maxRange := rq.MinRange, rq.MaxRange
	if minRange == "" {
		minRange = "0"
	}
	if maxRange == "" {
		maxRange = "0"
	}
	return bson.M{
		"job_banner_url":       rq.ImageURL,
		"job_title":            rq.JobTitle,
		"user_name":            rq.UserName,
		"user_email":           rq.UserEmail,
		"job_category":         rq.JobCategory,
		"min_range":            minRange,
		"max_range":            maxRange,
		"job_description":      rq.JobDescription,
		"job_posting_date":     rq.JobPostingDate,
		"application_deadline": rq.ApplicationDeadline,
		"job_applicants":       rq.JobApplicants,
	}
}
