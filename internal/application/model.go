package application

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AppliedJob records one application submission. The job fields are
// embedded copies taken from the posting at submission time, not a strict
// foreign key, and the record is never updated or deleted.
type AppliedJob struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ApplicantName  string             `bson:"applicant_name" json:"applicant_name"`
	ApplicantEmail string             `bson:"applicant_email" json:"applicant_email"`
	ResumeURL      string             `bson:"resume_url" json:"resume_url"`
	JobID          string             `bson:"job_id" json:"job_id"`
	JobTitle       string             `bson:"job_title" json:"job_title"`
	UserName       string             `bson:"user_name" json:"user_name"`
	JobCategory    string             `bson:"job_category" json:"job_category"`
	BannerURL      string             `bson:"job_banner_url" json:"job_banner_url"`
}

// AppliedJobRq is the wire shape of an application submission. The
// referenced job is accepted as-is, no check that it exists or that the
// applicant has not already applied.
type AppliedJobRq struct {
	ApplicantName  string `json:"applicantName"`
	ApplicantEmail string `json:"applicantEmail"`
	ResumeURL      string `json:"resumeLink"`
	JobID          string `json:"jobId"`
	JobTitle       string `json:"jobTitle"`
	UserName       string `json:"userName"`
	JobCategory    string `json:"jobCategory"`
	ImageURL       string `json:"imageURL"`
}

func (rq AppliedJobRq) Fields() bson.M {
	return bson.M{
		"applicant_name":  rq.ApplicantName,
		"applicant_email": rq.ApplicantEmail,
		"resume_url":      rq.ResumeURL,
		"job_id":          rq.JobID,
		"job_title":       rq.JobTitle,
		"user_name":       rq.UserName,
		"job_category":    rq.JobCategory,
		"job_banner_url":  rq.ImageURL,
	}
}
