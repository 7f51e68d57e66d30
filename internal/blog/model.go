package blog

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogPost is read-only in this service, there are no create or update
// routes, only the list.
type BlogPost struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	ImageURL    string             `bson:"image_url" json:"image_url"`
	AuthorName  string             `bson:"author_name" json:"author_name"`
	Category    string             `bson:"category" json:"category"`
	PostedDate  string             `bson:"posted_date" json:"posted_date"`
}
