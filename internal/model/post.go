package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Post struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title      string             `bson:"title" json:"title"`
	Author     string             `bson:"author" json:"author"`
	Content    string             `bson:"content" json:"content"`
	Excerpt    string             `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	CoverImage *CoverMedia        `bson:"coverImage,omitempty" json:"coverImage,omitempty"`
	CoverVideo *CoverMedia        `bson:"coverVideo,omitempty" json:"coverVideo,omitempty"`
	Date       time.Time          `bson:"date" json:"date"`
}

type CoverMedia struct {
	URL string `bson:"url" json:"url"`
}
