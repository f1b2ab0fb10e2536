package model

import "time"

// Comment is a note attached to a feature. Comments are immutable after
// creation; they are never updated or deleted.
type Comment struct {
	ID        uint64    `json:"id"`
	FeatureID uint64    `json:"featureId"`
	UserID    uint64    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentInput carries the fields accepted when creating a comment.
// FeatureID and UserID are taken from the request path and the
// authenticated caller, never from the body.
type CommentInput struct {
	FeatureID uint64
	UserID    uint64
	Content   string
}
