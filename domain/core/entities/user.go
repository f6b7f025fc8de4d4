package entities

// User is the read-only directory record used to expand owner and comment
// author references in responses. Account management itself lives in the
// external auth service; this is just a projection of it.
type User struct {
	ID    string `bson:"_id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
}
