package model

// FieldUserID is the identifier key exposed on user documents.
const FieldUserID = "_id"

// UserDocument is an opaque JSON document stored in the users collection.
// No schema is enforced beyond the presence of FieldUserID on stored copies.
type UserDocument map[string]interface{}
