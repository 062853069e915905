// Package model holds the entities persisted by the item store.
package model

// Item is the single resource managed by the service.
//
// ID is assigned by the store on insert and never changes.
type Item struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ItemUpdate carries the fields of a partial update. Nil means "leave unchanged".
type ItemUpdate struct {
	Name        *string
	Description *string
}

// Empty reports whether the update touches no field at all.
func (u ItemUpdate) Empty() bool {
	return u.Name == nil && u.Description == nil
}
